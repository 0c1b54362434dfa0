package component

// HUD is the screen-space summary read by the renderer.
type HUD struct {
	PlayerRatio float64
	PlayerBand  HealthBand
	BossRatio   float64
	BossBand    HealthBand
	BossVisible bool
	BossState   string
	GameOver    bool
	Message     string
	MessageTime float64
}

var HUDComponent = NewComponent[HUD]()
