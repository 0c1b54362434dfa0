package component

// Snowflake falls and spins, then respawns above the arena. Placed is false
// until the snow system has scattered it for the first time.
type Snowflake struct {
	FallSpeed float64
	SpinSpeed float64
	FloorY    float64
	SpawnMinY float64
	SpawnMaxY float64
	Area      float64
	Placed    bool
}

var SnowflakeComponent = NewComponent[Snowflake]()
