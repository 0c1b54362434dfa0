package component

// BossScript names a tengo script whose hooks run on boss state changes.
type BossScript struct {
	Path string
}

var BossScriptComponent = NewComponent[BossScript]()
