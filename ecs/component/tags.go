package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type BossTag struct{}

var BossTagComponent = NewComponent[BossTag]()

type GroundTag struct{}

var GroundTagComponent = NewComponent[GroundTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()
