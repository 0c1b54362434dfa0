package component

type EffectKind int

const (
	EffectTrail EffectKind = iota
	EffectExplosion
)

// Effect marks a short-lived cosmetic entity.
type Effect struct {
	Kind EffectKind
}

var EffectComponent = NewComponent[Effect]()
