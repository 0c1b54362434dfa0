package component

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Health tracks hit points. Current never leaves [0, Max].
type Health struct {
	Current float64
	Max     float64
}

func NewHealth(max float64) Health {
	if max < 0 {
		max = 0
	}
	return Health{Current: max, Max: max}
}

// TakeDamage lowers Current by amount and reports whether the entity is now
// at or below zero. Negative amounts are treated as zero.
func (h *Health) TakeDamage(amount float64) bool {
	if amount < 0 {
		amount = 0
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current <= 0
}

// Heal raises Current by amount, capped at Max.
func (h *Health) Heal(amount float64) {
	if amount < 0 {
		return
	}
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

func (h Health) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

func (h Health) Dead() bool {
	return h.Current <= 0
}

type HealthBand int

const (
	HealthHealthy HealthBand = iota
	HealthWarning
	HealthCritical
)

func (b HealthBand) String() string {
	switch b {
	case HealthWarning:
		return "warning"
	case HealthCritical:
		return "critical"
	default:
		return "healthy"
	}
}

// Color is the bar color for the band.
func (b HealthBand) Color() color.RGBA {
	switch b {
	case HealthWarning:
		return colornames.Orange
	case HealthCritical:
		return colornames.Red
	default:
		return colornames.Lime
	}
}

// Band classifies a health ratio: above 0.6 is healthy, above 0.3 is a
// warning, anything else is critical.
func Band(ratio float64) HealthBand {
	switch {
	case ratio > 0.6:
		return HealthHealthy
	case ratio > 0.3:
		return HealthWarning
	default:
		return HealthCritical
	}
}

var HealthComponent = NewComponent[Health]()
