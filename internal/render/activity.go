package render

import "math"

// RampFunc maps a normalized activity value to a fill color.
type RampFunc func(a float64) RGB

// ActivityRamp is the default ramp: green at 0 through yellow at 0.5 to red
// at 1, piecewise-linear, blue zero throughout.
func ActivityRamp(a float64) RGB {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	if a <= 0.5 {
		return RGB{R: uint8(math.Round(2 * a * 255)), G: 255}
	}
	return RGB{R: 255, G: uint8(math.Round((2 - 2*a) * 255))}
}

// ActivityRenderer colors entity pixels by their recent activity.
type ActivityRenderer struct {
	Surface     *Surface
	Labels      LabelGrid
	Entities    EntitySource
	Constraints []Constraint
}

// DrawActivity writes every matching entity pixel whose normalized activity
// is positive, colored through ramp. A nil provider is resolved by asking
// the constraint registry for the first activity capability; if none is
// declared the call fails with ErrNoActivityProvider. A nil ramp selects
// ActivityRamp. Raw activity is normalized by the provider's per-kind
// ceiling; kinds with a non-positive ceiling are skipped entirely.
func (r ActivityRenderer) DrawActivity(kind int, provider ActivityProvider, ramp RampFunc) error {
	if provider == nil {
		p, ok := FirstActivityProvider(r.Constraints)
		if !ok {
			return ErrNoActivityProvider
		}
		provider = p
	}
	if ramp == nil {
		ramp = ActivityRamp
	}
	pixels := r.Entities.EntityPixels()
	return r.Surface.Acquire(func(fb *Frame) error {
		for _, ep := range pixels {
			k := r.Entities.KindOf(ep.ID)
			if kind >= 0 && k != kind {
				continue
			}
			max := provider.MaxAct(k)
			if max <= 0 {
				continue
			}
			a := provider.Pxact(r.Labels.Index(ep.Coord)) / max
			if a <= 0 {
				continue
			}
			fb.Set(ep.Coord, ramp(a), 1)
		}
		return nil
	})
}
