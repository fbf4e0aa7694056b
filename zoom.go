package backdrop

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Default zoom range covered by a ZoomControl.
const (
	DefaultMinZoom = 1.0
	DefaultMaxZoom = 4.0
)

// ZoomControl maps a slider position in [0, 1] to a zoom factor and applies
// it to an Engine. The mapping follows Ease over [MinFactor, MaxFactor];
// ease.Linear gives a straight line.
type ZoomControl struct {
	MinFactor float64
	MaxFactor float64
	Ease      ease.TweenFunc

	engine *Engine
	value  float64

	tween  *gween.Tween
	target float64
}

// NewZoomControl creates a control for e covering [minFactor, maxFactor]
// with a linear mapping. The slider starts at 0.
func NewZoomControl(e *Engine, minFactor, maxFactor float64) *ZoomControl {
	if maxFactor < minFactor {
		minFactor, maxFactor = maxFactor, minFactor
	}
	return &ZoomControl{
		MinFactor: minFactor,
		MaxFactor: maxFactor,
		Ease:      ease.Linear,
		engine:    e,
	}
}

// Factor returns the zoom factor for slider position v. v is clamped to [0, 1].
func (z *ZoomControl) Factor(v float64) float64 {
	v = clamp01(v)
	fn := z.Ease
	if fn == nil {
		fn = ease.Linear
	}
	return float64(fn(float32(v), float32(z.MinFactor), float32(z.MaxFactor-z.MinFactor), 1))
}

// SetValue moves the slider to v (clamped to [0, 1]) and zooms the engine.
// A running animation is cancelled.
func (z *ZoomControl) SetValue(v float64) {
	z.tween = nil
	z.apply(v)
}

func (z *ZoomControl) apply(v float64) {
	z.value = clamp01(v)
	z.engine.SetZoom(z.Factor(z.value))
}

// Step moves the slider by d.
func (z *ZoomControl) Step(d float64) {
	z.SetValue(z.value + d)
}

// AnimateTo glides the slider to v over duration seconds. Calling it again
// while animating retargets from the current position. Update advances the
// animation.
func (z *ZoomControl) AnimateTo(v float64, duration float32) {
	z.target = clamp01(v)
	if duration <= 0 {
		z.SetValue(z.target)
		return
	}
	z.tween = gween.New(float32(z.value), float32(z.target), duration, ease.OutQuad)
}

// AnimateBy animates the slider by d relative to the current target.
func (z *ZoomControl) AnimateBy(d float64, duration float32) {
	base := z.value
	if z.tween != nil {
		base = z.target
	}
	z.AnimateTo(base+d, duration)
}

// Animating reports whether an animation is in progress.
func (z *ZoomControl) Animating() bool {
	return z.tween != nil
}

// Update advances a running animation by dt seconds.
func (z *ZoomControl) Update(dt float32) {
	if z.tween == nil {
		return
	}
	v, finished := z.tween.Update(dt)
	if finished {
		z.tween = nil
		v = float32(z.target)
	}
	z.apply(float64(v))
}

// Value returns the current slider position.
func (z *ZoomControl) Value() float64 {
	return z.value
}

// Rewind puts the slider back to 0 without touching the engine. Call it
// after the engine was reset by loading a new image.
func (z *ZoomControl) Rewind() {
	z.value = 0
	z.tween = nil
}
