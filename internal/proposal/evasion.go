package proposal

import "time"

const (
	// Threshold is the rejection count from which the No button evades.
	Threshold = 4

	// DefaultMargin keeps the evasive button this far from the viewport edges.
	DefaultMargin = 20.0

	// TransitionDuration is how long a relocation animates; the animation
	// guard is held for the same time.
	TransitionDuration = 300 * time.Millisecond

	// HoverMessageDuration is how long a hover taunt stays visible.
	HoverMessageDuration = 1500 * time.Millisecond
)

// Size is a width/height pair in surface units (pixels, cells).
type Size struct {
	W, H float64
}

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// Rect is an axis-aligned box with its origin at the top-left.
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the point lies inside r. The right and bottom
// edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Viewport carries two independent measurements of the visible area. Surfaces
// disagree about which one is accurate, so the larger of the two wins per axis.
type Viewport struct {
	Reported Size // size announced by the surface (resize events)
	Probed   Size // size measured directly, zero when unavailable
}

// Bounds returns the per-axis maximum of both measurements.
func (v Viewport) Bounds() Size {
	return Size{W: max(v.Reported.W, v.Probed.W), H: max(v.Reported.H, v.Probed.H)}
}

// Transition describes how a placement is animated.
type Transition struct {
	Duration time.Duration
	Easing   CubicBezier
}

// Placement is an absolute position for the evasive button.
type Placement struct {
	X, Y       float64
	Transition Transition
}

// Surface exposes the geometry the view needs to relocate the No button.
// Either method returns false while the surface is not laid out yet.
type Surface interface {
	NoButton() (Rect, bool)
	Viewport() (Viewport, bool)
}

// Evade draws a new position for button inside vp. Each axis is drawn
// uniformly from [margin, bound-dim-margin]; when that span is smaller than the
// margin the axis sits at the margin. Returns false if the button or the
// viewport has no size.
func Evade(button Rect, vp Viewport, margin float64, rng Rand) (Placement, bool) {
	bounds := vp.Bounds()
	if button.Empty() || bounds.Empty() {
		return Placement{}, false
	}
	return Placement{
		X: evadeAxis(bounds.W, button.W, margin, rng),
		Y: evadeAxis(bounds.H, button.H, margin, rng),
		Transition: Transition{
			Duration: TransitionDuration,
			Easing:   Ease,
		},
	}, true
}

func evadeAxis(bound, dim, margin float64, rng Rand) float64 {
	span := bound - dim - margin
	if span <= margin {
		return margin
	}
	return margin + rng.Float64()*(span-margin)
}
