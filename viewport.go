package uicam

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for the view X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Viewport is one input-capable camera or surface: a screen rectangle with a
// draw priority, layer filters, ray range, and a 2D view used to convert
// screen points into world points.
type Viewport struct {
	Name string

	// Depth is the draw priority. Viewports with a higher depth are drawn on
	// top and receive input first.
	Depth float64
	// Rect is the screen-space rectangle this viewport covers.
	Rect Rect

	// Enabled and Active together decide whether the viewport takes part in
	// hit testing. Active mirrors "visible in the hierarchy".
	Enabled bool
	Active  bool

	// CullingMask is the set of layers the viewport draws.
	CullingMask LayerMask
	// EventMask is the set of layers that receive events through this
	// viewport. AllLayers means "same as CullingMask".
	EventMask LayerMask

	// RangeDistance limits the ray length. Values <= 0 use Far - Near.
	RangeDistance float64
	Near, Far     float64

	// X and Y are the world-space position the view centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the view rotation in radians (clockwise).
	Rotation float64

	view    affine
	invView affine
	dirty         bool
	// moved is set when the view changed since the router last looked.
	moved bool

	scrollTween *scrollAnim
}

// NewViewport creates an enabled, active viewport covering rect. The view is
// centered on the rect so that world coordinates equal screen coordinates
// until the view is moved.
func NewViewport(name string, rect Rect) *Viewport {
	return &Viewport{
		Name:          name,
		Rect:          rect,
		Enabled:       true,
		Active:        true,
		CullingMask:   AllLayers,
		EventMask:     AllLayers,
		RangeDistance: -1,
		Near:          0.3,
		Far:           1000,
		X:             rect.X + rect.Width/2,
		Y:             rect.Y + rect.Height/2,
		Zoom:          1.0,
		dirty:         true,
	}
}

// usable reports whether the viewport takes part in input this frame.
func (v *Viewport) usable() bool {
	return v != nil && v.Enabled && v.Active
}

// RayMask returns the layers a ray through this viewport may hit.
func (v *Viewport) RayMask() LayerMask {
	if v.EventMask == AllLayers {
		return v.CullingMask
	}
	return v.CullingMask & v.EventMask
}

// MaxDistance returns the ray length used for hit tests.
func (v *Viewport) MaxDistance() float64 {
	if v.RangeDistance > 0 {
		return v.RangeDistance
	}
	return v.Far - v.Near
}

// ScreenToViewport converts a screen point into normalized viewport space,
// where the viewport spans [0,1] on both axes.
func (v *Viewport) ScreenToViewport(sx, sy float64) (nx, ny float64) {
	return v.Rect.Normalize(sx, sy)
}

// ContainsScreen reports whether the screen point lies within the
// viewport's normalized bounds.
func (v *Viewport) ContainsScreen(sx, sy float64) bool {
	nx, ny := v.ScreenToViewport(sx, sy)
	return nx >= 0 && nx <= 1 && ny >= 0 && ny <= 1
}

// ScrollTo animates the view to the given world position over duration seconds.
func (v *Viewport) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	v.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(v.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(v.Y), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (v *Viewport) Scrolling() bool {
	return v.scrollTween != nil
}

// MarkDirty forces a recomputation of the view matrix. Call it after
// changing X, Y, Zoom, or Rotation directly.
func (v *Viewport) MarkDirty() {
	v.dirty = true
	v.moved = true
}

// update advances the scroll animation. Called by the router each tick with
// scaled time.
func (v *Viewport) update(dt float32) {
	prevX, prevY := v.X, v.Y

	if v.scrollTween != nil {
		if !v.scrollTween.doneX {
			val, done := v.scrollTween.tweenX.Update(dt)
			v.X = float64(val)
			v.scrollTween.doneX = done
		}
		if !v.scrollTween.doneY {
			val, done := v.scrollTween.tweenY.Update(dt)
			v.Y = float64(val)
			v.scrollTween.doneY = done
		}
		if v.scrollTween.doneX && v.scrollTween.doneY {
			v.scrollTween = nil
		}
	}

	if v.X != prevX || v.Y != prevY {
		v.dirty = true
		v.moved = true
	}
}

// takeMoved returns and clears the moved flag.
func (v *Viewport) takeMoved() bool {
	m := v.moved
	v.moved = false
	return m
}

// affine is a 2D affine matrix [a, b, c, d, tx, ty] mapping (x, y) to
// (a*x + c*y + tx, b*x + d*y + ty).
type affine [6]float64

var identityAffine = affine{1, 0, 0, 1, 0, 0}

// apply maps (x, y) through m.
func (m affine) apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// inverse returns the inverse of m. A singular matrix, such as a zero zoom,
// inverts to the identity.
func (m affine) inverse() affine {
	det := m[0]*m[3] - m[1]*m[2]
	if math.Abs(det) < 1e-12 {
		return identityAffine
	}
	inv := affine{m[3] / det, -m[1] / det, -m[2] / det, m[0] / det}
	inv[4], inv[5] = inv.apply(-m[4], -m[5])
	return inv
}

// updateView rebuilds the cached view if the viewport is dirty. The view
// centers (X, Y) in Rect, zooms, then rotates by -Rotation around the center.
func (v *Viewport) updateView() {
	if !v.dirty {
		return
	}
	v.dirty = false

	cx := v.Rect.X + v.Rect.Width/2
	cy := v.Rect.Y + v.Rect.Height/2
	sin, cos := math.Sincos(-v.Rotation)
	z := v.Zoom

	v.view = affine{
		z * cos, z * sin,
		-z * sin, z * cos,
		cx + z*(-cos*v.X+sin*v.Y),
		cy + z*(-sin*v.X-cos*v.Y),
	}
	v.invView = v.view.inverse()
}

// WorldToScreen converts world coordinates to screen coordinates.
func (v *Viewport) WorldToScreen(wx, wy float64) (sx, sy float64) {
	v.updateView()
	return v.view.apply(wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (v *Viewport) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	v.updateView()
	return v.invView.apply(sx, sy)
}
