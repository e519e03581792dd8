// Package viewport implements the zoom and pan behaviour of the canvas
// independently of any GUI toolkit.
package viewport

import (
	"math"

	"github.com/ha1tch/simpleedit/bitmap"
)

const (
	// MinZoom is the smallest zoom factor; there is no upper bound.
	MinZoom = 0.1
	// ZoomStep is added or subtracted on every zoom gesture.
	ZoomStep = 0.1

	// precision used to strip floating point drift from the factor and
	// from scaled sizes before truncation
	precision = 1e6
)

// Modifiers is the set of modifier keys held during a gesture.
type Modifiers uint8

const (
	// ModPan turns the wheel into horizontal scrolling (Control).
	ModPan Modifiers = 1 << iota
	// ModZoom turns the wheel into zooming (Alt).
	ModZoom
)

// Gesture is a scroll input. Positive DeltaY means scrolling down.
type Gesture struct {
	DeltaY    float64
	Modifiers Modifiers
}

// ActionKind says what a gesture was classified as.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionPan
	ActionZoom
)

func (k ActionKind) String() string {
	switch k {
	case ActionPan:
		return "pan"
	case ActionZoom:
		return "zoom"
	default:
		return "none"
	}
}

// Action is the request derived from a Gesture.
type Action struct {
	Kind  ActionKind
	Delta float64
}

// Classify maps a gesture to an action. When the gesture is claimed the
// returned residual has DeltaY zeroed so the scroll container does not
// handle it a second time. Pan takes precedence over zoom.
func Classify(g Gesture) (Action, Gesture) {
	switch {
	case g.Modifiers&ModPan != 0:
		a := Action{Kind: ActionPan, Delta: g.DeltaY}
		g.DeltaY = 0
		return a, g
	case g.Modifiers&ModZoom != 0:
		a := Action{Kind: ActionZoom, Delta: g.DeltaY}
		g.DeltaY = 0
		return a, g
	}
	return Action{Kind: ActionNone}, g
}

// PanDelta is the amount to add to a scroll value for a pan of delta
// with the given step increment. It does not clamp.
func PanDelta(delta, stepIncrement float64) float64 {
	return delta * stepIncrement
}

// Transform owns the source bitmap, the zoom factor and the scaled bitmap
// currently on display.
type Transform struct {
	original  *bitmap.Bitmap
	displayed *bitmap.Bitmap
	factor    float64
}

// New returns a Transform at zoom 1.0 displaying src as is.
func New(src *bitmap.Bitmap) *Transform {
	return &Transform{original: src, displayed: src, factor: 1.0}
}

// NewAt returns a Transform whose factor starts at f. The displayed bitmap
// is the unscaled source until the first zoom step.
func NewAt(src *bitmap.Bitmap, f float64) *Transform {
	t := New(src)
	t.factor = math.Max(f, MinZoom)
	return t
}

func (t *Transform) Factor() float64 { return t.factor }
func (t *Transform) Original() *bitmap.Bitmap { return t.original }
func (t *Transform) Displayed() *bitmap.Bitmap { return t.displayed }

// ScaledSize returns the dimensions of the source at factor f, truncated
// toward zero.
func (t *Transform) ScaledSize(f float64) (int, int) {
	return scale(t.original.Width(), f), scale(t.original.Height(), f)
}

func scale(n int, f float64) int {
	return int(math.Trunc(math.Round(float64(n)*f*precision) / precision))
}

// ApplyZoom steps the factor by +ZoomStep when deltaY > 0 and by
// -ZoomStep otherwise, floored at MinZoom, and replaces the displayed
// bitmap with a bilinear rescale of the source. If the new size is
// degenerate the step is rejected and the previous state kept.
func (t *Transform) ApplyZoom(deltaY float64) (float64, *bitmap.Bitmap, error) {
	step := -ZoomStep
	if deltaY > 0 {
		step = ZoomStep
	}
	f := math.Round((t.factor+step)*precision) / precision
	if f < MinZoom {
		f = MinZoom
	}

	w, h := t.ScaledSize(f)
	scaled, err := bitmap.Resample(t.original, w, h)
	if err != nil {
		return t.factor, t.displayed, err
	}
	t.factor = f
	t.displayed = scaled
	return t.factor, t.displayed, nil
}

// Handle classifies g and performs the resulting action: pans are applied
// to h, zooms to the transform. The residual gesture is returned for the
// container's own handling.
func (t *Transform) Handle(g Gesture, h *ScrollBar) (Gesture, error) {
	a, rest := Classify(g)
	switch a.Kind {
	case ActionPan:
		h.Scroll(a.Delta)
	case ActionZoom:
		if _, _, err := t.ApplyZoom(a.Delta); err != nil {
			return rest, err
		}
	}
	return rest, nil
}
