package viewport

import "math"

// ScrollBar models one axis of a scrollable container: a value within
// [0, Upper] and the step increment used for wheel input.
type ScrollBar struct {
	Value float64
	Step  float64
	Upper float64
}

// NewScrollBar returns a scroll bar at 0 with the given step increment.
func NewScrollBar(step float64) *ScrollBar {
	return &ScrollBar{Step: step}
}

// Scroll moves the value by PanDelta(delta, Step) and clamps it.
func (s *ScrollBar) Scroll(delta float64) {
	s.Value = s.clamp(s.Value + PanDelta(delta, s.Step))
}

// SetRange sets the scrollable extent from the content and view lengths
// and re-clamps the current value.
func (s *ScrollBar) SetRange(content, view float64) {
	s.Upper = math.Max(content-view, 0)
	s.Value = s.clamp(s.Value)
}

func (s *ScrollBar) clamp(v float64) float64 {
	return math.Min(math.Max(v, 0), s.Upper)
}
