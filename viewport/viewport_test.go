package viewport

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/simpleedit/bitmap"
)

func source(w, h int) *bitmap.Bitmap {
	return bitmap.FromImage(image.NewRGBA(image.Rect(0, 0, w, h)))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		gesture Gesture
		kind    ActionKind
		delta   float64
		rest    float64
	}{
		{"plain", Gesture{DeltaY: 3}, ActionNone, 0, 3},
		{"pan", Gesture{DeltaY: -2, Modifiers: ModPan}, ActionPan, -2, 0},
		{"zoom", Gesture{DeltaY: 1.5, Modifiers: ModZoom}, ActionZoom, 1.5, 0},
		{"pan wins", Gesture{DeltaY: 4, Modifiers: ModPan | ModZoom}, ActionPan, 4, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a, rest := Classify(test.gesture)
			assert.Equal(t, test.kind, a.Kind)
			assert.Equal(t, test.delta, a.Delta)
			assert.Equal(t, test.rest, rest.DeltaY)
			assert.Equal(t, test.gesture.Modifiers, rest.Modifiers)
		})
	}
}

func TestPanDeltaLinear(t *testing.T) {
	for _, d := range []float64{-3, -0.5, 0, 1, 7.25} {
		assert.Equal(t, 2*PanDelta(d, 20), PanDelta(2*d, 20))
	}
	assert.Equal(t, -60.0, PanDelta(-3, 20))
}

func TestZoomIn(t *testing.T) {
	tr := New(source(100, 50))
	f, out, err := tr.ApplyZoom(5)
	require.NoError(t, err)
	assert.Equal(t, 1.1, f)
	assert.Equal(t, 110, out.Width())
	assert.Equal(t, 55, out.Height())
	assert.Same(t, out, tr.Displayed())
	assert.Equal(t, 100, tr.Original().Width())
}

func TestZoomOutZeroDelta(t *testing.T) {
	tr := New(source(100, 50))
	f, _, err := tr.ApplyZoom(0)
	require.NoError(t, err)
	assert.Equal(t, 0.9, f)
}

func TestZoomStepsAreExact(t *testing.T) {
	tr := New(source(100, 100))
	for i := 0; i < 7; i++ {
		_, _, err := tr.ApplyZoom(-1)
		require.NoError(t, err)
	}
	assert.Equal(t, 0.3, tr.Factor())
	assert.Equal(t, 30, tr.Displayed().Width())

	for i := 0; i < 12; i++ {
		_, _, err := tr.ApplyZoom(1)
		require.NoError(t, err)
	}
	assert.Equal(t, 1.5, tr.Factor())
	assert.Equal(t, 150, tr.Displayed().Width())
}

func TestZoomFloor(t *testing.T) {
	tr := NewAt(source(200, 100), 0.15)
	for i := 0; i < 9; i++ {
		f, _, err := tr.ApplyZoom(-3)
		require.NoError(t, err)
		assert.Equal(t, MinZoom, f)
	}
	assert.Equal(t, 20, tr.Displayed().Width())
	assert.Equal(t, 10, tr.Displayed().Height())

	for _, start := range []float64{0.1, 0.55, 1, 3.7} {
		tr := NewAt(source(200, 100), start)
		for i := 0; i < 50; i++ {
			_, _, err := tr.ApplyZoom(-1)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, tr.Factor(), MinZoom)
		}
		assert.Equal(t, MinZoom, tr.Factor())
	}
}

func TestZoomDeterministic(t *testing.T) {
	a := NewAt(source(333, 77), 1.3)
	b := NewAt(source(333, 77), 1.3)
	_, x, err := a.ApplyZoom(1)
	require.NoError(t, err)
	_, y, err := b.ApplyZoom(1)
	require.NoError(t, err)
	assert.Equal(t, x.Width(), y.Width())
	assert.Equal(t, x.Height(), y.Height())
}

func TestZoomRejectsDegenerate(t *testing.T) {
	tr := NewAt(source(5, 5), 0.3)
	f, out, err := tr.ApplyZoom(-1)
	require.NoError(t, err)
	assert.Equal(t, 0.2, f)
	assert.Equal(t, 1, out.Width())

	prev := tr.Displayed()
	f, out, err = tr.ApplyZoom(-1)
	require.ErrorIs(t, err, bitmap.ErrInvalidDimension)
	assert.Equal(t, 0.2, f)
	assert.Same(t, prev, out)
	assert.Equal(t, 0.2, tr.Factor())
	assert.Same(t, prev, tr.Displayed())
}

func TestHandle(t *testing.T) {
	tr := New(source(100, 100))
	h := NewScrollBar(20)
	h.SetRange(1000, 300)

	rest, err := tr.Handle(Gesture{DeltaY: 3, Modifiers: ModPan}, h)
	require.NoError(t, err)
	assert.Equal(t, 60.0, h.Value)
	assert.Zero(t, rest.DeltaY)
	assert.Equal(t, 1.0, tr.Factor())

	rest, err = tr.Handle(Gesture{DeltaY: 1, Modifiers: ModZoom}, h)
	require.NoError(t, err)
	assert.Equal(t, 1.1, tr.Factor())
	assert.Zero(t, rest.DeltaY)
	assert.Equal(t, 60.0, h.Value)

	rest, err = tr.Handle(Gesture{DeltaY: 2}, h)
	require.NoError(t, err)
	assert.Equal(t, 2.0, rest.DeltaY)
	assert.Equal(t, 1.1, tr.Factor())
	assert.Equal(t, 60.0, h.Value)
}

func TestScrollBar(t *testing.T) {
	s := NewScrollBar(10)
	s.SetRange(500, 200)
	assert.Equal(t, 300.0, s.Upper)

	s.Scroll(-4)
	assert.Zero(t, s.Value)
	s.Scroll(12)
	assert.Equal(t, 120.0, s.Value)
	s.Scroll(100)
	assert.Equal(t, 300.0, s.Value)

	s.SetRange(250, 200)
	assert.Equal(t, 50.0, s.Value)
	s.SetRange(100, 200)
	assert.Zero(t, s.Upper)
	assert.Zero(t, s.Value)
}
