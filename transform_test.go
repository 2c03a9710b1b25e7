package polar

import (
	"image"
	"testing"

	"github.com/midbel/polar/canvas"
	"github.com/stretchr/testify/assert"
)

func fixedAxis(lower, upper float64) *NumberAxis {
	a := NewNumberAxis("")
	a.SetRange(NewRange(lower, upper))
	return a
}

func TestTransformerQuadrant(t *testing.T) {
	tf := Transformer{Margin: 20}

	q := tf.Quadrant(canvas.NewRect(0, 0, 200, 200))
	assert.Equal(t, canvas.NewRect(100, 100, 80, 80), q)

	q = tf.Quadrant(canvas.NewRect(0, 0, 300, 200))
	assert.Equal(t, canvas.NewRect(150, 100, 80, 80), q)
	assert.Equal(t, canvas.Pt(150, 100), tf.Center(canvas.NewRect(0, 0, 300, 200)))
}

func TestTransformerToDevice(t *testing.T) {
	var (
		axis = fixedAxis(0, 10)
		area = canvas.NewRect(0, 0, 200, 200)
	)
	data := []struct {
		Angle            float64
		Radius           float64
		CounterClockwise bool
		Want             image.Point
	}{
		{Angle: 0, Radius: 10, Want: image.Pt(100, 20)},
		{Angle: 90, Radius: 10, Want: image.Pt(180, 100)},
		{Angle: 180, Radius: 5, Want: image.Pt(100, 140)},
		{Angle: 270, Radius: 10, Want: image.Pt(20, 100)},
		{Angle: 90, Radius: 10, CounterClockwise: true, Want: image.Pt(20, 100)},
		{Angle: 45, Radius: 0, Want: image.Pt(100, 100)},
		{Angle: 45, Radius: -5, Want: image.Pt(100, 100)},
	}
	for _, d := range data {
		tf := Transformer{
			Offset:           DefaultAngleOffset,
			CounterClockwise: d.CounterClockwise,
			Margin:           DefaultMargin,
		}
		got := tf.ToDevice(d.Angle, d.Radius, axis, area)
		assert.Equal(t, d.Want, got, "angle %g, radius %g", d.Angle, d.Radius)
	}
}

func TestTransformerToDeviceBelowLowerBound(t *testing.T) {
	var (
		tf   = Transformer{Offset: DefaultAngleOffset, Margin: DefaultMargin}
		area = canvas.NewRect(0, 0, 200, 200)
		axis = fixedAxis(5, 10)
	)
	axis.SetRange(NewRange(5, 5))
	assert.Equal(t, NewRange(5, 10), axis.Range())
	assert.Equal(t, image.Pt(100, 100), tf.ToDevice(90, 1, axis, area))
	assert.Equal(t, image.Pt(100, 100), tf.ToDevice(90, 5, axis, area))
}

func TestPlotToDevice(t *testing.T) {
	var (
		area = canvas.NewRect(0, 0, 200, 200)
		p    = NewPlot(nil, nil, nil)
	)
	assert.Equal(t, canvas.Pt(100, 100), p.ToDevice(90, 10, nil, area))

	p.SetAxis(0, fixedAxis(0, 10))
	assert.Equal(t, canvas.Pt(180, 100), p.ToDevice(90, 10, nil, area))

	p.SetAngleOffset(0)
	assert.Equal(t, canvas.Pt(100, 180), p.ToDevice(90, 10, nil, area))
}
