package polar

import (
	"math"
	"testing"

	"github.com/midbel/polar/canvas"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestAngleTicks(t *testing.T) {
	data := []struct {
		Unit   float64
		Values []float64
	}{
		{
			Unit:   45,
			Values: []float64{0, 45, 90, 135, 180, 225, 270, 315},
		},
		{
			Unit:   100,
			Values: []float64{0, 100, 200, 300},
		},
		{
			Unit:   360,
			Values: []float64{0},
		},
		{
			Unit:   500,
			Values: []float64{0},
		},
	}
	for _, d := range data {
		planner := TickPlanner{
			Unit:   d.Unit,
			Offset: DefaultAngleOffset,
		}
		var got []float64
		for _, t := range planner.AngleTicks() {
			got = append(got, t.Value)
		}
		assert.Equal(t, d.Values, got, "unit %g", d.Unit)
	}
	assert.Nil(t, TickPlanner{Unit: 0}.AngleTicks())
	assert.Nil(t, TickPlanner{Unit: -45}.AngleTicks())
}

func TestAngleTickLabels(t *testing.T) {
	planner := TickPlanner{Unit: 22.5}
	ticks := planner.AngleTicks()
	if assert.Len(t, ticks, 16) {
		assert.Equal(t, "0", ticks[0].Label)
		assert.Equal(t, "22.5", ticks[1].Label)
		assert.Equal(t, "337.5", ticks[15].Label)
	}

	planner.Printer = newPrinter(language.French)
	ticks = planner.AngleTicks()
	if assert.Len(t, ticks, 16) {
		assert.Equal(t, "22,5", ticks[1].Label)
	}
}

func TestTextAnchor(t *testing.T) {
	clockwise := map[float64]canvas.Anchor{
		0:   canvas.BottomCenter,
		45:  canvas.BottomLeft,
		90:  canvas.CenterLeft,
		135: canvas.TopLeft,
		180: canvas.TopCenter,
		225: canvas.TopRight,
		270: canvas.CenterRight,
		315: canvas.BottomRight,
	}
	planner := TickPlanner{Unit: 45, Offset: -90}
	for angle, want := range clockwise {
		assert.Equal(t, want, planner.TextAnchor(angle), "clockwise %g", angle)
	}
	for _, tick := range planner.AngleTicks() {
		assert.Equal(t, clockwise[tick.Value], tick.Anchor)
		assert.Equal(t, tick.Anchor, tick.RotationAnchor)
	}

	counter := map[float64]canvas.Anchor{
		0:   canvas.BottomCenter,
		90:  canvas.CenterRight,
		180: canvas.TopCenter,
		270: canvas.CenterLeft,
	}
	planner.CounterClockwise = true
	for angle, want := range counter {
		assert.Equal(t, want, planner.TextAnchor(angle), "counter clockwise %g", angle)
	}

	planner = TickPlanner{Unit: 45}
	assert.Equal(t, canvas.CenterLeft, planner.TextAnchor(0))
	assert.Equal(t, canvas.TopLeft, planner.TextAnchor(30))
	assert.Equal(t, canvas.TopCenter, planner.TextAnchor(90))
	assert.Equal(t, canvas.CenterLeft, planner.TextAnchor(720))
	assert.Equal(t, canvas.TopLeft, planner.TextAnchor(45))
	assert.Equal(t, canvas.BottomLeft, planner.TextAnchor(359))
	assert.Equal(t, canvas.BottomLeft, planner.TextAnchor(-1))
	assert.Equal(t, canvas.CenterLeft, planner.TextAnchor(-1080))
}

func TestTextAnchorNotFinite(t *testing.T) {
	planner := TickPlanner{Unit: 45, Offset: -90}
	assert.Equal(t, canvas.Center, planner.TextAnchor(math.NaN()))
	assert.Equal(t, canvas.Center, planner.TextAnchor(math.Inf(-1)))

	planner.Offset = math.NaN()
	assert.Equal(t, canvas.Center, planner.TextAnchor(45))
}

func TestRadialTicks(t *testing.T) {
	ticks := []Tick{
		{Value: 0, Type: TickMajor},
		{Value: 1, Type: TickMinor},
		{Value: 2, Type: TickMajor},
	}
	assert.Len(t, RadialTicks(ticks, true), 3)

	major := RadialTicks(ticks, false)
	if assert.Len(t, major, 2) {
		assert.Equal(t, 0.0, major[0].Value)
		assert.Equal(t, 2.0, major[1].Value)
	}
}
