package polar

import (
	"testing"

	"github.com/midbel/polar/canvas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLocation(t *testing.T) {
	want := []AxisLocation{
		EastAbove,
		NorthLeft,
		WestBelow,
		SouthRight,
		EastBelow,
		NorthRight,
		WestAbove,
		SouthLeft,
		EastAbove,
		NorthLeft,
	}
	for i, w := range want {
		assert.Equal(t, w, DefaultLocation(i), "slot %d", i)
	}
	assert.Equal(t, LocationUnset, DefaultLocation(-1))
}

func TestParseAxisLocation(t *testing.T) {
	for _, name := range []string{"north-left", "NORTH_LEFT", "North-Left"} {
		loc, err := ParseAxisLocation(name)
		require.NoError(t, err)
		assert.Equal(t, NorthLeft, loc)
	}
	_, err := ParseAxisLocation("north")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	var loc AxisLocation
	require.NoError(t, loc.UnmarshalText([]byte("west-above")))
	assert.Equal(t, WestAbove, loc)

	b, err := loc.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "west-above", string(b))

	_, err = LocationUnset.MarshalText()
	assert.Error(t, err)
}

func TestAxisLocationLayout(t *testing.T) {
	area := canvas.NewRect(0, 0, 200, 200)
	data := []struct {
		Location AxisLocation
		Quadrant canvas.Rect
		Cursor   float64
		Edge     Edge
	}{
		{
			Location: NorthRight,
			Quadrant: canvas.NewRect(20, 20, 80, 80),
			Cursor:   100,
			Edge:     EdgeRight,
		},
		{
			Location: NorthLeft,
			Quadrant: canvas.NewRect(100, 20, 80, 80),
			Cursor:   100,
			Edge:     EdgeLeft,
		},
		{
			Location: SouthLeft,
			Quadrant: canvas.NewRect(100, 100, 80, 80),
			Cursor:   100,
			Edge:     EdgeLeft,
		},
		{
			Location: SouthRight,
			Quadrant: canvas.NewRect(20, 100, 80, 80),
			Cursor:   100,
			Edge:     EdgeRight,
		},
		{
			Location: EastAbove,
			Quadrant: canvas.NewRect(100, 100, 80, 80),
			Cursor:   100,
			Edge:     EdgeTop,
		},
		{
			Location: EastBelow,
			Quadrant: canvas.NewRect(100, 20, 80, 80),
			Cursor:   100,
			Edge:     EdgeBottom,
		},
		{
			Location: WestAbove,
			Quadrant: canvas.NewRect(20, 100, 80, 80),
			Cursor:   100,
			Edge:     EdgeTop,
		},
		{
			Location: WestBelow,
			Quadrant: canvas.NewRect(20, 20, 80, 80),
			Cursor:   100,
			Edge:     EdgeBottom,
		},
	}
	for _, d := range data {
		quadrant, cursor, edge := d.Location.Layout(area, 20)
		assert.Equal(t, d.Quadrant, quadrant, d.Location.String())
		assert.Equal(t, d.Cursor, cursor, d.Location.String())
		assert.Equal(t, d.Edge, edge, d.Location.String())
	}
}

func TestAxisRegistry(t *testing.T) {
	var (
		p = NewPlot(nil, NewNumberAxis(""), nil)
		n int
	)
	p.OnChange(func(*Plot) { n++ })

	assert.Equal(t, EastAbove, p.AxisLocation(0))
	assert.Equal(t, NorthLeft, p.AxisLocation(1))
	assert.Equal(t, 1, p.AxisCount())

	second := NewNumberAxis("second")
	require.NoError(t, p.SetAxis(9, second))
	assert.Equal(t, 1, n)
	assert.Equal(t, 10, p.AxisCount())
	assert.Equal(t, NorthLeft, p.AxisLocation(9))
	assert.Equal(t, 9, p.IndexOfAxis(second))
	assert.Nil(t, p.Axis(5))

	require.NoError(t, p.SetAxis(9, second))
	assert.Equal(t, 1, n)

	require.NoError(t, p.SetAxisLocation(9, SouthLeft))
	assert.Equal(t, SouthLeft, p.AxisLocation(9))
	assert.Equal(t, 2, n)
	require.NoError(t, p.SetAxisLocation(9, SouthLeft))
	assert.Equal(t, 2, n)

	assert.ErrorIs(t, p.SetAxisLocation(1, LocationUnset), ErrInvalidArgument)
	assert.ErrorIs(t, p.SetAxis(-1, second), ErrInvalidArgument)

	require.NoError(t, p.SetAxisNotify(9, NewNumberAxis("third"), false))
	assert.Equal(t, 2, n)
	assert.Equal(t, -1, p.IndexOfAxis(second))

	second.SetInverted(true)
	assert.Equal(t, 2, n, "detached axis still notifies the plot")
}
