package polar

import (
	"testing"

	"github.com/midbel/polar/canvas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePlot() (*Plot, *DefaultRenderer) {
	var (
		dataset = NewDataset(
			NewSerie("north", NumberPoint(0, 1), NumberPoint(90, 2), NumberPoint(180, 1), NumberPoint(270, 3)),
		)
		renderer = NewRenderer()
	)
	renderer.ShapesVisible = false
	return NewPlot(dataset, NewNumberAxis("speed"), renderer), renderer
}

func drawTexts(rec *canvas.Recorder) []string {
	var list []string
	for _, c := range rec.Filter("DrawText") {
		list = append(list, c.Args[0].(string))
	}
	return list
}

func TestDrawAreaTooSmall(t *testing.T) {
	p, _ := samplePlot()
	require.NoError(t, p.SetAngleTickUnit(30))
	var (
		cfg   = p.Config()
		ticks = p.AngleTicks()
	)
	for _, area := range []canvas.Rect{
		canvas.NewRect(0, 0, 10, 100),
		canvas.NewRect(0, 0, 100, 10),
		canvas.NewRect(0, 0, 5, 5),
	} {
		rec := canvas.NewRecorder()
		state := p.Draw(rec, area, nil)
		assert.Equal(t, StateAreaTooSmall, state)
		assert.Zero(t, rec.Len())
		assert.Equal(t, StateIdle, p.State())
		assert.Equal(t, cfg, p.Config())
		assert.Equal(t, ticks, p.AngleTicks())
	}
	assert.Len(t, ticks, 8)

	state := p.Draw(canvas.NewRecorder(), canvas.NewRect(0, 0, 11, 11), nil)
	assert.Equal(t, StateDone, state)

	p.Draw(canvas.NewRecorder(), canvas.NewRect(0, 0, 1, 1), nil)
	assert.Equal(t, StateDone, p.State())
}

func TestDrawAreas(t *testing.T) {
	var (
		p, _ = samplePlot()
		rec  = canvas.NewRecorder()
		area = canvas.NewRect(0, 0, 400, 300)
		info RenderingInfo
	)
	state := p.Draw(rec, area, &info)
	assert.Equal(t, StateDone, state)
	assert.Equal(t, StateDone, p.State())
	assert.Equal(t, area, info.PlotArea)
	assert.Equal(t, canvas.NewRect(8, 4, 384, 292), info.DataArea)
	assert.True(t, info.HasData)

	fills := rec.Filter("FillRect")
	require.NotEmpty(t, fills)
	assert.Equal(t, info.DataArea, fills[0].Args[0])
	assert.Equal(t, "white", fills[0].Args[1])

	clips := rec.Filter("SetClip")
	require.Len(t, clips, 2)
	assert.Equal(t, &info.DataArea, clips[0].Args[0])
	assert.Nil(t, clips[1].Args[0])
	assert.Nil(t, rec.Clip())
	assert.Equal(t, 1.0, rec.Alpha())

	assert.Contains(t, drawTexts(rec), "speed")
}

func TestDrawClipIntersection(t *testing.T) {
	var (
		p, _ = samplePlot()
		rec  = canvas.NewRecorder()
		clip = canvas.NewRect(0, 0, 100, 100)
	)
	rec.SetClip(&clip)
	rec.Reset()

	p.Draw(rec, canvas.NewRect(0, 0, 400, 300), nil)
	clips := rec.Filter("SetClip")
	require.Len(t, clips, 2)
	want := canvas.NewRect(8, 4, 92, 96)
	assert.Equal(t, &want, clips[0].Args[0])
	assert.Equal(t, &clip, clips[1].Args[0])
}

func TestDrawForegroundAlpha(t *testing.T) {
	p, r := samplePlot()
	require.NoError(t, p.SetForegroundAlpha(0.5))
	r.Filled = true

	rec := canvas.NewRecorder()
	p.Draw(rec, canvas.NewRect(0, 0, 400, 300), nil)

	var alphas []float64
	for _, c := range rec.Filter("SetAlpha") {
		alphas = append(alphas, c.Args[0].(float64))
	}
	assert.Equal(t, []float64{0.5, 0.25, 0.5, 1}, alphas)
	assert.Len(t, rec.Filter("FillPath"), 1)
	assert.Len(t, rec.Filter("DrawPath"), 1)
}

func TestDrawReverseOrder(t *testing.T) {
	var (
		first  = NewDataset(NewSerie("a", NumberPoint(0, 1), NumberPoint(120, 2), NumberPoint(240, 1)))
		second = NewDataset(NewSerie("b", NumberPoint(0, 2), NumberPoint(120, 1), NumberPoint(240, 2)))
		red    = NewRenderer()
		blue   = NewRenderer()
	)
	red.Palette = Palette{"red"}
	red.ShapesVisible = false
	blue.Palette = Palette{"blue"}
	blue.ShapesVisible = false

	p := NewPlot(first, NewNumberAxis(""), red)
	require.NoError(t, p.SetDataset(1, second))
	require.NoError(t, p.SetRenderer(1, blue))

	rec := canvas.NewRecorder()
	p.Draw(rec, canvas.NewRect(0, 0, 400, 400), nil)

	paths := rec.Filter("DrawPath")
	require.Len(t, paths, 2)
	assert.Equal(t, "blue", paths[0].Args[1].(canvas.Stroke).Color)
	assert.Equal(t, "red", paths[1].Args[1].(canvas.Stroke).Color)
	assert.NotContains(t, drawTexts(rec), p.NoDataMessage())
}

func TestDrawNoData(t *testing.T) {
	data := []*Plot{
		NewPlot(nil, nil, nil),
		NewPlot(NewDataset(NewSerie("empty")), NewNumberAxis(""), NewRenderer()),
		NewPlot(NewDataset(NewSerie("orphan", NumberPoint(0, 1))), NewNumberAxis(""), nil),
	}
	for _, p := range data {
		var (
			rec  = canvas.NewRecorder()
			info RenderingInfo
		)
		state := p.Draw(rec, canvas.NewRect(0, 0, 200, 200), &info)
		assert.Equal(t, StateDone, state)
		assert.False(t, info.HasData)
		assert.Contains(t, drawTexts(rec), "No data")
		assert.Empty(t, rec.Filter("DrawPath"))
	}
}

func TestDrawCornerText(t *testing.T) {
	p, _ := samplePlot()
	p.AddCornerText("units: knots")

	rec := canvas.NewRecorder()
	p.Draw(rec, canvas.NewRect(0, 0, 400, 300), nil)

	rects := rec.Filter("DrawRect")
	require.Len(t, rects, 2)
	box := rects[1].Args[0].(canvas.Rect)
	assert.Equal(t, 291.0, box.X)
	assert.Equal(t, 100.0, box.W)

	calls := rec.Calls()
	last := calls[len(calls)-1]
	assert.Equal(t, "DrawText", last.Name)
	assert.Equal(t, "units: knots", last.Args[0])
	assert.Equal(t, 298.0, last.Args[1].(canvas.Point).X)
	assert.Equal(t, canvas.BottomLeft, last.Args[2])
}

func TestDrawGridlines(t *testing.T) {
	count := func(p *Plot, name string) int {
		rec := canvas.NewRecorder()
		p.Draw(rec, canvas.NewRect(0, 0, 400, 400), nil)
		return len(rec.Filter(name))
	}
	labels := func(p *Plot) []string {
		rec := canvas.NewRecorder()
		p.Draw(rec, canvas.NewRect(0, 0, 400, 400), nil)
		return drawTexts(rec)
	}

	p, _ := samplePlot()
	lines := count(p, "DrawLine")
	rings := count(p, "DrawEllipse")
	assert.NotZero(t, rings)
	assert.Contains(t, labels(p), "315")

	p.SetAngleLabelsVisible(false)
	assert.NotContains(t, labels(p), "315")

	p.SetAngleGridlinesVisible(false)
	assert.Equal(t, lines-8, count(p, "DrawLine"))

	p.SetAngleGridlinesVisible(true)
	p.SetAngleGridlineStroke(canvas.Stroke{})
	assert.Equal(t, lines-8, count(p, "DrawLine"))

	p.SetRadiusMinorGridlinesVisible(false)
	assert.LessOrEqual(t, count(p, "DrawEllipse"), rings)

	p.SetRadiusGridlinesVisible(false)
	assert.Zero(t, count(p, "DrawEllipse"))

	p, _ = samplePlot()
	require.NoError(t, p.SetRenderer(0, nil))
	assert.Zero(t, count(p, "DrawEllipse"))
}
