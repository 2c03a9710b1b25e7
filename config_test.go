package polar

import (
	"testing"

	"github.com/midbel/polar/canvas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, DefaultMargin, cfg.Margin)
	assert.Equal(t, DefaultAngleTickUnit, cfg.AngleTickUnit)
	assert.Equal(t, DefaultAngleOffset, cfg.AngleOffset)
	assert.Equal(t, InsetsConfig{Unit: "absolute", Top: 4, Left: 8, Bottom: 4, Right: 8}, cfg.Insets)
	assert.Equal(t, StrokeConfig{Color: "gray", Width: 0.5, Style: "dashed"}, cfg.AngleGridline)
	assert.True(t, cfg.AngleGridlines)
	assert.Equal(t, 1.0, cfg.ForegroundAlpha)
	assert.Empty(t, cfg.Axes)
	assert.Empty(t, cfg.Bindings)
}

func configuredPlot() *Plot {
	var (
		dataset = NewDataset(NewSerie("north", NumberPoint(0, 1), NumberPoint(90, 4)))
		p       = NewPlot(dataset, NewNumberAxis("speed"), NewRenderer(), WithLanguage(language.French))
	)
	p.SetAngleOffset(0)
	p.SetCounterClockwise(true)
	p.SetAngleTickUnit(30)
	p.SetRadiusMinorGridlinesVisible(false)
	p.SetOutline(canvas.Stroke{Color: "black", Width: 2, Style: canvas.StyleDotted})
	p.AddCornerText("source: buoy 42")

	first := p.Axis(0).(*NumberAxis)
	first.TickCount = 11
	first.Decimals = 2
	first.Nice = false
	first.Visible = false
	first.IncludeZero = false
	first.UpperMargin = 0.1
	first.TickLength = 6
	first.LabelFont = canvas.NewFont(9, "monospace")
	first.Line = canvas.Stroke{Color: "navy", Width: 1, Style: canvas.StyleDashed}

	second := NewNumberAxis("gust")
	second.SetRange(NewRange(0, 50))
	second.SetInverted(true)
	p.SetAxis(1, second)
	p.SetAxisLocation(1, SouthLeft)
	p.SetDataset(1, NewDataset(NewSerie("gust", NumberPoint(0, 30))))
	p.MapDatasetToAxes(1, []int{1, 0})
	first.Configure()
	return p
}

func TestConfigRoundTrip(t *testing.T) {
	var (
		p   = configuredPlot()
		cfg = p.Config()
	)
	assert.Equal(t, "fr", cfg.Language)
	require.Len(t, cfg.Axes, 2)
	second := DefaultAxisConfig(1)
	second.Location = "south-left"
	second.Label = "gust"
	second.Lower, second.Upper = 0, 50
	second.AutoRange = false
	second.Inverted = true
	assert.Equal(t, second, cfg.Axes[1])
	assert.True(t, cfg.Axes[0].AutoRange)
	assert.Equal(t, 11, *cfg.Axes[0].TickCount)
	assert.Equal(t, &FontConfig{Size: 9, Family: []string{"monospace"}, Color: "black"}, cfg.Axes[0].LabelFont)
	assert.Equal(t, []BindingConfig{{Dataset: 1, Axes: []int{1, 0}}}, cfg.Bindings)
	assert.Equal(t, "dotted", cfg.Outline.Style)

	other := NewPlot(p.Dataset(0), nil, nil)
	other.SetDataset(1, p.Dataset(1))
	n := countChanges(other)
	require.NoError(t, other.Apply(cfg))
	assert.NotZero(t, *n)
	assert.Equal(t, cfg, other.Config())

	assert.Equal(t, language.French, other.Language())
	first := other.Axis(0).(*NumberAxis)
	assert.Equal(t, "speed", first.Label)
	assert.Equal(t, 11, first.TickCount)
	assert.Equal(t, 2, first.Decimals)
	assert.False(t, first.Nice)
	assert.False(t, first.Visible)
	assert.False(t, first.IncludeZero)
	assert.Equal(t, 0.1, first.UpperMargin)
	assert.Equal(t, 6.0, first.TickLength)
	assert.Equal(t, []string{"monospace"}, first.LabelFont.Family)
	assert.Equal(t, canvas.StyleDashed, first.Line.Style)
	assert.Equal(t, []int{1, 0}, other.AxesForDataset(1))
	assert.Equal(t, canvas.StyleDotted, other.Outline().Style)
}

func TestConfigApplyErrors(t *testing.T) {
	var (
		p   = NewPlot(nil, nil, nil)
		cfg = DefaultConfig()
	)
	cfg.Margin = 5
	cfg.AngleTickUnit = 0
	cfg.ForegroundAlpha = 2
	cfg.Outline.Style = "wavy"
	cfg.Axes = []AxisConfig{
		{Index: 0, Location: "east-above", AutoRange: true},
		{Index: -1},
		{Index: 2, Location: "upward"},
	}
	cfg.Bindings = []BindingConfig{{Dataset: 0, Axes: []int{0, 0}}}

	err := p.Apply(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.Equal(t, 5, p.Margin())
	assert.Equal(t, DefaultAngleTickUnit, p.AngleTickUnit())
	assert.Equal(t, 1.0, p.ForegroundAlpha())
	assert.Equal(t, DefaultOutlineStroke, p.Outline())
	assert.NotNil(t, p.Axis(0))
	assert.Nil(t, p.AxesForDataset(0))

	cfg = DefaultConfig()
	cfg.Language = "not a language!"
	assert.Error(t, p.Apply(cfg))
}

func TestConfigApplyAxisSettings(t *testing.T) {
	var (
		p     = NewPlot(nil, NewNumberAxis(""), nil)
		cfg   = DefaultConfig()
		ticks = 0
		depth = -2
	)
	cfg.Axes = []AxisConfig{
		{Index: 0, Location: "east-above", Lower: 5, Upper: 5, TickCount: &ticks, Decimals: &depth},
	}
	err := p.Apply(cfg)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	axis := p.Axis(0).(*NumberAxis)
	assert.Equal(t, DefaultTickCount, axis.TickCount)
	assert.Equal(t, -1, axis.Decimals)
	assert.True(t, axis.AutoRange())
	assert.Greater(t, axis.Range().Len(), 0.0)

	cfg.Axes = []AxisConfig{{Index: 0, Location: "east-above", AutoRange: true}}
	require.NoError(t, p.Apply(cfg))
	assert.Equal(t, DefaultTickCount, axis.TickCount)
	assert.True(t, axis.Nice)
}

func TestConfigApplyReplacesBindings(t *testing.T) {
	p := NewPlot(NewDataset(), NewNumberAxis(""), nil)
	p.SetAxis(1, NewNumberAxis("gust"))
	require.NoError(t, p.MapDatasetToAxis(3, 1))

	cfg := DefaultConfig()
	cfg.Axes = []AxisConfig{DefaultAxisConfig(0)}
	require.NoError(t, p.Apply(cfg))
	assert.Empty(t, p.Config().Bindings)
	assert.Nil(t, p.AxesForDataset(3))
	assert.NotNil(t, p.Axis(1))

	cfg.Bindings = []BindingConfig{{Dataset: 0, Axes: []int{1}}, {Dataset: 1, Axes: []int{5}}}
	err := p.Apply(cfg)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, []int{1}, p.AxesForDataset(0))
	assert.Nil(t, p.AxesForDataset(1))
}

func TestPlotClone(t *testing.T) {
	p := configuredPlot()
	p.SetFixedLegendItems([]LegendItem{{Label: "fixed"}})

	other, err := p.Clone()
	require.NoError(t, err)
	assert.Equal(t, p.Config(), other.Config())
	assert.Same(t, p.Dataset(0), other.Dataset(0))
	assert.Same(t, p.Dataset(1), other.Dataset(1))
	assert.NotSame(t, p.Axis(0), other.Axis(0))
	assert.NotSame(t, p.Renderer(0), other.Renderer(0))
	assert.Equal(t, p.LegendItems(), other.LegendItems())
	assert.Equal(t, p.RefreshAngleTicks(), other.AngleTicks())

	other.Zoom(2)
	assert.Equal(t, NewRange(0, 50), p.Axis(1).Range())
	assert.Equal(t, NewRange(0, 100), other.Axis(1).Range())

	other.AddCornerText("copy")
	assert.Equal(t, []string{"source: buoy 42"}, p.CornerText())
}
