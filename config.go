package polar

import (
	"errors"
	"fmt"
	"slices"

	"github.com/midbel/polar/canvas"
	"golang.org/x/text/language"
)

type StrokeConfig struct {
	Color string  `toml:"color" yaml:"color"`
	Width float64 `toml:"width" yaml:"width"`
	Style string  `toml:"style,omitempty" yaml:"style,omitempty"`
}

func strokeConfig(s canvas.Stroke) StrokeConfig {
	return StrokeConfig{
		Color: s.Color,
		Width: s.Width,
		Style: s.Style.String(),
	}
}

func (c StrokeConfig) Stroke() (canvas.Stroke, error) {
	style, ok := canvas.ParseLineStyle(c.Style)
	if !ok {
		return canvas.Stroke{}, invalidArgument("style", fmt.Sprintf("%q not recognized", c.Style))
	}
	s := canvas.Stroke{
		Color: c.Color,
		Width: c.Width,
		Style: style,
	}
	return s, nil
}

type FontConfig struct {
	Size   float64  `toml:"size" yaml:"size"`
	Family []string `toml:"family,omitempty" yaml:"family,omitempty"`
	Color  string   `toml:"color" yaml:"color"`
	Bold   bool     `toml:"bold" yaml:"bold"`
}

func fontConfig(f canvas.Font) FontConfig {
	return FontConfig{
		Size:   f.Size,
		Family: slices.Clone(f.Family),
		Color:  f.Color,
		Bold:   f.Bold,
	}
}

func (c FontConfig) Font() canvas.Font {
	return canvas.Font{
		Size:   c.Size,
		Family: slices.Clone(c.Family),
		Color:  c.Color,
		Bold:   c.Bold,
	}
}

type InsetsConfig struct {
	Unit   string  `toml:"unit" yaml:"unit"`
	Top    float64 `toml:"top" yaml:"top"`
	Left   float64 `toml:"left" yaml:"left"`
	Bottom float64 `toml:"bottom" yaml:"bottom"`
	Right  float64 `toml:"right" yaml:"right"`
}

func (c InsetsConfig) Insets() (Insets, error) {
	unit, err := ParseUnitType(c.Unit)
	if err != nil {
		return Insets{}, err
	}
	i := NewInsets(c.Top, c.Left, c.Bottom, c.Right)
	i.Unit = unit
	return i, i.Validate()
}

// AxisConfig describes one axis slot. The optional settings are left
// untouched on the axis when nil.
type AxisConfig struct {
	Index     int     `toml:"index" yaml:"index"`
	Location  string  `toml:"location" yaml:"location"`
	Label     string  `toml:"label,omitempty" yaml:"label,omitempty"`
	Lower     float64 `toml:"lower" yaml:"lower"`
	Upper     float64 `toml:"upper" yaml:"upper"`
	AutoRange bool    `toml:"auto-range" yaml:"auto-range"`
	Inverted  bool    `toml:"inverted" yaml:"inverted"`

	TickCount   *int          `toml:"tick-count,omitempty" yaml:"tick-count,omitempty"`
	Decimals    *int          `toml:"decimals,omitempty" yaml:"decimals,omitempty"`
	TickLength  *float64      `toml:"tick-length,omitempty" yaml:"tick-length,omitempty"`
	IncludeZero *bool         `toml:"include-zero,omitempty" yaml:"include-zero,omitempty"`
	Nice        *bool         `toml:"nice,omitempty" yaml:"nice,omitempty"`
	UpperMargin *float64      `toml:"upper-margin,omitempty" yaml:"upper-margin,omitempty"`
	Visible     *bool         `toml:"visible,omitempty" yaml:"visible,omitempty"`
	LabelFont   *FontConfig   `toml:"label-font,omitempty" yaml:"label-font,omitempty"`
	Line        *StrokeConfig `toml:"line,omitempty" yaml:"line,omitempty"`
}

// DefaultAxisConfig returns the configuration of a new number axis stored
// in the given slot.
func DefaultAxisConfig(index int) AxisConfig {
	return axisConfig(index, DefaultLocation(index), NewNumberAxis(""))
}

func axisConfig(index int, loc AxisLocation, a ValueAxis) AxisConfig {
	ac := AxisConfig{
		Index:     index,
		Location:  loc.String(),
		Lower:     a.LowerBound(),
		Upper:     a.UpperBound(),
		AutoRange: a.AutoRange(),
		Inverted:  a.Inverted(),
	}
	n, ok := a.(*NumberAxis)
	if !ok {
		return ac
	}
	var (
		font = fontConfig(n.LabelFont)
		line = strokeConfig(n.Line)
	)
	ac.Label = n.Label
	ac.TickCount = ptr(n.TickCount)
	ac.Decimals = ptr(n.Decimals)
	ac.TickLength = ptr(n.TickLength)
	ac.IncludeZero = ptr(n.IncludeZero)
	ac.Nice = ptr(n.Nice)
	ac.UpperMargin = ptr(n.UpperMargin)
	ac.Visible = ptr(n.Visible)
	ac.LabelFont = &font
	ac.Line = &line
	return ac
}

// configure copies the settings of c to the axis. Invalid values are
// reported and leave the axis unchanged.
func (c AxisConfig) configure(n *NumberAxis) error {
	var errs []error
	if c.TickCount != nil {
		if *c.TickCount <= 0 {
			errs = append(errs, invalidArgument("tick-count", fmt.Sprintf("%d not strictly positive", *c.TickCount)))
		} else {
			n.TickCount = *c.TickCount
		}
	}
	if c.Decimals != nil {
		if *c.Decimals < -1 {
			errs = append(errs, invalidArgument("decimals", fmt.Sprintf("%d lower than -1", *c.Decimals)))
		} else {
			n.Decimals = *c.Decimals
		}
	}
	if c.TickLength != nil {
		if *c.TickLength < 0 {
			errs = append(errs, invalidArgument("tick-length", fmt.Sprintf("negative length %g", *c.TickLength)))
		} else {
			n.TickLength = *c.TickLength
		}
	}
	if c.UpperMargin != nil {
		if *c.UpperMargin < 0 {
			errs = append(errs, invalidArgument("upper-margin", fmt.Sprintf("negative margin %g", *c.UpperMargin)))
		} else {
			n.UpperMargin = *c.UpperMargin
		}
	}
	if c.IncludeZero != nil {
		n.IncludeZero = *c.IncludeZero
	}
	if c.Nice != nil {
		n.Nice = *c.Nice
	}
	if c.Visible != nil {
		n.Visible = *c.Visible
	}
	if c.LabelFont != nil {
		n.LabelFont = c.LabelFont.Font()
	}
	if c.Line != nil {
		if s, err := c.Line.Stroke(); err != nil {
			errs = append(errs, err)
		} else {
			n.Line = s
		}
	}
	return errors.Join(errs...)
}

type BindingConfig struct {
	Dataset int   `toml:"dataset" yaml:"dataset"`
	Axes    []int `toml:"axes" yaml:"axes"`
}

// Config is the serializable state of a plot. Datasets and renderers are
// not part of it.
type Config struct {
	Language             string          `toml:"language" yaml:"language"`
	Margin               int             `toml:"margin" yaml:"margin"`
	Insets               InsetsConfig    `toml:"insets" yaml:"insets"`
	AngleOffset          float64         `toml:"angle-offset" yaml:"angle-offset"`
	AngleTickUnit        float64         `toml:"angle-unit" yaml:"angle-unit"`
	CounterClockwise     bool            `toml:"counter-clockwise" yaml:"counter-clockwise"`
	AngleLabels          bool            `toml:"angle-labels" yaml:"angle-labels"`
	AngleLabelFont       FontConfig      `toml:"angle-label-font" yaml:"angle-label-font"`
	AngleGridlines       bool            `toml:"angle-gridlines" yaml:"angle-gridlines"`
	AngleGridline        StrokeConfig    `toml:"angle-gridline" yaml:"angle-gridline"`
	RadiusGridlines      bool            `toml:"radius-gridlines" yaml:"radius-gridlines"`
	RadiusMinorGridlines bool            `toml:"radius-minor-gridlines" yaml:"radius-minor-gridlines"`
	RadiusGridline       StrokeConfig    `toml:"radius-gridline" yaml:"radius-gridline"`
	ForegroundAlpha      float64         `toml:"alpha" yaml:"alpha"`
	Background           string          `toml:"background" yaml:"background"`
	Outline              StrokeConfig    `toml:"outline" yaml:"outline"`
	CornerText           []string        `toml:"notes,omitempty" yaml:"notes,omitempty"`
	Axes                 []AxisConfig    `toml:"axis,omitempty" yaml:"axis,omitempty"`
	Bindings             []BindingConfig `toml:"map,omitempty" yaml:"map,omitempty"`
}

// DefaultConfig returns the configuration of a plot created without
// options.
func DefaultConfig() Config {
	return NewPlot(nil, nil, nil).Config()
}

func (p *Plot) Config() Config {
	cfg := Config{
		Language: p.lang.String(),
		Margin:   p.margin,
		Insets: InsetsConfig{
			Unit:   p.insets.Unit.String(),
			Top:    p.insets.Top,
			Left:   p.insets.Left,
			Bottom: p.insets.Bottom,
			Right:  p.insets.Right,
		},
		AngleOffset:          p.angleOffset,
		AngleTickUnit:        p.angleTickUnit,
		CounterClockwise:     p.counterClockwise,
		AngleLabels:          p.angleLabelsVisible,
		AngleLabelFont:       fontConfig(p.angleLabelFont),
		AngleGridlines:       p.angleGridlinesVisible,
		AngleGridline:        strokeConfig(p.angleGridline),
		RadiusGridlines:      p.radiusGridlinesVisible,
		RadiusMinorGridlines: p.radiusMinorGridlinesVisible,
		RadiusGridline:       strokeConfig(p.radiusGridline),
		ForegroundAlpha:      p.foregroundAlpha,
		Background:           p.background,
		Outline:              strokeConfig(p.outline),
		CornerText:           p.CornerText(),
	}
	p.axes.Each(func(i int, a ValueAxis) {
		cfg.Axes = append(cfg.Axes, axisConfig(i, p.axes.Location(i), a))
	})
	for _, k := range p.bindings.Keys() {
		cfg.Bindings = append(cfg.Bindings, BindingConfig{
			Dataset: k,
			Axes:    p.bindings.Axes(k),
		})
	}
	return cfg
}

// Apply replaces the state of the plot by cfg. Axes listed in cfg are
// created as number axes when their slot is empty; axes cfg does not list
// are kept as they are. Bindings are replaced by the ones of cfg and must
// name registered axes. Invalid entries are skipped and reported together.
func (p *Plot) Apply(cfg Config) error {
	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}
	if cfg.Language != "" {
		tag, err := language.Parse(cfg.Language)
		if err != nil {
			collect(fmt.Errorf("language: %w", err))
		} else {
			p.setLanguage(tag)
		}
	}
	if cfg.Margin < 0 {
		collect(invalidArgument("margin", fmt.Sprintf("negative margin %d", cfg.Margin)))
	} else {
		p.margin = cfg.Margin
	}
	if in, err := cfg.Insets.Insets(); err != nil {
		collect(err)
	} else {
		p.insets = in
	}
	if cfg.AngleTickUnit <= 0 {
		collect(invalidArgument("angle-unit", fmt.Sprintf("angle tick unit must be strictly positive (got %g)", cfg.AngleTickUnit)))
	} else {
		p.angleTickUnit = cfg.AngleTickUnit
	}
	if cfg.ForegroundAlpha < 0 || cfg.ForegroundAlpha > 1 {
		collect(invalidArgument("alpha", fmt.Sprintf("%g not in [0, 1]", cfg.ForegroundAlpha)))
	} else {
		p.foregroundAlpha = cfg.ForegroundAlpha
	}
	p.angleOffset = cfg.AngleOffset
	p.counterClockwise = cfg.CounterClockwise
	p.angleLabelsVisible = cfg.AngleLabels
	p.angleLabelFont = cfg.AngleLabelFont.Font()
	p.angleGridlinesVisible = cfg.AngleGridlines
	p.radiusGridlinesVisible = cfg.RadiusGridlines
	p.radiusMinorGridlinesVisible = cfg.RadiusMinorGridlines
	p.background = cfg.Background
	p.cornerText = slices.Clone(cfg.CornerText)

	if s, err := cfg.AngleGridline.Stroke(); err != nil {
		collect(err)
	} else {
		p.angleGridline = s
	}
	if s, err := cfg.RadiusGridline.Stroke(); err != nil {
		collect(err)
	} else {
		p.radiusGridline = s
	}
	if s, err := cfg.Outline.Stroke(); err != nil {
		collect(err)
	} else {
		p.outline = s
	}
	for _, ac := range cfg.Axes {
		collect(p.applyAxis(ac))
	}
	p.bindings = AxisBinding{}
	for _, bc := range cfg.Bindings {
		if err := p.checkAxes(bc.Axes); err != nil {
			collect(fmt.Errorf("map %d: %w", bc.Dataset, err))
			continue
		}
		collect(p.bindings.Set(bc.Dataset, bc.Axes))
	}
	p.configureAxes()
	p.fire()
	return errors.Join(errs...)
}

func (p *Plot) applyAxis(ac AxisConfig) error {
	if ac.Index < 0 {
		return invalidArgument("axis", fmt.Sprintf("negative axis index %d", ac.Index))
	}
	axis := p.axes.Get(ac.Index)
	if axis == nil {
		axis = NewNumberAxis(ac.Label)
		if err := p.axes.Set(ac.Index, axis, false); err != nil {
			return err
		}
	}
	var errs []error
	if n, ok := axis.(*NumberAxis); ok {
		n.Label = ac.Label
		if err := ac.configure(n); err != nil {
			errs = append(errs, err)
		}
	}
	if ac.Location != "" {
		loc, err := ParseAxisLocation(ac.Location)
		if err == nil {
			err = p.axes.SetLocation(ac.Index, loc, false)
		}
		if err != nil {
			return errors.Join(append(errs, err)...)
		}
	}
	axis.SetInverted(ac.Inverted)
	if ac.AutoRange {
		axis.SetAutoRange(true)
	} else if r := NewRange(ac.Lower, ac.Upper); r.Len() > 0 {
		axis.SetRange(r)
	} else {
		errs = append(errs, invalidArgument("range", fmt.Sprintf("axis %d: empty range [%g, %g]", ac.Index, ac.Lower, ac.Upper)))
	}
	return errors.Join(errs...)
}

func ptr[T any](v T) *T {
	return &v
}

// Clone returns a copy of the plot. Axes and renderers are cloned, datasets
// are shared with p.
func (p *Plot) Clone() (*Plot, error) {
	other := NewPlot(nil, nil, nil, WithLogger(p.logger), WithLanguage(p.lang))
	var errs []error
	p.axes.Each(func(i int, a ValueAxis) {
		errs = append(errs, other.axes.Set(i, a.Clone(), false))
		errs = append(errs, other.axes.SetLocation(i, p.axes.Location(i), false))
	})
	for i, d := range p.datasets {
		if d != nil {
			other.setDataset(i, d)
		}
	}
	for i, r := range p.renderers {
		if r != nil {
			other.setRenderer(i, r.Clone())
		}
	}
	if err := other.Apply(p.Config()); err != nil {
		errs = append(errs, err)
	}
	other.bindings = p.bindings.Clone()
	other.fixedLegend = slices.Clone(p.fixedLegend)
	other.messageFont = p.messageFont
	other.configureAxes()
	other.RefreshAngleTicks()
	return other, errors.Join(errs...)
}
