package polar

import (
	"math"

	"github.com/midbel/polar/canvas"
)

type DrawState int

const (
	StateIdle DrawState = iota
	StateAreaTooSmall
	StateDrawing
	StateDone
)

func (s DrawState) String() string {
	switch s {
	case StateAreaTooSmall:
		return "area-too-small"
	case StateDrawing:
		return "drawing"
	case StateDone:
		return "done"
	default:
		return "idle"
	}
}

// RenderingInfo collects the areas computed while drawing.
type RenderingInfo struct {
	PlotArea canvas.Rect
	DataArea canvas.Rect
	HasData  bool
}

// Draw renders the plot in area. Nothing is drawn, and nothing changes,
// when area is not larger than the minimum drawable size.
func (p *Plot) Draw(s canvas.Surface, area canvas.Rect, info *RenderingInfo) DrawState {
	if area.W <= MinimumWidthToDraw || area.H <= MinimumHeightToDraw {
		p.logger.Debug("plot area too small", "width", area.W, "height", area.H)
		return StateAreaTooSmall
	}
	p.state = StateDrawing
	if info != nil {
		info.PlotArea = area
	}
	data := area
	p.insets.Trim(&data)
	if info != nil {
		info.DataArea = data
	}

	p.drawBackground(s, data)
	var state AxisState
	p.axes.Each(func(i int, a ValueAxis) {
		st := p.drawAxis(s, a, p.axes.Location(i), data)
		if i == 0 {
			state = st
		}
	})

	var (
		clip  = s.Clip()
		alpha = s.Alpha()
		inner = data
	)
	if clip != nil {
		inner = clip.Intersect(data)
	}
	s.SetClip(&inner)
	s.SetAlpha(p.foregroundAlpha)

	p.RefreshAngleTicks()
	p.drawGridlines(s, data, p.angleTicks, state.Ticks)
	hasData := p.render(s, data)
	if info != nil {
		info.HasData = hasData
	}

	s.SetClip(clip)
	s.SetAlpha(alpha)
	p.drawOutline(s, data)
	p.drawCornerText(s, data)
	p.state = StateDone
	return p.state
}

// State reports StateDrawing while a call to Draw is in progress and the
// outcome of the last complete draw otherwise.
func (p *Plot) State() DrawState {
	return p.state
}

func (p *Plot) drawBackground(s canvas.Surface, area canvas.Rect) {
	if p.background == "" {
		return
	}
	s.FillRect(area, p.background)
}

func (p *Plot) drawOutline(s canvas.Surface, area canvas.Rect) {
	if !p.outline.Valid() {
		return
	}
	s.DrawRect(area, p.outline)
}

func (p *Plot) drawAxis(s canvas.Surface, axis ValueAxis, loc AxisLocation, area canvas.Rect) AxisState {
	if !loc.Valid() {
		loc = EastAbove
	}
	quadrant, cursor, edge := loc.Layout(area, float64(p.margin))
	return axis.Draw(s, cursor, area, quadrant, edge)
}

func (p *Plot) drawGridlines(s canvas.Surface, area canvas.Rect, angular, radial []Tick) {
	r := p.Renderer(0)
	if r == nil {
		return
	}
	if p.angleGridlinesVisible && p.angleGridline.Valid() {
		r.DrawAngularGridLines(s, angular, area)
	}
	if p.radiusGridlinesVisible && p.radiusGridline.Valid() {
		ticks := RadialTicks(radial, p.radiusMinorGridlinesVisible)
		r.DrawRadialGridLines(s, p.PrimaryAxis(), ticks, area)
	}
}

func (p *Plot) render(s canvas.Surface, area canvas.Rect) bool {
	var hasData bool
	for i := len(p.datasets) - 1; i >= 0; i-- {
		d := p.datasets[i]
		if d == nil {
			continue
		}
		r := p.Renderer(i)
		if r == nil || isEmpty(d) {
			continue
		}
		hasData = true
		for j := 0; j < d.SeriesCount(); j++ {
			r.DrawSeries(s, area, d, j)
		}
	}
	if !hasData {
		p.drawNoDataMessage(s, area)
	}
	return hasData
}

func (p *Plot) drawNoDataMessage(s canvas.Surface, area canvas.Rect) {
	msg := p.NoDataMessage()
	if msg == "" {
		return
	}
	s.DrawText(msg, area.Center(), canvas.Center, p.messageFont)
}

func (p *Plot) drawCornerText(s canvas.Surface, area canvas.Rect) {
	if len(p.cornerText) == 0 {
		return
	}
	var (
		font    = canvas.NewFont(canvas.FontSize)
		heights = make([]float64, len(p.cornerText))
		width   float64
		height  float64
	)
	for i, msg := range p.cornerText {
		w, h := s.MeasureText(msg, font)
		width = math.Max(width, w)
		height += h
		heights[i] = h
	}
	width += AnnotationMargin * 2
	height += AnnotationMargin

	var (
		x = area.MaxX() - width
		y = area.MaxY() - height
	)
	s.DrawRect(canvas.NewRect(math.Trunc(x), math.Trunc(y), math.Trunc(width), math.Trunc(height)), canvas.NewStroke("black", 1))
	x += AnnotationMargin
	for i, msg := range p.cornerText {
		y += heights[i]
		s.DrawText(msg, canvas.Pt(math.Trunc(x), math.Trunc(y)), canvas.BottomLeft, font)
	}
}

func isEmpty(d Dataset) bool {
	for i := 0; i < d.SeriesCount(); i++ {
		if d.ItemCount(i) > 0 {
			return false
		}
	}
	return true
}
