package polar

import (
	"math"

	"github.com/jinzhu/copier"
	"github.com/midbel/polar/canvas"
	"github.com/midbel/slices"
)

// Renderer draws the series of one dataset and the gridlines of the plot it
// is attached to.
type Renderer interface {
	Attach(*Plot)
	Detach()
	DrawSeries(canvas.Surface, canvas.Rect, Dataset, int)
	DrawAngularGridLines(canvas.Surface, []Tick, canvas.Rect)
	DrawRadialGridLines(canvas.Surface, ValueAxis, []Tick, canvas.Rect)
	LegendItem(int) (LegendItem, bool)
	Clone() Renderer
}

// DefaultRenderer joins the items of a series with straight lines.
type DefaultRenderer struct {
	Palette             Palette
	Width               float64
	Style               canvas.LineStyle
	Filled              bool
	SeriesFilled        map[int]bool
	FillAlpha           float64
	OutlineWhenFilled   bool
	ConnectFirstAndLast bool
	ShapesVisible       bool
	Shape               ShapeKind
	ShapeSize           float64

	plot *Plot
}

func NewRenderer() *DefaultRenderer {
	return &DefaultRenderer{
		Palette:             Tableau10,
		Width:               1,
		FillAlpha:           0.5,
		OutlineWhenFilled:   true,
		ConnectFirstAndLast: true,
		ShapesVisible:       true,
		Shape:               ShapeCircle,
		ShapeSize:           DefaultSize,
	}
}

func (r *DefaultRenderer) Attach(p *Plot) {
	r.plot = p
}

func (r *DefaultRenderer) Detach() {
	r.plot = nil
}

// Update applies fn to the renderer and notifies the plot it is attached
// to.
func (r *DefaultRenderer) Update(fn func(*DefaultRenderer)) {
	fn(r)
	r.fire()
}

func (r *DefaultRenderer) IsSeriesFilled(series int) bool {
	if filled, ok := r.SeriesFilled[series]; ok {
		return filled
	}
	return r.Filled
}

func (r *DefaultRenderer) SetSeriesFilled(series int, filled bool) {
	if current, ok := r.SeriesFilled[series]; ok && current == filled {
		return
	}
	if r.SeriesFilled == nil {
		r.SeriesFilled = make(map[int]bool)
	}
	r.SeriesFilled[series] = filled
	r.fire()
}

func (r *DefaultRenderer) SeriesColor(series int) string {
	return r.Palette.At(series)
}

func (r *DefaultRenderer) DrawSeries(s canvas.Surface, area canvas.Rect, dataset Dataset, series int) {
	if r.plot == nil || dataset == nil {
		return
	}
	count := dataset.ItemCount(series)
	if count == 0 {
		return
	}
	var (
		axis   = r.plot.AxisFor(dataset)
		points = make([]canvas.Point, 0, count)
		pat    canvas.Path
		move   = true
	)
	for i := 0; i < count; i++ {
		theta, radius := dataset.X(series, i), dataset.Y(series, i)
		if math.IsNaN(theta) || math.IsNaN(radius) {
			move = true
			continue
		}
		pt := r.plot.ToDevice(theta, radius, axis, area)
		if move {
			pat.MoveTo(pt)
			move = false
		} else {
			pat.LineTo(pt)
		}
		points = append(points, pt)
	}
	if len(points) == 0 {
		return
	}
	if r.ConnectFirstAndLast {
		pat.Close()
	}
	var (
		color  = r.SeriesColor(series)
		stroke = canvas.Stroke{Color: color, Width: r.Width, Style: r.Style}
	)
	if r.IsSeriesFilled(series) {
		alpha := s.Alpha()
		s.SetAlpha(alpha * r.FillAlpha)
		s.FillPath(pat, color)
		s.SetAlpha(alpha)
		if r.OutlineWhenFilled {
			s.DrawPath(pat, stroke)
		}
	} else {
		s.DrawPath(pat, stroke)
	}
	if !r.ShapesVisible {
		return
	}
	slices.Foreach(points, func(pt canvas.Point) {
		drawShape(s, r.Shape, pt, r.ShapeSize, color)
	})
}

func (r *DefaultRenderer) DrawAngularGridLines(s canvas.Surface, ticks []Tick, area canvas.Rect) {
	if r.plot == nil {
		return
	}
	axis := r.plot.PrimaryAxis()
	if axis == nil {
		return
	}
	var (
		stroke      = r.plot.AngleGridlineStroke()
		font        = r.plot.AngleLabelFont()
		center, out = axis.LowerBound(), axis.UpperBound()
	)
	if axis.Inverted() {
		center, out = out, center
	}
	origin := r.plot.ToDevice(0, center, axis, area)
	for _, t := range ticks {
		pt := r.plot.ToDevice(t.Value, out, axis, area)
		s.DrawLine(origin, pt, stroke)
		if r.plot.AngleLabelsVisible() {
			s.DrawText(t.Label, pt, t.Anchor, font)
		}
	}
}

func (r *DefaultRenderer) DrawRadialGridLines(s canvas.Surface, axis ValueAxis, ticks []Tick, area canvas.Rect) {
	if r.plot == nil || axis == nil {
		return
	}
	var (
		stroke = r.plot.RadiusGridlineStroke()
		center = axis.LowerBound()
		angle  = -r.plot.AngleOffset()
	)
	if axis.Inverted() {
		center = axis.UpperBound()
	}
	if r.plot.CounterClockwise() {
		angle = r.plot.AngleOffset()
	}
	origin := r.plot.ToDevice(0, center, axis, area)
	for _, t := range ticks {
		var (
			pt     = r.plot.ToDevice(angle, t.Value, axis, area)
			radius = pt.X - origin.X
		)
		if radius <= 0 {
			continue
		}
		ring := canvas.NewRect(origin.X-radius, origin.Y-radius, 2*radius, 2*radius)
		s.DrawEllipse(ring, stroke)
	}
}

func (r *DefaultRenderer) LegendItem(series int) (LegendItem, bool) {
	if r.plot == nil {
		return LegendItem{}, false
	}
	var (
		index   = r.plot.IndexOfRenderer(r)
		dataset = r.plot.Dataset(index)
	)
	if dataset == nil || series < 0 || series >= dataset.SeriesCount() {
		return LegendItem{}, false
	}
	var (
		key   = dataset.SeriesKey(series)
		color = r.SeriesColor(series)
	)
	item := LegendItem{
		Label:        key,
		Description:  key,
		Color:        color,
		Shape:        r.Shape,
		ShapeVisible: r.ShapesVisible,
		ShapeFilled:  true,
		LineVisible:  true,
		Line:         canvas.Stroke{Color: color, Width: r.Width, Style: r.Style},
		DatasetIndex: index,
		SeriesIndex:  series,
		SeriesKey:    key,
	}
	return item, true
}

// Clone returns a detached copy of the renderer.
func (r *DefaultRenderer) Clone() Renderer {
	var c DefaultRenderer
	if err := copier.CopyWithOption(&c, r, copier.Option{DeepCopy: true}); err != nil {
		c = *r
		c.Palette = append(Palette(nil), r.Palette...)
		c.SeriesFilled = make(map[int]bool, len(r.SeriesFilled))
		for k, v := range r.SeriesFilled {
			c.SeriesFilled[k] = v
		}
	}
	c.plot = nil
	return &c
}

func (r *DefaultRenderer) fire() {
	if r.plot != nil {
		r.plot.RendererChanged(r)
	}
}
