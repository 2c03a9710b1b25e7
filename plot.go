package polar

import (
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/midbel/polar/canvas"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultMargin        = 20
	DefaultAngleTickUnit = 45.0
	DefaultAngleOffset   = -90.0
	AnnotationMargin     = 7.0
	MinimumWidthToDraw   = 10.0
	MinimumHeightToDraw  = 10.0
)

var (
	DefaultGridlineStroke = canvas.Stroke{Color: "gray", Width: 0.5, Style: canvas.StyleDashed}
	DefaultOutlineStroke  = canvas.NewStroke("gray", 0.5)
)

// Observer receives the change notifications of the axes, datasets and
// renderers attached to a plot.
type Observer interface {
	AxisChanged(ValueAxis)
	DatasetChanged(Dataset)
	RendererChanged(Renderer)
}

type Option func(*Plot)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Plot) {
		if logger != nil {
			p.logger = logger
		}
	}
}

func WithLanguage(tag language.Tag) Option {
	return func(p *Plot) {
		p.setLanguage(tag)
	}
}

func WithInsets(insets Insets) Option {
	return func(p *Plot) {
		p.insets = insets
	}
}

func WithMargin(margin int) Option {
	return func(p *Plot) {
		if margin >= 0 {
			p.margin = margin
		}
	}
}

// Plot lays out radius axes and datasets on a circular area and converts
// (angle, radius) pairs into device coordinates.
type Plot struct {
	axes      AxisRegistry
	datasets  []Dataset
	renderers []Renderer
	bindings  AxisBinding

	angleTickUnit    float64
	angleOffset      float64
	counterClockwise bool
	margin           int
	insets           Insets

	angleLabelsVisible          bool
	angleLabelFont              canvas.Font
	angleGridlinesVisible       bool
	angleGridline               canvas.Stroke
	radiusGridlinesVisible      bool
	radiusMinorGridlinesVisible bool
	radiusGridline              canvas.Stroke
	foregroundAlpha             float64
	background                  string
	outline                     canvas.Stroke
	messageFont                 canvas.Font

	cornerText  []string
	fixedLegend []LegendItem

	angleTicks []Tick
	state      DrawState

	lang      language.Tag
	printer   *message.Printer
	logger    *slog.Logger
	listeners []func(*Plot)
}

// NewPlot creates a plot with one optional dataset, axis and renderer,
// stored in the slots at index 0.
func NewPlot(dataset Dataset, axis ValueAxis, renderer Renderer, options ...Option) *Plot {
	p := Plot{
		angleTickUnit:          DefaultAngleTickUnit,
		angleOffset:            DefaultAngleOffset,
		margin:                 DefaultMargin,
		insets:                 NewInsets(4, 8, 4, 8),
		angleLabelsVisible:     true,
		angleLabelFont:         canvas.NewFont(canvas.FontSize, "sans-serif"),
		angleGridlinesVisible:  true,
		angleGridline:          DefaultGridlineStroke,
		radiusGridlinesVisible: true,
		radiusGridline:         DefaultGridlineStroke,
		foregroundAlpha:        1,
		background:             "white",
		outline:                DefaultOutlineStroke,
		messageFont:            canvas.NewFont(canvas.FontSize, "sans-serif"),
		logger:                 slog.Default(),

		radiusMinorGridlinesVisible: true,
	}
	p.setLanguage(language.English)
	for _, o := range options {
		o(&p)
	}
	p.axes = newAxisRegistry(&p, p.fire)

	if dataset != nil {
		p.setDataset(0, dataset)
	}
	if axis != nil {
		p.axes.Set(0, axis, false)
	}
	if renderer != nil {
		p.setRenderer(0, renderer)
	}
	p.configureAxes()
	p.angleTicks = p.planner().AngleTicks()
	return &p
}

func (p *Plot) PlotType() string {
	return p.printer.Sprintf(msgPlotType)
}

func (p *Plot) Logger() *slog.Logger {
	return p.logger
}

func (p *Plot) Printer() *message.Printer {
	return p.printer
}

func (p *Plot) Language() language.Tag {
	return p.lang
}

func (p *Plot) SetLanguage(tag language.Tag) {
	if p.lang == tag {
		return
	}
	p.setLanguage(tag)
	p.fire()
}

// OnChange registers a function called each time the plot or one of its
// components changes.
func (p *Plot) OnChange(fn func(*Plot)) {
	if fn != nil {
		p.listeners = append(p.listeners, fn)
	}
}

func (p *Plot) AxisChanged(ValueAxis) {
	p.fire()
}

func (p *Plot) DatasetChanged(Dataset) {
	p.configureAxes()
	p.fire()
}

func (p *Plot) RendererChanged(Renderer) {
	p.fire()
}

func (p *Plot) Axis(index int) ValueAxis {
	return p.axes.Get(index)
}

func (p *Plot) PrimaryAxis() ValueAxis {
	return p.axes.Get(0)
}

func (p *Plot) AxisCount() int {
	return p.axes.Count()
}

func (p *Plot) IndexOfAxis(axis ValueAxis) int {
	return p.axes.IndexOf(axis)
}

func (p *Plot) SetAxis(index int, axis ValueAxis) error {
	return p.SetAxisNotify(index, axis, true)
}

func (p *Plot) SetAxisNotify(index int, axis ValueAxis, notify bool) error {
	return p.axes.Set(index, axis, notify)
}

func (p *Plot) AxisLocation(index int) AxisLocation {
	return p.axes.Location(index)
}

func (p *Plot) SetAxisLocation(index int, loc AxisLocation) error {
	return p.SetAxisLocationNotify(index, loc, true)
}

func (p *Plot) SetAxisLocationNotify(index int, loc AxisLocation, notify bool) error {
	return p.axes.SetLocation(index, loc, notify)
}

func (p *Plot) Dataset(index int) Dataset {
	if index < 0 || index >= len(p.datasets) {
		return nil
	}
	return p.datasets[index]
}

func (p *Plot) DatasetCount() int {
	return len(p.datasets)
}

func (p *Plot) IndexOfDataset(dataset Dataset) int {
	if dataset == nil {
		return -1
	}
	return slices.IndexFunc(p.datasets, func(d Dataset) bool {
		return d == dataset
	})
}

func (p *Plot) SetDataset(index int, dataset Dataset) error {
	if index < 0 {
		return invalidArgument("index", fmt.Sprintf("negative dataset index %d", index))
	}
	if p.Dataset(index) == dataset && dataset != nil {
		return nil
	}
	p.setDataset(index, dataset)
	p.DatasetChanged(dataset)
	return nil
}

func (p *Plot) Renderer(index int) Renderer {
	if index < 0 || index >= len(p.renderers) {
		return nil
	}
	return p.renderers[index]
}

func (p *Plot) RendererCount() int {
	return len(p.renderers)
}

func (p *Plot) IndexOfRenderer(renderer Renderer) int {
	if renderer == nil {
		return -1
	}
	return slices.IndexFunc(p.renderers, func(r Renderer) bool {
		return r == renderer
	})
}

func (p *Plot) SetRenderer(index int, renderer Renderer) error {
	return p.SetRendererNotify(index, renderer, true)
}

func (p *Plot) SetRendererNotify(index int, renderer Renderer, notify bool) error {
	if index < 0 {
		return invalidArgument("index", fmt.Sprintf("negative renderer index %d", index))
	}
	if p.Renderer(index) == renderer && renderer != nil {
		return nil
	}
	p.setRenderer(index, renderer)
	if notify {
		p.fire()
	}
	return nil
}

// RendererForDataset returns the renderer sharing the slot of dataset.
func (p *Plot) RendererForDataset(dataset Dataset) Renderer {
	return p.Renderer(p.IndexOfDataset(dataset))
}

func (p *Plot) MapDatasetToAxis(dataset, axis int) error {
	return p.MapDatasetToAxes(dataset, []int{axis})
}

// MapDatasetToAxes binds dataset to the given axes, the first one being
// used to draw it. A nil list removes the binding.
func (p *Plot) MapDatasetToAxes(dataset int, axes []int) error {
	if err := p.checkAxes(axes); err != nil {
		return err
	}
	if err := p.bindings.Set(dataset, axes); err != nil {
		return err
	}
	p.DatasetChanged(p.Dataset(dataset))
	return nil
}

// checkAxes rejects the indices of empty axis slots.
func (p *Plot) checkAxes(axes []int) error {
	for _, a := range axes {
		if a >= 0 && p.axes.Get(a) == nil {
			return invalidArgument("axes", fmt.Sprintf("no axis registered at index %d", a))
		}
	}
	return nil
}

func (p *Plot) AxesForDataset(dataset int) []int {
	return p.bindings.Axes(dataset)
}

func (p *Plot) AxisIndexForDataset(dataset int) int {
	return p.bindings.First(dataset)
}

func (p *Plot) AxisForDataset(dataset int) ValueAxis {
	return p.axes.Get(p.AxisIndexForDataset(dataset))
}

// AxisFor returns the axis a dataset attached to the plot is drawn against.
func (p *Plot) AxisFor(dataset Dataset) ValueAxis {
	index := p.IndexOfDataset(dataset)
	if index < 0 {
		return p.PrimaryAxis()
	}
	return p.AxisForDataset(index)
}

func (p *Plot) DatasetsForAxis(axis int) []int {
	return p.bindings.Datasets(axis, len(p.datasets))
}

func (p *Plot) AngleTickUnit() float64 {
	return p.angleTickUnit
}

func (p *Plot) SetAngleTickUnit(unit float64) error {
	if unit <= 0 || math.IsNaN(unit) || math.IsInf(unit, 0) {
		return invalidArgument("unit", fmt.Sprintf("angle tick unit must be strictly positive (got %g)", unit))
	}
	if unit == p.angleTickUnit {
		return nil
	}
	p.angleTickUnit = unit
	p.fire()
	return nil
}

func (p *Plot) AngleOffset() float64 {
	return p.angleOffset
}

func (p *Plot) SetAngleOffset(offset float64) {
	if offset == p.angleOffset {
		return
	}
	p.angleOffset = offset
	p.fire()
}

func (p *Plot) CounterClockwise() bool {
	return p.counterClockwise
}

func (p *Plot) SetCounterClockwise(ccw bool) {
	if ccw == p.counterClockwise {
		return
	}
	p.counterClockwise = ccw
	p.fire()
}

func (p *Plot) Margin() int {
	return p.margin
}

func (p *Plot) SetMargin(margin int) error {
	if margin < 0 {
		return invalidArgument("margin", fmt.Sprintf("negative margin %d", margin))
	}
	if margin == p.margin {
		return nil
	}
	p.margin = margin
	p.fire()
	return nil
}

func (p *Plot) Insets() Insets {
	return p.insets
}

func (p *Plot) SetInsets(insets Insets) error {
	if err := insets.Validate(); err != nil {
		return err
	}
	if insets == p.insets {
		return nil
	}
	p.insets = insets
	p.fire()
	return nil
}

func (p *Plot) AngleLabelsVisible() bool {
	return p.angleLabelsVisible
}

func (p *Plot) SetAngleLabelsVisible(visible bool) {
	if visible == p.angleLabelsVisible {
		return
	}
	p.angleLabelsVisible = visible
	p.fire()
}

func (p *Plot) AngleLabelFont() canvas.Font {
	return p.angleLabelFont
}

func (p *Plot) SetAngleLabelFont(font canvas.Font) {
	if sameFont(font, p.angleLabelFont) {
		return
	}
	p.angleLabelFont = font
	p.fire()
}

func (p *Plot) AngleGridlinesVisible() bool {
	return p.angleGridlinesVisible
}

func (p *Plot) SetAngleGridlinesVisible(visible bool) {
	if visible == p.angleGridlinesVisible {
		return
	}
	p.angleGridlinesVisible = visible
	p.fire()
}

func (p *Plot) AngleGridlineStroke() canvas.Stroke {
	return p.angleGridline
}

func (p *Plot) SetAngleGridlineStroke(stroke canvas.Stroke) {
	if stroke == p.angleGridline {
		return
	}
	p.angleGridline = stroke
	p.fire()
}

func (p *Plot) RadiusGridlinesVisible() bool {
	return p.radiusGridlinesVisible
}

func (p *Plot) SetRadiusGridlinesVisible(visible bool) {
	if visible == p.radiusGridlinesVisible {
		return
	}
	p.radiusGridlinesVisible = visible
	p.fire()
}

func (p *Plot) RadiusMinorGridlinesVisible() bool {
	return p.radiusMinorGridlinesVisible
}

func (p *Plot) SetRadiusMinorGridlinesVisible(visible bool) {
	if visible == p.radiusMinorGridlinesVisible {
		return
	}
	p.radiusMinorGridlinesVisible = visible
	p.fire()
}

func (p *Plot) RadiusGridlineStroke() canvas.Stroke {
	return p.radiusGridline
}

func (p *Plot) SetRadiusGridlineStroke(stroke canvas.Stroke) {
	if stroke == p.radiusGridline {
		return
	}
	p.radiusGridline = stroke
	p.fire()
}

func (p *Plot) ForegroundAlpha() float64 {
	return p.foregroundAlpha
}

func (p *Plot) SetForegroundAlpha(alpha float64) error {
	if alpha < 0 || alpha > 1 || math.IsNaN(alpha) {
		return invalidArgument("alpha", fmt.Sprintf("%g not in [0, 1]", alpha))
	}
	if alpha == p.foregroundAlpha {
		return nil
	}
	p.foregroundAlpha = alpha
	p.fire()
	return nil
}

func (p *Plot) Background() string {
	return p.background
}

func (p *Plot) SetBackground(color string) {
	if color == p.background {
		return
	}
	p.background = color
	p.fire()
}

func (p *Plot) Outline() canvas.Stroke {
	return p.outline
}

func (p *Plot) SetOutline(stroke canvas.Stroke) {
	if stroke == p.outline {
		return
	}
	p.outline = stroke
	p.fire()
}

func (p *Plot) NoDataMessage() string {
	return p.printer.Sprintf(msgNoData)
}

func (p *Plot) CornerText() []string {
	return slices.Clone(p.cornerText)
}

func (p *Plot) AddCornerText(text string) {
	p.cornerText = append(p.cornerText, text)
	p.fire()
}

func (p *Plot) RemoveCornerText(text string) {
	i := slices.Index(p.cornerText, text)
	if i < 0 {
		return
	}
	p.cornerText = slices.Delete(p.cornerText, i, i+1)
	p.fire()
}

func (p *Plot) ClearCornerText() {
	if len(p.cornerText) == 0 {
		return
	}
	p.cornerText = nil
	p.fire()
}

// AngleTicks returns the ticks computed during the last refresh.
func (p *Plot) AngleTicks() []Tick {
	return slices.Clone(p.angleTicks)
}

func (p *Plot) RefreshAngleTicks() []Tick {
	p.angleTicks = p.planner().AngleTicks()
	return p.AngleTicks()
}

func (p *Plot) TextAnchor(angle float64) canvas.Anchor {
	return p.planner().TextAnchor(angle)
}

func (p *Plot) ToDevice(angle, radius float64, axis ValueAxis, area canvas.Rect) canvas.Point {
	if axis == nil {
		axis = p.PrimaryAxis()
	}
	if axis == nil {
		return p.transformer().Center(area)
	}
	pt := p.transformer().ToDevice(angle, radius, axis, area)
	return canvas.Pt(float64(pt.X), float64(pt.Y))
}

func (p *Plot) Transformer() Transformer {
	return p.transformer()
}

func (p *Plot) transformer() Transformer {
	return Transformer{
		Offset:           p.angleOffset,
		CounterClockwise: p.counterClockwise,
		Margin:           float64(p.margin),
	}
}

func (p *Plot) planner() TickPlanner {
	return TickPlanner{
		Unit:             p.angleTickUnit,
		Offset:           p.angleOffset,
		CounterClockwise: p.counterClockwise,
		Printer:          p.printer,
	}
}

func (p *Plot) setDataset(index int, dataset Dataset) {
	for len(p.datasets) <= index {
		p.datasets = append(p.datasets, nil)
	}
	if existing := p.datasets[index]; existing != nil {
		existing.Detach(p)
	}
	p.datasets[index] = dataset
	if dataset != nil {
		dataset.Attach(p)
	}
}

func (p *Plot) setRenderer(index int, renderer Renderer) {
	for len(p.renderers) <= index {
		p.renderers = append(p.renderers, nil)
	}
	if existing := p.renderers[index]; existing != nil {
		existing.Detach()
	}
	p.renderers[index] = renderer
	if renderer != nil {
		renderer.Attach(p)
	}
}

func (p *Plot) setLanguage(tag language.Tag) {
	p.lang = tag
	p.printer = newPrinter(tag)
}

func (p *Plot) configureAxes() {
	p.axes.Each(func(_ int, a ValueAxis) {
		a.Configure()
	})
}

func (p *Plot) fire() {
	for _, fn := range p.listeners {
		fn(p)
	}
}

func sameFont(a, b canvas.Font) bool {
	return a.Size == b.Size && a.Color == b.Color && a.Bold == b.Bold && slices.Equal(a.Family, b.Family)
}
