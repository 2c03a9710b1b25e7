package polar

import (
	"math"

	"github.com/aclements/go-moremath/scale"
	"github.com/jinzhu/copier"
	"github.com/midbel/polar/canvas"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	DefaultTickCount  = 5
	DefaultTickLength = 4.0
)

// AxisOwner is the plot an axis reports to. It provides the data range used
// for auto-ranging and the printer used to format tick labels.
type AxisOwner interface {
	Observer
	DataRange(ValueAxis) Range
	Printer() *message.Printer
}

// ValueAxis maps values onto a device dimension.
type ValueAxis interface {
	Range() Range
	SetRange(Range)
	LowerBound() float64
	UpperBound() float64
	SetUpperBound(float64)
	AutoRange() bool
	SetAutoRange(bool)
	Inverted() bool
	SetInverted(bool)

	// ResizeRange scales the range by factor around anchor. A factor lower
	// or equal to zero switches back to auto-ranging.
	ResizeRange(factor, anchor float64)

	ValueToDevice(float64, canvas.Rect, Edge) float64
	DeviceToValue(float64, canvas.Rect, Edge) float64

	Configure()
	Ticks() []Tick
	Draw(canvas.Surface, float64, canvas.Rect, canvas.Rect, Edge) AxisState

	Attach(AxisOwner)
	Detach()
	Clone() ValueAxis
}

type AxisState struct {
	Cursor float64
	Ticks  []Tick
}

type NumberAxis struct {
	Label       string
	TickCount   int
	Decimals    int
	TickLength  float64
	IncludeZero bool
	UpperMargin float64
	Nice        bool
	Visible     bool
	LabelFont   canvas.Font
	Line        canvas.Stroke

	lower    float64
	upper    float64
	auto     bool
	inverted bool
	owner    AxisOwner
}

func NewNumberAxis(label string) *NumberAxis {
	return &NumberAxis{
		Label:       label,
		TickCount:   DefaultTickCount,
		Decimals:    -1,
		TickLength:  DefaultTickLength,
		IncludeZero: true,
		Nice:        true,
		Visible:     true,
		LabelFont:   canvas.NewFont(canvas.FontSize),
		Line:        canvas.NewStroke("gray", 0.5),
		lower:       0,
		upper:       1,
		auto:        true,
	}
}

func (a *NumberAxis) Range() Range {
	return NewRange(a.lower, a.upper)
}

func (a *NumberAxis) LowerBound() float64 {
	return a.lower
}

func (a *NumberAxis) UpperBound() float64 {
	return a.upper
}

// SetRange sets a fixed range. Ranges that are not strictly positive in
// length are ignored.
func (a *NumberAxis) SetRange(r Range) {
	if !r.Valid() || !(r.Len() > 0) {
		return
	}
	if r.Lower == a.lower && r.Upper == a.upper && !a.auto {
		return
	}
	a.lower, a.upper = r.Lower, r.Upper
	a.auto = false
	a.fire()
}

func (a *NumberAxis) SetUpperBound(v float64) {
	if a.lower < v {
		a.SetRange(NewRange(a.lower, v))
	} else {
		a.SetRange(NewRange(v-1, v))
	}
}

func (a *NumberAxis) AutoRange() bool {
	return a.auto
}

func (a *NumberAxis) SetAutoRange(auto bool) {
	if a.auto == auto {
		return
	}
	a.auto = auto
	if auto {
		a.adjust()
	}
	a.fire()
}

func (a *NumberAxis) Inverted() bool {
	return a.inverted
}

func (a *NumberAxis) SetInverted(inverted bool) {
	if a.inverted == inverted {
		return
	}
	a.inverted = inverted
	a.fire()
}

func (a *NumberAxis) ResizeRange(factor, anchor float64) {
	if factor <= 0 {
		a.SetAutoRange(true)
		return
	}
	a.SetRange(a.Range().Resize(factor, anchor))
}

func (a *NumberAxis) ValueToDevice(v float64, area canvas.Rect, edge Edge) float64 {
	t := a.linear().Map(v)
	if edge.Vertical() {
		if a.inverted {
			return area.MinY() + t*area.H
		}
		return area.MaxY() - t*area.H
	}
	if a.inverted {
		return area.MaxX() - t*area.W
	}
	return area.MinX() + t*area.W
}

func (a *NumberAxis) DeviceToValue(pos float64, area canvas.Rect, edge Edge) float64 {
	var t float64
	if edge.Vertical() {
		if area.H == 0 {
			return a.lower
		}
		t = (area.MaxY() - pos) / area.H
		if a.inverted {
			t = (pos - area.MinY()) / area.H
		}
	} else {
		if area.W == 0 {
			return a.lower
		}
		t = (pos - area.MinX()) / area.W
		if a.inverted {
			t = (area.MaxX() - pos) / area.W
		}
	}
	return a.linear().Unmap(t)
}

// Configure recomputes the range from the data of the owning plot when
// auto-ranging is enabled.
func (a *NumberAxis) Configure() {
	if !a.auto {
		return
	}
	if a.adjust() {
		a.fire()
	}
}

func (a *NumberAxis) Ticks() []Tick {
	var (
		sc           = a.linear()
		major, minor = sc.Ticks(scale.TickOptions{Max: a.TickCount})
		ticks        = make([]Tick, 0, len(major)+len(minor))
		seen         = make(map[float64]struct{})
	)
	for _, v := range major {
		seen[v] = struct{}{}
		ticks = append(ticks, Tick{
			Value: v,
			Label: a.format(v),
			Type:  TickMajor,
		})
	}
	for _, v := range minor {
		if _, ok := seen[v]; ok {
			continue
		}
		ticks = append(ticks, Tick{
			Value: v,
			Type:  TickMinor,
		})
	}
	return ticks
}

func (a *NumberAxis) Draw(s canvas.Surface, cursor float64, _, area canvas.Rect, edge Edge) AxisState {
	state := AxisState{
		Cursor: cursor,
		Ticks:  a.Ticks(),
	}
	if !a.Visible {
		return state
	}
	if edge.Vertical() {
		s.DrawLine(canvas.Pt(cursor, area.MinY()), canvas.Pt(cursor, area.MaxY()), a.Line)
	} else {
		s.DrawLine(canvas.Pt(area.MinX(), cursor), canvas.Pt(area.MaxX(), cursor), a.Line)
	}
	for _, t := range state.Ticks {
		if t.Type != TickMajor {
			continue
		}
		pos := a.ValueToDevice(t.Value, area, edge)
		from, to := tickLine(edge, cursor, pos, a.TickLength)
		s.DrawLine(from, to, a.Line)
		at, anchor := tickText(edge, cursor, pos, a.TickLength+2)
		s.DrawText(t.Label, at, anchor, a.LabelFont)
	}
	if a.Label != "" {
		pos := a.ValueToDevice(a.upper, area, edge)
		at, anchor := tickText(edge, cursor, pos, a.TickLength+a.LabelFont.Size*1.5)
		s.DrawText(a.Label, at, anchor, a.LabelFont)
	}
	return state
}

func (a *NumberAxis) Attach(owner AxisOwner) {
	a.owner = owner
}

func (a *NumberAxis) Detach() {
	a.owner = nil
}

// Clone returns a detached copy of the axis.
func (a *NumberAxis) Clone() ValueAxis {
	var c NumberAxis
	if err := copier.CopyWithOption(&c, a, copier.Option{DeepCopy: true}); err != nil {
		c = *a
		c.LabelFont.Family = append([]string(nil), a.LabelFont.Family...)
	}
	c.lower = a.lower
	c.upper = a.upper
	c.auto = a.auto
	c.inverted = a.inverted
	c.owner = nil
	return &c
}

func (a *NumberAxis) adjust() bool {
	r := NewRange(0, 1)
	if a.owner != nil {
		if dr := a.owner.DataRange(a); dr.Valid() {
			r = dr
		}
	}
	lower, upper := r.Lower, r.Upper
	if a.IncludeZero {
		lower = math.Min(lower, 0)
		upper = math.Max(upper, 0)
	}
	upper += (upper - lower) * a.UpperMargin
	if upper == lower {
		lower -= 0.5
		upper += 0.5
	}
	if a.Nice {
		sc := scale.Linear{Min: lower, Max: upper}
		sc.Nice(scale.TickOptions{Max: a.TickCount})
		lower, upper = sc.Min, sc.Max
	}
	if lower == a.lower && upper == a.upper {
		return false
	}
	a.lower, a.upper = lower, upper
	return true
}

func (a *NumberAxis) linear() scale.Linear {
	return scale.Linear{
		Min: a.lower,
		Max: a.upper,
	}
}

func (a *NumberAxis) format(v float64) string {
	p := a.printer()
	if a.Decimals >= 0 {
		return p.Sprint(number.Decimal(v, number.MinFractionDigits(a.Decimals), number.MaxFractionDigits(a.Decimals)))
	}
	return p.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

func (a *NumberAxis) printer() *message.Printer {
	if a.owner != nil {
		if p := a.owner.Printer(); p != nil {
			return p
		}
	}
	return message.NewPrinter(language.English)
}

func (a *NumberAxis) fire() {
	if a.owner != nil {
		a.owner.AxisChanged(a)
	}
}

func tickLine(edge Edge, cursor, pos, size float64) (canvas.Point, canvas.Point) {
	switch edge {
	case EdgeLeft:
		return canvas.Pt(cursor-size, pos), canvas.Pt(cursor, pos)
	case EdgeRight:
		return canvas.Pt(cursor, pos), canvas.Pt(cursor+size, pos)
	case EdgeTop:
		return canvas.Pt(pos, cursor-size), canvas.Pt(pos, cursor)
	default:
		return canvas.Pt(pos, cursor), canvas.Pt(pos, cursor+size)
	}
}

func tickText(edge Edge, cursor, pos, offset float64) (canvas.Point, canvas.Anchor) {
	switch edge {
	case EdgeLeft:
		return canvas.Pt(cursor-offset, pos), canvas.CenterRight
	case EdgeRight:
		return canvas.Pt(cursor+offset, pos), canvas.CenterLeft
	case EdgeTop:
		return canvas.Pt(pos, cursor-offset), canvas.BottomCenter
	default:
		return canvas.Pt(pos, cursor+offset), canvas.TopCenter
	}
}
