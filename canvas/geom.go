package canvas

import (
	"fmt"
	"math"
)

type Point struct {
	X float64
	Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(x, y float64) Point {
	p.X += x
	p.Y += y
	return p
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Rect is an axis aligned rectangle in device space. Y grows downward.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{
		X: x,
		Y: y,
		W: w,
		H: h,
	}
}

func (r Rect) MinX() float64    { return r.X }
func (r Rect) MinY() float64    { return r.Y }
func (r Rect) MaxX() float64    { return r.X + r.W }
func (r Rect) MaxY() float64    { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

func (r Rect) Center() Point {
	return Pt(r.CenterX(), r.CenterY())
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X <= r.MaxX() && p.Y >= r.MinY() && p.Y <= r.MaxY()
}

// Intersect returns the common area of r and o. The result has zero width or
// height when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	var (
		x1 = math.Max(r.MinX(), o.MinX())
		y1 = math.Max(r.MinY(), o.MinY())
		x2 = math.Min(r.MaxX(), o.MaxX())
		y2 = math.Min(r.MaxY(), o.MaxY())
	)
	return NewRect(x1, y1, math.Max(0, x2-x1), math.Max(0, y2-y1))
}

func (r Rect) String() string {
	return fmt.Sprintf("rect(x=%g, y=%g, w=%g, h=%g)", r.X, r.Y, r.W, r.H)
}

type PathOp int

const (
	OpMoveTo PathOp = iota
	OpLineTo
	OpClose
)

type Segment struct {
	Op PathOp
	Point
}

type Path struct {
	segments []Segment
}

func (p *Path) MoveTo(pt Point) {
	p.segments = append(p.segments, Segment{Op: OpMoveTo, Point: pt})
}

func (p *Path) LineTo(pt Point) {
	if len(p.segments) == 0 {
		p.MoveTo(pt)
		return
	}
	p.segments = append(p.segments, Segment{Op: OpLineTo, Point: pt})
}

func (p *Path) Close() {
	if len(p.segments) == 0 {
		return
	}
	p.segments = append(p.segments, Segment{Op: OpClose})
}

func (p *Path) Segments() []Segment {
	return p.segments
}

func (p *Path) Len() int {
	return len(p.segments)
}

// Polyline converts the path into its subpaths, each given as a list of
// points. A closed subpath repeats its first point at the end.
func (p *Path) Polyline() [][]Point {
	var (
		all  [][]Point
		curr []Point
	)
	for _, s := range p.segments {
		switch s.Op {
		case OpMoveTo:
			if len(curr) > 0 {
				all = append(all, curr)
			}
			curr = []Point{s.Point}
		case OpLineTo:
			curr = append(curr, s.Point)
		case OpClose:
			if len(curr) > 0 {
				curr = append(curr, curr[0])
				all = append(all, curr)
			}
			curr = nil
		}
	}
	if len(curr) > 0 {
		all = append(all, curr)
	}
	return all
}
