package canvas

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"math"

	"github.com/midbel/svg"
)

// SVG is a Surface producing an SVG document. Shapes are grouped by clip
// region in drawing order.
type SVG struct {
	Width  float64
	Height float64

	defs   svg.Defs
	layers svg.List
	group  *svg.Group

	clip   *Rect
	clipId string
	clips  int
	alpha  float64
}

func NewSVG(width, height float64) *SVG {
	return &SVG{
		Width:  width,
		Height: height,
		alpha:  1,
	}
}

func (s *SVG) Render(w io.Writer) error {
	s.flush()

	el := svg.NewSVG()
	el.Dim = svg.NewDim(s.Width, s.Height)
	if len(s.defs.List.List) > 0 {
		el.Append(s.defs.AsElement())
	}
	for _, e := range s.layers.List {
		el.Append(e)
	}
	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func (s *SVG) DrawLine(from, to Point, stroke Stroke) {
	if !stroke.Valid() {
		return
	}
	li := svg.NewLine(toPos(from), toPos(to))
	li.Stroke = s.stroke(stroke)
	s.append(li.AsElement())
}

func (s *SVG) DrawPath(path Path, stroke Stroke) {
	if !stroke.Valid() || path.Len() == 0 {
		return
	}
	pat := toPath(path)
	pat.Fill = svg.NewFill("none")
	pat.Stroke = s.stroke(stroke)
	s.append(pat.AsElement())
}

func (s *SVG) FillPath(path Path, color string) {
	if color == "" || path.Len() == 0 {
		return
	}
	pat := toPath(path)
	pat.Fill = s.fill(color)
	s.append(pat.AsElement())
}

func (s *SVG) DrawRect(rect Rect, stroke Stroke) {
	if !stroke.Valid() {
		return
	}
	el := toRect(rect)
	el.Fill = svg.NewFill("none")
	el.Stroke = s.stroke(stroke)
	s.append(el.AsElement())
}

func (s *SVG) FillRect(rect Rect, color string) {
	if color == "" {
		return
	}
	el := toRect(rect)
	el.Fill = s.fill(color)
	s.append(el.AsElement())
}

func (s *SVG) DrawEllipse(bounds Rect, stroke Stroke) {
	if !stroke.Valid() {
		return
	}
	el := toEllipse(bounds)
	el.Fill = svg.NewFill("none")
	el.Stroke = s.stroke(stroke)
	s.append(el.AsElement())
}

func (s *SVG) FillEllipse(bounds Rect, color string) {
	if color == "" {
		return
	}
	el := toEllipse(bounds)
	el.Fill = s.fill(color)
	s.append(el.AsElement())
}

func (s *SVG) DrawText(str string, at Point, anchor Anchor, font Font) {
	if str == "" {
		return
	}
	text := svg.NewText(html.EscapeString(str))
	text.Pos = toPos(at)
	text.Font = svg.NewFont(font.Size, font.Family...)
	if font.Color != "" {
		text.Font.Fill = font.Color
	}
	if font.Bold {
		text.Font.Weight = "bold"
	}
	text.Anchor, text.Baseline = textAnchor(anchor)
	if s.alpha >= 1 {
		s.append(text.AsElement())
		return
	}
	var grp svg.Group
	grp.Fill = s.fill(text.Font.Fill)
	grp.Append(text.AsElement())
	s.append(grp.AsElement())
}

func (s *SVG) MeasureText(str string, font Font) (float64, float64) {
	return estimateText(str, font)
}

func (s *SVG) Clip() *Rect {
	return s.clip
}

func (s *SVG) SetClip(clip *Rect) {
	s.flush()
	if clip == nil {
		s.clip, s.clipId = nil, ""
		return
	}
	c := *clip
	s.clip = &c
	s.clips++
	s.clipId = fmt.Sprintf("clip-%d", s.clips)

	cp := svg.NewClipPath()
	cp.Id = s.clipId
	el := toRect(c)
	cp.Append(el.AsElement())
	s.defs.Append(cp.AsElement())
}

func (s *SVG) Alpha() float64 {
	return s.alpha
}

func (s *SVG) SetAlpha(alpha float64) {
	s.alpha = math.Max(0, math.Min(1, alpha))
}

func (s *SVG) append(el svg.Element) {
	if s.group == nil {
		s.group = new(svg.Group)
	}
	s.group.Append(el)
}

func (s *SVG) flush() {
	if s.group == nil {
		return
	}
	s.layers.Append(clipGroup{
		id:    s.clipId,
		group: s.group,
	})
	s.group = nil
}

func (s *SVG) stroke(stroke Stroke) svg.Stroke {
	sk := svg.NewStroke(stroke.Color, stroke.Width)
	sk.DashArray = stroke.Style.Dashes()
	if s.alpha < 1 {
		sk.Opacity = s.alpha
	}
	return sk
}

func (s *SVG) fill(color string) svg.Fill {
	fill := svg.NewFill(color)
	fill.Opacity = s.alpha
	return fill
}

// clipGroup writes the clip-path reference itself since the attribute
// produced by the node of the svg package is not terminated.
type clipGroup struct {
	id    string
	group *svg.Group
}

func (c clipGroup) Render(w svg.Writer) {
	if c.id == "" {
		c.group.Render(w)
		return
	}
	w.WriteString(`<g clip-path="url(#`)
	w.WriteString(c.id)
	w.WriteString(`)">`)
	c.group.Render(w)
	w.WriteString("</g>")
}

func textAnchor(anchor Anchor) (string, string) {
	var (
		align = "middle"
		base  = "middle"
	)
	switch {
	case anchor.Left():
		align = "start"
	case anchor.Right():
		align = "end"
	}
	switch {
	case anchor.Top():
		base = "hanging"
	case anchor.Bottom():
		base = "auto"
	}
	return align, base
}

func toPos(p Point) svg.Pos {
	return svg.NewPos(p.X, p.Y)
}

func toRect(r Rect) svg.Rect {
	var el svg.Rect
	el.Pos = svg.NewPos(r.X, r.Y)
	el.Dim = svg.NewDim(r.W, r.H)
	return el
}

func toEllipse(r Rect) svg.Ellipse {
	var el svg.Ellipse
	el.Pos = svg.NewPos(r.CenterX(), r.CenterY())
	el.RX = r.W / 2
	el.RY = r.H / 2
	return el
}

func toPath(path Path) svg.Path {
	var pat svg.Path
	for _, s := range path.Segments() {
		switch s.Op {
		case OpMoveTo:
			pat.AbsMoveTo(toPos(s.Point))
		case OpLineTo:
			pat.AbsLineTo(toPos(s.Point))
		case OpClose:
			pat.ClosePath()
		}
	}
	return pat
}
