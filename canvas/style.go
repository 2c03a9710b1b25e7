package canvas

import (
	"strings"
)

const FontSize = 12.0

type LineStyle int

const (
	StyleStraight LineStyle = iota
	StyleDotted
	StyleDashed
)

func ParseLineStyle(str string) (LineStyle, bool) {
	switch strings.ToLower(str) {
	case "", "straight", "solid":
		return StyleStraight, true
	case "dotted":
		return StyleDotted, true
	case "dashed":
		return StyleDashed, true
	default:
		return StyleStraight, false
	}
}

func (s LineStyle) String() string {
	switch s {
	case StyleDotted:
		return "dotted"
	case StyleDashed:
		return "dashed"
	default:
		return "straight"
	}
}

func (s LineStyle) Dashes() []int {
	switch s {
	case StyleDotted:
		return []int{1, 2}
	case StyleDashed:
		return []int{2, 2}
	default:
		return nil
	}
}

// Stroke combines the outline of a shape with its paint. A stroke without
// color or width draws nothing.
type Stroke struct {
	Color string
	Width float64
	Style LineStyle
}

func NewStroke(color string, width float64) Stroke {
	return Stroke{
		Color: color,
		Width: width,
	}
}

func (s Stroke) Valid() bool {
	return s.Color != "" && s.Color != "none" && s.Width > 0
}

type Font struct {
	Size   float64
	Family []string
	Color  string
	Bold   bool
}

func NewFont(size float64, families ...string) Font {
	return Font{
		Size:   size,
		Family: families,
		Color:  "black",
	}
}

// Anchor identifies the point of a text box that is placed on the target
// location.
type Anchor int

const (
	Center Anchor = iota
	TopLeft
	TopCenter
	TopRight
	CenterLeft
	CenterRight
	BottomLeft
	BottomCenter
	BottomRight
)

func (a Anchor) String() string {
	switch a {
	case TopLeft:
		return "top-left"
	case TopCenter:
		return "top-center"
	case TopRight:
		return "top-right"
	case CenterLeft:
		return "center-left"
	case CenterRight:
		return "center-right"
	case BottomLeft:
		return "bottom-left"
	case BottomCenter:
		return "bottom-center"
	case BottomRight:
		return "bottom-right"
	default:
		return "center"
	}
}

func (a Anchor) Left() bool {
	return a == TopLeft || a == CenterLeft || a == BottomLeft
}

func (a Anchor) Right() bool {
	return a == TopRight || a == CenterRight || a == BottomRight
}

func (a Anchor) Top() bool {
	return a == TopLeft || a == TopCenter || a == TopRight
}

func (a Anchor) Bottom() bool {
	return a == BottomLeft || a == BottomCenter || a == BottomRight
}

// Offset gives the displacement to apply to the top left corner of a text
// box of the given size so that its anchor lies on the target point.
func (a Anchor) Offset(width, height float64) (float64, float64) {
	var dx, dy float64
	switch {
	case a.Left():
	case a.Right():
		dx = -width
	default:
		dx = -width / 2
	}
	switch {
	case a.Top():
	case a.Bottom():
		dy = -height
	default:
		dy = -height / 2
	}
	return dx, dy
}
