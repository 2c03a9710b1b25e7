package polar

import (
	"fmt"

	"github.com/midbel/polar/canvas"
)

type UnitType int

const (
	Absolute UnitType = iota
	Relative
)

func (u UnitType) String() string {
	if u == Relative {
		return "relative"
	}
	return "absolute"
}

func ParseUnitType(str string) (UnitType, error) {
	switch str {
	case "", "absolute":
		return Absolute, nil
	case "relative":
		return Relative, nil
	default:
		return Absolute, invalidArgument("unit", fmt.Sprintf("%q not recognized", str))
	}
}

type LengthAdjustment int

const (
	NoChange LengthAdjustment = iota
	Expand
	Contract
)

// Insets describes the space to leave on each side of a rectangle. Margins
// are taken as pixels when absolute and as fractions of the rectangle size
// when relative.
type Insets struct {
	Unit   UnitType
	Top    float64
	Left   float64
	Bottom float64
	Right  float64
}

func NewInsets(top, left, bottom, right float64) Insets {
	return Insets{
		Unit:   Absolute,
		Top:    top,
		Left:   left,
		Bottom: bottom,
		Right:  right,
	}
}

func RelativeInsets(top, left, bottom, right float64) Insets {
	i := NewInsets(top, left, bottom, right)
	i.Unit = Relative
	return i
}

func (i Insets) Validate() error {
	if i.Top < 0 || i.Left < 0 || i.Bottom < 0 || i.Right < 0 {
		return invalidArgument("insets", "negative margin")
	}
	if i.Unit == Relative && (i.Top+i.Bottom >= 1 || i.Left+i.Right >= 1) {
		return invalidArgument("insets", "relative margins of opposite sides add up to 1 or more")
	}
	return nil
}

func (i Insets) TopInset(height float64) float64 {
	return i.inset(i.Top, height)
}

func (i Insets) BottomInset(height float64) float64 {
	return i.inset(i.Bottom, height)
}

func (i Insets) LeftInset(width float64) float64 {
	return i.inset(i.Left, width)
}

func (i Insets) RightInset(width float64) float64 {
	return i.inset(i.Right, width)
}

// TopOutset and the other outset functions compute the margin that, once
// removed from an extended dimension, gives back dim. For relative insets
// the opposite margins must add up to less than 1.
func (i Insets) TopOutset(height float64) float64 {
	return i.outset(i.Top, i.Bottom, height)
}

func (i Insets) BottomOutset(height float64) float64 {
	return i.outset(i.Bottom, i.Top, height)
}

func (i Insets) LeftOutset(width float64) float64 {
	return i.outset(i.Left, i.Right, width)
}

func (i Insets) RightOutset(width float64) float64 {
	return i.outset(i.Right, i.Left, width)
}

func (i Insets) TrimWidth(width float64) float64 {
	return width - i.LeftInset(width) - i.RightInset(width)
}

func (i Insets) ExtendWidth(width float64) float64 {
	return width + i.LeftOutset(width) + i.RightOutset(width)
}

func (i Insets) TrimHeight(height float64) float64 {
	return height - i.TopInset(height) - i.BottomInset(height)
}

func (i Insets) ExtendHeight(height float64) float64 {
	return height + i.TopOutset(height) + i.BottomOutset(height)
}

// Adjust creates a new rectangle from base where each direction is either
// contracted by the insets, expanded by the outsets or left untouched.
func (i Insets) Adjust(base *canvas.Rect, horizontal, vertical LengthAdjustment) (canvas.Rect, error) {
	if base == nil {
		return canvas.Rect{}, invalidArgument("base", "nil rectangle")
	}
	var (
		x = base.X
		y = base.Y
		w = base.W
		h = base.H
	)
	switch horizontal {
	case Contract:
		left := i.LeftInset(w)
		x += left
		w = w - left - i.RightInset(w)
	case Expand:
		left := i.LeftOutset(w)
		x -= left
		w = w + left + i.RightOutset(w)
	}
	switch vertical {
	case Contract:
		top := i.TopInset(h)
		y += top
		h = h - top - i.BottomInset(h)
	case Expand:
		top := i.TopOutset(h)
		y -= top
		h = h + top + i.BottomOutset(h)
	}
	return canvas.NewRect(x, y, w, h), nil
}

func (i Insets) Inset(base *canvas.Rect) (canvas.Rect, error) {
	return i.InsetAxes(base, true, true)
}

// InsetAxes is Inset limited to the requested directions.
func (i Insets) InsetAxes(base *canvas.Rect, horizontal, vertical bool) (canvas.Rect, error) {
	return i.Adjust(base, adjustment(horizontal, Contract), adjustment(vertical, Contract))
}

func (i Insets) Outset(base *canvas.Rect) (canvas.Rect, error) {
	return i.OutsetAxes(base, true, true)
}

func (i Insets) OutsetAxes(base *canvas.Rect, horizontal, vertical bool) (canvas.Rect, error) {
	if base == nil {
		return canvas.Rect{}, invalidArgument("base", "nil rectangle")
	}
	if i.Unit == Relative {
		if horizontal && i.Left+i.Right >= 1 {
			return canvas.Rect{}, invalidArgument("insets", "horizontal relative margins add up to 1 or more")
		}
		if vertical && i.Top+i.Bottom >= 1 {
			return canvas.Rect{}, invalidArgument("insets", "vertical relative margins add up to 1 or more")
		}
	}
	return i.Adjust(base, adjustment(horizontal, Expand), adjustment(vertical, Expand))
}

// Trim shrinks area in place.
func (i Insets) Trim(area *canvas.Rect) error {
	if area == nil {
		return invalidArgument("area", "nil rectangle")
	}
	var (
		w      = area.W
		h      = area.H
		left   = i.LeftInset(w)
		right  = i.RightInset(w)
		top    = i.TopInset(h)
		bottom = i.BottomInset(h)
	)
	area.X += left
	area.Y += top
	area.W = w - left - right
	area.H = h - top - bottom
	return nil
}

func (i Insets) String() string {
	return fmt.Sprintf("insets(%s, t=%g, l=%g, b=%g, r=%g)", i.Unit, i.Top, i.Left, i.Bottom, i.Right)
}

func (i Insets) inset(margin, dim float64) float64 {
	if i.Unit == Relative {
		return margin * dim
	}
	return margin
}

func (i Insets) outset(near, far, dim float64) float64 {
	if i.Unit == Relative {
		return dim / (1 - near - far) * near
	}
	return near
}

func adjustment(apply bool, adj LengthAdjustment) LengthAdjustment {
	if apply {
		return adj
	}
	return NoChange
}
