package polar

import (
	"fmt"

	"github.com/midbel/polar/canvas"
)

var DefaultSize float64 = 6

type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeSquare
	ShapeDiamond
)

func ParseShapeKind(str string) (ShapeKind, error) {
	switch str {
	case "", "circle":
		return ShapeCircle, nil
	case "square":
		return ShapeSquare, nil
	case "diamond":
		return ShapeDiamond, nil
	default:
		return ShapeCircle, invalidArgument("shape", fmt.Sprintf("%q not recognized", str))
	}
}

func (k ShapeKind) String() string {
	switch k {
	case ShapeSquare:
		return "square"
	case ShapeDiamond:
		return "diamond"
	default:
		return "circle"
	}
}

func drawShape(s canvas.Surface, kind ShapeKind, pos canvas.Point, size float64, color string) {
	if size <= 0 {
		size = DefaultSize
	}
	half := size / 2
	switch kind {
	case ShapeSquare:
		s.FillRect(canvas.NewRect(pos.X-half, pos.Y-half, size, size), color)
	case ShapeDiamond:
		var pat canvas.Path
		pat.MoveTo(pos.Add(0, -half))
		pat.LineTo(pos.Add(half, 0))
		pat.LineTo(pos.Add(0, half))
		pat.LineTo(pos.Add(-half, 0))
		pat.Close()
		s.FillPath(pat, color)
	default:
		s.FillEllipse(canvas.NewRect(pos.X-half, pos.Y-half, size, size), color)
	}
}
