package polar

import (
	"image"
	"math"

	"github.com/midbel/polar/canvas"
)

// Transformer converts (angle, radius) pairs into device pixels.
type Transformer struct {
	Offset           float64
	CounterClockwise bool
	Margin           float64
}

// Quadrant returns the square whose left side lies on the center of area
// and whose side is the usable radius once the margin is removed.
func (t Transformer) Quadrant(area canvas.Rect) canvas.Rect {
	var (
		minx  = area.MinX() + t.Margin
		maxx  = area.MaxX() - t.Margin
		miny  = area.MinY() + t.Margin
		maxy  = area.MaxY() - t.Margin
		halfw = (maxx - minx) / 2
		halfh = (maxy - miny) / 2
		midx  = minx + halfw
		midy  = miny + halfh
		l     = math.Min(halfw, halfh)
	)
	return canvas.NewRect(midx, midy, l, l)
}

func (t Transformer) Center(area canvas.Rect) canvas.Point {
	q := t.Quadrant(area)
	return canvas.Pt(q.X, q.Y)
}

// ToDevice returns the pixel of the point at angle degrees and radius units
// from the center. Radii below the lower bound of axis are drawn at the
// center.
func (t Transformer) ToDevice(angle, radius float64, axis ValueAxis, area canvas.Rect) image.Point {
	if t.CounterClockwise {
		angle = -angle
	}
	var (
		rad      = (angle + t.Offset) * deg2rad
		quadrant = t.Quadrant(area)
		adjusted = math.Max(radius, axis.LowerBound())
		length   = axis.ValueToDevice(adjusted, quadrant, EdgeBottom) - quadrant.X
		x        = quadrant.X + math.Cos(rad)*length
		y        = quadrant.Y + math.Sin(rad)*length
	)
	return image.Pt(int(math.Round(x)), int(math.Round(y)))
}
