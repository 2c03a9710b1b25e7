package canvas

// Surface is the device a plot draws onto. Implementations own the actual
// rasterization, blending and font metrics.
type Surface interface {
	DrawLine(from, to Point, stroke Stroke)
	DrawPath(path Path, stroke Stroke)
	FillPath(path Path, color string)
	DrawRect(rect Rect, stroke Stroke)
	FillRect(rect Rect, color string)
	DrawEllipse(bounds Rect, stroke Stroke)
	FillEllipse(bounds Rect, color string)
	DrawText(str string, at Point, anchor Anchor, font Font)
	MeasureText(str string, font Font) (float64, float64)

	// Clip returns the active clip region, nil when nothing is clipped.
	Clip() *Rect
	SetClip(*Rect)

	Alpha() float64
	SetAlpha(float64)
}
