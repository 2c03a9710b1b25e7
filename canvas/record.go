package canvas

import (
	"unicode/utf8"
)

type Call struct {
	Name string
	Args []any
}

// Recorder is a Surface keeping track of every call it receives without
// producing any output.
type Recorder struct {
	calls []Call
	clip  *Rect
	alpha float64
}

func NewRecorder() *Recorder {
	return &Recorder{
		alpha: 1,
	}
}

func (r *Recorder) Calls() []Call {
	return r.calls
}

func (r *Recorder) Len() int {
	return len(r.calls)
}

func (r *Recorder) Reset() {
	r.calls = r.calls[:0]
}

func (r *Recorder) Filter(name string) []Call {
	var list []Call
	for _, c := range r.calls {
		if c.Name == name {
			list = append(list, c)
		}
	}
	return list
}

func (r *Recorder) DrawLine(from, to Point, stroke Stroke) {
	r.record("DrawLine", from, to, stroke)
}

func (r *Recorder) DrawPath(path Path, stroke Stroke) {
	r.record("DrawPath", path, stroke)
}

func (r *Recorder) FillPath(path Path, color string) {
	r.record("FillPath", path, color)
}

func (r *Recorder) DrawRect(rect Rect, stroke Stroke) {
	r.record("DrawRect", rect, stroke)
}

func (r *Recorder) FillRect(rect Rect, color string) {
	r.record("FillRect", rect, color)
}

func (r *Recorder) DrawEllipse(bounds Rect, stroke Stroke) {
	r.record("DrawEllipse", bounds, stroke)
}

func (r *Recorder) FillEllipse(bounds Rect, color string) {
	r.record("FillEllipse", bounds, color)
}

func (r *Recorder) DrawText(str string, at Point, anchor Anchor, font Font) {
	r.record("DrawText", str, at, anchor, font)
}

func (r *Recorder) MeasureText(str string, font Font) (float64, float64) {
	r.record("MeasureText", str, font)
	return estimateText(str, font)
}

func (r *Recorder) Clip() *Rect {
	r.record("Clip")
	return r.clip
}

func (r *Recorder) SetClip(clip *Rect) {
	r.record("SetClip", clip)
	if clip == nil {
		r.clip = nil
		return
	}
	c := *clip
	r.clip = &c
}

func (r *Recorder) Alpha() float64 {
	r.record("Alpha")
	return r.alpha
}

func (r *Recorder) SetAlpha(alpha float64) {
	r.record("SetAlpha", alpha)
	r.alpha = alpha
}

func (r *Recorder) record(name string, args ...any) {
	r.calls = append(r.calls, Call{Name: name, Args: args})
}

func estimateText(str string, font Font) (float64, float64) {
	size := font.Size
	if size <= 0 {
		size = FontSize
	}
	n := utf8.RuneCountInString(str)
	return float64(n) * size * 0.6, size * 1.2
}
