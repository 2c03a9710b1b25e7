package polar

import (
	"github.com/midbel/polar/canvas"
)

// Zoomable is implemented by plots accepting zoom requests on their axes.
type Zoomable interface {
	DomainZoomable() bool
	RangeZoomable() bool
	ZoomDomainAxes(float64, *RenderingInfo, canvas.Point)
	ZoomDomainAxesBetween(float64, float64, *RenderingInfo, canvas.Point)
	ZoomRangeAxes(float64, *RenderingInfo, canvas.Point)
	ZoomRangeAxesBetween(float64, float64, *RenderingInfo, canvas.Point)
}

var _ Zoomable = (*Plot)(nil)

// Zoom multiplies the upper bound of every axis by factor. A factor lower
// or equal to zero restores auto-ranging instead.
func (p *Plot) Zoom(factor float64) {
	p.axes.Each(func(_ int, a ValueAxis) {
		if factor > 0 {
			a.SetUpperBound(a.UpperBound() * factor)
			a.SetAutoRange(false)
		} else {
			a.SetAutoRange(true)
		}
	})
}

func (p *Plot) DomainZoomable() bool {
	return false
}

func (p *Plot) RangeZoomable() bool {
	return true
}

func (p *Plot) ZoomDomainAxes(float64, *RenderingInfo, canvas.Point) {}

func (p *Plot) ZoomDomainAxesBetween(float64, float64, *RenderingInfo, canvas.Point) {}

func (p *Plot) ZoomRangeAxes(factor float64, _ *RenderingInfo, _ canvas.Point) {
	p.Zoom(factor)
}

// ZoomRangeAxesBetween zooms with the mean of the two percentages.
func (p *Plot) ZoomRangeAxesBetween(lower, upper float64, _ *RenderingInfo, _ canvas.Point) {
	p.Zoom((upper + lower) / 2)
}

// ZoomRangeAxesAround resizes the range of every axis by factor. With
// anchor set, the value found under the horizontal position of source in
// the data area stays in place; otherwise ranges shrink around their center.
func (p *Plot) ZoomRangeAxesAround(factor float64, info *RenderingInfo, source canvas.Point, anchor bool) {
	p.axes.Each(func(_ int, a ValueAxis) {
		if factor <= 0 {
			a.SetAutoRange(true)
			return
		}
		center := a.Range().Central()
		if anchor && info != nil {
			center = a.DeviceToValue(source.X, info.DataArea, EdgeBottom)
		}
		a.ResizeRange(factor, center)
	})
}
