package polar

import (
	"fmt"
	"math"
	"slices"
)

// Dataset gives access to series of (angle, radius) items. X holds the angle
// in degrees and Y the radius.
type Dataset interface {
	SeriesCount() int
	SeriesKey(int) string
	ItemCount(int) int
	X(int, int) float64
	Y(int, int) float64
	RangeBounds() Range

	Attach(Observer)
	Detach(Observer)
}

type Point struct {
	X float64
	Y float64
}

func NumberPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func (p Point) Missing() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}

type Serie struct {
	Title  string
	Points []Point
}

func NewSerie(title string, points ...Point) Serie {
	return Serie{
		Title:  title,
		Points: slices.Clone(points),
	}
}

// XYDataset is an in memory Dataset. Points with a NaN coordinate are kept
// but ignored when computing the range of values.
type XYDataset struct {
	series    []Serie
	observers []Observer
}

func NewDataset(series ...Serie) *XYDataset {
	d := XYDataset{
		series: make([]Serie, 0, len(series)),
	}
	for _, s := range series {
		d.series = append(d.series, NewSerie(s.Title, s.Points...))
	}
	return &d
}

func (d *XYDataset) SeriesCount() int {
	return len(d.series)
}

func (d *XYDataset) SeriesKey(series int) string {
	if series < 0 || series >= len(d.series) {
		return ""
	}
	return d.series[series].Title
}

func (d *XYDataset) ItemCount(series int) int {
	if series < 0 || series >= len(d.series) {
		return 0
	}
	return len(d.series[series].Points)
}

func (d *XYDataset) X(series, item int) float64 {
	return d.point(series, item).X
}

func (d *XYDataset) Y(series, item int) float64 {
	return d.point(series, item).Y
}

func (d *XYDataset) RangeBounds() Range {
	var r Range
	for _, s := range d.series {
		for _, p := range s.Points {
			if p.Missing() {
				continue
			}
			r = Combine(r, NewRange(p.Y, p.Y))
		}
	}
	return r
}

func (d *XYDataset) Serie(series int) (Serie, bool) {
	if series < 0 || series >= len(d.series) {
		return Serie{}, false
	}
	return d.series[series], true
}

func (d *XYDataset) IndexOf(title string) int {
	return slices.IndexFunc(d.series, func(s Serie) bool {
		return s.Title == title
	})
}

func (d *XYDataset) AddSerie(s Serie) {
	d.series = append(d.series, NewSerie(s.Title, s.Points...))
	d.fire()
}

func (d *XYDataset) RemoveSerie(series int) error {
	if series < 0 || series >= len(d.series) {
		return invalidArgument("series", fmt.Sprintf("index %d out of range", series))
	}
	d.series = slices.Delete(d.series, series, series+1)
	d.fire()
	return nil
}

func (d *XYDataset) Add(series int, pt Point) error {
	if series < 0 || series >= len(d.series) {
		return invalidArgument("series", fmt.Sprintf("index %d out of range", series))
	}
	d.series[series].Points = append(d.series[series].Points, pt)
	d.fire()
	return nil
}

func (d *XYDataset) Attach(o Observer) {
	if o == nil || slices.Contains(d.observers, o) {
		return
	}
	d.observers = append(d.observers, o)
}

func (d *XYDataset) Detach(o Observer) {
	d.observers = slices.DeleteFunc(d.observers, func(other Observer) bool {
		return other == o
	})
}

func (d *XYDataset) point(series, item int) Point {
	if series < 0 || series >= len(d.series) {
		return Point{X: math.NaN(), Y: math.NaN()}
	}
	points := d.series[series].Points
	if item < 0 || item >= len(points) {
		return Point{X: math.NaN(), Y: math.NaN()}
	}
	return points[item]
}

func (d *XYDataset) fire() {
	for _, o := range slices.Clone(d.observers) {
		o.DatasetChanged(d)
	}
}
