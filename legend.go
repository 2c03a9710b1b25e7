package polar

import (
	"slices"

	"github.com/midbel/polar/canvas"
)

type LegendItem struct {
	Label        string
	Description  string
	Color        string
	Shape        ShapeKind
	ShapeVisible bool
	ShapeFilled  bool
	LineVisible  bool
	Line         canvas.Stroke
	DatasetIndex int
	SeriesIndex  int
	SeriesKey    string
}

// LegendItems returns the fixed items when they are set, otherwise one item
// for every series of every dataset having a renderer.
func (p *Plot) LegendItems() []LegendItem {
	if p.fixedLegend != nil {
		return slices.Clone(p.fixedLegend)
	}
	var list []LegendItem
	for i, d := range p.datasets {
		r := p.Renderer(i)
		if d == nil || r == nil {
			continue
		}
		for j := 0; j < d.SeriesCount(); j++ {
			item, ok := r.LegendItem(j)
			if !ok {
				continue
			}
			list = append(list, item)
		}
	}
	return list
}

func (p *Plot) FixedLegendItems() []LegendItem {
	return slices.Clone(p.fixedLegend)
}

// SetFixedLegendItems replaces the generated legend. A nil list restores
// it.
func (p *Plot) SetFixedLegendItems(items []LegendItem) {
	p.fixedLegend = slices.Clone(items)
	p.fire()
}
