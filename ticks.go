package polar

import (
	"math"

	"github.com/midbel/polar/canvas"
	"github.com/midbel/slices"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	fullcircle = 360.0
	halfcircle = 180.0
	deg2rad    = math.Pi / halfcircle
)

type TickType int

const (
	TickMajor TickType = iota
	TickMinor
)

type Tick struct {
	Value          float64
	Label          string
	Anchor         canvas.Anchor
	RotationAnchor canvas.Anchor
	Type           TickType
}

// TickPlanner produces the ticks placed around the circumference of the
// plot and decides on which side of its tick each label is written.
type TickPlanner struct {
	Unit             float64
	Offset           float64
	CounterClockwise bool
	Printer          *message.Printer
}

// AngleTicks returns one major tick every Unit degrees starting at 0 and
// stopping before a full turn.
func (p TickPlanner) AngleTicks() []Tick {
	if p.Unit <= 0 || math.IsNaN(p.Unit) || math.IsInf(p.Unit, 0) {
		return nil
	}
	var ticks []Tick
	for i := 0; ; i++ {
		v := float64(i) * p.Unit
		if v >= fullcircle {
			break
		}
		anchor := p.TextAnchor(v)
		ticks = append(ticks, Tick{
			Value:          v,
			Label:          p.format(v),
			Anchor:         anchor,
			RotationAnchor: anchor,
			Type:           TickMajor,
		})
	}
	return ticks
}

// TextAnchor classifies the angle, once rotated by the offset and the
// direction, into one of the eight anchors around a point.
func (p TickPlanner) TextAnchor(angle float64) canvas.Anchor {
	if !isFinite(angle) || !isFinite(p.Offset) {
		return canvas.Center
	}
	offset := math.Mod(p.Offset, fullcircle)
	if offset < 0 {
		offset += fullcircle
	}
	dir := 1.0
	if p.CounterClockwise {
		dir = -1
	}
	normalized := math.Mod(dir*angle+offset, fullcircle)
	if normalized < 0 {
		normalized = math.Mod(normalized+fullcircle, fullcircle)
	}

	switch {
	case normalized == 0:
		return canvas.CenterLeft
	case normalized < 90:
		return canvas.TopLeft
	case normalized == 90:
		return canvas.TopCenter
	case normalized < 180:
		return canvas.TopRight
	case normalized == 180:
		return canvas.CenterRight
	case normalized < 270:
		return canvas.BottomRight
	case normalized == 270:
		return canvas.BottomCenter
	default:
		return canvas.BottomLeft
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (p TickPlanner) format(v float64) string {
	pr := p.Printer
	if pr == nil {
		pr = message.NewPrinter(language.English)
	}
	return pr.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// RadialTicks keeps the ticks of a radius axis that get a gridline. Minor
// ticks are only kept when requested.
func RadialTicks(ticks []Tick, minor bool) []Tick {
	return slices.Filter(ticks, func(t Tick) bool {
		return t.Type == TickMajor || minor
	})
}
