package polar

import (
	"fmt"
	"math"
	"strings"

	"github.com/midbel/polar/canvas"
)

// Edge is the side of a rectangle along which an axis is laid out.
type Edge int

const (
	EdgeTop Edge = 1 << iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

func (e Edge) Vertical() bool {
	return e == EdgeLeft || e == EdgeRight
}

func (e Edge) Reverse() bool {
	return e == EdgeRight || e == EdgeTop
}

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	default:
		return "unknown"
	}
}

// AxisLocation places a radius axis along one of the half spokes of the
// plot: the first word gives the direction of the spoke, the second the side
// of the spoke where labels are written.
type AxisLocation int

const (
	LocationUnset AxisLocation = iota
	NorthLeft
	NorthRight
	SouthLeft
	SouthRight
	EastAbove
	EastBelow
	WestAbove
	WestBelow
)

var defaultLocations = [...]AxisLocation{
	EastAbove,
	NorthLeft,
	WestBelow,
	SouthRight,
	EastBelow,
	NorthRight,
	WestAbove,
	SouthLeft,
}

// DefaultLocation gives the location assigned to an axis slot that was
// never explicitly configured.
func DefaultLocation(index int) AxisLocation {
	if index < 0 {
		return LocationUnset
	}
	return defaultLocations[index%len(defaultLocations)]
}

var locationNames = map[AxisLocation]string{
	NorthLeft:  "north-left",
	NorthRight: "north-right",
	SouthLeft:  "south-left",
	SouthRight: "south-right",
	EastAbove:  "east-above",
	EastBelow:  "east-below",
	WestAbove:  "west-above",
	WestBelow:  "west-below",
}

func ParseAxisLocation(str string) (AxisLocation, error) {
	str = strings.ToLower(strings.ReplaceAll(str, "_", "-"))
	for loc, name := range locationNames {
		if name == str {
			return loc, nil
		}
	}
	return LocationUnset, invalidArgument("location", fmt.Sprintf("%q not recognized", str))
}

func (a AxisLocation) Valid() bool {
	_, ok := locationNames[a]
	return ok
}

func (a AxisLocation) String() string {
	if name, ok := locationNames[a]; ok {
		return name
	}
	return "unset"
}

func (a AxisLocation) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, invalidArgument("location", "unset location")
	}
	return []byte(a.String()), nil
}

func (a *AxisLocation) UnmarshalText(b []byte) error {
	loc, err := ParseAxisLocation(string(b))
	if err == nil {
		*a = loc
	}
	return err
}

// Layout computes the quadrant of area where an axis at this location is
// drawn, the cursor giving the position of its line and the edge of the
// quadrant it follows.
func (a AxisLocation) Layout(area canvas.Rect, margin float64) (canvas.Rect, float64, Edge) {
	var (
		r  = math.Min(area.W/2, area.H/2) - margin
		x  = area.CenterX() - r
		y  = area.CenterY() - r
		cx = area.CenterX()
		cy = area.CenterY()
	)
	switch a {
	case NorthRight:
		return canvas.NewRect(x, y, r, r), cx, EdgeRight
	case NorthLeft:
		return canvas.NewRect(cx, y, r, r), cx, EdgeLeft
	case SouthLeft:
		return canvas.NewRect(cx, cy, r, r), cx, EdgeLeft
	case SouthRight:
		return canvas.NewRect(x, cy, r, r), cx, EdgeRight
	case EastAbove:
		return canvas.NewRect(cx, cy, r, r), cy, EdgeTop
	case EastBelow:
		return canvas.NewRect(cx, y, r, r), cy, EdgeBottom
	case WestAbove:
		return canvas.NewRect(x, cy, r, r), cy, EdgeTop
	case WestBelow:
		return canvas.NewRect(x, y, r, r), cy, EdgeBottom
	default:
		return canvas.Rect{}, 0, 0
	}
}
