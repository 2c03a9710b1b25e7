package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const ellipseSteps = 72

// Raster is a Surface drawing into an RGBA image. Text is always drawn with
// a fixed 7x13 face whatever the requested font size.
type Raster struct {
	img   *image.RGBA
	face  font.Face
	clip  *Rect
	alpha float64
}

func NewRaster(width, height int) *Raster {
	return &Raster{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		face:  basicfont.Face7x13,
		alpha: 1,
	}
}

func (r *Raster) Image() *image.RGBA {
	return r.img
}

func (r *Raster) WritePNG(w io.Writer) error {
	return png.Encode(w, r.img)
}

func (r *Raster) DrawLine(from, to Point, stroke Stroke) {
	if !stroke.Valid() {
		return
	}
	r.strokePolyline([]Point{from, to}, stroke)
}

func (r *Raster) DrawPath(path Path, stroke Stroke) {
	if !stroke.Valid() {
		return
	}
	for _, line := range path.Polyline() {
		r.strokePolyline(line, stroke)
	}
}

func (r *Raster) FillPath(path Path, color string) {
	r.fillPolygons(path.Polyline(), color)
}

func (r *Raster) DrawRect(rect Rect, stroke Stroke) {
	if !stroke.Valid() {
		return
	}
	r.strokePolyline(rectPoints(rect), stroke)
}

func (r *Raster) FillRect(rect Rect, color string) {
	r.fillPolygons([][]Point{rectPoints(rect)}, color)
}

func (r *Raster) DrawEllipse(bounds Rect, stroke Stroke) {
	if !stroke.Valid() {
		return
	}
	r.strokePolyline(ellipsePoints(bounds), stroke)
}

func (r *Raster) FillEllipse(bounds Rect, color string) {
	r.fillPolygons([][]Point{ellipsePoints(bounds)}, color)
}

func (r *Raster) DrawText(str string, at Point, anchor Anchor, f Font) {
	if str == "" {
		return
	}
	col := f.Color
	if col == "" {
		col = "black"
	}
	c, ok := parseColor(col, r.alpha)
	if !ok {
		return
	}
	var (
		w, h   = r.MeasureText(str, f)
		dx, dy = anchor.Offset(w, h)
		ascent = r.face.Metrics().Ascent.Ceil()
		x      = int(math.Round(at.X + dx))
		y      = int(math.Round(at.Y+dy)) + ascent
	)
	dst, ok := r.img.SubImage(r.bounds()).(*image.RGBA)
	if !ok {
		return
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: r.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(str)
}

func (r *Raster) MeasureText(str string, _ Font) (float64, float64) {
	var (
		w = font.MeasureString(r.face, str).Ceil()
		h = r.face.Metrics().Height.Ceil()
	)
	return float64(w), float64(h)
}

func (r *Raster) Clip() *Rect {
	return r.clip
}

func (r *Raster) SetClip(clip *Rect) {
	if clip == nil {
		r.clip = nil
		return
	}
	c := *clip
	r.clip = &c
}

func (r *Raster) Alpha() float64 {
	return r.alpha
}

func (r *Raster) SetAlpha(alpha float64) {
	r.alpha = math.Max(0, math.Min(1, alpha))
}

func (r *Raster) bounds() image.Rectangle {
	all := r.img.Bounds()
	if r.clip == nil {
		return all
	}
	c := image.Rect(
		int(math.Floor(r.clip.MinX())),
		int(math.Floor(r.clip.MinY())),
		int(math.Ceil(r.clip.MaxX())),
		int(math.Ceil(r.clip.MaxY())),
	)
	return c.Intersect(all)
}

func (r *Raster) strokePolyline(line []Point, stroke Stroke) {
	var (
		half  = math.Max(stroke.Width, 1) / 2
		polys [][]Point
	)
	for _, seg := range dashSegments(line, stroke.Style.Dashes()) {
		dx, dy := seg[1].X-seg[0].X, seg[1].Y-seg[0].Y
		n := math.Hypot(dx, dy)
		if n == 0 {
			continue
		}
		nx, ny := -dy/n*half, dx/n*half
		polys = append(polys, []Point{
			seg[0].Add(nx, ny),
			seg[1].Add(nx, ny),
			seg[1].Add(-nx, -ny),
			seg[0].Add(-nx, -ny),
		})
	}
	r.fillPolygons(polys, stroke.Color)
}

func (r *Raster) fillPolygons(polys [][]Point, col string) {
	c, ok := parseColor(col, r.alpha)
	if !ok || len(polys) == 0 {
		return
	}
	var (
		all = r.img.Bounds()
		z   = vector.NewRasterizer(all.Dx(), all.Dy())
	)
	for _, poly := range polys {
		if len(poly) < 2 {
			continue
		}
		z.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, p := range poly[1:] {
			z.LineTo(float32(p.X), float32(p.Y))
		}
		z.ClosePath()
	}
	mask := image.NewAlpha(all)
	z.Draw(mask, all, image.Opaque, image.Point{})

	clip := r.bounds()
	draw.DrawMask(r.img, clip, image.NewUniform(c), image.Point{}, mask, clip.Min, draw.Over)
}

func dashSegments(line []Point, dashes []int) [][2]Point {
	var list [][2]Point
	if len(dashes) == 0 {
		for i := 1; i < len(line); i++ {
			list = append(list, [2]Point{line[i-1], line[i]})
		}
		return list
	}
	var (
		index  int
		remain = float64(dashes[0])
		on     = true
	)
	for i := 1; i < len(line); i++ {
		var (
			from   = line[i-1]
			to     = line[i]
			length = math.Hypot(to.X-from.X, to.Y-from.Y)
			done   float64
		)
		for done < length {
			step := math.Min(remain, length-done)
			if on {
				a := lerp(from, to, done/length)
				b := lerp(from, to, (done+step)/length)
				list = append(list, [2]Point{a, b})
			}
			done += step
			remain -= step
			if remain <= 0 {
				index = (index + 1) % len(dashes)
				remain = float64(dashes[index])
				on = !on
			}
		}
	}
	return list
}

func lerp(a, b Point, t float64) Point {
	return Pt(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t)
}

func rectPoints(r Rect) []Point {
	return []Point{
		Pt(r.MinX(), r.MinY()),
		Pt(r.MaxX(), r.MinY()),
		Pt(r.MaxX(), r.MaxY()),
		Pt(r.MinX(), r.MaxY()),
		Pt(r.MinX(), r.MinY()),
	}
}

func ellipsePoints(r Rect) []Point {
	var (
		list   = make([]Point, 0, ellipseSteps+1)
		cx, cy = r.CenterX(), r.CenterY()
		rx, ry = r.W / 2, r.H / 2
	)
	for i := 0; i <= ellipseSteps; i++ {
		a := 2 * math.Pi * float64(i) / ellipseSteps
		list = append(list, Pt(cx+rx*math.Cos(a), cy+ry*math.Sin(a)))
	}
	return list
}

func parseColor(str string, alpha float64) (color.NRGBA, bool) {
	var c color.NRGBA
	str = strings.ToLower(strings.TrimSpace(str))
	switch {
	case str == "" || str == "none" || str == "transparent":
		return c, false
	case str == "currentcolor":
		c = color.NRGBA{A: 255}
	case strings.HasPrefix(str, "#"):
		hex := str[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return c, false
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return c, false
		}
		c = color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
	default:
		rgba, ok := colornames.Map[str]
		if !ok {
			return c, false
		}
		c = color.NRGBA{R: rgba.R, G: rgba.G, B: rgba.B, A: rgba.A}
	}
	c.A = uint8(math.Round(float64(c.A) * alpha))
	return c, true
}
