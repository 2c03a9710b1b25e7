package decode

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/midbel/polar"
)

// Encoder writes a configuration with the commands understood by Decoder.
type Encoder struct {
	writer *bufio.Writer
	indent string
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		writer: bufio.NewWriter(w),
		indent: "\t",
	}
}

func (e *Encoder) Encode(cfg polar.Config) error {
	e.set("language", quote(cfg.Language))
	e.set("margin", strconv.Itoa(cfg.Margin))
	e.set("insets", formatFloat(cfg.Insets.Top), formatFloat(cfg.Insets.Left), formatFloat(cfg.Insets.Bottom), formatFloat(cfg.Insets.Right))
	if cfg.Insets.Unit != "" {
		e.set("insets-unit", quote(cfg.Insets.Unit))
	}
	e.set("angle-offset", formatFloat(cfg.AngleOffset))
	e.set("angle-unit", formatFloat(cfg.AngleTickUnit))
	e.set("counter-clockwise", strconv.FormatBool(cfg.CounterClockwise))
	e.set("angle-labels", strconv.FormatBool(cfg.AngleLabels))
	e.set("angle-label-font", font(cfg.AngleLabelFont)...)
	e.set("angle-label-bold", strconv.FormatBool(cfg.AngleLabelFont.Bold))
	e.set("angle-gridlines", strconv.FormatBool(cfg.AngleGridlines))
	e.set("angle-gridline", stroke(cfg.AngleGridline)...)
	e.set("radius-gridlines", strconv.FormatBool(cfg.RadiusGridlines))
	e.set("radius-minor-gridlines", strconv.FormatBool(cfg.RadiusMinorGridlines))
	e.set("radius-gridline", stroke(cfg.RadiusGridline)...)
	e.set("alpha", formatFloat(cfg.ForegroundAlpha))
	e.set("background", quote(cfg.Background))
	e.set("outline", stroke(cfg.Outline)...)

	for _, a := range cfg.Axes {
		e.writeAxis(a)
	}
	for _, b := range cfg.Bindings {
		list := make([]string, 0, len(b.Axes))
		for _, a := range b.Axes {
			list = append(list, strconv.Itoa(a))
		}
		fmt.Fprintf(e.writer, "%s %d %s %s\n", kwMap, b.Dataset, kwTo, strings.Join(list, ", "))
	}
	for _, n := range cfg.CornerText {
		fmt.Fprintf(e.writer, "%s %s\n", kwNote, quote(n))
	}
	return e.writer.Flush()
}

func (e *Encoder) writeAxis(a polar.AxisConfig) {
	fmt.Fprintf(e.writer, "%s %d %s (\n", kwAxis, a.Index, kwWith)
	if a.Location != "" {
		e.option("location", a.Location)
	}
	if a.Label != "" {
		e.option("label", quote(a.Label))
	}
	e.option("range", formatFloat(a.Lower), formatFloat(a.Upper))
	e.option("auto", strconv.FormatBool(a.AutoRange))
	e.option("inverted", strconv.FormatBool(a.Inverted))
	if a.TickCount != nil {
		e.option("ticks", strconv.Itoa(*a.TickCount))
	}
	if a.Decimals != nil {
		e.option("decimals", strconv.Itoa(*a.Decimals))
	}
	if a.TickLength != nil {
		e.option("tick-length", formatFloat(*a.TickLength))
	}
	if a.UpperMargin != nil {
		e.option("upper-margin", formatFloat(*a.UpperMargin))
	}
	if a.IncludeZero != nil {
		e.option("include-zero", strconv.FormatBool(*a.IncludeZero))
	}
	if a.Nice != nil {
		e.option("nice", strconv.FormatBool(*a.Nice))
	}
	if a.Visible != nil {
		e.option("visible", strconv.FormatBool(*a.Visible))
	}
	if a.LabelFont != nil {
		e.option("font", font(*a.LabelFont)...)
		e.option("bold", strconv.FormatBool(a.LabelFont.Bold))
	}
	if a.Line != nil {
		e.option("line", stroke(*a.Line)...)
	}
	fmt.Fprintln(e.writer, ")")
}

func (e *Encoder) set(option string, values ...string) {
	fmt.Fprintf(e.writer, "%s %s %s\n", kwSet, option, strings.Join(values, ", "))
}

func (e *Encoder) option(option string, values ...string) {
	fmt.Fprintf(e.writer, "%s%s %s\n", e.indent, option, strings.Join(values, ", "))
}

func stroke(s polar.StrokeConfig) []string {
	list := []string{quote(s.Color), formatFloat(s.Width)}
	if s.Style != "" {
		list = append(list, quote(s.Style))
	}
	return list
}

func font(f polar.FontConfig) []string {
	list := []string{formatFloat(f.Size), quote(f.Color)}
	for _, fam := range f.Family {
		list = append(list, quote(fam))
	}
	return list
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// quote wraps str in quotes unless it can be read back as a bare literal.
func quote(str string) string {
	if str != "" && !strings.ContainsFunc(str, needQuote) && !isKeyword(str) && str[0] != hash && str[0] != dollar {
		return str
	}
	if strings.ContainsRune(str, dquote) {
		return string(squote) + str + string(squote)
	}
	return string(dquote) + str + string(dquote)
}

func needQuote(r rune) bool {
	switch classify(r) {
	case classBlank, classNewline, classPunct, classQuote:
		return true
	default:
		return false
	}
}
