package decode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/midbel/polar"
	"github.com/midbel/slices"
)

var (
	DefaultShell     = "sh"
	DefaultShellArgs = "-c"
)

// Decoder reads a plot configuration written as a list of commands:
//
//	set angle-offset -90
//	axis 1 with (
//		location south-left
//		range 0, 50
//	)
//	map 1 to 1, 0
//	note "source: buoy 42"
//
// Options not recognized are skipped with a warning unless Strict is set.
type Decoder struct {
	Strict bool
	Logger *slog.Logger

	file  string
	path  string
	cwd   string
	shell string

	env      map[string][]string
	included map[string]bool

	scan *Scanner
	curr Token
	peek Token
}

func NewDecoder(r io.Reader) *Decoder {
	d := Decoder{
		cwd:      ".",
		env:      make(map[string][]string),
		included: make(map[string]bool),
		shell:    DefaultShell,
		scan:     Scan(r),
		Logger:   slog.Default(),
	}
	if r, ok := r.(interface{ Name() string }); ok {
		d.file = r.Name()
		d.path = filepath.Dir(d.file)
		if abs, err := filepath.Abs(d.file); err == nil {
			d.included[abs] = true
		}
	}
	if cwd, err := os.Getwd(); err == nil {
		d.cwd = cwd
	}
	d.next()
	d.next()
	return &d
}

// Decode returns the default configuration updated by the commands of the
// input.
func (d *Decoder) Decode() (polar.Config, error) {
	cfg := polar.DefaultConfig()
	return cfg, d.DecodeInto(&cfg)
}

func (d *Decoder) DecodeInto(cfg *polar.Config) error {
	accept := func(tok Token) bool {
		return tok.Type != EOF
	}
	return d.decodeBody(cfg, accept)
}

func (d *Decoder) decodeBody(cfg *polar.Config, accept func(Token) bool) error {
	d.skipEOL()
	for accept(d.curr) && !d.done() {
		if err := d.expect(Keyword, "keyword expected"); err != nil {
			return err
		}
		var err error
		switch d.curr.Literal {
		case kwSet:
			err = d.decodeSet(cfg)
		case kwAxis:
			err = d.decodeAxis(cfg)
		case kwMap:
			err = d.decodeMap(cfg)
		case kwNote:
			err = d.decodeNote(cfg)
		case kwInclude:
			err = d.decodeInclude(cfg)
		case kwDeclare:
			err = d.decodeDeclare()
		default:
			err = d.decodeError(fmt.Sprintf("unexpected %q keyword", d.curr.Literal))
		}
		if err != nil {
			return err
		}
		d.skipEOL()
	}
	return nil
}

func (d *Decoder) decodeInclude(cfg *polar.Config) error {
	accept := func(tok Token) bool {
		return tok.Type != EOF
	}
	d.next()
	pos := d.curr.Position
	decodeFile := func(file string) error {
		if abs, err := filepath.Abs(file); err == nil && d.included[abs] {
			return DecodeError{
				Position: pos,
				File:     d.file,
				Message:  fmt.Sprintf("include cycle: %s already being decoded", file),
			}
		}
		r, err := os.Open(file)
		if err != nil {
			return err
		}
		defer r.Close()

		sub := NewDecoder(r)
		sub.Strict = d.Strict
		sub.Logger = d.Logger
		for k, vs := range d.env {
			sub.env[k] = vs
		}
		for k := range d.included {
			sub.included[k] = true
		}
		return sub.decodeBody(cfg, accept)
	}
	name, err := d.getString()
	if err != nil {
		return err
	}
	list := []string{
		filepath.Join(d.path, name),
		filepath.Join(d.cwd, name),
	}
	var (
		derr DecodeError
		oerr OptionError
	)
	for _, file := range list {
		err = decodeFile(file)
		if errors.As(err, &derr) || errors.As(err, &oerr) {
			return err
		}
		if err == nil {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("include %s: %w", name, err)
	}
	return d.eol()
}

func (d *Decoder) decodeDeclare() error {
	d.next()
	if err := d.expect(Literal, "literal expected"); err != nil {
		return err
	}
	ident := d.curr.Literal
	d.next()
	values, err := d.getStringList()
	if err != nil {
		return err
	}
	d.env[ident] = values
	return d.eol()
}

func (d *Decoder) decodeNote(cfg *polar.Config) error {
	d.next()
	str, err := d.getString()
	if err != nil {
		return err
	}
	cfg.CornerText = append(cfg.CornerText, str)
	return d.eol()
}

func (d *Decoder) decodeMap(cfg *polar.Config) error {
	d.next()
	dataset, err := d.getInt()
	if err != nil {
		return err
	}
	if err := d.expectKw(kwTo); err != nil {
		return err
	}
	d.next()
	axes, err := d.getIntList()
	if err != nil {
		return err
	}
	if len(axes) == 0 {
		return d.decodeError("axis index expected")
	}
	binding := polar.BindingConfig{
		Dataset: dataset,
		Axes:    axes,
	}
	for i := range cfg.Bindings {
		if cfg.Bindings[i].Dataset == dataset {
			cfg.Bindings[i] = binding
			return d.eol()
		}
	}
	cfg.Bindings = append(cfg.Bindings, binding)
	return d.eol()
}

func (d *Decoder) decodeAxis(cfg *polar.Config) error {
	d.next()
	index, err := d.getInt()
	if err != nil {
		return err
	}
	axis := polar.DefaultAxisConfig(index)
	pos := -1
	for i := range cfg.Axes {
		if cfg.Axes[i].Index == index {
			axis, pos = cfg.Axes[i], i
			break
		}
	}
	if d.isKw(kwWith) {
		d.next()
		err = d.decodeWith(func() error {
			return d.decodeAxisOption(&axis)
		})
		if err != nil {
			return err
		}
	}
	if pos < 0 {
		cfg.Axes = append(cfg.Axes, axis)
	} else {
		cfg.Axes[pos] = axis
	}
	return d.eol()
}

func (d *Decoder) decodeAxisOption(axis *polar.AxisConfig) error {
	var (
		cmd = d.curr.Literal
		err error
	)
	if err := d.expect(Literal, "option expected"); err != nil {
		return err
	}
	d.next()
	switch cmd {
	case "location":
		axis.Location, err = d.getString()
		if err == nil {
			_, err = polar.ParseAxisLocation(axis.Location)
		}
	case "label":
		axis.Label, err = d.getString()
	case "range":
		var list []float64
		if list, err = d.getFloatList(); err != nil {
			break
		}
		if len(list) != 2 {
			err = d.decodeError("invalid number of values given for axis range")
			break
		}
		if list[0] == list[1] {
			err = d.decodeError("axis range can not be empty")
			break
		}
		axis.Lower, axis.Upper = list[0], list[1]
		axis.AutoRange = false
	case "auto":
		axis.AutoRange, err = d.getBool()
	case "inverted":
		axis.Inverted, err = d.getBool()
	case "ticks":
		var n int
		if n, err = d.getInt(); err == nil {
			axis.TickCount = &n
		}
	case "decimals":
		var n int
		if n, err = d.getInt(); err == nil {
			axis.Decimals = &n
		}
	case "tick-length":
		var f float64
		if f, err = d.getFloat(); err == nil {
			axis.TickLength = &f
		}
	case "upper-margin":
		var f float64
		if f, err = d.getFloat(); err == nil {
			axis.UpperMargin = &f
		}
	case "include-zero":
		var b bool
		if b, err = d.getBool(); err == nil {
			axis.IncludeZero = &b
		}
	case "nice":
		var b bool
		if b, err = d.getBool(); err == nil {
			axis.Nice = &b
		}
	case "visible":
		var b bool
		if b, err = d.getBool(); err == nil {
			axis.Visible = &b
		}
	case "font":
		if axis.LabelFont == nil {
			axis.LabelFont = new(polar.FontConfig)
		}
		err = d.decodeFont(axis.LabelFont)
	case "bold":
		if axis.LabelFont == nil {
			axis.LabelFont = new(polar.FontConfig)
		}
		axis.LabelFont.Bold, err = d.getBool()
	case "line":
		if axis.Line == nil {
			axis.Line = new(polar.StrokeConfig)
		}
		err = d.decodeStroke(axis.Line)
	default:
		err = d.unknownOption("axis", cmd)
	}
	if err != nil {
		return err
	}
	return d.eol()
}

func (d *Decoder) decodeSet(cfg *polar.Config) error {
	d.next()
	var (
		err error
		cmd = d.curr.Literal
	)
	if err := d.expect(Literal, "option expected"); err != nil {
		return err
	}
	d.next()
	switch cmd {
	case "language":
		cfg.Language, err = d.getString()
	case "margin":
		cfg.Margin, err = d.getInt()
	case "insets":
		var list []float64
		if list, err = d.getFloatList(); err != nil {
			break
		}
		switch len(list) {
		case 1:
			cfg.Insets.Top, cfg.Insets.Left, cfg.Insets.Bottom, cfg.Insets.Right = list[0], list[0], list[0], list[0]
		case 2:
			cfg.Insets.Top, cfg.Insets.Left, cfg.Insets.Bottom, cfg.Insets.Right = list[0], list[1], list[0], list[1]
		case 4:
			cfg.Insets.Top, cfg.Insets.Left, cfg.Insets.Bottom, cfg.Insets.Right = list[0], list[1], list[2], list[3]
		default:
			err = d.decodeError("invalid number of values given for insets")
		}
	case "insets-unit":
		cfg.Insets.Unit, err = d.getString()
	case "angle-offset":
		cfg.AngleOffset, err = d.getFloat()
	case "angle-unit":
		cfg.AngleTickUnit, err = d.getFloat()
	case "counter-clockwise":
		cfg.CounterClockwise, err = d.getBool()
	case "angle-labels":
		cfg.AngleLabels, err = d.getBool()
	case "angle-label-font":
		err = d.decodeFont(&cfg.AngleLabelFont)
	case "angle-label-bold":
		cfg.AngleLabelFont.Bold, err = d.getBool()
	case "angle-gridlines":
		cfg.AngleGridlines, err = d.getBool()
	case "angle-gridline":
		err = d.decodeStroke(&cfg.AngleGridline)
	case "radius-gridlines":
		cfg.RadiusGridlines, err = d.getBool()
	case "radius-minor-gridlines":
		cfg.RadiusMinorGridlines, err = d.getBool()
	case "radius-gridline":
		err = d.decodeStroke(&cfg.RadiusGridline)
	case "alpha":
		cfg.ForegroundAlpha, err = d.getFloat()
	case "background":
		cfg.Background, err = d.getString()
	case "outline":
		err = d.decodeStroke(&cfg.Outline)
	default:
		err = d.unknownOption("set", cmd)
	}
	if err != nil {
		return err
	}
	return d.eol()
}

// decodeStroke reads "color, width[, style]".
func (d *Decoder) decodeStroke(stroke *polar.StrokeConfig) error {
	list, err := d.getStringList()
	if err != nil {
		return err
	}
	if len(list) < 2 || len(list) > 3 {
		return d.decodeError("stroke expects a color, a width and an optional style")
	}
	width, err := strconv.ParseFloat(list[1], 64)
	if err != nil {
		return d.decodeError(fmt.Sprintf("%s: invalid stroke width", list[1]))
	}
	stroke.Color = list[0]
	stroke.Width = width
	stroke.Style = ""
	if len(list) == 3 {
		stroke.Style = list[2]
	}
	return nil
}

// decodeFont reads "size, color[, family...]".
func (d *Decoder) decodeFont(font *polar.FontConfig) error {
	list, err := d.getStringList()
	if err != nil {
		return err
	}
	if len(list) < 2 {
		return d.decodeError("font expects a size, a color and optional families")
	}
	size, err := strconv.ParseFloat(slices.Fst(list), 64)
	if err != nil {
		return d.decodeError(fmt.Sprintf("%s: invalid font size", slices.Fst(list)))
	}
	font.Size = size
	font.Color = slices.Snd(list)
	font.Family = nil
	if rest := slices.Take(list, 2); len(rest) > 0 {
		font.Family = rest
	}
	return nil
}

func (d *Decoder) decodeWith(decode func() error) error {
	if err := d.expect(Lparen, "expected '('"); err != nil {
		return err
	}
	d.next()
	d.skipEOL()
	for !d.is(Rparen) && !d.done() {
		if d.isKw(kwWith) {
			return d.decodeError("nested 'with' is not allowed")
		}
		if err := decode(); err != nil {
			return err
		}
		d.skipEOL()
	}
	if err := d.expect(Rparen, "expected ')'"); err != nil {
		return err
	}
	d.next()
	return nil
}

// unknownOption fails in strict mode. Otherwise the rest of the line is
// skipped.
func (d *Decoder) unknownOption(section, option string) error {
	if d.Strict {
		return OptionError{
			Position: d.curr.Position,
			File:     d.file,
			Option:   option,
			Section:  section,
		}
	}
	d.Logger.Warn("option not recognized", "section", section, "option", option, "position", d.curr.Position.String())
	for !d.is(EOL) && !d.is(EOF) && !d.is(Comment) {
		d.next()
	}
	return nil
}

func (d *Decoder) is(kind rune) bool {
	return d.curr.Type == kind
}

func (d *Decoder) peekIs(kind rune) bool {
	return d.peek.Type == kind
}

func (d *Decoder) isKw(kw string) bool {
	return d.is(Keyword) && d.curr.Literal == kw
}

func (d *Decoder) expectKw(kw string) error {
	if err := d.expect(Keyword, fmt.Sprintf("expected %q keyword", kw)); err != nil {
		return err
	}
	if d.curr.Literal != kw {
		return d.decodeError(fmt.Sprintf("%q expected, got %s", kw, d.curr.Literal))
	}
	return nil
}

func (d *Decoder) expect(kind rune, msg string) error {
	if d.is(kind) {
		return nil
	}
	return d.decodeError(msg)
}

func (d *Decoder) next() {
	d.curr = d.peek
	d.peek = d.scan.Scan()
}

func (d *Decoder) done() bool {
	return d.curr.Type == EOF
}

func (d *Decoder) eol() error {
	if !d.is(EOL) && !d.is(EOF) && !d.is(Comment) {
		return d.decodeError("expected end of line or end of file")
	}
	d.next()
	return nil
}

func (d *Decoder) decodeError(msg string) error {
	return DecodeError{
		Position: d.curr.Position,
		File:     d.file,
		Message:  msg,
	}
}

func (d *Decoder) skipEOL() {
	for d.is(EOL) || d.is(Comment) {
		d.next()
	}
}

func (d *Decoder) getString() (string, error) {
	var str string
	switch d.curr.Type {
	case Literal:
		str = d.curr.Literal
	case Variable:
		vs, ok := d.env[d.curr.Literal]
		if !ok {
			return "", d.decodeError(fmt.Sprintf("%s: variable not defined", d.curr.Literal))
		}
		str = slices.Fst(vs)
	case Command:
		var (
			out bytes.Buffer
			err bytes.Buffer
		)
		cmd := exec.Command(d.shell, DefaultShellArgs, d.curr.Literal)
		cmd.Stdout = &out
		cmd.Stderr = &err
		if errc := cmd.Run(); errc != nil {
			return "", fmt.Errorf("%w: %s", errc, err.String())
		}
		str = strings.TrimSpace(out.String())
	default:
		return "", d.decodeError("expected literal, variable or command")
	}
	defer d.next()
	return str, nil
}

func (d *Decoder) getBool() (bool, error) {
	tok := d.curr
	str, err := d.getString()
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(str)
	if err != nil {
		return b, d.valueError(tok, str, "boolean")
	}
	return b, nil
}

func (d *Decoder) getInt() (int, error) {
	tok := d.curr
	str, err := d.getString()
	if err != nil {
		return 0, err
	}
	i, err := strconv.Atoi(str)
	if err != nil {
		return i, d.valueError(tok, str, "integer")
	}
	return i, nil
}

func (d *Decoder) getFloat() (float64, error) {
	tok := d.curr
	str, err := d.getString()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return f, d.valueError(tok, str, "number")
	}
	return f, nil
}

func (d *Decoder) getStringList() ([]string, error) {
	var list []string
	for !d.is(EOL) && !d.is(EOF) && !d.is(Comment) && !d.is(Rparen) {
		if d.is(Variable) {
			vs, ok := d.env[d.curr.Literal]
			if !ok {
				return nil, d.decodeError(fmt.Sprintf("%s: variable not defined", d.curr.Literal))
			}
			list = append(list, vs...)
			d.next()
		} else {
			str, err := d.getString()
			if err != nil {
				return nil, err
			}
			list = append(list, str)
		}
		if err := d.nextListItem(); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (d *Decoder) getIntList() ([]int, error) {
	var list []int
	for !d.is(EOL) && !d.is(EOF) && !d.is(Comment) {
		i, err := d.getInt()
		if err != nil {
			return nil, err
		}
		list = append(list, i)
		if err := d.nextListItem(); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (d *Decoder) getFloatList() ([]float64, error) {
	var list []float64
	for !d.is(EOL) && !d.is(EOF) && !d.is(Comment) {
		f, err := d.getFloat()
		if err != nil {
			return nil, err
		}
		list = append(list, f)
		if err := d.nextListItem(); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (d *Decoder) nextListItem() error {
	switch d.curr.Type {
	case Comma:
		if d.peekIs(EOL) || d.peekIs(EOF) {
			return d.decodeError("end of line not expected after ','")
		}
		d.next()
	case EOF, EOL, Comment:
	default:
		return d.decodeError("expected ',' or end of line")
	}
	return nil
}

func (d *Decoder) valueError(tok Token, str, kind string) error {
	return DecodeError{
		Position: tok.Position,
		File:     d.file,
		Message:  fmt.Sprintf("%s: %s expected", str, kind),
	}
}
