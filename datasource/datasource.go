// Package datasource loads polar datasets from tabular files.
package datasource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/midbel/polar"
	"github.com/midbel/slices"
	"github.com/xuri/excelize/v2"
)

var ErrFormat = errors.New("unsupported data format")

// Options selects the columns of a table holding the angle and the radius of
// each point. When Series is negative, every row goes into a single serie
// named after Title or after the radius column header.
type Options struct {
	Theta  int
	Radius int
	Series int
	Title  string
	Sheet  string
	Header bool
	Comma  rune
}

func DefaultOptions() Options {
	return Options{
		Theta:  0,
		Radius: 1,
		Series: -1,
		Comma:  ',',
	}
}

func (o Options) validate() error {
	if o.Theta < 0 {
		return fmt.Errorf("%w: theta column: negative index %d", polar.ErrInvalidArgument, o.Theta)
	}
	if o.Radius < 0 {
		return fmt.Errorf("%w: radius column: negative index %d", polar.ErrInvalidArgument, o.Radius)
	}
	if o.Theta == o.Radius {
		return fmt.Errorf("%w: theta and radius use the same column %d", polar.ErrInvalidArgument, o.Theta)
	}
	if o.Series >= 0 && (o.Series == o.Theta || o.Series == o.Radius) {
		return fmt.Errorf("%w: series column %d already used", polar.ErrInvalidArgument, o.Series)
	}
	return nil
}

func (o Options) width() int {
	return max(o.Theta, o.Radius, o.Series) + 1
}

// Load reads the file at path with the reader matching its extension.
func Load(path string, opts Options) (*polar.XYDataset, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		return ReadXLSX(path, opts)
	case ".csv", ".txt", "":
		r, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer r.Close()

		data, err := ReadCSV(r, opts)
		if err != nil {
			err = fmt.Errorf("%s: %w", path, err)
		}
		return data, err
	case ".tsv":
		r, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer r.Close()

		opts.Comma = '\t'
		data, err := ReadCSV(r, opts)
		if err != nil {
			err = fmt.Errorf("%s: %w", path, err)
		}
		return data, err
	default:
		return nil, fmt.Errorf("%s: %w", ext, ErrFormat)
	}
}

func ReadCSV(r io.Reader, opts Options) (*polar.XYDataset, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	rs := csv.NewReader(r)
	if opts.Comma != 0 {
		rs.Comma = opts.Comma
	}
	rs.Comment = '#'
	rs.FieldsPerRecord = -1
	rs.TrimLeadingSpace = true

	var b builder
	b.Options = opts
	for i := 1; ; i++ {
		row, err := rs.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := b.Push(i, row); err != nil {
			return nil, err
		}
	}
	return b.Dataset(), nil
}

// ReadXLSX reads the rows of a workbook sheet. The first sheet is used when
// no sheet is given.
func ReadXLSX(path string, opts Options) (*polar.XYDataset, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	var b builder
	b.Options = opts
	for i, row := range rows {
		// trailing empty cells are not reported
		for len(row) > 0 && len(row) < opts.width() {
			row = append(row, "")
		}
		if err := b.Push(i+1, row); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return b.Dataset(), nil
}

type builder struct {
	Options

	header bool
	names  []string
	series map[string][]polar.Point
}

func (b *builder) Push(line int, row []string) error {
	if isBlank(row) {
		return nil
	}
	if b.Header && !b.header {
		b.header = true
		if b.Title == "" && b.Radius < len(row) {
			b.Title = strings.TrimSpace(row[b.Radius])
		}
		return nil
	}
	if len(row) < b.width() {
		return fmt.Errorf("row %d: %w: expected at least %d columns, got %d", line, polar.ErrInvalidArgument, b.width(), len(row))
	}
	theta, err := parseValue(slices.At(row, b.Theta))
	if err != nil {
		return fmt.Errorf("row %d: theta: %w", line, err)
	}
	radius, err := parseValue(slices.At(row, b.Radius))
	if err != nil {
		return fmt.Errorf("row %d: radius: %w", line, err)
	}
	name := b.Title
	if b.Series >= 0 {
		name = strings.TrimSpace(slices.At(row, b.Series))
	}
	if b.series == nil {
		b.series = make(map[string][]polar.Point)
	}
	if _, ok := b.series[name]; !ok {
		b.names = append(b.names, name)
	}
	b.series[name] = append(b.series[name], polar.NumberPoint(theta, radius))
	return nil
}

// Dataset gives the series in the order they first appeared.
func (b *builder) Dataset() *polar.XYDataset {
	list := make([]polar.Serie, 0, len(b.names))
	for _, name := range b.names {
		list = append(list, polar.NewSerie(name, b.series[name]...))
	}
	return polar.NewDataset(list...)
}

// parseValue reads a number, an empty cell being a missing value.
func parseValue(str string) (float64, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(str, 64)
}

func isBlank(row []string) bool {
	return slices.Every(row, func(str string) bool {
		return strings.TrimSpace(str) == ""
	})
}
