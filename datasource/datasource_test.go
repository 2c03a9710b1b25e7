package datasource

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/midbel/polar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const windCSV = `direction,speed,station
# first buoy
0,12.5,north
90,8,north

45,3,south
180,,south
270,15,north
`

func TestReadCSV(t *testing.T) {
	opts := DefaultOptions()
	opts.Series = 2
	opts.Header = true

	data, err := ReadCSV(strings.NewReader(windCSV), opts)
	require.NoError(t, err)
	require.Equal(t, 2, data.SeriesCount())

	assert.Equal(t, "north", data.SeriesKey(0))
	assert.Equal(t, 3, data.ItemCount(0))
	assert.Equal(t, 270.0, data.X(0, 2))
	assert.Equal(t, 15.0, data.Y(0, 2))

	assert.Equal(t, "south", data.SeriesKey(1))
	assert.Equal(t, 2, data.ItemCount(1))
	assert.True(t, math.IsNaN(data.Y(1, 1)))

	assert.Equal(t, polar.NewRange(3, 15), data.RangeBounds())
}

func TestReadCSVSingleSerie(t *testing.T) {
	t.Run("header", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Header = true
		data, err := ReadCSV(strings.NewReader(windCSV), opts)
		require.NoError(t, err)
		require.Equal(t, 1, data.SeriesCount())
		assert.Equal(t, "speed", data.SeriesKey(0))
		assert.Equal(t, 5, data.ItemCount(0))
	})
	t.Run("title", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Title = "gust"
		opts.Theta, opts.Radius = 1, 0
		data, err := ReadCSV(strings.NewReader("2,10\n4,20\n"), opts)
		require.NoError(t, err)
		require.Equal(t, 1, data.SeriesCount())
		assert.Equal(t, "gust", data.SeriesKey(0))
		assert.Equal(t, 10.0, data.X(0, 0))
		assert.Equal(t, 2.0, data.Y(0, 0))
	})
	t.Run("empty", func(t *testing.T) {
		data, err := ReadCSV(strings.NewReader(""), DefaultOptions())
		require.NoError(t, err)
		assert.Zero(t, data.SeriesCount())
	})
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		Name    string
		Input   string
		Options Options
		Invalid bool
	}{
		{
			Name:    "negative-theta",
			Input:   "0,1\n",
			Options: Options{Theta: -1, Radius: 1, Series: -1},
			Invalid: true,
		},
		{
			Name:    "same-column",
			Input:   "0,1\n",
			Options: Options{Theta: 1, Radius: 1, Series: -1},
			Invalid: true,
		},
		{
			Name:    "series-overlap",
			Input:   "0,1\n",
			Options: Options{Theta: 0, Radius: 1, Series: 1},
			Invalid: true,
		},
		{
			Name:    "short-row",
			Input:   "0,1\n2\n",
			Options: DefaultOptions(),
			Invalid: true,
		},
		{
			Name:    "not-a-number",
			Input:   "north,1\n",
			Options: DefaultOptions(),
		},
	}
	for _, c := range tests {
		t.Run(c.Name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(c.Input), c.Options)
			require.Error(t, err)
			if c.Invalid {
				assert.ErrorIs(t, err, polar.ErrInvalidArgument)
			}
		})
	}
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet("wind")
	require.NoError(t, err)
	rows := [][]any{
		{"station", "direction", "speed"},
		{"north", 0, 12.5},
		{"south", 45, 3},
		{"north", 90},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("wind", cell, &row))
	}
	file := filepath.Join(t.TempDir(), "wind.xlsx")
	require.NoError(t, f.SaveAs(file))

	opts := Options{
		Theta:  1,
		Radius: 2,
		Series: 0,
		Sheet:  "wind",
		Header: true,
	}
	data, err := Load(file, opts)
	require.NoError(t, err)
	require.Equal(t, 2, data.SeriesCount())
	assert.Equal(t, "north", data.SeriesKey(0))
	assert.Equal(t, 2, data.ItemCount(0))
	assert.Equal(t, 12.5, data.Y(0, 0))
	assert.Equal(t, 90.0, data.X(0, 1))
	assert.True(t, math.IsNaN(data.Y(0, 1)))
	assert.Equal(t, "south", data.SeriesKey(1))

	opts.Sheet = "missing"
	_, err = ReadXLSX(file, opts)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	tsv := filepath.Join(dir, "wind.tsv")
	require.NoError(t, os.WriteFile(tsv, []byte("0\t4\n120\t6\n"), 0o644))
	data, err := Load(tsv, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 1, data.SeriesCount())
	assert.Equal(t, 120.0, data.X(0, 1))
	assert.Equal(t, 6.0, data.Y(0, 1))

	bad := filepath.Join(dir, "wind.csv")
	require.NoError(t, os.WriteFile(bad, []byte("0,4\n1\n"), 0o644))
	_, err = Load(bad, DefaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)

	_, err = Load(filepath.Join(dir, "wind.json"), DefaultOptions())
	assert.ErrorIs(t, err, ErrFormat)

	_, err = Load(filepath.Join(dir, "missing.csv"), DefaultOptions())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
