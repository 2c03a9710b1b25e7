package main

import (
	"context"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/midbel/polar"
	"github.com/midbel/polar/datasource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeInputs(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()

	data := filepath.Join(dir, "wind.csv")
	require.NoError(t, os.WriteFile(data, []byte("0,4\n90,8\n180,2\n270,6\n"), 0o644))

	config := filepath.Join(dir, "plot.chart")
	body := "set language fr\nset angle-unit 90\naxis 0 with (\n\trange 0, 10\n)\n"
	require.NoError(t, os.WriteFile(config, []byte(body), 0o644))
	return data, config
}

func TestRender(t *testing.T) {
	data, config := writeInputs(t)
	dir := filepath.Dir(data)

	opts := renderOptions{
		Config:  config,
		Outputs: []string{filepath.Join(dir, "wind.svg"), filepath.Join(dir, "wind.png")},
		Width:   300,
		Height:  200,
		Zoom:    1,
		Data:    datasource.DefaultOptions(),
	}
	require.NoError(t, opts.render(context.Background(), []string{data}, discard()))

	doc, err := os.ReadFile(opts.Outputs[0])
	require.NoError(t, err)
	assert.Contains(t, string(doc), "<svg")

	r, err := os.Open(opts.Outputs[1])
	require.NoError(t, err)
	defer r.Close()
	img, err := png.Decode(r)
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestRenderErrors(t *testing.T) {
	data, config := writeInputs(t)
	dir := filepath.Dir(data)

	opts := renderOptions{
		Config:  config,
		Outputs: []string{filepath.Join(dir, "wind.pdf")},
		Width:   300,
		Height:  200,
		Zoom:    1,
		Data:    datasource.DefaultOptions(),
	}
	err := opts.render(context.Background(), []string{data}, discard())
	assert.ErrorIs(t, err, errOutput)

	opts.Outputs = []string{filepath.Join(dir, "wind.svg")}
	err = opts.render(context.Background(), []string{filepath.Join(dir, "missing.csv")}, discard())
	assert.ErrorIs(t, err, os.ErrNotExist)

	opts.Config = filepath.Join(dir, "missing.chart")
	err = opts.render(context.Background(), []string{data}, discard())
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	data, config := writeInputs(t)

	opts := renderOptions{
		Config: config,
		Lang:   "de",
		Zoom:   0.5,
		Data:   datasource.DefaultOptions(),
	}
	cfg, sets, err := opts.load([]string{data})
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, "de", cfg.Language)
	assert.Equal(t, 90.0, cfg.AngleTickUnit)

	p, err := opts.build(cfg, []polar.Dataset{cloneDataset(sets[0])}, discard())
	require.NoError(t, err)
	assert.Equal(t, 1, p.DatasetCount())
	assert.Equal(t, 1, p.RendererCount())
	assert.Equal(t, "de", p.Language().String())
	assert.Equal(t, polar.NewRange(0, 5), p.Axis(0).Range())
	assert.NotSame(t, sets[0], p.Dataset(0))
}

func TestCloneDataset(t *testing.T) {
	d := polar.NewDataset(polar.NewSerie("gust", polar.NumberPoint(0, 1), polar.NumberPoint(90, 2)))
	c := cloneDataset(d)
	require.NoError(t, c.Add(0, polar.NumberPoint(180, 3)))
	assert.Equal(t, 2, d.ItemCount(0))
	assert.Equal(t, 3, c.ItemCount(0))
	assert.Equal(t, "gust", c.SeriesKey(0))
}

func TestConvert(t *testing.T) {
	_, config := writeInputs(t)
	dir := filepath.Dir(config)

	file := filepath.Join(dir, "plot.toml")
	require.NoError(t, convert(config, file))

	doc, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Regexp(t, `language = ['"]fr['"]`, string(doc))

	back := filepath.Join(dir, "plot.yaml")
	require.NoError(t, convert(file, back))
	doc, err = os.ReadFile(back)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "language: fr")
}
