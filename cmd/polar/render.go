package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/midbel/polar"
	"github.com/midbel/polar/canvas"
	"github.com/midbel/polar/datasource"
	"github.com/midbel/polar/decode"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var errOutput = errors.New("unsupported output format")

type renderOptions struct {
	Config  string
	Outputs []string
	Width   float64
	Height  float64
	Zoom    float64
	Lang    string
	Watch   bool
	Data    datasource.Options
}

func renderCommand() *cobra.Command {
	opts := renderOptions{
		Data: datasource.DefaultOptions(),
	}
	cmd := &cobra.Command{
		Use:   "render [data...]",
		Short: "Render a polar plot to svg or png files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(opts.Outputs) == 0 {
				return fmt.Errorf("at least one output file expected")
			}
			logger := getLogger()
			if err := opts.render(cmd.Context(), args, logger); err != nil {
				return err
			}
			if !opts.Watch {
				return nil
			}
			return opts.watch(cmd.Context(), args, logger)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&opts.Config, "config", "c", "", "plot configuration file")
	fs.StringArrayVarP(&opts.Outputs, "output", "o", nil, "output file (.svg or .png), can be repeated")
	fs.Float64Var(&opts.Width, "width", defaultWidth, "width of the plot")
	fs.Float64Var(&opts.Height, "height", defaultHeight, "height of the plot")
	fs.Float64Var(&opts.Zoom, "zoom", 1, "zoom factor applied to the radius axes")
	fs.StringVar(&opts.Lang, "lang", "", "language of labels and messages")
	fs.BoolVarP(&opts.Watch, "watch", "w", false, "render again when an input file changes")
	fs.IntVar(&opts.Data.Theta, "theta", opts.Data.Theta, "index of the angle column")
	fs.IntVar(&opts.Data.Radius, "radius", opts.Data.Radius, "index of the radius column")
	fs.IntVar(&opts.Data.Series, "series", opts.Data.Series, "index of the series column")
	fs.StringVar(&opts.Data.Sheet, "sheet", "", "sheet to read in xlsx files")
	fs.BoolVar(&opts.Data.Header, "header", false, "data files start with a header")
	return cmd
}

func (o renderOptions) load(files []string) (polar.Config, []*polar.XYDataset, error) {
	cfg := polar.DefaultConfig()
	if o.Config != "" {
		c, err := decode.Load(o.Config)
		if err != nil {
			return cfg, nil, err
		}
		cfg = c
	}
	if o.Lang != "" {
		cfg.Language = o.Lang
	}
	var list []*polar.XYDataset
	for _, f := range files {
		data, err := datasource.Load(f, o.Data)
		if err != nil {
			return cfg, nil, err
		}
		list = append(list, data)
	}
	return cfg, list, nil
}

// render draws every output concurrently. Each output gets its own plot and
// its own copy of the datasets.
func (o renderOptions) render(ctx context.Context, files []string, logger *slog.Logger) error {
	cfg, data, err := o.load(files)
	if err != nil {
		return err
	}
	g, ctx := errgroup.WithContext(ctx)
	for _, out := range o.Outputs {
		sets := make([]polar.Dataset, 0, len(data))
		for _, d := range data {
			sets = append(sets, cloneDataset(d))
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			log := logger.With("output", out)
			p, err := o.build(cfg, sets, log)
			if err != nil {
				return err
			}
			now := time.Now()
			if err := renderFile(p, out, o.Width, o.Height); err != nil {
				return err
			}
			log.Debug("plot rendered", "elapsed", time.Since(now))
			return nil
		})
	}
	return g.Wait()
}

func (o renderOptions) build(cfg polar.Config, sets []polar.Dataset, logger *slog.Logger) (*polar.Plot, error) {
	p := polar.NewPlot(nil, polar.NewNumberAxis(""), nil, polar.WithLogger(logger))
	for i, d := range sets {
		if err := p.SetDataset(i, d); err != nil {
			return nil, err
		}
		if err := p.SetRenderer(i, polar.NewRenderer()); err != nil {
			return nil, err
		}
	}
	if err := p.Apply(cfg); err != nil {
		return nil, err
	}
	if o.Zoom != 1 {
		p.Zoom(o.Zoom)
	}
	return p, nil
}

func renderFile(p *polar.Plot, file string, width, height float64) error {
	var (
		area = canvas.NewRect(0, 0, width, height)
		ext  = strings.ToLower(filepath.Ext(file))
	)
	switch ext {
	case ".svg":
		s := canvas.NewSVG(width, height)
		if st := p.Draw(s, area, nil); st == polar.StateAreaTooSmall {
			p.Logger().Warn("nothing drawn", "state", st)
		}
		return writeFile(file, s.Render)
	case ".png":
		r := canvas.NewRaster(int(width), int(height))
		if st := p.Draw(r, area, nil); st == polar.StateAreaTooSmall {
			p.Logger().Warn("nothing drawn", "state", st)
		}
		return writeFile(file, r.WritePNG)
	default:
		return fmt.Errorf("%s: %w", file, errOutput)
	}
}

func writeFile(file string, write func(w io.Writer) error) error {
	w, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := write(w); err != nil {
		w.Close()
		return fmt.Errorf("%s: %w", file, err)
	}
	return w.Close()
}

func cloneDataset(d *polar.XYDataset) *polar.XYDataset {
	var list []polar.Serie
	for i := 0; i < d.SeriesCount(); i++ {
		s, _ := d.Serie(i)
		list = append(list, s)
	}
	return polar.NewDataset(list...)
}
