package decode

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/midbel/polar"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type Format int

const (
	FormatChart Format = iota
	FormatTOML
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "chart"
	}
}

// FormatOf guesses the format of a configuration file from its extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatChart
	}
}

func Decode(r io.Reader) (polar.Config, error) {
	return NewDecoder(r).Decode()
}

func Encode(w io.Writer, cfg polar.Config) error {
	return NewEncoder(w).Encode(cfg)
}

// DecodeFormat reads a configuration in the given format. Keys missing from
// the input keep their default value.
func DecodeFormat(r io.Reader, format Format) (polar.Config, error) {
	cfg := polar.DefaultConfig()
	var err error
	switch format {
	case FormatTOML:
		err = toml.NewDecoder(r).Decode(&cfg)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&cfg)
		if err == io.EOF {
			err = nil
		}
	default:
		err = NewDecoder(r).DecodeInto(&cfg)
	}
	return cfg, err
}

func EncodeFormat(w io.Writer, cfg polar.Config, format Format) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(cfg)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	default:
		return Encode(w, cfg)
	}
}

func Load(path string) (polar.Config, error) {
	r, err := os.Open(path)
	if err != nil {
		return polar.Config{}, err
	}
	defer r.Close()

	cfg, err := DecodeFormat(r, FormatOf(path))
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg polar.Config) error {
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeFormat(w, cfg, FormatOf(path)); err != nil {
		w.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return w.Close()
}
