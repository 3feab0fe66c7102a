package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cco/bifurcation"
	"github.com/katalvlaran/cco/growth"
)

// FormatOf picks the format from a file extension: .yaml/.yml or .toml.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Load reads and validates the configuration file at path.
func Load(path string) (Config, error) {
	f, err := FormatOf(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	c, err := Decode(bytes.NewReader(data), f)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return c, nil
}

// Decode decodes r over Default and validates the result.
// An empty document yields the defaults.
func Decode(r io.Reader, f Format) (Config, error) {
	c := Default()
	switch f {
	case YAML:
		data, err := io.ReadAll(r)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		if err = decodeYAML(data, &c); err != nil {
			return Config{}, err
		}
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&c)
		if err != nil {
			return Config{}, fmt.Errorf("config: toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("%w: %v", ErrUnknownKey, undecoded)
		}
	default:
		return Config{}, fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// decodeYAML decodes data strictly into c. A document that fails strictly
// but decodes leniently holds keys c does not define.
func decodeYAML(data []byte, c *Config) error {
	strict := yaml.NewDecoder(bytes.NewReader(data))
	strict.KnownFields(true)
	err := strict.Decode(c)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	var typeErr *yaml.TypeError
	if !errors.As(err, &typeErr) {
		return fmt.Errorf("config: yaml: %w", err)
	}
	lenient := Default()
	if yaml.Unmarshal(data, &lenient) != nil {
		return fmt.Errorf("config: yaml: %w", err)
	}

	return fmt.Errorf("%w: %v", ErrUnknownKey, err)
}

// Encode writes c to w in format f.
func (c Config) Encode(w io.Writer, f Format) error {
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}

		return enc.Close()
	case TOML:
		return toml.NewEncoder(w).Encode(c)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
}

// Validate checks physical consistency and the growth tunables.
func (c Config) Validate() error {
	if err := c.Params.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := c.method(); err != nil {
		return err
	}
	if _, err := zap.ParseAtomicLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	if _, err := growth.ApplyOptions(c.options()...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// Logger builds the zap logger selected by Log.
func (c Config) Logger() (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = lvl

	return zc.Build()
}

// GrowthOptions converts the growth section into growth options, logging
// through l.
func (c Config) GrowthOptions(l *zap.Logger) ([]growth.Option, error) {
	if _, err := c.method(); err != nil {
		return nil, err
	}

	return append(c.options(), growth.WithLogger(l)), nil
}

func (c Config) options() []growth.Option {
	m, _ := c.method()
	opts := []growth.Option{
		growth.WithMaxIterations(c.Growth.MaxIterations),
		growth.WithTolerance(c.Growth.Tolerance),
		growth.WithPenalty(c.Growth.Penalty),
		growth.WithMethod(m),
	}
	if c.Growth.Verify {
		opts = append(opts, growth.WithVerify(c.Growth.VerifyTolerance))
	}

	return opts
}

func (c Config) method() (bifurcation.Method, error) {
	switch strings.ToLower(c.Growth.Method) {
	case "", bifurcation.NelderMead.String():
		return bifurcation.NelderMead, nil
	case bifurcation.Centroid.String():
		return bifurcation.Centroid, nil
	default:
		return 0, fmt.Errorf("%w: growth.method %q", ErrInvalid, c.Growth.Method)
	}
}
