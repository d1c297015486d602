package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. LVLATTICE_WORKERS.
const EnvPrefix = "LVLATTICE_"

// MaxFileSize caps the configuration file size (1 MiB).
const MaxFileSize = 1 << 20

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), LVLATTICE_* environment variables and opts, then validates it.
func Load(path string, opts ...Option) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigEnv, err)
	}

	if err := cfg.apply(opts...); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// Decode overlays the YAML document read from r onto c.
func (c *Config) Decode(r io.Reader) error {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return fmt.Errorf("%w: read: %w", ErrConfigFile, err)
	}
	if len(data) > MaxFileSize {
		return fmt.Errorf("%w: larger than %d bytes", ErrConfigFile, MaxFileSize)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: decode: %w", ErrConfigFile, err)
	}

	return nil
}

// Encode writes c as a YAML document.
func (c Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	return enc.Close()
}

func (c *Config) readFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigFile, err)
	}
	defer f.Close()

	return c.Decode(f)
}
