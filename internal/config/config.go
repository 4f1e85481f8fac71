// Package config loads the optional .withgen.toml configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the name of the configuration file. Load looks it up in the
// working directory only; there is no parent directory search.
const FileName = ".withgen.toml"

// Config carries the settings of .withgen.toml. Every key is optional and
// the zero value means "not configured". Command-line flags take precedence
// over the file.
type Config struct {
	Strategy string `toml:"strategy"` // fields or builder
	Output   string `toml:"output"`   // generated file name
	Color    string `toml:"color"`    // auto, always, or never
	Format   string `toml:"format"`   // text or json
}

// Load reads [FileName] under dir. The boolean reports whether the file
// exists; a missing file is not an error. Unknown keys and malformed values
// fail with the file position.
func Load(dir string) (Config, bool, error) {
	path := filepath.Join(dir, FileName)

	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, false, nil
	}
	if err != nil {
		return Config{}, true, fmt.Errorf("%s: %w", path, err)
	}

	if keys := meta.Undecoded(); len(keys) != 0 {
		key := keys[0].String()
		return Config{}, true, fmt.Errorf("%s: unknown key %q", at(path, key), key)
	}

	if err := cfg.validate(path); err != nil {
		return Config{}, true, err
	}
	return cfg, true, nil
}

// validate rejects values none of the command-line flags would accept.
func (c Config) validate(path string) error {
	switch c.Strategy {
	case "", "fields", "builder":
	default:
		return fmt.Errorf("%s: unknown strategy %q; want fields or builder", at(path, "strategy"), c.Strategy)
	}

	switch c.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("%s: unknown color %q; want auto, always, or never", at(path, "color"), c.Color)
	}

	switch c.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("%s: unknown format %q; want text or json", at(path, "format"), c.Format)
	}

	return nil
}

// at renders "path:line" for the line declaring key, or just path when the
// line is unknown. BurntSushi/toml does not expose key positions, so the
// line is recovered from the raw file.
func at(path, key string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return path
	}

	for i, line := range strings.Split(string(data), "\n") {
		rest, ok := strings.CutPrefix(strings.TrimLeft(line, " \t"), key)
		if !ok {
			continue
		}
		if strings.HasPrefix(strings.TrimLeft(rest, " \t"), "=") {
			return fmt.Sprintf("%s:%d", path, i+1)
		}
	}
	return path
}
