package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/hellenic-development/theme-builder/pkg/formatter"
	"github.com/hellenic-development/theme-builder/pkg/upstream"
)

// DefaultFile is the config file looked up in the working directory when no
// explicit path is given.
const DefaultFile = "themebuilder.toml"

// Environment variables that override file values.
const (
	EnvRows       = "THEMEBUILDER_ROWS"
	EnvScale      = "THEMEBUILDER_SCALE"
	EnvOutput     = "THEMEBUILDER_OUTPUT"
	EnvModulesDir = "THEMEBUILDER_MODULES_DIR"
	EnvMarker     = "THEMEBUILDER_MARKER"
)

// Config holds the build inputs and outputs.
type Config struct {
	Rows       string   `toml:"rows"`        // variables table (CSV)
	Scale      string   `toml:"scale"`       // token scale (JSON)
	Output     string   `toml:"output"`      // generated stylesheet
	ModulesDir string   `toml:"modules_dir"` // base directory of upstream sources
	Marker     string   `toml:"marker"`      // comment between upstream CSS and overrides
	Sources    []string `toml:"sources"`     // upstream stylesheets, in order

	file string
}

func Defaults() *Config {
	return &Config{
		Rows:       "data/input/theme.csv",
		Scale:      "data/input/scale.json",
		Output:     "data/output/output.css",
		ModulesDir: "node_modules",
		Marker:     formatter.DefaultMarker,
		Sources:    append([]string(nil), upstream.DefaultSources...),
	}
}

// Load overlays the TOML file at path onto the defaults. With an empty path
// DefaultFile is used if it exists; a missing default file is not an error.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return Defaults(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Defaults(), fmt.Errorf("parse config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	cfg.file = path
	cfg.normalize()
	return cfg, nil
}

// File returns the config file that was loaded, or "" when running on defaults.
func (c *Config) File() string {
	return c.file
}

// LoadDotEnv loads variables from a .env file into the process environment
// without overriding variables that are already set. A missing file is ignored.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides values with the THEMEBUILDER_* variables found by lookup.
// Empty variables are ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	set := func(dst *string, key string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = v
		}
	}
	set(&c.Rows, EnvRows)
	set(&c.Scale, EnvScale)
	set(&c.Output, EnvOutput)
	set(&c.ModulesDir, EnvModulesDir)
	set(&c.Marker, EnvMarker)
}

// normalize restores defaults for values a config file blanked out.
func (c *Config) normalize() {
	d := Defaults()
	if c.Rows == "" {
		c.Rows = d.Rows
	}
	if c.Scale == "" {
		c.Scale = d.Scale
	}
	if c.Output == "" {
		c.Output = d.Output
	}
	if c.Marker == "" {
		c.Marker = d.Marker
	}
	if c.Sources == nil {
		c.Sources = d.Sources
	}
}
