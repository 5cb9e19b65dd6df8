// Package config loads healthnet settings from a YAML file, HEALTHNET_*
// environment variables and defaults, in increasing order of precedence:
// defaults < file < environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "HEALTHNET_"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the resolved configuration of the tool.
type Config struct {
	DataDir           string    `yaml:"data_dir" validate:"required"`
	CentersFile       string    `yaml:"centers_file" validate:"required"`
	ConnectionsFile   string    `yaml:"connections_file" validate:"required"`
	RelationshipsFile string    `yaml:"relationships_file" validate:"required"`
	MaxCenterID       int       `yaml:"max_center_id" validate:"gte=0"`
	Log               LogConfig `yaml:"log"`
	Color             bool      `yaml:"color"`
}

// LogConfig selects the logrus level and output format.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn warning error fatal panic"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the built-in configuration: the three CSV files in the
// working directory, no ID ceiling and info-level text logs.
func Default() Config {
	return Config{
		DataDir:           ".",
		CentersFile:       "health_centers.csv",
		ConnectionsFile:   "connections.csv",
		RelationshipsFile: "relationship_table.csv",
		Log:               LogConfig{Level: "info", Format: "text"},
		Color:             true,
	}
}

// CentersPath is the full path of the centers file.
func (c Config) CentersPath() string { return filepath.Join(c.DataDir, c.CentersFile) }

// ConnectionsPath is the full path of the connections file.
func (c Config) ConnectionsPath() string { return filepath.Join(c.DataDir, c.ConnectionsFile) }

// RelationshipsPath is the full path of the relationship table.
func (c Config) RelationshipsPath() string {
	return filepath.Join(c.DataDir, c.RelationshipsFile)
}

// Load reads the YAML file at path (skipped when path is empty), applies
// environment overrides from the process environment and validates.
func Load(fs afero.Fs, path string) (Config, error) {
	return LoadWithEnv(fs, path, os.LookupEnv)
}

// LoadWithEnv is Load with an explicit environment lookup.
func LoadWithEnv(fs afero.Fs, path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg, lookup); err != nil {
		return Config{}, err
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field constraints.
func Validate(cfg Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			e := verrs[0]
			return fmt.Errorf("%w: %s fails %q (value %v)", ErrInvalid, e.Namespace(), e.Tag(), e.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"DATA_DIR":           &cfg.DataDir,
		"CENTERS_FILE":       &cfg.CentersFile,
		"CONNECTIONS_FILE":   &cfg.ConnectionsFile,
		"RELATIONSHIPS_FILE": &cfg.RelationshipsFile,
		"LOG_LEVEL":          &cfg.Log.Level,
		"LOG_FORMAT":         &cfg.Log.Format,
	}
	for key, dst := range strs {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	if v, ok := lookup(EnvPrefix + "MAX_CENTER_ID"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %sMAX_CENTER_ID=%q: %v", ErrInvalid, EnvPrefix, v, err)
		}
		cfg.MaxCenterID = n
	}
	if v, ok := lookup(EnvPrefix + "COLOR"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %sCOLOR=%q: %v", ErrInvalid, EnvPrefix, v, err)
		}
		cfg.Color = b
	}
	// https://no-color.org
	if _, ok := lookup("NO_COLOR"); ok {
		cfg.Color = false
	}

	return nil
}
