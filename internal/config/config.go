// Package config loads runtime settings from an optional file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. FASTLIB_HTTP_ADDR.
const EnvPrefix = "FASTLIB"

type Config struct {
	App struct {
		Env string
	} `mapstructure:"app"`

	DB struct {
		Path string
	} `mapstructure:"db"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Admin struct {
		User string
	} `mapstructure:"admin"`

	Log struct {
		Path string
	} `mapstructure:"log"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	Import struct {
		MaxUploadMB int `mapstructure:"max_upload_mb"`
	} `mapstructure:"import"`

	Filter struct {
		QtyBelowDefault int `mapstructure:"qty_below_default"`
	} `mapstructure:"filter"`
}

var defaults = map[string]any{
	"app.env":                  "prod",
	"db.path":                  "fastenerlib.sqlite3",
	"http.addr":                ":8080",
	"admin.user":               "Admin",
	"log.path":                 "",
	"metrics.enabled":          true,
	"import.max_upload_mb":     10,
	"filter.qty_below_default": 10,
}

// Load reads the config file at path, if any, then applies environment
// overrides on top of the defaults.
func Load(path string) (Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decoding config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate checks values that cannot be corrected later.
func (c Config) Validate() error {
	var errs []error
	if c.DB.Path == "" {
		errs = append(errs, errors.New("db.path is empty"))
	}
	if c.HTTP.Addr == "" {
		errs = append(errs, errors.New("http.addr is empty"))
	}
	if c.Import.MaxUploadMB <= 0 {
		errs = append(errs, fmt.Errorf("import.max_upload_mb must be positive, got %d", c.Import.MaxUploadMB))
	}
	if c.Filter.QtyBelowDefault <= 0 {
		errs = append(errs, fmt.Errorf("filter.qty_below_default must be positive, got %d", c.Filter.QtyBelowDefault))
	}
	return errors.Join(errs...)
}

// Dev reports whether the app runs in development mode.
func (c Config) Dev() bool {
	return c.App.Env == "dev"
}

// MaxUploadBytes is the upload size limit for imports and photos.
func (c Config) MaxUploadBytes() int64 {
	return int64(c.Import.MaxUploadMB) << 20
}
