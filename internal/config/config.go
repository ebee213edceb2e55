// Package config loads CLI settings from defaults, an optional file, the
// environment and command-line flags, in increasing order of precedence
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. SORTER_LOG_LEVEL
const EnvPrefix = "SORTER"

// Config holds application configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level   string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format  string `mapstructure:"format" validate:"oneof=text json"`
	NoColor bool   `mapstructure:"no_color"`
}

// OutputConfig holds result rendering settings
type OutputConfig struct {
	Format  string `mapstructure:"format" validate:"oneof=table json yaml"`
	NoColor bool   `mapstructure:"no_color"`
}

// flagKeys maps CLI flag names to config keys
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"output":     "output.format",
	"no-color":   "output.no_color",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.no_color", false)
	v.SetDefault("output.format", "table")
	v.SetDefault("output.no_color", false)
}

// Load reads configuration. path may be empty, in which case SORTER_CONFIG is
// consulted; a missing default file is not an error but an explicitly named
// one is. flags may be nil
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	// one switch for both outputs
	if c.Output.NoColor {
		c.Log.NoColor = true
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks every enumerated setting
func (c Config) Validate() error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: %q is not one of [%s]", fe.Namespace(), fe.Value(), fe.Param()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
