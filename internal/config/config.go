// Package config loads CLI settings from defaults, an optional YAML file,
// ALLGREENS_* environment variables and command-line flags.
package config

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/YuminosukeSato/allgreens/pkg/errors"
	"github.com/YuminosukeSato/allgreens/pkg/log"
)

// EnvPrefix is prepended to every environment variable, e.g. ALLGREENS_LOG_LEVEL.
const EnvPrefix = "ALLGREENS"

// Config holds the runtime settings of the allgreens command.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// LogFormat is console or json. Logs always go to stderr.
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
	// Reference is the label of the reference variable; empty means the first variable.
	Reference string `mapstructure:"reference" yaml:"reference"`
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"log-level":  "log_level",
	"log-format": "log_format",
	"reference":  "reference",
}

// Load resolves the configuration.
// Precedence: flags > env > config file > defaults.
// cfgFile is optional; when set it must exist and parse.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "console")
	v.SetDefault("reference", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", cfgFile)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrapf(err, "bind flag %s", name)
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return nil, err
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return nil, errors.NewInvalidInputError("config.Load", "log_format must be console or json, got "+c.LogFormat)
	}
	return &c, nil
}
