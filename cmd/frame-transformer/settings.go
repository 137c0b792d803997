package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/imdario/mergo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"frame-transformer/internal/resolve"
)

const (
	envPrefix           = "FRAME_TRANSFORMER"
	defaultSettingsName = ".frame-transformer"
)

// Settings are the tool-wide knobs, read from flags, FRAME_TRANSFORMER_*
// environment variables and an optional .frame-transformer.yaml, in that
// order of precedence.
type Settings struct {
	MaxSeekDepth int    `mapstructure:"max_seek_depth"`
	LogLevel     string `mapstructure:"log_level"`
}

// DefaultSettings returns the values used when nothing else is configured.
func DefaultSettings() Settings {
	return Settings{
		MaxSeekDepth: resolve.DefaultMaxSeekDepth,
		LogLevel:     logrus.WarnLevel.String(),
	}
}

// loadSettings reads settings through v. settingsFile, when set, must exist;
// otherwise .frame-transformer.yaml is looked up in the working directory
// and skipped if absent.
func loadSettings(v *viper.Viper, settingsFile string) (Settings, error) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if settingsFile != "" {
		v.SetConfigFile(settingsFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(defaultSettingsName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if settingsFile != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("reading settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decoding settings: %w", err)
	}

	if err := mergo.Merge(&s, DefaultSettings()); err != nil {
		return Settings{}, fmt.Errorf("applying default settings: %w", err)
	}

	return s, nil
}

// newLogger builds the logger handed to every component.
func newLogger(s Settings, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", s.LogLevel, err)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	return logger, nil
}
