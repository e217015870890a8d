// Package config loads launcher settings from the config file, the
// environment and command-line flags through viper.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"limeal.fr/rsplaunch/pkg/launcher"
)

const (
	KeyCompanion  = "companion"
	KeyTempDir    = "temp-dir"
	KeyNamePrefix = "name-prefix"
	KeyStrict     = "strict"
	KeyLogLevel   = "log-level"

	EnvPrefix = "RSPLAUNCH"
	FileName  = ".rsplaunch"
)

// ValidKeys lists the settings that can be persisted with `config set`.
var ValidKeys = []string{
	KeyCompanion,
	KeyTempDir,
	KeyNamePrefix,
	KeyStrict,
	KeyLogLevel,
}

type Settings struct {
	Companion  string `json:"companion" yaml:"companion" toml:"companion"`
	TempDir    string `json:"tempDir" yaml:"temp-dir" toml:"temp-dir"`
	NamePrefix string `json:"namePrefix" yaml:"name-prefix" toml:"name-prefix"`
	Strict     bool   `json:"strict" yaml:"strict" toml:"strict"`
	LogLevel   string `json:"logLevel" yaml:"log-level" toml:"log-level"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyCompanion, launcher.DefaultCompanion)
	v.SetDefault(KeyTempDir, "")
	v.SetDefault(KeyNamePrefix, launcher.DefaultNamePrefix)
	v.SetDefault(KeyStrict, false)
	v.SetDefault(KeyLogLevel, "info")
}

// Init wires defaults, RSPLAUNCH_* environment variables and the config
// file into v. Without cfgFile, $HOME/.rsplaunch.yaml is used when present.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return fmt.Errorf("failed to find home directory: %w", err)
		}
		v.AddConfigPath(home)
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	log.Debug("Using config file", "path", v.ConfigFileUsed())
	return nil
}

func Load(v *viper.Viper) Settings {
	return Settings{
		Companion:  v.GetString(KeyCompanion),
		TempDir:    v.GetString(KeyTempDir),
		NamePrefix: v.GetString(KeyNamePrefix),
		Strict:     v.GetBool(KeyStrict),
		LogLevel:   v.GetString(KeyLogLevel),
	}
}

// Set validates key and persists value to the config file, creating the
// file if none exists yet.
func Set(v *viper.Viper, key, value string) error {
	if !slices.Contains(ValidKeys, key) {
		return fmt.Errorf("invalid config key: %s. Valid keys are: %v", key, ValidKeys)
	}
	if key == KeyLogLevel {
		if _, err := log.ParseLevel(value); err != nil {
			return fmt.Errorf("invalid log level %q: %w", value, err)
		}
	}

	v.Set(key, value)

	err := v.WriteConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		err = v.SafeWriteConfig()
	}
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Level returns the configured log level, info when it cannot be parsed.
func (s Settings) Level() log.Level {
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Options turns the settings into launcher options.
func (s Settings) Options() []launcher.Option {
	return []launcher.Option{
		launcher.WithCompanion(s.Companion),
		launcher.WithTempDir(s.TempDir),
		launcher.WithNamePrefix(s.NamePrefix),
		launcher.WithStrictWrites(s.Strict),
	}
}
