// Package config provides configuration loading, validation, and management
// for chatstat. It handles reading from YAML files, environment variables,
// setting default values, and validating configuration parameters.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	errs "github.com/alizand/chatstat/internal/errors"
)

// Calendar hint values accepted by analysis.calendar.
const (
	CalendarGregorian = "gregorian"
	CalendarJalali    = "jalali"
)

// Default values for optional configuration parameters.
const (
	DefaultLogLevel             = "info"
	DefaultTopN                 = 20
	DefaultCalendar             = CalendarGregorian
	DefaultCountMediaInActivity = true
)

// LogConfig controls log verbosity and output format.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// AnalysisConfig controls the statistics engine.
type AnalysisConfig struct {
	// TopN is the length of the most-common word and emoji lists.
	TopN int `mapstructure:"top_n" validate:"gt=0,lte=1000"`

	// Calendar tells the parser which calendar the transcript's dates
	// are written in. Resolved once per run; the whole log is assumed
	// to use one calendar consistently.
	Calendar string `mapstructure:"calendar" validate:"oneof=gregorian jalali"`

	// CountMediaInActivity includes media-omitted messages in the
	// hour/weekday/month/day activity buckets. Deleted messages always
	// count (they were real messages at that time); system events never do.
	CountMediaInActivity bool `mapstructure:"count_media_in_activity"`
}

// WordsConfig points at the optional word list files.
type WordsConfig struct {
	StopFile string `mapstructure:"stop_file"`
	BadFile  string `mapstructure:"bad_file"`
}

// ChatConfig identifies the transcript to analyse.
type ChatConfig struct {
	File string `mapstructure:"file"`
}

// Config defines the application configuration parameters. Values can be
// set via config.yaml or environment variables prefixed with CHATSTAT_
// (e.g. CHATSTAT_ANALYSIS_TOP_N).
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Words    WordsConfig    `mapstructure:"words"`
	Chat     ChatConfig     `mapstructure:"chat"`
}

// Load loads and validates configuration from:
// 1. Default values
// 2. The config file at path (optional; missing file is not an error)
// 3. CHATSTAT_* environment variables
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("CHATSTAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, errs.NewConfigError("failed to read config file", err)
		}
		// Config file not found is okay, we'll use defaults
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errs.NewConfigError("failed to parse config", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errs.NewConfigError("invalid configuration", err)
	}

	return cfg, nil
}

// Validate checks the configuration against the struct-level constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// setDefaults sets default values for optional configuration parameters.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.json", false)

	v.SetDefault("analysis.top_n", DefaultTopN)
	v.SetDefault("analysis.calendar", DefaultCalendar)
	v.SetDefault("analysis.count_media_in_activity", DefaultCountMediaInActivity)

	v.SetDefault("words.stop_file", "")
	v.SetDefault("words.bad_file", "")

	v.SetDefault("chat.file", "")
}
