// Package config loads the settings of an automapper run from automapper.yaml, AUTOMAPPER_*
// environment variables and command line flags bound by the caller.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"automapper/internal/automap"
	"automapper/internal/naming"
	"automapper/internal/rules"
)

// EnvPrefix prefixes every environment variable, e.g. AUTOMAPPER_AUTOMAP_MAX_DEPTH.
const EnvPrefix = "AUTOMAPPER"

// DefaultName is the config file name searched in the working directory, without extension.
const DefaultName = "automapper"

// Config represents the configuration of one run.
type Config struct {
	Packages     []string          `mapstructure:"packages"`
	Types        []string          `mapstructure:"types"`
	Declarations string            `mapstructure:"declarations"`
	LogLevel     string            `mapstructure:"log_level"`
	Automap      AutomapConfig     `mapstructure:"automap"`
	Rules        RulesConfig       `mapstructure:"rules"`
	Conventions  ConventionsConfig `mapstructure:"conventions"`
}

// AutomapConfig represents the traversal settings.
type AutomapConfig struct {
	VerifyOwnership     bool `mapstructure:"verify_ownership"`
	ExpandRelationships bool `mapstructure:"expand_relationships"`
	MaxDepth            int  `mapstructure:"max_depth"`
}

// RulesConfig represents the discovery and naming policy.
type RulesConfig struct {
	IDNames      []string `mapstructure:"id_names"`
	VersionNames []string `mapstructure:"version_names"`
	KeySuffix    string   `mapstructure:"key_suffix"`
	ColumnStyle  string   `mapstructure:"column_style"`
}

// ConventionsConfig selects the built-in conventions.
type ConventionsConfig struct {
	PluralTables  bool `mapstructure:"plural_tables"`
	ForeignKeys   bool `mapstructure:"foreign_keys"`
	EnumsAsString bool `mapstructure:"enums_as_string"`
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()

	def := rules.DefaultOptions()
	v.SetDefault("packages", []string{})
	v.SetDefault("types", []string{})
	v.SetDefault("declarations", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("automap.verify_ownership", true)
	v.SetDefault("automap.expand_relationships", false)
	v.SetDefault("automap.max_depth", automap.DefaultConfig().MaxDepth)
	v.SetDefault("rules.id_names", def.IDNames)
	v.SetDefault("rules.version_names", def.VersionNames)
	v.SetDefault("rules.key_suffix", def.KeySuffix)
	v.SetDefault("rules.column_style", def.ColumnStyle.String())
	v.SetDefault("conventions.plural_tables", false)
	v.SetDefault("conventions.foreign_keys", false)
	v.SetDefault("conventions.enums_as_string", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the given config file, or automapper.yaml from the working directory when file is
// empty. A missing default file is not an error; a missing explicit file is.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(DefaultName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values viper cannot type check.
func (c *Config) Validate() error {
	if _, err := naming.ParseStyle(c.Rules.ColumnStyle); err != nil {
		return fmt.Errorf("rules.column_style: %w", err)
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	if c.Automap.MaxDepth < 0 {
		return fmt.Errorf("automap.max_depth: %d is negative", c.Automap.MaxDepth)
	}

	return nil
}

// RulesOptions converts the rules section. The column style must have passed Validate.
func (c *Config) RulesOptions() rules.Options {
	style, _ := naming.ParseStyle(c.Rules.ColumnStyle)

	return rules.Options{
		IDNames:      c.Rules.IDNames,
		VersionNames: c.Rules.VersionNames,
		KeySuffix:    c.Rules.KeySuffix,
		ColumnStyle:  style,
	}
}

// AutomapConfig builds the automapper configuration. Claimer and Skipper are left to the caller.
func (c *Config) AutomapConfig(logger *slog.Logger) automap.Config {
	return automap.Config{
		Rules:               rules.New(c.RulesOptions()),
		VerifyOwnership:     c.Automap.VerifyOwnership,
		ExpandRelationships: c.Automap.ExpandRelationships,
		MaxDepth:            c.Automap.MaxDepth,
		Logger:              logger,
	}
}

// ParseLevel parses debug, info, warn or error. An empty string selects info.
func ParseLevel(s string) (slog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}

	return l, nil
}
