package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. BRANCHSWEEP_MENU
	EnvPrefix = "BRANCHSWEEP"
	// FileName is the config file name searched for, without extension
	FileName = "branchsweep"
)

// SearchPaths are searched for a config file, after the repository root,
// when none is given
var SearchPaths = []string{"$HOME/.config/branchsweep"}

// Config holds the resolved settings for one run
type Config struct {
	Menu     string `mapstructure:"menu"`
	DryRun   bool   `mapstructure:"dry_run"`
	NoColor  bool   `mapstructure:"no_color"`
	Verbose  bool   `mapstructure:"verbose"`
	LogLevel string `mapstructure:"log_level"`
}

var defaults = map[string]any{
	"menu":      "auto",
	"dry_run":   false,
	"no_color":  false,
	"verbose":   false,
	"log_level": "warn",
}

// flag name -> config key
var flagKeys = map[string]string{
	"menu":      "menu",
	"dry-run":   "dry_run",
	"no-color":  "no_color",
	"verbose":   "verbose",
	"log-level": "log_level",
}

var menuStyles = []string{"auto", "list", "numeric"}

// RegisterFlags adds the command line flags that override config values
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("menu", "auto", "Menu style: auto, list or numeric")
	flags.Bool("dry-run", false, "Show what would be deleted without deleting")
	flags.Bool("no-color", false, "Disable colored output")
	flags.BoolP("verbose", "v", false, "Log executed git commands")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
}

// Load resolves the config from flags, BRANCHSWEEP_* environment variables,
// the config file and defaults, in that order of precedence. An empty
// configFile searches repoRoot, when known, and then SearchPaths; a missing
// file is not an error then.
func Load(configFile string, flags *pflag.FlagSet, repoRoot string) (Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return Config{}, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(FileName)
		if repoRoot != "" {
			v.AddConfigPath(repoRoot)
		}
		for _, path := range SearchPaths {
			v.AddConfigPath(path)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	c.Menu = strings.ToLower(strings.TrimSpace(c.Menu))
	if !slices.Contains(menuStyles, c.Menu) {
		return fmt.Errorf("invalid menu %q: want one of %s", c.Menu, strings.Join(menuStyles, ", "))
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.Verbose {
		c.LogLevel = "debug"
	}
	return nil
}
