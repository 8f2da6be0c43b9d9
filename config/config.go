// Package config resolves runtime settings from defaults, an optional TOML
// file, SKYFOLIO_ environment variables and command-line flags, in rising
// priority.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/skyfolio/parameter"
)

// DefaultFile is looked up in the working directory when --config is not given
const DefaultFile = "skyfolio.toml"

// EnvPrefix namespaces environment overrides, e.g. SKYFOLIO_STORE_PATH
const EnvPrefix = "SKYFOLIO"

type SurfaceConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

type StoreConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type AudioConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type LogConfig struct {
	Debug bool   `mapstructure:"debug"`
	Dir   string `mapstructure:"dir"`
	Level string `mapstructure:"level"`
}

// Config is the validated runtime configuration
type Config struct {
	Game    string        `mapstructure:"game"`
	Tick    time.Duration `mapstructure:"tick"`
	Seed    uint64        `mapstructure:"seed"`
	Surface SurfaceConfig `mapstructure:"surface"`
	Store   StoreConfig   `mapstructure:"store"`
	Audio   AudioConfig   `mapstructure:"audio"`
	Log     LogConfig     `mapstructure:"log"`

	// File is the config file actually read, empty when none was found
	File string `mapstructure:"-"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game", parameter.GameSkySim)
	v.SetDefault("tick", parameter.DefaultTickInterval)
	v.SetDefault("seed", 0)

	v.SetDefault("surface.width", 0)
	v.SetDefault("surface.height", 0)

	v.SetDefault("store.enabled", true)
	v.SetDefault("store.path", "./data/skyfolio.db")

	v.SetDefault("audio.enabled", true)

	v.SetDefault("log.debug", false)
	v.SetDefault("log.dir", "./logs")
	v.SetDefault("log.level", "info")
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("skyfolio", pflag.ContinueOnError)
	fs.String("config", "", "path to TOML config file (default ./"+DefaultFile+" if present)")
	fs.StringP("game", "g", parameter.GameSkySim, "game to play: "+parameter.GameSkySim+" or "+parameter.GameFlappy)
	fs.Duration("tick", parameter.DefaultTickInterval, "frame interval")
	fs.Uint64("seed", 0, "random seed, 0 picks one from the clock")
	fs.Int("width", 0, "logical surface width, 0 uses the game default")
	fs.Int("height", 0, "logical surface height, 0 uses the game default")
	fs.String("store", "./data/skyfolio.db", "sqlite path for high scores")
	fs.Bool("no-store", false, "keep high scores in memory only")
	fs.Bool("mute", false, "disable audio cues")
	fs.BoolP("debug", "d", false, "write logs to the log directory")
	fs.String("log-dir", "./logs", "log directory")
	fs.String("log-level", "info", "log level: trace, debug, info, warn, error")
	return fs
}

// Load parses args (without the program name) and returns the merged configuration
func Load(args []string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// Flags keep their own names, mapped onto nested keys
	bindings := map[string]string{
		"game":           "game",
		"tick":           "tick",
		"seed":           "seed",
		"surface.width":  "width",
		"surface.height": "height",
		"store.path":     "store",
		"log.debug":      "debug",
		"log.dir":        "log-dir",
		"log.level":      "log-level",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("binding flag %s: %w", flag, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("toml")
	file, _ := fs.GetString("config")
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName(strings.TrimSuffix(DefaultFile, ".toml"))
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	// Negative switches only ever turn features off
	if noStore, _ := fs.GetBool("no-store"); noStore {
		cfg.Store.Enabled = false
	}
	if mute, _ := fs.GetBool("mute"); mute {
		cfg.Audio.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and fills game-specific surface defaults
func (c *Config) Validate() error {
	switch c.Game {
	case parameter.GameSkySim:
		if c.Surface.Width == 0 {
			c.Surface.Width = parameter.FlightSurfaceWidth
		}
		if c.Surface.Height == 0 {
			c.Surface.Height = parameter.FlightSurfaceHeight
		}
	case parameter.GameFlappy:
		// Flappy geometry is fixed to its surface
		c.Surface.Width = parameter.FlappyWidth
		c.Surface.Height = parameter.FlappyHeight
	default:
		return fmt.Errorf("unknown game %q", c.Game)
	}

	if c.Tick <= 0 {
		return fmt.Errorf("tick must be positive, got %v", c.Tick)
	}
	if c.Surface.Width < 0 || c.Surface.Height < 0 {
		return fmt.Errorf("surface size must be positive, got %dx%d", c.Surface.Width, c.Surface.Height)
	}
	if c.Store.Enabled && c.Store.Path == "" {
		return errors.New("store.path is required when the store is enabled")
	}
	return nil
}
