// Package config provides Viper-based configuration loading for gloomstalk.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// MapConfig holds dungeon generation parameters.
type MapConfig struct {
	// Width and Height are the grid dimensions in tiles.
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
	// MaxRooms is the exact number of room placement trials per generation.
	MaxRooms int `mapstructure:"max_rooms"`
	// RoomMinSize and RoomMaxSize bound the uniform room dimension draw.
	RoomMinSize int `mapstructure:"room_min_size"`
	RoomMaxSize int `mapstructure:"room_max_size"`
	// MaxMonstersPerRoom bounds the uniform monster count draw per room.
	MaxMonstersPerRoom int `mapstructure:"max_monsters_per_room"`
}

// FOVConfig holds visibility parameters.
type FOVConfig struct {
	// Radius is the torch radius in tiles.
	Radius int `mapstructure:"radius"`
	// LightWalls lights the blocking tile that terminates a sight line.
	LightWalls bool `mapstructure:"light_walls"`
}

// GameConfig holds run parameters.
type GameConfig struct {
	// Seed drives the random source; 0 means derive one from the clock.
	Seed int64 `mapstructure:"seed"`
	// MessageLogSize is how many combat messages the status panel retains.
	MessageLogSize int `mapstructure:"message_log_size"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Map     MapConfig     `mapstructure:"map"`
	FOV     FOVConfig     `mapstructure:"fov"`
	Game    GameConfig    `mapstructure:"game"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
func (c Config) Validate() error {
	var errs []string

	if c.Map.Width < 10 || c.Map.Height < 10 {
		errs = append(errs, fmt.Sprintf("map dimensions %dx%d too small (minimum 10x10)", c.Map.Width, c.Map.Height))
	}
	if c.Map.MaxRooms < 1 {
		errs = append(errs, fmt.Sprintf("max_rooms %d must be at least 1", c.Map.MaxRooms))
	}
	if c.Map.RoomMinSize < 3 {
		errs = append(errs, fmt.Sprintf("room_min_size %d must be at least 3", c.Map.RoomMinSize))
	}
	if c.Map.RoomMaxSize < c.Map.RoomMinSize {
		errs = append(errs, fmt.Sprintf("room_max_size %d below room_min_size %d", c.Map.RoomMaxSize, c.Map.RoomMinSize))
	}
	if c.Map.RoomMaxSize >= c.Map.Width || c.Map.RoomMaxSize >= c.Map.Height {
		errs = append(errs, fmt.Sprintf("room_max_size %d does not fit the %dx%d grid", c.Map.RoomMaxSize, c.Map.Width, c.Map.Height))
	}
	if c.Map.MaxMonstersPerRoom < 0 {
		errs = append(errs, fmt.Sprintf("max_monsters_per_room %d must not be negative", c.Map.MaxMonstersPerRoom))
	}
	if c.FOV.Radius < 1 {
		errs = append(errs, fmt.Sprintf("fov radius %d must be at least 1", c.FOV.Radius))
	}
	if c.Game.MessageLogSize < 1 {
		errs = append(errs, fmt.Sprintf("message_log_size %d must be at least 1", c.Game.MessageLogSize))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("unknown log level %q", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Sprintf("unknown log format %q", c.Logging.Format))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment
// variable overrides, and validates the result. An empty path uses defaults
// and environment only.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with GLOOMSTALK_ prefix
	v.SetEnvPrefix("GLOOMSTALK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Default returns the stock configuration.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Defaults always unmarshal cleanly.
	if err := v.Unmarshal(&cfg); err != nil {
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("map.width", 80)
	v.SetDefault("map.height", 45)
	v.SetDefault("map.max_rooms", 30)
	v.SetDefault("map.room_min_size", 6)
	v.SetDefault("map.room_max_size", 10)
	v.SetDefault("map.max_monsters_per_room", 3)

	v.SetDefault("fov.radius", 10)
	v.SetDefault("fov.light_walls", true)

	v.SetDefault("game.seed", 0)
	v.SetDefault("game.message_log_size", 50)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}
