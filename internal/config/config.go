// Package config loads kdquery settings and point sets.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/TrevorS/kdtree2d"
)

// Config is the root configuration struct
type Config struct {
	Arena   ArenaConfig   `mapstructure:"arena"`
	Points  []PointConfig `mapstructure:"points"`
	Workers int           `mapstructure:"workers"`
	Log     LogConfig     `mapstructure:"log"`
}

// ArenaConfig is the bounding rectangle of the simulation arena
type ArenaConfig struct {
	Top    int `mapstructure:"top"`
	Left   int `mapstructure:"left"`
	Height int `mapstructure:"height"`
	Width  int `mapstructure:"width"`
}

// PointConfig is one tracked object
type PointConfig struct {
	X  int `mapstructure:"x"`
	Y  int `mapstructure:"y"`
	ID int `mapstructure:"id"`
}

// LogConfig selects the logger flavour
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// Load reads configuration from file and environment. Environment
// variables use the KDQUERY_ prefix, e.g. KDQUERY_WORKERS=4.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("arena.top", 0)
	v.SetDefault("arena.left", 0)
	v.SetDefault("arena.height", 600)
	v.SetDefault("arena.width", 800)
	v.SetDefault("workers", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("kdquery")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("kdquery")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("config: workers must be >= 0, got %d", cfg.Workers)
	}

	return cfg, nil
}

// Area returns the arena as a tree bounding rectangle.
func (c *Config) Area() kdtree2d.Rect {
	return kdtree2d.NewRect(c.Arena.Top, c.Arena.Left, c.Arena.Height, c.Arena.Width)
}

// TreePoints converts the configured objects into tree points.
func (c *Config) TreePoints() []kdtree2d.Point {
	pts := make([]kdtree2d.Point, len(c.Points))
	for i, p := range c.Points {
		pts[i] = kdtree2d.Point{X: p.X, Y: p.Y, ObjectID: p.ID}
	}
	return pts
}
