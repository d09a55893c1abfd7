package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Window  WindowConfig  `mapstructure:"window"`
	Sim     SimConfig     `mapstructure:"sim"`
	Stage   StageConfig   `mapstructure:"stage"`
	Prefabs PrefabsConfig `mapstructure:"prefabs"`
	Players int           `mapstructure:"players"`
}

type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

type SimConfig struct {
	TickRate int  `mapstructure:"tick_rate"`
	Workers  int  `mapstructure:"workers"` // parallel sequence resolution
	Debug    bool `mapstructure:"debug"`
}

type StageConfig struct {
	Width   float64 `mapstructure:"width"`
	Height  float64 `mapstructure:"height"`
	Depth   float64 `mapstructure:"depth"`
	Gravity float64 `mapstructure:"gravity"`
}

type PrefabsConfig struct {
	Character string `mapstructure:"character"`
	Dir       string `mapstructure:"dir"`
	HotReload bool   `mapstructure:"hot_reload"`
}

// Load reads config from the given YAML file path. An empty path uses
// defaults and BRAWLER_* environment overrides only.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("brawler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "brawler")
	v.SetDefault("sim.tick_rate", 60)
	v.SetDefault("sim.workers", 4)
	v.SetDefault("sim.debug", false)
	v.SetDefault("stage.width", 1200)
	v.SetDefault("stage.height", 600)
	v.SetDefault("stage.depth", 200)
	v.SetDefault("stage.gravity", 0.5)
	v.SetDefault("prefabs.character", "fighter.yaml")
	v.SetDefault("prefabs.dir", "prefabs")
	v.SetDefault("prefabs.hot_reload", true)
	v.SetDefault("players", 1)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Sim.TickRate <= 0:
		return fmt.Errorf("config: sim.tick_rate must be positive, got %d", c.Sim.TickRate)
	case c.Sim.Workers <= 0:
		return fmt.Errorf("config: sim.workers must be positive, got %d", c.Sim.Workers)
	case c.Players < 1 || c.Players > 2:
		return fmt.Errorf("config: players must be 1 or 2, got %d", c.Players)
	case c.Stage.Width <= 0 || c.Stage.Height <= 0:
		return fmt.Errorf("config: stage must have a positive size")
	}
	return nil
}
