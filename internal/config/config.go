package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Theme       string `toml:"theme"`
	ProbeURL    string `toml:"probe_url"`
	ProbeListen string `toml:"probe_listen"`
	FrameRate   int    `toml:"frame_rate"`
	LogFile     string `toml:"log_file"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:       "solarized-dark",
		ProbeURL:    "http://127.0.0.1:8000",
		ProbeListen: ":8000",
		FrameRate:   10,
		LogFile:     "",
	}
}

// FrameInterval converts the configured frame rate into the render tick.
func (c *Config) FrameInterval() time.Duration {
	fps := c.FrameRate
	if fps < 1 {
		fps = 10
	}
	return time.Second / time.Duration(fps)
}

func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func SaveConfig(cfg *Config, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
