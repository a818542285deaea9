package config

import (
	"time"
)

const (
	EnvPrefix   = "CLAWDBOT"
	DefaultPath = "clawdbot.yaml"
)

type Config struct {
	HTTP      HTTPConfig      `yaml:"http" mapstructure:"http"`
	Dashboard DashboardConfig `yaml:"dashboard" mapstructure:"dashboard"`
	Notify    NotifyConfig    `yaml:"notify" mapstructure:"notify"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

type HTTPConfig struct {
	Addr            string        `yaml:"addr" mapstructure:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
	// Mode is the gin mode: debug, release or test.
	Mode string `yaml:"mode" mapstructure:"mode"`
}

type DashboardConfig struct {
	Title    string `yaml:"title" mapstructure:"title"`
	Subtitle string `yaml:"subtitle" mapstructure:"subtitle"`
	// Seed loads the four sample tasks on start.
	Seed bool `yaml:"seed" mapstructure:"seed"`
}

type NotifyConfig struct {
	ToastDuration time.Duration `yaml:"toast_duration" mapstructure:"toast_duration"`
	MaxToasts     int           `yaml:"max_toasts" mapstructure:"max_toasts"`
}

type LogConfig struct {
	Requests bool   `yaml:"requests" mapstructure:"requests"`
	File     string `yaml:"file" mapstructure:"file"`
}

func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Addr:            ":8080",
			ShutdownTimeout: time.Second * 10,
			Mode:            "release",
		},
		Dashboard: DashboardConfig{
			Title:    "Clawdbot Dashboard",
			Subtitle: "Manage and update your bot tasks",
			Seed:     true,
		},
		Notify: NotifyConfig{
			ToastDuration: time.Second * 4,
			MaxToasts:     5,
		},
		Log: LogConfig{
			Requests: true,
		},
	}
}
