package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Load builds the configuration from defaults, an optional .env file, the
// YAML file at path (or DefaultPath when path is empty and the file exists)
// and CLAWDBOT_* environment variables, in increasing precedence.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, cfg)

	if path == "" {
		if _, err := os.Stat(DefaultPath); err == nil {
			path = DefaultPath
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// every key needs a default so AutomaticEnv can see it
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("http.addr", cfg.HTTP.Addr)
	v.SetDefault("http.shutdown_timeout", cfg.HTTP.ShutdownTimeout)
	v.SetDefault("http.mode", cfg.HTTP.Mode)
	v.SetDefault("dashboard.title", cfg.Dashboard.Title)
	v.SetDefault("dashboard.subtitle", cfg.Dashboard.Subtitle)
	v.SetDefault("dashboard.seed", cfg.Dashboard.Seed)
	v.SetDefault("notify.toast_duration", cfg.Notify.ToastDuration)
	v.SetDefault("notify.max_toasts", cfg.Notify.MaxToasts)
	v.SetDefault("log.requests", cfg.Log.Requests)
	v.SetDefault("log.file", cfg.Log.File)
}

func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.HTTP.Addr) == "":
		return fmt.Errorf("%w: http.addr is empty", ErrInvalidConfig)
	case c.HTTP.ShutdownTimeout <= 0:
		return fmt.Errorf("%w: http.shutdown_timeout must be positive", ErrInvalidConfig)
	case c.Notify.ToastDuration <= 0:
		return fmt.Errorf("%w: notify.toast_duration must be positive", ErrInvalidConfig)
	case c.Notify.MaxToasts <= 0:
		return fmt.Errorf("%w: notify.max_toasts must be positive", ErrInvalidConfig)
	}

	switch c.HTTP.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%w: http.mode %q", ErrInvalidConfig, c.HTTP.Mode)
	}

	return nil
}

const header = `# Clawdbot dashboard configuration
# Every key can be overridden with CLAWDBOT_<SECTION>_<KEY>, e.g. CLAWDBOT_HTTP_ADDR.
`

// WriteDefault writes the default configuration as YAML.
func WriteDefault(path string) error {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, append([]byte(header), data...), 0644)
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
