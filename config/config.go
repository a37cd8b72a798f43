package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment string          `mapstructure:"environment"`
	Exchanges   ExchangesConfig `mapstructure:"exchanges"`
	IEX         IEXConfig       `mapstructure:"iex"`
	Fomoddio    FomoddioConfig  `mapstructure:"fomoddio"`
	Log         LogConfig       `mapstructure:"log"`
}

// ExchangesConfig lists the crypto exchanges to load and where to reach them.
type ExchangesConfig struct {
	Enabled []string          `mapstructure:"enabled"`
	Timeout time.Duration     `mapstructure:"timeout"`
	BaseURL map[string]string `mapstructure:"base_url"` // keyed by exchange name; empty uses the public endpoint
}

type FomoddioConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LogConfig defines the logger configuration options.
type LogConfig struct {
	Level      string `mapstructure:"level"`       // "debug", "info", "warn", "error"
	Format     string `mapstructure:"format"`      // "json" or "console"
	OutputFile string `mapstructure:"output_file"` // optional rotated log file
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// Load reads config.yaml next to the binary (or the repo's config dir under
// go run / go test) and overrides it with environment variables.
func Load() *Config {
	var dir string
	ex, _ := os.Executable()
	if strings.Contains(ex, "go-build") {
		pwd, _ := os.Getwd()
		dir = filepath.Join(pwd, "../../config")
	} else {
		dir = filepath.Join(filepath.Dir(ex), "../config")
	}

	cfg, err := LoadFrom(dir)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

// LoadFrom reads config.yaml from the first of dirs that has one.
// Environment variables use underscores for nesting (e.g. IEX_TOKEN, LOG_LEVEL).
func LoadFrom(dirs ...string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config") // config.yaml
	v.SetConfigType("yaml")
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// viper hands env lists over as one string
	if len(cfg.Exchanges.Enabled) == 1 && strings.Contains(cfg.Exchanges.Enabled[0], ",") {
		cfg.Exchanges.Enabled = strings.Split(cfg.Exchanges.Enabled[0], ",")
	}
	for i, name := range cfg.Exchanges.Enabled {
		cfg.Exchanges.Enabled[i] = strings.ToLower(strings.TrimSpace(name))
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "dev")

	v.SetDefault("exchanges.enabled", []string{"binance", "bittrex", "poloniex"})
	v.SetDefault("exchanges.timeout", 10*time.Second)

	v.SetDefault("iex.base_url", "https://cloud.iexapis.com/stable")
	v.SetDefault("iex.token", "")
	v.SetDefault("iex.token_parameter", "IEX_TOKEN")
	v.SetDefault("iex.timeout", 10*time.Second)

	v.SetDefault("fomoddio.base_url", "https://api.fomodd.io")
	v.SetDefault("fomoddio.timeout", 10*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output_file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 7)
	v.SetDefault("log.compress", true)
}
