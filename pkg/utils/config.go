package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override,
// e.g. ANILOOKUP_ANILIST_ENDPOINT for anilist.endpoint.
const EnvPrefix = "ANILOOKUP"

type AniListConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type ChatConfig struct {
	HistorySize int    `mapstructure:"history_size"`
	Marker      string `mapstructure:"marker"` // starts a bot command, e.g. "!al Naruto"
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Config struct {
	AniList AniListConfig `mapstructure:"anilist"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Chat    ChatConfig    `mapstructure:"chat"`
	Log     LogConfig     `mapstructure:"log"`
}

// SetDefaults registers every key so environment overrides are picked up
// by Unmarshal even without a config file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("anilist.endpoint", "https://graphql.anilist.co/")
	v.SetDefault("anilist.timeout", 10*time.Second)
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("chat.history_size", 50)
	v.SetDefault("chat.marker", "!")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// LoadConfig reads defaults, then the optional YAML file at path (or
// anilookup.yaml in . or $HOME/.anilookup when path is empty), then ANILOOKUP_*
// environment variables.
func LoadConfig(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("anilookup")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.anilookup")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.AniList.Timeout <= 0 {
		return Config{}, fmt.Errorf("anilist.timeout must be positive, got %s", cfg.AniList.Timeout)
	}
	return cfg, nil
}
