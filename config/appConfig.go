package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type FeedConfig struct {
	// URL прямого фида поставщика.
	URL string `yaml:"url"`
	// ProxyURL содержит шаблон с плейсхолдером {key}.
	ProxyURL            string  `yaml:"proxy_url"`
	FetchTimeoutSeconds int     `yaml:"fetch_timeout_seconds"`
	RatePerSecond       float64 `yaml:"rate_per_second"`
	StartupTries        int     `yaml:"startup_tries"`
	StartupDelaySeconds int     `yaml:"startup_delay_seconds"`
}

func (f FeedConfig) FetchTimeout() time.Duration {
	return time.Duration(f.FetchTimeoutSeconds) * time.Second
}

func (f FeedConfig) StartupDelay() time.Duration {
	return time.Duration(f.StartupDelaySeconds) * time.Second
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Feed     FeedConfig     `yaml:"feed"`
	Postgres PostgresConfig `yaml:"postgres"`
}

func LoadConfig(filename string) (*AppConfig, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	config := &AppConfig{}
	if err := decoder.Decode(config); err != nil {
		return nil, err
	}
	config.applyDefaults()
	return config, nil
}

// DefaultAppConfig собирает конфигурацию без yaml-файла: адрес сервера и фид
// берутся из окружения, Postgres — из GetPostgresConfig.
func DefaultAppConfig() *AppConfig {
	config := &AppConfig{
		Server: ServerConfig{Addr: getEnv("SERVER_ADDR", ":8080")},
		Feed: FeedConfig{
			URL:      getEnv("XML_IMPORT_URL", "https://example.com/export/products.xml"),
			ProxyURL: getEnv("XML_PROXY_URL", ""),
		},
		Postgres: *GetPostgresConfig(),
	}
	config.applyDefaults()
	return config
}

func (c *AppConfig) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Feed.FetchTimeoutSeconds <= 0 {
		c.Feed.FetchTimeoutSeconds = 30
	}
	if c.Feed.RatePerSecond <= 0 {
		c.Feed.RatePerSecond = 1
	}
	if c.Feed.StartupTries <= 0 {
		c.Feed.StartupTries = 10
	}
	if c.Feed.StartupDelaySeconds <= 0 {
		c.Feed.StartupDelaySeconds = 2
	}
	if c.Postgres.Host == "" {
		c.Postgres = *GetPostgresConfig()
	}
}
