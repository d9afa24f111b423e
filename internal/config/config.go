package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Mimir     MimirConfig
	Overview  OverviewConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	URL            string
	MaxConnections int
	MaxIdleConns   int
}

type AuthConfig struct {
	JWTSecret   string
	IdentityURL string
	Realm       string
}

type MimirConfig struct {
	URL           string
	TenantHeader  string
	BatchSize     int
	FlushInterval time.Duration
	AuthToken     string
}

// OverviewConfig bounds the settings-overview fan-out.
type OverviewConfig struct {
	FetchTimeout time.Duration
	FanoutLimit  int
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.SetEnvPrefix("FIELDOPS")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("database.maxconnections", 25)
	viper.SetDefault("database.maxidleconns", 5)
	viper.SetDefault("mimir.tenantheader", "X-Scope-OrgID")
	viper.SetDefault("mimir.batchsize", 1000)
	viper.SetDefault("mimir.flushinterval", "10s")
	viper.SetDefault("overview.fetchtimeout", "5s")
	viper.SetDefault("overview.fanoutlimit", 16)
	viper.SetDefault("ratelimit.requestspersecond", 10.0)
	viper.SetDefault("ratelimit.burst", 20)

	var cfg Config
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Override with environment variables
	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.Database.URL = url
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	if url := os.Getenv("IDENTITY_URL"); url != "" {
		cfg.Auth.IdentityURL = url
	}
	if url := os.Getenv("MIMIR_URL"); url != "" {
		cfg.Mimir.URL = url
	}
	if token := os.Getenv("MIMIR_AUTH_TOKEN"); token != "" {
		cfg.Mimir.AuthToken = token
	}

	return &cfg, nil
}
