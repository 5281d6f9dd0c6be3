package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full application configuration, shared by the tracker and
// the query server.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Redis   RedisConfig   `mapstructure:"redis"`
	PUBG    PUBGConfig    `mapstructure:"pubg"`
	Data    DataConfig    `mapstructure:"data"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig configures the read-only query service.
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	MetricsPort  int           `mapstructure:"metrics_port"`
	Environment  string        `mapstructure:"environment"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// RedisConfig configures the cache mirror.
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// PUBGConfig configures the stats provider client and the tracked roster.
type PUBGConfig struct {
	APIKey            string        `mapstructure:"api_key"`
	Shard             string        `mapstructure:"shard"`
	SeasonID          string        `mapstructure:"season_id"`
	PollInterval      time.Duration `mapstructure:"poll_interval"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
	Players           []string      `mapstructure:"players"`
}

// DataConfig configures on-disk persistence: the match ledger lives at
// <dir>/matches.json, enriched combat logs at <dir>/matches/<id>.json.
type DataConfig struct {
	Dir string `mapstructure:"dir"`
}

// LoggingConfig configures logrus.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// The roster the service was built for; override with PUBG_PLAYERS.
var defaultPlayers = []string{
	"E1_Duderino",
	"keken_viikset",
	"HlGHLANDER",
	"bold_moves_bob",
}

// LoadConfig loads configuration from the environment, with a .env file as
// optional source for local runs.
func LoadConfig() (*Config, error) {
	// Best effort; absence of a .env file is the normal production case.
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         3030,
			MetricsPort:  9100,
			Environment:  "development",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Redis: RedisConfig{
			Host:     "localhost",
			Port:     6379,
			Password: "",
			DB:       0,
			PoolSize: 10,
		},
		PUBG: PUBGConfig{
			Shard:             "steam",
			PollInterval:      30 * time.Second,
			RequestsPerMinute: 10,
			Players:           defaultPlayers,
		},
		Data: DataConfig{
			Dir: "data",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}

	viper.AutomaticEnv()

	viper.BindEnv("server.host", "SERVER_HOST")
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.metrics_port", "METRICS_PORT")
	viper.BindEnv("server.environment", "SERVER_ENVIRONMENT")
	viper.BindEnv("server.read_timeout", "SERVER_READ_TIMEOUT")
	viper.BindEnv("server.write_timeout", "SERVER_WRITE_TIMEOUT")

	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("redis.db", "REDIS_DB")
	viper.BindEnv("redis.pool_size", "REDIS_POOL_SIZE")

	viper.BindEnv("pubg.api_key", "PUBG_API_KEY")
	viper.BindEnv("pubg.shard", "PUBG_SHARD")
	viper.BindEnv("pubg.season_id", "PUBG_SEASON_ID")
	viper.BindEnv("pubg.poll_interval", "PUBG_POLL_INTERVAL")
	viper.BindEnv("pubg.requests_per_minute", "PUBG_REQUESTS_PER_MINUTE")

	viper.BindEnv("data.dir", "DATA_DIR")

	viper.BindEnv("logging.level", "LOG_LEVEL")
	viper.BindEnv("logging.format", "LOG_FORMAT")

	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// The roster is a comma-separated env list; viper's slice handling does
	// not split env strings, so do it explicitly.
	if players := viper.GetString("PUBG_PLAYERS"); players != "" {
		config.PUBG.Players = splitList(players)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// Validate rejects configurations the services cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if len(c.PUBG.Players) == 0 {
		return fmt.Errorf("tracked player list is empty")
	}
	if c.PUBG.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive")
	}
	if c.Data.Dir == "" {
		return fmt.Errorf("data directory is required")
	}
	return nil
}

// RequireAPIKey rejects configurations without provider credentials. Only
// the tracker calls this; the query server never talks to the provider.
func (c *Config) RequireAPIKey() error {
	if c.PUBG.APIKey == "" {
		return fmt.Errorf("PUBG_API_KEY is required")
	}
	return nil
}

// Addr returns the server's listen address.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// MetricsAddr returns the tracker's metrics listen address.
func (c *ServerConfig) MetricsAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.MetricsPort)
}

// Addr returns the Redis address.
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
