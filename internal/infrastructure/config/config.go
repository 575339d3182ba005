package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8002"`
	Env       string `env:"ENV,       default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	JWTSecret string `env:"JWT_SECRET"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Codegen CodegenConfig
}

type MongoConfig struct {
	Host       string `env:"MONGO_HOST,        default=localhost"`
	Port       int    `env:"MONGO_PORT,        default=27017"`
	User       string `env:"MONGO_USER,        default=admin"`
	Password   string `env:"MONGO_PASSWORD,    default=password"`
	Database   string `env:"MONGO_DB_NAME,     default=test_db"`
	AuthSource string `env:"MONGO_AUTH_SOURCE, default=admin"`

	MaxPoolSize uint64 `env:"MONGO_MAX_POOL_SIZE, default=100"`
	MinPoolSize uint64 `env:"MONGO_MIN_POOL_SIZE, default=10"`

	ServerSelectionTimeoutMS int `env:"MONGO_SERVER_SELECTION_TIMEOUT_MS, default=5000"`
	ConnectTimeoutMS         int `env:"MONGO_CONNECT_TIMEOUT_MS,          default=5000"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type CodegenConfig struct {
	URL string `env:"CODEGEN_URL, default=http://localhost:8001"`
}

// URI assembles the MongoDB connection string. Credentials are included only
// when both user and password are set.
func (m MongoConfig) URI() string {
	if m.User != "" && m.Password != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%d/%s?authSource=%s",
			m.User, m.Password, m.Host, m.Port, m.Database, m.AuthSource)
	}
	return fmt.Sprintf("mongodb://%s:%d/%s", m.Host, m.Port, m.Database)
}

func (m MongoConfig) ServerSelectionTimeout() time.Duration {
	return time.Duration(m.ServerSelectionTimeoutMS) * time.Millisecond
}

func (m MongoConfig) ConnectTimeout() time.Duration {
	return time.Duration(m.ConnectTimeoutMS) * time.Millisecond
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
