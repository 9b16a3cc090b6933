package internal

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
	Host     string `env:"HOST,default=0.0.0.0" validate:"required"`
	GrpcPort int    `env:"GRPC_PORT,default=8080" validate:"min=1,max=65535"`
	HttpPort int    `env:"HTTP_PORT,default=8081" validate:"min=1,max=65535,nefield=GrpcPort"`

	BufferSize          int           `env:"BUFFER_SIZE,default=1000" validate:"min=1"`
	SearchRadiusCap     int           `env:"SEARCH_RADIUS_CAP,default=1000" validate:"min=1"`
	SearchRadiusTimeout time.Duration `env:"SEARCH_RADIUS_TIMEOUT,default=5s" validate:"gt=0"`

	AuthSecret        string        `env:"AUTH_SECRET,required=true" validate:"min=32"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h" validate:"gt=0"`
	HostID            string        `env:"HOST_ID,required=true" validate:"max=64"`
	HostPasswordHash  string        `env:"HOST_PASSWORD_HASH,required=true" validate:"startswith=$argon2id$"`

	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,default=5s" validate:"gt=0"`
	PruneInterval   time.Duration `env:"PRUNE_INTERVAL,default=30s" validate:"gt=0"`
	DemoSeed        bool          `env:"DEMO_SEED,default=false"`
	DemoInterval    time.Duration `env:"DEMO_INTERVAL,default=2s" validate:"gt=0"`
}

// LoadConfig reads the environment and checks the values together.
func LoadConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

func (c Config) GrpcAddress() string { return fmt.Sprintf("%s:%d", c.Host, c.GrpcPort) }

func (c Config) HttpAddress() string { return fmt.Sprintf("%s:%d", c.Host, c.HttpPort) }
