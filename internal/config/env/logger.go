package env

import (
	"fmt"
	"os"

	"roulette_sim/internal/config"
)

const (
	envName = "ENV"

	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type loggerConfig struct {
	env string
}

func NewLoggerConfig() (config.LoggerConfig, error) {
	env := os.Getenv(envName)
	switch env {
	case "":
		env = EnvLocal
	case EnvLocal, EnvDev, EnvProd:
	default:
		return nil, fmt.Errorf("unknown %s: %s", envName, env)
	}

	return &loggerConfig{env: env}, nil
}

func (cfg *loggerConfig) Env() string {
	return cfg.env
}
