package types

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvConfig holds settings read from the environment.
type EnvConfig struct {
	Locale         string `env:"PROJECTION_DASHBOARD_LOCALE"          envDefault:"en-US"`
	CurrencySymbol string `env:"PROJECTION_DASHBOARD_CURRENCY_SYMBOL" envDefault:"€"`
	AWSProfile     string `env:"PROJECTION_DASHBOARD_AWS_PROFILE"`
	HTTPAddr       string `env:"PROJECTION_DASHBOARD_HTTP_ADDR"       envDefault:":8080"`
}

// LoadEnvConfig reads the optional dotenv files and then the process
// environment. Variables already set in the environment win over dotenv values.
func LoadEnvConfig(dotenvFiles ...string) (EnvConfig, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		// Missing dotenv files are fine.
		_ = godotenv.Load(f)
	}

	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
