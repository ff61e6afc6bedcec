package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPConfig struct {
	Address string        `yaml:"address" env:"API_ADDRESS" env-default:":8080"`
	Timeout time.Duration `yaml:"timeout" env:"API_TIMEOUT" env-default:"5s"`
}

type AssistantConfig struct {
	// BaseURL may list several comma separated endpoints, tried in order.
	BaseURL     string        `yaml:"base_url" env:"ASSISTANT_BASE_URL"`
	APIKey      string        `yaml:"api_key" env:"ASSISTANT_API_KEY"`
	Model       string        `yaml:"model" env:"ASSISTANT_MODEL" env-default:"gpt-4o-mini"`
	Timeout     time.Duration `yaml:"timeout" env:"ASSISTANT_TIMEOUT" env-default:"30s"`
	MaxFailures int           `yaml:"max_failures" env:"ASSISTANT_MAX_FAILURES" env-default:"3"`
	Cooldown    time.Duration `yaml:"cooldown" env:"ASSISTANT_COOLDOWN" env-default:"1m"`
}

type Config struct {
	LogLevel          string          `yaml:"log_level" env:"LOG_LEVEL" env-default:"DEBUG"`
	HTTP              HTTPConfig      `yaml:"api_server"`
	ProductionAddress string          `yaml:"production_address" env:"PRODUCTION_ADDRESS" env-default:"production:8081"`
	Assistant         AssistantConfig `yaml:"assistant"`
}

func MustLoad(configPath string) Config {
	var cfg Config

	// empty path: env only
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read env: %s", err)
		}
		return cfg
	}

	// try the file, fall back to env when it is missing
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		var pe *os.PathError
		if errors.As(err, &pe) {
			if err := cleanenv.ReadEnv(&cfg); err != nil {
				log.Fatalf("cannot read env: %s", err)
			}
			return cfg
		}
		log.Fatalf("cannot read config %q: %s", configPath, err)
	}

	return cfg
}
