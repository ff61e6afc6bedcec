package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"ERROR"`

	APIURL  string        `yaml:"api_url" env:"CONSOLE_API_URL" env-default:"http://localhost:8080"`
	Timeout time.Duration `yaml:"timeout" env:"CONSOLE_TIMEOUT" env-default:"5s"`

	// View is one of admin, operator, floor.
	View    string        `yaml:"view" env:"CONSOLE_VIEW" env-default:"admin"`
	Machine int64         `yaml:"machine" env:"CONSOLE_MACHINE" env-default:"1"`
	Refresh time.Duration `yaml:"refresh" env:"CONSOLE_REFRESH" env-default:"3s"`
}

func MustLoad(configPath string) Config {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read env: %s", err)
		}
		return cfg
	}

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
