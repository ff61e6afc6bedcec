package config

import (
	"errors"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"DEBUG"`
	Address  string `yaml:"production_address" env:"PRODUCTION_ADDRESS" env-default:":8081"`

	// DBAddress enables the Postgres journal; empty keeps tasks in memory only.
	DBAddress   string `yaml:"db_address" env:"DB_ADDRESS"`
	CatalogPath string `yaml:"catalog_path" env:"CATALOG_PATH"`

	Cutoff        string `yaml:"cutoff" env:"CUTOFF" env-default:"08:00:00"`
	TimeZone      string `yaml:"time_zone" env:"TIME_ZONE" env-default:"Local"`
	StrictFlavors bool   `yaml:"strict_flavors" env:"STRICT_FLAVORS" env-default:"false"`
}

func MustLoad(configPath string) Config {
	cfg, err := Load(configPath)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// Load reads configPath, falling back to the environment alone when the path
// is empty or the file does not exist.
func Load(configPath string) (Config, error) {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, errors.Join(errors.New("cannot read env"), err)
		}
		return cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		var pe *os.PathError
		if errors.As(err, &pe) {
			cfg = Config{}
			if err := cleanenv.ReadEnv(&cfg); err != nil {
				return Config{}, errors.Join(errors.New("cannot read env"), err)
			}
			return cfg, nil
		}
		return Config{}, errors.Join(errors.New("cannot read config "+configPath), err)
	}

	return cfg, nil
}
