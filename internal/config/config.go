package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the process reads from the environment. Defaults
// point at the public provider endpoints the service aggregates.
type Config struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	AppEnv          string        `envconfig:"APP_ENV" default:"development"`
	ProductsURL     string        `envconfig:"PRODUCTS_URL" default:"http://interview.surya-digital.in/get-electronics"`
	BrandsURL       string        `envconfig:"BRANDS_URL" default:"http://interview.surya-digital.in/get-brands"`
	UpstreamTimeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"8s"`
	DBPath          string        `envconfig:"DB_PATH" default:"products.db"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
