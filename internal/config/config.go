package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config is read from the environment (a .env file is loaded by main
// before this runs). Only the API base URL differs between deployments
// in practice; the rest has sensible defaults.
type Config struct {
	APIBaseURL  string        `envconfig:"API_BASE_URL" default:"https://dhanalaxmi-backend.onrender.com"`
	DataDir     string        `envconfig:"DATA_DIR"`
	ShippingFee float64       `envconfig:"SHIPPING_FEE" default:"0"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"5s"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("dhanalaxmi", &c); err != nil {
		return Config{}, errors.Wrap(err, "read environment")
	}

	if c.DataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			base = "."
		}
		c.DataDir = filepath.Join(base, "dhanalaxmi")
	}
	return c, nil
}

// DataFile is the path of the local key-value data file, the client's
// stand-in for browser local storage.
func (c Config) DataFile() string {
	return filepath.Join(c.DataDir, "storefront.json")
}
