package server

import (
	"fmt"

	"github.com/joeshaw/envdecode"
)

// Config holds the environment-driven server settings
type Config struct {
	Port int `env:"WARLOG_PORT,default=8000"`
}

// ConfigFromEnv reads Config from the process environment
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Addr renders the listen address for http.ListenAndServe
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
