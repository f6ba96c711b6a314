package main

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// env holds overrides read from SKETCHPAD_* variables.
type env struct {
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
	AllowHTTP   bool          `envconfig:"ALLOW_HTTP" default:"false"`
	Sanitize    bool          `envconfig:"SANITIZE" default:"true"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`
}

func loadEnv() (env, error) {
	var cfg env
	if err := envconfig.Process("SKETCHPAD", &cfg); err != nil {
		return env{}, err
	}
	return cfg, nil
}
