package main

import (
	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// defaults hold environment-driven settings; flags override them per run.
type defaults struct {
	Seed   int64  `env:"FAKEIT_SEED" envDefault:"0"`
	Locale string `env:"FAKEIT_LOCALE" envDefault:"en"`
	Count  int    `env:"FAKEIT_COUNT" envDefault:"1"`
	Length int    `env:"FAKEIT_PASSWORD_LENGTH" envDefault:"16"`
}

func loadDefaults() (defaults, error) {
	// .env is optional; variables already set in the environment win.
	_ = godotenv.Load()

	var d defaults
	if err := env.Parse(&d); err != nil {
		return d, err
	}
	return d, nil
}
