package main

import (
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/alnah/go-resume2pdf/internal/config"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string
	Config *config.Config // Loaded once, shared across the run
}

// DefaultEnv returns the production environment. A .env file in the working
// directory, if present, is loaded before any environment lookup; existing
// process variables always win over .env entries.
func DefaultEnv() *Environment {
	_ = godotenv.Load()

	return &Environment{
		Now:    time.Now,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
		Config: config.DefaultConfig(),
	}
}

// applyEnvOverrides layers RESUME2PDF_* environment variables onto the
// config. Precedence overall: flags > environment > config file > defaults.
func applyEnvOverrides(env *Environment, cfg *config.Config) {
	if v := env.Getenv("RESUME2PDF_TEMPLATE"); v != "" {
		cfg.Render.Template = v
	}
	if v := env.Getenv("RESUME2PDF_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if v := env.Getenv("RESUME2PDF_OUTPUT_DIR"); v != "" {
		cfg.Output.DefaultDir = v
	}
	if env.Getenv("RESUME2PDF_ATS") == "true" {
		cfg.Render.ATSMode = true
	}
	if env.Getenv("RESUME2PDF_NO_DETERMINISM") == "true" {
		cfg.Determinism.Enabled = false
	}
}
