// Package config resolves batch settings from defaults, an optional .env
// file and the process environment. Command-line flags are applied on top
// by the cmd package.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables
const (
	EnvRawDir   = "ARGO_RAW_DIR"
	EnvOutDir   = "ARGO_OUT_DIR"
	EnvWorkers  = "ARGO_WORKERS"
	EnvLogLevel = "ARGO_LOG_LEVEL"
	EnvReport   = "ARGO_REPORT"
)

// Report formats
const (
	ReportNone = "none"
	ReportXLSX = "xlsx"
	ReportPDF  = "pdf"
	ReportAll  = "all"
)

type Config struct {
	RawDir   string
	OutDir   string
	Workers  int
	LogLevel string
	Report   string
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		RawDir:   "Data/RAW",
		OutDir:   "Data/PRSSM",
		Workers:  runtime.NumCPU(),
		LogLevel: "info",
		Report:   ReportNone,
	}
}

// Load starts from Default, applies the variables of envFile when it
// exists, then the process environment. Process variables win over the
// file. An empty envFile means ".env".
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	vars, err := godotenv.Read(envFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read %s: %w", envFile, err)
		}
		vars = map[string]string{}
	}
	for _, key := range []string{EnvRawDir, EnvOutDir, EnvWorkers, EnvLogLevel, EnvReport} {
		if v, ok := os.LookupEnv(key); ok {
			vars[key] = v
		}
	}

	cfg := Default()
	if err := cfg.apply(vars); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) apply(vars map[string]string) error {
	if v := strings.TrimSpace(vars[EnvRawDir]); v != "" {
		c.RawDir = v
	}
	if v := strings.TrimSpace(vars[EnvOutDir]); v != "" {
		c.OutDir = v
	}
	if v := strings.TrimSpace(vars[EnvWorkers]); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &ValidationError{Field: EnvWorkers, Message: fmt.Sprintf("%q is not an integer", v)}
		}
		c.Workers = n
	}
	if v := strings.TrimSpace(vars[EnvLogLevel]); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(vars[EnvReport]); v != "" {
		c.Report = strings.ToLower(v)
	}
	return nil
}

// Validate checks the settings.
func (c *Config) Validate() error {
	if c.RawDir == "" {
		return &ValidationError{Field: "RawDir", Message: "input directory must be set"}
	}
	if c.OutDir == "" {
		return &ValidationError{Field: "OutDir", Message: "output directory must be set"}
	}
	if c.Workers < 1 {
		return &ValidationError{Field: "Workers", Message: "must be at least 1"}
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{Field: "LogLevel", Message: fmt.Sprintf("unknown level %q", c.LogLevel)}
	}
	switch c.Report {
	case ReportNone, ReportXLSX, ReportPDF, ReportAll:
	default:
		return &ValidationError{Field: "Report", Message: fmt.Sprintf("unknown report format %q", c.Report)}
	}
	return nil
}

// WantsXLSX and WantsPDF tell which report files to write.
func (c *Config) WantsXLSX() bool { return c.Report == ReportXLSX || c.Report == ReportAll }

func (c *Config) WantsPDF() bool { return c.Report == ReportPDF || c.Report == ReportAll }

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}
