package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultBuildDir is where the deployment tool expects the EII build
	// tree relative to the orchestrator's working directory.
	DefaultBuildDir = "../build"

	// DefaultPort is the backend's documented REST API port, used when the
	// environment file does not set DEPLOYMENT_TOOL_BACKEND_PORT.
	DefaultPort = 5100

	// StackNetwork is the reserved Docker network the stack runs on.
	StackNetwork = "eii"

	envFileName = ".env"
)

// Config holds the per-invocation configuration read from the build
// directory's environment file. It is passed down explicitly; nothing is
// exported into the process environment.
type Config struct {
	BuildDir string
	Port     int
	DevMode  bool
	LogLevel string
}

// Load reads <buildDir>/.env and returns the resulting configuration.
// A missing or unreadable environment file is an error; there is no
// default configuration to fall back to.
func Load(buildDir string) (*Config, error) {
	path := filepath.Join(buildDir, envFileName)

	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read environment file %s: %w", path, err)
	}

	cfg := &Config{
		BuildDir: buildDir,
		Port:     DefaultPort,
		LogLevel: "INFO",
	}

	if v := values["DEPLOYMENT_TOOL_BACKEND_PORT"]; v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DEPLOYMENT_TOOL_BACKEND_PORT %q in %s: %w", v, path, err)
		}
		cfg.Port = port
	}

	if v := values["DEV_MODE"]; v != "" {
		cfg.DevMode = strings.EqualFold(v, "true")
	}

	if v := values["LOG_LEVEL"]; v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}
