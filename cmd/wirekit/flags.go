package main

import (
	"flag"
	"fmt"
	"os"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	TopologyPath string
	LogLevel     string
	LogFormat    string
	Dump         bool
	Validate     bool
	ShowVersion  bool
}

func parseFlags() *CLIConfig {
	cfg := &CLIConfig{}

	// Define flags with environment variable fallback
	flag.StringVar(&cfg.TopologyPath, "topology",
		getEnv("WIREKIT_TOPOLOGY", "topology.json"),
		"Path to topology file (env: WIREKIT_TOPOLOGY)")

	flag.StringVar(&cfg.TopologyPath, "t",
		getEnv("WIREKIT_TOPOLOGY", "topology.json"),
		"Path to topology file (env: WIREKIT_TOPOLOGY)")

	flag.StringVar(&cfg.LogLevel, "log-level",
		getEnv("WIREKIT_LOG_LEVEL", "info"),
		"Log level: debug, info, warn, error (env: WIREKIT_LOG_LEVEL)")

	flag.StringVar(&cfg.LogFormat, "log-format",
		getEnv("WIREKIT_LOG_FORMAT", "text"),
		"Log format: json, text (env: WIREKIT_LOG_FORMAT)")

	flag.BoolVar(&cfg.Dump, "dump", false, "Print the topology dump after loading")
	flag.BoolVar(&cfg.Validate, "validate", false, "Validate the topology and exit without building")
	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	flag.BoolVar(&cfg.ShowVersion, "v", false, "Show version information")

	flag.Parse()

	return cfg
}

func validateFlags(cfg *CLIConfig) error {
	if cfg.ShowVersion {
		return nil
	}

	if _, err := os.Stat(cfg.TopologyPath); err != nil {
		return fmt.Errorf("topology file not found: %s", cfg.TopologyPath)
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, cfg.LogLevel) {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}

	validFormats := []string{"json", "text"}
	if !contains(validFormats, cfg.LogFormat) {
		return fmt.Errorf("invalid log format: %s", cfg.LogFormat)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
