// Package main implements the wirekit topology tool. It loads a topology
// description (JSON or YAML), validates it against the schema, and can print
// the textual dump or build it against the factories linked into the binary.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/c360/wirekit/build"
	"github.com/c360/wirekit/factory"
	"github.com/c360/wirekit/topology"
)

// Build information constants
const (
	Version = "0.1.0"
	appName = "wirekit"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		slog.Error("wirekit failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := parseFlags()
	if err := validateFlags(cfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	if cfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, Version)
		return nil
	}

	logger := setupLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	var top topology.Topology
	if err := loadTopology(cfg.TopologyPath, &top); err != nil {
		return err
	}
	logger.Info("topology loaded", "path", cfg.TopologyPath, "entries", len(top))

	if cfg.Dump {
		fmt.Print(top.String())
	}

	if cfg.Validate {
		logger.Info("topology is valid")
		return nil
	}

	b, err := build.New(top, build.WithLogger(logger))
	if err != nil {
		return err
	}
	defer func() {
		if err := b.Close(); err != nil {
			logger.Warn("teardown", "error", err)
		}
	}()

	for _, ref := range b.All() {
		logger.Info("dependency available", "type", ref.Type, "id", ref.ID)
	}
	logger.Info("build complete",
		"components", b.Size(),
		"factories", len(factory.Default().All()))
	return nil
}

// loadTopology selects the loader by file extension; everything that is not
// YAML goes through the JSON loader.
func loadTopology(path string, top *topology.Topology) error {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return topology.LoadYAMLFile(path, top)
	default:
		return topology.LoadFile(path, top)
	}
}
