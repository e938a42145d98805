// Package main provides the semsbom binary entry point.
// Semsbom parses, validates, generates, and converts SPDX 2.1 software
// bills of materials.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/semsbom/config"
	"github.com/c360studio/semsbom/license"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "semsbom"
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

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)
	cfg := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "semsbom",
		Short: "SPDX software bill of materials toolkit",
		Long: `Semsbom parses, validates, generates, and converts SPDX 2.1
documents.

It provides:
- tag:value parsing with recovering diagnostics
- document validation against the SPDX 2.1 rules
- deterministic tag:value and RDF (N-Triples, Turtle) output
- SBOM generation from a source tree
- optional publishing of converted documents to NATS`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(logLevel)
			loaded, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			*cfg = *loaded
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newConvertCmd(cfg),
		newValidateCmd(cfg),
		newGenerateCmd(cfg),
		newWatchCmd(cfg),
		newLicenseCmd(cfg),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
			},
		},
	)

	return cmd
}

func setupLogging(logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

func loadConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		return config.NewLoader(slog.Default()).Load()
	}

	cfg := config.DefaultConfig()
	fileCfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg.Merge(fileCfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// openCatalog resolves the license catalog for a run: the configured
// license list file, or the embedded snapshot.
func openCatalog(cfg *config.Config) (*license.Catalog, error) {
	if cfg.Catalog.Path == "" {
		return license.DefaultCatalog(), nil
	}
	cat, err := license.LoadFile(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("load license catalog: %w", err)
	}
	return cat, nil
}
