package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/semsbom/config"
	"github.com/c360studio/semsbom/export"
	"github.com/c360studio/semsbom/scan"
)

func newGenerateCmd(cfg *config.Config) *cobra.Command {
	var (
		output     string
		formatFlag string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "generate <dir>",
		Short: "Generate an SPDX document for a source tree",
		Long: `Generate walks a directory, checksums every file, scans for
SPDX-License-Identifier tags, and writes a validated document
describing the tree as a single package.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), cfg, args[0], output, formatFlag, force)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: <dir name>.spdx)")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Output format: tagvalue, ntriples, turtle")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing output file")

	return cmd
}

func runGenerate(ctx context.Context, cfg *config.Config, dir, output, formatFlag string, force bool) error {
	logger := slog.Default()
	cat, err := openCatalog(cfg)
	if err != nil {
		return err
	}

	format, err := resolveFormat(formatFlag, output, cfg.Output.Format)
	if err != nil {
		return err
	}
	info, _ := export.GetFormatInfo(format)

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve directory: %w", err)
	}
	if output == "" {
		output = filepath.Base(absDir) + info.Extension
	}

	opts := scan.Options{
		SkipPatterns: cfg.Scan.SkipPatterns,
		VersionFile:  cfg.Scan.VersionFile,
		CreatorTool:  fmt.Sprintf("%s-%s", appName, Version),
	}
	// Keep the output artifact out of its own document when it lands
	// inside the scanned tree.
	if rel, ok := pathWithin(absDir, output); ok {
		opts.OutputName = rel
	}

	doc, err := scan.NewScanner(cat, opts, logger).Scan(ctx, absDir)
	if err != nil {
		return err
	}

	out, err := export.NewExporter(cat, logger).Export(doc, format)
	if err != nil {
		return err
	}
	if err := writeOutput(output, out, force); err != nil {
		return err
	}

	logger.Info("Generated document",
		slog.String("directory", absDir),
		slog.String("output", output),
		slog.Int("files", len(doc.Package.Files)))
	return nil
}

// pathWithin reports the slash relative path of target under root.
func pathWithin(root, target string) (string, bool) {
	abs, err := filepath.Abs(target)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
