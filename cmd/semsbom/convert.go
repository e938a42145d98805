package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/c360studio/semsbom/config"
	"github.com/c360studio/semsbom/export"
	"github.com/c360studio/semsbom/graph"
	"github.com/c360studio/semsbom/license"
	"github.com/c360studio/semsbom/spdx"
	"github.com/c360studio/semsbom/tagvalue"
)

func newConvertCmd(cfg *config.Config) *cobra.Command {
	var (
		output     string
		formatFlag string
		force      bool
		natsURL    string
	)

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a tag:value document to another format",
		Long: `Convert parses an SPDX tag:value document, validates it, and writes
it in the requested format. The format comes from --format, the output
file extension, or the configured default, in that order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.Context(), cfg, args[0], output, formatFlag, force, natsURL)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: input with the format's extension)")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Output format: tagvalue, ntriples, turtle")
	cmd.Flags().BoolVar(&force, "force", false, "Convert despite diagnostics and overwrite an existing output file")
	cmd.Flags().StringVar(&natsURL, "nats", "", "Publish the converted document to this NATS URL")

	return cmd
}

func runConvert(ctx context.Context, cfg *config.Config, input, output, formatFlag string, force bool, natsURL string) error {
	logger := slog.Default()
	cat, err := openCatalog(cfg)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}
	doc, msgs := tagvalue.NewParser(cat).Parse(string(data))
	if len(msgs) > 0 {
		for _, m := range msgs {
			logger.Warn("Document diagnostic",
				slog.String("file", input),
				slog.String("message", m))
		}
		if !force {
			return fmt.Errorf("%s: document has %d issues", input, len(msgs))
		}
		logger.Warn("Converting despite diagnostics", slog.Int("issues", len(msgs)))
	}

	format, err := resolveFormat(formatFlag, output, cfg.Output.Format)
	if err != nil {
		return err
	}
	info, _ := export.GetFormatInfo(format)
	if output == "" {
		output = defaultOutputPath(input, info)
	}

	out, err := export.NewExporter(cat, logger).Export(doc, format)
	if err != nil {
		return err
	}
	if err := writeOutput(output, out, force); err != nil {
		return err
	}

	logger.Info("Converted document",
		slog.String("input", input),
		slog.String("output", output),
		slog.String("format", string(format)))

	url := natsURL
	if url == "" {
		url = cfg.NATS.URL
	}
	if url != "" {
		return publishDocument(ctx, cfg, url, cat, doc, logger)
	}
	return nil
}

// parseDocument reads and parses one tag:value document, logging every
// diagnostic before failing.
func parseDocument(cat *license.Catalog, path string, logger *slog.Logger) (*spdx.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	doc, msgs := tagvalue.NewParser(cat).Parse(string(data))
	if len(msgs) > 0 {
		for _, m := range msgs {
			logger.Warn("Document diagnostic",
				slog.String("file", path),
				slog.String("message", m))
		}
		return nil, fmt.Errorf("%s: document has %d issues", path, len(msgs))
	}
	return doc, nil
}

// resolveFormat picks the output format: explicit flag first, then the
// output file extension, then the configured default.
func resolveFormat(flag, output, configured string) (export.Format, error) {
	if flag != "" {
		f := export.Format(strings.ToLower(flag))
		if _, ok := export.GetFormatInfo(f); !ok {
			return "", fmt.Errorf("unknown format %q", flag)
		}
		return f, nil
	}
	if output != "" {
		if f, ok := export.FormatForExtension(filepath.Ext(output)); ok {
			return f, nil
		}
	}
	f := export.Format(configured)
	if _, ok := export.GetFormatInfo(f); !ok {
		return "", fmt.Errorf("unknown configured format %q", configured)
	}
	return f, nil
}

// defaultOutputPath derives the output file from the input name and the
// format's extension, never landing on the input itself.
func defaultOutputPath(input string, info export.FormatInfo) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	out := base + info.Extension
	if out == input {
		out = base + ".out" + info.Extension
	}
	return out
}

func writeOutput(path, content string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func publishDocument(ctx context.Context, cfg *config.Config, url string, cat *license.Catalog, doc *spdx.Document, logger *slog.Logger) error {
	conn, err := nats.Connect(url, nats.Name(appName))
	if err != nil {
		return fmt.Errorf("connect to NATS: %w", err)
	}
	defer conn.Close()

	p := graph.NewPublisher(conn, cfg.NATS.Subject, export.NewExporter(cat, logger), logger)
	return p.PublishDocument(ctx, doc)
}
