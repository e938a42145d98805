package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/semsbom/config"
	"github.com/c360studio/semsbom/fetch"
)

func newLicenseCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "license",
		Short: "License catalog operations",
	}
	cmd.AddCommand(newLicenseListCmd(cfg), newLicenseShowCmd(cfg), newLicenseFetchCmd(cfg))
	return cmd
}

func newLicenseListCmd(cfg *config.Config) *cobra.Command {
	var exceptions bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the identifiers in the license catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := openCatalog(cfg)
			if err != nil {
				return err
			}
			if exceptions {
				for _, id := range cat.ExceptionIDs() {
					name, _ := cat.ExceptionName(id)
					fmt.Printf("%s\t%s\n", id, name)
				}
				return nil
			}
			for _, id := range cat.IDs() {
				name, _ := cat.Name(id)
				fmt.Printf("%s\t%s\n", id, name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&exceptions, "exceptions", false, "List exception identifiers instead")
	return cmd
}

func newLicenseShowCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one catalog entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := openCatalog(cfg)
			if err != nil {
				return err
			}
			id := args[0]
			name, ok := cat.Name(strings.TrimRight(id, "+"))
			if !ok {
				return fmt.Errorf("%q is not in the license catalog (list version %s)", id, cat.Version())
			}
			fmt.Printf("%s: %s\n", id, name)
			return nil
		},
	}
}

func newLicenseFetchCmd(cfg *config.Config) *cobra.Command {
	var (
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "fetch <url>",
		Short: "Fetch a license text for use as an extracted license",
		Long: `Fetch downloads a license text over HTTPS, reduces HTML pages to
readable markdown, and prints a tag:value extracted licensing info
block ready to paste into a document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLicenseFetch(cmd.Context(), cfg, args[0], output, force)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the block to a file instead of stdout")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing output file")
	return cmd
}

func runLicenseFetch(ctx context.Context, cfg *config.Config, url, output string, force bool) error {
	logger := slog.Default()

	fetcher := fetch.NewFetcher(cfg.Fetch.Timeout, cfg.Fetch.UserAgent, 0)
	res, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return err
	}

	text := string(res.Body)
	title := ""
	if strings.Contains(res.ContentType, "html") {
		extracted, err := fetch.NewExtractor().Extract(url, res.Body)
		if err != nil {
			return err
		}
		text = extracted.Text
		title = extracted.Title
	}

	block := extractedLicenseBlock(fetch.LicenseRefID(url), title, text, url)
	if output == "" {
		fmt.Print(block)
		return nil
	}
	if err := writeOutput(output, block, force); err != nil {
		return err
	}
	logger.Info("Saved extracted license",
		slog.String("url", url),
		slog.String("output", output))
	return nil
}

// extractedLicenseBlock renders the fetched text as tag:value lines.
// ExtractedText is free form text, so it always carries the sentinel.
func extractedLicenseBlock(id, name, text, url string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "LicenseID: %s\n", id)
	if name != "" {
		fmt.Fprintf(&b, "LicenseName: %s\n", name)
	}
	fmt.Fprintf(&b, "ExtractedText: <text>%s</text>\n", text)
	fmt.Fprintf(&b, "LicenseCrossReference: %s\n", url)
	return b.String()
}
