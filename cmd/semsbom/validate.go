package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/c360studio/semsbom/config"
	"github.com/c360studio/semsbom/tagvalue"
)

func newValidateCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Validate tag:value documents",
		Long: `Validate parses each document and reports parse diagnostics and
validation findings. The exit status is non-zero when any document has
issues.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cfg, args)
		},
	}
}

func runValidate(cfg *config.Config, paths []string) error {
	cat, err := openCatalog(cfg)
	if err != nil {
		return err
	}

	parser := tagvalue.NewParser(cat)
	var bad int
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		_, msgs := parser.Parse(string(data))
		if len(msgs) == 0 {
			fmt.Printf("%s: OK\n", path)
			continue
		}
		bad++
		for _, m := range msgs {
			fmt.Printf("%s: %s\n", path, m)
		}
	}
	if bad > 0 {
		return fmt.Errorf("%d of %d documents have issues", bad, len(paths))
	}
	return nil
}
