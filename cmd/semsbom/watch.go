package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/c360studio/semsbom/config"
	"github.com/c360studio/semsbom/export"
	"github.com/c360studio/semsbom/graph"
	"github.com/c360studio/semsbom/license"
)

func newWatchCmd(cfg *config.Config) *cobra.Command {
	var (
		formatFlag  string
		metricsAddr string
		natsURL     string
	)

	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Re-convert documents when they change",
		Long: `Watch monitors a directory tree for changes to .spdx files and
re-converts each changed document, debouncing rapid change bursts.
Conversion outcomes are exposed as Prometheus metrics when a metrics
address is configured.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.Context(), cfg, args[0], formatFlag, metricsAddr, natsURL)
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Output format: tagvalue, ntriples, turtle")
	cmd.Flags().StringVar(&metricsAddr, "metrics", "", "Serve Prometheus metrics on this address (e.g. :9090)")
	cmd.Flags().StringVar(&natsURL, "nats", "", "Publish converted documents to this NATS URL")

	return cmd
}

// watchMetrics counts watch-mode conversion outcomes.
type watchMetrics struct {
	conversions prometheus.Counter
	failures    prometheus.Counter
}

func newWatchMetrics(reg *prometheus.Registry) *watchMetrics {
	return &watchMetrics{
		conversions: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "semsbom_conversions_total",
			Help: "Completed document conversions.",
		}),
		failures: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "semsbom_conversion_failures_total",
			Help: "Document conversions that failed.",
		}),
	}
}

func runWatch(ctx context.Context, cfg *config.Config, dir, formatFlag, metricsAddr, natsURL string) error {
	logger := slog.Default()
	cat, err := openCatalog(cfg)
	if err != nil {
		return err
	}

	format, err := resolveFormat(formatFlag, "", cfg.Output.Format)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchesRecursive(watcher, absDir, logger); err != nil {
		return fmt.Errorf("watch %s: %w", absDir, err)
	}

	var metrics *watchMetrics
	if metricsAddr == "" {
		metricsAddr = cfg.Watch.MetricsAddr
	}
	if metricsAddr != "" {
		reg := prometheus.NewRegistry()
		metrics = newWatchMetrics(reg)
		srv := &http.Server{
			Addr:    metricsAddr,
			Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Metrics server failed", slog.String("error", err.Error()))
			}
		}()
		defer srv.Close()
		logger.Info("Serving metrics", slog.String("addr", metricsAddr))
	}

	var publisher *graph.Publisher
	url := natsURL
	if url == "" {
		url = cfg.NATS.URL
	}
	if url != "" {
		conn, err := nats.Connect(url, nats.Name(appName))
		if err != nil {
			return fmt.Errorf("connect to NATS: %w", err)
		}
		defer conn.Close()
		publisher = graph.NewPublisher(conn, cfg.NATS.Subject, export.NewExporter(cat, logger), logger)
	}

	logger.Info("Watching for document changes",
		slog.String("dir", absDir),
		slog.String("format", string(format)),
		slog.Duration("debounce", cfg.Watch.Debounce))

	var pendingMu sync.Mutex
	pending := make(map[string]struct{})

	ticker := time.NewTicker(cfg.Watch.Debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				if st, err := os.Stat(event.Name); err == nil && st.IsDir() {
					if !strings.HasPrefix(filepath.Base(event.Name), ".") {
						if err := addWatchesRecursive(watcher, event.Name, logger); err != nil {
							logger.Warn("Failed to watch new directory",
								slog.String("path", event.Name),
								slog.String("error", err.Error()))
						}
					}
					continue
				}
			}
			if !watchable(event.Name) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				pendingMu.Lock()
				pending[event.Name] = struct{}{}
				pendingMu.Unlock()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("Watcher error", slog.String("error", err.Error()))

		case <-ticker.C:
			pendingMu.Lock()
			if len(pending) == 0 {
				pendingMu.Unlock()
				continue
			}
			toProcess := pending
			pending = make(map[string]struct{})
			pendingMu.Unlock()

			for path := range toProcess {
				if err := reconvert(ctx, cat, path, format, publisher, logger); err != nil {
					if metrics != nil {
						metrics.failures.Inc()
					}
					logger.Error("Conversion failed",
						slog.String("file", path),
						slog.String("error", err.Error()))
					continue
				}
				if metrics != nil {
					metrics.conversions.Inc()
				}
			}
		}
	}
}

// watchable reports whether a path is an input document rather than one
// of our own outputs.
func watchable(path string) bool {
	return strings.HasSuffix(path, ".spdx") && !strings.HasSuffix(path, ".out.spdx")
}

func addWatchesRecursive(watcher *fsnotify.Watcher, root string, logger *slog.Logger) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(filepath.Base(path), ".") {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			logger.Warn("Failed to watch directory",
				slog.String("path", path),
				slog.String("error", err.Error()))
		} else {
			logger.Debug("Watching directory", slog.String("path", path))
		}
		return nil
	})
}

// reconvert runs one conversion for a changed document, overwriting any
// previous output.
func reconvert(ctx context.Context, cat *license.Catalog, path string, format export.Format, publisher *graph.Publisher, logger *slog.Logger) error {
	doc, err := parseDocument(cat, path, logger)
	if err != nil {
		return err
	}

	info, _ := export.GetFormatInfo(format)
	out, err := export.NewExporter(cat, logger).Export(doc, format)
	if err != nil {
		return err
	}
	output := defaultOutputPath(path, info)
	if err := os.WriteFile(output, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	logger.Info("Re-converted document",
		slog.String("input", path),
		slog.String("output", output))

	return publisher.PublishDocument(ctx, doc)
}
