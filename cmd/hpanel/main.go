package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hpanel/internal/config"
	"hpanel/internal/metrics"
	"hpanel/internal/panel"
	"hpanel/internal/source"
	"hpanel/internal/trace"
	"hpanel/internal/ui"
)

// options holds the parsed command line.
type options struct {
	dir         string
	configPath  string
	padding     float64
	prevOverlap float64
	logFile     string
	metricsAddr string
	writeConfig bool

	set map[string]bool // flags given explicitly
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.dir, "dir", "", "directory of documents to show, one column per file (default: config dir or .)")
	flag.StringVar(&opts.configPath, "config", config.DefaultPath(), "path to the YAML config file")
	flag.Float64Var(&opts.padding, "padding", config.DefaultPadding, "gap between columns, in cells")
	flag.Float64Var(&opts.prevOverlap, "prev-overlap", config.DefaultPrevOverlap, "cells of the previous column left in view")
	flag.StringVar(&opts.logFile, "log-file", "", "write debug logs to this file (HPANEL_DEBUG=1 uses hpanel-debug.log)")
	flag.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")
	flag.BoolVar(&opts.writeConfig, "write-config", false, "save the effective config to --config and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: hpanel [flags]\n\n")
		fmt.Fprintf(os.Stderr, "hpanel pages through a directory of documents laid out as\n")
		fmt.Fprintf(os.Stderr, "side-by-side columns.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	opts.set = make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	return opts
}

// loadConfig reads the config file and applies explicit flags over it.
func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.set["padding"] {
		if opts.padding < 0 {
			return nil, errors.New("--padding must not be negative")
		}
		cfg.Padding = &opts.padding
	}
	if opts.set["prev-overlap"] {
		cfg.PrevOverlap = &opts.prevOverlap
	}
	if opts.dir != "" {
		cfg.Dir = opts.dir
	}
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	return cfg, nil
}

func setupLogging(opts options) (io.Closer, error) {
	path := opts.logFile
	if path == "" && os.Getenv("HPANEL_DEBUG") != "" {
		path = "hpanel-debug.log"
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	return tea.LogToFile(path, "hpanel")
}

func serveMetrics(addr string, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("main.serveMetrics: %v", err)
		}
	}()
	return srv
}

func run(opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	if opts.writeConfig {
		if err := config.Save(opts.configPath, cfg); err != nil {
			return err
		}
		fmt.Printf("hpanel: wrote %s\n", opts.configPath)
		return nil
	}

	closer, err := setupLogging(opts)
	if err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	if closer != nil {
		defer closer.Close()
	}

	docs, err := source.Load(cfg.Dir)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp, err := trace.NewProvider(ctx)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		shutdownCtx, done := context.WithTimeout(context.Background(), 2*time.Second)
		defer done()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Printf("main.run: trace shutdown: %v", err)
		}
	}()

	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	if opts.metricsAddr != "" {
		srv := serveMetrics(opts.metricsAddr, reg)
		defer srv.Close()
	}

	strip, err := ui.NewStripView(docs, cfg, panel.WithTracer(tp.Tracer()), panel.WithMetrics(m))
	if err != nil {
		return err
	}
	p := tea.NewProgram(ui.NewAppModel(strip).AsTeaModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())

	changes, err := source.Watch(ctx, cfg.Dir)
	if err != nil {
		log.Printf("main.run: live reload disabled: %v", err)
	} else {
		go func() {
			for ch := range changes {
				p.Send(ch)
			}
		}()
	}

	_, err = p.Run()
	return err
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "hpanel: %v\n", err)
		os.Exit(1)
	}
}
