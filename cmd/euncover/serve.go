package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/euncover/euncover/internal/browser"
	"github.com/euncover/euncover/internal/server"
	"github.com/spf13/cobra"
)

var serveListen string
var serveOpen bool

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "Address to listen on (default from config, 127.0.0.1:8501)")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "Open the dashboard in a browser once listening")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard web server",
	Long: `Start the dashboard web server.

Routes:
  GET /                 dashboard page (?mep=NAME selects an MEP)
  GET /network?mep=     standalone network graph page
  GET /api/mep?mep=     page model as JSON
  GET /assets/{name}    logo and pipeline images
  GET /healthz          liveness probe
  GET /metrics          Prometheus metrics

Examples:
  euncover serve
  euncover serve --listen :8080
  euncover serve --open`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	if serveListen != "" {
		cfg.Listen = serveListen
	}
	log := newLogger(cfg)

	catalog, closeCatalog := mustOpenCatalog(cfg)
	defer closeCatalog()

	metrics := server.NewMetrics()
	ctrl := newController(cfg, catalog, log, metrics.PanelError)

	srv := server.New(ctrl, metrics, server.Config{
		Addr:           cfg.Listen,
		Assets:         cfg.Assets(),
		Logo:           filepath.Base(cfg.LogoFile),
		Pipeline:       filepath.Base(cfg.PipelineFile),
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
		Logger:         log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting dashboard", "backend", cfg.Backend, "data_dir", cfg.DataDir)
	if serveOpen {
		url := browser.DashboardURL(cfg.Listen)
		srv.OnListen(func() {
			if err := browser.NewOpener(cfg.Browser).OpenURL(url); err != nil {
				log.Warn("could not open browser", "url", url, "error", err)
			}
		})
	}
	return srv.ListenAndServe(ctx)
}
