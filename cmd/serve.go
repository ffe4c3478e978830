package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rferrer/mundi/pkg/api"
	"github.com/rferrer/mundi/pkg/config"
	"github.com/rferrer/mundi/pkg/countries"
	"github.com/rferrer/mundi/pkg/log"
	"github.com/rferrer/mundi/pkg/storage"
	"github.com/urfave/cli/v3"
)

// ServeCommand creates the serve command
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the web server with the browse UI, JSON API and feedback endpoint",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Host to bind to (overrides config)",
			},
			&cli.StringFlag{
				Name:  "port",
				Usage: "Port to listen on (overrides config)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return serve(ctx, c, c.String("host"), c.String("port"))
		},
	}
}

func serve(ctx context.Context, c *cli.Command, host, port string) error {
	l := log.ForComponent("serve")
	configPath := c.String("config")

	cfg, client, err := loadSetup(c)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if host == "" {
		host = cfg.Server.Host
	}
	if port == "" {
		port = cfg.Server.Port
	}

	// The catalog is loaded once per server lifetime and only backs
	// autocomplete; lookups always go to the remote source.
	l.Infof("loading country catalog from %s", cfg.Source.BaseURL)
	catalogList, err := client.AllCountries(ctx)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	catalog := countries.NewCatalog(catalogList)
	l.Infof("catalog loaded: %d countries", catalog.Len())

	store, err := storage.NewStore(cfg.StorageDir)
	if err != nil {
		return fmt.Errorf("opening feedback store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			fmt.Printf("Warning: failed to close feedback store: %v\n", err)
		}
	}()

	apiServer, err := api.NewServer(client, catalog, store, cfg.PageSize)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	mux := http.NewServeMux()
	apiServer.RegisterRoutes(mux)
	handler := api.CorsMiddleware(mux)

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", host, port),
		Handler: handler,
	}

	// Watch the config file so page-size changes apply without a restart.
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		l.Warnf("failed to create config file watcher: %v", err)
	} else {
		defer func() {
			if err := watcher.Close(); err != nil {
				l.Warnf("failed to close config file watcher: %v", err)
			}
		}()
		if err := watcher.Add(configPath); err != nil {
			l.Warnf("failed to watch config file %s: %v", configPath, err)
		} else {
			l.Infof("watching config file for changes: %s", configPath)
		}
	}

	go func() {
		l.Infof("starting web server on http://%s:%s", host, port)
		l.Infof("  GET  /                - browse page")
		l.Infof("  GET  /country/{code}  - country detail")
		l.Infof("  GET  /api/search      - search API")
		l.Infof("  GET  /api/suggest     - autocomplete API")
		l.Infof("  GET  /ws/suggest      - autocomplete websocket")
		l.Infof("  POST /api/feedback    - submit feedback")
		l.Infof("  GET  /api/feedback    - list feedback")
		l.Infof("  GET  /health          - health check")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Errorf("server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// nil channels block forever, so the select just skips watcher cases
	// when no watcher could be created.
	var watchEvents chan fsnotify.Event
	var watchErrors chan error
	if watcher != nil {
		watchEvents = watcher.Events
		watchErrors = watcher.Errors
	}

	for {
		select {
		case <-ctx.Done():
			return shutdown(server)
		case sig := <-sigCh:
			l.Infof("received signal %v, shutting down", sig)
			return shutdown(server)
		case event, ok := <-watchEvents:
			if !ok {
				watchEvents = nil
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			newCfg, err := config.LoadConfig(configPath)
			if err != nil {
				l.Warnf("config reload failed: %v", err)
				continue
			}
			apiServer.SetPageSize(newCfg.PageSize)
			l.Infof("config reloaded: page size %d", newCfg.PageSize)
		case err, ok := <-watchErrors:
			if !ok {
				watchErrors = nil
				continue
			}
			if err != nil {
				l.Warnf("config watcher error: %v", err)
			}
		}
	}
}

func shutdown(server *http.Server) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
