package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rogerio-castellano/product-catalog/internal/config"
	api "github.com/rogerio-castellano/product-catalog/internal/http"
	"github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	"github.com/rogerio-castellano/product-catalog/internal/obs"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
	"github.com/urfave/cli/v2"
)

// @title Product Catalog API
// @version 1.0
// @description REST API for managing an in-memory product catalog.
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	app := &cli.App{
		Name:  "product-catalog",
		Usage: "serve the product catalog HTTP API",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "port", Usage: "listen port (overrides PORT)"},
			&cli.StringFlag{Name: "api-key", Usage: "shared secret for mutating routes (overrides API_KEY)"},
			&cli.StringFlag{Name: "config", Usage: "path to a config file (overrides CONFIG_FILE)"},
		},
		Action: serve,
	}

	if err := app.Run(os.Args); err != nil {
		obs.Logger.WithError(err).Fatal("server stopped with error")
	}
}

func serve(c *cli.Context) error {
	v := config.New()
	if c.IsSet("port") {
		v.Set("port", c.Int("port"))
	}
	if c.IsSet("api-key") {
		v.Set("api_key", c.String("api-key"))
	}
	if c.IsSet("config") {
		v.Set("config_file", c.String("config"))
	}

	cfg, err := config.LoadFrom(v)
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	if err := obs.InitLogger(cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}
	if cfg.UsesDefaultAPIKey() {
		obs.Logger.Warn("API_KEY not set, using the insecure default key")
	}

	productRepo := repo.NewInMemoryProductRepository()
	metricsRepo := repo.NewInMemoryMetricsRepository()
	metricsRepo.SetRepositories(productRepo)
	handlers.SetProductRepo(productRepo)
	handlers.SetMetricsRepo(metricsRepo)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.NewRouter(cfg),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		obs.Logger.WithField("addr", cfg.Addr()).Info("Server running")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
	}

	obs.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	obs.Logger.Info("server stopped")
	return nil
}
