package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/feiralivre/feirad/internal/assets"
	"github.com/feiralivre/feirad/internal/config"
	"github.com/feiralivre/feirad/internal/registry"
	"github.com/feiralivre/feirad/internal/store"
	"github.com/feiralivre/feirad/internal/web"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Config string
	Listen string
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the registry HTTP server",
		Long: `Start the marketplace registry back-office server.

Opens the SQLite database (creating and seeding it if it doesn't exist),
ensures the photo directories exist and serves the back-office UI until
interrupted.

Example:
  feirad serve
  feirad serve --config feirad.yaml --listen :9000 --verbose`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Config, "config", "", "path to YAML config file")
	cmd.Flags().StringVar(&opts.Listen, "listen", "", "listen address (overrides config)")

	return cmd
}

func runServe(opts *ServeOptions) error {
	// Configure logging based on verbose flag
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(log)

	cfg, err := config.Load(opts.Config)
	if err != nil {
		return err
	}
	if opts.Listen != "" {
		cfg.Listen = opts.Listen
	}

	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	vendorPhotos := assets.NewStore(cfg.VendorPhotoDir, cfg.PlaceholderImage)
	productPhotos := assets.NewStore(cfg.ProductPhotoDir, cfg.PlaceholderImage)
	if err := vendorPhotos.EnsureDir(); err != nil {
		return err
	}
	if err := productPhotos.EnsureDir(); err != nil {
		return err
	}

	reg := registry.New(db, vendorPhotos, productPhotos)
	srv := &http.Server{
		Addr:    cfg.Listen,
		Handler: web.NewServer(reg, log),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", cfg.Listen, "db", cfg.DatabasePath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
