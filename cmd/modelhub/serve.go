package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"modelhub/internal/announce"
	"modelhub/internal/httpapi"
	"modelhub/internal/logfwd"
	"modelhub/internal/manager"
	"modelhub/internal/models"
	"modelhub/internal/registry"
	"modelhub/pkg/types"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cmd, opts)
		},
	}
}

func runServe(ctx context.Context, cmd *cobra.Command, opts *rootOptions) error {
	cfg, used, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	logger := newLogger(cfg, cmd.ErrOrStderr())
	if used != "" {
		logger.Info().Str("path", used).Msg("loaded config file")
	}
	configureGenAI(cfg, logger)

	mgr := manager.New(models.Registered(), cfg.AvailableModels, logger)

	httpapi.SetLogger(logger)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetProcessTimeout(cfg.ProcessTimeout())
	if len(cfg.CORSOrigins) > 0 {
		httpapi.SetCORSOptions(true, cfg.CORSOrigins, []string{"GET", "POST", "OPTIONS"}, []string{"Content-Type", "X-Log-Level"})
	}
	var fwd *logfwd.Forwarder
	if cfg.LoggerURL != "" {
		fwd = logfwd.New(cfg.LoggerURL, nil, logger)
		httpapi.SetProcessMiddleware(fwd.Middleware)
	}
	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()
	httpapi.SetBaseContext(baseCtx)

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}
	srv := &http.Server{Handler: httpapi.NewMux(mgr), ReadHeaderTimeout: 10 * time.Second}
	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.Serve(ln) }()
	logger.Info().Str("addr", ln.Addr().String()).Strs("models", mgr.AvailableNames()).Msg("modelhub listening")

	ann := announce.New(announce.Options{
		RegistryURL: cfg.RegistryURL,
		ServiceURL:  cfg.ServiceURL,
		Models:      modelInfos(mgr.Available()),
		RetryDelay:  cfg.RetryDelay(),
		Logger:      &logger,
	})
	_ = ann.Register(ctx)

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		ann.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}

	logger.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()
	ann.Close()
	_ = ann.Unregister(sctx)
	if err := srv.Shutdown(sctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
	cancelBase()
	if fwd != nil {
		fwd.Wait()
	}
	return nil
}

func modelInfos(ds []registry.Descriptor) []types.ModelInfo {
	out := make([]types.ModelInfo, len(ds))
	for i, d := range ds {
		out[i] = types.ModelInfo{Name: d.Name, Type: string(d.Type)}
	}
	return out
}
