package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"contract-mapper/internal/httpapi"
	"contract-mapper/internal/metrics"
)

const shutdownTimeout = 10 * time.Second

type serveOptions struct {
	Addr           string
	RequestTimeout time.Duration
}

func newServeCommand() *cobra.Command {
	opts := serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the mapping API over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Addr, "http-addr", ":8080", "Listen address")
	cmd.Flags().DurationVar(&opts.RequestTimeout, "request-timeout", httpapi.DefaultRequestTimeout, "Per-request timeout")
	_ = viper.BindPFlag("http_addr", cmd.Flags().Lookup("http-addr"))
	return cmd
}

func runServe(ctx context.Context, cmd *cobra.Command, opts serveOptions) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	b, err := newAppService(ctx, metrics.New(registry))
	if err != nil {
		return err
	}
	defer b.Close()

	srv := &http.Server{
		Addr: resolveString(cmd, opts.Addr, "http_addr", "http-addr"),
		Handler: httpapi.NewRouter(b.service, httpapi.RouterConfig{
			Logger:   log.Logger,
			Gatherer: registry,
			Timeout:  opts.RequestTimeout,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
