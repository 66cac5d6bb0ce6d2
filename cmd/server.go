package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"proxyctl/api"
	"proxyctl/api/router/handlers"
	"proxyctl/config"
	"proxyctl/logger"
	"proxyctl/ui"

	"github.com/spf13/cobra"
)

func newServeCmd(sess *session) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the proxy operations over a local HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := listen
			if !cmd.Flags().Changed("listen") || addr == "" {
				addr = config.AppConfig.Server.Listen
			}

			var history handlers.HistoryLister
			if sess.db != nil {
				history = sess.db
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			p := ui.NewPrinter(cmd.OutOrStdout())
			p.Info("Serving proxy API on http://%s", addr)
			if err := serve(ctx, addr, api.NewRouter(sess.configurator, history)); err != nil {
				return report(p, err)
			}
			p.Info("Server stopped")
			return nil
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "Address to listen on (default from config, 127.0.0.1:8779)")
	return cmd
}

// serve runs the HTTP server until ctx is cancelled.
func serve(ctx context.Context, addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server: listening on %s", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("could not start server on %s: %w", addr, err)
	case <-ctx.Done():
		logger.Info("Server: shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
