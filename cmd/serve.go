package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rmalloy/folio/internal/auth"
	"github.com/rmalloy/folio/internal/content"
	"github.com/rmalloy/folio/internal/handler"
	"github.com/rmalloy/folio/internal/media"
	"github.com/rmalloy/folio/internal/site"
	"github.com/rmalloy/folio/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the portfolio server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := appConfig.ValidateForServe(); err != nil {
			return err
		}

		s, err := store.New(appConfig.StoreBackend, appConfig.DataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		authSvc := auth.New(
			appConfig.Admin.JWTSecret,
			appConfig.Admin.Email,
			appConfig.Admin.PasswordHash,
			appConfig.Admin.SessionTTL,
			logger,
		)
		mediaSvc, err := media.New(appConfig.UploadDir, logger)
		if err != nil {
			return err
		}
		renderer, err := site.NewRenderer(s, appConfig.SiteTitle, logger)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		// The json backend can change on disk underneath us; keep the
		// rendered site fresh without a restart.
		if jf, ok := s.(*store.JSONFileStore); ok {
			if err := renderer.Watch(ctx, jf.Path()); err != nil {
				logger.Warn("content watcher unavailable", zap.Error(err))
			}
		}

		saver := content.NewSaver(s, logger)
		h := handler.New(s, saver, authSvc, mediaSvc, renderer, logger)

		srv := &http.Server{
			Addr:              appConfig.Addr(),
			Handler:           corsMiddleware(h, appConfig.AllowedOrigins),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("folio server starting",
				zap.String("addr", appConfig.Addr()),
				zap.String("store", appConfig.StoreBackend),
				zap.String("data", appConfig.DataDir),
			)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

// corsMiddleware wraps an http.Handler with CORS headers.
func corsMiddleware(next http.Handler, allowedOrigins []string) http.Handler {
	// Fast path: wildcard allows everything.
	allowAll := len(allowedOrigins) == 1 && allowedOrigins[0] == "*"

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowAll {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		} else if origin != "" {
			for _, o := range allowedOrigins {
				if strings.TrimSpace(o) == origin {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Vary", "Origin")
					break
				}
			}
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
