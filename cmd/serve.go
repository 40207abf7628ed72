package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	apihttp "github.com/mindstep/aiplan/internal/http"
	"github.com/mindstep/aiplan/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP plan service",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var repo store.EventRepo
		if s, err := openStore(cmd); err != nil {
			logger.Warn("audit log disabled", zap.Error(err))
		} else {
			defer s.Close()
			repo = s.EventRepo()
		}

		seed, err := cfg.SeedValue()
		if err != nil {
			return err
		}
		asm, err := newAssembler(ctx, repo, seed)
		if err != nil {
			return err
		}

		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		rdb := newRedis(pingCtx)
		cancel()
		if rdb != nil {
			defer rdb.Close()
		}
		if !cfg.Remote() {
			logger.Warn("profile or task service not configured, only /api/plan/preview will succeed")
		}

		if cfg.LogMode != "development" && cfg.LogMode != "dev" {
			gin.SetMode(gin.ReleaseMode)
		}
		handler := apihttp.NewPlanHandler(logger, newService(asm, repo, rdb), version)
		server := &http.Server{
			Addr:              ":" + cfg.HTTPPort,
			Handler:           apihttp.NewRouter(logger, handler),
			ReadHeaderTimeout: 5 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("starting server", zap.String("port", cfg.HTTPPort))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	},
}
