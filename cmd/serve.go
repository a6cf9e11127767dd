package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abhisek/coursefit/internal/advice"
	"github.com/abhisek/coursefit/internal/api"
	"github.com/abhisek/coursefit/internal/config"
	"github.com/abhisek/coursefit/internal/llm"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the recommendation API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromEnv()
		addr := stringFlag(cmd, "addr", cfg.HTTPAddr)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cat, err := resolveCatalog(ctx, cmd)
		if err != nil {
			return err
		}

		logger := log.New(os.Stderr, "", log.LstdFlags)
		var advisor api.Advisor
		provider, err := llm.NewProviderFromEnv(ctx, logger)
		switch {
		case errors.Is(err, llm.ErrNotConfigured):
			logger.Printf("advice disabled: %v", err)
		case err != nil:
			return err
		default:
			advisor = advice.NewService(provider, advice.DefaultConfig())
			logger.Printf("advice enabled with %s", provider.ModelID())
		}

		srv := &http.Server{
			Addr: addr,
			Handler: api.New(cat, advisor, api.Options{
				CORSOrigins:    cfg.CORSOrigins,
				RequestTimeout: cfg.RequestTimeout,
				Compress:       cfg.Compress,
			}).Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}

		errc := make(chan error, 1)
		go func() {
			logger.Printf("serving catalog %s (%d courses) on %s", cat.Version(), cat.Len(), addr)
			errc <- srv.ListenAndServe()
		}()

		select {
		case err := <-errc:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides COURSEFIT_HTTP_ADDR)")
}
