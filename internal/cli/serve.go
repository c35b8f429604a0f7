package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"chronotask/internal/auth"
	"chronotask/internal/chat"
	"chronotask/internal/constants"
	"chronotask/internal/keyring"
	"chronotask/internal/logger"
	"chronotask/internal/server"
	"chronotask/internal/store"
	"chronotask/internal/utils"
)

// ServeCmd runs the HTTP API until interrupted.
type ServeCmd struct {
	Addr string `help:"Listen address." env:"CHRONOTASK_ADDR" default:":8574"`
}

func (cmd *ServeCmd) Run(ctx *Context) error {
	st, err := store.New(ctx.Persister, auth.NewMock())
	if err != nil {
		return err
	}
	defer ctx.Persister.Close()

	srv := server.New(st, auth.NewMock(), newAssistant())

	httpSrv := &http.Server{
		Addr:    cmd.Addr,
		Handler: srv.Engine(),
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		logger.Info("HTTP server listening", "addr", cmd.Addr)
		fmt.Printf("chronotask listening on %s\n", cmd.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newAssistant builds the chat assistant when an API key is available, from
// the environment first and the OS keyring second. Without a key the chat
// endpoint serves its fallback message.
func newAssistant() *chat.Assistant {
	apiKey := utils.EnvOrDefault(constants.EnvAPIKey, "")
	if apiKey == "" {
		key, err := keyring.GetAPIKey()
		if err != nil {
			logger.Debug("No completion-service API key configured", "error", err)
			return nil
		}
		apiKey = key
	}
	return chat.NewAssistant(apiKey)
}
