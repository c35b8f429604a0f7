package cli

import (
	"fmt"

	"chronotask/internal/logger"
)

// InitCmd initializes the configured storage backend.
type InitCmd struct{}

func (cmd *InitCmd) Run(ctx *Context) error {
	if err := ctx.Persister.Init(); err != nil {
		return err
	}
	defer ctx.Persister.Close()

	logger.Info("Storage initialized", "path", ctx.Persister.Path())
	fmt.Printf("Initialized storage at %s\n", ctx.Persister.Path())
	return nil
}
