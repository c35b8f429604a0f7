package cli

import (
	"errors"
	"fmt"

	"chronotask/internal/keyring"
)

// KeySetCmd stores the completion-service API key in the OS keyring.
type KeySetCmd struct {
	Key string `arg:"" help:"API key for the completion service."`
}

func (cmd *KeySetCmd) Run(ctx *Context) error {
	if err := keyring.SetAPIKey(cmd.Key); err != nil {
		return err
	}
	fmt.Println("API key stored in OS keyring")
	return nil
}

// KeyDeleteCmd removes the completion-service API key from the OS keyring.
type KeyDeleteCmd struct{}

func (cmd *KeyDeleteCmd) Run(ctx *Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No API key stored")
			return nil
		}
		return err
	}
	fmt.Println("API key removed from OS keyring")
	return nil
}
