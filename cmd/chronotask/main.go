package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"chronotask/internal/cli"
	"chronotask/internal/constants"
	"chronotask/internal/errs"
	"chronotask/internal/logger"
	"chronotask/internal/utils"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path (JSON file, .db for SQLite) or PostgreSQL connection string." env:"CHRONOTASK_CONFIG" default:"~/.config/chronotask/chronotask.json"`
	Debug   bool   `help:"Enable debug logging."`

	Init  cli.InitCmd  `cmd:"" help:"Initialize storage."`
	Serve cli.ServeCmd `cmd:"" help:"Run the HTTP API." default:"1"`
	Key   struct {
		Set    cli.KeySetCmd    `cmd:"" help:"Store the completion-service API key."`
		Delete cli.KeyDeleteCmd `cmd:"" help:"Remove the stored API key."`
	} `cmd:"" help:"Manage the completion-service API key."`
}

func main() {
	// Optional .env for local development; real environments set variables
	// directly.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal productivity backend: onboarding, tasks, routines, goals, calendar, chat."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: configDir(CLI.Config),
	}); err != nil {
		errs.Fatal(err)
	}

	appCtx := &cli.Context{
		Persister: cli.NewPersister(CLI.Config),
		Debug:     CLI.Debug,
	}

	if err := ctx.Run(appCtx); err != nil {
		errs.Fatal(err)
	}
}

// configDir returns the directory logs live in: alongside a file-backed
// store, or the default config dir for remote backends.
func configDir(config string) string {
	if strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://") {
		return filepath.Dir(utils.ExpandHome(constants.DefaultConfigPath))
	}
	return filepath.Dir(utils.ExpandHome(config))
}
