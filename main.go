package main

import (
	"github.com/alecthomas/kong"
	"github.com/spf13/afero"

	"github.com/adaedra/pastex/cmd"
	"github.com/adaedra/pastex/internal/config"
	"github.com/adaedra/pastex/internal/logging"
	"github.com/adaedra/pastex/internal/theme"
)

func main() {
	cli := &cmd.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("pastex"),
		kong.Description("Lightweight markup to HTML processor"),
		kong.UsageOnError(),
	)

	// Load config and apply theme and log level. A missing or broken
	// config only means defaults; --verbose outranks the configured level.
	cfg, err := config.Load(afero.NewOsFs())
	if err == nil {
		_ = theme.Load(cfg.Theme)
		if cfg.LogLevel != "" && !cli.Verbose {
			logging.SetDefaultLevel(cfg.LogLevel)
		}
	}

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}
