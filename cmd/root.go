// Package cmd provides command-line interface implementations for
// pastex.
package cmd

import (
	"fmt"
	"os"

	kongcompletion "github.com/jotaen/kong-completion"
	"github.com/mattn/go-isatty"

	"github.com/adaedra/pastex/internal/engine"
	"github.com/adaedra/pastex/internal/htmlout"
	"github.com/adaedra/pastex/internal/logging"
	"github.com/adaedra/pastex/internal/syntax"
	"github.com/adaedra/pastex/internal/theme"
)

// CLI represents the root command structure for Kong.
type CLI struct {
	// Global flags (apply to all commands)
	Verbose bool `help:"Enable verbose output" short:"v"`

	// Commands
	Render     RenderCmd                 `cmd:"" default:"1" help:"Render stdin to stdout"`
	Build      BuildCmd                  `cmd:""             help:"Render a source file to HTML"`
	Fragment   FragmentCmd               `cmd:""             help:"Render a fragment, no scaffold"`
	Watch      WatchCmd                  `cmd:""             help:"Rebuild on every change"`
	Version    VersionCmd                `cmd:""             help:"Show version info"`
	Completion kongcompletion.Completion `cmd:""             help:"Generate completions"`
}

// AfterApply is called by Kong after parsing flags but before running
// the command.
func (c *CLI) AfterApply() error {
	if c.Verbose {
		logging.SetVerbose()
	}

	return nil
}

// renderDocument runs the full pipeline over a source buffer: parse,
// evaluate, emit. The result does not include the trailing newline.
func renderDocument(source string) (string, error) {
	stream, err := syntax.Parse(source)
	if err != nil {
		return "", fmt.Errorf("parse error: %w", err)
	}

	doc, err := engine.ProcessStream(stream)
	if err != nil {
		return "", fmt.Errorf("processing error: %w", err)
	}

	html, err := htmlout.OutputDocument(doc)
	if err != nil {
		return "", fmt.Errorf("output error: %w", err)
	}

	return html.Render(), nil
}

// diag writes a styled status line to stderr, skipping colors when
// stderr is not a terminal.
func diag(style func() string, plain string) {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		fmt.Fprintln(os.Stderr, style())
		return
	}

	fmt.Fprintln(os.Stderr, plain)
}

func diagSuccess(message string) {
	diag(func() string {
		return theme.SuccessStyle().Render(message)
	}, message)
}

func diagError(message string) {
	diag(func() string {
		return theme.ErrorStyle().Render(message)
	}, message)
}
