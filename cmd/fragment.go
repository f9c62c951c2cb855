package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/adaedra/pastex/internal/engine"
	"github.com/adaedra/pastex/internal/htmlout"
	"github.com/adaedra/pastex/internal/syntax"
)

// FragmentCmd reads a source fragment from standard input and writes
// only its rendered blocks to standard output, without the document
// scaffold.
type FragmentCmd struct{}

// Run executes the fragment command.
func (c *FragmentCmd) Run() error {
	source, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read standard input: %w", err)
	}

	stream, err := syntax.Parse(string(source))
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	blocks, err := engine.ProcessFragment(stream)
	if err != nil {
		return fmt.Errorf("processing error: %w", err)
	}

	fragment, err := htmlout.OutputFragment(blocks)
	if err != nil {
		return fmt.Errorf("output error: %w", err)
	}

	fmt.Println(htmlout.RenderFragment(fragment))

	return nil
}
