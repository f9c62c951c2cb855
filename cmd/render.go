package cmd

import (
	"fmt"
	"io"
	"os"
)

// RenderCmd reads a whole source document from standard input and
// writes the rendered HTML document, followed by a newline, to
// standard output.
type RenderCmd struct{}

// Run executes the render command.
func (c *RenderCmd) Run() error {
	source, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read standard input: %w", err)
	}

	out, err := renderDocument(string(source))
	if err != nil {
		return err
	}

	fmt.Println(out)

	return nil
}
