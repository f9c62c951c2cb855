package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/adaedra/pastex/internal/config"
)

// filePerm is the standard file permission for created files
// (rw-r--r--).
const filePerm = 0644

// BuildCmd renders a source file into an HTML file. Without --output,
// the result lands next to the source with an .html extension, or
// under the configured output_dir when one is set.
type BuildCmd struct {
	// Source is the path of the document to render.
	Source string `arg:"" help:"Source document" type:"path"`
	// Output is the explicit output file path.
	Output string `help:"Output file path" short:"o" type:"path"`
}

// Run executes the build command.
func (c *BuildCmd) Run() error {
	return c.run(afero.NewOsFs())
}

func (c *BuildCmd) run(fs afero.Fs) error {
	data, err := afero.ReadFile(fs, c.Source)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.Source, err)
	}

	out := c.Output
	if out == "" {
		out, err = outputPath(fs, c.Source)
		if err != nil {
			return err
		}
	}

	html, err := renderDocument(string(data))
	if err != nil {
		return err
	}

	if dir := filepath.Dir(out); dir != "." {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	if err := afero.WriteFile(fs, out, []byte(html+"\n"), filePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	diagSuccess(fmt.Sprintf("%s -> %s", c.Source, out))

	return nil
}

// outputPath resolves the default output location for a source file,
// honoring output_dir from pastex.yaml when configured.
func outputPath(fs afero.Fs, source string) (string, error) {
	base := strings.TrimSuffix(
		filepath.Base(source),
		filepath.Ext(source),
	) + ".html"

	cfg, err := config.LoadFromPath(fs, filepath.Dir(source))
	if err != nil {
		return "", err
	}

	if cfg.OutputDir != "" {
		return filepath.Join(cfg.ProjectRoot, cfg.OutputDir, base), nil
	}

	return filepath.Join(filepath.Dir(source), base), nil
}
