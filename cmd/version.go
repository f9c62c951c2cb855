package cmd

import (
	"fmt"

	"github.com/adaedra/pastex/internal/version"
)

// VersionCmd displays build information: version number, git commit
// hash, and build date.
type VersionCmd struct {
	// JSON enables JSON output format for scripting and automation.
	JSON bool `help:"Output in JSON format for scripting"`

	// Short enables minimal output showing only the version number.
	Short bool `help:"Output version number only"`
}

// Run executes the version command. JSON takes precedence over Short
// if both are set.
func (c *VersionCmd) Run() error {
	info := version.GetBuildInfo()

	switch {
	case c.JSON:
		jsonBytes, err := info.JSON()
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(jsonBytes))
	case c.Short:
		fmt.Println(info.Short())
	default:
		fmt.Println(info.String())
	}

	return nil
}
