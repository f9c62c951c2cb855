package pastexerrs

import "fmt"

// MetadataContentError indicates a metadata command whose content could
// not be reduced to raw text.
type MetadataContentError struct {
	Command string // Full command name, e.g. "meta:title"
}

func (e *MetadataContentError) Error() string {
	return fmt.Sprintf(
		"metadata command %s takes raw text content only",
		e.Command,
	)
}

// MissingParamError indicates a command invoked without a parameter it
// requires, such as \link without to.
type MissingParamError struct {
	Command string // Full command name
	Param   string // Name of the missing parameter
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf(
		"command %s requires the %s parameter",
		e.Command,
		e.Param,
	)
}
