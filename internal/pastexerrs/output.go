package pastexerrs

import "fmt"

// HeadingLevelError indicates a heading block with a level outside the
// renderable 1..3 range.
type HeadingLevelError struct {
	Level int
}

func (e *HeadingLevelError) Error() string {
	return fmt.Sprintf("heading level %d out of range (1-3)", e.Level)
}
