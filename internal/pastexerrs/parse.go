package pastexerrs

import "fmt"

// ExtraTrailingError indicates the top-level parse finished with
// unconsumed input, usually a stray closing brace.
type ExtraTrailingError struct {
	Offset int // Byte offset of the first unconsumed character
}

func (e *ExtraTrailingError) Error() string {
	return fmt.Sprintf(
		"extra content at end of document (offset %d)",
		e.Offset,
	)
}

// MismatchedBlockError indicates a begin/end pair with different names.
// Open is empty when an end command was found with no block open at all.
type MismatchedBlockError struct {
	Open  string // Name of the currently open block, "" if none
	Close string // Name given to the end command
}

func (e *MismatchedBlockError) Error() string {
	if e.Open == "" {
		return fmt.Sprintf(
			"closing a %s block outside of any block",
			e.Close,
		)
	}

	return fmt.Sprintf(
		"closing a %s block while a %s block is open",
		e.Close,
		e.Open,
	)
}

// UnclosedBlockError indicates end of input was reached while a block or
// a command's content braces were still open.
type UnclosedBlockError struct {
	Name string // Name of the open block or command
}

func (e *UnclosedBlockError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("unclosed block %s at end of input", e.Name)
	}

	return "unclosed block at end of input"
}

// MalformedCommandError indicates a backslash that is not followed by an
// identifier, an escapable character, or a newline.
type MalformedCommandError struct {
	Offset int // Byte offset of the offending backslash
}

func (e *MalformedCommandError) Error() string {
	return fmt.Sprintf(
		"malformed command at offset %d: expected identifier or escape after \\",
		e.Offset,
	)
}
