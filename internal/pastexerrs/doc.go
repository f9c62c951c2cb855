// Package pastexerrs provides centralized error types for the pastex CLI.
//
// All custom error types in this package:
//   - Use pointer receivers for the Error() method
//   - Include structured fields for contextual information
//   - Implement Unwrap() when wrapping underlying errors
//
// Error types are organized by domain:
//   - parse.go: syntax-level errors raised while reading a document
//   - engine.go: evaluation errors raised while building the document tree
//   - output.go: emission errors raised while rendering HTML
package pastexerrs
