// Package document holds the typed document tree produced by the
// engine. Unlike the syntax tree, every value here owns its data and
// can outlive the buffer the document was parsed from.
package document

// SpanFormat is an inline formatting applied to a run of spans.
type SpanFormat interface {
	spanFormat()
}

// Code marks an inline code span.
type Code struct{}

// Strong marks strongly emphasized text.
type Strong struct{}

// Link marks a hyperlink to To, opening in a new context when Blank is
// set.
type Link struct {
	To    string
	Blank bool
}

func (Code) spanFormat()   {}
func (Strong) spanFormat() {}
func (Link) spanFormat()   {}

// Span is an inline unit of a block.
type Span interface {
	span()
}

// Text is plain text, escaped on output.
type Text string

// RawText is pre-rendered output emitted verbatim. Only the \raw
// command produces it.
type RawText string

// Format wraps inner spans in an inline format.
type Format struct {
	Format SpanFormat
	Inner  []Span
}

// LineBreak is a forced line break inside a block.
type LineBreak struct{}

func (Text) span()      {}
func (RawText) span()   {}
func (Format) span()    {}
func (LineBreak) span() {}

// BlockFormat describes the structural kind of a block.
type BlockFormat int

const (
	// Paragraph is a regular paragraph of inline spans.
	Paragraph BlockFormat = iota
	// CodeBlock is a preformatted code block.
	CodeBlock
	// Heading is a section heading; Block.Level gives its depth.
	Heading
	// RawBlock is emitted without any wrapping element.
	RawBlock
)

// Block is a top-level structural unit of a document outline.
type Block struct {
	Format BlockFormat
	// Level is the heading depth, 1 to 3. Meaningful only when Format
	// is Heading.
	Level int
	Spans []Span
}

// Document is the fully evaluated form of a source document.
type Document struct {
	Outline  []Block
	Metadata Metadata
}
