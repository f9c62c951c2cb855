// Package engine lowers a parsed syntax tree into a typed document
// tree: it joins streaming text runs into paragraph blocks, routes
// commands through the command registries, and collects top-level
// metadata.
package engine

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/adaedra/pastex/internal/document"
	"github.com/adaedra/pastex/internal/syntax"
)

// rootSpan is an intermediate node produced while evaluating the top
// level of a document, before paragraph assembly.
type rootSpan interface {
	rootSpan()
}

// rootText is a run of already-processed text. Adjacent runs merge
// during assembly.
type rootText string

// rootInline is an inline span emitted by a command at the top level.
type rootInline struct {
	span document.Span
}

// rootBlock is a complete block emitted by a command.
type rootBlock struct {
	block document.Block
}

// rootParagraphBreak separates two paragraphs.
type rootParagraphBreak struct{}

// rootLineBreak is a forced line break within a paragraph.
type rootLineBreak struct{}

func (rootText) rootSpan()           {}
func (rootInline) rootSpan()         {}
func (rootBlock) rootSpan()          {}
func (rootParagraphBreak) rootSpan() {}
func (rootLineBreak) rootSpan()      {}

// liftSpan raises an inline span to the top level. Text stays a text
// run so the assembly merger can fold it into its neighbors.
func liftSpan(s document.Span) rootSpan {
	if t, ok := s.(document.Text); ok {
		return rootText(t)
	}

	return rootInline{span: s}
}

func liftSpans(spans []document.Span) []rootSpan {
	res := make([]rootSpan, 0, len(spans))
	for _, s := range spans {
		res = append(res, liftSpan(s))
	}

	return res
}

// topLevelText projects a raw text run into root spans. A run of
// whitespace containing two or more newlines is a paragraph break; any
// other whitespace run collapses to a single space. When atStart is
// true, leading paragraph breaks are dropped.
func topLevelText(text string, atStart bool) []rootSpan {
	var spans []rootSpan

	for len(text) > 0 {
		first, _ := utf8.DecodeRuneInString(text)
		inSpace := unicode.IsSpace(first)

		end := strings.IndexFunc(text, func(r rune) bool {
			return unicode.IsSpace(r) != inSpace
		})
		if end == -1 {
			end = len(text)
		}

		switch {
		case inSpace && strings.Count(text[:end], "\n") >= 2:
			if !(atStart && len(spans) == 0) {
				spans = append(spans, rootParagraphBreak{})
			}
		case inSpace:
			spans = append(spans, rootText(" "))
		default:
			spans = append(spans, rootText(text[:end]))
		}

		text = text[end:]
	}

	return spans
}

// rootSpans evaluates the top level of a stream. Consecutive raw pieces
// accumulate into one buffer so paragraph breaks spanning several
// elements are still seen whole; the buffer flushes before any command
// output, on line breaks, and at the end of the stream.
func rootSpans(
	metadata *document.Metadata,
	stream syntax.Stream,
) ([]rootSpan, error) {
	var res []rootSpan
	var buffer strings.Builder

	flush := func() {
		if buffer.Len() == 0 {
			return
		}

		res = append(res, topLevelText(buffer.String(), len(res) == 0)...)
		buffer.Reset()
	}

	for _, el := range stream {
		switch el := el.(type) {
		case syntax.Raw:
			buffer.WriteString(string(el))
		case syntax.Comment:
			// Comments never reach the output.
		case syntax.LineBreak:
			flush()
			res = append(res, rootLineBreak{})
		case *syntax.Command:
			spans, err := runToplevel(metadata, el)
			if err != nil {
				return nil, err
			}

			if len(spans) == 0 {
				// Metadata-only commands leave no trace; keep
				// accumulating text around them.
				continue
			}

			flush()
			res = append(res, spans...)
		}
	}

	flush()

	return res, nil
}

// root folds the root spans of a stream into the document outline,
// assembling paragraphs as it goes. Adjacent text runs merge in place
// so whitespace fillers never fragment the output; no paragraph is
// ever emitted empty.
func root(
	metadata *document.Metadata,
	stream syntax.Stream,
) ([]document.Block, error) {
	spans, err := rootSpans(metadata, stream)
	if err != nil {
		return nil, err
	}

	var outline []document.Block
	var paragraph []document.Span

	flush := func() {
		if len(paragraph) == 0 {
			return
		}

		outline = append(outline, document.Block{
			Format: document.Paragraph,
			Spans:  paragraph,
		})
		paragraph = nil
	}

	for _, rs := range spans {
		switch rs := rs.(type) {
		case rootText:
			if n := len(paragraph); n > 0 {
				if t, ok := paragraph[n-1].(document.Text); ok {
					paragraph[n-1] = t + document.Text(rs)
					continue
				}
			}

			paragraph = append(paragraph, document.Text(rs))
		case rootInline:
			paragraph = append(paragraph, rs.span)
		case rootLineBreak:
			paragraph = append(paragraph, document.LineBreak{})
		case rootParagraphBreak:
			flush()
		case rootBlock:
			flush()
			outline = append(outline, rs.block)
		}
	}

	flush()

	return outline, nil
}

// ProcessStream evaluates a parsed document stream into a Document.
func ProcessStream(stream syntax.Stream) (*document.Document, error) {
	var metadata document.Metadata

	outline, err := root(&metadata, stream)
	if err != nil {
		return nil, err
	}

	return &document.Document{Outline: outline, Metadata: metadata}, nil
}

// ProcessFragment evaluates a stream as a standalone fragment: a single
// paragraph of inline-processed spans, with no metadata collection.
func ProcessFragment(stream syntax.Stream) ([]document.Block, error) {
	spans, err := processAll(stream, inlineProcessor{})
	if err != nil {
		return nil, err
	}

	return []document.Block{{
		Format: document.Paragraph,
		Spans:  spans,
	}}, nil
}
