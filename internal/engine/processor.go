package engine

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/adaedra/pastex/internal/document"
	"github.com/adaedra/pastex/internal/syntax"
)

// textProcessor is the strategy an inline context uses to project raw
// text runs into spans.
type textProcessor interface {
	raw(text string) []document.Span
}

// inlineProcessor collapses any run of whitespace to a single space,
// yielding Text pieces for words and single-space fillers.
type inlineProcessor struct{}

func (inlineProcessor) raw(text string) []document.Span {
	var spans []document.Span

	for len(text) > 0 {
		first, _ := utf8.DecodeRuneInString(text)
		inSpace := unicode.IsSpace(first)

		end := strings.IndexFunc(text, func(r rune) bool {
			return unicode.IsSpace(r) != inSpace
		})
		if end == -1 {
			end = len(text)
		}

		if inSpace {
			spans = append(spans, document.Text(" "))
		} else {
			spans = append(spans, document.Text(text[:end]))
		}

		text = text[end:]
	}

	return spans
}

// preserveProcessor trims leading newlines off the first run, then
// yields each run unchanged.
type preserveProcessor struct {
	trimmed bool
}

func (p *preserveProcessor) raw(text string) []document.Span {
	if !p.trimmed {
		text = strings.TrimLeft(text, "\n")
		p.trimmed = true
	}

	if text == "" {
		return nil
	}

	return []document.Span{document.Text(text)}
}

// processAll walks a stream in an inline context: raw runs go through
// the processor, nested commands dispatch through the inline registry,
// comments disappear.
func processAll(
	stream syntax.Stream,
	proc textProcessor,
) ([]document.Span, error) {
	var spans []document.Span

	for _, el := range stream {
		switch el := el.(type) {
		case syntax.Raw:
			spans = append(spans, proc.raw(string(el))...)
		case syntax.Comment:
			// Comments never reach the output.
		case syntax.LineBreak:
			spans = append(spans, document.LineBreak{})
		case *syntax.Command:
			inner, err := runInline(el)
			if err != nil {
				return nil, err
			}

			spans = append(spans, inner...)
		}
	}

	return spans, nil
}
