package engine

import (
	"strings"

	"github.com/adaedra/pastex/internal/document"
	"github.com/adaedra/pastex/internal/logging"
	"github.com/adaedra/pastex/internal/pastexerrs"
	"github.com/adaedra/pastex/internal/syntax"
)

// toplevelCode emits a code block when the begin/end form was used and
// falls through to the inline behavior otherwise.
func toplevelCode(
	_ *document.Metadata,
	content syntax.Stream,
	params syntax.Params,
	block bool,
) ([]rootSpan, error) {
	if !block {
		spans, err := inlineCode(content, params, block)
		if err != nil {
			return nil, err
		}

		return liftSpans(spans), nil
	}

	inner, err := processAll(content, &preserveProcessor{})
	if err != nil {
		return nil, err
	}

	return []rootSpan{rootBlock{block: document.Block{
		Format: document.CodeBlock,
		Spans:  inner,
	}}}, nil
}

// headCommand builds the handler for one heading level.
func headCommand(level int) toplevelHandler {
	return func(
		_ *document.Metadata,
		content syntax.Stream,
		_ syntax.Params,
		_ bool,
	) ([]rootSpan, error) {
		inner, err := processAll(content, inlineProcessor{})
		if err != nil {
			return nil, err
		}

		return []rootSpan{rootBlock{block: document.Block{
			Format: document.Heading,
			Level:  level,
			Spans:  inner,
		}}}, nil
	}
}

// toplevelAbstract re-runs top-level evaluation over its content. The
// result flows into the outline; Metadata.Abstract stays reserved.
func toplevelAbstract(
	metadata *document.Metadata,
	content syntax.Stream,
	_ syntax.Params,
	_ bool,
) ([]rootSpan, error) {
	return rootSpans(metadata, content)
}

// metaCommand builds a handler that writes one metadata slot from the
// raw text of its content. Writing an already-set slot warns and
// overwrites.
func metaCommand(
	name string,
	field func(*document.Metadata) document.Field,
) toplevelHandler {
	return func(
		metadata *document.Metadata,
		content syntax.Stream,
		_ syntax.Params,
		_ bool,
	) ([]rootSpan, error) {
		slot := field(metadata)
		if slot.IsSet() {
			logging.Warnf("replacing existing metadata for %s", name)
		}

		raw, err := rawText(name, content)
		if err != nil {
			return nil, err
		}

		slot.Set(raw)

		return nil, nil
	}
}

// rawText reduces a stream to its raw text, for metadata values.
// Comments drop; anything structural is an error.
func rawText(command string, content syntax.Stream) (string, error) {
	var b strings.Builder

	for _, el := range content {
		switch el := el.(type) {
		case syntax.Raw:
			b.WriteString(string(el))
		case syntax.Comment:
		default:
			return "", &pastexerrs.MetadataContentError{
				Command: "meta:" + command,
			}
		}
	}

	return b.String(), nil
}
