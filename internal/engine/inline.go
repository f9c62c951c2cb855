package engine

import (
	"github.com/adaedra/pastex/internal/document"
	"github.com/adaedra/pastex/internal/pastexerrs"
	"github.com/adaedra/pastex/internal/syntax"
)

func inlineCode(
	content syntax.Stream,
	_ syntax.Params,
	_ bool,
) ([]document.Span, error) {
	inner, err := processAll(content, &preserveProcessor{})
	if err != nil {
		return nil, err
	}

	return []document.Span{document.Format{
		Format: document.Code{},
		Inner:  inner,
	}}, nil
}

func inlineStrong(
	content syntax.Stream,
	_ syntax.Params,
	_ bool,
) ([]document.Span, error) {
	inner, err := processAll(content, inlineProcessor{})
	if err != nil {
		return nil, err
	}

	return []document.Span{document.Format{
		Format: document.Strong{},
		Inner:  inner,
	}}, nil
}

func inlineLink(
	content syntax.Stream,
	params syntax.Params,
	_ bool,
) ([]document.Span, error) {
	inner, err := processAll(content, inlineProcessor{})
	if err != nil {
		return nil, err
	}

	to, ok := params["to"].(syntax.TextValue)
	if !ok {
		return nil, &pastexerrs.MissingParamError{
			Command: "link",
			Param:   "to",
		}
	}

	_, blank := params["blank"]

	return []document.Span{document.Format{
		Format: document.Link{To: string(to), Blank: blank},
		Inner:  inner,
	}}, nil
}

// inlineRaw passes its first inner text through to the output without
// escaping.
func inlineRaw(
	content syntax.Stream,
	_ syntax.Params,
	_ bool,
) ([]document.Span, error) {
	inner, err := processAll(content, &preserveProcessor{})
	if err != nil {
		return nil, err
	}

	if len(inner) == 0 {
		return nil, nil
	}

	if text, ok := inner[0].(document.Text); ok {
		return []document.Span{document.RawText(text)}, nil
	}

	return nil, nil
}
