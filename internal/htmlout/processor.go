package htmlout

import (
	"github.com/adaedra/pastex/internal/document"
	"github.com/adaedra/pastex/internal/pastexerrs"
)

func span(s document.Span) Element {
	switch s := s.(type) {
	case document.Text:
		return Text(s)
	case document.RawText:
		return RawHTML(string(s))
	case document.LineBreak:
		return New[Br]()
	case document.Format:
		inner := make([]Element, 0, len(s.Inner))
		for _, child := range s.Inner {
			inner = append(inner, span(child))
		}

		switch f := s.Format.(type) {
		case document.Code:
			return New[Code](inner...)
		case document.Strong:
			return New[Strong](inner...)
		case document.Link:
			a := New[A](inner...).Attr("href", f.To)
			if f.Blank {
				a.Attr("target", "_blank").
					Attr("rel", "noopener noreferrer")
			}

			return a
		}
	}

	return Fragment(nil)
}

// heading maps authored levels to emitted tags one step down: h1 is
// reserved for the page title.
func heading(level int, inner []Element) (Element, error) {
	switch level {
	case 1:
		return New[H2](inner...), nil
	case 2:
		return New[H3](inner...), nil
	case 3:
		return New[H4](inner...), nil
	default:
		return nil, &pastexerrs.HeadingLevelError{Level: level}
	}
}

func block(b document.Block) (Element, error) {
	inner := make([]Element, 0, len(b.Spans))
	for _, s := range b.Spans {
		inner = append(inner, span(s))
	}

	switch b.Format {
	case document.Paragraph:
		return New[P](inner...), nil
	case document.CodeBlock:
		return New[Pre](
			New[Code](inner...).Attr("class", "code-block"),
		), nil
	case document.Heading:
		return heading(b.Level, inner)
	case document.RawBlock:
		return Fragment(inner), nil
	}

	return Fragment(inner), nil
}

func head(metadata document.Metadata) *Tag[Head] {
	children := []Element{
		New[Meta]().Attr("charset", "utf-8"),
	}

	if metadata.HasTitle() {
		children = append(children, New[Title](Text(metadata.Title)))
	}

	return New[Head](children...)
}

// OutputFragment renders outline blocks without the document scaffold.
func OutputFragment(blocks []document.Block) (Fragment, error) {
	res := make(Fragment, 0, len(blocks))

	for _, b := range blocks {
		el, err := block(b)
		if err != nil {
			return nil, err
		}

		res = append(res, el)
	}

	return res, nil
}

// OutputDocument builds the full HTML document for a processed pastex
// document.
func OutputDocument(doc *document.Document) (*HTMLDocument, error) {
	outline, err := OutputFragment(doc.Outline)
	if err != nil {
		return nil, err
	}

	return &HTMLDocument{
		Root: New[HTML](
			head(doc.Metadata),
			New[Body](outline...),
		),
	}, nil
}
