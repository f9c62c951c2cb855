// Package htmlout serializes a document tree to HTML text through a
// tag builder indexed by a closed set of tag types.
package htmlout

import "strings"

// Element is any value that can be rendered into the HTML stream.
type Element interface {
	render(b *strings.Builder)
}

// Attribute is one name/value pair on a tag. Values are emitted
// verbatim: callers must pass already-safe text.
type Attribute struct {
	Name  string
	Value string
}

// Tag is an HTML element of the tag named by the marker type T.
type Tag[T TagName] struct {
	Attributes []Attribute
	Children   []Element
}

// New builds a tag of type T around the given children.
func New[T TagName](children ...Element) *Tag[T] {
	return &Tag[T]{Children: children}
}

// Attr appends an attribute and returns the tag for chaining.
// Attributes render in insertion order.
func (t *Tag[T]) Attr(name, value string) *Tag[T] {
	t.Attributes = append(t.Attributes, Attribute{Name: name, Value: value})
	return t
}

func (t *Tag[T]) render(b *strings.Builder) {
	var marker T
	name := marker.tagName()

	b.WriteString("<")
	b.WriteString(name)

	for _, attr := range t.Attributes {
		b.WriteString(" ")
		b.WriteString(attr.Name)
		b.WriteString(`="`)
		b.WriteString(attr.Value)
		b.WriteString(`"`)
	}

	if len(t.Children) == 0 {
		b.WriteString(" />")
		return
	}

	b.WriteString(">")

	for _, child := range t.Children {
		child.render(b)
	}

	b.WriteString("</")
	b.WriteString(name)
	b.WriteString(">")
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Text is a text node, HTML-escaped on render.
type Text string

func (t Text) render(b *strings.Builder) {
	textEscaper.WriteString(b, string(t)) //nolint:errcheck // strings.Builder never fails
}

type rawHTML string

func (r rawHTML) render(b *strings.Builder) {
	b.WriteString(string(r))
}

// RawHTML wraps pre-rendered HTML that bypasses escaping on render.
// The caller vouches for the content; nothing downstream checks it.
func RawHTML(s string) Element {
	return rawHTML(s)
}

// Fragment renders its elements one after the other, without any
// wrapping tag.
type Fragment []Element

func (f Fragment) render(b *strings.Builder) {
	for _, el := range f {
		el.render(b)
	}
}

// HTMLDocument is a complete document: a root html tag behind the
// doctype preamble.
type HTMLDocument struct {
	Root *Tag[HTML]
}

// Render produces the final HTML text. The builder tree is plain data;
// rendering it again produces the same bytes.
func (d *HTMLDocument) Render() string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n")
	d.Root.render(&b)

	return b.String()
}

// RenderFragment renders any element tree without the document
// preamble.
func RenderFragment(el Element) string {
	var b strings.Builder
	el.render(&b)

	return b.String()
}
