package htmlout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaedra/pastex/internal/document"
	"github.com/adaedra/pastex/internal/engine"
	"github.com/adaedra/pastex/internal/pastexerrs"
	"github.com/adaedra/pastex/internal/syntax"
)

// render runs the full pipeline, parse to HTML text.
func render(t *testing.T, source string) string {
	t.Helper()

	stream, err := syntax.Parse(source)
	require.NoError(t, err)

	doc, err := engine.ProcessStream(stream)
	require.NoError(t, err)

	html, err := OutputDocument(doc)
	require.NoError(t, err)

	return html.Render()
}

func TestRenderParagraph(t *testing.T) {
	out := render(t, "Hello, world.")

	assert.Contains(t, out, "<p>Hello, world.</p>")
}

func TestRenderStrong(t *testing.T) {
	out := render(t, `A \strong{bold} word.`)

	assert.Contains(t, out, "<p>A <strong>bold</strong> word.</p>")
}

func TestRenderTwoParagraphs(t *testing.T) {
	out := render(t, "Para one.\n\nPara two.")

	first := strings.Index(out, "<p>Para one.</p>")
	second := strings.Index(out, "<p>Para two.</p>")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
}

func TestRenderTitleMetadata(t *testing.T) {
	out := render(t, "\\meta:title{My doc}\n\nBody.")

	assert.Contains(t, out, "<title>My doc</title>")
	assert.Contains(t, out, "<p>Body.</p>")
	assert.NotContains(t, out, "<p></p>")
	assert.NotContains(t, out, "<p />")
}

func TestRenderLink(t *testing.T) {
	out := render(t, `\link[to=https://example.com, blank]{Home}`)

	assert.Contains(t, out,
		`<a href="https://example.com" target="_blank" `+
			`rel="noopener noreferrer">Home</a>`)
}

func TestRenderPlainLink(t *testing.T) {
	out := render(t, `\link[to=/about]{About}`)

	assert.Contains(t, out, `<a href="/about">About</a>`)
}

func TestRenderCodeBlock(t *testing.T) {
	out := render(t, `\begin{code}fn main() {}\end{code}`)

	assert.Contains(t, out,
		`<pre><code class="code-block">fn main() {}</code></pre>`)
}

func TestRenderUnknownCommand(t *testing.T) {
	out := render(t, `\nosuch{x}`)

	assert.Contains(t, out, "<p>[[unknown command nosuch]]</p>")
}

func TestMismatchedBlockFails(t *testing.T) {
	_, err := syntax.Parse(`\begin{foo}...\end{bar}`)

	var mismatch *pastexerrs.MismatchedBlockError
	require.ErrorAs(t, err, &mismatch)
}

func TestRenderDoctypePrefix(t *testing.T) {
	out := render(t, "anything")

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
}

func TestRenderEscapesText(t *testing.T) {
	out := render(t, "<foo> & bar")

	assert.Contains(t, out, "&lt;foo&gt; &amp; bar")
	assert.NotContains(t, out, "<foo>")
}

func TestRenderHeadingLevelShift(t *testing.T) {
	out := render(t, "\\head1{One}\n\n\\head2{Two}\n\n\\head3{Three}")

	assert.Contains(t, out, "<h2>One</h2>")
	assert.Contains(t, out, "<h3>Two</h3>")
	assert.Contains(t, out, "<h4>Three</h4>")
	assert.NotContains(t, out, "<h1>")
}

func TestRenderLineBreak(t *testing.T) {
	out := render(t, "a\\\nb")

	assert.Contains(t, out, "<p>a<br />b</p>")
}

func TestRenderRawSpan(t *testing.T) {
	out := render(t, `\raw{<hr />}`)

	assert.Contains(t, out, "<hr />")
}

func TestRenderScaffold(t *testing.T) {
	out := render(t, "Body.")

	assert.Contains(t, out, `<meta charset="utf-8" />`)
	assert.Contains(t, out, "<head>")
	assert.Contains(t, out, "<body>")
	assert.NotContains(t, out, "<title>")
}

func TestHeadingLevelOutOfRange(t *testing.T) {
	_, err := OutputFragment([]document.Block{{
		Format: document.Heading,
		Level:  4,
		Spans:  []document.Span{document.Text("x")},
	}})

	var levelErr *pastexerrs.HeadingLevelError
	require.ErrorAs(t, err, &levelErr)
	assert.Equal(t, 4, levelErr.Level)
}

func TestOutputFragmentNoScaffold(t *testing.T) {
	stream, err := syntax.Parse("just text")
	require.NoError(t, err)

	blocks, err := engine.ProcessFragment(stream)
	require.NoError(t, err)

	fragment, err := OutputFragment(blocks)
	require.NoError(t, err)

	out := RenderFragment(fragment)
	assert.Equal(t, "<p>just text</p>", out)
}
