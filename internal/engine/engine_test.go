package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaedra/pastex/internal/document"
	"github.com/adaedra/pastex/internal/pastexerrs"
	"github.com/adaedra/pastex/internal/syntax"
)

func process(t *testing.T, source string) *document.Document {
	t.Helper()

	stream, err := syntax.Parse(source)
	require.NoError(t, err)

	doc, err := ProcessStream(stream)
	require.NoError(t, err)

	return doc
}

func TestSingleParagraph(t *testing.T) {
	doc := process(t, "Hello, world.")

	require.Len(t, doc.Outline, 1)
	assert.Equal(t, document.Paragraph, doc.Outline[0].Format)
	assert.Equal(t,
		[]document.Span{document.Text("Hello, world.")},
		doc.Outline[0].Spans,
	)
}

func TestParagraphBreaks(t *testing.T) {
	doc := process(t, "Para one.\n\nPara two.")

	require.Len(t, doc.Outline, 2)
	assert.Equal(t,
		[]document.Span{document.Text("Para one.")},
		doc.Outline[0].Spans,
	)
	assert.Equal(t,
		[]document.Span{document.Text("Para two.")},
		doc.Outline[1].Spans,
	)
}

func TestNoEmptyParagraphs(t *testing.T) {
	doc := process(t, "\n\n\n\n")

	assert.Empty(t, doc.Outline)
}

func TestStrongInline(t *testing.T) {
	doc := process(t, `A \strong{bold} word.`)

	require.Len(t, doc.Outline, 1)
	require.Len(t, doc.Outline[0].Spans, 3)

	assert.Equal(t, document.Text("A "), doc.Outline[0].Spans[0])

	format, ok := doc.Outline[0].Spans[1].(document.Format)
	require.True(t, ok)
	assert.Equal(t, document.Strong{}, format.Format)
	assert.Equal(t, []document.Span{document.Text("bold")}, format.Inner)

	assert.Equal(t, document.Text(" word."), doc.Outline[0].Spans[2])
}

// noAdjacentText checks the merger guarantee over a whole outline.
func noAdjacentText(t *testing.T, blocks []document.Block) {
	t.Helper()

	for _, block := range blocks {
		for i := 1; i < len(block.Spans); i++ {
			_, prev := block.Spans[i-1].(document.Text)
			_, cur := block.Spans[i].(document.Text)
			assert.False(t, prev && cur,
				"adjacent text spans at %d in %v", i, block.Spans)
		}
	}
}

func TestTextMerger(t *testing.T) {
	sources := []string{
		"Hello, world.",
		"a b  c\nd",
		`x \strong{y} z \code{w} tail`,
		"one\n\ntwo\n\nthree",
	}

	for _, source := range sources {
		noAdjacentText(t, process(t, source).Outline)
	}
}

func TestLineBreak(t *testing.T) {
	doc := process(t, "a\\\nb")

	require.Len(t, doc.Outline, 1)
	assert.Equal(t,
		[]document.Span{
			document.Text("a"),
			document.LineBreak{},
			document.Text("b"),
		},
		doc.Outline[0].Spans,
	)
}

func TestUnknownCommandInline(t *testing.T) {
	doc := process(t, `\nosuch{x}`)

	require.Len(t, doc.Outline, 1)
	assert.Equal(t, document.Paragraph, doc.Outline[0].Format)
	assert.Equal(t,
		[]document.Span{document.Text("[[unknown command nosuch]]")},
		doc.Outline[0].Spans,
	)
}

func TestUnknownCommandBlock(t *testing.T) {
	doc := process(t, `before\begin{nosuch}x\end{nosuch}after`)

	require.Len(t, doc.Outline, 3)
	assert.Equal(t,
		[]document.Span{document.Text("[[unknown command nosuch]]")},
		doc.Outline[1].Spans,
	)
}

func TestMetadataCollection(t *testing.T) {
	doc := process(t, `\meta:title{My doc}\meta:author{Someone}`+
		`\meta:date{2021-06-01}\meta:tags{go, parsers}\meta:draft`+
		"\n\nBody.")

	assert.Equal(t, "My doc", doc.Metadata.Title)
	assert.Equal(t, "Someone", doc.Metadata.Author)
	assert.Equal(t, "2021-06-01", doc.Metadata.Date)
	assert.Equal(t, []string{"go", "parsers"}, doc.Metadata.Keywords)
	assert.True(t, doc.Metadata.Draft)

	// Metadata commands leave no paragraph scar.
	require.Len(t, doc.Outline, 1)
	assert.Equal(t,
		[]document.Span{document.Text("Body.")},
		doc.Outline[0].Spans,
	)
}

func TestDuplicateMetadataLastWins(t *testing.T) {
	doc := process(t, `\meta:title{First}\meta:title{Second}`)

	assert.Equal(t, "Second", doc.Metadata.Title)
}

func TestMetadataNonTextContent(t *testing.T) {
	stream, err := syntax.Parse(`\meta:title{\strong{nope}}`)
	require.NoError(t, err)

	_, err = ProcessStream(stream)

	var contentErr *pastexerrs.MetadataContentError
	require.ErrorAs(t, err, &contentErr)
	assert.Equal(t, "meta:title", contentErr.Command)
}

func TestLinkRequiresTo(t *testing.T) {
	stream, err := syntax.Parse(`\link{Home}`)
	require.NoError(t, err)

	_, err = ProcessStream(stream)

	var missing *pastexerrs.MissingParamError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "to", missing.Param)
}

func TestLink(t *testing.T) {
	doc := process(t, `\link[to=https://example.com, blank]{Home}`)

	require.Len(t, doc.Outline, 1)
	format, ok := doc.Outline[0].Spans[0].(document.Format)
	require.True(t, ok)

	link, ok := format.Format.(document.Link)
	require.True(t, ok)
	assert.Equal(t, "https://example.com", link.To)
	assert.True(t, link.Blank)
}

func TestCodeBlock(t *testing.T) {
	doc := process(t, `\begin{code}fn main() {}\end{code}`)

	require.Len(t, doc.Outline, 1)
	assert.Equal(t, document.CodeBlock, doc.Outline[0].Format)

	var text string
	for _, span := range doc.Outline[0].Spans {
		text += string(span.(document.Text))
	}
	assert.Equal(t, "fn main() {}", text)
}

func TestCodeInline(t *testing.T) {
	doc := process(t, `Use \code{make} here.`)

	require.Len(t, doc.Outline, 1)
	assert.Equal(t, document.Paragraph, doc.Outline[0].Format)

	format, ok := doc.Outline[0].Spans[1].(document.Format)
	require.True(t, ok)
	assert.Equal(t, document.Code{}, format.Format)
}

func TestHeadings(t *testing.T) {
	doc := process(t, "\\head1{Top}\n\n\\head2{Mid}\n\n\\head3{Low}")

	require.Len(t, doc.Outline, 3)
	for i, level := range []int{1, 2, 3} {
		assert.Equal(t, document.Heading, doc.Outline[i].Format)
		assert.Equal(t, level, doc.Outline[i].Level)
	}
}

func TestAbstractRoutesToOutline(t *testing.T) {
	doc := process(t, `\begin{abstract}Short summary.\end{abstract}`+
		"\n\nBody.")

	require.Len(t, doc.Outline, 2)
	assert.Equal(t,
		[]document.Span{document.Text("Short summary.")},
		doc.Outline[0].Spans,
	)

	// The metadata slot stays reserved.
	assert.Nil(t, doc.Metadata.Abstract)
}

func TestRawSpan(t *testing.T) {
	doc := process(t, `\raw{<hr />}`)

	require.Len(t, doc.Outline, 1)
	assert.Equal(t,
		document.RawText("<hr />"),
		doc.Outline[0].Spans[0],
	)
}

func TestProcessFragment(t *testing.T) {
	stream, err := syntax.Parse(`Some \strong{inline} text`)
	require.NoError(t, err)

	blocks, err := ProcessFragment(stream)
	require.NoError(t, err)

	require.Len(t, blocks, 1)
	assert.Equal(t, document.Paragraph, blocks[0].Format)
	assert.NotEmpty(t, blocks[0].Spans)
}
