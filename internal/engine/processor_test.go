package engine

import (
	"reflect"
	"testing"

	"github.com/adaedra/pastex/internal/document"
)

func TestInlineProcessorCollapsesWhitespace(t *testing.T) {
	spans := inlineProcessor{}.raw("a  word\n\t spaced")

	want := []document.Span{
		document.Text("a"),
		document.Text(" "),
		document.Text("word"),
		document.Text(" "),
		document.Text("spaced"),
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("expected %v, got %v", want, spans)
	}
}

func TestPreserveProcessorTrimsLeadingNewlinesOnly(t *testing.T) {
	proc := &preserveProcessor{}

	spans := proc.raw("\n\n  indented\nline")
	want := []document.Span{document.Text("  indented\nline")}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("expected %v, got %v", want, spans)
	}

	// Only the first run trims.
	spans = proc.raw("\nmore")
	want = []document.Span{document.Text("\nmore")}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("expected %v, got %v", want, spans)
	}
}

func TestTopLevelTextParagraphBreaks(t *testing.T) {
	spans := topLevelText("one\n\ntwo three", false)

	want := []rootSpan{
		rootText("one"),
		rootParagraphBreak{},
		rootText("two"),
		rootText(" "),
		rootText("three"),
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("expected %v, got %v", want, spans)
	}
}

func TestTopLevelTextSingleNewlineIsSpace(t *testing.T) {
	spans := topLevelText("one\ntwo", false)

	want := []rootSpan{
		rootText("one"),
		rootText(" "),
		rootText("two"),
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("expected %v, got %v", want, spans)
	}
}

func TestTopLevelTextDropsLeadingBreaksAtStart(t *testing.T) {
	spans := topLevelText("\n\nBody.", true)

	want := []rootSpan{rootText("Body.")}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("expected %v, got %v", want, spans)
	}
}
