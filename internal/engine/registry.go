package engine

import (
	"fmt"
	"sync"

	"github.com/adaedra/pastex/internal/document"
	"github.com/adaedra/pastex/internal/logging"
	"github.com/adaedra/pastex/internal/syntax"
)

// commandKey indexes a registry by local name and optional namespace.
type commandKey struct {
	name      string
	namespace string
}

func (k commandKey) String() string {
	if k.namespace != "" {
		return fmt.Sprintf("%s:%s", k.namespace, k.name)
	}

	return k.name
}

// inlineHandler produces spans for a command used in inline position.
type inlineHandler func(
	content syntax.Stream,
	params syntax.Params,
	block bool,
) ([]document.Span, error)

// toplevelHandler produces root spans for a command used at the top
// level of a document. It may write metadata.
type toplevelHandler func(
	metadata *document.Metadata,
	content syntax.Stream,
	params syntax.Params,
	block bool,
) ([]rootSpan, error)

// The registries are process-wide and immutable once built. The two
// tables keep different handler shapes on purpose: only top-level
// handlers may touch metadata.
var (
	registerOnce     sync.Once
	inlineCommands   map[commandKey]inlineHandler
	toplevelCommands map[commandKey]toplevelHandler
)

func registries() (map[commandKey]inlineHandler, map[commandKey]toplevelHandler) {
	registerOnce.Do(func() {
		inlineCommands = map[commandKey]inlineHandler{
			{name: "code"}:   inlineCode,
			{name: "strong"}: inlineStrong,
			{name: "link"}:   inlineLink,
			{name: "raw"}:    inlineRaw,
		}

		toplevelCommands = map[commandKey]toplevelHandler{
			{name: "code"}:     toplevelCode,
			{name: "head1"}:    headCommand(1),
			{name: "head2"}:    headCommand(2),
			{name: "head3"}:    headCommand(3),
			{name: "abstract"}: toplevelAbstract,

			{name: "title", namespace: "meta"}: metaCommand(
				"title",
				(*document.Metadata).TitleField,
			),
			{name: "author", namespace: "meta"}: metaCommand(
				"author",
				(*document.Metadata).AuthorField,
			),
			{name: "date", namespace: "meta"}: metaCommand(
				"date",
				(*document.Metadata).DateField,
			),
			{name: "tags", namespace: "meta"}: metaCommand(
				"tags",
				(*document.Metadata).KeywordsField,
			),
			{name: "draft", namespace: "meta"}: metaCommand(
				"draft",
				(*document.Metadata).DraftField,
			),
		}

		for key := range inlineCommands {
			logging.Debugf("registered inline command %s", key)
		}
		for key := range toplevelCommands {
			logging.Debugf("registered top-level command %s", key)
		}
	})

	return inlineCommands, toplevelCommands
}

// runToplevel dispatches a command seen at the top level: top-level
// registry first, inline registry as fallback, visible placeholder for
// anything unknown.
func runToplevel(
	metadata *document.Metadata,
	cmd *syntax.Command,
) ([]rootSpan, error) {
	inline, toplevel := registries()
	key := commandKey{name: cmd.Name, namespace: cmd.Namespace}

	if handler, ok := toplevel[key]; ok {
		return handler(metadata, cmd.Content, cmd.Params, cmd.Block)
	}

	if handler, ok := inline[key]; ok {
		spans, err := handler(cmd.Content, cmd.Params, cmd.Block)
		if err != nil {
			return nil, err
		}

		return liftSpans(spans), nil
	}

	logging.Warnf("unknown command: %s", cmd.CommandName())

	placeholder := document.Text(
		fmt.Sprintf("[[unknown command %s]]", cmd.CommandName()),
	)
	if cmd.Block {
		return []rootSpan{rootBlock{block: document.Block{
			Format: document.Paragraph,
			Spans:  []document.Span{placeholder},
		}}}, nil
	}

	return []rootSpan{liftSpan(placeholder)}, nil
}

// runInline dispatches a command seen in inline position.
func runInline(cmd *syntax.Command) ([]document.Span, error) {
	inline, _ := registries()
	key := commandKey{name: cmd.Name, namespace: cmd.Namespace}

	if handler, ok := inline[key]; ok {
		return handler(cmd.Content, cmd.Params, cmd.Block)
	}

	logging.Warnf("unknown command: %s", cmd.CommandName())

	return []document.Span{document.Text(
		fmt.Sprintf("[[unknown command %s]]", cmd.CommandName()),
	)}, nil
}
