package syntax

import (
	"unicode"
	"unicode/utf8"

	"github.com/adaedra/pastex/internal/pastexerrs"
)

const (
	commandChar   = '\\'
	namespaceChar = ':'
	contentOpen   = '{'
	contentClose  = '}'
	paramsOpen    = '['
	paramsClose   = ']'
	paramsSep     = ','
	paramAssign   = '='
	commentChar   = '%'
	lineBreakChar = '\n'

	blockStartName = "begin"
	blockEndName   = "end"
)

const eof = rune(0)

// parser holds the state of the scan over a single input buffer.
type parser struct {
	input string // the string being scanned
	pos   int    // current position in the input
	width int    // width of last rune read from input
}

// Parse reads a whole pastex document from input and returns its stream.
// Returned Raw and Comment elements are slices of the input buffer.
func Parse(input string) (Stream, error) {
	p := &parser{input: input}

	stream, err := p.stream(nil)
	if err != nil {
		return nil, err
	}

	if p.pos < len(p.input) {
		return nil, &pastexerrs.ExtraTrailingError{Offset: p.pos}
	}

	return stream, nil
}

// next returns the next rune in the input.
func (p *parser) next() rune {
	if p.pos >= len(p.input) {
		p.width = 0
		return eof
	}

	r, w := utf8.DecodeRuneInString(p.input[p.pos:])
	p.width = w
	p.pos += p.width

	return r
}

// peek returns the next rune in the input without consuming it.
func (p *parser) peek() rune {
	r := p.next()
	p.backup()

	return r
}

// backup steps back one rune. Can only be called once per call of next.
func (p *parser) backup() {
	p.pos -= p.width
}

// accept consumes the next rune if it equals r.
func (p *parser) accept(r rune) bool {
	if p.next() == r {
		return true
	}
	p.backup()

	return false
}

// ident reads one or more alphanumeric runes. Returns "" when the next
// rune does not start an identifier.
func (p *parser) ident() string {
	start := p.pos

	for {
		r := p.next()
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			continue
		}
		p.backup()

		break
	}

	return p.input[start:p.pos]
}

// whitespace skips any run of whitespace.
func (p *parser) whitespace() {
	for unicode.IsSpace(p.peek()) {
		p.next()
	}
}

// takeUntil reads up to, but not including, the next occurrence of r or
// the end of input.
func (p *parser) takeUntil(r rune) string {
	start := p.pos

	for {
		c := p.next()
		if c == eof {
			break
		}
		if c == r {
			p.backup()
			break
		}
	}

	return p.input[start:p.pos]
}

// rawRun reads the longest run of text free of structural characters.
func (p *parser) rawRun() string {
	start := p.pos

	for {
		switch p.next() {
		case eof:
			return p.input[start:p.pos]
		case commandChar, contentOpen, contentClose, commentChar:
			p.backup()
			return p.input[start:p.pos]
		}
	}
}

type commandKind int

const (
	cmdNormal commandKind = iota
	cmdStart
	cmdEnd
	cmdEscape
	cmdLineBreak
)

// commandToken classifies what follows a command sigil.
type commandToken struct {
	kind commandKind
	raw  Raw      // for escapes
	cmd  *Command // for command forms
}

// stream is the shared parsing loop for the top level and for command
// content. It stops on the closing brace of the enclosing content (the
// brace is left in the input to be consumed by the parent, so mismatched
// braces diagnose at the right level) or at end of input. ctx carries
// the name of the open begin block, nil outside of any block. Bare brace
// pairs in text are tracked so that command content stays balanced.
func (p *parser) stream(ctx *CommandName) (Stream, error) {
	var res Stream
	depth := 0

	for {
		r := p.peek()

		if r == eof {
			if ctx != nil {
				return nil, &pastexerrs.UnclosedBlockError{
					Name: ctx.String(),
				}
			}

			return res, nil
		}

		switch r {
		case contentClose:
			if depth > 0 {
				p.next()
				depth--
				res = append(res, Raw("}"))

				continue
			}

			return res, nil
		case contentOpen:
			p.next()
			depth++
			res = append(res, Raw("{"))
		case commentChar:
			p.next()
			res = append(res, Comment(p.takeUntil(lineBreakChar)))
		case commandChar:
			p.next()

			tok, err := p.command()
			if err != nil {
				return nil, err
			}

			switch tok.kind {
			case cmdEscape:
				res = append(res, tok.raw)
			case cmdLineBreak:
				res = append(res, LineBreak{})
			case cmdNormal:
				res = append(res, tok.cmd)
			case cmdStart:
				name := tok.cmd.CommandName()

				content, err := p.stream(&name)
				if err != nil {
					return nil, err
				}

				tok.cmd.Content = content
				tok.cmd.Block = true
				res = append(res, tok.cmd)
			case cmdEnd:
				name := tok.cmd.CommandName()
				if ctx == nil {
					return nil, &pastexerrs.MismatchedBlockError{
						Close: name.String(),
					}
				}
				if *ctx != name {
					return nil, &pastexerrs.MismatchedBlockError{
						Open:  ctx.String(),
						Close: name.String(),
					}
				}

				// The end command closes this level; the caller resumes
				// right after it.
				return res, nil
			}
		default:
			res = append(res, Raw(p.rawRun()))
		}
	}
}

// command reads a command call, with the sigil already consumed.
func (p *parser) command() (commandToken, error) {
	sigil := p.pos - 1

	switch p.peek() {
	case contentOpen, contentClose, commandChar, commentChar:
		r := p.next()
		return commandToken{kind: cmdEscape, raw: Raw(string(r))}, nil
	case lineBreakChar:
		p.next()
		return commandToken{kind: cmdLineBreak}, nil
	}

	name, err := p.commandName(sigil)
	if err != nil {
		return commandToken{}, err
	}

	params := Params{}
	if p.accept(paramsOpen) {
		params, err = p.params()
		if err != nil {
			return commandToken{}, err
		}
	}

	if name.Namespace == "" &&
		(name.Local == blockStartName || name.Local == blockEndName) {
		return p.blockCommand(name.Local, params)
	}

	cmd := &Command{
		Name:      name.Local,
		Namespace: name.Namespace,
		Params:    params,
	}

	if p.accept(contentOpen) {
		content, err := p.stream(nil)
		if err != nil {
			return commandToken{}, err
		}

		if !p.accept(contentClose) {
			return commandToken{}, &pastexerrs.UnclosedBlockError{
				Name: cmd.CommandName().String(),
			}
		}

		cmd.Content = content
	}

	return commandToken{kind: cmdNormal, cmd: cmd}, nil
}

// blockCommand reads the {name} argument of a begin or end command.
// Content for begin is filled in later by the stream loop; end never
// carries content.
func (p *parser) blockCommand(
	form string,
	params Params,
) (commandToken, error) {
	if !p.accept(contentOpen) {
		return commandToken{}, &pastexerrs.MalformedCommandError{
			Offset: p.pos,
		}
	}

	name, err := p.commandName(p.pos)
	if err != nil {
		return commandToken{}, err
	}

	if !p.accept(contentClose) {
		return commandToken{}, &pastexerrs.MalformedCommandError{
			Offset: p.pos,
		}
	}

	kind := cmdStart
	if form == blockEndName {
		kind = cmdEnd
	}

	return commandToken{
		kind: kind,
		cmd: &Command{
			Name:      name.Local,
			Namespace: name.Namespace,
			Params:    params,
		},
	}, nil
}

// commandName reads ident(":"ident)?, resolving the namespace.
func (p *parser) commandName(at int) (CommandName, error) {
	name := p.ident()
	if name == "" {
		return CommandName{}, &pastexerrs.MalformedCommandError{Offset: at}
	}

	if p.accept(namespaceChar) {
		local := p.ident()
		if local == "" {
			return CommandName{}, &pastexerrs.MalformedCommandError{
				Offset: at,
			}
		}

		return CommandName{Local: local, Namespace: name}, nil
	}

	return CommandName{Local: name}, nil
}

// params reads the bracketed parameter list, with the opening bracket
// already consumed. Values are stored as read; the parser never
// interprets them.
func (p *parser) params() (Params, error) {
	params := Params{}

	for {
		p.whitespace()

		if p.accept(paramsClose) {
			return params, nil
		}

		if p.peek() == eof {
			return nil, &pastexerrs.MalformedCommandError{Offset: p.pos}
		}

		name := p.ident()
		if name == "" {
			return nil, &pastexerrs.MalformedCommandError{Offset: p.pos}
		}

		var value ParamValue = NoValue{}

		p.whitespace()
		if p.accept(paramAssign) {
			p.whitespace()

			var err error

			value, err = p.paramValue()
			if err != nil {
				return nil, err
			}
		}

		params[name] = value

		p.whitespace()
		p.accept(paramsSep)
	}
}

// paramValue reads a bareword or { stream } parameter value.
func (p *parser) paramValue() (ParamValue, error) {
	if p.accept(contentOpen) {
		inner, err := p.stream(nil)
		if err != nil {
			return nil, err
		}

		if !p.accept(contentClose) {
			return nil, &pastexerrs.MalformedCommandError{Offset: p.pos}
		}

		return StreamValue(inner), nil
	}

	start := p.pos

	for {
		r := p.next()
		if r == eof {
			break
		}
		if r == paramsSep || r == paramsClose || unicode.IsSpace(r) {
			p.backup()
			break
		}
	}

	word := p.input[start:p.pos]
	if word == "" {
		return nil, &pastexerrs.MalformedCommandError{Offset: p.pos}
	}

	return TextValue(word), nil
}
