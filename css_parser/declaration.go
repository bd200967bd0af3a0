package css_parser

import (
	"strings"

	"github.com/projectwallace/css-parser-sub002/css_ast"
	"github.com/projectwallace/css-parser-sub002/css_lexer"
)

// hackPrefixChars are the single-character "browser hack" prefixes that
// may precede a property name (e.g. the IE6/7 `*zoom: 1` and `_width: 1`
// hacks). `*` and `$` lex as a lone TDelim; `_` is a name-start character,
// so `_width` already lexes as a single identifier and needs no prefix step.
const hackPrefixChars = "_*$"

// selectorStartDelims are delimiters that always mean "this is the start
// of a nested style rule's selector, not a declaration" (spec §4.6 step
// 1) even though some of them could otherwise be mistaken for a hack
// prefix or a value token.
const selectorStartDelims = ".>+~&"

// ParseDeclaration parses a standalone declaration, per spec §6.1's
// `parse_declaration(text)` entry point. Returns the zero Handle if text
// does not start a valid declaration.
func ParseDeclaration(text string) css_ast.Handle {
	p := &parser{
		lex:     css_lexer.New(text, css_lexer.Options{SkipComments: true}),
		arena:   css_ast.NewArena(len(text)),
		source:  text,
		options: DefaultOptions(),
	}
	p.lex.Next()
	idx, ok := p.parseDeclaration()
	if !ok {
		return css_ast.Handle{}
	}
	return css_ast.Handle{Arena: p.arena, Source: text, Index: idx}
}

// parseDeclaration attempts to parse a single declaration at the current
// position. On failure it rewinds to where it started and returns false,
// per spec §9's Open Question resolution: the declaration parser owns
// the rewind-on-missing-colon behavior.
func (p *parser) parseDeclaration() (css_ast.Index, bool) {
	mark := p.lex.Mark()
	declStart := p.lex.Token.Start
	line, column := p.lex.Token.Line, p.lex.Token.Column

	if p.at() == css_lexer.TDelim {
		c := p.lex.Token.Text(p.source)
		if strings.ContainsAny(c, selectorStartDelims) {
			return 0, false
		}
		if strings.ContainsAny(c, hackPrefixChars) {
			p.advance()
		} else {
			return 0, false
		}
	}

	if p.at() != css_lexer.TIdent && p.at() != css_lexer.TAtKeyword {
		p.lex.Reset(mark)
		return 0, false
	}
	nameTok := p.lex.Token
	name := nameTok.DecodedText(p.source)
	p.advance()

	p.skipTrivia()
	if !p.eat(css_lexer.TColon) {
		p.lex.Reset(mark)
		return 0, false
	}
	p.skipTrivia()

	valueStart := p.lex.Token.Start
	depth := 0
stop:
	for {
		switch p.at() {
		case css_lexer.TEOF, css_lexer.TSemicolon:
			break stop
		case css_lexer.TRightBrace:
			if depth == 0 {
				break stop
			}
			depth--
			p.advance()
		case css_lexer.TLeftBrace:
			// An unbalanced "{" inside a value is a parse error that ends
			// the value without consuming it (spec §4.6 step 4).
			break stop
		case css_lexer.TLeftParen, css_lexer.TLeftBracket:
			depth++
			p.advance()
		case css_lexer.TRightParen, css_lexer.TRightBracket:
			if depth > 0 {
				depth--
			}
			p.advance()
		default:
			p.advance()
		}
	}
	valueEnd := p.lex.Token.Start

	important := false
	preImportantEnd := int(valueEnd)
	if _, e, ok := trimTrailingImportant(p.source, int(valueStart), int(valueEnd)); ok {
		important = true
		preImportantEnd = e
	}
	trimmedStartI, trimmedEndI := trimRange(p.source, int(valueStart), preImportantEnd)
	trimmedStart, trimmedEnd := int32(trimmedStartI), int32(trimmedEndI)

	declEnd := valueEnd
	if p.at() == css_lexer.TSemicolon {
		declEnd = p.lex.Token.End
	}

	decl := p.arena.CreateNode(css_ast.KindDeclaration, declStart, declEnd-declStart, line, column)
	p.arena.SetContentStartDelta(decl, nameTok.Start-declStart)
	p.arena.SetContentLength(decl, nameTok.End-nameTok.Start)
	p.arena.SetValueStartDelta(decl, trimmedStart-declStart)
	p.arena.SetValueLength(decl, trimmedEnd-trimmedStart)

	if strings.HasPrefix(name, "--") {
		p.arena.SetFlag(decl, css_ast.FlagCustomProperty)
	} else if isVendorPrefixedName(name) {
		p.arena.SetFlag(decl, css_ast.FlagVendorPrefix)
	}
	if important {
		p.arena.SetFlag(decl, css_ast.FlagImportant)
	}

	if p.options.ParseValues && trimmedEnd > trimmedStart {
		valueNode := p.parseValueRange(int(trimmedStart), int(trimmedEnd))
		p.arena.AppendChildren(decl, []css_ast.Index{valueNode})
	}

	return decl, true
}

// isVendorPrefixedName reports whether name looks like "-vendor-rest",
// e.g. "-webkit-transform". Custom properties ("--x") are excluded: they
// are flagged separately.
func isVendorPrefixedName(name string) bool {
	if !strings.HasPrefix(name, "-") || strings.HasPrefix(name, "--") {
		return false
	}
	rest := name[1:]
	i := strings.IndexByte(rest, '-')
	return i > 0
}

// trimTrailingImportant looks for a trailing `!important` (case
// insensitive) within [start,end) of source and, if found, returns the
// range with it (and the whitespace/"!" around it) removed.
func trimTrailingImportant(source string, start, end int) (int, int, bool) {
	tokens := css_lexer.Tokenize(source[start:end], false)
	// Drop trailing whitespace/comments.
	i := len(tokens) - 1
	for i >= 0 && (tokens[i].Kind == css_lexer.TWhitespace || tokens[i].Kind == css_lexer.TComment || tokens[i].Kind == css_lexer.TEOF) {
		i--
	}
	if i < 0 || tokens[i].Kind != css_lexer.TIdent || !strings.EqualFold(tokens[i].DecodedText(source[start:end]), "important") {
		return start, end, false
	}
	i--
	for i >= 0 && (tokens[i].Kind == css_lexer.TWhitespace || tokens[i].Kind == css_lexer.TComment) {
		i--
	}
	if i < 0 || tokens[i].Kind != css_lexer.TDelim || tokens[i].Text(source[start:end]) != "!" {
		return start, end, false
	}
	newEnd := start + int(tokens[i].Start)
	return start, newEnd, true
}
