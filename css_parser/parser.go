// Package css_parser implements the recursive-descent driver and its
// three specialist sub-parsers (selectors, at-rule preludes,
// declarations) that turn a token stream from css_lexer into a
// css_ast.Arena. The parser never raises: malformed input yields a
// truncated or absent node and the driver resynchronizes at the next
// plausible boundary, per the forgiving-by-contract error model.
package css_parser

import (
	"github.com/projectwallace/css-parser-sub002/css_ast"
	"github.com/projectwallace/css-parser-sub002/css_lexer"
)

type parser struct {
	lex     *css_lexer.Lexer
	arena   *css_ast.Arena
	source  string
	options Options
}

// Parse scans source into a complete Stylesheet. It never fails: on
// malformed input it produces whatever tree could be recovered.
func Parse(source string, options Options) css_ast.Handle {
	p := &parser{
		lex:     css_lexer.New(source, css_lexer.Options{SkipComments: options.SkipComments}),
		arena:   css_ast.NewArena(len(source)),
		source:  source,
		options: options,
	}
	p.lex.Next()

	root := p.arena.CreateNode(css_ast.KindStylesheet, 0, int32(len(source)), 1, 1)
	children := p.parseListOfRules(topLevel)
	p.arena.AppendChildren(root, children)

	return css_ast.Handle{Arena: p.arena, Source: source, Index: root}
}

// ruleContext distinguishes the top level of a stylesheet from a nested
// block. The only difference is how `}` is treated: a nested list ends
// there, while at the top level a stray `}` is skipped.
type ruleContext uint8

const (
	topLevel ruleContext = iota
	nestedBlock
)

func (p *parser) at() css_lexer.Kind { return p.lex.Token.Kind }

func (p *parser) advance() { p.lex.Next() }

func (p *parser) eat(kind css_lexer.Kind) bool {
	if p.at() == kind {
		p.advance()
		return true
	}
	return false
}

// skipTrivia advances past whitespace and comment tokens, neither of
// which ever becomes its own arena node (comments have no AST node kind
// at all; whitespace only survives inside a parsed Value, see parseValueRange).
func (p *parser) skipTrivia() {
	for p.at() == css_lexer.TWhitespace || p.at() == css_lexer.TComment {
		p.advance()
	}
}

// parseListOfRules consumes rules (style rules and at-rules) until `}` or
// EOF, returning the child indices in source order.
func (p *parser) parseListOfRules(context ruleContext) []css_ast.Index {
	var out []css_ast.Index
	for {
		p.skipTrivia()
		switch p.at() {
		case css_lexer.TEOF:
			return out
		case css_lexer.TRightBrace:
			if context == nestedBlock {
				return out
			}
			// Stray "}" at the top level: not structurally meaningful, skip it.
			p.advance()
		case css_lexer.TCDO, css_lexer.TCDC:
			// CDO/CDC are only meaningful (and silently dropped) at the top
			// level of a stylesheet; inside a nested block they're stray
			// delimiters like any other unrecognized token.
			p.advance()
		case css_lexer.TAtKeyword:
			if idx, ok := p.parseAtRule(); ok {
				out = append(out, idx)
			}
		default:
			if idx, ok := p.parseStyleRule(); ok {
				out = append(out, idx)
			} else {
				p.advance()
			}
		}
	}
}

// parseStyleRule parses `<selector-list> { <declarations-and-rules> }`.
// On failure (no `{` found before a resynchronization point) it consumes
// nothing, so the caller can fall back to a different parse attempt from
// the same position.
func (p *parser) parseStyleRule() (css_ast.Index, bool) {
	mark := p.lex.Mark()

	startTok := p.lex.Token
	selectorStart := startTok.Start
	selectorEnd := selectorStart
	line, column := startTok.Line, startTok.Column

	for p.at() != css_lexer.TLeftBrace && p.at() != css_lexer.TEOF && p.at() != css_lexer.TRightBrace && p.at() != css_lexer.TSemicolon {
		selectorEnd = p.lex.Token.End
		p.advance()
	}
	if p.at() != css_lexer.TLeftBrace {
		p.lex.Reset(mark)
		return 0, false
	}

	selStart, selEnd := trimRange(p.source, int(selectorStart), int(selectorEnd))

	var selList css_ast.Index
	if p.options.ParseSelectors {
		selList = p.parseSelectorListRange(selStart, selEnd)
	} else {
		// Selector parsing disabled: emit a bare SelectorList node over the
		// raw trimmed range, with no children (spec §4.7 step 2), same as
		// ParseAtRulePreludes/ParseValues gate their own sub-parsers.
		selLine, selColumn := lineColAt(p.source, selStart)
		selList = p.arena.CreateNode(css_ast.KindSelectorList, int32(selStart), int32(selEnd-selStart), selLine, selColumn)
	}

	p.advance() // consume "{"
	blockStart := p.lex.Token.Start

	children := p.parseListOfDeclarations()

	blockEnd := p.lex.Token.Start // position of "}" (or EOF)
	ruleEnd := blockEnd
	if p.at() == css_lexer.TRightBrace {
		ruleEnd = p.lex.Token.End
		p.advance()
	}

	block := p.arena.CreateNode(css_ast.KindBlock, blockStart, blockEnd-blockStart, startTok.Line, startTok.Column)
	p.arena.AppendChildren(block, children)

	rule := p.arena.CreateNode(css_ast.KindStyleRule, selectorStart, ruleEnd-selectorStart, line, column)
	p.arena.AppendChildren(rule, []css_ast.Index{selList, block})
	return rule, true
}

// parseListOfDeclarations parses the body of a style rule's block:
// declarations, nested style rules (CSS Nesting), and nested at-rules,
// until `}` or EOF.
func (p *parser) parseListOfDeclarations() []css_ast.Index {
	var out []css_ast.Index
	for {
		p.skipTrivia()
		switch p.at() {
		case css_lexer.TEOF, css_lexer.TRightBrace:
			return out
		case css_lexer.TSemicolon:
			p.advance()
		case css_lexer.TAtKeyword:
			if idx, ok := p.parseAtRule(); ok {
				out = append(out, idx)
			}
		default:
			mark := p.lex.Mark()
			if idx, ok := p.parseDeclaration(); ok {
				out = append(out, idx)
				continue
			}
			p.lex.Reset(mark)
			if idx, ok := p.parseStyleRule(); ok {
				out = append(out, idx)
				continue
			}
			p.advance()
		}
	}
}

// lineColAt returns the 1-based line/column of offset within source,
// counting line feeds and form feeds as breaks and treating "\r\n" as a
// single break, matching css_lexer.Lexer's own line/column bookkeeping
// (spec §3.1): column is a byte count since the last break, not a code
// point count, so it agrees with Token.Line/Column for the same offset.
func lineColAt(source string, offset int) (int32, int32) {
	line := int32(1)
	lastBreak := -1
	for i := 0; i < offset && i < len(source); i++ {
		c := source[i]
		if c == '\n' || c == '\f' {
			line++
			lastBreak = i
		} else if c == '\r' {
			if i+1 < len(source) && source[i+1] == '\n' {
				continue
			}
			line++
			lastBreak = i
		}
	}
	return line, int32(offset - lastBreak)
}

// trimRange narrows [start,end) of source to exclude leading/trailing
// whitespace and comments, by tokenizing just that slice once. Used for
// prelude and selector ranges before they're handed to a sub-parser or
// stored as a content/value slice (spec §4.7 step 3: "Trim leading/
// trailing whitespace and comments from the prelude range").
func trimRange(source string, start, end int) (int, int) {
	if start >= end {
		return start, start
	}
	tokens := css_lexer.Tokenize(source[start:end], false)

	trimmedStart, trimmedEnd := end, start
	for _, tok := range tokens {
		if tok.Kind == css_lexer.TWhitespace || tok.Kind == css_lexer.TComment || tok.Kind == css_lexer.TEOF {
			continue
		}
		if s := start + int(tok.Start); s < trimmedStart {
			trimmedStart = s
		}
		if e := start + int(tok.End); e > trimmedEnd {
			trimmedEnd = e
		}
	}
	if trimmedStart > trimmedEnd {
		return start, start
	}
	return trimmedStart, trimmedEnd
}
