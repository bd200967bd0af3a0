package css_parser

import (
	"github.com/projectwallace/css-parser-sub002/css_ast"
	"github.com/projectwallace/css-parser-sub002/css_lexer"
)

// parseAtRule parses one at-rule starting at the current at-keyword token,
// per spec §4.7's at-rule algorithm: extract the name, scan the prelude up
// to "{" or ";" (tracking paren/bracket depth so neither terminator inside
// a parenthesized condition ends the scan early), trim it, optionally
// invoke the prelude sub-parser, then parse the body according to how the
// name classifies.
func (p *parser) parseAtRule() (css_ast.Index, bool) {
	startTok := p.lex.Token
	atStart := startTok.Start
	line, column := startTok.Line, startTok.Column
	nameText := startTok.DecodedText(p.source)
	p.advance()

	preludeStart := p.lex.Token.Start
	preludeEnd := preludeStart
	depth := 0
	for {
		k := p.at()
		if k == css_lexer.TEOF {
			break
		}
		if depth == 0 && (k == css_lexer.TLeftBrace || k == css_lexer.TSemicolon) {
			break
		}
		if k == css_lexer.TLeftParen || k == css_lexer.TLeftBracket {
			depth++
		} else if k == css_lexer.TRightParen || k == css_lexer.TRightBracket {
			if depth > 0 {
				depth--
			}
		}
		preludeEnd = p.lex.Token.End
		p.advance()
	}

	trimmedStart, trimmedEnd := trimRange(p.source, int(preludeStart), int(preludeEnd))

	var children []css_ast.Index
	if p.options.ParseAtRulePreludes && trimmedEnd > trimmedStart {
		// Only materialize an AtRulePrelude child when the sub-parser
		// actually produced something; an unrecognized at-rule name leaves
		// its prelude as raw value_* text on the at-rule itself, per
		// spec §4.5 ("unknown names: emit zero nodes").
		if preludeChildren := p.parseAtRulePreludeChildren(nameText, trimmedStart, trimmedEnd); len(preludeChildren) > 0 {
			preludeLine, preludeColumn := lineColAt(p.source, trimmedStart)
			prelude := p.arena.CreateNode(css_ast.KindAtRulePrelude, int32(trimmedStart), int32(trimmedEnd-trimmedStart), preludeLine, preludeColumn)
			p.arena.AppendChildren(prelude, preludeChildren)
			children = append(children, prelude)
		}
	}

	hasBlock := false
	hasDeclarations := false
	var ruleEnd int32

	switch p.at() {
	case css_lexer.TLeftBrace:
		hasBlock = true
		p.advance()
		blockStart := p.lex.Token.Start
		blockLine, blockColumn := p.lex.Token.Line, p.lex.Token.Column

		var bodyChildren []css_ast.Index
		switch classifyAtRule(nameText) {
		case atRuleDeclarations:
			hasDeclarations = true
			bodyChildren = p.parseAtRuleDeclarationsOnly()
		case atRuleConditional:
			bodyChildren = p.parseListOfDeclarations()
		default: // atRuleRules and atRuleUnknown default to rule-bearing (spec §4.7 step 4, §7).
			bodyChildren = p.parseListOfRules(nestedBlock)
		}

		blockEnd := p.lex.Token.Start
		ruleEnd = blockEnd
		if p.at() == css_lexer.TRightBrace {
			ruleEnd = p.lex.Token.End
			p.advance()
		}

		block := p.arena.CreateNode(css_ast.KindBlock, blockStart, blockEnd-blockStart, blockLine, blockColumn)
		p.arena.AppendChildren(block, bodyChildren)
		children = append(children, block)

	case css_lexer.TSemicolon:
		ruleEnd = p.lex.Token.End
		p.advance()

	default:
		// Malformed: reached EOF with neither a block nor a terminating ";".
		ruleEnd = int32(trimmedEnd)
		if ruleEnd < atStart {
			ruleEnd = atStart
		}
	}

	atRule := p.arena.CreateNode(css_ast.KindAtRule, atStart, ruleEnd-atStart, line, column)
	p.arena.SetContentStartDelta(atRule, 1)
	p.arena.SetContentLength(atRule, (startTok.End-startTok.Start)-1)
	p.arena.SetValueStartDelta(atRule, int32(trimmedStart)-atStart)
	p.arena.SetValueLength(atRule, int32(trimmedEnd-trimmedStart))
	if hasBlock {
		p.arena.SetFlag(atRule, css_ast.FlagHasBlock)
	}
	if hasDeclarations {
		p.arena.SetFlag(atRule, css_ast.FlagHasDeclarations)
	}
	p.arena.AppendChildren(atRule, children)
	return atRule, true
}

// parseAtRuleDeclarationsOnly parses the body of a declaration-bearing
// at-rule (`@font-face`, `@page`, `@property`, ...): declarations and
// nested at-rules (e.g. `@page`'s margin-box sub-rules) only, never nested
// style rules.
func (p *parser) parseAtRuleDeclarationsOnly() []css_ast.Index {
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
			if idx, ok := p.parseDeclaration(); ok {
				out = append(out, idx)
			} else {
				p.advance()
			}
		}
	}
}
