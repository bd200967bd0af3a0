package css_parser

import (
	"github.com/projectwallace/css-parser-sub002/css_ast"
	"github.com/projectwallace/css-parser-sub002/css_lexer"
)

// parseValueRange tokenizes [start,end) of p.source into a Value node per
// spec §4.6 step 6: Identifier, Number, Dimension, Percentage, String,
// HexColor, Url, Function, Parentheses, Brackets, Operator, and preserved
// Whitespace between significant tokens.
func (p *parser) parseValueRange(start, end int) css_ast.Index {
	line, column := lineColAt(p.source, start)
	node := p.arena.CreateNode(css_ast.KindValue, int32(start), int32(end-start), line, column)

	vp := &valueParser{p: p, base: int32(start), toks: css_lexer.Tokenize(p.source[start:end], false)}
	children := vp.parseUntil(0)
	p.arena.AppendChildren(node, children)
	return node
}

// ParseValue parses a standalone declaration value, per spec §6.1's
// `parse_value(text)` entry point.
func ParseValue(text string) css_ast.Handle {
	p := &parser{arena: css_ast.NewArena(len(text)), source: text}
	idx := p.parseValueRange(0, len(text))
	return css_ast.Handle{Arena: p.arena, Source: text, Index: idx}
}

// valueParser walks a flat token slice (already bounded to one value range,
// or the interior of one function/parentheses/brackets node) and builds
// Value-tree children, recursing into nested grouping tokens.
type valueParser struct {
	p    *parser
	base int32 // absolute source offset of toks[0]
	toks []css_lexer.Token
	i    int

	// preludeMode is set when this walker is reused to decompose an
	// at-rule prelude (spec §4.5) rather than a declaration value: preludes
	// use ":" inside feature queries (e.g. "(min-width: 768px)") the way
	// declaration values use "/"/"+"/"-"/",", so ":" is treated as an
	// Operator only in this mode.
	preludeMode bool
}

func (vp *valueParser) peek() css_lexer.Token {
	if vp.i < len(vp.toks) {
		return vp.toks[vp.i]
	}
	return css_lexer.Token{Kind: css_lexer.TEOF}
}

func (vp *valueParser) advance() css_lexer.Token {
	t := vp.peek()
	if vp.i < len(vp.toks) {
		vp.i++
	}
	return t
}

// abs converts a token's range (relative to vp.toks' own substring) into an
// absolute offset into p.source.
func (vp *valueParser) abs(off int32) int32 { return vp.base + off }

// closeKind, when non-zero, is the token kind that ends this nesting level;
// it is consumed (not re-emitted as a child) when reached.
func (vp *valueParser) parseUntil(closeKind css_lexer.Kind) []css_ast.Index {
	var out []css_ast.Index
	for {
		tok := vp.peek()
		switch tok.Kind {
		case css_lexer.TEOF:
			return out
		case css_lexer.TComment:
			vp.advance()
		case closeKind:
			if closeKind != 0 {
				vp.advance()
				return out
			}
			// closeKind == 0 means "top level"; an unmatched close token is
			// a stray leftover from unbalanced input. Skip it and continue.
			vp.advance()
		default:
			if idx, ok := vp.parseOne(); ok {
				out = append(out, idx)
			}
		}
	}
}

func (vp *valueParser) parseOne() (css_ast.Index, bool) {
	tok := vp.advance()
	start := vp.abs(tok.Start)
	length := tok.End - tok.Start
	line, column := lineColAt(vp.p.source, int(start))

	switch tok.Kind {
	case css_lexer.TWhitespace:
		return vp.p.arena.CreateNode(css_ast.KindWhitespace, start, length, line, column), true

	case css_lexer.TIdent:
		return vp.p.arena.CreateNode(css_ast.KindIdentifier, start, length, line, column), true

	case css_lexer.TNumber:
		return vp.p.arena.CreateNode(css_ast.KindNumber, start, length, line, column), true

	case css_lexer.TDimension:
		return vp.p.arena.CreateNode(css_ast.KindDimension, start, length, line, column), true

	case css_lexer.TPercentage:
		return vp.p.arena.CreateNode(css_ast.KindPercentage, start, length, line, column), true

	case css_lexer.TString, css_lexer.TBadString:
		return vp.p.arena.CreateNode(css_ast.KindString, start, length, line, column), true

	case css_lexer.TURL, css_lexer.TBadURL:
		return vp.p.arena.CreateNode(css_ast.KindUrl, start, length, line, column), true

	case css_lexer.THash:
		name := tok.DecodedText(vp.sourceSlice())
		if isHexColorName(name) {
			return vp.p.arena.CreateNode(css_ast.KindHexColor, start, length, line, column), true
		}
		return vp.p.arena.CreateNode(css_ast.KindIdentifier, start, length, line, column), true

	case css_lexer.TComma:
		return vp.p.arena.CreateNode(css_ast.KindOperator, start, length, line, column), true

	case css_lexer.TDelim:
		return vp.p.arena.CreateNode(css_ast.KindOperator, start, length, line, column), true

	case css_lexer.TColon:
		if vp.preludeMode {
			return vp.p.arena.CreateNode(css_ast.KindOperator, start, length, line, column), true
		}
		return 0, false

	case css_lexer.TFunction:
		fn := vp.p.arena.CreateNode(css_ast.KindFunction, start, 0, line, column)
		nameText := tok.DecodedText(vp.sourceSlice())
		vp.p.arena.SetContentStartDelta(fn, 0)
		vp.p.arena.SetContentLength(fn, int32(len(nameText)))
		children := vp.parseUntil(css_lexer.TRightParen)
		vp.p.arena.AppendChildren(fn, children)
		vp.closeSpan(fn, start)
		return fn, true

	case css_lexer.TLeftParen:
		paren := vp.p.arena.CreateNode(css_ast.KindParentheses, start, 0, line, column)
		children := vp.parseUntil(css_lexer.TRightParen)
		vp.p.arena.AppendChildren(paren, children)
		vp.closeSpan(paren, start)
		return paren, true

	case css_lexer.TLeftBracket:
		brackets := vp.p.arena.CreateNode(css_ast.KindBrackets, start, 0, line, column)
		children := vp.parseUntil(css_lexer.TRightBracket)
		vp.p.arena.AppendChildren(brackets, children)
		vp.closeSpan(brackets, start)
		return brackets, true

	default:
		// Unexpected structural token (colon, brace, at-keyword, CDO/CDC,
		// stray close bracket) inside a value: drop it and continue, per
		// the forgiving-by-contract recovery model.
		return 0, false
	}
}

// closeSpan fixes up a grouping node's length now that its end (the closing
// token, or wherever scanning stopped) is known.
func (vp *valueParser) closeSpan(node css_ast.Index, start int32) {
	var end int32
	if vp.i > 0 {
		end = vp.abs(vp.toks[vp.i-1].End)
	} else {
		end = start
	}
	vp.p.arena.SetLength(node, end-start)
}

// sourceSlice returns the substring vp.toks was tokenized from, so token
// offsets (relative to it) line up with DecodedText's expectations.
func (vp *valueParser) sourceSlice() string {
	return vp.p.source[vp.base:]
}

// isHexColorName reports whether name (a hash token's text without the
// leading "#") is a valid hex-color length (3, 4, 6, or 8) made entirely of
// hex digits.
func isHexColorName(name string) bool {
	switch len(name) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for i := 0; i < len(name); i++ {
		if !isHexDigit(name[i]) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
