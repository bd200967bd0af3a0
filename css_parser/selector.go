package css_parser

import (
	"github.com/projectwallace/css-parser-sub002/css_ast"
	"github.com/projectwallace/css-parser-sub002/css_lexer"
)

// legacyPseudoElements are the single-colon spellings CSS2.1 allows for
// what CSS3 otherwise requires "::" for (SPEC_FULL.md §C.5).
var legacyPseudoElements = map[string]bool{
	"before":       true,
	"after":        true,
	"first-line":   true,
	"first-letter": true,
}

// parseSelectorListRange parses [start,end) of p.source into a SelectorList
// node per spec §4.4: a fresh lexer seeded at start, comments skipped, a
// comma-separated sequence of complex selectors each built from simple
// selectors and combinators in source order.
func (p *parser) parseSelectorListRange(start, end int) css_ast.Index {
	line, column := lineColAt(p.source, start)
	list := p.arena.CreateNode(css_ast.KindSelectorList, int32(start), int32(end-start), line, column)

	sp := &selectorParser{p: p, base: int32(start), toks: css_lexer.Tokenize(p.source[start:end], true)}
	children := sp.parseList()
	p.arena.AppendChildren(list, children)
	return list
}

// ParseSelectorList parses a standalone selector list, per spec §6.1's
// `parse_selector(text)` entry point.
func ParseSelectorList(text string) css_ast.Handle {
	p := &parser{arena: css_ast.NewArena(len(text)), source: text}
	idx := p.parseSelectorListRange(0, len(text))
	return css_ast.Handle{Arena: p.arena, Source: text, Index: idx}
}

type selectorParser struct {
	p    *parser
	base int32
	toks []css_lexer.Token
	i    int
}

func (sp *selectorParser) peek() css_lexer.Token {
	if sp.i < len(sp.toks) {
		return sp.toks[sp.i]
	}
	return css_lexer.Token{Kind: css_lexer.TEOF}
}

func (sp *selectorParser) peekAt(j int) css_lexer.Token {
	if j < len(sp.toks) {
		return sp.toks[j]
	}
	return css_lexer.Token{Kind: css_lexer.TEOF}
}

func (sp *selectorParser) advance() css_lexer.Token {
	t := sp.peek()
	if sp.i < len(sp.toks) {
		sp.i++
	}
	return t
}

func (sp *selectorParser) abs(off int32) int32  { return sp.base + off }
func (sp *selectorParser) sourceSlice() string  { return sp.p.source[sp.base:] }

// lastConsumedEnd returns the absolute end of the most recently advanced
// token, or fallback if nothing has been consumed yet.
func (sp *selectorParser) lastConsumedEnd(fallback int32) int32 {
	if sp.i == 0 {
		return fallback
	}
	return sp.abs(sp.toks[sp.i-1].End)
}

func (sp *selectorParser) parseList() []css_ast.Index {
	var out []css_ast.Index
	for {
		for sp.peek().Kind == css_lexer.TWhitespace {
			sp.advance()
		}
		if sp.peek().Kind == css_lexer.TEOF {
			return out
		}
		out = append(out, sp.parseSelector())
		for sp.peek().Kind == css_lexer.TWhitespace {
			sp.advance()
		}
		if sp.peek().Kind == css_lexer.TComma {
			sp.advance()
			continue
		}
		return out
	}
}

// isExplicitCombinatorDelim reports whether tok starts one of ">", "+",
// "~", or "||" (column combinator; two adjacent "|" delimiters — a single
// "|" is the namespace separator, not a combinator).
func (sp *selectorParser) isExplicitCombinatorDelim(tok css_lexer.Token) bool {
	if tok.Kind != css_lexer.TDelim {
		return false
	}
	switch tok.Text(sp.sourceSlice()) {
	case ">", "+", "~":
		return true
	case "|":
		nt := sp.peekAt(sp.i + 1)
		return nt.Kind == css_lexer.TDelim && nt.Text(sp.sourceSlice()) == "|" && nt.Start == tok.End
	}
	return false
}

// consumeExplicitCombinatorSymbol advances past the combinator symbol
// itself (one token, or two for "||") and returns its absolute end.
func (sp *selectorParser) consumeExplicitCombinatorSymbol() int32 {
	tok := sp.advance()
	if tok.Text(sp.sourceSlice()) == "|" {
		// The adjacent second "|" was already confirmed by the caller.
		second := sp.advance()
		return sp.abs(second.End)
	}
	return sp.abs(tok.End)
}

// parseSelector parses one complex selector: compound selectors (runs of
// simple selectors) separated by combinators, up to the next "," or the
// end of the range.
func (sp *selectorParser) parseSelector() css_ast.Index {
	startAbs := sp.abs(sp.peek().Start)
	line, column := lineColAt(sp.p.source, int(startAbs))
	sel := sp.p.arena.CreateNode(css_ast.KindSelector, startAbs, 0, line, column)

	var children []css_ast.Index
	haveCompound := false

	for {
		tok := sp.peek()
		switch {
		case tok.Kind == css_lexer.TEOF || tok.Kind == css_lexer.TComma:
			goto done

		case tok.Kind == css_lexer.TWhitespace:
			wsStart := sp.abs(tok.Start)
			for sp.peek().Kind == css_lexer.TWhitespace {
				sp.advance()
			}
			nt := sp.peek()
			if nt.Kind == css_lexer.TEOF || nt.Kind == css_lexer.TComma {
				// Trailing whitespace before the end of this selector: not a
				// combinator, nothing follows it.
				goto done
			}
			if !haveCompound {
				// Leading whitespace with nothing preceding: not a combinator.
				continue
			}
			wLine, wCol := lineColAt(sp.p.source, int(wsStart))
			if sp.isExplicitCombinatorDelim(nt) {
				sp.consumeExplicitCombinatorSymbol()
				for sp.peek().Kind == css_lexer.TWhitespace {
					sp.advance()
				}
			}
			end := sp.lastConsumedEnd(wsStart)
			comb := sp.p.arena.CreateNode(css_ast.KindCombinator, wsStart, end-wsStart, wLine, wCol)
			children = append(children, comb)
			haveCompound = false

		case sp.isExplicitCombinatorDelim(tok):
			cStart := sp.abs(tok.Start)
			cLine, cCol := lineColAt(sp.p.source, int(cStart))
			sp.consumeExplicitCombinatorSymbol()
			for sp.peek().Kind == css_lexer.TWhitespace {
				sp.advance()
			}
			end := sp.lastConsumedEnd(cStart)
			comb := sp.p.arena.CreateNode(css_ast.KindCombinator, cStart, end-cStart, cLine, cCol)
			children = append(children, comb)
			haveCompound = false

		default:
			if idx, ok := sp.parseSimpleSelector(); ok {
				children = append(children, idx)
				haveCompound = true
			} else if sp.i < len(sp.toks) {
				sp.advance()
			} else {
				goto done
			}
		}
	}

done:
	sp.p.arena.AppendChildren(sel, children)
	end := startAbs
	if len(children) > 0 {
		last := children[len(children)-1]
		end = sp.p.arena.Start(last) + sp.p.arena.Length(last)
	}
	sp.p.arena.SetLength(sel, end-startAbs)
	return sel
}

func (sp *selectorParser) node(kind css_ast.NodeKind, startAbs, endAbs int32) css_ast.Index {
	line, column := lineColAt(sp.p.source, int(startAbs))
	return sp.p.arena.CreateNode(kind, startAbs, endAbs-startAbs, line, column)
}

// parseSimpleSelector parses one simple selector (type, universal, class,
// id, attribute, pseudo-class, pseudo-element, or nesting). On an
// unrecognized token it returns false without consuming, so the caller can
// apply its own recovery (skip one token and continue). A malformed
// attribute or pseudo selector returns false after consuming what it
// scanned.
func (sp *selectorParser) parseSimpleSelector() (css_ast.Index, bool) {
	tok := sp.peek()
	switch tok.Kind {
	case css_lexer.TIdent:
		sp.advance()
		return sp.node(css_ast.KindTypeSelector, sp.abs(tok.Start), sp.abs(tok.End)), true

	case css_lexer.THash:
		sp.advance()
		idx := sp.node(css_ast.KindIdSelector, sp.abs(tok.Start), sp.abs(tok.End))
		name := tok.DecodedText(sp.sourceSlice())
		sp.p.arena.SetContentStartDelta(idx, 1)
		sp.p.arena.SetContentLength(idx, int32(len(name)))
		return idx, true

	case css_lexer.TLeftBracket:
		return sp.parseAttributeSelector()

	case css_lexer.TColon:
		return sp.parsePseudo()

	case css_lexer.TDelim:
		switch tok.Text(sp.sourceSlice()) {
		case "*":
			sp.advance()
			return sp.node(css_ast.KindTypeSelector, sp.abs(tok.Start), sp.abs(tok.End)), true

		case "&":
			sp.advance()
			return sp.node(css_ast.KindNestingSelector, sp.abs(tok.Start), sp.abs(tok.End)), true

		case ".":
			nameTok := sp.peekAt(sp.i + 1)
			if nameTok.Kind != css_lexer.TIdent || nameTok.Start != tok.End {
				return 0, false
			}
			sp.advance()
			sp.advance()
			idx := sp.node(css_ast.KindClassSelector, sp.abs(tok.Start), sp.abs(nameTok.End))
			name := nameTok.DecodedText(sp.sourceSlice())
			sp.p.arena.SetContentStartDelta(idx, 1)
			sp.p.arena.SetContentLength(idx, int32(len(name)))
			return idx, true
		}
	}
	return 0, false
}

// parseAttributeSelector parses `[ name (op value)? (i|s)? ]`. When the
// attribute name is missing it consumes through the next "]" (or end of
// range) and returns false, dropping the construct per the forgiving error
// model. Any other malformed attribute still yields a node spanning what
// was recognized, ending at "]" when that follows.
func (sp *selectorParser) parseAttributeSelector() (css_ast.Index, bool) {
	open := sp.advance() // "["
	startAbs := sp.abs(open.Start)

	for sp.peek().Kind == css_lexer.TWhitespace {
		sp.advance()
	}
	nameTok := sp.peek()
	if nameTok.Kind != css_lexer.TIdent {
		sp.skipToRightBracket()
		return 0, false
	}
	sp.advance()
	name := nameTok.DecodedText(sp.sourceSlice())

	for sp.peek().Kind == css_lexer.TWhitespace {
		sp.advance()
	}

	op := css_ast.AttrOperatorNone
	if t := sp.peek(); t.Kind == css_lexer.TDelim {
		c := t.Text(sp.sourceSlice())
		switch c {
		case "=":
			op = css_ast.AttrOperatorEquals
			sp.advance()
		case "~", "|", "^", "$", "*":
			nt := sp.peekAt(sp.i + 1)
			if nt.Kind == css_lexer.TDelim && nt.Text(sp.sourceSlice()) == "=" && nt.Start == t.End {
				switch c {
				case "~":
					op = css_ast.AttrOperatorIncludes
				case "|":
					op = css_ast.AttrOperatorDashMatch
				case "^":
					op = css_ast.AttrOperatorPrefixMatch
				case "$":
					op = css_ast.AttrOperatorSuffixMatch
				case "*":
					op = css_ast.AttrOperatorSubstring
				}
				sp.advance()
				sp.advance()
			}
		}
	}

	if op != css_ast.AttrOperatorNone {
		for sp.peek().Kind == css_lexer.TWhitespace {
			sp.advance()
		}
		if t := sp.peek(); t.Kind == css_lexer.TString || t.Kind == css_lexer.TIdent {
			sp.advance()
		}
	}

	for sp.peek().Kind == css_lexer.TWhitespace {
		sp.advance()
	}

	attrCase := css_ast.AttrCaseNone
	if t := sp.peek(); t.Kind == css_lexer.TIdent {
		switch t.DecodedText(sp.sourceSlice()) {
		case "i", "I":
			attrCase = css_ast.AttrCaseInsensitive
			sp.advance()
		case "s", "S":
			attrCase = css_ast.AttrCaseSensitive
			sp.advance()
		}
	}

	for sp.peek().Kind == css_lexer.TWhitespace {
		sp.advance()
	}

	endAbs := sp.lastConsumedEnd(startAbs)
	if sp.peek().Kind == css_lexer.TRightBracket {
		close := sp.advance()
		endAbs = sp.abs(close.End)
	}

	idx := sp.node(css_ast.KindAttributeSelector, startAbs, endAbs)
	sp.p.arena.SetContentStartDelta(idx, nameTok.Start-open.Start)
	sp.p.arena.SetContentLength(idx, int32(len(name)))
	sp.p.arena.SetAttrOperator(idx, op)
	sp.p.arena.SetAttrCase(idx, attrCase)
	return idx, true
}

func (sp *selectorParser) skipToRightBracket() {
	for {
		t := sp.peek()
		if t.Kind == css_lexer.TEOF {
			return
		}
		sp.advance()
		if t.Kind == css_lexer.TRightBracket {
			return
		}
	}
}

// parsePseudo parses a pseudo-class (`:name`, `:name(...)`) or
// pseudo-element (`::name`, or the legacy single-colon forms).
func (sp *selectorParser) parsePseudo() (css_ast.Index, bool) {
	first := sp.advance() // ":"
	startAbs := sp.abs(first.Start)

	double := false
	if sp.peek().Kind == css_lexer.TColon {
		sp.advance()
		double = true
	}

	switch nt := sp.peek(); nt.Kind {
	case css_lexer.TIdent:
		sp.advance()
		name := nt.DecodedText(sp.sourceSlice())
		kind := css_ast.KindPseudoClassSelector
		if double || legacyPseudoElements[lowerASCII(name)] {
			kind = css_ast.KindPseudoElementSelector
		}
		idx := sp.node(kind, startAbs, sp.abs(nt.End))
		sp.p.arena.SetContentStartDelta(idx, nt.Start-first.Start)
		sp.p.arena.SetContentLength(idx, int32(len(name)))
		return idx, true

	case css_lexer.TFunction:
		sp.advance()
		name := nt.DecodedText(sp.sourceSlice())
		argsStartAbs := sp.abs(nt.End)
		lastEnd := argsStartAbs
		depth := 0
		for {
			t := sp.peek()
			if t.Kind == css_lexer.TEOF {
				break
			}
			if t.Kind == css_lexer.TRightParen {
				if depth == 0 {
					break
				}
				depth--
			} else if t.Kind == css_lexer.TFunction || t.Kind == css_lexer.TLeftParen {
				depth++
			}
			sp.advance()
			lastEnd = sp.abs(t.End)
		}
		argsEndAbs := lastEnd
		endAbs := argsEndAbs
		if sp.peek().Kind == css_lexer.TRightParen {
			close := sp.advance()
			endAbs = sp.abs(close.End)
		}
		idx := sp.node(css_ast.KindPseudoClassSelector, startAbs, endAbs)
		sp.p.arena.SetContentStartDelta(idx, nt.Start-first.Start)
		sp.p.arena.SetContentLength(idx, int32(len(name)))
		argStart, argEnd := trimRange(sp.p.source, int(argsStartAbs), int(argsEndAbs))
		sp.p.arena.SetValueStartDelta(idx, int32(argStart)-startAbs)
		sp.p.arena.SetValueLength(idx, int32(argEnd-argStart))
		return idx, true
	}

	return 0, false
}
