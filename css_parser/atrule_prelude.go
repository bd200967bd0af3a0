package css_parser

import (
	"github.com/projectwallace/css-parser-sub002/css_ast"
	"github.com/projectwallace/css-parser-sub002/css_lexer"
)

// parseAtRulePreludeChildren implements spec §4.5's dispatch-by-name: known
// condition/list-shaped preludes (media queries, supports/container
// conditions, dotted layer names, the `@import` url/layer/supports/media
// sequence) decompose naturally into the same leaf/grouping vocabulary
// Values use, since the node-kind set has no dedicated condition-tree
// kinds. `@keyframes` (and its vendor aliases) instead yield exactly one
// Identifier or String child. Unrecognized names yield none; the raw
// prelude text stays reachable via the at-rule's value_* range.
func (p *parser) parseAtRulePreludeChildren(name string, start, end int) []css_ast.Index {
	lname := lowerASCII(name)
	switch {
	case lname == "media" || lname == "supports" || lname == "container" || lname == "layer" || lname == "import":
		return p.parsePreludeTokens(start, end)
	case isKeyframesName(lname):
		return p.parseKeyframesPreludeName(start, end)
	default:
		return nil
	}
}

func (p *parser) parsePreludeTokens(start, end int) []css_ast.Index {
	vp := &valueParser{
		p:           p,
		base:        int32(start),
		toks:        css_lexer.Tokenize(p.source[start:end], true),
		preludeMode: true,
	}
	return vp.parseUntil(0)
}

// parseKeyframesPreludeName returns the single Identifier or String child
// for a `@keyframes <name>` prelude; any other shape yields nothing.
func (p *parser) parseKeyframesPreludeName(start, end int) []css_ast.Index {
	toks := css_lexer.Tokenize(p.source[start:end], true)
	for _, t := range toks {
		switch t.Kind {
		case css_lexer.TWhitespace, css_lexer.TComment, css_lexer.TEOF:
			continue
		case css_lexer.TIdent:
			abs := int32(start) + t.Start
			line, column := lineColAt(p.source, int(abs))
			return []css_ast.Index{p.arena.CreateNode(css_ast.KindIdentifier, abs, t.End-t.Start, line, column)}
		case css_lexer.TString:
			abs := int32(start) + t.Start
			line, column := lineColAt(p.source, int(abs))
			return []css_ast.Index{p.arena.CreateNode(css_ast.KindString, abs, t.End-t.Start, line, column)}
		default:
			return nil
		}
	}
	return nil
}

// ParseAtRulePrelude parses a standalone at-rule prelude given its
// (already known) name, per spec §6.1's `parse_atrule_prelude(name, text)`
// entry point.
func ParseAtRulePrelude(name, text string) []css_ast.Handle {
	p := &parser{arena: css_ast.NewArena(len(text)), source: text}
	indices := p.parseAtRulePreludeChildren(name, 0, len(text))
	if len(indices) == 0 {
		return nil
	}
	handles := make([]css_ast.Handle, len(indices))
	for i, idx := range indices {
		handles[i] = css_ast.Handle{Arena: p.arena, Source: text, Index: idx}
	}
	return handles
}
