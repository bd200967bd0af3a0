package css_parser

// atRuleKind classifies a known at-rule by how its block (if any) is
// parsed, mirroring the `specialAtRules` table in evanw-esbuild's
// css_parser.go. The classification is immutable, process-wide read-only
// data, initialized once (spec §9, "global configuration").
type atRuleKind uint8

const (
	// atRuleUnknown: not recognized; classified at parse time by whether
	// a block follows (rule-bearing by default, per spec §7).
	atRuleUnknown atRuleKind = iota

	// atRuleDeclarations: the block holds only declarations.
	atRuleDeclarations

	// atRuleConditional: the block may hold declarations, nested style
	// rules, and nested at-rules (CSS Nesting).
	atRuleConditional

	// atRuleRules: the block holds only rules (e.g. keyframe selectors).
	atRuleRules

	// atRuleStatement: no block; terminated by `;`.
	atRuleStatement
)

// specialAtRules maps a lower-cased at-rule name to its classification,
// per spec §4.7 step 4 and SPEC_FULL.md §C.2-3 (vendor-prefixed keyframes
// aliases, @page margin-box sub-rules).
var specialAtRules = map[string]atRuleKind{
	"font-face":           atRuleDeclarations,
	"font-palette-values": atRuleDeclarations,
	"font-feature-values": atRuleDeclarations,
	"counter-style":       atRuleDeclarations,
	"property":            atRuleDeclarations,
	"page":                atRuleDeclarations,
	"viewport":            atRuleDeclarations,
	"-ms-viewport":        atRuleDeclarations,

	// @page margin-box sub-rules (spec supplement C.3).
	"top-left-corner":     atRuleDeclarations,
	"top-left":            atRuleDeclarations,
	"top-center":          atRuleDeclarations,
	"top-right":           atRuleDeclarations,
	"top-right-corner":    atRuleDeclarations,
	"bottom-left-corner":  atRuleDeclarations,
	"bottom-left":         atRuleDeclarations,
	"bottom-center":       atRuleDeclarations,
	"bottom-right":        atRuleDeclarations,
	"bottom-right-corner": atRuleDeclarations,
	"left-top":            atRuleDeclarations,
	"left-middle":         atRuleDeclarations,
	"left-bottom":         atRuleDeclarations,
	"right-top":           atRuleDeclarations,
	"right-middle":        atRuleDeclarations,
	"right-bottom":        atRuleDeclarations,

	"media":        atRuleConditional,
	"supports":     atRuleConditional,
	"container":    atRuleConditional,
	"scope":        atRuleConditional,
	"document":     atRuleConditional,
	"-moz-document": atRuleConditional,
	"layer":        atRuleConditional,
	"nest":         atRuleConditional,

	"keyframes":          atRuleRules,
	"-webkit-keyframes":  atRuleRules,
	"-moz-keyframes":     atRuleRules,
	"-ms-keyframes":      atRuleRules,
	"-o-keyframes":       atRuleRules,

	"import":    atRuleStatement,
	"namespace": atRuleStatement,
	"charset":   atRuleStatement,
}

func classifyAtRule(name string) atRuleKind {
	if kind, ok := specialAtRules[lowerASCII(name)]; ok {
		return kind
	}
	return atRuleUnknown
}

// isKeyframesName reports whether name (already lower-cased) is one of
// the vendor-prefixed aliases for @keyframes (supplement C.2).
func isKeyframesName(name string) bool {
	switch name {
	case "keyframes", "-webkit-keyframes", "-moz-keyframes", "-ms-keyframes", "-o-keyframes":
		return true
	}
	return false
}

// lowerASCII lower-cases ASCII letters only; at-rule names are ASCII
// identifiers in every construct this parser recognizes by name.
func lowerASCII(s string) string {
	b := []byte(s)
	changed := false
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(b)
}
