// Package css_ast implements the arena: a flat, index-addressed store of
// every node produced by a single parse. Nodes are columns of parallel
// slices rather than a tree of pointers or interfaces; a node's variant is
// the NodeKind tag stored in its row.
package css_ast

// NodeKind tags the variant a node represents. The tag set is closed and
// stable for the lifetime of a process; wrapper handles validate Kind
// before returning a kind-specific value.
type NodeKind uint8

const (
	// KindInvalid is the zero value; index 0 of every arena column is
	// reserved as "null" and never holds a real node, so KindInvalid is
	// never observed on a node reachable from a Handle.
	KindInvalid NodeKind = iota

	// Structure
	KindStylesheet
	KindBlock
	KindAtRule
	KindAtRulePrelude
	KindStyleRule
	KindDeclaration
	KindValue
	KindSelectorList
	KindSelector

	// Leaf / value nodes
	KindIdentifier
	KindNumber
	KindDimension
	KindPercentage
	KindString
	KindUrl
	KindHexColor
	KindFunction
	KindOperator
	KindParentheses
	KindBrackets
	KindWhitespace

	// Selector nodes
	KindTypeSelector
	KindClassSelector
	KindIdSelector
	KindAttributeSelector
	KindPseudoClassSelector
	KindPseudoElementSelector
	KindCombinator
	KindNestingSelector

	numNodeKinds
)

var kindNames = [...]string{
	KindInvalid:               "invalid",
	KindStylesheet:            "stylesheet",
	KindBlock:                 "block",
	KindAtRule:                "at-rule",
	KindAtRulePrelude:         "at-rule prelude",
	KindStyleRule:             "style rule",
	KindDeclaration:           "declaration",
	KindValue:                 "value",
	KindSelectorList:          "selector list",
	KindSelector:              "selector",
	KindIdentifier:            "identifier",
	KindNumber:                "number",
	KindDimension:             "dimension",
	KindPercentage:            "percentage",
	KindString:                "string",
	KindUrl:                   "url",
	KindHexColor:              "hex color",
	KindFunction:              "function",
	KindOperator:              "operator",
	KindParentheses:           "parentheses",
	KindBrackets:              "brackets",
	KindWhitespace:            "whitespace",
	KindTypeSelector:          "type selector",
	KindClassSelector:         "class selector",
	KindIdSelector:            "id selector",
	KindAttributeSelector:     "attribute selector",
	KindPseudoClassSelector:   "pseudo-class selector",
	KindPseudoElementSelector: "pseudo-element selector",
	KindCombinator:            "combinator",
	KindNestingSelector:       "nesting selector",
}

func (k NodeKind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown node"
}
