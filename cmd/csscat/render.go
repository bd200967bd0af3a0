package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/projectwallace/css-parser-sub002/css_ast"
	"github.com/projectwallace/css-parser-sub002/css_walk"
)

var (
	colorStructure = lipgloss.Color("#1D9EA3")
	colorSelector  = lipgloss.Color("#F4D03F")
	colorValue     = lipgloss.Color("#2CD7C7")
	colorMuted     = lipgloss.Color("#2C4A54")

	structureStyle = lipgloss.NewStyle().Bold(true).Foreground(colorStructure)
	selectorStyle  = lipgloss.NewStyle().Foreground(colorSelector)
	valueStyle     = lipgloss.NewStyle().Foreground(colorValue)
	mutedStyle     = lipgloss.NewStyle().Foreground(colorMuted)
)

func headerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorStructure)
}

// printTree renders the node tree rooted at root, one line per node and
// indented by depth, via css_walk.Walk.
func printTree(w io.Writer, root css_ast.Handle, startDepth int, color bool) {
	css_walk.Walk(root, func(n css_ast.Handle, depth int) css_walk.Signal {
		fmt.Fprintln(w, formatNode(n, depth+startDepth, color))
		return css_walk.Continue
	})
}

func formatNode(n css_ast.Handle, depth int, color bool) string {
	indent := strings.Repeat("  ", depth)
	kind := n.Kind().String()
	detail := nodeDetail(n)

	if !color {
		if detail == "" {
			return indent + kind
		}
		return fmt.Sprintf("%s%s %s", indent, kind, detail)
	}

	styled := styleForKind(n.Kind()).Render(kind)
	if detail == "" {
		return indent + styled
	}
	return fmt.Sprintf("%s%s %s", indent, styled, mutedStyle.Render(detail))
}

func styleForKind(kind css_ast.NodeKind) lipgloss.Style {
	switch kind {
	case css_ast.KindStylesheet, css_ast.KindAtRule, css_ast.KindAtRulePrelude,
		css_ast.KindStyleRule, css_ast.KindBlock, css_ast.KindDeclaration:
		return structureStyle
	case css_ast.KindSelectorList, css_ast.KindSelector, css_ast.KindTypeSelector,
		css_ast.KindClassSelector, css_ast.KindIdSelector, css_ast.KindAttributeSelector,
		css_ast.KindPseudoClassSelector, css_ast.KindPseudoElementSelector,
		css_ast.KindCombinator, css_ast.KindNestingSelector:
		return selectorStyle
	case css_ast.KindValue, css_ast.KindIdentifier, css_ast.KindNumber,
		css_ast.KindDimension, css_ast.KindPercentage, css_ast.KindString,
		css_ast.KindUrl, css_ast.KindHexColor, css_ast.KindFunction,
		css_ast.KindOperator, css_ast.KindParentheses, css_ast.KindBrackets:
		return valueStyle
	default:
		return mutedStyle
	}
}

// nodeDetail returns a short "(...)" annotation for a node: its name,
// value, or literal text, whichever the node kind makes meaningful.
func nodeDetail(n css_ast.Handle) string {
	switch n.Kind() {
	case css_ast.KindDeclaration:
		if n.Important() {
			return fmt.Sprintf("(%s: %s !important)", n.Name(), n.Value())
		}
		return fmt.Sprintf("(%s: %s)", n.Name(), n.Value())
	case css_ast.KindAtRule:
		if n.Value() == "" {
			return fmt.Sprintf("(@%s)", n.Name())
		}
		return fmt.Sprintf("(@%s %s)", n.Name(), n.Value())
	case css_ast.KindTypeSelector, css_ast.KindClassSelector, css_ast.KindIdSelector,
		css_ast.KindAttributeSelector, css_ast.KindPseudoElementSelector, css_ast.KindCombinator,
		css_ast.KindIdentifier, css_ast.KindNumber, css_ast.KindDimension,
		css_ast.KindPercentage, css_ast.KindString, css_ast.KindUrl, css_ast.KindHexColor,
		css_ast.KindOperator:
		return fmt.Sprintf("(%s)", n.Text())
	case css_ast.KindPseudoClassSelector:
		if v := n.Value(); v != "" {
			return fmt.Sprintf("(%s(%s))", n.Name(), v)
		}
		return fmt.Sprintf("(%s)", n.Name())
	case css_ast.KindFunction:
		return fmt.Sprintf("(%s)", n.Name())
	case css_ast.KindSelectorList, css_ast.KindSelector:
		if n.IsEmpty() {
			return fmt.Sprintf("(%s)", n.Text())
		}
		return ""
	default:
		return ""
	}
}
