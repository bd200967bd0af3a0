package css_walk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/projectwallace/css-parser-sub002/css_ast"
	"github.com/projectwallace/css-parser-sub002/css_parser"
	"github.com/projectwallace/css-parser-sub002/css_walk"
)

func parse(t *testing.T, source string) css_ast.Handle {
	t.Helper()
	return css_parser.Parse(source, css_parser.DefaultOptions())
}

func TestWalkVisitsEveryNode(t *testing.T) {
	root := parse(t, "a { color: red; } b { top: 1px; }")

	var kinds []css_ast.NodeKind
	css_walk.Walk(root, func(n css_ast.Handle, depth int) css_walk.Signal {
		kinds = append(kinds, n.Kind())
		return css_walk.Continue
	})

	assert.Equal(t, css_ast.KindStylesheet, kinds[0])
	assert.Contains(t, kinds, css_ast.KindStyleRule)
	assert.Contains(t, kinds, css_ast.KindDeclaration)
	assert.Contains(t, kinds, css_ast.KindValue)
}

func TestWalkEmptyStylesheetVisitsOnlyRoot(t *testing.T) {
	root := parse(t, "")

	var kinds []css_ast.NodeKind
	css_walk.Walk(root, func(n css_ast.Handle, depth int) css_walk.Signal {
		kinds = append(kinds, n.Kind())
		return css_walk.Continue
	})

	assert.Equal(t, []css_ast.NodeKind{css_ast.KindStylesheet}, kinds)
}

func TestWalkSkipOmitsSubtree(t *testing.T) {
	root := parse(t, "a { color: red; }")

	var kinds []css_ast.NodeKind
	css_walk.Walk(root, func(n css_ast.Handle, depth int) css_walk.Signal {
		kinds = append(kinds, n.Kind())
		if n.Kind() == css_ast.KindDeclaration {
			return css_walk.Skip
		}
		return css_walk.Continue
	})

	assert.Contains(t, kinds, css_ast.KindDeclaration)
	assert.NotContains(t, kinds, css_ast.KindValue)
	assert.NotContains(t, kinds, css_ast.KindIdentifier)
}

func TestWalkBreakStopsImmediately(t *testing.T) {
	root := parse(t, "a { color: red; } b { top: 1px; }")

	var visited int
	sig := css_walk.Walk(root, func(n css_ast.Handle, depth int) css_walk.Signal {
		visited++
		if n.Kind() == css_ast.KindDeclaration {
			return css_walk.Break
		}
		return css_walk.Continue
	})

	assert.Equal(t, css_walk.Break, sig)
	assert.Less(t, visited, 20)
}

func TestWalkStackMatchesWalk(t *testing.T) {
	root := parse(t, ".a { .b { .c { color: red; } } }")

	var recKinds, stackKinds []css_ast.NodeKind
	css_walk.Walk(root, func(n css_ast.Handle, depth int) css_walk.Signal {
		recKinds = append(recKinds, n.Kind())
		return css_walk.Continue
	})
	css_walk.WalkStack(root, func(n css_ast.Handle, depth int) css_walk.Signal {
		stackKinds = append(stackKinds, n.Kind())
		return css_walk.Continue
	})

	assert.Equal(t, recKinds, stackKinds)
}
