package css_walk

import "github.com/projectwallace/css-parser-sub002/css_ast"

// Callback is invoked on entering or leaving a node during Traverse.
type Callback func(node css_ast.Handle, depth int, ctx *AncestorContext) Signal

// Callbacks bundles the optional enter/leave hooks for Traverse. Either may
// be nil.
type Callbacks struct {
	Enter Callback
	Leave Callback
}

// AncestorContext tracks the closest-so-far ancestor of each tracked role,
// plus the immediate parent and depth (spec §4.8). It is only populated
// when Traverse is called with IncludeContext true; ctx is nil otherwise.
// Updates stop once traversal has descended into a Value or Selector node:
// their interiors are treated as leaves for context purposes, so nested
// function calls or nested selector syntax never shadow the outer Rule,
// AtRule, or Declaration.
type AncestorContext struct {
	Rule        css_ast.Handle
	AtRule      css_ast.Handle
	Declaration css_ast.Handle
	Value       css_ast.Handle
	Selector    css_ast.Handle
	Parent      css_ast.Handle
	Depth       int

	frozen bool
}

// Options configures a Traverse call.
type Options struct {
	// IncludeContext causes AncestorContext to be computed and passed to
	// every callback; omitting it saves the bookkeeping for callers that
	// don't need it.
	IncludeContext bool
}

// Traverse performs a pre-order/post-order combined walk: Enter fires
// before a node's children, Leave after. Enter returning Skip suppresses
// descent but Leave still fires for that same node. Either callback
// returning Break stops the whole traversal immediately: if raised from
// Enter, that node's Leave (and every ancestor's pending Leave) never
// fires; if raised from Leave, no further sibling or ancestor is visited
// either.
func Traverse(node css_ast.Handle, cb Callbacks, options Options) Signal {
	return traverseRec(node, cb, options.IncludeContext, 0, AncestorContext{})
}

func traverseRec(node css_ast.Handle, cb Callbacks, includeContext bool, depth int, ctx AncestorContext) Signal {
	if node.IsNull() {
		return Continue
	}

	var ctxArg *AncestorContext
	if includeContext {
		c := ctx
		c.Depth = depth
		ctxArg = &c
	}

	descend := true
	if cb.Enter != nil {
		switch cb.Enter(node, depth, ctxArg) {
		case Break:
			return Break
		case Skip:
			descend = false
		}
	}

	if descend {
		childCtx := ctx
		if includeContext {
			childCtx = childContext(node, ctx)
		}
		for c := node.FirstChild(); !c.IsNull(); c = c.NextSibling() {
			if traverseRec(c, cb, includeContext, depth+1, childCtx) == Break {
				return Break
			}
		}
	}

	if cb.Leave != nil {
		if cb.Leave(node, depth, ctxArg) == Break {
			return Break
		}
	}
	return Continue
}

// childContext derives the AncestorContext a node's children should see:
// unchanged if ctx is already frozen (inside a Value or Selector), else
// updated with node as the new Parent and, if node's kind matches a
// tracked role, as that role's closest ancestor.
func childContext(node css_ast.Handle, ctx AncestorContext) AncestorContext {
	if ctx.frozen {
		return ctx
	}
	next := ctx
	next.Parent = node
	switch node.Kind() {
	case css_ast.KindStyleRule:
		next.Rule = node
	case css_ast.KindAtRule:
		next.AtRule = node
	case css_ast.KindDeclaration:
		next.Declaration = node
	case css_ast.KindValue:
		next.Value = node
		next.frozen = true
	case css_ast.KindSelectorList, css_ast.KindSelector:
		next.Selector = node
		next.frozen = true
	}
	return next
}
