// Package css_walk implements pre-order traversal over a css_ast node
// handle: a single-visitor walk with skip/break control flow, and an
// enter/leave traversal with optional ancestor context. Control flow is a
// small returned enum, never an exception (spec §9).
package css_walk

import "github.com/projectwallace/css-parser-sub002/css_ast"

// Signal is returned by a visitor to control traversal.
type Signal uint8

const (
	// Continue descends into the node's children (Walk) or proceeds to the
	// next sibling/ancestor (Traverse).
	Continue Signal = iota
	// Skip suppresses descent into the current node's children. In
	// Traverse, Leave still fires for a node whose Enter returned Skip.
	Skip
	// Break stops traversal immediately and propagates up through every
	// caller.
	Break
)

// Visitor is called once per node in pre-order, before its children.
type Visitor func(node css_ast.Handle, depth int) Signal

// Walk performs a pre-order traversal of node and its descendants,
// invoking visit(node, depth) for each. Returning Skip from visit omits
// that node's subtree; returning Break stops the entire walk and Break is
// returned to the original caller.
func Walk(node css_ast.Handle, visit Visitor) Signal {
	return walkRec(node, visit, 0)
}

func walkRec(node css_ast.Handle, visit Visitor, depth int) Signal {
	if node.IsNull() {
		return Continue
	}
	switch visit(node, depth) {
	case Break:
		return Break
	case Skip:
		return Continue
	}
	for c := node.FirstChild(); !c.IsNull(); c = c.NextSibling() {
		if walkRec(c, visit, depth+1) == Break {
			return Break
		}
	}
	return Continue
}

// WalkStack is behaviorally identical to Walk, implemented with an
// explicit stack of {node, child cursor} frames instead of recursion, for
// trees deep enough to risk native call-stack overflow (spec §9).
func WalkStack(root css_ast.Handle, visit Visitor) Signal {
	if root.IsNull() {
		return Continue
	}

	type frame struct {
		node  css_ast.Handle
		depth int
		next  css_ast.Handle // next child to visit, or null once descended
		begun bool
	}

	stack := []frame{{node: root, depth: 0}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if !top.begun {
			top.begun = true
			switch visit(top.node, top.depth) {
			case Break:
				return Break
			case Skip:
				stack = stack[:len(stack)-1]
				continue
			}
			top.next = top.node.FirstChild()
		}
		if top.next.IsNull() {
			stack = stack[:len(stack)-1]
			continue
		}
		child := top.next
		top.next = child.NextSibling()
		stack = append(stack, frame{node: child, depth: top.depth + 1})
	}
	return Continue
}
