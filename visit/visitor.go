// Package visit implements GSS's tree traversal protocol (spec.md §4.4):
// a depth-first walk that calls paired enter/leave hooks per node kind and
// lets a Visitor mutate the tree mid-walk (remove the current node,
// replace it with zero or more nodes, or stop the walk early). Grounded on
// the teacher's stack-based renderer/stack.go (an explicit frame stack
// rather than recursion so the walk state is inspectable and frames can
// carry extra bookkeeping), generalized from "render frames" to "visit
// frames" that additionally remember list membership for mutation.
package visit

import "github.com/gssc/gss/ast"

// Visitor receives enter/leave calls for every node the Controller walks.
// Embed Base to get no-op defaults for hooks you don't care about.
type Visitor interface {
	Enter(n ast.Node, c *Controller)
	Leave(n ast.Node, c *Controller)
}

// Base is a no-op Visitor meant to be embedded so callers only implement
// the hooks they need.
type Base struct{}

func (Base) Enter(ast.Node, *Controller) {}
func (Base) Leave(ast.Node, *Controller) {}

// frame is one level of the explicit visit stack. list/index are set only
// when this node was reached as an element of a listAdapter-backed
// NodeList; they're how remove/replace find "the innermost list-bearing
// ancestor" (spec.md §4.4) without walking back up through the tree's
// parent pointers, which don't know about list membership at all.
type frame struct {
	node  ast.Node
	list  listMutator
	index int
}

// listMutator is the subset of ast's internal listAdapter the controller
// needs; it's redeclared here (not imported) because ast.listAdapter is
// unexported — every *ast.NodeList provides these methods, and the list
// walker hands the NodeList itself to the frame as its listMutator.
type listMutator interface {
	Len() int
	RemoveAt(i int)
	ReplaceWith(i int, nodes []ast.Node, owner ast.Node) []ast.Node
}

// Controller drives one traversal. It is passed to every Enter/Leave call
// so the Visitor can issue mutation commands that take effect as soon as
// the current node's subtree walk completes.
type Controller struct {
	stack   []frame
	stopped bool
	pending mutation
}

type mutationKind int

const (
	mutNone mutationKind = iota
	mutRemove
	mutReplace
)

type mutation struct {
	kind    mutationKind
	nodes   []ast.Node
	revisit bool
}

// StopVisit halts the remainder of the traversal; no further Enter/Leave
// calls are made after the current one returns.
func (c *Controller) StopVisit() { c.stopped = true }

// RemoveCurrentNode detaches the node currently being visited from its
// list-bearing ancestor. Valid only from within an Enter or Leave call.
// If the current node isn't list-resident (e.g. a Ruleset's singular
// Block field), the nearest list-resident ancestor on the visit stack is
// removed instead.
func (c *Controller) RemoveCurrentNode() {
	c.pending = mutation{kind: mutRemove}
}

// ReplaceCurrentNodeWith substitutes nodes for the current node in its
// owning list. An empty nodes is equivalent to RemoveCurrentNode.
//
// revisit selects what the walker does with the replacement nodes, per
// spec.md §4.4's replace_current_block_child_with(nodes, revisit?) and
// testable property 7 (spec.md §8): when revisit is false (the common
// case), the replacement nodes are NOT walked by this traversal —
// replacements take effect after the subtree finishes, so re-visiting
// them would either loop or see half-applied state. When revisit is
// true, the walker enters the first replacement node next instead of
// skipping past it, so a visitor can expand a construct whose expansion
// itself contains the same construct (a mixin invoking another mixin, a
// `@for` nested inside a `@for`) within a single traversal, without the
// caller having to re-walk the whole tree to a fixed point.
func (c *Controller) ReplaceCurrentNodeWith(revisit bool, nodes ...ast.Node) {
	c.pending = mutation{kind: mutReplace, nodes: nodes, revisit: revisit}
}

// current returns the top frame, or the zero frame if the stack is empty.
func (c *Controller) current() frame {
	if len(c.stack) == 0 {
		return frame{}
	}
	return c.stack[len(c.stack)-1]
}

// applyPending applies any mutation queued during the current node's
// Enter/Leave calls, walking up the frame stack to find the nearest
// list-bearing ancestor if the immediate frame isn't one itself. Returns
// whether a mutation was applied, for a replace how many nodes were
// spliced in, and whether the caller asked to revisit them (the walker
// uses inserted to skip past the replacement without visiting it unless
// revisit is set, per spec.md §4.4).
func (c *Controller) applyPending() (applied bool, inserted int, revisit bool) {
	if c.pending.kind == mutNone {
		return false, 0, false
	}
	m := c.pending
	c.pending = mutation{}

	for i := len(c.stack) - 1; i >= 0; i-- {
		f := c.stack[i]
		if f.list == nil {
			continue
		}
		switch m.kind {
		case mutRemove:
			f.list.RemoveAt(f.index)
			return true, 0, false
		case mutReplace:
			out := f.list.ReplaceWith(f.index, m.nodes, f.node)
			return true, len(out), m.revisit
		}
	}
	return false, 0, false
}
