// Package ast defines the GSS abstract syntax tree: a closed set of typed
// node kinds (spec.md §3) connected by parent/child links, each carrying an
// optional source location and any comments attached to it. The set of node
// kinds is fixed at compile time (spec.md §4.3 "variants are closed").
package ast

import (
	"fmt"

	"github.com/gssc/gss/source"
)

// InvariantViolation is raised (as a panic) when code violates one of the
// tree's ownership or shape invariants — these are programmer bugs, never
// user-facing errors, per spec.md §7 "InternalInvariantViolation".
type InvariantViolation struct {
	Reason string
}

func (e *InvariantViolation) Error() string { return "ast: invariant violation: " + e.Reason }

func fail(format string, args ...any) {
	panic(&InvariantViolation{Reason: fmt.Sprintf(format, args...)})
}

// Comment is attached to the node that follows (or, for a trailing comment,
// precedes) it in source. Comments survive deep-copy and most
// transformations (invariant 8).
type Comment struct {
	base
	Text  string
	Block bool // true for /* */, false for a line comment
}

func newComment(text string, block bool) *Comment { return &Comment{Text: text, Block: block} }

// NewComment builds a standalone Comment node (a line or block comment),
// for callers outside the ast package — the parser attaching leading
// comments to the node that follows them.
func NewComment(text string, block bool) *Comment { return newComment(text, block) }

func (c *Comment) isStatement()   {}
func (c *Comment) isDeclarative() {}
func (c *Comment) isValue()       {}

// Node is the base interface every AST node satisfies: parent linkage,
// an optional source location, and any attached leading comments
// (invariant 1, invariant 2, invariant 8).
type Node interface {
	Parent() Node
	setParent(Node)
	Location() source.Location
	SetLocation(source.Location)
	Comments() []*Comment
	SetComments([]*Comment)
	Chunk() string
	SetChunk(string)
}

// base is embedded by every concrete node type and implements the common
// bookkeeping Node requires.
type base struct {
	parent   Node
	location source.Location
	comments []*Comment
	chunk    string
}

func (b *base) Parent() Node                 { return b.parent }
func (b *base) setParent(p Node)              { b.parent = p }
func (b *base) Location() source.Location     { return b.location }
func (b *base) SetLocation(l source.Location) { b.location = l }
func (b *base) Comments() []*Comment          { return b.comments }
func (b *base) SetComments(c []*Comment)      { b.comments = c }
func (b *base) Chunk() string                 { return b.chunk }
func (b *base) SetChunk(c string)             { b.chunk = c }

// Statement is the marker interface for nodes valid inside a Block:
// Ruleset, AtRule, ConditionalBlock (invariant 3), and Comment (a
// standalone comment statement). KeyframeRuleset is not a Statement; it
// lives in its @keyframes AtRule's Keyframes list.
type Statement interface {
	Node
	isStatement()
}

// Declarative is the marker interface for nodes valid inside a
// DeclarationBlock: Declaration and AtRule (invariant 3), and Comment.
type Declarative interface {
	Node
	isDeclarative()
}

// Value is the marker interface for every property-value node kind.
type Value interface {
	Node
	isValue()
}

// Refiner is the marker interface for selector refiners: class, id,
// pseudo-class, pseudo-element, attribute.
type Refiner interface {
	Node
	isRefiner()
}

// BooleanExpr is the marker interface for conditional-expression nodes:
// constant, not, and, or (spec.md §3 BooleanExpression).
//
// Once built, a BooleanExpr tree is immutable (spec.md §9 Open Questions):
// there are no setters, only the constructors in conditional.go.
type BooleanExpr interface {
	Node
	isBooleanExpr()
}

func attach(child Node, parent Node) {
	if child == nil {
		fail("cannot attach a nil child to %T", parent)
	}
	if p := child.Parent(); p != nil && p != parent {
		fail("child %T is already owned by %T; detach it first", child, p)
	}
	child.setParent(parent)
}

func detach(child Node) {
	if child == nil {
		return
	}
	child.setParent(nil)
}
