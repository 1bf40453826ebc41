package ast

// BooleanExpr nodes are intentionally immutable (resolving spec.md's open
// question on BooleanExpressionNode mutability): a changed condition is
// built as a new tree and swapped in via ConditionalRule.SetCondition,
// rather than mutated in place.

// ConstantCondition tests a `@def`-bound name for truthiness (spec's
// `defined(NAME)` / bare-name conditions).
type ConstantCondition struct {
	base
	Name   string
	Negate bool
}

func NewConstantCondition(name string, negate bool) *ConstantCondition {
	return &ConstantCondition{Name: name, Negate: negate}
}
func (*ConstantCondition) isBooleanExpr() {}

// NotCondition negates its operand.
type NotCondition struct {
	base
	Operand BooleanExpr
}

func NewNotCondition(operand BooleanExpr) *NotCondition {
	n := &NotCondition{}
	if operand != nil {
		attach(operand, n)
	}
	n.Operand = operand
	return n
}
func (*NotCondition) isBooleanExpr() {}

// AndCondition is the conjunction of its operands.
type AndCondition struct {
	base
	Operands []BooleanExpr
}

func NewAndCondition(operands ...BooleanExpr) *AndCondition {
	a := &AndCondition{Operands: operands}
	for _, o := range operands {
		attach(o, a)
	}
	return a
}
func (*AndCondition) isBooleanExpr() {}

// OrCondition is the disjunction of its operands.
type OrCondition struct {
	base
	Operands []BooleanExpr
}

func NewOrCondition(operands ...BooleanExpr) *OrCondition {
	o := &OrCondition{Operands: operands}
	for _, op := range operands {
		attach(op, o)
	}
	return o
}
func (*OrCondition) isBooleanExpr() {}

// CondArmKind distinguishes an `@if`/`@elseif` test arm from a trailing
// `@else` arm.
type CondArmKind int

const (
	CondIf CondArmKind = iota
	CondElseIf
	CondElse
)

// ConditionalRule is one arm of a ConditionalBlock: a kind, an optional
// condition (nil for CondElse), and the body to splice in when the
// condition holds.
type ConditionalRule struct {
	base
	Kind      CondArmKind
	Condition BooleanExpr
	Body      *Block
}

func NewConditionalRule(kind CondArmKind, cond BooleanExpr, body *Block) *ConditionalRule {
	r := &ConditionalRule{Kind: kind}
	if cond != nil {
		attach(cond, r)
	}
	r.Condition = cond
	if body != nil {
		attach(body, r)
	}
	r.Body = body
	return r
}

// SetCondition swaps r's condition tree for a new one, preserving
// BooleanExpr immutability (the old tree is discarded, not mutated).
func (r *ConditionalRule) SetCondition(cond BooleanExpr) {
	if cond != nil {
		attach(cond, r)
	}
	r.Condition = cond
}

// ConditionalBlock is an `@if`/`@elseif`*/`@else`? chain, evaluated in
// order by the conditional-folding pass; exactly one arm's body survives.
type ConditionalBlock struct {
	base
	Arms *NodeList[*ConditionalRule]
}

func NewConditionalBlock() *ConditionalBlock {
	cb := &ConditionalBlock{}
	cb.Arms = NewNodeList[*ConditionalRule](cb)
	return cb
}

// ConditionalBlock is valid wherever a Statement is (stylesheet level,
// inside @media/@component/@for bodies); GSS's conditional folding only
// gates whole rulesets and at-rules, not individual declarations, so it
// does not also implement Declarative.
func (*ConditionalBlock) isStatement() {}
