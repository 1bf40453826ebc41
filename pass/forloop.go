package pass

import (
	"fmt"

	"github.com/gssc/gss/ast"
	"github.com/gssc/gss/visit"
)

// ForLoopPass unrolls every `@for (var from X to Y [by Z]) { ... }` into N
// deep copies of its body, one per iteration, with every bare occurrence
// of the loop variable substituted for that iteration's numeric value —
// the same Literal-matching substitution paramSubstitutor uses for mixin
// parameters, since the parser represents both as plain identifiers.
type ForLoopPass struct{}

func (ForLoopPass) Name() string { return "forloop" }

// maxForLoopExpansions bounds the total number of `@for` blocks a single
// Run unrolls — not nesting depth, which ReplaceCurrentNodeWith's
// revisit=true already resolves within one walk (a `@for` nested inside
// another `@for`'s body is entered and unrolled in turn, no second
// tree-wide pass needed). This is purely a recursion-depth-style safety
// valve; nothing in `@for`'s grammar can make it self-referential the way
// a mixin calling itself can, but the bound still guards against runaway
// expansion from a deeply nested loop-of-loops construct.
const maxForLoopExpansions = 4096

func (ForLoopPass) Run(root *ast.Root, ctx *Context) {
	visit.Walk(root, &forLoopExpander{ctx: ctx})
}

type forLoopExpander struct {
	visit.Base
	ctx        *Context
	expansions int
}

func (e *forLoopExpander) Enter(n ast.Node, ctl *visit.Controller) {
	r, ok := n.(*ast.AtRule)
	if !ok || r.Kind != ast.AtFor || r.For == nil {
		return
	}
	if e.expansions >= maxForLoopExpansions {
		e.ctx.Diags.ReportError(r.Location(), "@for expansion exceeded %d loops; check for a runaway loop nest", maxForLoopExpansions)
		ctl.RemoveCurrentNode()
		return
	}
	spec := r.For

	from, unit, err := evalNumeric(spec.From)
	if err != nil {
		e.ctx.Diags.ReportError(r.Location(), "@for: %v", err)
		ctl.RemoveCurrentNode()
		return
	}
	to, _, err := evalNumeric(spec.To)
	if err != nil {
		e.ctx.Diags.ReportError(r.Location(), "@for: %v", err)
		ctl.RemoveCurrentNode()
		return
	}
	step := 1.0
	if spec.Step != nil {
		step, _, err = evalNumeric(spec.Step)
		if err != nil {
			e.ctx.Diags.ReportError(r.Location(), "@for: %v", err)
			ctl.RemoveCurrentNode()
			return
		}
	}
	if step == 0 {
		e.ctx.Diags.ReportError(r.Location(), "@for: step must not be zero")
		ctl.RemoveCurrentNode()
		return
	}

	var nodes []ast.Node
	for i := from; (step > 0 && i <= to) || (step < 0 && i >= to); i += step {
		bindings := map[string]ast.Value{spec.Var: ast.NewNumeric(i, unit)}
		for j := 0; j < spec.Body.Statements.Len(); j++ {
			stmt := ast.DeepCopy(spec.Body.Statements.Item(j)).(ast.Statement)
			visit.WalkNode(stmt, &paramSubstitutor{bindings: bindings})
			nodes = append(nodes, stmt)
		}
	}
	e.expansions++
	// revisit=true: an unrolled iteration's body can itself contain a
	// nested `@for`, which needs its own Enter call to resolve within
	// this same walk.
	ctl.ReplaceCurrentNodeWith(true, nodes...)
}

// evalNumeric reduces a (by this point, constant-substituted) value
// expression to a float64 and its unit, recursing through the binary Math
// nodes the precedence-climbing parser builds for `+ - * /`.
func evalNumeric(v ast.Value) (float64, string, error) {
	switch t := v.(type) {
	case nil:
		return 0, "", fmt.Errorf("missing numeric expression")
	case *ast.Numeric:
		return t.Number, t.Unit, nil
	case *ast.Math:
		if t.Values.Len() != 2 {
			return 0, "", fmt.Errorf("malformed arithmetic expression")
		}
		left, unit, err := evalNumeric(t.Values.Item(0))
		if err != nil {
			return 0, "", err
		}
		right, rUnit, err := evalNumeric(t.Values.Item(1))
		if err != nil {
			return 0, "", err
		}
		if unit == "" {
			unit = rUnit
		}
		switch t.Operator {
		case ast.OpPlus:
			return left + right, unit, nil
		case ast.OpMinus:
			return left - right, unit, nil
		case ast.OpMul:
			return left * right, unit, nil
		case ast.OpDiv:
			if right == 0 {
				return 0, "", fmt.Errorf("division by zero")
			}
			return left / right, unit, nil
		default:
			return 0, "", fmt.Errorf("unsupported operator in numeric expression")
		}
	default:
		return 0, "", fmt.Errorf("expected a numeric expression, found %T", v)
	}
}
