package pass

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/gssc/gss/ast"
	"github.com/gssc/gss/visit"
)

// ConditionalPass folds every `@if`/`@elseif`*/`@else`? chain down to the
// body of whichever arm's condition holds, splicing that body's
// statements in place of the whole ConditionalBlock (or removing it
// entirely if no arm matches and there's no `@else`). Condition
// evaluation is grounded on the teacher's evaluator package: each
// BooleanExpr tree is rendered to an expr-lang expression string and
// compiled/run against an environment built from the constants the
// ConstantsPass has already resolved, rather than hand-rolling a second
// boolean evaluator.
type ConditionalPass struct{}

func (ConditionalPass) Name() string { return "conditional" }

func (ConditionalPass) Run(root *ast.Root, ctx *Context) {
	visit.Walk(root, &conditionalVisitor{ctx: ctx})
}

type conditionalVisitor struct {
	visit.Base
	ctx *Context
}

func (v *conditionalVisitor) Enter(n ast.Node, ctl *visit.Controller) {
	cb, ok := n.(*ast.ConditionalBlock)
	if !ok {
		return
	}
	for i := 0; i < cb.Arms.Len(); i++ {
		arm := cb.Arms.Item(i)
		matched := arm.Kind == ast.CondElse
		if !matched {
			ok, err := evalCondition(arm.Condition, v.ctx)
			if err != nil {
				v.ctx.Diags.ReportError(cb.Location(), "conditional: %v", err)
				ctl.RemoveCurrentNode()
				return
			}
			matched = ok
		}
		if !matched {
			continue
		}
		nodes := make([]ast.Node, 0, arm.Body.Statements.Len())
		for j := 0; j < arm.Body.Statements.Len(); j++ {
			nodes = append(nodes, ast.DeepCopy(arm.Body.Statements.Item(j)))
		}
		// revisit=true: an arm's body can itself contain a nested
		// `@if`/`@elseif`/`@else` chain, which needs its own Enter call
		// to resolve within this same walk.
		ctl.ReplaceCurrentNodeWith(true, nodes...)
		return
	}
	ctl.RemoveCurrentNode()
}

// evalCondition compiles cond's expr-lang rendering and runs it against an
// environment derived from ctx.Constants, returning its truthiness.
func evalCondition(cond ast.BooleanExpr, ctx *Context) (bool, error) {
	src := renderBooleanExpr(cond)
	env := make(map[string]interface{}, len(ctx.Constants))
	for name, val := range ctx.Constants {
		env[name] = constantTruthy(val)
	}
	program, err := expr.Compile(src, expr.AllowUndefinedVariables())
	if err != nil {
		return false, fmt.Errorf("failed to compile %q: %w", src, err)
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate %q: %w", src, err)
	}
	b, _ := out.(bool)
	return b, nil
}

// constantTruthy reduces a folded constant Value to the boolean expr-lang
// sees: a hex color or non-empty literal/string is true; the literal
// `false`, a zero Numeric, or an undefined name is false.
func constantTruthy(v ast.Value) bool {
	switch t := v.(type) {
	case *ast.Literal:
		return !strings.EqualFold(t.Text, "false") && t.Text != ""
	case *ast.Numeric:
		return t.Number != 0
	case *ast.StringValue:
		return t.Text != ""
	default:
		return v != nil
	}
}

// renderBooleanExpr renders a BooleanExpr tree to an expr-lang source
// string; undefined names evaluate falsy via expr.AllowUndefinedVariables.
func renderBooleanExpr(e ast.BooleanExpr) string {
	switch t := e.(type) {
	case *ast.ConstantCondition:
		if t.Negate {
			return "!(" + identExpr(t.Name) + ")"
		}
		return identExpr(t.Name)
	case *ast.NotCondition:
		return "!(" + renderBooleanExpr(t.Operand) + ")"
	case *ast.AndCondition:
		return joinBoolean(t.Operands, " && ")
	case *ast.OrCondition:
		return joinBoolean(t.Operands, " || ")
	default:
		return "false"
	}
}

// identExpr renders a bare condition name as a coalesced boolean so an
// undefined name reads as false instead of aborting the whole expression.
func identExpr(name string) string {
	return fmt.Sprintf("(%s == true)", name)
}

func joinBoolean(ops []ast.BooleanExpr, sep string) string {
	parts := make([]string, len(ops))
	for i, o := range ops {
		parts[i] = "(" + renderBooleanExpr(o) + ")"
	}
	return strings.Join(parts, sep)
}
