package pass

import (
	"github.com/gssc/gss/ast"
	"github.com/gssc/gss/visit"
)

// ConstantsPass resolves every `@def NAME: value;` in the tree into
// ctx.Constants, removes the `@def` statements (they produce no output),
// then substitutes every ConstantRef with a deep copy of its bound value.
// Two passes rather than one so a constant can be referenced before its
// `@def` appears later in the same file (spec.md: "constant resolution is
// not ordered by source position").
type ConstantsPass struct{}

func (ConstantsPass) Name() string { return "constants" }

func (ConstantsPass) Run(root *ast.Root, ctx *Context) {
	visit.Walk(root, &defCollector{ctx: ctx})
	visit.Walk(root, &refSubstitutor{ctx: ctx})
}

type defCollector struct {
	visit.Base
	ctx *Context
}

func (c *defCollector) Enter(n ast.Node, ctl *visit.Controller) {
	r, ok := n.(*ast.AtRule)
	if !ok || r.Kind != ast.AtDef {
		return
	}
	if r.DefValue != nil && r.DefValue.Values.Len() >= 1 {
		c.ctx.Constants[r.Name] = r.DefValue.Values.Item(0)
	}
	ctl.RemoveCurrentNode()
}

type refSubstitutor struct {
	visit.Base
	ctx *Context
}

func (s *refSubstitutor) Enter(n ast.Node, ctl *visit.Controller) {
	ref, ok := n.(*ast.ConstantRef)
	if !ok {
		return
	}
	val, ok := s.ctx.Constants[ref.Name]
	if !ok {
		if !s.ctx.AllowUndefinedConstants {
			s.ctx.Diags.ReportError(ref.Location(), "undefined constant %q", ref.Name)
		}
		return
	}
	ctl.ReplaceCurrentNodeWith(false, ast.DeepCopy(val).(ast.Value))
}
