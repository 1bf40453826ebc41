package pass

import (
	"github.com/gssc/gss/ast"
	"github.com/gssc/gss/visit"
)

// FunctionFoldPass folds every GSS arithmetic/color function call
// (including the grammar-level rgb/rgba/hsl/hsla constructors) and
// `calc`-style Math expression down to a single value. It hooks Leave
// rather than Enter so each node's children — themselves CustomFunction,
// Function, or Math nodes — have already been folded by the time their
// parent is evaluated, matching the bottom-up evaluation order function
// composition requires (e.g. `darken(mix(@a, @b), 10%)`).
type FunctionFoldPass struct{}

func (FunctionFoldPass) Name() string { return "functionfold" }

func (FunctionFoldPass) Run(root *ast.Root, ctx *Context) {
	visit.Walk(root, &functionFolder{ctx: ctx})
}

type functionFolder struct {
	visit.Base
	ctx *Context
}

func (f *functionFolder) Leave(n ast.Node, ctl *visit.Controller) {
	switch t := n.(type) {
	case *ast.CustomFunction:
		f.foldCustom(t, ctl)
	case *ast.Function:
		f.foldBuiltin(t, ctl)
	case *ast.Math:
		f.foldMath(t, ctl)
	}
}

// foldBuiltin folds a grammar-level color constructor (rgb/rgba/hsl/hsla)
// through the same registry CustomFunction uses: these are valid CSS as
// written, but folding them to a HexColor lets color passes downstream
// (mix, darken, ...) and RTL-insensitive output comparisons treat every
// color the same way regardless of how it was spelled in source. `url(...)`
// and any other built-in the registry doesn't recognize is left alone.
func (f *functionFolder) foldBuiltin(fn *ast.Function, ctl *visit.Controller) {
	if !f.ctx.Funcs.Has(fn.Tag) {
		return
	}
	args := fn.Arguments.Items()
	result, err := f.ctx.Funcs.Fold(fn.Tag, args)
	if err != nil {
		f.ctx.Diags.ReportError(fn.Location(), "%v", err)
		return
	}
	ctl.ReplaceCurrentNodeWith(false, result)
}

func (f *functionFolder) foldCustom(fn *ast.CustomFunction, ctl *visit.Controller) {
	if cached, ok := fn.Cached(); ok {
		ctl.ReplaceCurrentNodeWith(false, cached)
		return
	}
	args := fn.Arguments.Items()
	result, err := f.ctx.Funcs.Fold(fn.Name, args)
	if err != nil {
		f.ctx.Diags.ReportError(fn.Location(), "%v", err)
		return
	}
	fn.SetCached(result)
	ctl.ReplaceCurrentNodeWith(false, result)
}

func (f *functionFolder) foldMath(m *ast.Math, ctl *visit.Controller) {
	n, unit, err := evalNumeric(m)
	if err != nil {
		f.ctx.Diags.ReportError(m.Location(), "arithmetic: %v", err)
		return
	}
	ctl.ReplaceCurrentNodeWith(false, ast.NewNumeric(n, unit))
}
