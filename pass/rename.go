package pass

import (
	"github.com/gssc/gss/ast"
	"github.com/gssc/gss/visit"
)

// RenamePass substitutes every class and/or id refiner's name for its
// short form from ctx.Rename, gated independently by ctx.RenameClasses and
// ctx.RenameIDs. It runs last in the pipeline (pass.Default) so it sees
// the final selector set: component scoping has already prefixed names,
// and dead rulesets have already been dropped, so nothing gets a rename
// map entry it won't actually need in the emitted CSS.
type RenamePass struct{}

func (RenamePass) Name() string { return "rename" }

func (RenamePass) Run(root *ast.Root, ctx *Context) {
	if !ctx.RenameClasses && !ctx.RenameIDs {
		return
	}
	visit.Walk(root, &renameVisitor{ctx: ctx})
}

type renameVisitor struct {
	visit.Base
	ctx *Context
}

func (v *renameVisitor) Enter(n ast.Node, ctl *visit.Controller) {
	switch r := n.(type) {
	case *ast.ClassRefiner:
		if v.ctx.RenameClasses && !v.ctx.RenameExcluded[r.Name] {
			r.Name = v.ctx.rename(r.Name)
		}
	case *ast.IDRefiner:
		if v.ctx.RenameIDs && !v.ctx.RenameExcluded[r.Name] {
			r.Name = v.ctx.rename(r.Name)
		}
	}
}

// rename dispatches to the whole-name or hyphen-split renaming scheme
// depending on ctx.RenameSplitHyphens.
func (ctx *Context) rename(name string) string {
	if ctx.RenameSplitHyphens {
		return ctx.Rename.RenameSplitHyphens(name)
	}
	return ctx.Rename.Rename(name)
}
