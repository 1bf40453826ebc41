// Package pass implements GSS's compile-time tree rewrites (spec.md §5):
// constant substitution, conditional folding, mixin expansion, for-loop
// unrolling, component namespacing, function folding, RTL flipping, dead
// style elimination, and class renaming. Each pass is a single
// visit.Walk-driven rewrite; the Scheduler runs them in the fixed order
// spec.md's pipeline requires, short-circuiting after any pass that
// reports an error (spec.md §7).
package pass

import (
	"github.com/gssc/gss/ast"
	"github.com/gssc/gss/diag"
	"github.com/gssc/gss/gssfunc"
	"github.com/gssc/gss/renamemap"
)

// Context is the mutable state shared across passes in one compilation:
// the constant/mixin bindings accumulated by earlier passes, the function
// registry, the rename map, and compilation-wide switches.
type Context struct {
	Diags     *diag.Manager
	Constants map[string]ast.Value
	Mixins    map[string]*ast.AtRule
	Funcs     *gssfunc.Registry
	Rename    *renamemap.Map
	RTL       bool
	// RenameClasses/RenameIDs enable the class/id-renaming pass; off by
	// default since most consumers want stable, readable output unless
	// they've opted into the companion rename map.
	RenameClasses bool
	RenameIDs     bool
	// RenameExcluded lists class/id names the rename pass must leave
	// untouched (job.Options' excludedClassesFromRenaming, spec.md §6).
	RenameExcluded map[string]bool
	// AllowUndefinedConstants suppresses ConstantsPass's "undefined
	// constant" diagnostic (job.Options' allowUndefinedConstants):
	// an unresolved ConstantRef is left in the tree rather than erroring,
	// matching the job descriptor's lenience-knob semantics.
	AllowUndefinedConstants bool
	// RenameSplitHyphens switches the rename pass to renamemap.Map's
	// per-segment hyphen-splitting mode (job.Options'
	// outputRenamingMapFormat == ClosureCompiledSplitHyphens).
	RenameSplitHyphens bool
}

// NewContext creates a Context with all accumulator maps initialized.
func NewContext(diags *diag.Manager) *Context {
	return &Context{
		Diags:     diags,
		Constants: make(map[string]ast.Value),
		Mixins:    make(map[string]*ast.AtRule),
		Funcs:     gssfunc.Default(),
		Rename:    renamemap.New(),
	}
}

// Pass is one named tree rewrite.
type Pass interface {
	Name() string
	Run(root *ast.Root, ctx *Context)
}

// Scheduler runs a fixed, ordered sequence of passes.
type Scheduler struct {
	Passes []Pass
}

// Default returns the scheduler for GSS's standard pipeline, in the order
// spec.md §5 requires: constants must resolve before the conditions and
// mixin bodies that reference them; conditionals fold before mixins
// expand so a mixin never has to reason about a still-open @if; loops
// unroll before namespacing so each unrolled copy gets its own selector
// rewrite; function folding runs last among the value-level passes since
// it needs loop variables and mixin arguments already substituted; RTL
// flipping and dead-style elimination are output-shaping and run last;
// renaming is strictly last so it operates on the final selector set.
func Default() *Scheduler {
	return &Scheduler{Passes: []Pass{
		ConstantsPass{},
		ConditionalPass{},
		MixinPass{},
		ForLoopPass{},
		NamespacePass{},
		FunctionFoldPass{},
		FlipPass{},
		SimplifyPass{},
		RenamePass{},
	}}
}

// Run executes every pass in order, stopping early if a pass reports an
// error.
func (s *Scheduler) Run(root *ast.Root, ctx *Context) {
	for _, p := range s.Passes {
		p.Run(root, ctx)
		if ctx.Diags.HasErrors() {
			return
		}
	}
}
