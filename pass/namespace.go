package pass

import (
	"github.com/gssc/gss/ast"
	"github.com/gssc/gss/visit"
)

// maxComponentExpansions bounds the total number of `@component`/
// `@abstract_component` blocks a single Run flattens, mirroring
// maxMixinExpansions: nesting itself is resolved within one walk via
// ReplaceCurrentNodeWith's revisit=true, this is purely a safety valve
// against a runaway nest.
const maxComponentExpansions = 4096

// NamespacePass resolves `@provide`/`@require` linkage (pass.Default runs
// it after ForLoopPass, so the constant, conditional, mixin and loop
// passes still see the `@provide`/`@require` rules; the passes after it
// do not) and flattens `@component`/
// `@abstract_component` blocks: every ruleset nested inside one has its
// class and id refiners prefixed with the component name and its
// Namespace field set, then the block's statements are spliced in at its
// own position, scoping the component without requiring any new selector
// kind.
type NamespacePass struct{}

func (NamespacePass) Name() string { return "namespace" }

func (NamespacePass) Run(root *ast.Root, ctx *Context) {
	provided := map[string]bool{}
	visit.Walk(root, &provideCollector{provided: provided})
	visit.Walk(root, &requireValidator{ctx: ctx, provided: provided})

	visit.Walk(root, &componentExpander{ctx: ctx})
}

type provideCollector struct {
	visit.Base
	provided map[string]bool
}

func (c *provideCollector) Enter(n ast.Node, ctl *visit.Controller) {
	r, ok := n.(*ast.AtRule)
	if !ok || r.Kind != ast.AtProvide {
		return
	}
	c.provided[r.Namespace] = true
	ctl.RemoveCurrentNode()
}

type requireValidator struct {
	visit.Base
	ctx      *Context
	provided map[string]bool
}

func (v *requireValidator) Enter(n ast.Node, ctl *visit.Controller) {
	r, ok := n.(*ast.AtRule)
	if !ok || r.Kind != ast.AtRequire {
		return
	}
	if !v.provided[r.Namespace] {
		v.ctx.Diags.ReportWarning(r.Location(), "required namespace %q is not provided by this compilation unit", r.Namespace)
	}
	ctl.RemoveCurrentNode()
}

type componentExpander struct {
	visit.Base
	ctx        *Context
	expansions int
}

func (e *componentExpander) Enter(n ast.Node, ctl *visit.Controller) {
	r, ok := n.(*ast.AtRule)
	if !ok || (r.Kind != ast.AtComponent && r.Kind != ast.AtAbstractComponent) {
		return
	}
	if e.expansions >= maxComponentExpansions {
		e.ctx.Diags.ReportError(r.Location(), "component expansion exceeded %d blocks; check for a runaway component nest", maxComponentExpansions)
		ctl.RemoveCurrentNode()
		return
	}
	body, ok := r.Body.(*ast.Block)
	if !ok {
		ctl.RemoveCurrentNode()
		return
	}
	var nodes []ast.Node
	for body.Statements.Len() > 0 {
		stmt := body.Statements.Item(0)
		body.Statements.RemoveAt(0)
		switch inner := stmt.(type) {
		case *ast.Ruleset:
			if r.Name != "" {
				scopeRuleset(inner, r.Name)
			}
		case *ast.AtRule:
			// A nested @component/@abstract_component: fold this level's
			// name into its own so the next Enter call (revisit=true below)
			// scopes its rulesets under the full composed prefix.
			if r.Name != "" && (inner.Kind == ast.AtComponent || inner.Kind == ast.AtAbstractComponent) {
				if inner.Name == "" {
					inner.Name = r.Name
				} else {
					inner.Name = r.Name + "-" + inner.Name
				}
			}
		}
		nodes = append(nodes, stmt)
	}
	e.expansions++
	// revisit=true: a component's own body can contain another
	// @component/@abstract_component, which needs its own Enter call to
	// resolve within this same walk.
	ctl.ReplaceCurrentNodeWith(true, nodes...)
}

// scopeRuleset records rs's owning component and prefixes every class/id
// refiner across its (possibly combinator-chained) selectors with
// "name-", giving the component a collision-free slice of the class
// namespace without introducing a new selector syntax.
func scopeRuleset(rs *ast.Ruleset, name string) {
	if rs.Namespace == "" {
		rs.Namespace = name
	} else {
		rs.Namespace = name + "-" + rs.Namespace
	}
	for i := 0; i < rs.Selectors.Selectors.Len(); i++ {
		prefixSelectorChain(rs.Selectors.Selectors.Item(i), name+"-")
	}
}

func prefixSelectorChain(sel *ast.Selector, prefix string) {
	if sel == nil {
		return
	}
	for i := 0; i < sel.Refiners.Items.Len(); i++ {
		switch rf := sel.Refiners.Items.Item(i).(type) {
		case *ast.ClassRefiner:
			rf.Name = prefix + rf.Name
		case *ast.IDRefiner:
			rf.Name = prefix + rf.Name
		}
	}
	if sel.Combinator != nil {
		prefixSelectorChain(sel.Combinator.Child, prefix)
	}
}
