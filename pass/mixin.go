package pass

import (
	"github.com/gssc/gss/ast"
	"github.com/gssc/gss/visit"
)

// MixinPass collects `@defmixin` definitions into ctx.Mixins, then expands
// every `@mixin` call by deep-copying the definition's declaration block,
// substituting each formal parameter for its bound argument (or default),
// and splicing the result in place of the call.
type MixinPass struct{}

func (MixinPass) Name() string { return "mixin" }

// maxMixinExpansions bounds the total number of `@mixin` calls a single
// Run expands — not nesting depth, which ReplaceCurrentNodeWith's
// revisit=true already resolves within one walk (a mixin invoking
// another mixin is entered and expanded in turn, no re-walk needed). This
// is purely a recursion-depth-style safety valve against a
// self-referential mixin (`@defmixin foo() { @mixin foo(); }`), which
// would otherwise re-expand at the same list position forever; the bound
// is generous enough that no legitimate stylesheet should ever approach
// it.
const maxMixinExpansions = 4096

func (MixinPass) Run(root *ast.Root, ctx *Context) {
	visit.Walk(root, &mixinCollector{ctx: ctx})
	visit.Walk(root, &mixinExpander{ctx: ctx})
}

type mixinCollector struct {
	visit.Base
	ctx *Context
}

func (c *mixinCollector) Enter(n ast.Node, ctl *visit.Controller) {
	r, ok := n.(*ast.AtRule)
	if !ok || r.Kind != ast.AtDefMixin {
		return
	}
	c.ctx.Mixins[r.Name] = r
	ctl.RemoveCurrentNode()
}

type mixinExpander struct {
	visit.Base
	ctx        *Context
	expansions int
}

func (e *mixinExpander) Enter(n ast.Node, ctl *visit.Controller) {
	call, ok := n.(*ast.AtRule)
	if !ok || call.Kind != ast.AtMixin {
		return
	}
	if e.expansions >= maxMixinExpansions {
		e.ctx.Diags.ReportError(call.Location(), "mixin expansion exceeded %d calls; check for a self-referential mixin", maxMixinExpansions)
		ctl.RemoveCurrentNode()
		return
	}
	def, ok := e.ctx.Mixins[call.Name]
	if !ok {
		e.ctx.Diags.ReportError(call.Location(), "undefined mixin %q", call.Name)
		ctl.RemoveCurrentNode()
		return
	}
	bindings, ok := bindMixinArgs(def, call, e.ctx)
	if !ok {
		ctl.RemoveCurrentNode()
		return
	}
	body, ok := def.Body.(*ast.DeclarationBlock)
	if !ok {
		e.ctx.Diags.ReportError(call.Location(), "mixin %q has no declaration body", call.Name)
		ctl.RemoveCurrentNode()
		return
	}
	nodes := make([]ast.Node, 0, body.Declarations.Len())
	for i := 0; i < body.Declarations.Len(); i++ {
		decl := ast.DeepCopy(body.Declarations.Item(i)).(ast.Declarative)
		visit.WalkNode(decl, &paramSubstitutor{bindings: bindings})
		if call.Important {
			applyImportant(decl)
		}
		nodes = append(nodes, decl)
	}
	e.expansions++
	// revisit=true: the expanded body can itself contain a `@mixin` call
	// (a mixin invoking another mixin), which needs its own Enter call to
	// resolve within this same walk instead of a second tree-wide pass.
	ctl.ReplaceCurrentNodeWith(true, nodes...)
}

// bindMixinArgs resolves def's formal parameters against call's actual
// arguments, falling back to each parameter's default; reports a diag
// error and returns false if a required argument is missing.
func bindMixinArgs(def, call *ast.AtRule, ctx *Context) (map[string]ast.Value, bool) {
	bindings := make(map[string]ast.Value, len(def.MixinParams))
	for i, param := range def.MixinParams {
		switch {
		case i < call.MixinArgs.Len():
			bindings[param.Name] = ast.DeepCopy(call.MixinArgs.Item(i)).(ast.Value)
		case param.Default != nil:
			bindings[param.Name] = ast.DeepCopy(param.Default).(ast.Value)
		default:
			ctx.Diags.ReportError(call.Location(), "mixin %q: missing argument %q", call.Name, param.Name)
			return nil, false
		}
	}
	return bindings, true
}

// applyImportant appends a `!important` marker to decl's value list,
// honoring a `@mixin foo() !important;` call, unless already present.
func applyImportant(n ast.Declarative) {
	decl, ok := n.(*ast.Declaration)
	if !ok {
		return
	}
	vals := decl.Values.Values
	for i := 0; i < vals.Len(); i++ {
		if _, ok := vals.Item(i).(*ast.Priority); ok {
			return
		}
	}
	vals.Add(&ast.Priority{})
}

// paramSubstitutor replaces every bare Literal whose text names a mixin
// parameter with a deep copy of that parameter's bound value; bare
// identifiers are how the parser represents an unparenthesized mixin
// parameter reference inside a property value (parse/value.go's
// parsePrimary has no separate "parameter reference" token kind).
type paramSubstitutor struct {
	visit.Base
	bindings map[string]ast.Value
}

func (s *paramSubstitutor) Enter(n ast.Node, ctl *visit.Controller) {
	lit, ok := n.(*ast.Literal)
	if !ok {
		return
	}
	val, ok := s.bindings[lit.Text]
	if !ok {
		return
	}
	ctl.ReplaceCurrentNodeWith(false, ast.DeepCopy(val).(ast.Value))
}
