package pass

import (
	"github.com/gssc/gss/ast"
	"github.com/gssc/gss/visit"
)

// SimplifyPass removes dead output: rulesets and at-rules whose body has
// been reduced to nothing but comments by earlier passes (a mixin that
// expanded to zero declarations, a `@for` range that never iterates, an
// `@if` chain with no matching arm). It runs Leave-first so a container
// emptied by removing its own children — a `@media` block whose last
// ruleset was just dropped — is itself detected as empty in the same
// pass, without a second walk.
type SimplifyPass struct{}

func (SimplifyPass) Name() string { return "simplify" }

func (SimplifyPass) Run(root *ast.Root, ctx *Context) {
	visit.Walk(root, &deadStyleEliminator{})
}

type deadStyleEliminator struct {
	visit.Base
}

func (e *deadStyleEliminator) Leave(n ast.Node, ctl *visit.Controller) {
	switch t := n.(type) {
	case *ast.Ruleset:
		if declarationBlockEmpty(t.Block) {
			ctl.RemoveCurrentNode()
		}
	case *ast.AtRule:
		if atRuleEmpty(t) {
			ctl.RemoveCurrentNode()
		}
	}
}

// declarationBlockEmpty reports whether a DeclarationBlock carries no
// declaration other than comments.
func declarationBlockEmpty(db *ast.DeclarationBlock) bool {
	if db == nil {
		return true
	}
	for i := 0; i < db.Declarations.Len(); i++ {
		if _, isComment := db.Declarations.Item(i).(*ast.Comment); !isComment {
			return false
		}
	}
	return true
}

// blockEmpty reports whether a Block carries no statement other than
// comments.
func blockEmpty(b *ast.Block) bool {
	if b == nil {
		return true
	}
	for i := 0; i < b.Statements.Len(); i++ {
		if _, isComment := b.Statements.Item(i).(*ast.Comment); !isComment {
			return false
		}
	}
	return true
}

// atRuleEmpty reports whether r is a container at-rule (one whose body
// holds nested statements or declarations rather than being meaningful on
// its own, like `@def`) that has nothing left inside it.
func atRuleEmpty(r *ast.AtRule) bool {
	switch r.Kind {
	case ast.AtMedia:
		b, ok := r.Body.(*ast.Block)
		return ok && blockEmpty(b)
	case ast.AtFontFace, ast.AtPage:
		db, ok := r.Body.(*ast.DeclarationBlock)
		return ok && declarationBlockEmpty(db)
	case ast.AtKeyframes:
		return r.Keyframes == nil || r.Keyframes.Len() == 0
	default:
		return false
	}
}
