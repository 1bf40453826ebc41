package visit

import "github.com/gssc/gss/ast"

// Walk traverses root depth-first, calling v's Enter/Leave hooks. It is
// the entry point every pass (visit/ §4.4's consumer, the pass/ package)
// uses to drive a single tree rewrite.
func Walk(root *ast.Root, v Visitor) {
	WalkNode(root, v)
}

// WalkNode traverses an arbitrary subtree depth-first, exactly as Walk
// does for a whole Root. Passes that rewrite a detached fragment before
// splicing it back in (mixin expansion substituting into a copied
// DeclarationBlock, for-loop unrolling substituting into a copied Block)
// use this instead of Walk, since the fragment has no owning Root.
func WalkNode(n ast.Node, v Visitor) {
	c := &Controller{}
	walkNode(n, nil, 0, v, c)
}

// result carries what happened to one visited node, so its caller (a list
// walker) knows whether to re-index or, for a revisit replace, to hold
// the index steady so the first replacement node is visited next.
type result struct {
	stopped  bool
	mutated  bool
	inserted int
	revisit  bool
}

// walkNode visits n. list/index, when non-nil, identify n's position in
// the NodeList that owns it, so the pushed frame lets RemoveCurrentNode/
// ReplaceCurrentNodeWith find it; a single-field child (not list-resident)
// passes list == nil.
func walkNode(n ast.Node, list listMutator, index int, v Visitor, c *Controller) result {
	if n == nil {
		return result{}
	}
	c.stack = append(c.stack, frame{node: n, list: list, index: index})
	defer func() { c.stack = c.stack[:len(c.stack)-1] }()

	v.Enter(n, c)
	if c.stopped {
		return result{stopped: true}
	}
	if applied, inserted, revisit := c.applyPending(); applied {
		return result{mutated: true, inserted: inserted, revisit: revisit}
	}

	if r := walkChildren(n, v, c); r.stopped {
		return r
	}

	v.Leave(n, c)
	if c.stopped {
		return result{stopped: true}
	}
	if applied, inserted, revisit := c.applyPending(); applied {
		return result{mutated: true, inserted: inserted, revisit: revisit}
	}
	return result{}
}

func walkListGeneric[T ast.Node](list *ast.NodeList[T], v Visitor, c *Controller) result {
	i := 0
	for i < list.Len() {
		item := list.Item(i)
		r := walkNode(item, list, i, v, c)
		if r.stopped {
			return r
		}
		if r.mutated {
			if r.revisit {
				// Hold the index steady: list.Item(i) is now the first
				// replacement node, so the next loop turn enters it
				// instead of skipping past it.
				continue
			}
			i += r.inserted
			continue
		}
		i++
	}
	return result{}
}

func walkChildren(n ast.Node, v Visitor, c *Controller) result {
	switch t := n.(type) {
	case *ast.Root:
		if r := walkNode(t.Imports, nil, 0, v, c); r.stopped {
			return r
		}
		return walkListGeneric(t.Statements, v, c)
	case *ast.ImportBlock:
		return walkListGeneric(t.Imports, v, c)
	case *ast.ImportRule:
		return result{}

	case *ast.Block:
		return walkListGeneric(t.Statements, v, c)
	case *ast.DeclarationBlock:
		return walkListGeneric(t.Declarations, v, c)

	case *ast.Ruleset:
		if r := walkNode(t.Selectors, nil, 0, v, c); r.stopped {
			return r
		}
		return walkNode(t.Block, nil, 0, v, c)
	case *ast.SelectorList:
		return walkListGeneric(t.Selectors, v, c)
	case *ast.Selector:
		if r := walkNode(t.Refiners, nil, 0, v, c); r.stopped {
			return r
		}
		if t.Combinator != nil {
			return walkNode(t.Combinator, nil, 0, v, c)
		}
		return result{}
	case *ast.Combinator:
		return walkNode(t.Child, nil, 0, v, c)
	case *ast.RefinerList:
		return walkListGeneric(t.Items, v, c)
	case *ast.PseudoClassRefiner:
		if t.NotSelector != nil {
			return walkNode(t.NotSelector, nil, 0, v, c)
		}
		return result{}
	case *ast.ClassRefiner, *ast.IDRefiner, *ast.PseudoElementRefiner, *ast.AttributeRefiner:
		return result{}

	case *ast.Declaration:
		if r := walkNode(t.Prop, nil, 0, v, c); r.stopped {
			return r
		}
		return walkNode(t.Values, nil, 0, v, c)
	case *ast.Property:
		return result{}
	case *ast.PropertyValue:
		return walkListGeneric(t.Values, v, c)

	case *ast.AtRule:
		return walkAtRule(t, v, c)

	case *ast.ConditionalBlock:
		return walkListGeneric(t.Arms, v, c)
	case *ast.ConditionalRule:
		if t.Condition != nil {
			if r := walkNode(t.Condition, nil, 0, v, c); r.stopped {
				return r
			}
		}
		return walkNode(t.Body, nil, 0, v, c)
	case *ast.NotCondition:
		return walkNode(t.Operand, nil, 0, v, c)
	case *ast.AndCondition:
		return walkBooleanOperands(t.Operands, v, c)
	case *ast.OrCondition:
		return walkBooleanOperands(t.Operands, v, c)
	case *ast.ConstantCondition:
		return result{}

	case *ast.KeyframeRuleset:
		if r := walkNode(t.Keys, nil, 0, v, c); r.stopped {
			return r
		}
		return walkNode(t.Block, nil, 0, v, c)
	case *ast.KeyList:
		return walkListGeneric(t.Keys, v, c)
	case *ast.Key:
		return result{}

	case *ast.Function:
		return walkListGeneric(t.Arguments, v, c)
	case *ast.CustomFunction:
		return walkListGeneric(t.Arguments, v, c)
	case *ast.Composite:
		return walkListGeneric(t.Values, v, c)
	case *ast.Math:
		return walkListGeneric(t.Values, v, c)
	case *ast.Literal, *ast.Numeric, *ast.HexColor, *ast.StringValue,
		*ast.UnicodeRange, *ast.ConstantRef, *ast.Priority, *ast.CommentValue:
		return result{}

	case *ast.Comment:
		return result{}

	default:
		return result{}
	}
}

func walkAtRule(t *ast.AtRule, v Visitor, c *Controller) result {
	if t.DefValue != nil {
		if r := walkNode(t.DefValue, nil, 0, v, c); r.stopped {
			return r
		}
	}
	if t.MixinArgs != nil {
		if r := walkListGeneric(t.MixinArgs, v, c); r.stopped {
			return r
		}
	}
	if t.For != nil {
		if t.For.From != nil {
			if r := walkNode(t.For.From, nil, 0, v, c); r.stopped {
				return r
			}
		}
		if t.For.To != nil {
			if r := walkNode(t.For.To, nil, 0, v, c); r.stopped {
				return r
			}
		}
		if t.For.Step != nil {
			if r := walkNode(t.For.Step, nil, 0, v, c); r.stopped {
				return r
			}
		}
		if t.For.Body != nil {
			if r := walkNode(t.For.Body, nil, 0, v, c); r.stopped {
				return r
			}
		}
	}
	if t.Body != nil {
		if r := walkNode(t.Body, nil, 0, v, c); r.stopped {
			return r
		}
	}
	if t.Keyframes != nil {
		return walkListGeneric(t.Keyframes, v, c)
	}
	return result{}
}

func walkBooleanOperands(ops []ast.BooleanExpr, v Visitor, c *Controller) result {
	for _, o := range ops {
		if r := walkNode(o, nil, 0, v, c); r.stopped {
			return r
		}
	}
	return result{}
}
