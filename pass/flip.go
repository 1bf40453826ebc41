package pass

import (
	"strings"

	"github.com/gssc/gss/ast"
	"github.com/gssc/gss/visit"
)

// FlipPass mirrors left/right-sensitive declarations for RTL output
// (spec.md §8 scenario D): property names and directional keyword values
// are swapped, and the four-value shorthand properties (margin, padding,
// border-width/color/style/radius) have their right and left components
// exchanged. A declaration preceded by a `@noflip` comment is left
// untouched — the escape hatch a stylesheet author needs when a
// declaration's direction is intentional rather than a byproduct of
// writing mode (e.g. a `direction: ltr` override). The pass is a no-op
// when ctx.RTL is false.
type FlipPass struct{}

func (FlipPass) Name() string { return "flip" }

func (FlipPass) Run(root *ast.Root, ctx *Context) {
	if !ctx.RTL {
		return
	}
	visit.Walk(root, &flipVisitor{})
}

type flipVisitor struct {
	visit.Base
}

func (v *flipVisitor) Enter(n ast.Node, ctl *visit.Controller) {
	decl, ok := n.(*ast.Declaration)
	if !ok || decl.Prop == nil {
		return
	}
	if hasNoFlipMarker(decl) {
		return
	}
	decl.Prop.Name = flipPropertyName(decl.Prop.Name)
	decl.Prop.Raw = flipPropertyName(decl.Prop.Raw)
	if decl.Values == nil {
		return
	}
	for i := 0; i < decl.Values.Values.Len(); i++ {
		flipValue(decl.Values.Values.Item(i), decl.Prop.Meta.HasPositionalValues)
	}
}

// hasNoFlipMarker reports whether a comment immediately attached to decl
// contains the `@noflip` directive.
func hasNoFlipMarker(decl *ast.Declaration) bool {
	for _, c := range decl.Comments() {
		if strings.Contains(c.Text, "@noflip") {
			return true
		}
	}
	return false
}

// leftRight is the fixed left<->right vocabulary flip applies to both
// property-name segments and bare directional keyword values.
var leftRight = map[string]string{"left": "right", "right": "left"}

// flipPropertyName swaps any "left"/"right" hyphen-separated segment in a
// property name, covering both the bare properties and their longhand
// corner/edge forms (margin-left, border-top-left-radius, ...).
func flipPropertyName(name string) string {
	if !strings.Contains(name, "left") && !strings.Contains(name, "right") {
		return name
	}
	parts := strings.Split(name, "-")
	changed := false
	for i, p := range parts {
		if swapped, ok := leftRight[p]; ok {
			parts[i] = swapped
			changed = true
		}
	}
	if !changed {
		return name
	}
	return strings.Join(parts, "-")
}

// flipValue swaps directional keyword literals and, for shorthand
// properties whose value list is positional, exchanges the right and
// left components of a four-value run (top right bottom left).
func flipValue(val ast.Value, positional bool) {
	switch t := val.(type) {
	case *ast.Literal:
		if swapped, ok := leftRight[t.Text]; ok {
			t.Text = swapped
		}
	case *ast.Composite:
		for i := 0; i < t.Values.Len(); i++ {
			flipValue(t.Values.Item(i), false)
		}
		if positional && t.Operator == ast.OpSpace && t.Values.Len() == 4 {
			swapPositional(t)
		}
	}
}

// swapPositional exchanges the right (index 1) and left (index 3)
// components of a top/right/bottom/left four-value shorthand in place.
// Both items keep the same owner, so this reorders Items() directly
// rather than going through ReplaceAt's detach/attach dance, which would
// momentarily give the two slots the same child.
func swapPositional(c *ast.Composite) {
	items := c.Values.Items()
	items[1], items[3] = items[3], items[1]
}
