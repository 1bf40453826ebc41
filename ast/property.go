package ast

import "strings"

// PropertyMeta is the static metadata the property registry associates
// with a recognized CSS property name (spec.md §4.3).
type PropertyMeta struct {
	IsStandard         bool
	Partition          string
	Shorthands         []string
	VendorPrefix       string
	HasPositionalValues bool
}

// vendorPrefixes lists the prefixes the registry strips before lookup, per
// spec.md's note that vendor-prefixed properties share the partition of
// their unprefixed form.
var vendorPrefixes = []string{"-webkit-", "-moz-", "-ms-", "-o-"}

// positionalProperties is the set of standard properties whose value list
// is positional (top/right/bottom/left or similar), used by passes that
// need to know whether reordering values changes meaning.
var positionalProperties = map[string]bool{
	"margin":        true,
	"padding":       true,
	"border-width":  true,
	"border-color":  true,
	"border-style":  true,
	"border-radius": true,
}

// standardProperties is the recognized-property universe. It isn't an
// exhaustive CSS property table; it's the set the registry needs in order
// to compute partitions and shorthand sets for the properties GSS's own
// passes (simplify/dead-style) reason about.
var standardProperties = map[string]bool{
	"margin": true, "margin-top": true, "margin-right": true,
	"margin-bottom": true, "margin-left": true,
	"padding": true, "padding-top": true, "padding-right": true,
	"padding-bottom": true, "padding-left": true,
	"border": true,
	"border-top": true, "border-right": true, "border-bottom": true, "border-left": true,
	"border-width": true, "border-top-width": true, "border-right-width": true,
	"border-bottom-width": true, "border-left-width": true,
	"border-color": true, "border-top-color": true, "border-right-color": true,
	"border-bottom-color": true, "border-left-color": true,
	"border-style": true, "border-top-style": true, "border-right-style": true,
	"border-bottom-style": true, "border-left-style": true,
	"border-radius": true, "border-top-left-radius": true, "border-top-right-radius": true,
	"border-bottom-left-radius": true, "border-bottom-right-radius": true,
	"background": true, "background-color": true, "background-image": true,
	"background-position": true, "background-repeat": true, "background-size": true,
	"font": true, "font-family": true, "font-size": true, "font-weight": true,
	"font-style": true, "font-variant": true, "line-height": true,
	"list-style": true, "list-style-type": true, "list-style-position": true, "list-style-image": true,
	"outline": true, "outline-width": true, "outline-style": true, "outline-color": true,
	"transition": true, "transition-property": true, "transition-duration": true,
	"transition-timing-function": true, "transition-delay": true,
	"animation": true, "animation-name": true, "animation-duration": true,
	"color": true, "display": true, "position": true, "top": true, "right": true,
	"bottom": true, "left": true, "width": true, "height": true, "overflow": true,
	"float": true, "clear": true, "z-index": true, "opacity": true, "content": true,
	"flex": true, "flex-direction": true, "flex-wrap": true, "flex-grow": true,
	"flex-shrink": true, "flex-basis": true,
}

// registryCache memoizes Lookup results, since the partition computation
// recurses over the shorthand chain.
var registryCache = map[string]PropertyMeta{}

// Lookup returns the registry metadata for name, computing and caching it
// on first use. Unrecognized names are their own partition (invariant 5).
func Lookup(name string) PropertyMeta {
	if meta, ok := registryCache[name]; ok {
		return meta
	}
	meta := computeMeta(name)
	registryCache[name] = meta
	return meta
}

func computeMeta(name string) PropertyMeta {
	prefix, base := splitVendorPrefix(name)
	if !standardProperties[base] {
		return PropertyMeta{IsStandard: false, Partition: name, VendorPrefix: prefix}
	}
	shorthands := shorthandsOf(base)
	partition := base
	if len(shorthands) > 0 {
		partition = partitionRoot(base)
	}
	return PropertyMeta{
		IsStandard:          true,
		Partition:           partition,
		Shorthands:          shorthands,
		VendorPrefix:        prefix,
		HasPositionalValues: positionalProperties[base],
	}
}

// splitVendorPrefix strips a recognized vendor prefix from name, returning
// the prefix (possibly "") and the remaining base name.
func splitVendorPrefix(name string) (prefix, base string) {
	for _, p := range vendorPrefixes {
		if strings.HasPrefix(name, p) {
			return p, name[len(p):]
		}
	}
	return "", name
}

// shorthandsOf computes the shorthand set for name per spec.md §4.3: strip
// the trailing `-Y` component; if what remains is itself a known shorthand
// (i.e. a standard property with more specific children), include it and
// recurse. Only `border-X-Y` forms (e.g. border-top-width) yield three
// shorthands: border-X, border-Y-ish composite, and border itself; all
// other properties have zero or one.
func shorthandsOf(name string) []string {
	var out []string
	seen := map[string]bool{}
	cur := name
	for {
		i := strings.LastIndex(cur, "-")
		if i < 0 {
			break
		}
		stripped := cur[:i]
		if !standardProperties[stripped] || seen[stripped] {
			break
		}
		out = append(out, stripped)
		seen[stripped] = true
		cur = stripped
	}
	if strings.HasPrefix(name, "border-") {
		parts := strings.Split(name, "-")
		if len(parts) == 3 {
			// border-<side>-<attr>, e.g. border-top-width: also shares the
			// attribute-wide shorthand border-width/border-color/border-style.
			attrShort := "border-" + parts[2]
			if standardProperties[attrShort] && !seen[attrShort] {
				out = append(out, attrShort)
				seen[attrShort] = true
			}
		}
	}
	return out
}

// partitionRoot follows the shorthand chain to its end, which is the
// partition key shared by every property that reaches it.
func partitionRoot(name string) string {
	shorthands := shorthandsOf(name)
	if len(shorthands) == 0 {
		return name
	}
	root := shorthands[len(shorthands)-1]
	for {
		next := shorthandsOf(root)
		if len(next) == 0 {
			return root
		}
		root = next[len(next)-1]
	}
}
