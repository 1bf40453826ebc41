package ast

// AtRuleKind enumerates the recognized at-rule constructs. "Unknown" is
// any at-rule name the grammar doesn't special-case; whether it passes
// through silently is governed by job.Options.AllowedAtRules (spec.md §6),
// not by the AST itself.
type AtRuleKind int

const (
	AtDef AtRuleKind = iota
	AtDefMixin
	AtMixin
	AtMedia
	AtPage
	AtPageSelector
	AtFontFace
	AtKeyframes
	AtComponent
	AtAbstractComponent
	AtFor
	AtProvide
	AtRequire
	AtUnknown
)

func (k AtRuleKind) String() string {
	switch k {
	case AtDef:
		return "def"
	case AtDefMixin:
		return "defmixin"
	case AtMixin:
		return "mixin"
	case AtMedia:
		return "media"
	case AtPage:
		return "page"
	case AtPageSelector:
		return "page-selector"
	case AtFontFace:
		return "font-face"
	case AtKeyframes:
		return "keyframes"
	case AtComponent:
		return "component"
	case AtAbstractComponent:
		return "abstract_component"
	case AtFor:
		return "for"
	case AtProvide:
		return "provide"
	case AtRequire:
		return "require"
	default:
		return "unknown"
	}
}

// MixinParam is one formal parameter of an `@defmixin`, with an optional
// default value.
type MixinParam struct {
	Name    string
	Default Value
}

// ForLoopSpec carries the numeric-loop-specific fields of an `@for`
// AtRule: from/to/step values, the loop variable name substituted into the
// body, and a unique loop id used to disambiguate nested loops during
// expansion.
type ForLoopSpec struct {
	Var      string
	From     Value
	To       Value
	Step     Value // nil means step 1
	LoopID   string
	Body     *Block
}

// AtRule is the single Go type representing every `@`-rule kind (spec.md
// §3: "kind, name, parameters, optional body, plus kind-specific fields").
// Body holds whichever container is appropriate for Kind — *DeclarationBlock
// for @font-face/@page/@defmixin, *Block for @media/@component/
// @abstract_component and unknown at-rules; @for keeps its body in
// For.Body and @keyframes its rulesets in Keyframes, leaving Body nil —
// and is type-switched on by passes that care, exactly as Kind dictates;
// unrelated fields stay zero for a given Kind.
type AtRule struct {
	base
	Kind AtRuleKind
	Name string

	// @def
	DefValue *PropertyValue

	// @defmixin
	MixinParams []MixinParam

	// @mixin (call)
	MixinArgs *NodeList[Value]
	Important bool

	// @media / @page-selector / unknown passthrough
	RawParams string

	// @for
	For *ForLoopSpec

	// @provide / @require
	Namespace string

	// body, meaning depends on Kind (nil for @provide/@require/@def)
	Body Node

	// Keyframes holds the parsed keyframe rulesets for Kind == AtKeyframes.
	Keyframes *NodeList[*KeyframeRuleset]
}

func NewAtRule(kind AtRuleKind, name string) *AtRule {
	r := &AtRule{Kind: kind, Name: name}
	if kind == AtMixin {
		r.MixinArgs = NewNodeList[Value](r)
	}
	return r
}

func (*AtRule) isStatement()   {}
func (*AtRule) isDeclarative() {}

// SetBody attaches body as r's body container.
func (r *AtRule) SetBody(body Node) {
	if body != nil {
		attach(body, r)
	}
	r.Body = body
}

// SetDefValue attaches the `@def`'s value list.
func (r *AtRule) SetDefValue(v *PropertyValue) {
	if v != nil {
		attach(v, r)
	}
	r.DefValue = v
}

// InitKeyframes prepares r to carry keyframe rulesets for Kind ==
// AtKeyframes.
func (r *AtRule) InitKeyframes() *NodeList[*KeyframeRuleset] {
	r.Keyframes = NewNodeList[*KeyframeRuleset](r)
	return r.Keyframes
}
