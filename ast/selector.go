package ast

// CombinatorKind names the relationship between two compound selectors.
type CombinatorKind int

const (
	Descendant CombinatorKind = iota
	Child
	AdjacentSibling
	GeneralSibling
)

// Combinator links one compound selector to the next one in a chain
// (spec.md §3: "kind, child selector").
type Combinator struct {
	base
	Kind  CombinatorKind
	Child *Selector
}

func NewCombinator(kind CombinatorKind, child *Selector) *Combinator {
	c := &Combinator{Kind: kind}
	if child != nil {
		attach(child, c)
	}
	c.Child = child
	return c
}

// Selector is one compound selector (a type name plus refiners) optionally
// followed by a combinator to the next compound selector in the chain.
type Selector struct {
	base
	Name       string // element/type name, "" for the universal selector
	Refiners   *RefinerList
	Combinator *Combinator
}

func NewSelector(name string) *Selector {
	s := &Selector{Name: name}
	s.Refiners = &RefinerList{}
	s.Refiners.Items = NewNodeList[Refiner](s.Refiners)
	attach(s.Refiners, s)
	return s
}

// SetCombinator attaches a combinator continuing the chain from s.
func (s *Selector) SetCombinator(c *Combinator) {
	if c != nil {
		attach(c, s)
	}
	s.Combinator = c
}

// RefinerList holds the class/id/pseudo/attribute refiners of one compound
// selector, in source order.
type RefinerList struct {
	base
	Items *NodeList[Refiner]
}

// SelectorList is a comma-separated group of selectors.
type SelectorList struct {
	base
	Selectors *NodeList[*Selector]
}

func NewSelectorList() *SelectorList {
	sl := &SelectorList{}
	sl.Selectors = NewNodeList[*Selector](sl)
	return sl
}

// Specificity is the CSS2.1 §6.4.3 triple (b, c, d): ID count, class/
// attribute/pseudo-class count, type/pseudo-element count.
type Specificity struct {
	B, C, D int
}

// Add combines two specificities component-wise.
func (s Specificity) Add(o Specificity) Specificity {
	return Specificity{B: s.B + o.B, C: s.C + o.C, D: s.D + o.D}
}

// Less implements the lexicographic ordering invariant 6/testable property 4.
func (s Specificity) Less(o Specificity) bool {
	if s.B != o.B {
		return s.B < o.B
	}
	if s.C != o.C {
		return s.C < o.C
	}
	return s.D < o.D
}

// ClassRefiner is a `.name` refiner.
type ClassRefiner struct {
	base
	Name string
}

func (*ClassRefiner) isRefiner() {}

// IDRefiner is a `#name` refiner.
type IDRefiner struct {
	base
	Name string
}

func (*IDRefiner) isRefiner() {}

// PseudoClassRefiner is a `:name` or `:name(...)` refiner. NotSelector is
// populated only for `:not(...)`, whose inner selector contributes its own
// specificity per invariant 6.
type PseudoClassRefiner struct {
	base
	Name        string
	RawArgs     string
	NotSelector *SelectorList
}

func (*PseudoClassRefiner) isRefiner() {}

// PseudoElementRefiner is a `::name` (or legacy single-colon) refiner.
type PseudoElementRefiner struct {
	base
	Name string
}

func (*PseudoElementRefiner) isRefiner() {}

// AttributeRefiner is a `[name op value]` refiner.
type AttributeRefiner struct {
	base
	Name            string
	Operator        string // "", "=", "~=", "|=", "^=", "$=", "*="
	Value           string
	CaseInsensitive bool
}

func (*AttributeRefiner) isRefiner() {}

// Specificity computes the selector's specificity per invariant 6,
// following any combinator chain and any `:not(...)` arms.
func (s *Selector) Specificity() Specificity {
	var total Specificity
	if s.Name != "" && s.Name != "*" {
		total.D++
	}
	if s.Refiners != nil {
		for i := 0; i < s.Refiners.Items.Len(); i++ {
			switch r := s.Refiners.Items.Item(i).(type) {
			case *IDRefiner:
				total.B++
			case *ClassRefiner, *AttributeRefiner:
				total.C++
			case *PseudoElementRefiner:
				total.D++
			case *PseudoClassRefiner:
				if r.NotSelector != nil {
					for j := 0; j < r.NotSelector.Selectors.Len(); j++ {
						total = total.Add(r.NotSelector.Selectors.Item(j).Specificity())
					}
				} else {
					total.C++
				}
			}
		}
	}
	if s.Combinator != nil && s.Combinator.Child != nil {
		total = total.Add(s.Combinator.Child.Specificity())
	}
	return total
}
