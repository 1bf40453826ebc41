package ast

// ImportRule is one `@import "path";` or `@import url(path) media;` entry.
type ImportRule struct {
	base
	Path      string
	IsURL     bool
	MediaRaw  string
	Reference bool // @import (reference) "path" — imported but not emitted
}

func NewImportRule(path string) *ImportRule { return &ImportRule{Path: path} }

// ImportBlock collects the leading `@import` rules the parser records
// before the rest of the tree is built; kept as its own list type rather
// than folded into Root.Statements so code that reads the imports can walk
// it without a type switch over every statement kind. The imported files
// are not resolved or inlined.
type ImportBlock struct {
	base
	Imports *NodeList[*ImportRule]
}

func NewImportBlock() *ImportBlock {
	ib := &ImportBlock{}
	ib.Imports = NewNodeList[*ImportRule](ib)
	return ib
}

// Block is the ordered list of statements inside a rule body that accepts
// statements rather than declarations: a `@media`/`@for`/`@component` body,
// or (via Root) the top level of a source file.
type Block struct {
	base
	Statements *NodeList[Statement]
}

func NewBlock() *Block {
	b := &Block{}
	b.Statements = NewNodeList[Statement](b)
	return b
}

// DeclarationBlock is the ordered list of declaratives inside a rule body
// that accepts declarations: a Ruleset's or KeyframeRuleset's `{ ... }`,
// or an `@font-face`/`@page`/`@defmixin` body.
type DeclarationBlock struct {
	base
	Declarations *NodeList[Declarative]
}

func NewDeclarationBlock() *DeclarationBlock {
	db := &DeclarationBlock{}
	db.Declarations = NewNodeList[Declarative](db)
	return db
}

// Ruleset pairs a selector list with the declaration block it governs.
type Ruleset struct {
	base
	Selectors *SelectorList
	Block     *DeclarationBlock
	// Namespace is the component/namespace prefix this ruleset's selectors
	// were resolved under, set by the namespacing pass and consulted by the
	// rename pass; empty at parse time.
	Namespace string
}

func NewRuleset(selectors *SelectorList, block *DeclarationBlock) *Ruleset {
	r := &Ruleset{}
	if selectors != nil {
		attach(selectors, r)
	}
	r.Selectors = selectors
	if block != nil {
		attach(block, r)
	}
	r.Block = block
	return r
}

func (*Ruleset) isStatement() {}

// Root is the whole of one compiled source file: the import block (the
// recorded `@import` rules) plus the top-level statement sequence.
type Root struct {
	base
	Imports    *ImportBlock
	Statements *NodeList[Statement]
	// Source is the name of the originating file. An unnamed @component
	// does not take a namespace from it: its rulesets are left unprefixed.
	Source string
}

func NewRoot(source string) *Root {
	r := &Root{Source: source}
	r.Imports = NewImportBlock()
	attach(r.Imports, r)
	r.Statements = NewNodeList[Statement](r)
	return r
}
