package ast

// DeepCopy returns a structurally identical copy of n that shares no
// substructure with it: every descendant node, including comments, is
// freshly allocated (invariant 2, testable property 2 — "deep-copying a
// tree produces a value-independent copy"). Parent links in the copy
// point only within the copy.
func DeepCopy(n Node) Node {
	if n == nil {
		return nil
	}
	switch v := n.(type) {
	case *Comment:
		c := newComment(v.Text, v.Block)
		copyBase(&c.base, &v.base)
		return c

	case *Literal:
		c := NewLiteral(v.Text)
		copyBase(&c.base, &v.base)
		return c
	case *Numeric:
		c := &Numeric{Number: v.Number, Unit: v.Unit, Raw: v.Raw}
		copyBase(&c.base, &v.base)
		return c
	case *HexColor:
		c := NewHexColor(v.Hex)
		copyBase(&c.base, &v.base)
		return c
	case *StringValue:
		c := NewStringValue(v.Text, v.Quote)
		copyBase(&c.base, &v.base)
		return c
	case *UnicodeRange:
		c := &UnicodeRange{Raw: v.Raw}
		copyBase(&c.base, &v.base)
		return c
	case *ConstantRef:
		c := NewConstantRef(v.Name)
		copyBase(&c.base, &v.base)
		return c
	case *Function:
		c := NewFunction(v.Tag)
		copyBase(&c.base, &v.base)
		copyValueList(c.Arguments, v.Arguments)
		return c
	case *CustomFunction:
		c := NewCustomFunction(v.Name)
		copyBase(&c.base, &v.base)
		copyValueList(c.Arguments, v.Arguments)
		return c
	case *Composite:
		c := NewComposite(v.Operator)
		c.Parenthesised = v.Parenthesised
		copyBase(&c.base, &v.base)
		copyValueList(c.Values, v.Values)
		return c
	case *Math:
		c := NewMath(v.Operator)
		c.Parenthesised = v.Parenthesised
		copyBase(&c.base, &v.base)
		copyValueList(c.Values, v.Values)
		return c
	case *Priority:
		c := &Priority{}
		copyBase(&c.base, &v.base)
		return c
	case *CommentValue:
		c := &CommentValue{Text: v.Text, Block: v.Block}
		copyBase(&c.base, &v.base)
		return c

	case *Combinator:
		var child *Selector
		if v.Child != nil {
			child = DeepCopy(v.Child).(*Selector)
		}
		c := NewCombinator(v.Kind, child)
		copyBase(&c.base, &v.base)
		return c
	case *Selector:
		c := NewSelector(v.Name)
		copyBase(&c.base, &v.base)
		for i := 0; i < v.Refiners.Items.Len(); i++ {
			c.Refiners.Items.Add(DeepCopy(v.Refiners.Items.Item(i)).(Refiner))
		}
		if v.Combinator != nil {
			c.SetCombinator(DeepCopy(v.Combinator).(*Combinator))
		}
		return c
	case *RefinerList:
		c := &RefinerList{}
		c.Items = NewNodeList[Refiner](c)
		copyBase(&c.base, &v.base)
		for i := 0; i < v.Items.Len(); i++ {
			c.Items.Add(DeepCopy(v.Items.Item(i)).(Refiner))
		}
		return c
	case *SelectorList:
		c := NewSelectorList()
		copyBase(&c.base, &v.base)
		for i := 0; i < v.Selectors.Len(); i++ {
			c.Selectors.Add(DeepCopy(v.Selectors.Item(i)).(*Selector))
		}
		return c
	case *ClassRefiner:
		c := &ClassRefiner{Name: v.Name}
		copyBase(&c.base, &v.base)
		return c
	case *IDRefiner:
		c := &IDRefiner{Name: v.Name}
		copyBase(&c.base, &v.base)
		return c
	case *PseudoClassRefiner:
		c := &PseudoClassRefiner{Name: v.Name, RawArgs: v.RawArgs}
		copyBase(&c.base, &v.base)
		if v.NotSelector != nil {
			c.NotSelector = DeepCopy(v.NotSelector).(*SelectorList)
		}
		return c
	case *PseudoElementRefiner:
		c := &PseudoElementRefiner{Name: v.Name}
		copyBase(&c.base, &v.base)
		return c
	case *AttributeRefiner:
		c := &AttributeRefiner{
			Name: v.Name, Operator: v.Operator, Value: v.Value,
			CaseInsensitive: v.CaseInsensitive,
		}
		copyBase(&c.base, &v.base)
		return c

	case *PropertyValue:
		c := NewPropertyValue()
		copyBase(&c.base, &v.base)
		copyValueList(c.Values, v.Values)
		return c
	case *Property:
		c := &Property{Name: v.Name, Raw: v.Raw, Meta: v.Meta}
		copyBase(&c.base, &v.base)
		return c
	case *Declaration:
		var prop *Property
		var values *PropertyValue
		if v.Prop != nil {
			prop = DeepCopy(v.Prop).(*Property)
		}
		if v.Values != nil {
			values = DeepCopy(v.Values).(*PropertyValue)
		}
		c := NewDeclaration(prop, values)
		c.StarHack = v.StarHack
		copyBase(&c.base, &v.base)
		return c

	case *AtRule:
		c := NewAtRule(v.Kind, v.Name)
		c.RawParams = v.RawParams
		c.Important = v.Important
		c.Namespace = v.Namespace
		c.MixinParams = append([]MixinParam(nil), v.MixinParams...)
		copyBase(&c.base, &v.base)
		if v.DefValue != nil {
			c.SetDefValue(DeepCopy(v.DefValue).(*PropertyValue))
		}
		if v.MixinArgs != nil {
			copyValueList(c.MixinArgs, v.MixinArgs)
		}
		if v.For != nil {
			fl := &ForLoopSpec{Var: v.For.Var, LoopID: v.For.LoopID}
			if v.For.From != nil {
				fl.From = DeepCopy(v.For.From).(Value)
			}
			if v.For.To != nil {
				fl.To = DeepCopy(v.For.To).(Value)
			}
			if v.For.Step != nil {
				fl.Step = DeepCopy(v.For.Step).(Value)
			}
			if v.For.Body != nil {
				fl.Body = DeepCopy(v.For.Body).(*Block)
			}
			c.For = fl
		}
		if v.Body != nil {
			c.SetBody(DeepCopy(v.Body))
		}
		if v.Keyframes != nil {
			c.InitKeyframes()
			for i := 0; i < v.Keyframes.Len(); i++ {
				c.Keyframes.Add(DeepCopy(v.Keyframes.Item(i)).(*KeyframeRuleset))
			}
		}
		return c

	case *ConstantCondition:
		c := NewConstantCondition(v.Name, v.Negate)
		copyBase(&c.base, &v.base)
		return c
	case *NotCondition:
		var operand BooleanExpr
		if v.Operand != nil {
			operand = DeepCopy(v.Operand).(BooleanExpr)
		}
		c := NewNotCondition(operand)
		copyBase(&c.base, &v.base)
		return c
	case *AndCondition:
		ops := make([]BooleanExpr, len(v.Operands))
		for i, o := range v.Operands {
			ops[i] = DeepCopy(o).(BooleanExpr)
		}
		c := NewAndCondition(ops...)
		copyBase(&c.base, &v.base)
		return c
	case *OrCondition:
		ops := make([]BooleanExpr, len(v.Operands))
		for i, o := range v.Operands {
			ops[i] = DeepCopy(o).(BooleanExpr)
		}
		c := NewOrCondition(ops...)
		copyBase(&c.base, &v.base)
		return c
	case *ConditionalRule:
		var cond BooleanExpr
		var body *Block
		if v.Condition != nil {
			cond = DeepCopy(v.Condition).(BooleanExpr)
		}
		if v.Body != nil {
			body = DeepCopy(v.Body).(*Block)
		}
		c := NewConditionalRule(v.Kind, cond, body)
		copyBase(&c.base, &v.base)
		return c
	case *ConditionalBlock:
		c := NewConditionalBlock()
		copyBase(&c.base, &v.base)
		for i := 0; i < v.Arms.Len(); i++ {
			c.Arms.Add(DeepCopy(v.Arms.Item(i)).(*ConditionalRule))
		}
		return c

	case *Key:
		c := NewKey(v.Percent, v.Keyword)
		copyBase(&c.base, &v.base)
		return c
	case *KeyList:
		c := NewKeyList()
		copyBase(&c.base, &v.base)
		for i := 0; i < v.Keys.Len(); i++ {
			c.Keys.Add(DeepCopy(v.Keys.Item(i)).(*Key))
		}
		return c
	case *KeyframeRuleset:
		var keys *KeyList
		var block *DeclarationBlock
		if v.Keys != nil {
			keys = DeepCopy(v.Keys).(*KeyList)
		}
		if v.Block != nil {
			block = DeepCopy(v.Block).(*DeclarationBlock)
		}
		c := NewKeyframeRuleset(keys, block)
		copyBase(&c.base, &v.base)
		return c

	case *ImportRule:
		c := &ImportRule{Path: v.Path, IsURL: v.IsURL, MediaRaw: v.MediaRaw, Reference: v.Reference}
		copyBase(&c.base, &v.base)
		return c
	case *ImportBlock:
		c := NewImportBlock()
		copyBase(&c.base, &v.base)
		for i := 0; i < v.Imports.Len(); i++ {
			c.Imports.Add(DeepCopy(v.Imports.Item(i)).(*ImportRule))
		}
		return c
	case *Block:
		c := NewBlock()
		copyBase(&c.base, &v.base)
		for i := 0; i < v.Statements.Len(); i++ {
			c.Statements.Add(DeepCopy(v.Statements.Item(i)).(Statement))
		}
		return c
	case *DeclarationBlock:
		c := NewDeclarationBlock()
		copyBase(&c.base, &v.base)
		for i := 0; i < v.Declarations.Len(); i++ {
			c.Declarations.Add(DeepCopy(v.Declarations.Item(i)).(Declarative))
		}
		return c
	case *Ruleset:
		var selectors *SelectorList
		var block *DeclarationBlock
		if v.Selectors != nil {
			selectors = DeepCopy(v.Selectors).(*SelectorList)
		}
		if v.Block != nil {
			block = DeepCopy(v.Block).(*DeclarationBlock)
		}
		c := NewRuleset(selectors, block)
		c.Namespace = v.Namespace
		copyBase(&c.base, &v.base)
		return c
	case *Root:
		c := NewRoot(v.Source)
		copyBase(&c.base, &v.base)
		c.Imports = DeepCopy(v.Imports).(*ImportBlock)
		attach(c.Imports, c)
		for i := 0; i < v.Statements.Len(); i++ {
			c.Statements.Add(DeepCopy(v.Statements.Item(i)).(Statement))
		}
		return c

	default:
		fail("DeepCopy: unhandled node kind %T", n)
		return nil
	}
}

// copyBase copies location and chunk id, and deep-copies comments, from
// src into dst. Parent is left unset; the caller's attach/NewX call wires
// it.
func copyBase(dst, src *base) {
	dst.location = src.location
	dst.chunk = src.chunk
	if src.comments != nil {
		comments := make([]*Comment, len(src.comments))
		for i, c := range src.comments {
			comments[i] = DeepCopy(c).(*Comment)
		}
		dst.comments = comments
	}
}

// copyValueList deep-copies every element of src into dst, which must
// already be an empty, owner-attached list.
func copyValueList(dst, src *NodeList[Value]) {
	for i := 0; i < src.Len(); i++ {
		dst.Add(DeepCopy(src.Item(i)).(Value))
	}
}
