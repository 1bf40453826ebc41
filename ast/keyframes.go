package ast

// Key is one keyframe selector key: a percentage (0-100) or the `from`/
// `to` keywords, normalized to 0/100 at parse time with Keyword recording
// which spelling was used (serializers preserve it).
type Key struct {
	base
	Percent float64
	Keyword string // "", "from", "to"
}

func NewKey(percent float64, keyword string) *Key {
	return &Key{Percent: percent, Keyword: keyword}
}

// KeyList is a comma-separated group of keyframe keys (e.g. `0%, 50%`).
type KeyList struct {
	base
	Keys *NodeList[*Key]
}

func NewKeyList() *KeyList {
	kl := &KeyList{}
	kl.Keys = NewNodeList[*Key](kl)
	return kl
}

// KeyframeRuleset is one `<keys> { <declarations> }` block inside an
// `@keyframes` AtRule.
type KeyframeRuleset struct {
	base
	Keys  *KeyList
	Block *DeclarationBlock
}

func NewKeyframeRuleset(keys *KeyList, block *DeclarationBlock) *KeyframeRuleset {
	r := &KeyframeRuleset{}
	if keys != nil {
		attach(keys, r)
	}
	r.Keys = keys
	if block != nil {
		attach(block, r)
	}
	r.Block = block
	return r
}
