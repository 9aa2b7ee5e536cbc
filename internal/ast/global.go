package ast

import (
	"mica/internal/source"
)

// GlobalItem is a file-level variable declaration. Init is NoExprID when
// the declaration has no initializer.
type GlobalItem struct {
	Name     source.StringID
	NameSpan source.Span
	Type     TypeSpec
	Init     ExprID
	Span     source.Span
}

func (i *Items) Global(id ItemID) (*GlobalItem, bool) {
	item := i.Arena.Get(uint32(id))
	if item == nil || item.Kind != ItemGlobal {
		return nil, false
	}
	return i.Globals.Get(uint32(item.Payload)), true
}

func (i *Items) NewGlobal(
	name source.StringID,
	nameSpan source.Span,
	typ TypeSpec,
	init ExprID,
	span source.Span,
) ItemID {
	payload := i.Globals.Allocate(GlobalItem{
		Name:     name,
		NameSpan: nameSpan,
		Type:     typ,
		Init:     init,
		Span:     span,
	})
	return i.New(ItemGlobal, span, PayloadID(payload))
}
