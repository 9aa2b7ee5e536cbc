package ast

import (
	"mica/internal/source"
)

type ItemKind uint8

const (
	// ItemFn is a function declaration.
	ItemFn ItemKind = iota
	// ItemGlobal is a file-level variable declaration.
	ItemGlobal
)

type Item struct {
	Kind    ItemKind
	Span    source.Span
	Payload PayloadID
}

// Items manages allocation of top-level declarations and their payloads.
type Items struct {
	Arena   *Arena[Item]
	Fns     *Arena[FnItem]
	Params  *Arena[Param]
	Globals *Arena[GlobalItem]
}

func NewItems(capHint uint) *Items {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Items{
		Arena:   NewArena[Item](capHint),
		Fns:     NewArena[FnItem](capHint),
		Params:  NewArena[Param](capHint),
		Globals: NewArena[GlobalItem](capHint),
	}
}

func (i *Items) New(kind ItemKind, span source.Span, payloadID PayloadID) ItemID {
	return ItemID(i.Arena.Allocate(Item{
		Kind:    kind,
		Span:    span,
		Payload: payloadID,
	}))
}

func (i *Items) Get(id ItemID) *Item {
	return i.Arena.Get(uint32(id))
}
