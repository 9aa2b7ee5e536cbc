package ast

import (
	"mica/internal/source"
	"mica/internal/token"
)

// TypeKind enumerates the built-in type names.
type TypeKind uint8

const (
	TypeInvalid TypeKind = iota
	TypeInt
	TypeFloat
	TypeBool
	TypeString
	TypeVoid
)

func (k TypeKind) String() string {
	switch k {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "bool"
	case TypeString:
		return "string"
	case TypeVoid:
		return "void"
	}
	return "<invalid>"
}

// TypeSpec is a type name as written in the source.
type TypeSpec struct {
	Kind TypeKind
	Span source.Span
}

// TypeKindOf maps a type keyword token to its TypeKind, or TypeInvalid
// for any other token kind.
func TypeKindOf(k token.Kind) TypeKind {
	switch k {
	case token.KwInt:
		return TypeInt
	case token.KwFloat:
		return TypeFloat
	case token.KwBool:
		return TypeBool
	case token.KwString:
		return TypeString
	case token.KwVoid:
		return TypeVoid
	}
	return TypeInvalid
}
