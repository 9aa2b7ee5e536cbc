package ast

import (
	"mica/internal/source"
)

// ExprKind enumerates the different kinds of expressions.
type ExprKind uint8

const (
	// ExprIdent is a variable reference.
	ExprIdent ExprKind = iota
	// ExprLit is a literal value.
	ExprLit
	// ExprUnary is a prefix operator application.
	ExprUnary
	// ExprBinary is an infix operator application.
	ExprBinary
	// ExprCall is a function call.
	ExprCall
	// ExprGroup is a parenthesized expression.
	ExprGroup
)

// Expr is an expression node. Payload indexes the per-kind arena.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// ExprLitKind enumerates literal kinds.
type ExprLitKind uint8

const (
	LitInt ExprLitKind = iota
	LitFloat
	LitString
	LitBool
)

func (k ExprLitKind) String() string {
	switch k {
	case LitInt:
		return "int"
	case LitFloat:
		return "float"
	case LitString:
		return "string"
	case LitBool:
		return "bool"
	}
	return "<invalid>"
}

// ExprUnaryOp enumerates prefix operators.
type ExprUnaryOp uint8

const (
	// ExprUnaryNeg is arithmetic negation (-).
	ExprUnaryNeg ExprUnaryOp = iota
	// ExprUnaryNot is logical negation (!).
	ExprUnaryNot
)

func (op ExprUnaryOp) String() string {
	switch op {
	case ExprUnaryNeg:
		return "-"
	case ExprUnaryNot:
		return "!"
	}
	return "?"
}

// ExprBinaryOp enumerates infix operators.
type ExprBinaryOp uint8

const (
	ExprBinaryAdd ExprBinaryOp = iota
	ExprBinarySub
	ExprBinaryMul
	ExprBinaryDiv
	ExprBinaryMod

	ExprBinaryLess
	ExprBinaryLessEq
	ExprBinaryGreater
	ExprBinaryGreaterEq
	ExprBinaryEq
	ExprBinaryNotEq

	ExprBinaryLogicalAnd
	ExprBinaryLogicalOr
)

// String returns the symbol representation of a binary operator.
func (op ExprBinaryOp) String() string {
	switch op {
	case ExprBinaryAdd:
		return "+"
	case ExprBinarySub:
		return "-"
	case ExprBinaryMul:
		return "*"
	case ExprBinaryDiv:
		return "/"
	case ExprBinaryMod:
		return "%"
	case ExprBinaryLess:
		return "<"
	case ExprBinaryLessEq:
		return "<="
	case ExprBinaryGreater:
		return ">"
	case ExprBinaryGreaterEq:
		return ">="
	case ExprBinaryEq:
		return "=="
	case ExprBinaryNotEq:
		return "!="
	case ExprBinaryLogicalAnd:
		return "&&"
	case ExprBinaryLogicalOr:
		return "||"
	}
	return "?"
}

// ExprIdentData is the payload for ExprIdent.
type ExprIdentData struct {
	Name source.StringID
}

// ExprLiteralData is the payload for ExprLit. Value holds the source text
// of the literal.
type ExprLiteralData struct {
	Kind  ExprLitKind
	Value source.StringID
}

// ExprUnaryData is the payload for ExprUnary.
type ExprUnaryData struct {
	Op      ExprUnaryOp
	Operand ExprID
}

// ExprBinaryData is the payload for ExprBinary.
type ExprBinaryData struct {
	Op    ExprBinaryOp
	Left  ExprID
	Right ExprID
}

// ExprCallData is the payload for ExprCall. Calls are always through a bare
// function name.
type ExprCallData struct {
	Callee     source.StringID
	CalleeSpan source.Span
	Args       []ExprID
}

// ExprGroupData is the payload for ExprGroup.
type ExprGroupData struct {
	Inner ExprID
}
