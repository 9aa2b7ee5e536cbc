package token

import (
	"mica/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, boolean, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, Percent, Assign, EqEq, Bang, BangEq,
		Lt, LtEq, Gt, GtEq, AndAnd, OrOr,
		Semicolon, Comma, LParen, RParen, LBrace, RBrace:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwInt, KwFloat, KwBool, KwString, KwVoid,
		KwIf, KwElse, KwWhile, KwReturn, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsType reports whether the token names one of the primitive types.
func (t Token) IsType() bool {
	switch t.Kind {
	case KwInt, KwFloat, KwBool, KwString, KwVoid:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
