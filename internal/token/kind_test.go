package token_test

import (
	"testing"

	"mica/internal/source"
	"mica/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{
		token.IntLit, token.FloatLit, token.StringLit, token.KwTrue, token.KwFalse,
	}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwInt, token.Plus, token.LParen}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsPunctOrOp(t *testing.T) {
	ops := []token.Kind{
		token.Plus, token.Minus, token.Star, token.Slash, token.Percent,
		token.Assign, token.EqEq, token.Bang, token.BangEq,
		token.Lt, token.LtEq, token.Gt, token.GtEq,
		token.AndAnd, token.OrOr,
		token.Semicolon, token.Comma,
		token.LParen, token.RParen, token.LBrace, token.RBrace,
	}
	for _, k := range ops {
		if !tok(k).IsPunctOrOp() {
			t.Fatalf("%v should be punct/op", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwIf, token.IntLit}
	for _, k := range non {
		if tok(k).IsPunctOrOp() {
			t.Fatalf("%v must NOT be punct/op", k)
		}
	}
}

func TestIsKeywordAndType(t *testing.T) {
	keywords := []token.Kind{
		token.KwInt, token.KwFloat, token.KwBool, token.KwString, token.KwVoid,
		token.KwIf, token.KwElse, token.KwWhile, token.KwReturn,
		token.KwTrue, token.KwFalse,
	}
	for _, k := range keywords {
		if !tok(k).IsKeyword() {
			t.Fatalf("%v should be keyword", k)
		}
	}

	types := []token.Kind{token.KwInt, token.KwFloat, token.KwBool, token.KwString, token.KwVoid}
	for _, k := range types {
		if !tok(k).IsType() {
			t.Fatalf("%v should be a type keyword", k)
		}
	}
	if tok(token.KwIf).IsType() {
		t.Fatalf("KwIf must not be a type keyword")
	}
}

func TestIsIdent(t *testing.T) {
	if !tok(token.Ident).IsIdent() {
		t.Fatalf("Ident should be ident")
	}
	if tok(token.KwInt).IsIdent() {
		t.Fatalf("KwInt must not be ident")
	}
}

func TestKindString(t *testing.T) {
	if token.KwWhile.String() != "KwWhile" {
		t.Fatalf("KwWhile.String() = %q", token.KwWhile.String())
	}
	if token.Kind(250).String() != "Kind(?)" {
		t.Fatalf("out-of-range kind must stringify to Kind(?)")
	}
}
