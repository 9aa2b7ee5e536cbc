package token_test

import (
	"testing"

	"mica/internal/token"
)

func TestLookupKeyword(t *testing.T) {
	cases := map[string]token.Kind{
		"int":    token.KwInt,
		"float":  token.KwFloat,
		"bool":   token.KwBool,
		"string": token.KwString,
		"void":   token.KwVoid,
		"if":     token.KwIf,
		"else":   token.KwElse,
		"while":  token.KwWhile,
		"return": token.KwReturn,
		"true":   token.KwTrue,
		"false":  token.KwFalse,
	}
	for word, want := range cases {
		got, ok := token.LookupKeyword(word)
		if !ok || got != want {
			t.Errorf("LookupKeyword(%q) = %v, %v; want %v", word, got, ok, want)
		}
	}
}

func TestLookupKeywordCaseSensitive(t *testing.T) {
	for _, word := range []string{"Int", "WHILE", "Return", "main", ""} {
		if _, ok := token.LookupKeyword(word); ok {
			t.Errorf("LookupKeyword(%q) must miss", word)
		}
	}
}
