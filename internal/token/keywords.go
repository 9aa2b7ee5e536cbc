package token

var keywords = map[string]Kind{
	"int":    KwInt,
	"float":  KwFloat,
	"bool":   KwBool,
	"string": KwString,
	"void":   KwVoid,
	"if":     KwIf,
	"else":   KwElse,
	"while":  KwWhile,
	"return": KwReturn,
	"true":   KwTrue,
	"false":  KwFalse,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-sensitive; only lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
