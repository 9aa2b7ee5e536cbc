package diag

import (
	"fmt"
)

// Code is a stable numeric identifier for a diagnostic kind.
// Ranges: 1xxx lexical, 2xxx syntax, 3xxx scope/semantic, 4xxx I/O.
type Code uint16

const (
	// UnknownCode is the fallback for diagnostics without a specific code.
	UnknownCode Code = 0

	// Lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004

	// Syntax
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnexpectedTopLevel Code = 2002
	SynExpectIdentifier   Code = 2003
	SynExpectType         Code = 2004
	SynExpectExpression   Code = 2005
	SynExpectSemicolon    Code = 2006
	SynUnclosedParen      Code = 2007
	SynUnclosedBrace      Code = 2008

	// Scope resolution
	SemaInfo             Code = 3000
	SemaError            Code = 3001
	SemaDuplicateSymbol  Code = 3002
	SemaUnresolvedSymbol Code = 3003
	SemaArgCountMismatch Code = 3004

	// Driver I/O
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown diagnostic",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Malformed numeric literal",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynUnexpectedTopLevel:       "Unexpected top-level construct",
	SynExpectIdentifier:         "Expected identifier",
	SynExpectType:               "Expected type name",
	SynExpectExpression:         "Expected expression",
	SynExpectSemicolon:          "Expected ';'",
	SynUnclosedParen:            "Unclosed parenthesis",
	SynUnclosedBrace:            "Unclosed brace",
	SemaInfo:                    "Scope information",
	SemaError:                   "Scope analysis error",
	SemaDuplicateSymbol:         "Duplicate declaration",
	SemaUnresolvedSymbol:        "Undeclared identifier",
	SemaArgCountMismatch:        "Argument count mismatch",
	IOLoadFileError:             "I/O load file error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
