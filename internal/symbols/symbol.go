package symbols

import (
	"mica/internal/ast"
	"mica/internal/source"
)

// SymbolKind classifies the semantic meaning of a symbol.
type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	SymbolFunction
	SymbolGlobal
	SymbolLocal
	SymbolParam
)

// SymbolFlags encode misc attributes for quick checks.
type SymbolFlags uint16

const (
	SymbolFlagBuiltin SymbolFlags = 1 << iota
)

// Strings renders set flags for dumps.
func (f SymbolFlags) Strings() []string {
	var out []string
	if f&SymbolFlagBuiltin != 0 {
		out = append(out, "builtin")
	}
	return out
}

func (k SymbolKind) String() string {
	switch k {
	case SymbolFunction:
		return "function"
	case SymbolGlobal:
		return "global"
	case SymbolLocal:
		return "local"
	case SymbolParam:
		return "param"
	default:
		return "invalid"
	}
}

// SymbolDecl records the AST origin for diagnostics.
type SymbolDecl struct {
	SourceFile source.FileID
	ASTFile    ast.FileID
	Item       ast.ItemID
	Stmt       ast.StmtID
}

// Symbol describes a named entity available in a scope. Signature is set
// only for functions. Type is the declared type for variables.
type Symbol struct {
	Name      source.StringID
	Kind      SymbolKind
	Scope     ScopeID
	Span      source.Span
	Flags     SymbolFlags
	Type      ast.TypeKind
	Decl      SymbolDecl
	Signature *FunctionSignature
}
