package symbols

import (
	"mica/internal/ast"
	"mica/internal/source"
)

// ScopeKind enumerates supported scope categories.
type ScopeKind uint8

const (
	ScopeInvalid  ScopeKind = iota
	ScopeFile               // file-level declarations (globals and functions)
	ScopeFunction           // function parameters
	ScopeBlock              // braced statement list
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeFile:
		return "file"
	case ScopeFunction:
		return "function"
	case ScopeBlock:
		return "block"
	default:
		return "invalid"
	}
}

// ScopeOwnerKind distinguishes what AST element owns a scope.
type ScopeOwnerKind uint8

const (
	ScopeOwnerUnknown ScopeOwnerKind = iota
	ScopeOwnerFile
	ScopeOwnerItem
	ScopeOwnerStmt
)

// ScopeOwner references the AST construct associated with the scope.
type ScopeOwner struct {
	Kind       ScopeOwnerKind
	SourceFile source.FileID
	ASTFile    ast.FileID
	Item       ast.ItemID
	Stmt       ast.StmtID
}

// Scope models a lexical scope. Parent is an ID back-link rather than a
// pointer so the arena stays relocatable.
type Scope struct {
	Kind      ScopeKind
	Parent    ScopeID
	Owner     ScopeOwner
	Span      source.Span
	NameIndex map[source.StringID]SymbolID
	Symbols   []SymbolID
	Children  []ScopeID
}
