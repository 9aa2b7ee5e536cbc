package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/safecast"

	"mica/internal/ast"
	"mica/internal/source"
	"mica/internal/symbols"
)

// SemanticsInput carries the data required to build a semantic dump.
type SemanticsInput struct {
	Builder *ast.Builder
	FileID  ast.FileID
	Result  *symbols.Result
}

// SemanticsOutput represents semantic data emitted alongside diagnostics.
type SemanticsOutput struct {
	Scopes  []ScopeJSON  `json:"scopes"`
	Symbols []SymbolJSON `json:"symbols"`
}

type ScopeJSON struct {
	ID     uint32         `json:"id"`
	Kind   string         `json:"kind"`
	Parent uint32         `json:"parent,omitempty"`
	Span   source.Span    `json:"span"`
	Owner  ScopeOwnerJSON `json:"owner"`
}

type ScopeOwnerJSON struct {
	Kind string `json:"kind"`
	Item uint32 `json:"item,omitempty"`
	Stmt uint32 `json:"stmt,omitempty"`
}

type SymbolJSON struct {
	ID        uint32      `json:"id"`
	Name      string      `json:"name"`
	Kind      string      `json:"kind"`
	Scope     uint32      `json:"scope"`
	Span      source.Span `json:"span"`
	Type      string      `json:"type,omitempty"`
	Signature string      `json:"signature,omitempty"`
	Flags     []string    `json:"flags,omitempty"`
}

func buildSemanticsOutput(in *SemanticsInput) (*SemanticsOutput, error) {
	if in == nil || in.Result == nil || in.Result.Table == nil {
		return nil, nil
	}

	table := in.Result.Table
	if table.Scopes == nil || table.Symbols == nil {
		return nil, nil
	}

	strs := table.Strings
	if strs == nil && in.Builder != nil {
		strs = in.Builder.StringsInterner
	}
	if strs == nil {
		return nil, fmt.Errorf("semantics: missing string interner")
	}

	output := &SemanticsOutput{
		Scopes:  make([]ScopeJSON, 0, table.Scopes.Len()),
		Symbols: make([]SymbolJSON, 0, table.Symbols.Len()),
	}

	// Arenas keep a sentinel at index 0, so IDs are idx+1.
	for idx, scope := range table.Scopes.Data() {
		id, err := safecast.Conv[uint32](idx + 1)
		if err != nil {
			return nil, fmt.Errorf("semantics: scope id overflow: %w", err)
		}
		owner := ScopeOwnerJSON{Kind: scopeOwnerKindString(scope.Owner.Kind)}
		if scope.Owner.Item.IsValid() {
			owner.Item = uint32(scope.Owner.Item)
		}
		if scope.Owner.Stmt.IsValid() {
			owner.Stmt = uint32(scope.Owner.Stmt)
		}
		output.Scopes = append(output.Scopes, ScopeJSON{
			ID:     id,
			Kind:   scope.Kind.String(),
			Parent: uint32(scope.Parent),
			Span:   scope.Span,
			Owner:  owner,
		})
	}

	for idx, sym := range table.Symbols.Data() {
		id, err := safecast.Conv[uint32](idx + 1)
		if err != nil {
			return nil, fmt.Errorf("semantics: symbol id overflow: %w", err)
		}
		name := strs.MustLookup(sym.Name)
		out := SymbolJSON{
			ID:    id,
			Name:  name,
			Kind:  sym.Kind.String(),
			Scope: uint32(sym.Scope),
			Span:  sym.Span,
			Flags: sym.Flags.Strings(),
		}
		if sym.Kind == symbols.SymbolFunction {
			out.Signature = sym.Signature.Render(name, strs)
		} else if sym.Type != ast.TypeInvalid {
			out.Type = sym.Type.String()
		}
		output.Symbols = append(output.Symbols, out)
	}

	return output, nil
}

// FormatSemanticsPretty dumps the scope tree with its symbols, indented by
// nesting depth.
func FormatSemanticsPretty(w io.Writer, in *SemanticsInput) error {
	out, err := buildSemanticsOutput(in)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}

	table := in.Result.Table
	strs := table.Strings
	var dump func(id symbols.ScopeID, depth int)
	dump = func(id symbols.ScopeID, depth int) {
		scope := table.Scopes.Get(id)
		if scope == nil {
			return
		}
		indent := strings.Repeat("  ", depth)
		fmt.Fprintf(w, "%s%s scope #%d\n", indent, scope.Kind, id)
		for _, symID := range scope.Symbols {
			sym := table.Symbols.Get(symID)
			if sym == nil {
				continue
			}
			name := strs.MustLookup(sym.Name)
			switch {
			case sym.Kind == symbols.SymbolFunction:
				fmt.Fprintf(w, "%s  %s %s\n", indent, sym.Kind, sym.Signature.Render(name, strs))
			case sym.Type != ast.TypeInvalid:
				fmt.Fprintf(w, "%s  %s %s %s\n", indent, sym.Kind, sym.Type, name)
			default:
				fmt.Fprintf(w, "%s  %s %s\n", indent, sym.Kind, name)
			}
		}
		for _, child := range scope.Children {
			dump(child, depth+1)
		}
	}
	dump(in.Result.FileScope, 0)
	return nil
}

func scopeOwnerKindString(kind symbols.ScopeOwnerKind) string {
	switch kind {
	case symbols.ScopeOwnerFile:
		return "file"
	case symbols.ScopeOwnerItem:
		return "item"
	case symbols.ScopeOwnerStmt:
		return "stmt"
	default:
		return "unknown"
	}
}
