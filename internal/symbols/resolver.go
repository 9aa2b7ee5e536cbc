package symbols

import (
	"fmt"

	"mica/internal/diag"
	"mica/internal/source"
)

// ResolverOptions configures resolver construction.
type ResolverOptions struct {
	Reporter diag.Reporter
	Prelude  []PreludeEntry
}

// PreludeEntry describes a symbol injected before source traversal.
// A nil Signature on a function entry disables argument count checking.
type PreludeEntry struct {
	Name      string
	Kind      SymbolKind
	Signature *FunctionSignature
}

// Resolver drives scope management and declaration/lookup routines.
// Shadowing an outer-scope name is allowed and silent; only a duplicate
// within the same scope is an error.
type Resolver struct {
	table    *Table
	reporter diag.Reporter
	stack    []ScopeID
}

// NewResolver wires a resolver to an existing scope stack. If root is valid
// it becomes the current scope; otherwise scope-sensitive operations are
// no-ops.
func NewResolver(table *Table, root ScopeID, opts ResolverOptions) *Resolver {
	r := &Resolver{
		table:    table,
		reporter: opts.Reporter,
		stack:    make([]ScopeID, 0, 8),
	}
	if root.IsValid() {
		r.stack = append(r.stack, root)
		if len(opts.Prelude) > 0 {
			r.installPrelude(root, opts.Prelude)
		}
	}
	return r
}

// CurrentScope returns the scope at the top of the stack.
func (r *Resolver) CurrentScope() ScopeID {
	if len(r.stack) == 0 {
		return NoScopeID
	}
	return r.stack[len(r.stack)-1]
}

// Enter creates a child scope, pushes it onto the stack, and returns its ID.
func (r *Resolver) Enter(kind ScopeKind, owner ScopeOwner, span source.Span) ScopeID {
	parent := r.CurrentScope()
	scope := r.table.Scopes.New(kind, parent, owner, span)
	r.stack = append(r.stack, scope)
	return scope
}

// Leave pops the current scope.
func (r *Resolver) Leave(expected ScopeID) {
	if len(r.stack) == 0 {
		return
	}
	top := r.stack[len(r.stack)-1]
	if expected.IsValid() && top != expected {
		panic(fmt.Sprintf("scope stack mismatch: closing #%d while expecting #%d", top, expected))
	}
	r.stack = r.stack[:len(r.stack)-1]
}

// Declare installs a symbol into the current scope. A name already bound in
// the same scope is a duplicate: the error is reported, the first binding
// wins, and NoSymbolID is returned.
func (r *Resolver) Declare(sym Symbol) (SymbolID, bool) {
	scopeID := r.CurrentScope()
	if !scopeID.IsValid() {
		return NoSymbolID, false
	}
	scope := r.table.Scopes.Get(scopeID)
	if scope == nil {
		return NoSymbolID, false
	}

	if existing, ok := scope.NameIndex[sym.Name]; ok {
		r.reportDuplicateSymbol(sym.Name, sym.Span, existing)
		return NoSymbolID, false
	}

	sym.Scope = scopeID
	id := r.table.Symbols.New(&sym)
	scope.Symbols = append(scope.Symbols, id)
	scope.NameIndex[sym.Name] = id
	return id, true
}

// Lookup walks the scope chain innermost-first for a symbol with the name.
func (r *Resolver) Lookup(name source.StringID) (SymbolID, bool) {
	scopeID := r.CurrentScope()
	for scopeID.IsValid() {
		scope := r.table.Scopes.Get(scopeID)
		if scope == nil {
			break
		}
		if id, ok := scope.NameIndex[name]; ok {
			return id, true
		}
		scopeID = scope.Parent
	}
	return NoSymbolID, false
}

func (r *Resolver) reportDuplicateSymbol(name source.StringID, span source.Span, prev SymbolID) {
	if r.reporter == nil {
		return
	}
	nameStr := r.table.Strings.MustLookup(name)
	msg := fmt.Sprintf("duplicate declaration of '%s'", nameStr)
	prevSym := r.table.Symbols.Get(prev)
	if prevSym != nil && prevSym.Flags&SymbolFlagBuiltin != 0 {
		msg = fmt.Sprintf("'%s' redeclares a built-in", nameStr)
	}
	builder := diag.ReportError(r.reporter, diag.SemaDuplicateSymbol, span, msg)
	if prevSym != nil && prevSym.Span != (source.Span{}) {
		builder.WithNote(prevSym.Span, "previous declaration here")
	}
	builder.Emit()
}

// installPrelude declares built-in entries into the root scope.
func (r *Resolver) installPrelude(scopeID ScopeID, entries []PreludeEntry) {
	scope := r.table.Scopes.Get(scopeID)
	if scope == nil {
		return
	}
	for _, entry := range entries {
		nameID := r.table.Strings.Intern(entry.Name)
		sym := Symbol{
			Name:      nameID,
			Kind:      entry.Kind,
			Scope:     scopeID,
			Flags:     SymbolFlagBuiltin,
			Signature: entry.Signature,
		}
		id := r.table.Symbols.New(&sym)
		scope.Symbols = append(scope.Symbols, id)
		scope.NameIndex[nameID] = id
	}
}
