package symbols

import (
	"mica/internal/ast"
	"mica/internal/diag"
	"mica/internal/source"
)

// ResolveOptions configure a single ResolveFile run.
type ResolveOptions struct {
	// Table to populate. Nil allocates a fresh table sharing the builder
	// interner.
	Table    *Table
	Hints    Hints
	Prelude  []PreludeEntry
	Reporter diag.Reporter
}

// Result is what ResolveFile produces.
type Result struct {
	Table     *Table
	File      ast.FileID
	FileScope ScopeID
	// ItemSymbols maps each top-level item to its declared symbol.
	// Items whose declaration was rejected as a duplicate are absent.
	ItemSymbols map[ast.ItemID]SymbolID
}

// ResolveFile builds the scope tree for one parsed file and checks that
// every identifier use refers to a declaration. Functions are declared
// before anything else is resolved, so bodies and global initializers
// may call functions defined later in the file. Globals resolve top to
// bottom: an initializer sees only globals declared above it.
func ResolveFile(
	builder *ast.Builder,
	sourceFile source.FileID,
	fileID ast.FileID,
	opts ResolveOptions,
) Result {
	table := opts.Table
	if table == nil {
		table = NewTable(opts.Hints, builder.StringsInterner)
	}

	file := builder.Files.Get(fileID)
	var fileSpan source.Span
	if file != nil {
		fileSpan = file.Span
	}
	root := table.FileRoot(sourceFile, fileSpan)

	res := &resolution{
		builder:    builder,
		table:      table,
		sourceFile: sourceFile,
		astFile:    fileID,
		resolver: NewResolver(table, root, ResolverOptions{
			Reporter: opts.Reporter,
			Prelude:  opts.Prelude,
		}),
		reporter:    opts.Reporter,
		itemSymbols: make(map[ast.ItemID]SymbolID),
	}

	if file != nil {
		res.declareFunctions(file.Items)
		res.declareGlobals(file.Items)
		res.walkBodies(file.Items)
	}

	return Result{
		Table:       table,
		File:        fileID,
		FileScope:   root,
		ItemSymbols: res.itemSymbols,
	}
}

type resolution struct {
	builder     *ast.Builder
	table       *Table
	sourceFile  source.FileID
	astFile     ast.FileID
	resolver    *Resolver
	reporter    diag.Reporter
	itemSymbols map[ast.ItemID]SymbolID
}

// declareFunctions binds every function name first, hoisting them above
// global initializers and all bodies.
func (r *resolution) declareFunctions(items []ast.ItemID) {
	for _, itemID := range items {
		fn, ok := r.builder.Items.Fn(itemID)
		if !ok {
			continue
		}
		id, declared := r.resolver.Declare(Symbol{
			Name:      fn.Name,
			Kind:      SymbolFunction,
			Span:      fn.NameSpan,
			Type:      fn.Result.Kind,
			Decl:      SymbolDecl{SourceFile: r.sourceFile, ASTFile: r.astFile, Item: itemID},
			Signature: buildFunctionSignature(r.builder, fn),
		})
		if declared {
			r.itemSymbols[itemID] = id
		}
	}
}

// declareGlobals binds globals in declaration order, walking each
// initializer before its name becomes visible.
func (r *resolution) declareGlobals(items []ast.ItemID) {
	for _, itemID := range items {
		global, ok := r.builder.Items.Global(itemID)
		if !ok {
			continue
		}
		if global.Init.IsValid() {
			r.walkExpr(global.Init)
		}
		id, declared := r.resolver.Declare(Symbol{
			Name: global.Name,
			Kind: SymbolGlobal,
			Span: global.NameSpan,
			Type: global.Type.Kind,
			Decl: SymbolDecl{SourceFile: r.sourceFile, ASTFile: r.astFile, Item: itemID},
		})
		if declared {
			r.itemSymbols[itemID] = id
		}
	}
}

// walkBodies is the second pass: resolve each function body.
func (r *resolution) walkBodies(items []ast.ItemID) {
	for _, itemID := range items {
		fn, ok := r.builder.Items.Fn(itemID)
		if !ok {
			continue
		}
		r.walkFn(itemID, fn)
	}
}
