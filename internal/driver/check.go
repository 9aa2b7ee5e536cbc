package driver

import (
	"fortio.org/safecast"

	"mica/internal/ast"
	"mica/internal/diag"
	"mica/internal/lexer"
	"mica/internal/parser"
	"mica/internal/source"
	"mica/internal/symbols"
)

// CheckOptions configures a full front-end run.
type CheckOptions struct {
	MaxDiagnostics int
	// Prelude symbols installed into the file scope before resolution.
	// Nil means DefaultPrelude().
	Prelude []symbols.PreludeEntry
}

// CheckResult carries the artifacts of tokenize + parse + resolve.
type CheckResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	FileID  ast.FileID
	Bag     *diag.Bag
	// Symbols is nil when resolution was skipped because of parse errors.
	Symbols *symbols.Result
	ParseOk bool
	Ok      bool
}

// DefaultPrelude returns the built-in symbols every file sees. print has
// no signature, so calls to it accept any argument count.
func DefaultPrelude() []symbols.PreludeEntry {
	return []symbols.PreludeEntry{
		{Name: "print", Kind: symbols.SymbolFunction},
	}
}

// Check runs the whole front end over one file. The resolver only runs
// when the parse produced no errors; a broken tree is never resolved.
func Check(path string, opts CheckOptions) (*CheckResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return checkLoaded(fs, fileID, opts)
}

// CheckSource checks in-memory content under a virtual path. Used by
// tests and by embedders that do not own files on disk.
func CheckSource(name string, content []byte, opts CheckOptions) (*CheckResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return checkLoaded(fs, fileID, opts)
}

func checkLoaded(fs *source.FileSet, fileID source.FileID, opts CheckOptions) (*CheckResult, error) {
	opts.MaxDiagnostics = normalizeMax(opts.MaxDiagnostics)
	file := fs.Get(fileID)
	bag := diag.NewBag(opts.MaxDiagnostics)
	builder := ast.NewBuilder(ast.Hints{})
	lx := lexer.New(file, lexer.Options{
		Reporter: &lexer.BagAdapter{Bag: bag},
		Interner: builder.StringsInterner,
	})

	maxErrors, err := safecast.Conv[uint](opts.MaxDiagnostics)
	if err != nil {
		return nil, err
	}

	parsed := parser.ParseFile(fs, lx, builder, parser.Options{
		Reporter:  diag.NewBagReporter(bag),
		MaxErrors: maxErrors,
	})

	res := &CheckResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		FileID:  parsed.File,
		Bag:     bag,
		ParseOk: parsed.Ok && !bag.HasErrors(),
	}

	if res.ParseOk {
		prelude := opts.Prelude
		if prelude == nil {
			prelude = DefaultPrelude()
		}
		resolved := symbols.ResolveFile(builder, fileID, parsed.File, symbols.ResolveOptions{
			Prelude:  prelude,
			Reporter: diag.NewBagReporter(bag),
		})
		res.Symbols = &resolved
	}

	bag.Sort()
	bag.Dedup()
	res.Ok = res.ParseOk && !bag.HasErrors()
	return res, nil
}
