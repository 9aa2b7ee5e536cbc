package driver

import (
	"fortio.org/safecast"

	"mica/internal/ast"
	"mica/internal/diag"
	"mica/internal/lexer"
	"mica/internal/parser"
	"mica/internal/source"
)

// ParseResult carries the artifacts of one parse run.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	FileID  ast.FileID
	Bag     *diag.Bag
	Ok      bool
}

// Parse loads and parses one file. Lexical diagnostics land in the same
// bag as syntax diagnostics through the lexer's reporter seam.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	maxDiagnostics = normalizeMax(maxDiagnostics)
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	builder := ast.NewBuilder(ast.Hints{})
	lx := lexer.New(file, lexer.Options{
		Reporter: &lexer.BagAdapter{Bag: bag},
		Interner: builder.StringsInterner,
	})

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}

	result := parser.ParseFile(fs, lx, builder, parser.Options{
		Reporter:  diag.NewBagReporter(bag),
		MaxErrors: maxErrors,
	})

	bag.Sort()
	bag.Dedup()
	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		FileID:  result.File,
		Bag:     bag,
		Ok:      result.Ok && !bag.HasErrors(),
	}, nil
}
