package parser

import (
	"testing"

	"mica/internal/ast"
	"mica/internal/diag"
	"mica/internal/lexer"
	"mica/internal/source"
)

type parseFixture struct {
	fs     *source.FileSet
	arenas *ast.Builder
	bag    *diag.Bag
	result Result
}

func parseSource(t *testing.T, src string) parseFixture {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.mi", []byte(src))
	bag := diag.NewBag(64)
	arenas := ast.NewBuilder(ast.Hints{})
	lx := lexer.New(fs.Get(fileID), lexer.Options{
		Reporter: &lexer.BagAdapter{Bag: bag},
		Interner: arenas.StringsInterner,
	})
	result := ParseFile(fs, lx, arenas, Options{
		Reporter: diag.NewBagReporter(bag),
	})
	return parseFixture{fs: fs, arenas: arenas, bag: bag, result: result}
}

func (f parseFixture) items(t *testing.T) []ast.ItemID {
	t.Helper()
	return f.arenas.Files.Get(f.result.File).Items
}

func (f parseFixture) name(id source.StringID) string {
	return f.arenas.StringsInterner.MustLookup(id)
}

func (f parseFixture) requireOk(t *testing.T) {
	t.Helper()
	if !f.result.Ok {
		t.Fatalf("parse failed with diagnostics: %v", f.bag.Items())
	}
}

func (f parseFixture) requireCodes(t *testing.T, codes ...diag.Code) {
	t.Helper()
	for _, want := range codes {
		found := false
		for _, d := range f.bag.Items() {
			if d.Code == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing diagnostic %s in %v", want.ID(), f.bag.Items())
		}
	}
}
