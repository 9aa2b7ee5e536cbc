package driver

import (
	"mica/internal/diag"
	"mica/internal/lexer"
	"mica/internal/source"
	"mica/internal/token"
)

// TokenizeResult carries everything the tokenize command needs to render.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// DefaultMaxDiagnostics caps a run's bag when the caller passes no limit.
const DefaultMaxDiagnostics = 100

func normalizeMax(maxDiagnostics int) int {
	if maxDiagnostics <= 0 {
		return DefaultMaxDiagnostics
	}
	return maxDiagnostics
}

// Tokenize loads one file and scans it to EOF. Every run builds a fresh
// FileSet and Bag; nothing is shared between calls.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	maxDiagnostics = normalizeMax(maxDiagnostics)
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	tokens := lexer.ScanAll(file, lexer.Options{
		Reporter: &lexer.BagAdapter{Bag: bag},
	})

	bag.Sort()
	bag.Dedup()
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}
