package lexer

import (
	"mica/internal/diag"
	"mica/internal/source"
)

// BagAdapter forwards scanner reports to a diag.Bag as errors.
type BagAdapter struct {
	Bag *diag.Bag
}

func (a *BagAdapter) Report(code diag.Code, sp source.Span, msg string) {
	a.Bag.Add(diag.NewError(code, sp, msg))
}
