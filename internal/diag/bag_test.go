package diag

import (
	"testing"

	"mica/internal/source"
)

func span(file, start, end uint32) source.Span {
	return source.Span{File: source.FileID(file), Start: start, End: end}
}

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)
	if !bag.Add(NewError(LexUnknownChar, span(1, 0, 1), "first")) {
		t.Fatalf("first Add should succeed")
	}
	if !bag.Add(NewError(LexUnknownChar, span(1, 1, 2), "second")) {
		t.Fatalf("second Add should succeed")
	}
	if bag.Add(NewError(LexUnknownChar, span(1, 2, 3), "third")) {
		t.Fatalf("third Add must be dropped at limit")
	}
	if bag.Len() != 2 {
		t.Fatalf("Len = %d, want 2", bag.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	bag := NewBag(8)
	if bag.HasErrors() {
		t.Fatalf("empty bag must not report errors")
	}
	bag.Add(New(SevInfo, SynInfo, span(1, 0, 1), "note"))
	bag.Add(New(SevWarning, SynUnexpectedToken, span(1, 0, 1), "warn"))
	if bag.HasErrors() {
		t.Fatalf("info+warning bag must not report errors")
	}
	if !bag.HasWarnings() {
		t.Fatalf("bag with a warning must report warnings")
	}
	bag.Add(NewError(SynExpectSemicolon, span(1, 2, 3), "missing ';'"))
	if !bag.HasErrors() {
		t.Fatalf("bag with an error must report errors")
	}
	if bag.ErrorCount() != 1 {
		t.Fatalf("ErrorCount = %d, want 1", bag.ErrorCount())
	}
}

func TestBagSortOrder(t *testing.T) {
	bag := NewBag(8)
	bag.Add(NewError(SemaUnresolvedSymbol, span(2, 5, 6), "later file"))
	bag.Add(NewError(SynExpectSemicolon, span(1, 10, 11), "later offset"))
	bag.Add(New(SevWarning, SynUnexpectedToken, span(1, 0, 1), "warning at zero"))
	bag.Add(NewError(LexUnknownChar, span(1, 0, 1), "error at zero"))
	bag.Sort()

	items := bag.Items()
	if items[0].Code != LexUnknownChar {
		t.Errorf("items[0].Code = %v, want error before warning at same span", items[0].Code)
	}
	if items[1].Code != SynUnexpectedToken {
		t.Errorf("items[1].Code = %v, want warning second", items[1].Code)
	}
	if items[2].Code != SynExpectSemicolon {
		t.Errorf("items[2].Code = %v, want offset 10 third", items[2].Code)
	}
	if items[3].Primary.File != 2 {
		t.Errorf("items[3].File = %v, want file 2 last", items[3].Primary.File)
	}
}

func TestBagDedup(t *testing.T) {
	bag := NewBag(8)
	bag.Add(NewError(SemaDuplicateSymbol, span(1, 4, 9), "duplicate 'x'"))
	bag.Add(NewError(SemaDuplicateSymbol, span(1, 4, 9), "duplicate 'x'"))
	bag.Add(NewError(SemaDuplicateSymbol, span(1, 20, 25), "duplicate 'y'"))
	bag.Dedup()
	if bag.Len() != 2 {
		t.Fatalf("Len after Dedup = %d, want 2", bag.Len())
	}
}

func TestNewBagClampsLimit(t *testing.T) {
	big := NewBag(70000)
	if big.Cap() != 65535 {
		t.Fatalf("Cap = %d, want 65535", big.Cap())
	}
	if !big.Add(NewError(LexUnknownChar, span(1, 0, 1), "kept")) {
		t.Fatalf("Add must succeed well under the clamped limit")
	}
	neg := NewBag(-1)
	if neg.Cap() != 0 {
		t.Fatalf("Cap = %d, want 0", neg.Cap())
	}
	if neg.Add(NewError(LexUnknownChar, span(1, 0, 1), "dropped")) {
		t.Fatalf("Add must drop at capacity 0")
	}
}

func TestBagMergeGrowsLimit(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(LexUnknownChar, span(1, 0, 1), "a"))
	b := NewBag(1)
	b.Add(NewError(LexBadNumber, span(1, 1, 2), "b"))
	a.Merge(b)
	if a.Len() != 2 {
		t.Fatalf("Len after Merge = %d, want 2", a.Len())
	}
}

func TestBagReporterCarriesNotes(t *testing.T) {
	bag := NewBag(4)
	r := NewBagReporter(bag)
	ReportError(r, SemaDuplicateSymbol, span(1, 10, 11), "duplicate declaration of 'x'").
		WithNote(span(1, 0, 1), "previous declaration is here").
		Emit()
	if bag.Len() != 1 {
		t.Fatalf("Len = %d, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if len(d.Notes) != 1 || d.Notes[0].Msg != "previous declaration is here" {
		t.Fatalf("note not carried: %+v", d.Notes)
	}
	if d.Severity != SevError {
		t.Fatalf("Severity = %v, want SevError", d.Severity)
	}
}

func TestCodeID(t *testing.T) {
	cases := []struct {
		code Code
		want string
	}{
		{LexUnknownChar, "LEX1001"},
		{SynExpectSemicolon, "SYN2006"},
		{SemaArgCountMismatch, "SEM3004"},
		{IOLoadFileError, "IO4001"},
		{UnknownCode, "E0000"},
	}
	for _, tc := range cases {
		if got := tc.code.ID(); got != tc.want {
			t.Errorf("ID(%d) = %q, want %q", tc.code, got, tc.want)
		}
	}
}
