package parser

import (
	"testing"

	"mica/internal/diag"
)

func TestMissingSemicolonRecovers(t *testing.T) {
	f := parseSource(t, `
void main() {
	int x = 1
	int y = 2;
}
`)
	if f.result.Ok {
		t.Fatalf("missing ';' should fail the parse")
	}
	f.requireCodes(t, diag.SynExpectSemicolon)

	// the second declaration still lands in the block
	fn, _ := f.arenas.Items.Fn(f.items(t)[0])
	block, _ := f.arenas.Stmts.Block(fn.Body)
	if len(block.Stmts) != 1 {
		t.Fatalf("stmts = %d, want the recovered declaration", len(block.Stmts))
	}
	decl, ok := f.arenas.Stmts.Decl(block.Stmts[0])
	if !ok || f.name(decl.Name) != "y" {
		t.Errorf("recovered stmt = %+v", decl)
	}
}

func TestSemicolonNoteSuggestsInsertion(t *testing.T) {
	f := parseSource(t, "int x = 1")
	if f.result.Ok {
		t.Fatalf("missing ';' should fail the parse")
	}
	var found bool
	for _, d := range f.bag.Items() {
		if d.Code != diag.SynExpectSemicolon {
			continue
		}
		for _, n := range d.Notes {
			if n.Msg == "insert missing semicolon" && n.Span.Empty() {
				found = true
			}
		}
	}
	if !found {
		t.Fatalf("expected an insert-here note: %v", f.bag.Items())
	}
}

func TestTopLevelRecoveryKeepsLaterItems(t *testing.T) {
	f := parseSource(t, `
garbage tokens here;

int ok() {
	return 1;
}
`)
	if f.result.Ok {
		t.Fatalf("junk at top level should fail the parse")
	}
	f.requireCodes(t, diag.SynUnexpectedTopLevel)

	items := f.items(t)
	if len(items) != 1 {
		t.Fatalf("items = %d, want the recovered function", len(items))
	}
	fn, ok := f.arenas.Items.Fn(items[0])
	if !ok || f.name(fn.Name) != "ok" {
		t.Errorf("recovered item = %+v", fn)
	}
}

func TestMultipleErrorsCollected(t *testing.T) {
	f := parseSource(t, `
void main() {
	int a = ;
	b = ;
	int c = 3;
}
`)
	if f.result.Ok {
		t.Fatalf("parse should fail")
	}
	if f.bag.ErrorCount() < 2 {
		t.Fatalf("errors = %d, want at least 2: %v", f.bag.ErrorCount(), f.bag.Items())
	}

	fn, _ := f.arenas.Items.Fn(f.items(t)[0])
	block, _ := f.arenas.Stmts.Block(fn.Body)
	var names []string
	for _, id := range block.Stmts {
		if decl, ok := f.arenas.Stmts.Decl(id); ok {
			names = append(names, f.name(decl.Name))
		}
	}
	if len(names) != 1 || names[0] != "c" {
		t.Errorf("recovered decls = %v, want [c]", names)
	}
}

func TestUnclosedBraceReported(t *testing.T) {
	f := parseSource(t, `
void main() {
	int x = 1;
`)
	if f.result.Ok {
		t.Fatalf("unclosed block should fail the parse")
	}
	f.requireCodes(t, diag.SynUnclosedBrace)
}

func TestUnclosedParenReported(t *testing.T) {
	f := parseSource(t, `
void main() {
	f(1, 2;
}
`)
	if f.result.Ok {
		t.Fatalf("unclosed call should fail the parse")
	}
	f.requireCodes(t, diag.SynUnclosedParen)
}

func TestLexErrorsDoNotStopParsing(t *testing.T) {
	f := parseSource(t, `
int x = 1 @ 2;
int y = 3;
`)
	if f.result.Ok {
		t.Fatalf("unknown character should fail the parse")
	}
	f.requireCodes(t, diag.LexUnknownChar)

	var sawY bool
	for _, id := range f.items(t) {
		if g, ok := f.arenas.Items.Global(id); ok && f.name(g.Name) == "y" {
			sawY = true
		}
	}
	if !sawY {
		t.Fatalf("parser did not recover past the lex error")
	}
}

func TestParseShapeManyFunctions(t *testing.T) {
	src := ""
	for _, name := range []string{"a", "b", "c", "d"} {
		src += "int " + name + "() { return 0; }\n"
	}
	f := parseSource(t, src)
	f.requireOk(t)
	if len(f.items(t)) != 4 {
		t.Fatalf("items = %d, want 4", len(f.items(t)))
	}
	for i, id := range f.items(t) {
		if _, ok := f.arenas.Items.Fn(id); !ok {
			t.Errorf("item %d is not a function", i)
		}
	}
	if f.arenas.Files.Get(f.result.File).Span.Len() == 0 {
		t.Errorf("file span not covering items")
	}
}
