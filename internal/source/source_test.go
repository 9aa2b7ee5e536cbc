package source

import (
	"testing"
)

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	got := a.Cover(b)
	if got.Start != 2 || got.End != 8 {
		t.Fatalf("Cover = %v, want 1:2-8", got)
	}

	other := Span{File: 2, Start: 0, End: 100}
	if a.Cover(other) != a {
		t.Fatalf("Cover across files must not change the span")
	}
}

func TestSpanZeroideToEnd(t *testing.T) {
	s := Span{File: 1, Start: 3, End: 7}
	z := s.ZeroideToEnd()
	if !z.Empty() || z.Start != 7 {
		t.Fatalf("ZeroideToEnd = %v, want empty span at 7", z)
	}
}

func TestFileSetResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.mi", []byte("int x;\nint y;\n"))

	// "y" is at offset 11 on line 2.
	start, end := fs.Resolve(Span{File: id, Start: 11, End: 12})
	if start.Line != 2 || start.Col != 5 {
		t.Fatalf("start = %+v, want line 2 col 5", start)
	}
	if end.Line != 2 || end.Col != 6 {
		t.Fatalf("end = %+v, want line 2 col 6", end)
	}
}

func TestFileSetResolveSingleLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("one.mi", []byte("int main() {}"))
	start, _ := fs.Resolve(Span{File: id, Start: 4, End: 8})
	if start.Line != 1 || start.Col != 5 {
		t.Fatalf("start = %+v, want line 1 col 5", start)
	}
}

func TestNormalizeCRLF(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\r\nb\rc\r\n"))
	if !changed {
		t.Fatalf("expected change")
	}
	if string(out) != "a\nb\rc\n" {
		t.Fatalf("normalizeCRLF = %q", out)
	}

	out, changed = normalizeCRLF([]byte("plain"))
	if changed || string(out) != "plain" {
		t.Fatalf("no-op input must pass through unchanged")
	}
}

func TestRemoveBOM(t *testing.T) {
	out, had := removeBOM([]byte{0xEF, 0xBB, 0xBF, 'x'})
	if !had || string(out) != "x" {
		t.Fatalf("removeBOM = %q, had=%v", out, had)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("lines.mi", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	cases := map[uint32]string{
		1: "first",
		2: "second",
		3: "third",
		4: "",
		0: "",
	}
	for num, want := range cases {
		if got := f.GetLine(num); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", num, got, want)
		}
	}
}

func TestInternerDeduplicates(t *testing.T) {
	in := NewInterner()
	a := in.Intern("main")
	b := in.Intern("main")
	if a != b {
		t.Fatalf("same string interned to different IDs: %d vs %d", a, b)
	}
	if s := in.MustLookup(a); s != "main" {
		t.Fatalf("MustLookup = %q", s)
	}
	if in.Intern("") != NoStringID {
		t.Fatalf("empty string must map to NoStringID")
	}
}

func TestInternerLookupInvalid(t *testing.T) {
	in := NewInterner()
	if _, ok := in.Lookup(StringID(99)); ok {
		t.Fatalf("expected miss for unknown ID")
	}
}
