package driver

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"mica/internal/diag"
	"mica/internal/project"
	"mica/internal/token"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const cleanProgram = `
int limit = 3;

int add(int a, int b) {
	return a + b;
}

int main() {
	print(add(1, 2));
	return 0;
}
`

func TestTokenize(t *testing.T) {
	path := writeSource(t, t.TempDir(), "main.mi", "int x = 1;\n")
	res, err := Tokenize(path, 100)
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
	// int x = 1 ; EOF
	if len(res.Tokens) != 6 {
		t.Fatalf("tokens = %d, want 6", len(res.Tokens))
	}
	if res.Tokens[len(res.Tokens)-1].Kind != token.EOF {
		t.Fatal("stream does not end with EOF")
	}
}

func TestTokenizeReportsLexErrors(t *testing.T) {
	path := writeSource(t, t.TempDir(), "bad.mi", "int x = \"open\n")
	res, err := Tokenize(path, 100)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Bag.HasErrors() {
		t.Fatal("expected a lexical diagnostic")
	}
	if res.Bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Fatalf("code = %v", res.Bag.Items()[0].Code)
	}
}

func TestTokenizeMissingFile(t *testing.T) {
	if _, err := Tokenize(filepath.Join(t.TempDir(), "absent.mi"), 100); err == nil {
		t.Fatal("expected load error")
	}
}

func TestParse(t *testing.T) {
	path := writeSource(t, t.TempDir(), "main.mi", cleanProgram)
	res, err := Parse(path, 100)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Ok {
		t.Fatalf("parse failed: %v", res.Bag.Items())
	}
	items := res.Builder.Files.Get(res.FileID).Items
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}
}

func TestParseSyntaxError(t *testing.T) {
	path := writeSource(t, t.TempDir(), "bad.mi", "int main() { return 1 }\n")
	res, err := Parse(path, 100)
	if err != nil {
		t.Fatal(err)
	}
	if res.Ok {
		t.Fatal("expected parse failure")
	}
	if !res.Bag.HasErrors() {
		t.Fatal("bag has no errors")
	}
}

func TestCheckClean(t *testing.T) {
	path := writeSource(t, t.TempDir(), "main.mi", cleanProgram)
	res, err := Check(path, CheckOptions{MaxDiagnostics: 100})
	if err != nil {
		t.Fatal(err)
	}
	if !res.ParseOk || !res.Ok {
		t.Fatalf("check failed: %v", res.Bag.Items())
	}
	if res.Symbols == nil {
		t.Fatal("missing symbol table on clean check")
	}
	if res.Symbols.Table.Symbols.Len() == 0 {
		t.Fatal("empty symbol arena")
	}
}

func TestCheckGatesResolveOnParseErrors(t *testing.T) {
	res, err := CheckSource("broken.mi", []byte("int main() { return }\n"), CheckOptions{MaxDiagnostics: 100})
	if err != nil {
		t.Fatal(err)
	}
	if res.ParseOk || res.Ok {
		t.Fatal("expected failed check")
	}
	if res.Symbols != nil {
		t.Fatal("resolver ran over a failed parse")
	}
}

func TestCheckScopeError(t *testing.T) {
	res, err := CheckSource("scope.mi", []byte("int main() { return missing; }\n"), CheckOptions{MaxDiagnostics: 100})
	if err != nil {
		t.Fatal(err)
	}
	if !res.ParseOk {
		t.Fatalf("parse failed: %v", res.Bag.Items())
	}
	if res.Ok {
		t.Fatal("expected scope failure")
	}
	if res.Symbols == nil {
		t.Fatal("resolver should still produce a table")
	}
	if res.Bag.Items()[0].Code != diag.SemaUnresolvedSymbol {
		t.Fatalf("code = %v", res.Bag.Items()[0].Code)
	}
}

func TestCheckPreludePrint(t *testing.T) {
	res, err := CheckSource("p.mi", []byte("int main() { print(\"a\", 1, true); return 0; }\n"), CheckOptions{MaxDiagnostics: 100})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Ok {
		t.Fatalf("print prelude not installed: %v", res.Bag.Items())
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	key := project.Digest{1, 2, 3}
	in := &CheckPayload{
		Schema:      diskCacheSchemaVersion,
		Path:        "x/main.mi",
		ContentHash: key,
		Ok:          true,
		Functions:   2,
		Globals:     1,
	}
	if err := cache.Put(key, in); err != nil {
		t.Fatal(err)
	}

	var out CheckPayload
	hit, err := cache.Get(key, &out)
	if err != nil || !hit {
		t.Fatalf("hit = %v, err = %v", hit, err)
	}
	if out != *in {
		t.Fatalf("round trip mismatch: %+v != %+v", out, *in)
	}

	var miss CheckPayload
	if hit, _ := cache.Get(project.Digest{9}, &miss); hit {
		t.Fatal("unexpected hit")
	}
}

func TestDiskCacheDropAll(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := project.Digest{7}
	if err := cache.Put(key, &CheckPayload{Schema: diskCacheSchemaVersion, Ok: true}); err != nil {
		t.Fatal(err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	var out CheckPayload
	if hit, _ := cache.Get(key, &out); hit {
		t.Fatal("cache survived DropAll")
	}
}

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) Send(ev Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	s.mu.Unlock()
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.mi", cleanProgram)
	writeSource(t, dir, "b.mi", "int main() { return missing; }\n")
	sub := filepath.Join(dir, "sub")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeSource(t, sub, "c.mi", "int zero() { return 0; }\n")
	writeSource(t, dir, "ignored.txt", "not a source file")

	sink := &recordingSink{}
	results, err := CheckDir(context.Background(), dir, CheckDirOptions{
		CheckOptions: CheckOptions{MaxDiagnostics: 100},
		Jobs:         2,
		Progress:     sink,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	// Sorted order: a.mi, b.mi, sub/c.mi.
	if filepath.Base(results[0].Path) != "a.mi" || !results[0].Ok {
		t.Fatalf("a.mi result %+v", results[0])
	}
	if filepath.Base(results[1].Path) != "b.mi" || results[1].Ok {
		t.Fatalf("b.mi result %+v", results[1])
	}
	if filepath.Base(results[2].Path) != "c.mi" || !results[2].Ok {
		t.Fatalf("c.mi result %+v", results[2])
	}

	sink.mu.Lock()
	defer sink.mu.Unlock()
	if len(sink.events) == 0 {
		t.Fatal("no progress events")
	}
}

func TestCheckDirUsesCache(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.mi", cleanProgram)
	cache, err := OpenDiskCacheAt(filepath.Join(dir, ".cache"))
	if err != nil {
		t.Fatal(err)
	}

	opts := CheckDirOptions{
		CheckOptions: CheckOptions{MaxDiagnostics: 100},
		Cache:        cache,
	}
	first, err := CheckDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first[0].Cached {
		t.Fatal("first run should not hit the cache")
	}

	second, err := CheckDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second[0].Cached || !second[0].Ok {
		t.Fatalf("second run should be a cache hit: %+v", second[0])
	}

	// Changing the file invalidates the entry (the key is the content hash).
	writeSource(t, dir, "a.mi", cleanProgram+"\nint extra = 1;\n")
	third, err := CheckDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if third[0].Cached {
		t.Fatal("modified file must be rechecked")
	}
}

// A caller passing no diagnostic limit must still see load failures.
func TestCheckDirLoadErrorWithZeroLimit(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.mi", cleanProgram)
	if err := os.Symlink(filepath.Join(dir, "gone.mi.target"), filepath.Join(dir, "broken.mi")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	results, err := CheckDir(context.Background(), dir, CheckDirOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if !results[0].Ok {
		t.Fatalf("a.mi result %+v", results[0])
	}
	broken := results[1]
	if broken.Ok {
		t.Fatalf("broken.mi must fail: %+v", broken)
	}
	if broken.Bag.Len() != 1 || broken.Bag.Items()[0].Code != diag.IOLoadFileError {
		t.Fatalf("expected one IOLoadFileError, got %v", broken.Bag.Items())
	}
}

func TestCheckDirEmpty(t *testing.T) {
	results, err := CheckDir(context.Background(), t.TempDir(), CheckDirOptions{
		CheckOptions: CheckOptions{MaxDiagnostics: 100},
	})
	if err != nil {
		t.Fatal(err)
	}
	if results != nil {
		t.Fatalf("expected no results, got %d", len(results))
	}
}
