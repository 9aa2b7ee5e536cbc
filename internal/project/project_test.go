package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[package]
name = "demo"
entry = "main.mi"

[check]
max_diagnostics = 50
fail_fast = true
`)
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Package.Name != "demo" || m.Package.Entry != "main.mi" {
		t.Fatalf("package section %+v", m.Package)
	}
	if m.Check.MaxDiagnostics != 50 || !m.Check.FailFast {
		t.Fatalf("check section %+v", m.Check)
	}
}

func TestLoadManifestDefaults(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[package]\nname = \"demo\"\n")
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Check.MaxDiagnostics != 0 || m.Check.FailFast {
		t.Fatalf("check defaults %+v", m.Check)
	}
}

func TestLoadManifestMissingPackage(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[check]\nmax_diagnostics = 10\n")
	_, err := LoadManifest(path)
	if !errors.Is(err, ErrPackageSectionMissing) {
		t.Fatalf("err = %v, want ErrPackageSectionMissing", err)
	}
}

func TestLoadManifestMissingName(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[package]\nentry = \"main.mi\"\n")
	_, err := LoadManifest(path)
	if !errors.Is(err, ErrPackageNameMissing) {
		t.Fatalf("err = %v, want ErrPackageNameMissing", err)
	}
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"demo\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := FindManifest(nested)
	if err != nil || !ok {
		t.Fatalf("ok = %v, err = %v", ok, err)
	}
	if filepath.Dir(path) != root {
		t.Fatalf("found %q, want under %q", path, root)
	}

	dir, ok, err := FindProjectRoot(nested)
	if err != nil || !ok || dir != root {
		t.Fatalf("root = %q ok = %v err = %v", dir, ok, err)
	}
}

func TestFindManifestAbsent(t *testing.T) {
	_, ok, err := FindManifest(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("unexpected manifest found")
	}
}
