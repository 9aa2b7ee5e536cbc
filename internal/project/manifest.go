package project

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is the parsed mica.toml.
type Manifest struct {
	Package PackageSection
	Check   CheckSection
}

// PackageSection is the [package] table.
type PackageSection struct {
	Name  string `toml:"name"`
	Entry string `toml:"entry"`
}

// CheckSection is the [check] table. Zero values mean "use CLI defaults".
type CheckSection struct {
	MaxDiagnostics int  `toml:"max_diagnostics"`
	FailFast       bool `toml:"fail_fast"`
}

// ErrPackageSectionMissing indicates that [package] is missing in a manifest.
var ErrPackageSectionMissing = errors.New("missing [package]")

// ErrPackageNameMissing indicates that [package].name is missing or empty.
var ErrPackageNameMissing = errors.New("missing [package].name")

type manifestFile struct {
	Package PackageSection `toml:"package"`
	Check   CheckSection   `toml:"check"`
}

// LoadManifest parses a mica.toml. The [package] table with a non-empty
// name is required; [check] is optional.
func LoadManifest(path string) (Manifest, error) {
	var cfg manifestFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	name := strings.TrimSpace(cfg.Package.Name)
	if !meta.IsDefined("package", "name") || name == "" {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageNameMissing)
	}
	return Manifest{
		Package: PackageSection{Name: name, Entry: strings.TrimSpace(cfg.Package.Entry)},
		Check:   cfg.Check,
	}, nil
}
