package diagfmt

import "path/filepath"

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto shows the path as it was loaded.
	PathModeAuto PathMode = iota
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	PathMode  PathMode
	ShowNotes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool
	PathMode         PathMode
	Max              int // output truncation, the bag itself is untouched
	IncludeNotes     bool
	IncludeSemantics bool
}

func formatPath(path string, mode PathMode) string {
	if mode == PathModeBasename {
		return filepath.Base(path)
	}
	return path
}
