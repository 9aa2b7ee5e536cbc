package main

import "mica/internal/project"

// projectManifest looks for a mica.toml at or above dir and loads it.
// A malformed manifest is treated as absent; flags then rule alone.
func projectManifest(dir string) (project.Manifest, bool, error) {
	path, ok, err := project.FindManifest(dir)
	if err != nil || !ok {
		return project.Manifest{}, false, err
	}
	manifest, err := project.LoadManifest(path)
	if err != nil {
		return project.Manifest{}, false, err
	}
	return manifest, true, nil
}
