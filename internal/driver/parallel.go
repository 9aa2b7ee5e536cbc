package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"mica/internal/ast"
	"mica/internal/diag"
	"mica/internal/project"
	"mica/internal/source"
)

// CheckDirOptions configures a parallel directory check.
type CheckDirOptions struct {
	CheckOptions
	Jobs int
	// Cache, when set, lets unchanged clean files be skipped.
	Cache *DiskCache
	// Progress, when set, receives per-file stage events.
	Progress Sink
}

// CheckDirResult is the outcome for one file of a directory check.
type CheckDirResult struct {
	Path   string
	Bag    *diag.Bag
	Result *CheckResult
	// Cached is set when the file was skipped via a clean cache hit;
	// Result is nil in that case.
	Cached bool
	Ok     bool
}

// ListSourceFiles returns a sorted list of all *.mi files under dir.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".mi") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CheckDir checks every *.mi file under dir in parallel. Each file gets
// its own FileSet, Bag, and arenas, so workers share nothing. Result
// order matches the sorted file list regardless of scheduling.
func CheckDir(ctx context.Context, dir string, opts CheckDirOptions) ([]CheckDirResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	// The load-error and cache-hit paths below build bags directly.
	opts.MaxDiagnostics = normalizeMax(opts.MaxDiagnostics)

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	notify := func(path string, stage Stage, status Status) {
		if opts.Progress != nil {
			opts.Progress.Send(Event{File: path, Stage: stage, Status: status})
		}
	}

	results := make([]CheckDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			notify(path, StageLoad, StatusWorking)

			fileSet := source.NewFileSet()
			fileID, loadErr := fileSet.Load(path)
			if loadErr != nil {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{},
					"failed to load file: "+loadErr.Error()))
				results[i] = CheckDirResult{Path: path, Bag: bag}
				notify(path, StageLoad, StatusError)
				return nil
			}

			hash := project.Digest(fileSet.Get(fileID).Hash)
			if opts.Cache != nil {
				var payload CheckPayload
				if hit, _ := opts.Cache.Get(hash, &payload); hit && payload.Ok {
					results[i] = CheckDirResult{
						Path:   path,
						Bag:    diag.NewBag(opts.MaxDiagnostics),
						Cached: true,
						Ok:     true,
					}
					notify(path, StageResolve, StatusCached)
					return nil
				}
			}

			notify(path, StageParse, StatusWorking)
			res, checkErr := checkLoaded(fileSet, fileID, opts.CheckOptions)
			if checkErr != nil {
				return checkErr
			}

			results[i] = CheckDirResult{Path: path, Bag: res.Bag, Result: res, Ok: res.Ok}

			if res.Ok {
				if opts.Cache != nil {
					payload := &CheckPayload{
						Schema:      diskCacheSchemaVersion,
						Path:        path,
						ContentHash: hash,
						Ok:          true,
						Warnings:    res.Bag.Len() - res.Bag.ErrorCount(),
					}
					payload.Functions, payload.Globals = countTopLevel(res)
					// Cache write failures are not check failures.
					_ = opts.Cache.Put(hash, payload)
				}
				notify(path, StageResolve, StatusDone)
			} else {
				notify(path, StageResolve, StatusError)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func countTopLevel(res *CheckResult) (functions, globals int) {
	file := res.Builder.Files.Get(res.FileID)
	if file == nil {
		return 0, 0
	}
	for _, itemID := range file.Items {
		if item := res.Builder.Items.Get(itemID); item != nil {
			switch item.Kind {
			case ast.ItemFn:
				functions++
			case ast.ItemGlobal:
				globals++
			}
		}
	}
	return functions, globals
}
