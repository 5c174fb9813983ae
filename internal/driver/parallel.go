package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"jsparse/internal/pipeline"
)

// FileResult holds the outcome for a single file of a batch run.
type FileResult struct {
	Path   string
	Output string
	Err    error
	Cached bool
}

// BatchOptions tunes a directory run.
type BatchOptions struct {
	// Jobs caps the number of files processed concurrently.
	// Zero or negative means GOMAXPROCS.
	Jobs int
	// Cache, when non-nil, is consulted before processing and updated after.
	Cache *DiskCache
	// Progress, when non-nil, receives per-file stage events.
	Progress pipeline.ProgressSink
}

// listJSFiles returns the sorted list of all *.js files under dir.
func listJSFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".js") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Sorted for deterministic result order.
	sort.Strings(files)
	return files, nil
}

// ListJSFiles exposes the batch file discovery to the CLI so progress
// displays can be primed before the run starts.
func ListJSFiles(dir string) ([]string, error) {
	return listJSFiles(dir)
}

// ParseDir parses every *.js file under dir concurrently and returns the
// debug dump per file.
func ParseDir(ctx context.Context, dir string, opts BatchOptions) ([]FileResult, error) {
	return runDir(ctx, dir, "parse", false, opts, func(src string) (string, error) {
		return Parse(src)
	})
}

// TransformDir rewrites every *.js file under dir concurrently.
func TransformDir(ctx context.Context, dir string, minify bool, opts BatchOptions) ([]FileResult, error) {
	return runDir(ctx, dir, "transform", minify, opts, func(src string) (string, error) {
		return Transform(src, minify)
	})
}

// ASTDir serializes every *.js file under dir to JSON concurrently.
func ASTDir(ctx context.Context, dir string, loose bool, opts BatchOptions) ([]FileResult, error) {
	return runDir(ctx, dir, "ast", loose, opts, func(src string) (string, error) {
		return AST(src, loose)
	})
}

func runDir(ctx context.Context, dir, mode string, flag bool, opts BatchOptions, process func(string) (string, error)) ([]FileResult, error) {
	files, err := listJSFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	for _, path := range files {
		pipeline.Emit(opts.Progress, pipeline.Event{
			File:   path,
			Stage:  pipeline.StageParse,
			Status: pipeline.StatusQueued,
		})
	}

	// Each goroutine writes only its own index, no mutex needed.
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			started := time.Now()
			pipeline.Emit(opts.Progress, pipeline.Event{
				File:   path,
				Stage:  pipeline.StageParse,
				Status: pipeline.StatusWorking,
			})

			results[i] = processOne(path, mode, flag, opts.Cache, process)

			evt := pipeline.Event{
				File:    path,
				Stage:   pipeline.StageEmit,
				Status:  pipeline.StatusDone,
				Elapsed: time.Since(started),
			}
			if results[i].Err != nil {
				evt.Status = pipeline.StatusError
				evt.Err = results[i].Err
			}
			pipeline.Emit(opts.Progress, evt)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func processOne(path, mode string, flag bool, cache *DiskCache, process func(string) (string, error)) FileResult {
	content, err := readNormalized(path)
	if err != nil {
		return FileResult{Path: path, Err: err}
	}

	key := CacheKey(content, mode, flag)
	if cache != nil {
		var payload DiskPayload
		if hit, err := cache.Get(key, &payload); err == nil && hit {
			res := FileResult{Path: path, Output: payload.Output, Cached: true}
			if payload.Failed {
				res.Err = &CachedError{Msg: payload.ErrMsg}
			}
			return res
		}
	}

	out, err := process(string(content))
	res := FileResult{Path: path, Output: out, Err: err}

	if cache != nil {
		payload := &DiskPayload{
			Path:       path,
			SourceHash: contentDigest(content),
			Mode:       mode,
			Flag:       flag,
			Output:     out,
		}
		if err != nil {
			payload.Failed = true
			payload.ErrMsg = err.Error()
		}
		// Cache writes are best effort; a failed Put only costs a re-parse.
		_ = cache.Put(key, payload)
	}
	return res
}

// CachedError replays a parse failure recorded in the disk cache.
type CachedError struct {
	Msg string
}

func (e *CachedError) Error() string { return e.Msg }
