package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jsparse/internal/diag"
	"jsparse/internal/diagfmt"
	"jsparse/internal/driver"
	"jsparse/internal/source"
)

type batchSettings struct {
	jobs  int
	ui    bool
	cache *driver.DiskCache
	quiet bool
	color bool
}

func gatherBatchSettings(cmd *cobra.Command) (batchSettings, error) {
	flags := cmd.Root().PersistentFlags()

	jobs, err := flags.GetInt("jobs")
	if err != nil {
		return batchSettings{}, err
	}
	wantUI, err := flags.GetBool("ui")
	if err != nil {
		return batchSettings{}, err
	}
	wantCache, err := flags.GetBool("cache")
	if err != nil {
		return batchSettings{}, err
	}
	quiet, err := flags.GetBool("quiet")
	if err != nil {
		return batchSettings{}, err
	}
	colorFlag, err := flags.GetString("color")
	if err != nil {
		return batchSettings{}, err
	}

	// The manifest supplies defaults for flags the user left untouched.
	if manifest, ok, err := loadProjectManifest("."); err == nil && ok {
		if !flags.Changed("jobs") && manifest.Config.Batch.Jobs > 0 {
			jobs = manifest.Config.Batch.Jobs
		}
		if !flags.Changed("cache") && manifest.Config.Batch.Cache {
			wantCache = true
		}
	}

	settings := batchSettings{
		jobs:  jobs,
		ui:    wantUI && isTerminal(os.Stdout),
		quiet: quiet,
		color: useColor(colorFlag, os.Stderr),
	}
	if wantCache {
		cache, err := driver.OpenDiskCache("jsparse")
		if err != nil {
			return batchSettings{}, fmt.Errorf("failed to open disk cache: %w", err)
		}
		settings.cache = cache
	}
	return settings, nil
}

type batchRun func(ctx context.Context, opts driver.BatchOptions) ([]driver.FileResult, error)

// runBatch drives a directory run: file discovery, optional live UI,
// per-file failure rendering, and a non-zero exit when any file failed.
func runBatch(cmd *cobra.Command, dir, title string, run batchRun) error {
	settings, err := gatherBatchSettings(cmd)
	if err != nil {
		return err
	}

	files, err := driver.ListJSFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		if !settings.quiet {
			fmt.Fprintf(os.Stderr, "no .js files under %s\n", dir)
		}
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	baseOpts := driver.BatchOptions{Jobs: settings.jobs, Cache: settings.cache}

	var results []driver.FileResult
	if settings.ui {
		results, err = runBatchWithUI(ctx, title, files, run, baseOpts)
	} else {
		results, err = run(ctx, baseOpts)
	}
	if err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			renderBatchFailure(res, settings.color)
			continue
		}
		if !settings.quiet {
			note := ""
			if res.Cached {
				note = " (cached)"
			}
			fmt.Fprintf(os.Stdout, "%s: ok%s\n", res.Path, note)
		}
	}

	if failed > 0 {
		cmd.SilenceUsage = true
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

func renderBatchFailure(res driver.FileResult, color bool) {
	var perr *diag.Error
	if errors.As(res.Err, &perr) {
		// Reload so the failure renders with its source line. A file that
		// changed or vanished mid-run degrades to the bare message.
		fs := source.NewFileSet()
		if id, err := fs.Load(res.Path); err == nil {
			diagfmt.Pretty(os.Stderr, perr, fs.Get(id), diagfmt.PrettyOpts{Color: color, Context: 1})
			return
		}
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", res.Path, res.Err)
}
