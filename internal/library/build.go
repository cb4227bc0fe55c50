package library

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"steamtools/internal/appmanifest"
	"steamtools/internal/logging"
)

const (
	manifestPrefix = "appmanifest_"
	manifestExt    = ".acf"
)

// Options tunes BuildIndex.
type Options struct {
	// Workers bounds how many manifests are parsed concurrently. Zero or
	// negative means runtime.NumCPU().
	Workers int
	Logger  *slog.Logger
	// Now is used for the index timestamp; tests pin it.
	Now func() time.Time
}

type manifestJob struct {
	seq  int
	root string
	path string
}

type manifestResult struct {
	rec appmanifest.Record
	err error
}

// BuildIndex scans every library root reachable from primary and returns
// the resulting Index. Per-file failures are collected in the Report; the
// only error returned is ctx.Err() when the context ends mid-build.
func BuildIndex(ctx context.Context, primary string, opts Options) (*Index, error) {
	logger := logging.NewComponentLogger(opts.Logger, "library")
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	report := Report{Roots: enumerateRoots(primary, logger)}
	var jobs []manifestJob
	for _, root := range report.Roots {
		paths, ok := listManifests(root, logger)
		if !ok {
			continue
		}
		report.ScannedRoots++
		for _, path := range paths {
			jobs = append(jobs, manifestJob{seq: len(jobs), root: root, path: path})
		}
	}
	report.Manifests = len(jobs)

	results, err := parseManifests(ctx, jobs, opts.Workers)
	if err != nil {
		return nil, err
	}

	records := make([]appmanifest.Record, 0, len(results))
	for i, res := range results {
		if res.err != nil {
			report.Skipped = append(report.Skipped, Skip{Path: jobs[i].path, Reason: res.err.Error()})
			logger.Debug("manifest skipped",
				logging.String(logging.FieldEventType, "manifest_skipped"),
				logging.String(logging.FieldPath, jobs[i].path),
				logging.Error(res.err))
			continue
		}
		records = append(records, res.rec)
	}
	report.Indexed = len(records)

	idx := NewIndex(records, report, now())
	logger.Info("library index built",
		logging.String(logging.FieldEventType, "index_built"),
		logging.Int("roots", len(report.Roots)),
		logging.Int("manifests", report.Manifests),
		logging.Int("indexed", report.Indexed),
		logging.Int("skipped", len(report.Skipped)),
		logging.String("status", string(report.Status())))
	return idx, nil
}

// listManifests returns the manifest paths under root/steamapps in
// directory order. ok is false when the directory is missing or unreadable.
func listManifests(root string, logger *slog.Logger) ([]string, bool) {
	dir := filepath.Join(root, steamAppsDir)
	if !isDir(dir) {
		logger.Debug("library root has no steamapps directory", logging.String(logging.FieldPath, root))
		return nil, false
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Debug("steamapps directory unreadable",
			logging.String(logging.FieldEventType, "steamapps_unreadable"),
			logging.String(logging.FieldPath, dir),
			logging.Error(err))
		return nil, false
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !IsManifestName(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, true
}

// IsManifestName reports whether name looks like appmanifest_<id>.acf. The
// extension match ignores case.
func IsManifestName(name string) bool {
	return strings.HasPrefix(name, manifestPrefix) && strings.EqualFold(filepath.Ext(name), manifestExt)
}

// parseManifests runs the jobs on a bounded pool. results[i] belongs to
// jobs[i] regardless of completion order.
func parseManifests(ctx context.Context, jobs []manifestJob, workers int) ([]manifestResult, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}
	results := make([]manifestResult, len(jobs))
	if len(jobs) == 0 {
		return results, ctx.Err()
	}

	queue := make(chan manifestJob)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range queue {
				rec, err := appmanifest.ParseFile(job.path)
				if err == nil {
					rec.Library = job.root
				}
				results[job.seq] = manifestResult{rec: rec, err: err}
			}
		}()
	}

	for _, job := range jobs {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
		case queue <- job:
		}
	}
	close(queue)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
