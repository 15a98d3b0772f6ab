// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fix

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ListGoFiles returns the sorted list of Go source files under dir.
// Hidden files, hidden and underscore-prefixed directories, and
// testdata trees are skipped, as are files matching any of the
// exclude glob patterns (matched against the base name).
func ListGoFiles(dir string, exclude []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != dir && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "testdata") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".go") {
			return nil
		}
		for _, pat := range exclude {
			if ok, _ := filepath.Match(pat, name); ok {
				return nil
			}
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ProcessDir processes every eligible file under dir with a bounded
// worker pool. No state is shared between files except the read-only
// fix list, so the files are processed independently: one file's
// parse or I/O failure lands in its own outcome and never stops the
// others.
//
// Cancellation is checked before each file starts; a file already in
// flight is allowed to finish, since a partial result is the one
// thing the pipeline must never produce. Outcomes come back in path
// order regardless of completion order.
func ProcessDir(ctx context.Context, dir string, fixes []Fix, jobs int, exclude []string) ([]Outcome, error) {
	files, err := ListGoFiles(dir, exclude)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	// Slots are per-goroutine, so no mutex is needed on outcomes.
	outcomes := make([]Outcome, len(files))
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				outcomes[i] = Outcome{Path: path, Err: ctx.Err()}
			default:
				outcomes[i] = ProcessFile(path, fixes)
			}
			return nil
		})
	}
	g.Wait()
	return outcomes, nil
}
