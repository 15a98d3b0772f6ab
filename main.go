// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gofix/diff"
	"gofix/fix"
)

// errReported signals main that every error was already printed to
// stderr and only the exit code is left to set.
var errReported = errors.New("errors were reported")

var (
	errStyle = color.New(color.FgRed)
	fixStyle = color.New(color.Bold)
)

func main() {
	cmd := newGofixCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			errStyle.Fprintf(os.Stderr, "gofix: %v\n", err)
		}
		os.Exit(1)
	}
}

type app struct {
	rewrites []string
	diff     bool
	list     bool
	jobs     int

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	fixes   []fix.Fix
	exclude []string
}

func newGofixCommand() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "gofix [flags] [path ...]",
		Short:         "rewrite Go source files to use newer APIs",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.stdin = cmd.InOrStdin()
			a.stdout = cmd.OutOrStdout()
			a.stderr = cmd.ErrOrStderr()
			return a.run(cmd.Context(), args)
		},
	}
	cmd.Flags().StringSliceVarP(&a.rewrites, "rewrites", "r", nil, "restrict the rewrites to this comma-separated `list`")
	cmd.Flags().BoolVarP(&a.diff, "diff", "d", false, "display diffs instead of rewriting files")
	cmd.Flags().BoolVar(&a.list, "list", false, "list available rewrites and exit")
	cmd.Flags().IntVarP(&a.jobs, "jobs", "j", 0, "number of files to process in parallel (0 = one per CPU)")
	return cmd
}

func (a *app) run(ctx context.Context, paths []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := fix.LoadConfig(fix.ConfigFile)
	if err != nil {
		return err
	}

	reg, err := fix.NewRegistry(allFixes()...)
	if err != nil {
		return err
	}

	if a.list {
		for _, f := range reg.All() {
			fmt.Fprintf(a.stdout, "%s\t%s\n\t%s\n", fixStyle.Sprint(f.Name), f.Date, firstLine(f.Desc))
		}
		return nil
	}

	// Resolve the fix set up front: a bad --rewrites list fails the
	// whole invocation before any file is touched.
	names := a.rewrites
	if len(names) == 0 {
		names = cfg.Fixes
	}
	if len(names) == 0 {
		a.fixes = reg.All()
	} else if a.fixes, err = reg.Select(names); err != nil {
		return err
	}

	a.exclude = cfg.Exclude
	if a.jobs == 0 {
		a.jobs = cfg.Jobs
	}

	if len(paths) == 0 {
		return a.runStdin()
	}

	failed := false
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			failed = a.report(fix.Outcome{Path: path, Err: err}) || failed
			continue
		}
		if info.IsDir() {
			outcomes, err := fix.ProcessDir(ctx, path, a.fixes, a.jobs, a.exclude)
			if err != nil {
				failed = a.report(fix.Outcome{Path: path, Err: err}) || failed
				continue
			}
			for _, o := range outcomes {
				failed = a.report(o) || failed
			}
		} else {
			failed = a.report(fix.ProcessFile(path, a.fixes)) || failed
		}
	}
	if failed {
		return errReported
	}
	return nil
}

// runStdin is stream mode: one source unit from standard input, the
// result to standard output whether or not anything changed.
func (a *app) runStdin() error {
	src, err := io.ReadAll(a.stdin)
	if err != nil {
		return err
	}
	o := fix.Process("standard input", src, a.fixes)
	if o.Err != nil {
		errStyle.Fprintf(a.stderr, "gofix: %v\n", o.Err)
		return errReported
	}
	if a.diff {
		return a.showDiff(o)
	}
	_, err = a.stdout.Write(o.Out)
	return err
}

// report handles one outcome: an error line, a diff, or an in-place
// write plus one stderr line per applied fix. It reports whether the
// outcome counts as a failure for the exit code; rewrites alone do
// not.
func (a *app) report(o fix.Outcome) (failed bool) {
	if o.Err != nil {
		errStyle.Fprintf(a.stderr, "gofix: %v\n", o.Err)
		return true
	}
	if !o.Changed {
		return false
	}
	if a.diff {
		if err := a.showDiff(o); err != nil {
			errStyle.Fprintf(a.stderr, "gofix: %v\n", err)
			return true
		}
		return false
	}
	// o.Out is already fully rendered; a failure here leaves the
	// original file in place.
	if err := os.WriteFile(o.Path, o.Out, 0666); err != nil {
		errStyle.Fprintf(a.stderr, "gofix: %v\n", err)
		return true
	}
	for _, name := range o.Applied {
		fmt.Fprintf(a.stderr, "%s: fixed %s\n", o.Path, fixStyle.Sprint(name))
	}
	return false
}

func (a *app) showDiff(o fix.Outcome) error {
	d, err := diff.Diff("old/"+o.Path, o.Src, "new/"+o.Path, o.Out)
	if err != nil {
		return err
	}
	_, err = a.stdout.Write(d)
	return err
}

func firstLine(s string) string {
	if i := strings.Index(s, "\n"); i >= 0 {
		return s[:i]
	}
	return s
}
