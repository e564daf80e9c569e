// Copyright 2026 the urdujs authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package script transpiles whole script files matched by glob patterns.
package script

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/urdujs/urdujs/pkg/log"
	"github.com/urdujs/urdujs/pkg/transpile"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// concurrency caps the number of files processed in parallel.
const concurrency = 4

// 🔧 Options configures a Runner
type Options struct {
	Transpiler   *transpile.Transpiler
	Logger       *log.Logger
	OutputSuffix string // extension for transpiled siblings, default ".js"
}

// 🏃 Runner transpiles every file matched by a set of glob patterns and
// writes each result next to its source.
type Runner struct {
	transpiler *transpile.Transpiler
	logger     *log.Logger
	suffix     string
}

// 📦 Summary aggregates the results of one batch run
type Summary struct {
	Files        int // files processed
	Modified     int // files whose output differs from input
	Replacements int // total token replacements
}

// 🏗️ NewRunner creates a new runner
func NewRunner(opts Options) *Runner {
	suffix := opts.OutputSuffix
	if suffix == "" {
		suffix = ".js"
	}
	return &Runner{
		transpiler: opts.Transpiler,
		logger:     opts.Logger,
		suffix:     suffix,
	}
}

// 🔍 expand resolves the glob patterns to a sorted, deduplicated file list.
func expand(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, errors.Errorf("expanding pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil {
				return nil, errors.Errorf("checking %q: %w", m, err)
			}
			if info.IsDir() {
				continue
			}
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}

// outputPath derives the sibling output file: the source extension is
// swapped for the configured suffix.
func (r *Runner) outputPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + r.suffix
}

// 🏃 Run transpiles every matched file. Files are processed concurrently;
// the first failure cancels the rest.
func (r *Runner) Run(ctx context.Context, patterns []string) (*Summary, error) {
	files, err := expand(patterns)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Strs("patterns", patterns).
		Int("files", len(files)).
		Msg("starting batch transpile")

	var (
		mu      sync.Mutex
		summary Summary
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, file := range files {
		file := file
		g.Go(func() error {
			result, err := r.processFile(ctx, file)
			if err != nil {
				r.logger.LogScript(log.ScriptOperation{Path: file, Status: log.ScriptError, Err: err})
				return err
			}

			status := log.ScriptUnchanged
			if result.Modified {
				status = log.ScriptTranspiled
			}
			r.logger.LogScript(log.ScriptOperation{
				Path:         file,
				Status:       status,
				Replacements: result.Replacements,
			})

			mu.Lock()
			summary.Files++
			if result.Modified {
				summary.Modified++
			}
			summary.Replacements += result.Replacements
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &summary, nil
}

// processFile transpiles one source file and writes the sibling output.
func (r *Runner) processFile(ctx context.Context, path string) (*transpile.Result, error) {
	out := r.outputPath(path)
	if out == path {
		return nil, errors.Errorf("output for %q would overwrite the source; choose a different output suffix", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading script: %w", err)
	}

	result := r.transpiler.Apply(ctx, string(data))

	if err := os.WriteFile(out, []byte(result.Output), 0o644); err != nil {
		return nil, errors.Errorf("writing output: %w", err)
	}
	return result, nil
}
