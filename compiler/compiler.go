// Copyright (c) 2025 The rosmsg authors
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

// Package compiler discovers interface definition files under install
// prefixes and package directories, parses them in parallel, and assembles
// the per-package models consumed by package codegen.
//
// Every definition file is independent, so parsing fans out across a
// bounded worker group. The one serial step is the barrier at the end:
// packages are sorted by name and duplicate names are rejected.
package compiler

import (
	"context"
	"errors"
	"os"
	"runtime"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"go.rosmsg.dev/rosmsg"
	"go.rosmsg.dev/rosmsg/syntax"
)

// defaultExcludePackages lists packages whose index entries are registered
// but whose definitions are not parseable interface sources.
var defaultExcludePackages = []string{
	"libstatistics_collector",
}

type LoadOption interface {
	apply(*LoadOptions)
}

type loadOption func(*LoadOptions)

func (f loadOption) apply(opts *LoadOptions) { f(opts) }

type LoadOptions struct {
	prefixRoots []string
	packageDirs []packageDir
	exclude     map[string]bool
	failFast    bool
	workers     int
	logger      zerolog.Logger
}

type packageDir struct {
	name string
	dir  string
}

// WithInstallPrefixes adds install prefix roots to search for interface
// packages via their resource indexes.
func WithInstallPrefixes(roots ...string) LoadOption {
	return loadOption(func(opts *LoadOptions) {
		opts.prefixRoots = append(opts.prefixRoots, roots...)
	})
}

// WithPackageDir adds a single package rooted at dir, which may contain
// msg/, srv/, and action/ subdirectories. No resource index is required.
func WithPackageDir(name, dir string) LoadOption {
	return loadOption(func(opts *LoadOptions) {
		opts.packageDirs = append(opts.packageDirs, packageDir{
			name: name,
			dir:  dir,
		})
	})
}

// WithExcludePackages skips the named packages during discovery, in
// addition to the built-in exclusions.
func WithExcludePackages(names ...string) LoadOption {
	return loadOption(func(opts *LoadOptions) {
		for _, name := range names {
			opts.exclude[name] = true
		}
	})
}

// WithFailFast stops parsing as soon as any file fails instead of
// collecting every file's error.
func WithFailFast(failFast bool) LoadOption {
	return loadOption(func(opts *LoadOptions) {
		opts.failFast = failFast
	})
}

// WithWorkers bounds the number of files parsed concurrently.
func WithWorkers(workers int) LoadOption {
	return loadOption(func(opts *LoadOptions) {
		if workers > 0 {
			opts.workers = workers
		}
	})
}

func WithLogger(logger zerolog.Logger) LoadOption {
	return loadOption(func(opts *LoadOptions) {
		opts.logger = logger
	})
}

func NewLoadOptions(opts ...LoadOption) *LoadOptions {
	loadOptions := &LoadOptions{
		exclude: map[string]bool{},
		workers: runtime.GOMAXPROCS(0),
		logger:  zerolog.New(os.Stderr).Level(zerolog.Disabled),
	}
	for _, name := range defaultExcludePackages {
		loadOptions.exclude[name] = true
	}
	for _, opt := range opts {
		opt.apply(loadOptions)
	}
	return loadOptions
}

// Result is the outcome of a Load run. Packages holds every successfully
// assembled package, sorted by name; Errors collects every failure unless
// fail-fast stopped the run early.
type Result struct {
	Prefixes []*Prefix
	Packages []*rosmsg.Package
	Errors   []error
}

// Err joins all collected errors, or returns nil if the run succeeded.
func (r *Result) Err() error {
	return errors.Join(r.Errors...)
}

// Load discovers and parses every configured install prefix and package
// directory.
func Load(ctx context.Context, opts ...LoadOption) *Result {
	return NewLoadOptions(opts...).Load(ctx)
}

func (opts *LoadOptions) Load(ctx context.Context) *Result {
	result := &Result{}

	var sources []packageSource
	for _, root := range opts.prefixRoots {
		prefix := newPrefix(root)
		result.Prefixes = append(result.Prefixes, prefix)

		opts.logger.Debug().Str("root", root).Msg("loading install prefix")
		prefixSources, err := discoverPrefix(prefix, opts.exclude)
		if err != nil {
			result.Errors = append(result.Errors, err)
			if opts.failFast {
				return result
			}
			continue
		}
		sources = append(sources, prefixSources...)
	}
	for _, pd := range opts.packageDirs {
		if opts.exclude[pd.name] {
			continue
		}
		source, err := discoverPackageDir(pd.name, pd.dir)
		if err != nil {
			result.Errors = append(result.Errors, err)
			if opts.failFast {
				return result
			}
			continue
		}
		sources = append(sources, source)
	}

	packages, errs := opts.parseAll(ctx, sources)
	result.Errors = append(result.Errors, errs...)
	if opts.failFast && len(result.Errors) > 0 {
		return result
	}

	sort.Slice(packages, func(ii, jj int) bool {
		return packages[ii].Name < packages[jj].Name
	})
	for ii := 1; ii < len(packages); ii++ {
		if packages[ii].Name == packages[ii-1].Name {
			result.Errors = append(result.Errors, &DuplicateError{
				Name: packages[ii].Name,
			})
			if opts.failFast {
				return result
			}
		}
	}

	result.Packages = packages
	return result
}

// parseAll fans the discovered files out over a bounded worker group. Each
// file's slot is pre-allocated, so workers never share mutable state.
func (opts *LoadOptions) parseAll(
	ctx context.Context,
	sources []packageSource,
) ([]*rosmsg.Package, []error) {
	type parsedFile struct {
		message *rosmsg.Message
		service *rosmsg.Service
		action  *rosmsg.Action
		err     error
	}

	parsed := make([][]parsedFile, len(sources))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(opts.workers)

	for si, source := range sources {
		parsed[si] = make([]parsedFile, len(source.files))
		for fi, file := range source.files {
			file := file
			slot := &parsed[si][fi]
			pkgName := source.name
			group.Go(func() error {
				if err := groupCtx.Err(); err != nil {
					return err
				}
				src, err := os.ReadFile(file.path)
				if err != nil {
					slot.err = &FileError{Path: file.path, Err: err}
				} else {
					switch file.namespace {
					case rosmsg.NamespaceMsg:
						message, err := syntax.ParseMessage(pkgName, file.name, src)
						if err == nil {
							slot.message = &message
						}
						slot.err = wrapParseErr(file.path, err)
					case rosmsg.NamespaceSrv:
						service, err := syntax.ParseService(pkgName, file.name, src)
						if err == nil {
							slot.service = &service
						}
						slot.err = wrapParseErr(file.path, err)
					case rosmsg.NamespaceAction:
						action, err := syntax.ParseAction(pkgName, file.name, src)
						if err == nil {
							slot.action = &action
						}
						slot.err = wrapParseErr(file.path, err)
					}
				}
				if slot.err != nil {
					opts.logger.Error().
						Err(slot.err).
						Str("path", file.path).
						Msg("parse failed")
					if opts.failFast {
						return slot.err
					}
				}
				return nil
			})
		}
	}
	_ = group.Wait()

	var packages []*rosmsg.Package
	var errs []error
	for si, source := range sources {
		pkg := &rosmsg.Package{Name: source.name}
		failed := false
		for fi := range parsed[si] {
			slot := &parsed[si][fi]
			switch {
			case slot.err != nil:
				errs = append(errs, slot.err)
				failed = true
			case slot.message != nil:
				pkg.Messages = append(pkg.Messages, *slot.message)
			case slot.service != nil:
				pkg.Services = append(pkg.Services, *slot.service)
			case slot.action != nil:
				pkg.Actions = append(pkg.Actions, *slot.action)
			}
		}
		if failed {
			continue
		}
		sortPackage(pkg)
		opts.logger.Debug().
			Str("package", pkg.Name).
			Int("messages", len(pkg.Messages)).
			Int("services", len(pkg.Services)).
			Int("actions", len(pkg.Actions)).
			Msg("assembled package")
		packages = append(packages, pkg)
	}
	return packages, errs
}

func wrapParseErr(path string, err error) error {
	if err == nil {
		return nil
	}
	return &FileError{Path: path, Err: err}
}

// sortPackage orders declarations by name within each namespace.
func sortPackage(pkg *rosmsg.Package) {
	sort.Slice(pkg.Messages, func(ii, jj int) bool {
		return pkg.Messages[ii].Name < pkg.Messages[jj].Name
	})
	sort.Slice(pkg.Services, func(ii, jj int) bool {
		return pkg.Services[ii].Name < pkg.Services[jj].Name
	})
	sort.Slice(pkg.Actions, func(ii, jj int) bool {
		return pkg.Actions[ii].Name < pkg.Actions[jj].Name
	})
}
