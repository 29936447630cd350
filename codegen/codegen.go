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

// Package codegen emits Go source declarations for parsed interface
// packages. The output is a module tree mirroring package -> namespace ->
// declaration, with one generated file per declaration (or one per
// namespace, see WithSingleFile). Generation is a pure tree walk: the same
// input always produces byte-identical output.
package codegen

import (
	"fmt"
	"sort"

	"go.rosmsg.dev/rosmsg"
)

type GenerateOption interface {
	apply(*GenerateOptions)
}

type generateOption func(*GenerateOptions)

func (f generateOption) apply(opts *GenerateOptions) { f(opts) }

type GenerateOptions struct {
	importBase string
	singleFile bool
}

// WithImportBase sets the Go import path prefix under which the generated
// tree will live. Cross-package type references are imported as
// "{base}/{package}/{namespace}".
func WithImportBase(base string) GenerateOption {
	return generateOption(func(opts *GenerateOptions) {
		opts.importBase = base
	})
}

// WithSingleFile emits one file per namespace instead of one file per
// declaration.
func WithSingleFile(singleFile bool) GenerateOption {
	return generateOption(func(opts *GenerateOptions) {
		opts.singleFile = singleFile
	})
}

func NewGenerateOptions(opts ...GenerateOption) *GenerateOptions {
	generateOptions := &GenerateOptions{
		importBase: "rosmsg",
	}
	for _, opt := range opts {
		opt.apply(generateOptions)
	}
	return generateOptions
}

// OutputFile is one generated source file. Path holds the relative path
// components below the caller's output directory.
type OutputFile struct {
	Path    []string
	Content []byte
}

// Generate emits Go declarations for every non-empty namespace of every
// package. Declaration names must be unique within a namespace.
func Generate(
	packages []*rosmsg.Package,
	opts ...GenerateOption,
) ([]OutputFile, error) {
	return NewGenerateOptions(opts...).Generate(packages)
}

func (opts *GenerateOptions) Generate(
	packages []*rosmsg.Package,
) ([]OutputFile, error) {
	var files []OutputFile
	for _, pkg := range packages {
		pkgFiles, err := opts.generatePackage(pkg)
		if err != nil {
			return nil, err
		}
		files = append(files, pkgFiles...)
	}
	return files, nil
}

// unit is one top-level declaration's worth of generated declarations.
type unit struct {
	name string
	emit func(g *fileGen)
}

func (opts *GenerateOptions) generatePackage(
	pkg *rosmsg.Package,
) ([]OutputFile, error) {
	namespaces := map[string][]unit{}

	for _, message := range pkg.Messages {
		namespaces[rosmsg.NamespaceMsg] = append(
			namespaces[rosmsg.NamespaceMsg], messageUnit(message))
	}
	for _, service := range pkg.Services {
		namespaces[rosmsg.NamespaceSrv] = append(
			namespaces[rosmsg.NamespaceSrv], serviceUnit(service))
	}
	for _, action := range pkg.Actions {
		namespaces[rosmsg.NamespaceAction] = append(
			namespaces[rosmsg.NamespaceAction], actionUnit(action))
	}

	var files []OutputFile
	for _, namespace := range []string{
		rosmsg.NamespaceMsg,
		rosmsg.NamespaceSrv,
		rosmsg.NamespaceAction,
	} {
		units := namespaces[namespace]
		if len(units) == 0 {
			continue
		}
		sort.Slice(units, func(ii, jj int) bool {
			return units[ii].name < units[jj].name
		})
		seen := map[string]bool{}
		for _, u := range units {
			if seen[u.name] {
				return nil, fmt.Errorf(
					"codegen: duplicate declaration %q in %s/%s",
					u.name, pkg.Name, namespace,
				)
			}
			seen[u.name] = true
		}

		if opts.singleFile {
			g := newFileGen(opts, pkg.Name, namespace)
			for _, u := range units {
				u.emit(g)
			}
			files = append(files, OutputFile{
				Path:    []string{pkg.Name, namespace, namespace + ".go"},
				Content: g.render(),
			})
			continue
		}
		for _, u := range units {
			g := newFileGen(opts, pkg.Name, namespace)
			u.emit(g)
			files = append(files, OutputFile{
				Path: []string{
					pkg.Name, namespace, CamelToSnake(u.name) + ".go",
				},
				Content: g.render(),
			})
		}
	}
	return files, nil
}

func messageUnit(message rosmsg.Message) unit {
	return unit{
		name: message.Name,
		emit: func(g *fileGen) {
			g.emitMessage(message)
		},
	}
}

func serviceUnit(service rosmsg.Service) unit {
	return unit{
		name: service.Name,
		emit: func(g *fileGen) {
			g.emitService(service)
		},
	}
}

func actionUnit(action rosmsg.Action) unit {
	return unit{
		name: action.Name,
		emit: func(g *fileGen) {
			g.emitAction(action)
		},
	}
}
