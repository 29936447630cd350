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

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"go.rosmsg.dev/rosmsg/codegen"
	"go.rosmsg.dev/rosmsg/compiler"
)

type cmdGenerate struct {
	configPath  string
	outDir      string
	prefixes    []string
	packageDirs []string
	exclude     []string
	failFast    bool
	searchEnv   bool
	singleFile  bool
	importBase  string
	verbose     bool
}

func (*cmdGenerate) help() *commandHelp {
	return &commandHelp{
		usage:   "generate",
		summary: "Generate Go declarations for interface packages",
	}
}

func (cmd *cmdGenerate) flags(flags *pflag.FlagSet) {
	flags.StringVarP(&cmd.configPath, "config", "c", "", "YAML configuration file")
	flags.StringVarP(&cmd.outDir, "output", "o", "", "Output directory")
	flags.StringSliceVar(&cmd.prefixes, "prefix", nil, "Install prefix root (repeatable)")
	flags.StringSliceVar(&cmd.packageDirs, "package-dir", nil,
		"Single package source as NAME=DIR (repeatable)")
	flags.StringSliceVar(&cmd.exclude, "exclude", nil, "Package name to skip (repeatable)")
	flags.BoolVar(&cmd.failFast, "fail-fast", false, "Stop at the first parse error")
	flags.BoolVar(&cmd.searchEnv, "search-env", true,
		"Also search the prefixes in $"+amentPrefixPathEnv)
	flags.BoolVar(&cmd.singleFile, "single-file", false, "One output file per namespace")
	flags.StringVar(&cmd.importBase, "import-base", "",
		"Go import path prefix of the generated tree")
	flags.BoolVarP(&cmd.verbose, "verbose", "v", false, "Enable debug logging")
}

func (cmd *cmdGenerate) run(ctx context.Context, argv []string) int {
	logger := newLogger(cmd.verbose)

	opts, config, err := loaderOptions(
		cmd.configPath, cmd.prefixes, cmd.packageDirs, cmd.exclude,
		cmd.failFast, cmd.searchEnv, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	outDir := cmd.outDir
	singleFile := cmd.singleFile
	importBase := cmd.importBase
	if config != nil {
		if outDir == "" {
			outDir = config.OutputDir
		}
		if importBase == "" {
			importBase = config.ImportBase
		}
		singleFile = singleFile || config.SingleFile
	}
	if outDir == "" {
		fmt.Fprintln(os.Stderr, "No output directory specified (set --output=)")
		return 1
	}

	result := compiler.Load(ctx, opts...)
	if err := result.Err(); err != nil {
		for _, loadErr := range result.Errors {
			fmt.Fprintf(os.Stderr, "%v\n", loadErr)
		}
		return 1
	}
	if len(result.Packages) == 0 {
		fmt.Fprintln(os.Stderr, "No interface packages found")
		return 1
	}

	var genOpts []codegen.GenerateOption
	if importBase != "" {
		genOpts = append(genOpts, codegen.WithImportBase(importBase))
	}
	if singleFile {
		genOpts = append(genOpts, codegen.WithSingleFile(true))
	}
	files, err := codegen.Generate(result.Packages, genOpts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	for _, file := range files {
		outPath := filepath.Join(append([]string{outDir}, file.Path...)...)
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if err := os.WriteFile(outPath, file.Content, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		logger.Debug().Str("path", outPath).Msg("wrote output file")
	}
	return 0
}
