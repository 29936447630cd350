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

	"github.com/spf13/pflag"

	"go.rosmsg.dev/rosmsg/compiler"
)

type cmdLinkFlags struct {
	configPath string
	prefixes   []string
	exclude    []string
	noRpath    bool
	verbose    bool
}

func (*cmdLinkFlags) help() *commandHelp {
	return &commandHelp{
		usage:   "link-flags",
		summary: "Print linker arguments for the installed interface libraries",
	}
}

func (cmd *cmdLinkFlags) flags(flags *pflag.FlagSet) {
	flags.StringVarP(&cmd.configPath, "config", "c", "", "YAML configuration file")
	flags.StringSliceVar(&cmd.prefixes, "prefix", nil, "Install prefix root (repeatable)")
	flags.StringSliceVar(&cmd.exclude, "exclude", nil, "Package name to skip (repeatable)")
	flags.BoolVar(&cmd.noRpath, "no-rpath", false, "Omit rpath link arguments")
	flags.BoolVarP(&cmd.verbose, "verbose", "v", false, "Enable debug logging")
}

func (cmd *cmdLinkFlags) run(ctx context.Context, argv []string) int {
	logger := newLogger(cmd.verbose)

	opts, config, err := loaderOptions(
		cmd.configPath, cmd.prefixes, nil, cmd.exclude, false, true, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	result := compiler.Load(ctx, opts...)
	if err := result.Err(); err != nil {
		for _, loadErr := range result.Errors {
			fmt.Fprintf(os.Stderr, "%v\n", loadErr)
		}
		return 1
	}

	rpath := !cmd.noRpath
	if config != nil && !config.Rpath() {
		rpath = false
	}
	for _, flag := range result.LinkFlags(rpath) {
		fmt.Println(flag)
	}
	return 0
}
