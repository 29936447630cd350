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
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"go.rosmsg.dev/rosmsg/compiler"
)

const amentPrefixPathEnv = "AMENT_PREFIX_PATH"

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(os.Stderr).
		With().
		Timestamp().
		Logger().
		Level(level)
}

// loaderOptions assembles compiler options from an optional config file,
// command line flags, and (when searchEnv is set) $AMENT_PREFIX_PATH.
func loaderOptions(
	configPath string,
	prefixes []string,
	packageDirs []string,
	exclude []string,
	failFast bool,
	searchEnv bool,
	logger zerolog.Logger,
) ([]compiler.LoadOption, *compiler.FileConfig, error) {
	var opts []compiler.LoadOption
	var config *compiler.FileConfig

	if configPath != "" {
		var err error
		config, err = compiler.LoadConfig(configPath)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, config.LoadOptions()...)
	}

	if searchEnv {
		env := os.Getenv(amentPrefixPathEnv)
		for _, root := range strings.Split(env, ":") {
			if root != "" {
				opts = append(opts, compiler.WithInstallPrefixes(root))
			}
		}
	}
	if len(prefixes) > 0 {
		opts = append(opts, compiler.WithInstallPrefixes(prefixes...))
	}
	for _, spec := range packageDirs {
		name, dir, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, nil, fmt.Errorf(
				"invalid --package-dir %q (expected NAME=DIR)", spec)
		}
		opts = append(opts, compiler.WithPackageDir(name, dir))
	}
	if len(exclude) > 0 {
		opts = append(opts, compiler.WithExcludePackages(exclude...))
	}
	if failFast {
		opts = append(opts, compiler.WithFailFast(true))
	}
	opts = append(opts, compiler.WithLogger(logger))
	return opts, config, nil
}
