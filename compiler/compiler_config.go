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

package compiler

import (
	"bytes"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk configuration accepted by the rosmsg command
// line tool. Zero values mean "use the default".
type FileConfig struct {
	InstallPrefixes []string          `yaml:"install_prefixes"`
	PackageDirs     map[string]string `yaml:"package_dirs"`
	ExcludePackages []string          `yaml:"exclude_packages"`
	FailFast        bool              `yaml:"fail_fast"`
	Workers         int               `yaml:"workers"`

	OutputDir  string `yaml:"output_dir"`
	SingleFile bool   `yaml:"single_file"`
	ImportBase string `yaml:"import_base"`
	LinkRpath  *bool  `yaml:"link_rpath"`
}

// LoadConfig reads and decodes a YAML configuration file. Unknown keys are
// rejected.
func LoadConfig(path string) (*FileConfig, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	config := &FileConfig{}
	decoder := yaml.NewDecoder(bytes.NewReader(src))
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	return config, nil
}

// Rpath reports whether rpath link flags should be emitted; the default is
// true.
func (c *FileConfig) Rpath() bool {
	if c.LinkRpath == nil {
		return true
	}
	return *c.LinkRpath
}

// LoadOptions converts the file configuration into loader options.
func (c *FileConfig) LoadOptions() []LoadOption {
	var opts []LoadOption
	if len(c.InstallPrefixes) > 0 {
		opts = append(opts, WithInstallPrefixes(c.InstallPrefixes...))
	}
	for name, dir := range c.PackageDirs {
		opts = append(opts, WithPackageDir(name, dir))
	}
	if len(c.ExcludePackages) > 0 {
		opts = append(opts, WithExcludePackages(c.ExcludePackages...))
	}
	if c.FailFast {
		opts = append(opts, WithFailFast(true))
	}
	if c.Workers > 0 {
		opts = append(opts, WithWorkers(c.Workers))
	}
	return opts
}
