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
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"go.rosmsg.dev/rosmsg"
)

// Prefix describes one install prefix root and the well-known directories
// below it.
type Prefix struct {
	Root        string
	ResourceDir string
	LibDir      string
	IncludeDir  string
	ShareDir    string
}

func newPrefix(root string) *Prefix {
	return &Prefix{
		Root: root,
		ResourceDir: filepath.Join(
			root, "share", "ament_index", "resource_index", "rosidl_interfaces"),
		LibDir:     filepath.Join(root, "lib"),
		IncludeDir: filepath.Join(root, "include"),
		ShareDir:   filepath.Join(root, "share"),
	}
}

var dialectExts = map[string]string{
	rosmsg.NamespaceMsg:    ".msg",
	rosmsg.NamespaceSrv:    ".srv",
	rosmsg.NamespaceAction: ".action",
}

// sourceFile is one interface definition file found on disk.
type sourceFile struct {
	namespace string
	name      string
	path      string
}

// packageSource is the set of definition files registered for one package.
type packageSource struct {
	name  string
	files []sourceFile
}

// discoverPrefix reads the prefix's interface resource index. Each index
// entry is named after a package and lists its interfaces as
// "{namespace}/{Name}.idl" lines; the definition source for such a line
// lives at "share/{package}/{namespace}/{Name}.{dialect ext}".
func discoverPrefix(
	prefix *Prefix,
	exclude map[string]bool,
) ([]packageSource, error) {
	entries, err := os.ReadDir(prefix.ResourceDir)
	if err != nil {
		return nil, &FileError{Path: prefix.ResourceDir, Err: err}
	}

	var sources []packageSource
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		pkgName := entry.Name()
		if exclude[pkgName] {
			continue
		}
		indexPath := filepath.Join(prefix.ResourceDir, pkgName)
		files, err := readResourceIndex(prefix.ShareDir, pkgName, indexPath)
		if err != nil {
			return nil, err
		}
		sources = append(sources, packageSource{
			name:  pkgName,
			files: files,
		})
	}
	return sources, nil
}

func readResourceIndex(
	shareDir, pkgName, indexPath string,
) ([]sourceFile, error) {
	f, err := os.Open(indexPath)
	if err != nil {
		return nil, &FileError{Path: indexPath, Err: err}
	}
	defer f.Close()

	var files []sourceFile
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		file, ok, err := parseResourceLine(shareDir, pkgName, indexPath, line)
		if err != nil {
			return nil, err
		}
		if ok {
			files = append(files, file)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &FileError{Path: indexPath, Err: err}
	}
	return files, nil
}

// parseResourceLine maps one "{namespace}/{Name}.idl" index line to the
// dialect source file it refers to. Lines without the .idl extension are
// skipped; an .idl line with an unknown namespace is an error.
func parseResourceLine(
	shareDir, pkgName, indexPath, line string,
) (sourceFile, bool, error) {
	stem, isIdl := strings.CutSuffix(line, ".idl")
	if !isIdl {
		return sourceFile{}, false, nil
	}
	namespace, name, ok := strings.Cut(stem, "/")
	if !ok || dialectExts[namespace] == "" || name == "" {
		return sourceFile{}, false, errUnknownResourceLine(indexPath, line)
	}
	return sourceFile{
		namespace: namespace,
		name:      name,
		path: filepath.Join(
			shareDir, pkgName, namespace, name+dialectExts[namespace]),
	}, true, nil
}

// discoverPackageDir treats dir as a single package's source tree with
// optional msg/, srv/, and action/ subdirectories.
func discoverPackageDir(pkgName, dir string) (packageSource, error) {
	source := packageSource{name: pkgName}
	for _, namespace := range []string{
		rosmsg.NamespaceMsg,
		rosmsg.NamespaceSrv,
		rosmsg.NamespaceAction,
	} {
		nsDir := filepath.Join(dir, namespace)
		entries, err := os.ReadDir(nsDir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return packageSource{}, &FileError{Path: nsDir, Err: err}
		}
		ext := dialectExts[namespace]
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name, ok := strings.CutSuffix(entry.Name(), ext)
			if !ok {
				continue
			}
			source.files = append(source.files, sourceFile{
				namespace: namespace,
				name:      name,
				path:      filepath.Join(nsDir, entry.Name()),
			})
		}
	}
	return source, nil
}
