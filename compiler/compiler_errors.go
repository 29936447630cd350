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
	"fmt"
)

// FileError attaches the offending file path to a parse or read failure.
type FileError struct {
	Path string
	Err  error
}

var _ error = (*FileError)(nil)

func (err *FileError) Error() string {
	return fmt.Sprintf("%s: %v", err.Path, err.Err)
}

func (err *FileError) Unwrap() error {
	return err.Err
}

// DuplicateError reports a package name found in more than one install
// prefix or package directory.
type DuplicateError struct {
	Name string
}

var _ error = (*DuplicateError)(nil)

func (err *DuplicateError) Error() string {
	return fmt.Sprintf("multiple %q packages found", err.Name)
}

func errUnknownResourceLine(path, line string) error {
	return &FileError{
		Path: path,
		Err:  fmt.Errorf("unknown interface type %q", line),
	}
}
