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

// PackageLibraries returns the C interface libraries installed for a
// package, in link order.
func PackageLibraries(pkgName string) []string {
	return []string{
		pkgName + "__rosidl_generator_c",
		pkgName + "__rosidl_typesupport_c",
		pkgName + "__rosidl_typesupport_introspection_c",
	}
}

// LinkFlags renders linker arguments for every loaded package: a library
// search path per prefix (plus rpath entries when rpath is set) followed by
// one -l per interface library.
func (r *Result) LinkFlags(rpath bool) []string {
	var flags []string
	for _, prefix := range r.Prefixes {
		flags = append(flags, "-L"+prefix.LibDir)
		if rpath {
			flags = append(flags,
				fmt.Sprintf("-Wl,-rpath=%s", prefix.LibDir),
				"-Wl,--disable-new-dtags",
			)
		}
	}
	for _, pkg := range r.Packages {
		for _, library := range PackageLibraries(pkg.Name) {
			flags = append(flags, "-l"+library)
		}
	}
	return flags
}
