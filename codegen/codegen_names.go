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

package codegen

import (
	"strings"
)

// CamelToSnake converts a PascalCase declaration name to the
// lower_snake_case symbol stem used for generated file and symbol names.
// An underscore is inserted at lower-to-upper and digit-to-upper boundaries,
// and at the last letter of an acronym run ("UInt8" becomes "u_int8"). The
// transform is deterministic and idempotent on its own output.
func CamelToSnake(name string) string {
	var out strings.Builder
	out.Grow(len(name) + 4)
	for ii := 0; ii < len(name); ii++ {
		c := name[ii]
		if c < 'A' || c > 'Z' {
			out.WriteByte(c)
			continue
		}
		if ii > 0 {
			prev := name[ii-1]
			prevBreaks := isLowerOrDigit(prev)
			acronymEnd := isUpper(prev) &&
				ii+1 < len(name) && isLower(name[ii+1])
			if prevBreaks || acronymEnd {
				out.WriteByte('_')
			}
		}
		out.WriteByte(c - 'A' + 'a')
	}
	return out.String()
}

// snakeToPascal converts a lower_snake_case member name to the exported
// field name of the generated struct ("goal_id" becomes "GoalId").
func snakeToPascal(name string) string {
	var out strings.Builder
	out.Grow(len(name))
	upperNext := true
	for ii := 0; ii < len(name); ii++ {
		c := name[ii]
		if c == '_' {
			upperNext = true
			continue
		}
		if upperNext && c >= 'a' && c <= 'z' {
			c = c - 'a' + 'A'
		}
		upperNext = false
		out.WriteByte(c)
	}
	return out.String()
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isLowerOrDigit(c byte) bool {
	return isLower(c) || (c >= '0' && c <= '9')
}
