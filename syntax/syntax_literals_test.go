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

package syntax_test

import (
	"fmt"
	"testing"

	"go.rosmsg.dev/rosmsg/internal/testutil"
	"go.rosmsg.dev/rosmsg/syntax"
)

func constantValue(t *testing.T, line string) []string {
	t.Helper()
	msg := parseMsg(t, line+"\n")
	if len(msg.Constants) != 1 {
		t.Fatalf("Expected 1 constant, got: %d", len(msg.Constants))
	}
	return msg.Constants[0].Value
}

func TestIntegerBounds(t *testing.T) {
	t.Parallel()

	bounds := []struct {
		typeName string
		min, max string
		underMin string
		overMax  string
	}{
		{"int8", "-128", "127", "-129", "128"},
		{"uint8", "0", "255", "-1", "256"},
		{"int16", "-32768", "32767", "-32769", "32768"},
		{"uint16", "0", "65535", "-1", "65536"},
		{"int32", "-2147483648", "2147483647", "-2147483649", "2147483648"},
		{"uint32", "0", "4294967295", "-1", "4294967296"},
		{
			"int64", "-9223372036854775808", "9223372036854775807",
			"-9223372036854775809", "9223372036854775808",
		},
		{"uint64", "0", "18446744073709551615", "-1", "18446744073709551616"},
	}

	for _, tt := range bounds {
		tt := tt
		t.Run(tt.typeName, func(t *testing.T) {
			t.Parallel()

			line := func(value string) string {
				return fmt.Sprintf("%s AAA=%s", tt.typeName, value)
			}
			testutil.ExpectSliceEq(t, []string{tt.min}, constantValue(t, line(tt.min)))
			testutil.ExpectSliceEq(t, []string{tt.max}, constantValue(t, line(tt.max)))
			expectParseErr(t, line(tt.underMin)+"\n", syntax.KindValue)
			expectParseErr(t, line(tt.overMax)+"\n", syntax.KindValue)
		})
	}
}

func TestBooleanLiterals(t *testing.T) {
	t.Parallel()

	testutil.ExpectSliceEq(t, []string{"true"}, constantValue(t, "bool AAA=true"))
	testutil.ExpectSliceEq(t, []string{"true"}, constantValue(t, "bool AAA=TRUE"))
	testutil.ExpectSliceEq(t, []string{"false"}, constantValue(t, "bool AAA=False"))
	expectParseErr(t, "bool AAA=yes\n", syntax.KindValue)
	expectParseErr(t, "bool AAA=1\n", syntax.KindValue)
}

func TestFloatLiterals(t *testing.T) {
	t.Parallel()

	testutil.ExpectSliceEq(t, []string{"1.5"}, constantValue(t, "float64 AAA=1.5"))
	testutil.ExpectSliceEq(t, []string{"-250"}, constantValue(t, "float32 AAA=-2.5e2"))
	testutil.ExpectSliceEq(t, []string{"1e-09"}, constantValue(t, "float64 AAA=0.000000001"))
	expectParseErr(t, "float64 AAA=abc\n", syntax.KindValue)
	expectParseErr(t, "float32 AAA=1e100\n", syntax.KindValue)
}

func TestIntegerCanonicalForm(t *testing.T) {
	t.Parallel()

	testutil.ExpectSliceEq(t, []string{"5"}, constantValue(t, "int32 AAA=+5"))
	testutil.ExpectSliceEq(t, []string{"7"}, constantValue(t, "uint8 AAA=007"))
}

func TestStringLiterals(t *testing.T) {
	t.Parallel()

	testutil.ExpectSliceEq(t, []string{"hello"}, constantValue(t, `string AAA="hello"`))
	testutil.ExpectSliceEq(t, []string{"hello"}, constantValue(t, `string AAA='hello'`))
	testutil.ExpectSliceEq(t,
		[]string{`quote " and \ inside`},
		constantValue(t, `string AAA="quote \" and \\ inside"`))
	testutil.ExpectSliceEq(t, []string{""}, constantValue(t, `string AAA=""`))

	expectParseErr(t, "string AAA=\"unterminated\n", syntax.KindValue)
	expectParseErr(t, "string AAA=\"bad \\n escape\"\n", syntax.KindValue)
	expectParseErr(t, "string AAA=unquoted\n", syntax.KindValue)
}

func TestBoundedStringLiterals(t *testing.T) {
	t.Parallel()

	testutil.ExpectSliceEq(t, []string{"abc"}, constantValue(t, `string<=3 AAA="abc"`))
	expectParseErr(t, "string<=3 AAA=\"abcd\"\n", syntax.KindValue)

	testutil.ExpectSliceEq(t, []string{"wide"}, constantValue(t, `wstring<=4 AAA="wide"`))
}

func TestArrayLiterals(t *testing.T) {
	t.Parallel()

	testutil.ExpectSliceEq(t,
		[]string{"1", "2", "3"},
		constantValue(t, "int32[3] AAA=[1, 2, 3]"))

	// Fixed arrays take exactly their declared size.
	expectParseErr(t, "int32[3] AAA=[1, 2]\n", syntax.KindValue)
	expectParseErr(t, "int32[3] AAA=[1, 2, 3, 4]\n", syntax.KindValue)

	// Element values are validated against the element type.
	expectParseErr(t, "uint8[2] AAA=[1, 256]\n", syntax.KindValue)

	// Array literals must be bracketed.
	expectParseErr(t, "int32[2] AAA=1 2\n", syntax.KindValue)
}

func TestSequenceDefaults(t *testing.T) {
	t.Parallel()

	msg := parseMsg(t, "int32[] aaa [1, 2, 3, 4, 5]\n")
	testutil.ExpectSliceEq(t, []string{"1", "2", "3", "4", "5"}, msg.Members[0].Default)

	msg = parseMsg(t, "int32[] aaa []\n")
	testutil.ExpectSliceEq(t, []string{}, msg.Members[0].Default)
}

func TestBoundedSequenceDefaults(t *testing.T) {
	t.Parallel()

	msg := parseMsg(t, "int32[<=3] aaa [1, 2, 3]\n")
	testutil.ExpectSliceEq(t, []string{"1", "2", "3"}, msg.Members[0].Default)

	expectParseErr(t, "int32[<=3] aaa [1, 2, 3, 4]\n", syntax.KindValue)
}

func TestStringElementLiterals(t *testing.T) {
	t.Parallel()

	msg := parseMsg(t, `string[] aaa ["one", 'two, three', "four"]`+"\n")
	testutil.ExpectSliceEq(t, []string{"one", "two, three", "four"}, msg.Members[0].Default)
}
