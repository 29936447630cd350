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
	"testing"

	"go.rosmsg.dev/rosmsg"
	"go.rosmsg.dev/rosmsg/internal/testutil"
	"go.rosmsg.dev/rosmsg/syntax"
)

func memberTypeOf(t *testing.T, typeToken string) rosmsg.MemberType {
	t.Helper()
	msg := parseMsg(t, typeToken+" aaa\n")
	if len(msg.Members) != 1 {
		t.Fatalf("Expected 1 member, got: %d", len(msg.Members))
	}
	return msg.Members[0].Type
}

func TestParsePrimitiveTypes(t *testing.T) {
	t.Parallel()

	keywords := map[string]rosmsg.BasicType{
		"bool":    rosmsg.Bool,
		"byte":    rosmsg.Byte,
		"char":    rosmsg.Char,
		"float32": rosmsg.Float32,
		"float64": rosmsg.Float64,
		"int8":    rosmsg.Int8,
		"uint8":   rosmsg.Uint8,
		"int16":   rosmsg.Int16,
		"uint16":  rosmsg.Uint16,
		"int32":   rosmsg.Int32,
		"uint32":  rosmsg.Uint32,
		"int64":   rosmsg.Int64,
		"uint64":  rosmsg.Uint64,
	}
	for keyword, want := range keywords {
		testutil.ExpectDeepEq(t, want, memberTypeOf(t, keyword))
	}
}

func TestParseStringTypes(t *testing.T) {
	t.Parallel()

	testutil.ExpectDeepEq(t, rosmsg.StringType{}, memberTypeOf(t, "string"))
	testutil.ExpectDeepEq(t,
		rosmsg.StringType{MaxSize: 10},
		memberTypeOf(t, "string<=10"))
	testutil.ExpectDeepEq(t,
		rosmsg.StringType{Wide: true},
		memberTypeOf(t, "wstring"))
	testutil.ExpectDeepEq(t,
		rosmsg.StringType{Wide: true, MaxSize: 5},
		memberTypeOf(t, "wstring<=5"))

	expectParseErr(t, "string<=0 aaa\n", syntax.KindGrammar)
	expectParseErr(t, "string<=x aaa\n", syntax.KindGrammar)
}

func TestParseArrayTypes(t *testing.T) {
	t.Parallel()

	testutil.ExpectDeepEq(t,
		rosmsg.Array{ValueType: rosmsg.Int16, Size: 3},
		memberTypeOf(t, "int16[3]"))
	testutil.ExpectDeepEq(t,
		rosmsg.Sequence{ValueType: rosmsg.Float64},
		memberTypeOf(t, "float64[]"))
	testutil.ExpectDeepEq(t,
		rosmsg.BoundedSequence{ValueType: rosmsg.Int32, MaxSize: 8},
		memberTypeOf(t, "int32[<=8]"))

	// The string's own bound is independent of the outer suffix.
	testutil.ExpectDeepEq(t,
		rosmsg.BoundedSequence{
			ValueType: rosmsg.StringType{MaxSize: 5},
			MaxSize:   10,
		},
		memberTypeOf(t, "string<=5[<=10]"))

	expectParseErr(t, "int32[0] aaa\n", syntax.KindGrammar)
	expectParseErr(t, "int32[x] aaa\n", syntax.KindGrammar)
	expectParseErr(t, "int32[3][4] aaa\n", syntax.KindGrammar)
}

func TestParseNamedTypes(t *testing.T) {
	t.Parallel()

	testutil.ExpectDeepEq(t,
		rosmsg.NamedType{Name: "Point"},
		memberTypeOf(t, "Point"))
	testutil.ExpectDeepEq(t,
		rosmsg.NamespacedType{
			Package:   "geometry_msgs",
			Namespace: "msg",
			Name:      "Point",
		},
		memberTypeOf(t, "geometry_msgs/Point"))
	testutil.ExpectDeepEq(t,
		rosmsg.NamespacedType{
			Package:   "geometry_msgs",
			Namespace: "msg",
			Name:      "Point",
		},
		memberTypeOf(t, "geometry_msgs/msg/Point"))
	testutil.ExpectDeepEq(t,
		rosmsg.Sequence{
			ValueType: rosmsg.NamespacedType{
				Package:   "geometry_msgs",
				Namespace: "msg",
				Name:      "Point",
			},
		},
		memberTypeOf(t, "geometry_msgs/Point[]"))

	expectParseErr(t, "geometry_msgs/bad/Point aaa\n", syntax.KindGrammar)
	expectParseErr(t, "Geometry_msgs/Point aaa\n", syntax.KindGrammar)
	expectParseErr(t, "not_a_type aaa\n", syntax.KindGrammar)
}

func TestDefaultNamespaceOption(t *testing.T) {
	t.Parallel()

	msg, err := syntax.ParseMessage(
		"test_msgs", "Test",
		[]byte("other_pkg/Thing aaa\n"),
		syntax.WithDefaultNamespace(rosmsg.NamespaceAction),
	)
	testutil.AssertNoError(t, err)
	testutil.ExpectDeepEq(t,
		rosmsg.NamespacedType{
			Package:   "other_pkg",
			Namespace: "action",
			Name:      "Thing",
		},
		msg.Members[0].Type)
}
