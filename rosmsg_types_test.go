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

package rosmsg_test

import (
	"testing"

	"go.rosmsg.dev/rosmsg"
	"go.rosmsg.dev/rosmsg/internal/testutil"
)

func TestTypeStrings(t *testing.T) {
	t.Parallel()

	testutil.ExpectEq(t, "bool", rosmsg.Bool.String())
	testutil.ExpectEq(t, "byte", rosmsg.Byte.String())
	testutil.ExpectEq(t, "char", rosmsg.Char.String())
	testutil.ExpectEq(t, "float64", rosmsg.Float64.String())
	testutil.ExpectEq(t, "uint64", rosmsg.Uint64.String())

	testutil.ExpectEq(t, "string", rosmsg.StringType{}.String())
	testutil.ExpectEq(t, "string<=10", rosmsg.StringType{MaxSize: 10}.String())
	testutil.ExpectEq(t, "wstring", rosmsg.StringType{Wide: true}.String())
	testutil.ExpectEq(t, "wstring<=3", rosmsg.StringType{Wide: true, MaxSize: 3}.String())

	testutil.ExpectEq(t, "Point", rosmsg.NamedType{Name: "Point"}.String())
	testutil.ExpectEq(t, "geometry_msgs/msg/Point", rosmsg.NamespacedType{
		Package:   "geometry_msgs",
		Namespace: "msg",
		Name:      "Point",
	}.String())

	testutil.ExpectEq(t, "int32[4]", rosmsg.Array{
		ValueType: rosmsg.Int32,
		Size:      4,
	}.String())
	testutil.ExpectEq(t, "float64[]", rosmsg.Sequence{
		ValueType: rosmsg.Float64,
	}.String())
	testutil.ExpectEq(t, "string[<=5]", rosmsg.BoundedSequence{
		ValueType: rosmsg.StringType{},
		MaxSize:   5,
	}.String())
	testutil.ExpectEq(t, "uint8[16]", rosmsg.PrimitiveArray{
		ValueType: rosmsg.Uint8,
		Size:      16,
	}.String())
}

func TestEmptyStructMember(t *testing.T) {
	t.Parallel()

	member := rosmsg.EmptyStructMember()
	testutil.ExpectEq(t, "structure_needs_at_least_one_member", member.Name)
	testutil.ExpectEq[rosmsg.MemberType](t, rosmsg.Uint8, member.Type)
}

func TestPackageIsEmpty(t *testing.T) {
	t.Parallel()

	pkg := rosmsg.Package{Name: "empty_msgs"}
	testutil.ExpectTrue(t, pkg.IsEmpty())

	pkg.Messages = append(pkg.Messages, rosmsg.Message{Name: "Heartbeat"})
	testutil.ExpectFalse(t, pkg.IsEmpty())
}
