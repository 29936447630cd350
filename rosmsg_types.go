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

package rosmsg

import (
	"fmt"
	"strconv"
)

// MemberType is any type legal for a message member: a NestableType, or one
// level of Array / Sequence / BoundedSequence over a NestableType.
type MemberType interface {
	memberType()
	String() string
}

// NestableType is a type that may appear as an array or sequence element:
// a primitive, or a named/namespaced reference to another interface.
type NestableType interface {
	MemberType
	nestableType()
}

// PrimitiveType is a built-in scalar or string type. Width, signedness and
// string bounds are fixed at parse time.
type PrimitiveType interface {
	NestableType
	primitiveType()
	constantType()
}

// ConstantType is any type legal for a constant: a primitive, or a
// fixed-size array of primitives. Sequences are not legal constant types.
type ConstantType interface {
	constantType()
	String() string
}

type BasicType uint8

const (
	Bool BasicType = iota
	Byte
	Char
	Float32
	Float64
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
)

func (t BasicType) String() string {
	switch t {
	case Bool:
		return "bool"
	case Byte:
		return "byte"
	case Char:
		return "char"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	case Uint16:
		return "uint16"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Int64:
		return "int64"
	case Uint64:
		return "uint64"
	default:
		return fmt.Sprintf("BasicType(%d)", uint8(t))
	}
}

func (BasicType) memberType()    {}
func (BasicType) nestableType()  {}
func (BasicType) primitiveType() {}
func (BasicType) constantType()  {}

// StringType is a narrow or wide string, optionally bounded. MaxSize == 0
// means unbounded.
type StringType struct {
	Wide    bool
	MaxSize uint64
}

func (t StringType) String() string {
	name := "string"
	if t.Wide {
		name = "wstring"
	}
	if t.MaxSize == 0 {
		return name
	}
	return name + "<=" + strconv.FormatUint(t.MaxSize, 10)
}

func (StringType) memberType()    {}
func (StringType) nestableType()  {}
func (StringType) primitiveType() {}
func (StringType) constantType()  {}

// NamedType is a bare reference to an interface in an unknown package. It is
// recorded as-is; resolution is the consumer's responsibility.
type NamedType struct {
	Name string
}

func (t NamedType) String() string {
	return t.Name
}

func (NamedType) memberType()   {}
func (NamedType) nestableType() {}

// NamespacedType is a reference to an interface in a specific package and
// dialect namespace. Like NamedType it is never checked for existence here.
type NamespacedType struct {
	Package   string
	Namespace string
	Name      string
}

func (t NamespacedType) String() string {
	return t.Package + "/" + t.Namespace + "/" + t.Name
}

func (NamespacedType) memberType()   {}
func (NamespacedType) nestableType() {}

// Array is a fixed-size array of a nestable element type.
type Array struct {
	ValueType NestableType
	Size      uint64
}

func (t Array) String() string {
	return t.ValueType.String() + "[" + strconv.FormatUint(t.Size, 10) + "]"
}

func (Array) memberType() {}

// Sequence is an unbounded variable-length collection.
type Sequence struct {
	ValueType NestableType
}

func (t Sequence) String() string {
	return t.ValueType.String() + "[]"
}

func (Sequence) memberType() {}

// BoundedSequence is a variable-length collection with a maximum element
// count.
type BoundedSequence struct {
	ValueType NestableType
	MaxSize   uint64
}

func (t BoundedSequence) String() string {
	return t.ValueType.String() + "[<=" + strconv.FormatUint(t.MaxSize, 10) + "]"
}

func (BoundedSequence) memberType() {}

// PrimitiveArray is a fixed-size array of primitives, the only aggregate
// constant type.
type PrimitiveArray struct {
	ValueType PrimitiveType
	Size      uint64
}

func (t PrimitiveArray) String() string {
	return t.ValueType.String() + "[" + strconv.FormatUint(t.Size, 10) + "]"
}

func (PrimitiveArray) constantType() {}
