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

package syntax

import (
	"strconv"
	"strings"

	"go.rosmsg.dev/rosmsg"
)

var basicTypes = map[string]rosmsg.BasicType{
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

var namespaceTags = map[string]bool{
	rosmsg.NamespaceMsg:    true,
	rosmsg.NamespaceSrv:    true,
	rosmsg.NamespaceAction: true,
}

// parseMemberType parses a full type token, including at most one trailing
// "[N]", "[]", or "[<=N]" suffix. The element type of an array or sequence
// must itself be nestable, so one level of nesting is all the grammar can
// express.
func parseMemberType(token, defaultNamespace string) (rosmsg.MemberType, error) {
	if !strings.HasSuffix(token, "]") {
		return parseNestableType(token, defaultNamespace)
	}

	open := strings.IndexByte(token, '[')
	if open <= 0 {
		return nil, errInvalidTypeToken(token)
	}
	inner := token[open+1 : len(token)-1]
	valueType, err := parseNestableType(token[:open], defaultNamespace)
	if err != nil {
		return nil, err
	}

	if inner == "" {
		return rosmsg.Sequence{ValueType: valueType}, nil
	}
	if bound, ok := strings.CutPrefix(inner, "<="); ok {
		maxSize, err := strconv.ParseUint(bound, 10, 64)
		if err != nil || maxSize == 0 {
			return nil, errInvalidArraySize(token)
		}
		return rosmsg.BoundedSequence{
			ValueType: valueType,
			MaxSize:   maxSize,
		}, nil
	}
	size, err := strconv.ParseUint(inner, 10, 64)
	if err != nil || size == 0 {
		return nil, errInvalidArraySize(token)
	}
	return rosmsg.Array{
		ValueType: valueType,
		Size:      size,
	}, nil
}

func parseNestableType(token, defaultNamespace string) (rosmsg.NestableType, error) {
	if basic, ok := basicTypes[token]; ok {
		return basic, nil
	}
	if stringType, ok, err := parseStringType(token); ok {
		if err != nil {
			return nil, err
		}
		return stringType, nil
	}

	if strings.ContainsRune(token, '/') {
		return parseNamespacedType(token, defaultNamespace)
	}
	if !isTypeName(token) {
		return nil, errInvalidTypeToken(token)
	}
	return rosmsg.NamedType{Name: token}, nil
}

func parseStringType(token string) (rosmsg.StringType, bool, error) {
	var rest string
	var wide bool
	switch {
	case strings.HasPrefix(token, "string"):
		rest = token[len("string"):]
	case strings.HasPrefix(token, "wstring"):
		rest = token[len("wstring"):]
		wide = true
	default:
		return rosmsg.StringType{}, false, nil
	}

	if rest == "" {
		return rosmsg.StringType{Wide: wide}, true, nil
	}
	bound, ok := strings.CutPrefix(rest, "<=")
	if !ok {
		// Something like "string_like": a plain (invalid) type name, not a
		// string type at all.
		return rosmsg.StringType{}, false, nil
	}
	maxSize, err := strconv.ParseUint(bound, 10, 64)
	if err != nil || maxSize == 0 {
		return rosmsg.StringType{}, true, errInvalidStringBound(token)
	}
	return rosmsg.StringType{Wide: wide, MaxSize: maxSize}, true, nil
}

func parseNamespacedType(token, defaultNamespace string) (rosmsg.NestableType, error) {
	parts := strings.Split(token, "/")

	var pkg, namespace, name string
	switch len(parts) {
	case 2:
		pkg, namespace, name = parts[0], defaultNamespace, parts[1]
	case 3:
		pkg, namespace, name = parts[0], parts[1], parts[2]
		if !namespaceTags[namespace] {
			return nil, errInvalidTypeToken(token)
		}
	default:
		return nil, errInvalidTypeToken(token)
	}

	if !isPackageName(pkg) || !isTypeName(name) {
		return nil, errInvalidTypeToken(token)
	}
	return rosmsg.NamespacedType{
		Package:   pkg,
		Namespace: namespace,
		Name:      name,
	}, nil
}

// constantTypeOf restricts a member type to the types legal in a constant
// declaration: primitives and fixed-size arrays of primitives. Sequences,
// bounded sequences, and named references are not constant types.
func constantTypeOf(memberType rosmsg.MemberType) (rosmsg.ConstantType, bool) {
	switch t := memberType.(type) {
	case rosmsg.PrimitiveType:
		return t, true
	case rosmsg.Array:
		if primitive, ok := t.ValueType.(rosmsg.PrimitiveType); ok {
			return rosmsg.PrimitiveArray{
				ValueType: primitive,
				Size:      t.Size,
			}, true
		}
	}
	return nil, false
}

func isTypeName(s string) bool {
	if len(s) == 0 || s[0] < 'A' || s[0] > 'Z' {
		return false
	}
	for ii := 1; ii < len(s); ii++ {
		if !isAlphanumeric(s[ii]) {
			return false
		}
	}
	return true
}

func isPackageName(s string) bool {
	if len(s) == 0 || s[0] < 'a' || s[0] > 'z' {
		return false
	}
	for ii := 1; ii < len(s); ii++ {
		c := s[ii]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '_' {
			return false
		}
	}
	return true
}

func isIdentifier(s string) bool {
	if len(s) == 0 || !isLetter(s[0]) {
		return false
	}
	for ii := 1; ii < len(s); ii++ {
		c := s[ii]
		if !isAlphanumeric(c) && c != '_' {
			return false
		}
	}
	return true
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphanumeric(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9')
}
