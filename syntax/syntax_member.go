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
	"strings"

	"go.rosmsg.dev/rosmsg"
)

// declaration is the result of parsing one schema line: exactly one of
// member or constant is set.
type declaration struct {
	member   *rosmsg.Member
	constant *rosmsg.Constant
}

// parseDeclaration parses one non-blank, comment-stripped line. A line is a
// constant if an '=' separates the name from its value; otherwise it is a
// member with an optional default.
func parseDeclaration(line, defaultNamespace string) (declaration, error) {
	typeToken, rest := cutToken(line)
	if rest == "" {
		return declaration{}, errMissingMemberName(line)
	}
	memberType, err := parseMemberType(typeToken, defaultNamespace)
	if err != nil {
		return declaration{}, err
	}

	// Find the end of the name: either whitespace or an '=' glued onto it.
	nameEnd := strings.IndexAny(rest, " \t=")
	if nameEnd < 0 {
		member, err := newMember(memberType, rest, "", line)
		if err != nil {
			return declaration{}, err
		}
		return declaration{member: member}, nil
	}

	name := rest[:nameEnd]
	tail := strings.TrimLeft(rest[nameEnd:], " \t")
	if value, isEq := strings.CutPrefix(tail, "="); isEq {
		value = strings.TrimSpace(value)
		constant, err := newConstant(memberType, name, value, line)
		if err != nil {
			return declaration{}, err
		}
		return declaration{constant: constant}, nil
	}

	member, err := newMember(memberType, name, tail, line)
	if err != nil {
		return declaration{}, err
	}
	return declaration{member: member}, nil
}

func newMember(
	memberType rosmsg.MemberType,
	name string,
	defaultText string,
	line string,
) (*rosmsg.Member, error) {
	if !isIdentifier(name) {
		return nil, errInvalidIdentifier(name)
	}
	member := &rosmsg.Member{
		Name: name,
		Type: memberType,
	}
	if defaultText == "" {
		return member, nil
	}
	value, err := parseTypedValue(memberType, defaultText, line)
	if err != nil {
		return nil, err
	}
	member.Default = value
	return member, nil
}

func newConstant(
	memberType rosmsg.MemberType,
	name string,
	valueText string,
	line string,
) (*rosmsg.Constant, error) {
	if !isConstantName(name) {
		return nil, errInvalidIdentifier(name)
	}
	constantType, ok := constantTypeOf(memberType)
	if !ok {
		return nil, errInvalidConstantType(memberType.String(), line)
	}
	if valueText == "" {
		return nil, errMissingConstantValue(line)
	}
	value, err := parseConstantValue(constantType, valueText, line)
	if err != nil {
		return nil, err
	}
	return &rosmsg.Constant{
		Name:  name,
		Type:  constantType,
		Value: value,
	}, nil
}

// parseTypedValue validates a default value against a member type and
// returns its canonical element list. Arity: exactly one element for scalar
// and string types, the declared size for arrays, at most the capacity for
// bounded sequences, and any count for unbounded sequences.
func parseTypedValue(
	memberType rosmsg.MemberType,
	text string,
	line string,
) ([]string, error) {
	switch t := memberType.(type) {
	case rosmsg.BasicType:
		value, err := parseBasicLiteral(t, text)
		if err != nil {
			return nil, err
		}
		return []string{value}, nil

	case rosmsg.StringType:
		value, err := parseStringLiteral(t, text)
		if err != nil {
			return nil, err
		}
		return []string{value}, nil

	case rosmsg.Array:
		values, err := parseElementValues(t.ValueType, t.String(), text, line)
		if err != nil {
			return nil, err
		}
		if uint64(len(values)) != t.Size {
			return nil, errWrongArity(t.String(), int(t.Size), len(values), text)
		}
		return values, nil

	case rosmsg.Sequence:
		return parseElementValues(t.ValueType, t.String(), text, line)

	case rosmsg.BoundedSequence:
		values, err := parseElementValues(t.ValueType, t.String(), text, line)
		if err != nil {
			return nil, err
		}
		if uint64(len(values)) > t.MaxSize {
			return nil, errTooManyElements(t.String(), t.MaxSize, len(values), text)
		}
		return values, nil
	}

	// NamedType / NamespacedType.
	return nil, errNonPrimitiveDefault(memberType.String(), line)
}

func parseConstantValue(
	constantType rosmsg.ConstantType,
	text string,
	line string,
) ([]string, error) {
	if array, ok := constantType.(rosmsg.PrimitiveArray); ok {
		values, err := parseElementValues(array.ValueType, array.String(), text, line)
		if err != nil {
			return nil, err
		}
		if uint64(len(values)) != array.Size {
			return nil, errWrongArity(array.String(), int(array.Size), len(values), text)
		}
		return values, nil
	}
	return parseTypedValue(constantType.(rosmsg.MemberType), text, line)
}

func parseElementValues(
	valueType rosmsg.NestableType,
	typeName string,
	text string,
	line string,
) ([]string, error) {
	elemParser, ok := elementParser(valueType)
	if !ok {
		return nil, errNonPrimitiveDefault(typeName, line)
	}
	return parseSequenceLiteral(elemParser, text)
}

func isConstantName(s string) bool {
	if len(s) == 0 || s[0] < 'A' || s[0] > 'Z' {
		return false
	}
	for ii := 1; ii < len(s); ii++ {
		c := s[ii]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') && c != '_' {
			return false
		}
	}
	return true
}

// cutToken splits off the first whitespace-delimited token.
func cutToken(s string) (token, rest string) {
	end := strings.IndexAny(s, " \t")
	if end < 0 {
		return s, ""
	}
	return s[:end], strings.TrimLeft(s[end:], " \t")
}
