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
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.rosmsg.dev/rosmsg"
)

// literalParser converts one literal token into its canonical textual value.
type literalParser func(token string) (string, error)

var basicTypeBits = map[rosmsg.BasicType]int{
	rosmsg.Int8:    8,
	rosmsg.Int16:   16,
	rosmsg.Int32:   32,
	rosmsg.Int64:   64,
	rosmsg.Byte:    8,
	rosmsg.Char:    8,
	rosmsg.Uint8:   8,
	rosmsg.Uint16:  16,
	rosmsg.Uint32:  32,
	rosmsg.Uint64:  64,
	rosmsg.Float32: 32,
	rosmsg.Float64: 64,
}

// parseBasicLiteral validates a scalar literal against its declared type and
// re-formats it canonically: booleans lowercased, integers without sign or
// leading-zero decoration, floats in Go's shortest 'g' form.
func parseBasicLiteral(basicType rosmsg.BasicType, token string) (string, error) {
	typeName := basicType.String()
	bits := basicTypeBits[basicType]

	switch basicType {
	case rosmsg.Bool:
		switch strings.ToLower(token) {
		case "true":
			return "true", nil
		case "false":
			return "false", nil
		}
		return "", errInvalidValue(typeName, token)

	case rosmsg.Int8, rosmsg.Int16, rosmsg.Int32, rosmsg.Int64:
		value, err := strconv.ParseInt(token, 10, bits)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return "", errValueOutOfRange(typeName, token)
			}
			return "", errInvalidValue(typeName, token)
		}
		return strconv.FormatInt(value, 10), nil

	case rosmsg.Byte, rosmsg.Char,
		rosmsg.Uint8, rosmsg.Uint16, rosmsg.Uint32, rosmsg.Uint64:
		value, err := strconv.ParseUint(token, 10, bits)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return "", errValueOutOfRange(typeName, token)
			}
			if strings.HasPrefix(token, "-") {
				if _, err := strconv.ParseInt(token, 10, 64); err == nil {
					return "", errValueOutOfRange(typeName, token)
				}
			}
			return "", errInvalidValue(typeName, token)
		}
		return strconv.FormatUint(value, 10), nil

	case rosmsg.Float32, rosmsg.Float64:
		value, err := strconv.ParseFloat(token, bits)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return "", errValueOutOfRange(typeName, token)
			}
			return "", errInvalidValue(typeName, token)
		}
		if math.IsInf(value, 0) || math.IsNaN(value) {
			return "", errValueOutOfRange(typeName, token)
		}
		return strconv.FormatFloat(value, 'g', -1, bits), nil
	}

	return "", errInvalidValue(typeName, token)
}

// parseStringLiteral decodes a quoted string literal. Both single and double
// quotes are accepted; the escapes are \\, \', and \". Bounded strings are
// measured in decoded runes.
func parseStringLiteral(stringType rosmsg.StringType, token string) (string, error) {
	if len(token) < 2 {
		return "", errInvalidValue(stringType.String(), token)
	}
	quote := token[0]
	if quote != '\'' && quote != '"' {
		return "", errInvalidValue(stringType.String(), token)
	}

	var decoded strings.Builder
	terminated := false
	ii := 1
	for ii < len(token) {
		c := token[ii]
		if c == '\\' {
			if ii+1 >= len(token) {
				return "", errInvalidEscape(token)
			}
			esc := token[ii+1]
			if esc != '\\' && esc != '\'' && esc != '"' {
				return "", errInvalidEscape(token)
			}
			decoded.WriteByte(esc)
			ii += 2
			continue
		}
		if c == quote {
			if ii != len(token)-1 {
				return "", errInvalidValue(stringType.String(), token)
			}
			terminated = true
			break
		}
		decoded.WriteByte(c)
		ii++
	}
	if !terminated {
		return "", errUnterminatedString(token)
	}

	value := decoded.String()
	if stringType.MaxSize > 0 {
		if uint64(utf8.RuneCountInString(value)) > stringType.MaxSize {
			return "", errStringTooLong(stringType.MaxSize, token)
		}
	}
	return value, nil
}

// parseSequenceLiteral parses a bracketed "[v1, v2, ...]" literal, applying
// the element parser to each comma-separated element. Commas inside quoted
// elements do not split. Arity is the caller's concern.
func parseSequenceLiteral(elemParser literalParser, token string) ([]string, error) {
	if len(token) < 2 || token[0] != '[' || token[len(token)-1] != ']' {
		return nil, errExpectedArrayLiteral(token)
	}
	inner := strings.TrimSpace(token[1 : len(token)-1])
	if inner == "" {
		return []string{}, nil
	}

	elems, err := splitElements(inner)
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, len(elems))
	for _, elem := range elems {
		value, err := elemParser(elem)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

// splitElements splits on top-level commas, leaving quoted runs intact.
func splitElements(inner string) ([]string, error) {
	var elems []string
	var quote byte
	start := 0
	for ii := 0; ii < len(inner); ii++ {
		c := inner[ii]
		if quote != 0 {
			if c == '\\' {
				ii++
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case ',':
			elems = append(elems, strings.TrimSpace(inner[start:ii]))
			start = ii + 1
		}
	}
	if quote != 0 {
		return nil, errUnterminatedString(inner)
	}
	elems = append(elems, strings.TrimSpace(inner[start:]))
	return elems, nil
}

// elementParser returns the literal parser for a sequence or array element
// type. Named and namespaced element types have no literal syntax.
func elementParser(valueType rosmsg.NestableType) (literalParser, bool) {
	switch t := valueType.(type) {
	case rosmsg.BasicType:
		return func(token string) (string, error) {
			return parseBasicLiteral(t, token)
		}, true
	case rosmsg.StringType:
		return func(token string) (string, error) {
			return parseStringLiteral(t, token)
		}, true
	}
	return nil, false
}
