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
	"fmt"
)

// ErrorKind classifies parse failures. Grammar errors mean a line or token
// does not match the declaration grammar, value errors mean a default or
// constant value is invalid for its declared type, and structural errors
// mean the file shape itself is wrong (section count, non-primitive default).
type ErrorKind uint8

const (
	KindGrammar ErrorKind = iota + 1
	KindValue
	KindStructural
)

func (k ErrorKind) String() string {
	switch k {
	case KindGrammar:
		return "grammar"
	case KindValue:
		return "value"
	case KindStructural:
		return "structural"
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// Error is a parse failure. Input carries the raw offending line or token
// so callers can report diagnostics verbatim.
type Error struct {
	code    uint32
	kind    ErrorKind
	message string
	input   string
}

var _ error = (*Error)(nil)

func (err *Error) Error() string {
	if err.input == "" {
		return fmt.Sprintf("E%d: %s", err.code, err.message)
	}
	return fmt.Sprintf("E%d: %s (in %q)", err.code, err.message, err.input)
}

func (err *Error) Code() uint32 {
	return err.code
}

func (err *Error) Kind() ErrorKind {
	return err.kind
}

func (err *Error) Message() string {
	return err.message
}

func (err *Error) Input() string {
	return err.input
}

func errInvalidTypeToken(token string) error {
	return &Error{
		code:    1000,
		kind:    KindGrammar,
		message: fmt.Sprintf("Invalid type %q", token),
		input:   token,
	}
}

func errInvalidArraySize(token string) error {
	return &Error{
		code:    1001,
		kind:    KindGrammar,
		message: fmt.Sprintf("Invalid array size in %q", token),
		input:   token,
	}
}

func errInvalidStringBound(token string) error {
	return &Error{
		code:    1002,
		kind:    KindGrammar,
		message: fmt.Sprintf("Invalid string bound in %q", token),
		input:   token,
	}
}

func errInvalidIdentifier(token string) error {
	return &Error{
		code:    1003,
		kind:    KindGrammar,
		message: fmt.Sprintf("Invalid identifier %q", token),
		input:   token,
	}
}

func errMissingMemberName(line string) error {
	return &Error{
		code:    1004,
		kind:    KindGrammar,
		message: "Expected a member name after the type",
		input:   line,
	}
}

func errMissingConstantValue(line string) error {
	return &Error{
		code:    1005,
		kind:    KindGrammar,
		message: "Expected a value after '='",
		input:   line,
	}
}

func errInvalidValue(typeName, token string) error {
	return &Error{
		code:    2000,
		kind:    KindValue,
		message: fmt.Sprintf("Cannot parse value %q for type %s", token, typeName),
		input:   token,
	}
}

func errValueOutOfRange(typeName, token string) error {
	return &Error{
		code:    2001,
		kind:    KindValue,
		message: fmt.Sprintf("Value %q out of range for type %s", token, typeName),
		input:   token,
	}
}

func errStringTooLong(maxSize uint64, token string) error {
	return &Error{
		code:    2002,
		kind:    KindValue,
		message: fmt.Sprintf("String literal exceeds bound %d", maxSize),
		input:   token,
	}
}

func errUnterminatedString(token string) error {
	return &Error{
		code:    2003,
		kind:    KindValue,
		message: "Unterminated string literal",
		input:   token,
	}
}

func errInvalidEscape(token string) error {
	return &Error{
		code:    2004,
		kind:    KindValue,
		message: fmt.Sprintf("Invalid escape sequence in %q", token),
		input:   token,
	}
}

func errExpectedArrayLiteral(token string) error {
	return &Error{
		code:    2005,
		kind:    KindValue,
		message: fmt.Sprintf("Expected array literal '[...]', got %q", token),
		input:   token,
	}
}

func errWrongArity(typeName string, want, got int, token string) error {
	return &Error{
		code: 2006,
		kind: KindValue,
		message: fmt.Sprintf(
			"Wrong element count for type %s: expected %d, got %d",
			typeName, want, got,
		),
		input: token,
	}
}

func errTooManyElements(typeName string, max uint64, got int, token string) error {
	return &Error{
		code: 2007,
		kind: KindValue,
		message: fmt.Sprintf(
			"Too many elements for type %s: at most %d, got %d",
			typeName, max, got,
		),
		input: token,
	}
}

func errSectionCount(want, got int) error {
	return &Error{
		code: 3000,
		kind: KindStructural,
		message: fmt.Sprintf(
			"Expected %d section separator(s) '---', found %d",
			want, got,
		),
	}
}

func errNonPrimitiveDefault(typeName, line string) error {
	return &Error{
		code:    3001,
		kind:    KindStructural,
		message: fmt.Sprintf("Default values are not supported for type %s", typeName),
		input:   line,
	}
}

func errInvalidConstantType(typeName, line string) error {
	return &Error{
		code:    3002,
		kind:    KindStructural,
		message: fmt.Sprintf("Type %s is not a valid constant type", typeName),
		input:   line,
	}
}
