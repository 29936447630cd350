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

// Member is one field of a message. Default, when present, holds the
// validated element literals: one element for scalar and string types, the
// declared size for arrays, and up to the capacity for bounded sequences.
type Member struct {
	Name    string
	Type    MemberType
	Default []string
}

// Constant is one constant of a message. Value follows the same arity rules
// as Member.Default and is always present.
type Constant struct {
	Name  string
	Type  ConstantType
	Value []string
}

// Message is a parsed message definition. Members and Constants preserve
// source order; member order defines the struct layout of generated code.
type Message struct {
	Package   string
	Name      string
	Members   []Member
	Constants []Constant
}

// EmptyStructMember is the placeholder emitted for messages with no members,
// so that generated struct layouts are never zero-sized.
func EmptyStructMember() Member {
	return Member{
		Name: "structure_needs_at_least_one_member",
		Type: Uint8,
	}
}
