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

// Package syntax parses interface definition text in the message, service,
// and action dialects into the model types of package rosmsg.
//
// All three dialects share a line-oriented declaration grammar; service and
// action files join two or three message bodies with "---" separator lines.
// Parsing is a pure function of the source text. The parsers never return a
// partial result: any grammar, value, or structural violation fails the
// whole file.
package syntax

import (
	"strings"

	"go.rosmsg.dev/rosmsg"
)

const sectionSeparator = "---"

type ParseOption interface {
	apply(*ParseOptions)
}

type parseOption func(*ParseOptions)

func (f parseOption) apply(opts *ParseOptions) { f(opts) }

type ParseOptions struct {
	defaultNamespace string
}

// WithDefaultNamespace sets the namespace tag assumed for "pkg/Name" type
// references that do not spell one out. The default is "msg".
func WithDefaultNamespace(namespace string) ParseOption {
	return parseOption(func(opts *ParseOptions) {
		opts.defaultNamespace = namespace
	})
}

func NewParseOptions(opts ...ParseOption) *ParseOptions {
	parseOptions := &ParseOptions{
		defaultNamespace: rosmsg.NamespaceMsg,
	}
	for _, opt := range opts {
		opt.apply(parseOptions)
	}
	return parseOptions
}

// ParseMessage parses a message dialect file body.
func ParseMessage(
	pkg, name string,
	src []byte,
	opts ...ParseOption,
) (rosmsg.Message, error) {
	return NewParseOptions(opts...).ParseMessage(pkg, name, src)
}

// ParseService parses a service dialect file body: two message bodies
// separated by a single "---" line.
func ParseService(
	pkg, name string,
	src []byte,
	opts ...ParseOption,
) (rosmsg.Service, error) {
	return NewParseOptions(opts...).ParseService(pkg, name, src)
}

// ParseAction parses an action dialect file body: goal, result, and
// feedback message bodies separated by two "---" lines.
func ParseAction(
	pkg, name string,
	src []byte,
	opts ...ParseOption,
) (rosmsg.Action, error) {
	return NewParseOptions(opts...).ParseAction(pkg, name, src)
}

func (opts *ParseOptions) ParseMessage(
	pkg, name string,
	src []byte,
) (rosmsg.Message, error) {
	sections := splitSections(src)
	if len(sections) != 1 {
		return rosmsg.Message{}, errSectionCount(0, len(sections)-1)
	}
	return opts.parseMessageBody(pkg, name, sections[0])
}

func (opts *ParseOptions) ParseService(
	pkg, name string,
	src []byte,
) (rosmsg.Service, error) {
	sections := splitSections(src)
	if len(sections) != 2 {
		return rosmsg.Service{}, errSectionCount(1, len(sections)-1)
	}
	request, err := opts.parseMessageBody(
		pkg, name+rosmsg.ServiceRequestSuffix, sections[0])
	if err != nil {
		return rosmsg.Service{}, err
	}
	response, err := opts.parseMessageBody(
		pkg, name+rosmsg.ServiceResponseSuffix, sections[1])
	if err != nil {
		return rosmsg.Service{}, err
	}
	return rosmsg.Service{
		Package:  pkg,
		Name:     name,
		Request:  request,
		Response: response,
	}, nil
}

func (opts *ParseOptions) ParseAction(
	pkg, name string,
	src []byte,
) (rosmsg.Action, error) {
	sections := splitSections(src)
	if len(sections) != 3 {
		return rosmsg.Action{}, errSectionCount(2, len(sections)-1)
	}
	goal, err := opts.parseMessageBody(
		pkg, name+rosmsg.ActionGoalSuffix, sections[0])
	if err != nil {
		return rosmsg.Action{}, err
	}
	result, err := opts.parseMessageBody(
		pkg, name+rosmsg.ActionResultSuffix, sections[1])
	if err != nil {
		return rosmsg.Action{}, err
	}
	feedback, err := opts.parseMessageBody(
		pkg, name+rosmsg.ActionFeedbackSuffix, sections[2])
	if err != nil {
		return rosmsg.Action{}, err
	}
	return rosmsg.Action{
		Package:  pkg,
		Name:     name,
		Goal:     goal,
		Result:   result,
		Feedback: feedback,
	}, nil
}

// parseMessageBody parses a flat list of declaration lines, preserving the
// source order of members and constants.
func (opts *ParseOptions) parseMessageBody(
	pkg, name string,
	lines []string,
) (rosmsg.Message, error) {
	message := rosmsg.Message{
		Package: pkg,
		Name:    name,
	}
	for _, line := range lines {
		line = strings.TrimSpace(stripComment(line))
		if line == "" {
			continue
		}
		decl, err := parseDeclaration(line, opts.defaultNamespace)
		if err != nil {
			return rosmsg.Message{}, err
		}
		if decl.member != nil {
			message.Members = append(message.Members, *decl.member)
		} else {
			message.Constants = append(message.Constants, *decl.constant)
		}
	}
	return message, nil
}

// splitSections normalizes line endings, splits the body into lines, and
// groups them into sections at lines consisting solely of "---". The body
// always yields at least one (possibly empty) section.
func splitSections(src []byte) [][]string {
	text := strings.ReplaceAll(string(src), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")

	sections := [][]string{{}}
	if text == "" {
		return sections
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == sectionSeparator {
			sections = append(sections, []string{})
			continue
		}
		last := len(sections) - 1
		sections[last] = append(sections[last], line)
	}
	return sections
}

// stripComment removes a '#' comment, leaving '#' inside quoted string
// literals intact.
func stripComment(line string) string {
	var quote byte
	for ii := 0; ii < len(line); ii++ {
		c := line[ii]
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
		case '#':
			return line[:ii]
		}
	}
	return line
}
