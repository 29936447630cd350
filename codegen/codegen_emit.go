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

package codegen

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	"go.rosmsg.dev/rosmsg"
)

var basicGoTypes = map[rosmsg.BasicType]string{
	rosmsg.Bool:    "bool",
	rosmsg.Byte:    "byte",
	rosmsg.Char:    "byte",
	rosmsg.Float32: "float32",
	rosmsg.Float64: "float64",
	rosmsg.Int8:    "int8",
	rosmsg.Uint8:   "uint8",
	rosmsg.Int16:   "int16",
	rosmsg.Uint16:  "uint16",
	rosmsg.Int32:   "int32",
	rosmsg.Uint32:  "uint32",
	rosmsg.Int64:   "int64",
	rosmsg.Uint64:  "uint64",
}

// fileGen accumulates the declarations of one output file, tracking the
// imports its type references require.
type fileGen struct {
	opts      *GenerateOptions
	pkg       string
	namespace string
	imports   map[string]string
	body      bytes.Buffer
}

func newFileGen(opts *GenerateOptions, pkg, namespace string) *fileGen {
	return &fileGen{
		opts:      opts,
		pkg:       pkg,
		namespace: namespace,
		imports:   map[string]string{},
	}
}

func (g *fileGen) render() []byte {
	var out bytes.Buffer
	out.WriteString("// Code generated by rosmsg. DO NOT EDIT.\n\n")
	fmt.Fprintf(&out, "package %s\n", g.namespace)

	if len(g.imports) > 0 {
		aliases := make([]string, 0, len(g.imports))
		for alias := range g.imports {
			aliases = append(aliases, alias)
		}
		sort.Strings(aliases)
		out.WriteString("\nimport (\n")
		for _, alias := range aliases {
			fmt.Fprintf(&out, "\t%s %q\n", alias, g.imports[alias])
		}
		out.WriteString(")\n")
	}

	out.Write(g.body.Bytes())
	return out.Bytes()
}

// goType maps a member type to its Go rendering, registering imports for
// cross-package references. Named types without a package are passed
// through verbatim; resolving them is the consumer's concern.
func (g *fileGen) goType(memberType rosmsg.MemberType) string {
	switch t := memberType.(type) {
	case rosmsg.BasicType:
		return basicGoTypes[t]
	case rosmsg.StringType:
		return "string"
	case rosmsg.Array:
		return fmt.Sprintf("[%d]%s", t.Size, g.goType(t.ValueType))
	case rosmsg.Sequence:
		return "[]" + g.goType(t.ValueType)
	case rosmsg.BoundedSequence:
		return "[]" + g.goType(t.ValueType)
	case rosmsg.NamedType:
		return t.Name
	case rosmsg.NamespacedType:
		if t.Package == g.pkg && t.Namespace == g.namespace {
			return t.Name
		}
		alias := t.Package + "_" + t.Namespace
		g.imports[alias] = g.opts.importBase + "/" + t.Package + "/" + t.Namespace
		return alias + "." + t.Name
	}
	panic(fmt.Sprintf("codegen: unknown member type %T", memberType))
}

// goValue renders a validated canonical value list as a Go literal of the
// member's type.
func (g *fileGen) goValue(memberType rosmsg.MemberType, values []string) string {
	switch t := memberType.(type) {
	case rosmsg.BasicType:
		return values[0]
	case rosmsg.StringType:
		return strconv.Quote(values[0])
	case rosmsg.Array:
		return g.goElements(fmt.Sprintf("[%d]", t.Size), t.ValueType, values)
	case rosmsg.Sequence:
		return g.goElements("[]", t.ValueType, values)
	case rosmsg.BoundedSequence:
		return g.goElements("[]", t.ValueType, values)
	}
	panic(fmt.Sprintf("codegen: no value syntax for type %T", memberType))
}

func (g *fileGen) goElements(
	prefix string,
	valueType rosmsg.NestableType,
	values []string,
) string {
	var out bytes.Buffer
	out.WriteString(prefix)
	out.WriteString(g.goType(valueType))
	out.WriteByte('{')
	_, isString := valueType.(rosmsg.StringType)
	for ii, value := range values {
		if ii > 0 {
			out.WriteString(", ")
		}
		if isString {
			out.WriteString(strconv.Quote(value))
		} else {
			out.WriteString(value)
		}
	}
	out.WriteByte('}')
	return out.String()
}

func (g *fileGen) emitMessage(message rosmsg.Message) {
	g.emitConstants(message)
	g.emitStruct(message)
	g.emitConstructor(message)
}

func (g *fileGen) emitConstants(message rosmsg.Message) {
	for _, constant := range message.Constants {
		name := message.Name + "_" + constant.Name
		if array, ok := constant.Type.(rosmsg.PrimitiveArray); ok {
			value := g.goElements(
				fmt.Sprintf("[%d]", array.Size), array.ValueType, constant.Value)
			fmt.Fprintf(&g.body, "\nvar %s = %s\n", name, value)
			continue
		}
		memberType := constant.Type.(rosmsg.MemberType)
		fmt.Fprintf(&g.body, "\nconst %s %s = %s\n",
			name, g.goType(memberType), g.goValue(memberType, constant.Value))
	}
}

func (g *fileGen) emitStruct(message rosmsg.Message) {
	members := message.Members
	if len(members) == 0 {
		members = []rosmsg.Member{rosmsg.EmptyStructMember()}
	}

	fmt.Fprintf(&g.body, "\ntype %s struct {\n", message.Name)
	for _, member := range members {
		fmt.Fprintf(&g.body, "\t%s %s `rosmsg:%q`\n",
			snakeToPascal(member.Name), g.goType(member.Type), member.Type.String())
	}
	g.body.WriteString("}\n")
}

func (g *fileGen) emitConstructor(message rosmsg.Message) {
	fmt.Fprintf(&g.body, "\nfunc New%s() *%s {\n", message.Name, message.Name)
	fmt.Fprintf(&g.body, "\tself := %s{}\n", message.Name)
	for _, member := range message.Members {
		if member.Default == nil {
			continue
		}
		fmt.Fprintf(&g.body, "\tself.%s = %s\n",
			snakeToPascal(member.Name), g.goValue(member.Type, member.Default))
	}
	g.body.WriteString("\treturn &self\n}\n")
}

func (g *fileGen) emitService(service rosmsg.Service) {
	g.emitMessage(service.Request)
	g.emitMessage(service.Response)

	fmt.Fprintf(&g.body, "\ntype %s struct {\n", service.Name)
	fmt.Fprintf(&g.body, "\tRequest %s\n", service.Request.Name)
	fmt.Fprintf(&g.body, "\tResponse %s\n", service.Response.Name)
	g.body.WriteString("}\n")
}

func (g *fileGen) emitAction(action rosmsg.Action) {
	g.emitMessage(action.Goal)
	g.emitMessage(action.Result)
	g.emitMessage(action.Feedback)

	g.emitService(action.SendGoalService())
	g.emitService(action.GetResultService())
	g.emitMessage(action.FeedbackMessage())

	fmt.Fprintf(&g.body, "\ntype %s struct {\n", action.Name)
	fmt.Fprintf(&g.body, "\tGoal %s\n", action.Goal.Name)
	fmt.Fprintf(&g.body, "\tResult %s\n", action.Result.Name)
	fmt.Fprintf(&g.body, "\tFeedback %s\n", action.Feedback.Name)
	g.body.WriteString("}\n")
}
