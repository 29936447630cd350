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

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"go.rosmsg.dev/rosmsg"
	"go.rosmsg.dev/rosmsg/syntax"
)

type cmdParse struct {
	pkgName string
}

func (*cmdParse) help() *commandHelp {
	return &commandHelp{
		usage:   "parse FILE",
		summary: "Parse one definition file and print its model as JSON",
	}
}

func (cmd *cmdParse) flags(flags *pflag.FlagSet) {
	flags.StringVarP(&cmd.pkgName, "package", "p", "", "Package name of the file")
}

type memberJSON struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Default []string `json:"default,omitempty"`
}

type constantJSON struct {
	Name  string   `json:"name"`
	Type  string   `json:"type"`
	Value []string `json:"value"`
}

type messageJSON struct {
	Name      string         `json:"name"`
	Members   []memberJSON   `json:"members"`
	Constants []constantJSON `json:"constants,omitempty"`
}

type serviceJSON struct {
	Name     string      `json:"name"`
	Request  messageJSON `json:"request"`
	Response messageJSON `json:"response"`
}

type actionJSON struct {
	Name            string      `json:"name"`
	Goal            messageJSON `json:"goal"`
	Result          messageJSON `json:"result"`
	Feedback        messageJSON `json:"feedback"`
	SendGoal        serviceJSON `json:"send_goal"`
	GetResult       serviceJSON `json:"get_result"`
	FeedbackMessage messageJSON `json:"feedback_message"`
}

func (cmd *cmdParse) run(ctx context.Context, argv []string) int {
	if len(argv) != 1 {
		fmt.Fprintln(os.Stderr, "Expected exactly one FILE argument")
		return 1
	}
	path := argv[0]
	pkgName := cmd.pkgName
	if pkgName == "" {
		pkgName = "unknown"
	}

	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)

	var model any
	switch ext {
	case ".msg":
		message, err := syntax.ParseMessage(pkgName, name, src)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			return 1
		}
		model = messageView(message)
	case ".srv":
		service, err := syntax.ParseService(pkgName, name, src)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			return 1
		}
		model = serviceView(service)
	case ".action":
		action, err := syntax.ParseAction(pkgName, name, src)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			return 1
		}
		model = actionJSON{
			Name:            action.Name,
			Goal:            messageView(action.Goal),
			Result:          messageView(action.Result),
			Feedback:        messageView(action.Feedback),
			SendGoal:        serviceView(action.SendGoalService()),
			GetResult:       serviceView(action.GetResultService()),
			FeedbackMessage: messageView(action.FeedbackMessage()),
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown dialect extension %q\n", ext)
		return 1
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(model); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func messageView(message rosmsg.Message) messageJSON {
	view := messageJSON{
		Name:    message.Name,
		Members: []memberJSON{},
	}
	for _, member := range message.Members {
		view.Members = append(view.Members, memberJSON{
			Name:    member.Name,
			Type:    member.Type.String(),
			Default: member.Default,
		})
	}
	for _, constant := range message.Constants {
		view.Constants = append(view.Constants, constantJSON{
			Name:  constant.Name,
			Type:  constant.Type.String(),
			Value: constant.Value,
		})
	}
	return view
}

func serviceView(service rosmsg.Service) serviceJSON {
	return serviceJSON{
		Name:     service.Name,
		Request:  messageView(service.Request),
		Response: messageView(service.Response),
	}
}
