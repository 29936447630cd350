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

func fibonacciAction() rosmsg.Action {
	return rosmsg.Action{
		Package: "example_msgs",
		Name:    "Fibonacci",
		Goal: rosmsg.Message{
			Package: "example_msgs",
			Name:    "Fibonacci_Goal",
			Members: []rosmsg.Member{
				{Name: "order", Type: rosmsg.Int32},
			},
		},
		Result: rosmsg.Message{
			Package: "example_msgs",
			Name:    "Fibonacci_Result",
			Members: []rosmsg.Member{
				{Name: "sequence", Type: rosmsg.Sequence{ValueType: rosmsg.Int32}},
			},
		},
		Feedback: rosmsg.Message{
			Package: "example_msgs",
			Name:    "Fibonacci_Feedback",
			Members: []rosmsg.Member{
				{Name: "partial_sequence", Type: rosmsg.Sequence{ValueType: rosmsg.Int32}},
			},
		},
	}
}

func TestActionSendGoalService(t *testing.T) {
	t.Parallel()

	action := fibonacciAction()
	srv := action.SendGoalService()

	testutil.ExpectEq(t, "example_msgs", srv.Package)
	testutil.ExpectEq(t, "Fibonacci_SendGoal", srv.Name)
	testutil.ExpectEq(t, "Fibonacci_SendGoal_Request", srv.Request.Name)
	testutil.ExpectEq(t, "Fibonacci_SendGoal_Response", srv.Response.Name)

	testutil.ExpectDeepEq(t, []rosmsg.Member{
		{
			Name: "goal_id",
			Type: rosmsg.NamespacedType{
				Package:   "unique_identifier_msgs",
				Namespace: "msg",
				Name:      "UUID",
			},
		},
		{
			Name: "goal",
			Type: rosmsg.NamespacedType{
				Package:   "example_msgs",
				Namespace: "action",
				Name:      "Fibonacci_Goal",
			},
		},
	}, srv.Request.Members)

	testutil.ExpectDeepEq(t, []rosmsg.Member{
		{Name: "accepted", Type: rosmsg.Bool},
		{
			Name: "stamp",
			Type: rosmsg.NamespacedType{
				Package:   "builtin_interfaces",
				Namespace: "msg",
				Name:      "Time",
			},
		},
	}, srv.Response.Members)
}

func TestActionGetResultService(t *testing.T) {
	t.Parallel()

	action := fibonacciAction()
	srv := action.GetResultService()

	testutil.ExpectEq(t, "Fibonacci_GetResult", srv.Name)
	testutil.ExpectEq(t, "Fibonacci_GetResult_Request", srv.Request.Name)
	testutil.ExpectEq(t, "Fibonacci_GetResult_Response", srv.Response.Name)

	testutil.ExpectDeepEq(t, []rosmsg.Member{
		{
			Name: "goal_id",
			Type: rosmsg.NamespacedType{
				Package:   "unique_identifier_msgs",
				Namespace: "msg",
				Name:      "UUID",
			},
		},
	}, srv.Request.Members)

	testutil.ExpectDeepEq(t, []rosmsg.Member{
		{Name: "status", Type: rosmsg.Int8},
		{
			Name: "result",
			Type: rosmsg.NamespacedType{
				Package:   "example_msgs",
				Namespace: "action",
				Name:      "Fibonacci_Result",
			},
		},
	}, srv.Response.Members)
}

func TestActionFeedbackMessage(t *testing.T) {
	t.Parallel()

	action := fibonacciAction()
	msg := action.FeedbackMessage()

	testutil.ExpectEq(t, "example_msgs", msg.Package)
	testutil.ExpectEq(t, "Fibonacci_FeedbackMessage", msg.Name)

	testutil.ExpectDeepEq(t, []rosmsg.Member{
		{
			Name: "goal_id",
			Type: rosmsg.NamespacedType{
				Package:   "unique_identifier_msgs",
				Namespace: "msg",
				Name:      "UUID",
			},
		},
		{
			Name: "feedback",
			Type: rosmsg.NamespacedType{
				Package:   "example_msgs",
				Namespace: "action",
				Name:      "Fibonacci_Feedback",
			},
		},
	}, msg.Members)
}

func TestActionDerivationIsStable(t *testing.T) {
	t.Parallel()

	action := fibonacciAction()
	testutil.ExpectDeepEq(t, action.SendGoalService(), action.SendGoalService())
	testutil.ExpectDeepEq(t, action.GetResultService(), action.GetResultService())
	testutil.ExpectDeepEq(t, action.FeedbackMessage(), action.FeedbackMessage())
}
