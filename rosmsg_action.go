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

// Action is a parsed action definition. Goal, Result and Feedback are named
// "{action}_Goal", "{action}_Result" and "{action}_Feedback".
//
// Three further artifacts are derived from an action rather than parsed:
// the SendGoal and GetResult services and the FeedbackMessage message. The
// derivations are total; they cannot fail.
type Action struct {
	Package  string
	Name     string
	Goal     Message
	Result   Message
	Feedback Message
}

// SendGoalService derives the "{action}_SendGoal" service. The request
// carries the goal id and the goal payload; the response reports acceptance
// and a timestamp.
func (a *Action) SendGoalService() Service {
	common := a.Name + "_SendGoal"

	request := Message{
		Package: a.Package,
		Name:    common + ServiceRequestSuffix,
		Members: []Member{
			goalIDMember(),
			{
				Name: "goal",
				Type: NamespacedType{
					Package:   a.Package,
					Namespace: NamespaceAction,
					Name:      a.Name + ActionGoalSuffix,
				},
			},
		},
	}
	response := Message{
		Package: a.Package,
		Name:    common + ServiceResponseSuffix,
		Members: []Member{
			{
				Name: "accepted",
				Type: Bool,
			},
			{
				Name: "stamp",
				Type: NamespacedType{
					Package:   "builtin_interfaces",
					Namespace: NamespaceMsg,
					Name:      "Time",
				},
			},
		},
	}

	return Service{
		Package:  a.Package,
		Name:     common,
		Request:  request,
		Response: response,
	}
}

// GetResultService derives the "{action}_GetResult" service. The response
// carries the terminal status code and the result payload.
func (a *Action) GetResultService() Service {
	common := a.Name + "_GetResult"

	request := Message{
		Package: a.Package,
		Name:    common + ServiceRequestSuffix,
		Members: []Member{goalIDMember()},
	}
	response := Message{
		Package: a.Package,
		Name:    common + ServiceResponseSuffix,
		Members: []Member{
			{
				Name: "status",
				Type: Int8,
			},
			{
				Name: "result",
				Type: NamespacedType{
					Package:   a.Package,
					Namespace: NamespaceAction,
					Name:      a.Name + ActionResultSuffix,
				},
			},
		},
	}

	return Service{
		Package:  a.Package,
		Name:     common,
		Request:  request,
		Response: response,
	}
}

// FeedbackMessage derives the "{action}_FeedbackMessage" message that pairs
// a feedback payload with the goal id it belongs to.
func (a *Action) FeedbackMessage() Message {
	return Message{
		Package: a.Package,
		Name:    a.Name + "_FeedbackMessage",
		Members: []Member{
			goalIDMember(),
			{
				Name: "feedback",
				Type: NamespacedType{
					Package:   a.Package,
					Namespace: NamespaceAction,
					Name:      a.Name + ActionFeedbackSuffix,
				},
			},
		},
	}
}

func goalIDMember() Member {
	return Member{
		Name: "goal_id",
		Type: NamespacedType{
			Package:   "unique_identifier_msgs",
			Namespace: NamespaceMsg,
			Name:      "UUID",
		},
	}
}
