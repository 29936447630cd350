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

// Package rosmsg defines the type model produced by parsing ROS 2 interface
// definition files (.msg, .srv, .action).
package rosmsg

// Namespace tags distinguishing same-named types across dialects within a
// package.
const (
	NamespaceMsg    = "msg"
	NamespaceSrv    = "srv"
	NamespaceAction = "action"
)

const (
	ServiceRequestSuffix  = "_Request"
	ServiceResponseSuffix = "_Response"

	ActionGoalSuffix     = "_Goal"
	ActionResultSuffix   = "_Result"
	ActionFeedbackSuffix = "_Feedback"
)
