// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package chain

import (
	"github.com/matt-FFFFFF/iffy/internal/executor"
)

// ShouldRunAction is the gating decision for the second directive of a line.
type ShouldRunAction int

const (
	// ShouldRunActionRun means run the second directive.
	ShouldRunActionRun ShouldRunAction = iota
	// ShouldRunActionSkip means the first directive did not succeed.
	ShouldRunActionSkip
	// ShouldRunActionAbsent means there is no first directive to gate on.
	ShouldRunActionAbsent
)

// String implements the Stringer interface for ShouldRunAction.
func (a ShouldRunAction) String() string {
	switch a {
	case ShouldRunActionRun:
		return "run"
	case ShouldRunActionSkip:
		return "skip"
	case ShouldRunActionAbsent:
		return "absent"
	default:
		return "unknown"
	}
}

// ShouldRunSecond decides whether the second directive runs given the result of the first.
// first is nil when the line had no first directive.
func ShouldRunSecond(first *executor.Result) ShouldRunAction {
	switch {
	case first == nil:
		return ShouldRunActionAbsent
	case first.Success():
		return ShouldRunActionRun
	default:
		return ShouldRunActionSkip
	}
}
