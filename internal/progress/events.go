// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"time"
)

// Event is emitted before and after every launch and at every gating decision.
type Event struct {
	Type      EventType
	Path      string // Resolved executable path
	Parameter string // The single argument passed to the executable
	ExitCode  int
	Signal    string // Name of the terminating signal, for EventAbnormalExit
	Err       error  // For EventLaunchFailed and EventControlFailed
	Timestamp time.Time
}

// EventType represents the type of progress event.
type EventType int

const (
	// EventStarted is sent immediately before a child process is launched.
	EventStarted EventType = iota
	// EventExited is sent when the child terminated normally, whatever its exit code.
	EventExited
	// EventAbnormalExit is sent when the child was terminated by a signal.
	EventAbnormalExit
	// EventLaunchFailed is sent when the executable could not be executed.
	// An EventExited with the conventional exit code follows it.
	EventLaunchFailed
	// EventControlFailed is sent when the process could not be created or waited on.
	EventControlFailed
	// EventSecondRunning is sent when the first directive succeeded and the second will run.
	EventSecondRunning
	// EventSecondSkipped is sent when the first directive failed and the second is skipped.
	EventSecondSkipped
)

// String implements the Stringer interface for EventType.
func (et EventType) String() string {
	switch et {
	case EventStarted:
		return "started"
	case EventExited:
		return "exited"
	case EventAbnormalExit:
		return "abnormal-exit"
	case EventLaunchFailed:
		return "launch-failed"
	case EventControlFailed:
		return "control-failed"
	case EventSecondRunning:
		return "second-running"
	case EventSecondSkipped:
		return "second-skipped"
	default:
		return "unknown"
	}
}

// Reporter receives events synchronously, in the order they happen.
type Reporter interface {
	Report(event Event)
}

// NullReporter drops every event.
type NullReporter struct{}

// Report implements Reporter.
func (NullReporter) Report(Event) {}

// RecordingReporter keeps every event it receives. It is not safe for concurrent use.
type RecordingReporter struct {
	Events []Event
}

// Report implements Reporter.
func (r *RecordingReporter) Report(event Event) {
	r.Events = append(r.Events, event)
}

// Types returns the type of each recorded event, in order.
func (r *RecordingReporter) Types() []EventType {
	types := make([]EventType, len(r.Events))
	for i, e := range r.Events {
		types[i] = e.Type
	}

	return types
}
