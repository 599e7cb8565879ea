// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextReporter(t *testing.T) {
	tests := []struct {
		name    string
		event   Event
		wantOut string
		wantErr string
	}{
		{
			name:    "started",
			event:   Event{Type: EventStarted, Path: "./scripts/build.sh", Parameter: "myapp"},
			wantOut: "Executing command: ./scripts/build.sh with parameter: myapp\n",
		},
		{
			name:    "exited",
			event:   Event{Type: EventExited, ExitCode: 3},
			wantOut: "Command exited with status: 3\n",
		},
		{
			name:    "abnormal exit",
			event:   Event{Type: EventAbnormalExit, Signal: "killed"},
			wantOut: "Command did not exit normally.\n",
		},
		{
			name:    "launch failed",
			event:   Event{Type: EventLaunchFailed, Path: "./scripts/nope.sh", Err: errors.New("no such file or directory")},
			wantErr: "Could not execute ./scripts/nope.sh: no such file or directory\n",
		},
		{
			name:    "control failed",
			event:   Event{Type: EventControlFailed, Err: errors.New("resource temporarily unavailable")},
			wantErr: "Command failed to run: resource temporarily unavailable\n",
		},
		{
			name:    "second running",
			event:   Event{Type: EventSecondRunning},
			wantOut: "First command succeeded, executing second command.\n",
		},
		{
			name:    "second skipped",
			event:   Event{Type: EventSecondSkipped},
			wantOut: "First command failed, skipping second command.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer

			NewTextReporter(&out, &errOut).Report(tt.event)

			assert.Equal(t, tt.wantOut, out.String())
			assert.Equal(t, tt.wantErr, errOut.String())
		})
	}
}

func TestEventType_String(t *testing.T) {
	assert.Equal(t, "started", EventStarted.String())
	assert.Equal(t, "second-skipped", EventSecondSkipped.String())
	assert.Equal(t, "unknown", EventType(99).String())
}

func TestRecordingReporter(t *testing.T) {
	r := &RecordingReporter{}
	NullReporter{}.Report(Event{Type: EventStarted})

	r.Report(Event{Type: EventStarted})
	r.Report(Event{Type: EventExited})

	assert.Equal(t, []EventType{EventStarted, EventExited}, r.Types())
}
