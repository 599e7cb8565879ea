// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package chain

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPlan(t *testing.T) {
	script := "build=myapp;test=myapp\n\njusttext\ndeploy=prod\r\n"

	plan, err := BuildPlan(context.Background(), "/opt/tools/", strings.NewReader(script))
	require.NoError(t, err)

	want := &Plan{
		ScriptDir: "/opt/tools/",
		Lines: []PlanLine{
			{
				Number: 1,
				Text:   "build=myapp;test=myapp",
				First:  &PlanStep{Command: "build", Path: "/opt/tools/build.sh", Parameter: "myapp"},
				Second: &PlanStep{Command: "test", Path: "/opt/tools/test.sh", Parameter: "myapp"},
			},
			{
				Number:  3,
				Text:    "justtext",
				Skipped: true,
			},
			{
				Number: 4,
				Text:   "deploy=prod",
				First:  &PlanStep{Command: "deploy", Path: "/opt/tools/deploy.sh", Parameter: "prod"},
			},
		},
	}

	assert.Equal(t, want, plan)
}

func TestBuildPlan_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := BuildPlan(ctx, "./scripts/", strings.NewReader("a=b\n"))
	require.ErrorIs(t, err, ErrCancelled)
}

func TestPlan_WriteText(t *testing.T) {
	plan, err := BuildPlan(context.Background(), "./scripts/", strings.NewReader("build=myapp;test=myapp\njusttext\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, plan.WriteText(&buf))

	assert.Equal(t,
		"Scripts resolved from \"./scripts/\"\n"+
			"line 1: build=myapp;test=myapp\n"+
			"  run  ./scripts/build.sh \"myapp\"\n"+
			"  then ./scripts/test.sh \"myapp\" if the first command succeeds\n"+
			"line 2: justtext\n"+
			"  skipped, no command on the first clause\n",
		buf.String(),
	)
}
