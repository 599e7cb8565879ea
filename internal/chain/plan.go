// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package chain

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/matt-FFFFFF/iffy/internal/directive"
	"github.com/matt-FFFFFF/iffy/internal/executor"
)

// Plan is what a script would do, built without launching anything.
type Plan struct {
	ScriptDir string     `yaml:"scriptDir"`
	Lines     []PlanLine `yaml:"lines"`
}

// PlanLine is the plan for one non-blank line.
type PlanLine struct {
	Number int       `yaml:"line"`
	Text   string    `yaml:"text"`
	First  *PlanStep `yaml:"first,omitempty"`
	Second *PlanStep `yaml:"second,omitempty"`
	// Skipped is set when the line has no first directive and nothing on it runs.
	Skipped bool `yaml:"skipped,omitempty"`
}

// PlanStep is a directive together with the executable it resolves to.
type PlanStep struct {
	Command   string `yaml:"command"`
	Path      string `yaml:"path"`
	Parameter string `yaml:"parameter"`
}

// BuildPlan parses src and resolves every directive against scriptDir.
func BuildPlan(ctx context.Context, scriptDir string, src io.Reader) (*Plan, error) {
	plan := &Plan{
		ScriptDir: scriptDir,
		Lines:     []PlanLine{},
	}

	err := forEachLine(ctx, src, func(n int, text string) error {
		trimmed := strings.TrimRight(text, "\r\n")
		if trimmed == "" {
			return nil
		}

		line := directive.ParseLine(text)
		pl := PlanLine{
			Number: n,
			Text:   trimmed,
		}

		if line.First == nil {
			pl.Skipped = true
			plan.Lines = append(plan.Lines, pl)

			return nil
		}

		pl.First = newPlanStep(scriptDir, line.First)
		if line.Second != nil {
			pl.Second = newPlanStep(scriptDir, line.Second)
		}

		plan.Lines = append(plan.Lines, pl)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return plan, nil
}

func newPlanStep(scriptDir string, d *directive.Directive) *PlanStep {
	return &PlanStep{
		Command:   d.Command,
		Path:      executor.Resolve(scriptDir, d.Command).Path,
		Parameter: d.Parameter,
	}
}

// WriteText writes a human readable rendering of the plan.
func (p *Plan) WriteText(w io.Writer) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Scripts resolved from %q\n", p.ScriptDir)

	for _, l := range p.Lines {
		fmt.Fprintf(&sb, "line %d: %s\n", l.Number, l.Text)

		if l.Skipped {
			sb.WriteString("  skipped, no command on the first clause\n")
			continue
		}

		fmt.Fprintf(&sb, "  run  %s %q\n", l.First.Path, l.First.Parameter)

		if l.Second != nil {
			fmt.Fprintf(&sb, "  then %s %q if the first command succeeds\n", l.Second.Path, l.Second.Parameter)
		}
	}

	_, err := io.WriteString(w, sb.String())

	return err //nolint:wrapcheck
}
