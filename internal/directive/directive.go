// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package directive

import (
	"strings"
)

const (
	// ClauseSeparator separates the two clauses of a line.
	ClauseSeparator = ";"
	// ParamSeparator separates the command name from its parameter within a clause.
	ParamSeparator = "="
	// maxClauses is the number of clauses the grammar supports; any further clauses are ignored.
	maxClauses = 2
	lineEnding = "\r\n"
)

// Directive is a single command name and parameter pair taken from one clause.
type Directive struct {
	Command   string `yaml:"command"`
	Parameter string `yaml:"parameter"`
}

// Line holds the directives parsed from one script line.
// Either directive may be absent independently of the other.
type Line struct {
	First  *Directive
	Second *Directive
}

// Len returns the number of directives present.
func (l Line) Len() int {
	n := 0
	if l.First != nil {
		n++
	}

	if l.Second != nil {
		n++
	}

	return n
}

// Empty reports whether neither clause yielded a directive.
func (l Line) Empty() bool {
	return l.Len() == 0
}

// ParseLine splits line into its clauses and parses each one.
// A clause without '=' or with an empty command name yields no directive.
// ParseLine keeps no state between calls.
func ParseLine(line string) Line {
	clauses := strings.SplitN(line, ClauseSeparator, maxClauses+1)

	var l Line

	l.First = parseClause(clauses[0])

	if len(clauses) > 1 {
		l.Second = parseClause(clauses[1])
	}

	return l
}

// parseClause splits on the first '='. Whitespace in the command name is kept,
// and only trailing line ending characters are removed from the parameter.
func parseClause(clause string) *Directive {
	command, param, ok := strings.Cut(clause, ParamSeparator)
	if !ok || command == "" {
		return nil
	}

	return &Directive{
		Command:   command,
		Parameter: strings.TrimRight(param, lineEnding),
	}
}
