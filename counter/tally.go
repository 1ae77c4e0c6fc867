// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sort"
)

// Outcome - counts for a single operation
type Outcome struct {
	Name   string
	Passed uint64
	Failed uint64
}

// Tally - passed and failed counts for named operations
//
// not safe for concurrent use of Record with a new name
type Tally struct {
	passed map[string]*Counter
	failed map[string]*Counter
}

// NewTally - create an empty tally
func NewTally() *Tally {
	return &Tally{
		passed: make(map[string]*Counter),
		failed: make(map[string]*Counter),
	}
}

// Record - count one run of an operation, failed if err is not nil
func (t *Tally) Record(name string, err error) {
	m := t.passed
	if nil != err {
		m = t.failed
	}
	c, ok := m[name]
	if !ok {
		c = new(Counter)
		m[name] = c
	}
	c.Increment()
}

// Outcomes - the counts for every recorded operation, sorted by name
func (t *Tally) Outcomes() []Outcome {
	names := make(map[string]struct{})
	for name := range t.passed {
		names[name] = struct{}{}
	}
	for name := range t.failed {
		names[name] = struct{}{}
	}

	outcomes := make([]Outcome, 0, len(names))
	for name := range names {
		o := Outcome{Name: name}
		if c, ok := t.passed[name]; ok {
			o.Passed = c.Uint64()
		}
		if c, ok := t.failed[name]; ok {
			o.Failed = c.Uint64()
		}
		outcomes = append(outcomes, o)
	}
	sort.Slice(outcomes, func(i, j int) bool {
		return outcomes[i].Name < outcomes[j].Name
	})
	return outcomes
}
