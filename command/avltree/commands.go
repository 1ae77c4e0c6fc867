// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// a command either takes one or more values or none at all
type commandInfo struct {
	takesValues bool
	help        string
}

var commands = map[string]commandInfo{
	"insert":    {true, "add values to the tree"},
	"delete":    {true, "remove values from the tree"},
	"search":    {true, "report whether values are in the tree"},
	"preorder":  {false, "values, each node before its sub-trees"},
	"inorder":   {false, "values in ascending order"},
	"postorder": {false, "values, each node after its sub-trees"},
	"print":     {false, "diagram of the tree"},
	"check":     {false, "verify order, heights and balance"},
	"count":     {false, "number of values"},
	"min":       {false, "lowest value"},
	"max":       {false, "highest value"},
}

// display the command line help
func usage(w io.Writer, program string) {
	fmt.Fprintf(w, "usage: %s [--help] [--verbose] [--version] [--float] --config-file=FILE [command [values...]]...\n\n", program)
	fmt.Fprintf(w, "supported commands:\n\n")
	for _, name := range []string{
		"insert", "delete", "search",
		"preorder", "inorder", "postorder",
		"print", "check", "count", "min", "max",
	} {
		c := commands[name]
		args := ""
		if c.takesValues {
			args = "V..."
		}
		fmt.Fprintf(w, "  %-10s %-6s - %s\n", name, args, c.help)
	}
}

// one command and its values
type step struct {
	name   string
	values []string
}

// split the command line into commands each followed by its values
func parseSteps(arguments []string) ([]step, error) {
	steps := []step{}
	for i := 0; i < len(arguments); {
		name := arguments[i]
		c, ok := commands[name]
		if !ok {
			return nil, fault.InvalidError(fmt.Sprintf("%s: %q", fault.ErrInvalidCommand, name))
		}
		i += 1

		s := step{name: name}
		if c.takesValues {
			for i < len(arguments) {
				if _, ok := commands[arguments[i]]; ok {
					break
				}
				s.values = append(s.values, arguments[i])
				i += 1
			}
			if 0 == len(s.values) {
				return nil, fault.InvalidError(fmt.Sprintf("%s: %q", fault.ErrMissingValue, name))
			}
		}
		steps = append(steps, s)
	}
	return steps, nil
}

func parseInteger(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// convert a configuration number to the element type, an integer
// tree only accepts integral values
func fromConfiguration[T avl.Element](v float64) (T, error) {
	value := T(v)
	if float64(value) != v {
		return value, fault.InvalidError(fmt.Sprintf("%s: %v", fault.ErrInvalidValue, v))
	}
	return value, nil
}

// session - a tree and the state needed to run commands against it
type session[T avl.Element] struct {
	tree      *avl.Tree[T]
	parse     func(string) (T, error)
	separator string
	out       io.Writer
	log       *logger.L
	tally     *counter.Tally
}

// build the initial tree from the configured seed values
func newSession[T avl.Element](conf *Configuration, parse func(string) (T, error), out io.Writer, log *logger.L) (*session[T], error) {
	s := &session[T]{
		tree:      &avl.Tree[T]{},
		parse:     parse,
		separator: conf.Separator,
		out:       out,
		log:       log,
		tally:     counter.NewTally(),
	}

	for i, v := range conf.Seed {
		value, err := fromConfiguration[T](v)
		if nil != err {
			return nil, err
		}
		if 0 == i {
			s.tree, err = avl.New(value)
		} else {
			err = s.tree.Insert(value)
		}
		if nil != err {
			log.Errorf("seed value: %v  error: %s", value, err)
			return nil, err
		}
	}
	log.Infof("seeded tree with: %d values", s.tree.Count())
	return s, nil
}

// run all the command line steps
func run[T avl.Element](conf *Configuration, arguments []string, verbose bool, parse func(string) (T, error)) error {
	log := logger.New("main")

	steps, err := parseSteps(arguments)
	if nil != err {
		return err
	}

	s, err := newSession(conf, parse, os.Stdout, log)
	if nil != err {
		return err
	}

	for _, st := range steps {
		s.execute(st)
	}

	s.finish(verbose)
	return nil
}

// report the counts if requested; a tree failing its consistency
// check after the commands is an internal fault
func (s *session[T]) finish(verbose bool) {
	if verbose {
		s.report()
	}
	fault.PanicIfError("tree consistency check", s.tree.Check())
	s.log.Infof("final count: %d  height: %d", s.tree.Count(), s.tree.Height())
}

// execute one step, failures are reported and counted but do not stop
// later steps
func (s *session[T]) execute(st step) {
	if 0 == len(st.values) {
		err := s.show(st.name)
		s.record(st.name, "", err)
		return
	}

	for _, text := range st.values {
		value, err := s.parse(text)
		if nil != err {
			s.record(st.name, text, fault.InvalidError(fmt.Sprintf("%s: %q", fault.ErrInvalidValue, text)))
			continue
		}

		switch st.name {
		case "insert":
			err = s.tree.Insert(value)
			s.record(st.name, text, err)
		case "delete":
			err = s.tree.Delete(value)
			s.record(st.name, text, err)
		case "search":
			found := s.tree.Search(value)
			fmt.Fprintf(s.out, "search %v: %v\n", value, found)
			s.log.Debugf("search: %v  found: %v", value, found)
			s.tally.Record(st.name, nil)
		}
	}
}

// run a command that takes no values
func (s *session[T]) show(name string) error {
	switch name {
	case "preorder":
		fmt.Fprintf(s.out, "%s\n", avl.Join(s.tree.PreOrder(), s.separator))
	case "inorder":
		fmt.Fprintf(s.out, "%s\n", avl.Join(s.tree.InOrder(), s.separator))
	case "postorder":
		fmt.Fprintf(s.out, "%s\n", avl.Join(s.tree.PostOrder(), s.separator))
	case "print":
		depth := s.tree.Print(s.out)
		s.log.Debugf("print depth: %d", depth)
	case "check":
		if err := s.tree.Check(); nil != err {
			return err
		}
		fmt.Fprintf(s.out, "check: ok  count: %d  height: %d\n", s.tree.Count(), s.tree.Height())
	case "count":
		fmt.Fprintf(s.out, "%d\n", s.tree.Count())
	case "min", "max":
		value, ok := s.tree.First()
		if "max" == name {
			value, ok = s.tree.Last()
		}
		if !ok {
			return fault.ErrValueNotFound
		}
		fmt.Fprintf(s.out, "%v\n", value)
	}
	return nil
}

// report the outcome of a single operation and count it
func (s *session[T]) record(name string, text string, err error) {
	s.tally.Record(name, err)

	label := name
	if "" != text {
		label = name + " " + text
	}

	if nil != err {
		fmt.Fprintf(s.out, "%s: %s: %s\n", label, fault.Class(err), err)
		s.log.Warnf("%s  error: %s", label, err)
		return
	}
	if "" != text {
		fmt.Fprintf(s.out, "%s: ok\n", label)
	}
	s.log.Debugf("%s: ok", label)
}

// display the per command counts
func (s *session[T]) report() {
	for _, o := range s.tally.Outcomes() {
		fmt.Fprintf(s.out, "%-10s passed: %d  failed: %d\n", o.Name, o.Passed, o.Failed)
		s.log.Infof("%s  passed: %d  failed: %d", o.Name, o.Passed, o.Failed)
	}
}
