// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io/ioutil"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
)

const (
	logFileName      = "test.log"
	logSizeOfFiles   = 30000
	logNumberOfFiles = 10
)

var testLevelMap = map[string]string{
	"main":            "debug",
	logger.DefaultTag: "critical",
}

// TestMain - one logger for all the tests in this package
func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "avltree")
	if nil != err {
		panic(err)
	}

	logging := logger.Configuration{
		Directory: dir,
		File:      logFileName,
		Size:      logSizeOfFiles,
		Count:     logNumberOfFiles,
		Console:   false,
		Levels:    testLevelMap,
	}
	if err := logger.Initialise(logging); nil != err {
		panic(err)
	}

	rc := m.Run()

	logger.Finalise()
	os.RemoveAll(dir)
	os.Exit(rc)
}

func newTestSession(t *testing.T, seed ...float64) (*session[int64], *bytes.Buffer) {
	conf := &Configuration{
		Seed:      seed,
		Separator: " ",
	}
	out := &bytes.Buffer{}
	s, err := newSession(conf, parseInteger, out, logger.New("main"))
	require.NoError(t, err, "new session")
	return s, out
}

func runSteps[T interface{ int64 | float64 }](t *testing.T, s *session[T], arguments ...string) {
	steps, err := parseSteps(arguments)
	require.NoError(t, err, "parse steps")
	for _, st := range steps {
		s.execute(st)
	}
}

func TestParseSteps(t *testing.T) {
	steps, err := parseSteps([]string{"insert", "1", "2", "delete", "1", "inorder", "search", "2"})
	require.NoError(t, err)

	expected := []step{
		{name: "insert", values: []string{"1", "2"}},
		{name: "delete", values: []string{"1"}},
		{name: "inorder"},
		{name: "search", values: []string{"2"}},
	}
	assert.Equal(t, expected, steps)
}

func TestParseStepsEmpty(t *testing.T) {
	steps, err := parseSteps(nil)
	require.NoError(t, err)
	assert.Empty(t, steps)
}

func TestParseStepsErrors(t *testing.T) {
	_, err := parseSteps([]string{"insert"})
	assert.True(t, fault.IsErrInvalid(err), "missing value: %v", err)

	_, err = parseSteps([]string{"insert", "delete", "3"})
	assert.True(t, fault.IsErrInvalid(err), "missing value: %v", err)

	_, err = parseSteps([]string{"rotate"})
	assert.True(t, fault.IsErrInvalid(err), "bad command: %v", err)
	assert.Contains(t, err.Error(), "rotate")
}

func TestFromConfiguration(t *testing.T) {
	i, err := fromConfiguration[int64](42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), i)

	_, err = fromConfiguration[int64](4.5)
	assert.True(t, fault.IsErrInvalid(err))

	f, err := fromConfiguration[float64](4.5)
	require.NoError(t, err)
	assert.Equal(t, 4.5, f)
}

func TestSessionSeed(t *testing.T) {
	s, _ := newTestSession(t, 10, 20, 30)

	assert.Equal(t, 3, s.tree.Count())
	assert.Equal(t, int64(20), s.tree.Root().Value())
}

func TestSessionSeedDuplicate(t *testing.T) {
	conf := &Configuration{Seed: []float64{1, 2, 1}}
	_, err := newSession(conf, parseInteger, &bytes.Buffer{}, logger.New("main"))
	assert.Equal(t, fault.ErrDuplicateValue, err)
}

func TestSessionSeedInvalid(t *testing.T) {
	conf := &Configuration{Seed: []float64{1, 2.5}}
	_, err := newSession(conf, parseInteger, &bytes.Buffer{}, logger.New("main"))
	assert.True(t, fault.IsErrInvalid(err), "fractional seed: %v", err)
	assert.Contains(t, err.Error(), "2.5")

	conf = &Configuration{Seed: []float64{math.NaN()}}
	_, err = newSession(conf, parseInteger, &bytes.Buffer{}, logger.New("main"))
	assert.True(t, fault.IsErrInvalid(err), "integer NaN seed: %v", err)

	conf = &Configuration{Seed: []float64{1, math.NaN()}}
	_, err = newSession(conf, parseFloat, &bytes.Buffer{}, logger.New("main"))
	assert.True(t, fault.IsErrInvalid(err), "float NaN seed: %v", err)

	conf = &Configuration{Seed: []float64{math.NaN(), 1}}
	_, err = newSession(conf, parseFloat, &bytes.Buffer{}, logger.New("main"))
	assert.True(t, fault.IsErrInvalid(err), "float NaN first seed: %v", err)
}

func TestSessionFinish(t *testing.T) {
	s, out := newTestSession(t, 2, 1, 3)

	runSteps(t, s, "insert", "4")
	assert.NotPanics(t, func() { s.finish(true) })
	assert.Equal(t,
		"insert 4: ok\n"+
			"insert     passed: 1  failed: 0\n",
		out.String())
}

func TestSessionEmptySeed(t *testing.T) {
	s, out := newTestSession(t)

	assert.True(t, s.tree.IsEmpty())
	runSteps(t, s, "min", "insert", "5", "min", "count")
	assert.Equal(t,
		"min: not found: value is not in the tree\n"+
			"insert 5: ok\n"+
			"5\n"+
			"1\n",
		out.String())
}

func TestSessionCommands(t *testing.T) {
	s, out := newTestSession(t, 30)

	runSteps(t, s,
		"insert", "10", "20", "10", "x",
		"delete", "99",
		"search", "20", "99",
		"preorder", "inorder", "postorder",
		"min", "max", "count", "check",
	)

	expected := "insert 10: ok\n" +
		"insert 20: ok\n" +
		"insert 10: exists: value is already in the tree\n" +
		"insert x: invalid: value has no ordering: \"x\"\n" +
		"delete 99: not found: value is not in the tree\n" +
		"search 20: true\n" +
		"search 99: false\n" +
		"20 10 30\n" +
		"10 20 30\n" +
		"10 30 20\n" +
		"10\n" +
		"30\n" +
		"3\n" +
		"check: ok  count: 3  height: 1\n"
	assert.Equal(t, expected, out.String())

	outcomes := s.tally.Outcomes()
	require.Len(t, outcomes, 10)
	assert.Equal(t, "insert", outcomes[4].Name)
	assert.Equal(t, uint64(2), outcomes[4].Passed)
	assert.Equal(t, uint64(2), outcomes[4].Failed)
}

func TestSessionFloat(t *testing.T) {
	conf := &Configuration{Seed: []float64{0.5}, Separator: ","}
	out := &bytes.Buffer{}
	s, err := newSession(conf, parseFloat, out, logger.New("main"))
	require.NoError(t, err)

	runSteps(t, s, "insert", "-1.5", "2.25", "NaN", "inorder")
	assert.Equal(t,
		"insert -1.5: ok\n"+
			"insert 2.25: ok\n"+
			"insert NaN: invalid: value has no ordering\n"+
			"-1.5,0.5,2.25\n",
		out.String())
	assert.False(t, s.tree.Search(math.NaN()))
}

func TestSessionPrintAndReport(t *testing.T) {
	s, out := newTestSession(t, 2, 1, 3)

	runSteps(t, s, "print")
	assert.Equal(t,
		"       /------+ 3 h:0 +0\n"+
			"|------+ 2 h:1 +0\n"+
			"       \\------+ 1 h:0 +0\n",
		out.String())

	out.Reset()
	runSteps(t, s, "delete", "2", "4")
	s.report()
	assert.Equal(t,
		"delete 2: ok\n"+
			"delete 4: not found: value is not in the tree\n"+
			"delete     passed: 1  failed: 1\n"+
			"print      passed: 1  failed: 0\n",
		out.String())
}

func TestUsage(t *testing.T) {
	out := &bytes.Buffer{}
	usage(out, "avltree")

	for name := range commands {
		assert.Contains(t, out.String(), "  "+name+" ")
	}
}

const testConfiguration = `
return {
    data_directory = ".",
    seed = { 20, 10, 30 },
    separator = ",",
    logging = {
        directory = "log",
        file = "avltree.log",
        size = 4096,
        count = 2,
        levels = {
            main = "debug",
        },
    },
}
`

func writeConfiguration(t *testing.T, content string) (string, string) {
	dir, err := ioutil.TempDir("", "avltree-conf")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	fileName := filepath.Join(dir, "avltree.conf")
	require.NoError(t, ioutil.WriteFile(fileName, []byte(content), 0600))
	return dir, fileName
}

func TestGetConfiguration(t *testing.T) {
	dir, fileName := writeConfiguration(t, testConfiguration)

	conf, err := getConfiguration(fileName)
	require.NoError(t, err)

	assert.Equal(t, filepath.Clean(dir), conf.DataDirectory)
	assert.Equal(t, []float64{20, 10, 30}, conf.Seed)
	assert.Equal(t, ",", conf.Separator)
	assert.False(t, conf.Float)
	assert.Equal(t, filepath.Join(dir, "log"), conf.Logging.Directory)
	assert.Equal(t, "avltree.log", conf.Logging.File)
	assert.EqualValues(t, 4096, conf.Logging.Size)
	assert.Equal(t, "debug", conf.Logging.Levels["main"])

	info, err := os.Stat(conf.Logging.Directory)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestGetConfigurationErrors(t *testing.T) {
	_, err := getConfiguration("/no/such/avltree.conf")
	assert.Equal(t, fault.ErrMissingConfigFile, err)

	_, fileName := writeConfiguration(t, `return { seed = { 1 } }`)
	_, err = getConfiguration(fileName)
	assert.Error(t, err, "missing data directory")

	_, fileName = writeConfiguration(t, `return { data_directory = ".", logging = { file = "sub/x.log" } }`)
	_, err = getConfiguration(fileName)
	assert.Error(t, err, "log file with path")
}
