//  Copyright (c) 2026 Couchbase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// 		http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/couchbase/tabledfa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	if args == nil {
		// cobra falls back to os.Args on a nil slice
		args = []string{}
	}
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootNoArgs(t *testing.T) {
	out, _, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, "Please provide at least 1 string to test.\n", out)
}

func TestRootMatches(t *testing.T) {
	expected := `Matching input to: (a|b)*abb
Input String is: abb
Input accepted!
Input String is: ab
Input Failed
Input String is: abc
Input Failed
Input String is: babb
Input accepted!
`
	out, _, err := execute(t, "abb", "ab", "abc", "babb")
	require.NoError(t, err)
	assert.Equal(t, expected, out)

	out, _, err = execute(t, "--parallel", "3", "abb", "ab", "abc", "babb")
	require.NoError(t, err)
	assert.Equal(t, expected, out)
}

func TestRootSubcommandNameAsInput(t *testing.T) {
	out, _, err := execute(t, "--", "table")
	require.NoError(t, err)
	assert.Equal(t, "Matching input to: (a|b)*abb\nInput String is: table\nInput Failed\n", out)
}

func TestRootTrace(t *testing.T) {
	out, _, err := execute(t, "--trace", "abba")
	require.NoError(t, err)
	assert.Contains(t, out, "Input Failed\nStates visited: [0 1 2 3 1]\n")
}

func TestRootLogsRejectionReason(t *testing.T) {
	_, stderr, err := execute(t, "--log-level", "debug", "--log-format", "json", "abc")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"input":"abc"`)
	assert.Contains(t, stderr, "unrecognized symbol")
}

func TestRootBadLogFormat(t *testing.T) {
	_, _, err := execute(t, "--log-format", "xml", "abb")
	assert.Error(t, err)
}

func TestRootDefinition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "even.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
alphabet = "a"
start = 0
accept = [0]
table = [[1], [0]]
`), 0o644))

	out, _, err := execute(t, "--definition", path, "aa", "aaa")
	require.NoError(t, err)
	assert.Equal(t, "Matching input to: "+path+"\n"+
		"Input String is: aa\nInput accepted!\n"+
		"Input String is: aaa\nInput Failed\n", out)

	_, _, err = execute(t, "--definition", filepath.Join(t.TempDir(), "missing.toml"), "a")
	assert.Error(t, err)

	_, _, err = execute(t, "--definition", path, "--compiled", path, "a")
	assert.Error(t, err)
}

func TestCompileThenMatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abb.dfa")
	out, _, err := execute(t, "compile", path)
	require.NoError(t, err)
	assert.Equal(t, "wrote 4 states to "+path+"\n", out)

	out, _, err = execute(t, "--compiled", path, "ababb", "abab")
	require.NoError(t, err)
	assert.Equal(t, "Matching input to: "+path+"\n"+
		"Input String is: ababb\nInput accepted!\n"+
		"Input String is: abab\nInput Failed\n", out)

	_, _, err = execute(t, "compile")
	assert.Error(t, err)
}

func TestDot(t *testing.T) {
	var want bytes.Buffer
	require.NoError(t, tabledfa.ExportDot(tabledfa.NewABB(), &want))

	out, _, err := execute(t, "dot")
	require.NoError(t, err)
	assert.Equal(t, want.String(), out)

	path := filepath.Join(t.TempDir(), "abb.dot")
	_, _, err = execute(t, "dot", "-o", path)
	require.NoError(t, err)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want.String(), string(got))
}

func TestTable(t *testing.T) {
	out, _, err := execute(t, "table")
	require.NoError(t, err)
	assert.Contains(t, out, "(a|b)*abb over {a,b}")
	assert.Contains(t, out, "'a'")
	assert.Contains(t, out, ">0")
	assert.Contains(t, out, "*3")
}
