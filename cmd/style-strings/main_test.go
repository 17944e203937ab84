// Copyright (c) 2024  The Go-Enjin Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/go-enjin/style-strings/commands/extract"
	"github.com/go-enjin/style-strings/pkg/document"
	"github.com/go-enjin/style-strings/pkg/system"
)

const exampleStyle = `{"title.i18n": "Hello", "count": 3, "nested": {"label.i18n": "World"}}`

func runApp(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	app, err := newApp("style-strings", system.NewManager())
	require.NoError(t, err)
	app.Writer = &outBuf
	app.ErrWriter = &errBuf
	app.ExitErrHandler = func(*cli.Context, error) {}
	err = app.Run(append([]string{"style-strings"}, args...))
	stdout, stderr = outBuf.String(), errBuf.String()
	return
}

func writeFile(t *testing.T, dir, name, content string) (path string) {
	t.Helper()
	path = filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0775))
	require.NoError(t, os.WriteFile(path, []byte(content), 0664))
	return
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func listDir(t *testing.T, dir string) (names []string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return
}

func TestUsageWithoutArguments(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	before := listDir(t, cwd)

	stdout, stderr, err := runApp(t)
	require.Error(t, err)
	var exitCoder cli.ExitCoder
	require.True(t, errors.As(err, &exitCoder))
	assert.Equal(t, 1, exitCoder.ExitCode())
	assert.Contains(t, stdout, "style-strings [options] <output-path>")
	assert.Empty(t, stderr)
	assert.Equal(t, before, listDir(t, cwd))
}

func TestExample(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")
	in := writeFile(t, dir, "style.json", exampleStyle)

	_, _, err := runApp(t, out, in)
	require.NoError(t, err)
	assert.Equal(t, "ic_gettext(\"Hello\");\nic_gettext(\"World\");\n", readFile(t, out))
}

func TestZeroInputsCreatesEmptyOutput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")
	writeFile(t, dir, "out.txt", "stale content\n")

	_, _, err := runApp(t, out)
	require.NoError(t, err)
	assert.Equal(t, "", readFile(t, out))
}

func TestNonObjectTopLevelIsSkipped(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")
	array := writeFile(t, dir, "array.json", `[{"a.i18n": "inside array"}]`)
	scalar := writeFile(t, dir, "scalar.json", `"x.i18n"`)
	object := writeFile(t, dir, "object.json", `{"a.i18n": "kept"}`)

	_, _, err := runApp(t, out, array, scalar, object)
	require.NoError(t, err)
	assert.Equal(t, "ic_gettext(\"kept\");\n", readFile(t, out))
}

func TestConcatenation(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.json", `{"x.i18n": "A", "list": [{"y.i18n": "A2"}]}`)
	b := writeFile(t, dir, "b.json", `{"z.i18n": "B", "dup.i18n": "A"}`)

	outA, outB, outAB := filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt"), filepath.Join(dir, "ab.txt")
	_, _, err := runApp(t, outA, a)
	require.NoError(t, err)
	_, _, err = runApp(t, outB, b)
	require.NoError(t, err)
	_, _, err = runApp(t, outAB, a, b)
	require.NoError(t, err)

	assert.Equal(t, readFile(t, outA)+readFile(t, outB), readFile(t, outAB))
}

func TestMalformedInputKeepsPartialOutput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")
	good := writeFile(t, dir, "good.json", `{"a.i18n": "first"}`)
	bad := writeFile(t, dir, "bad.json", `{"b.i18n": "second",`)
	never := writeFile(t, dir, "never.json", `{"c.i18n": "third"}`)

	_, _, err := runApp(t, out, good, bad, never)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)
	assert.Equal(t, "ic_gettext(\"first\");\n", readFile(t, out))
}

func TestInvalidJSONAbortsTheRun(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")
	good := writeFile(t, dir, "good.json", `{"a.i18n": "first"}`)

	for name, content := range map[string]string{
		"missing-comma.json":  `{"x.i18n": "x" "y.i18n": "y"}`,
		"missing-colon.json":  `{"x.i18n" "x"}`,
		"trailing-comma.json": `{"x.i18n": "x",}`,
		"leading-zero.json":   `{"x.i18n": "x", "n": 007}`,
		"raw-tab.json":        "{\"x.i18n\": \"a\tb\"}",
		"bad-utf8.json":       "{\"x.i18n\": \"\xff\"}",
	} {
		bad := writeFile(t, dir, name, content)
		_, _, err := runApp(t, out, good, bad)
		require.Error(t, err, name)
		assert.Contains(t, err.Error(), bad)
		assert.Equal(t, "ic_gettext(\"first\");\n", readFile(t, out), name)
	}
}

func TestMissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")
	good := writeFile(t, dir, "good.json", `{"a.i18n": "first"}`)

	_, _, err := runApp(t, out, good, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Equal(t, "ic_gettext(\"first\");\n", readFile(t, out))
}

func TestUnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	_, _, err := runApp(t, filepath.Join(dir, "no", "such", "dir", "out.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestDirectoryInputRequiresRecurse(t *testing.T) {
	dir := t.TempDir()
	styles := filepath.Join(dir, "styles")
	writeFile(t, styles, "1.json", `{"a.i18n": "one"}`)
	writeFile(t, styles, "10.json", `{"a.i18n": "ten"}`)
	writeFile(t, styles, "2.json", `{"a.i18n": "two"}`)
	writeFile(t, styles, "notes.txt", `{"a.i18n": "ignored"}`)
	out := filepath.Join(dir, "out.txt")

	_, _, err := runApp(t, out, styles)
	require.Error(t, err)

	_, _, err = runApp(t, "--recurse", out, styles)
	require.NoError(t, err)
	assert.Equal(t, "ic_gettext(\"one\");\nic_gettext(\"two\");\nic_gettext(\"ten\");\n", readFile(t, out))
}

func TestFlagsAndConfig(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")
	in := writeFile(t, dir, "style.json", `{"a.tr": "say \"hi\"", "b.i18n": "plain"}`)
	config := writeFile(t, dir, "style-strings.toml", "suffix = \".tr\"\nmarker = \"_\"\n")

	_, _, err := runApp(t, "--config", config, out, in)
	require.NoError(t, err)
	assert.Equal(t, "_(\"say \"hi\"\");\n", readFile(t, out))

	_, _, err = runApp(t, "--config", config, "--escape", "--marker", "tr", out, in)
	require.NoError(t, err)
	assert.Equal(t, `tr("say \"hi\"");`+"\n", readFile(t, out))

	_, _, err = runApp(t, "--config", config, "--suffix", ".i18n", out, in)
	require.NoError(t, err)
	assert.Equal(t, "_(\"plain\");\n", readFile(t, out))

	unknown := writeFile(t, dir, "unknown.toml", "prefix = \"x\"\n")
	_, _, err = runApp(t, "--config", unknown, out, in)
	require.Error(t, err)
}

func TestMaxDepth(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")
	in := writeFile(t, dir, "deep.json", `{"a": {"b": {"c": {"d.i18n": "deep"}}}}`)

	_, _, err := runApp(t, "--max-depth", "2", out, in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, document.ErrMaxDepth))

	_, _, err = runApp(t, "--max-depth", "0", out, in)
	require.NoError(t, err)
	assert.Equal(t, "ic_gettext(\"deep\");\n", readFile(t, out))
}

func TestCommandCategories(t *testing.T) {
	app, err := newApp("style-strings", system.NewManager())
	require.NoError(t, err)
	command := app.Command("gotext-locales")
	require.NotNil(t, command)
	assert.Equal(t, system.ExportCategory, command.Category)
}

func TestGotextLocales(t *testing.T) {
	dir := t.TempDir()
	locales := filepath.Join(dir, "locales")
	a := writeFile(t, dir, "a.json", `{"title.i18n": "Play", "quit.i18n": "Quit"}`)
	b := writeFile(t, dir, "b.json", `{"button": {"label.i18n": "Play"}}`)

	_, _, err := runApp(t, "gotext-locales", "--out", locales, "--lang", "en,fr", a, b)
	require.NoError(t, err)

	var en, fr extract.GotextData
	require.NoError(t, json.Unmarshal([]byte(readFile(t, filepath.Join(locales, "en", "out.gotext.json"))), &en))
	require.NoError(t, json.Unmarshal([]byte(readFile(t, filepath.Join(locales, "fr", "out.gotext.json"))), &fr))

	assert.Equal(t, "en", en.Language)
	assert.Equal(t, "fr", fr.Language)
	require.Len(t, en.Messages, 2)
	require.Len(t, fr.Messages, 2)

	assert.Equal(t, "Play", en.Messages[0].Id)
	assert.Equal(t, "Play", en.Messages[0].Translation)
	assert.Equal(t, "", fr.Messages[0].Translation)
	assert.Equal(t, "[from: "+a+"]\n[from: "+b+"]", fr.Messages[0].TranslatorComment)
	assert.Equal(t, "Quit", fr.Messages[1].Message)
}
