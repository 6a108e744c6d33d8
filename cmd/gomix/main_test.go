/*
File    : go-mix-core/cmd/gomix/main_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTempOutputs(t *testing.T) (out, errOut *os.File, readOut func() string, readErr func() string) {
	t.Helper()
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.txt")
	errPath := filepath.Join(dir, "err.txt")

	outFile, err := os.Create(outPath)
	require.NoError(t, err)
	errFile, err := os.Create(errPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		outFile.Close()
		errFile.Close()
	})

	readOut = func() string {
		data, err := os.ReadFile(outPath)
		require.NoError(t, err)
		return string(data)
	}
	readErr = func() string {
		data, err := os.ReadFile(errPath)
		require.NoError(t, err)
		return string(data)
	}
	return outFile, errFile, readOut, readErr
}

func TestRunFileEvaluatesAndPrintsResult(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "prog.gm")
	require.NoError(t, os.WriteFile(src, []byte("(add 1.0 2.0)\n"), 0o644))

	out, errOut, readOut, _ := withTempOutputs(t)
	err := runFile(src, false, out, errOut)
	require.NoError(t, err)
	assert.Contains(t, readOut(), "3")
}

func TestRunFileMissingFileReturnsError(t *testing.T) {
	out, errOut, _, _ := withTempOutputs(t)
	err := runFile("/nonexistent/path/does/not/exist.gm", false, out, errOut)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "IO ERROR")
}

func TestRunFileRuntimeErrorIsReturned(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "prog.gm")
	require.NoError(t, os.WriteFile(src, []byte("(nonexistent 1.0)\n"), 0o644))

	out, errOut, _, _ := withTempOutputs(t)
	err := runFile(src, false, out, errOut)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined identifier")
}
