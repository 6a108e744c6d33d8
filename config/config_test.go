/*
File    : go-mix-core/config/config_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/go-mix-core/config"
)

func TestLoadMissingFileReturnsZeroValue(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, config.Config{}, cfg)
}

func TestLoadReadsYAMLNextToEntryFile(t *testing.T) {
	dir := t.TempDir()
	contents := "prompt: \"gomix> \"\ndebug: true\nforce_on_dump: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gomixrc.yaml"), []byte(contents), 0o644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "gomix> ", cfg.Prompt)
	assert.True(t, cfg.Debug)
	assert.False(t, cfg.ForceOnDump)
}

func TestMergeOverridesTakePrecedence(t *testing.T) {
	base := config.Config{Prompt: "base> ", Debug: false, ForceOnDump: false}
	override := config.Config{Prompt: "", Debug: true, ForceOnDump: true}

	merged := base.Merge(override)
	assert.Equal(t, "base> ", merged.Prompt, "empty override prompt should not clobber base")
	assert.True(t, merged.Debug)
	assert.True(t, merged.ForceOnDump)
}

func TestMergeNonEmptyPromptOverrides(t *testing.T) {
	base := config.Config{Prompt: "base> "}
	override := config.Config{Prompt: "custom> "}

	merged := base.Merge(override)
	assert.Equal(t, "custom> ", merged.Prompt)
}
