package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokensAndBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank(" \t\n"))
	assert.False(t, IsBlank(" a "))
	assert.Equal(t, []string{"is", "the", "best"}, Tokens("  is\tthe   best\n"))
	assert.Empty(t, Tokens("   "))
}

func TestTOMLRoundTripAndRecovery(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.toml")

	type section struct {
		Limit int    `toml:"limit"`
		Name  string `toml:"name"`
	}
	type doc struct {
		Main section `toml:"main"`
	}

	require.NoError(t, SaveTOMLFile(doc{Main: section{Limit: 7, Name: "x"}}, path))
	assert.True(t, FileExists(path))

	var loaded doc
	require.NoError(t, LoadTOMLFile(path, &loaded))
	assert.Equal(t, 7, loaded.Main.Limit)

	raw, err := ParseTOMLWithRecovery(path)
	require.NoError(t, err)
	main, ok := ExtractSection(raw, "main")
	require.True(t, ok)
	limit, ok := ExtractInt64(main, "limit")
	assert.True(t, ok)
	assert.Equal(t, 7, limit)
	name, ok := ExtractString(main, "name")
	assert.True(t, ok)
	assert.Equal(t, "x", name)

	_, ok = ExtractString(main, "limit")
	assert.False(t, ok)
}

func TestParseTOMLWithRecoveryRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[main\nlimit = "), 0644))

	_, err := ParseTOMLWithRecovery(path)
	assert.Error(t, err)
}

func TestCheckDirStatus(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cfg")
	result := CheckDirStatus(dir)
	assert.True(t, result.Exists)
	assert.True(t, result.Writable)
	assert.NoError(t, result.Error)
}
