package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bastiangx/wordlearn/pkg/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootRunsInteractiveLoop(t *testing.T) {
	cfgPath := writeFile(t, "config.toml", "[cli]\nexit_sentinel = \"exit!\"\n")

	out, err := execute(t, "Asymmetrik is the best\na\nexit!\n", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, `Suggestion(s): "asymmetrik" (1)`)
	assert.True(t, strings.HasSuffix(out, "Goodbye!\n"))
}

func TestRootSeedsFromCorpus(t *testing.T) {
	cfgPath := writeFile(t, "config.toml", "")
	seed := writeFile(t, "seed.txt", "PiZZa is also the Best\nBobby is just the worst\n")

	out, err := execute(t, "i\n", "--config", cfgPath, "--seed", seed)
	require.NoError(t, err)
	assert.Contains(t, out, `Suggestion(s): "is" (2)`)
}

func TestRootFailsOnMissingSeed(t *testing.T) {
	cfgPath := writeFile(t, "config.toml", "")
	_, err := execute(t, "", "--config", cfgPath, "--seed", filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestServeCommand(t *testing.T) {
	cfgPath := writeFile(t, "config.toml", "")

	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	require.NoError(t, enc.Encode(server.Request{ID: "t", Action: server.ActionTrain, Payload: "go gopher go"}))
	require.NoError(t, enc.Encode(server.Request{ID: "l", Action: server.ActionLookup, Payload: "go"}))

	out, err := execute(t, in.String(), "serve", "--config", cfgPath)
	require.NoError(t, err)

	dec := msgpack.NewDecoder(strings.NewReader(out))
	var ready, trained, lookup server.Response
	require.NoError(t, dec.Decode(&ready))
	require.NoError(t, dec.Decode(&trained))
	require.NoError(t, dec.Decode(&lookup))
	assert.Equal(t, server.StatusReady, ready.Status)
	assert.Equal(t, server.StatusOK, trained.Status)
	assert.Equal(t, []server.Suggestion{
		{Word: "go", Confidence: 2},
		{Word: "gopher", Confidence: 1},
	}, lookup.Suggestions)
}

func TestVersionCommand(t *testing.T) {
	cfgPath := writeFile(t, "config.toml", "")
	out, err := execute(t, "", "version", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}
