package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/gctb/internal/itemgen"
	"github.com/abhisek/gctb/internal/registry"
)

// execute runs the root command with args. Flag values persist between
// runs, so callers pass every flag they rely on.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("GCTB_CONFIG", filepath.Join(t.TempDir(), "none.toml"))
	t.Setenv("GCTB_LOG_LEVEL", "")
	t.Setenv("GCTB_LOG_FILE", "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "gctb "))
}

func TestTests_ListsRegistry(t *testing.T) {
	out, err := execute(t, "tests")
	require.NoError(t, err)
	for _, cfg := range registry.All() {
		assert.Contains(t, out, cfg.ID.String())
		assert.Contains(t, out, cfg.Title)
	}
	assert.Contains(t, out, "5 tests")
}

func TestSample_JSON(t *testing.T) {
	out, err := execute(t, "sample", "--test", "arith", "--seed", "7", "--count", "3", "--format", "json")
	require.NoError(t, err)

	var doc struct {
		Test  string `json:"test"`
		Seed  uint32 `json:"seed"`
		Items []struct {
			Index  int    `json:"index"`
			Kind   string `json:"kind"`
			Answer string `json:"answer"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "arith", doc.Test)
	assert.Equal(t, uint32(7), doc.Seed)
	require.Len(t, doc.Items, 3)

	cfg, _ := registry.Lookup(registry.Arith)
	want := cfg.Generate(7, 3)
	for i, it := range doc.Items {
		assert.Equal(t, i+1, it.Index)
		assert.Equal(t, "arith", it.Kind)
		assert.Equal(t, want[i].Answer(), it.Answer)
	}
}

func TestSample_YAML(t *testing.T) {
	out, err := execute(t, "sample", "--test", "plaats", "--seed", "11", "--count", "2", "--format", "yaml")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "plaats", doc["test"])
	items, ok := doc["items"].([]any)
	require.True(t, ok)
	assert.Len(t, items, 2)
}

func TestSample_TextMarksAnswer(t *testing.T) {
	out, err := execute(t, "sample", "--test", "fout", "--seed", "3", "--count", "2", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "seed 3")
	assert.Contains(t, out, "Item 2/2")
	assert.Equal(t, 2, strings.Count(out, " * "))
}

func TestSample_Errors(t *testing.T) {
	_, err := execute(t, "sample", "--test", "chess", "--seed", "1", "--count", "1", "--format", "text")
	assert.ErrorIs(t, err, registry.ErrTestNotFound)

	_, err = execute(t, "sample", "--test", "arith", "--seed", "1", "--count", "1", "--format", "xml")
	assert.Error(t, err)

	_, err = execute(t, "sample", "--test", "arith", "--seed", "1", "--count", "0", "--format", "text")
	assert.Error(t, err)
}

func TestCheck_Passes(t *testing.T) {
	out, err := execute(t, "check", "--test", "", "--start", "1", "--seeds", "20")
	require.NoError(t, err)
	for _, id := range registry.IDs() {
		assert.Contains(t, out, id.String())
	}
	assert.NotContains(t, out, "FAIL")
}

func TestCheck_SingleTest(t *testing.T) {
	out, err := execute(t, "check", "--test", "woord", "--start", "100", "--seeds", "10")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(strings.TrimSpace(out), "\n")+1)
}

func TestCheck_CoversFullStream(t *testing.T) {
	out, err := execute(t, "check", "--test", "arith", "--start", "7", "--seeds", "2")
	require.NoError(t, err)
	assert.Contains(t, out, fmt.Sprintf("%d items", 2*itemgen.ArithStreamLen))

	out, err = execute(t, "check", "--test", "woord", "--start", "7", "--seeds", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "48 items")
}

func TestLoadConfig_BadLevelFlag(t *testing.T) {
	_, err := execute(t, "tests", "--log-level", "loud")
	assert.Error(t, err)
	// Reset the persistent flag for later tests.
	_, err = execute(t, "tests", "--log-level", "info")
	assert.NoError(t, err)
}
