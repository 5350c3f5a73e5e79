package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/on-the-ground/chainhash/shared/hashtable"
	"github.com/on-the-ground/chainhash/shared/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sample = `The quick brown fox jumps over the lazy dog.
The dog barks; the fox runs! A fox, a dog, THE END.`

func TestCounter_Top(t *testing.T) {
	c := NewCounter(2, hashtable.FNVHash64, log.NewTestLogger())
	defer c.Close()

	require.NoError(t, c.CountWords(strings.NewReader(sample)))
	assert.Equal(t, 12, c.Distinct())
	assert.Equal(t, 0, c.Collisions())

	assert.Equal(t, []wordCount{
		{"the", 5},
		{"dog", 3},
		{"fox", 3},
		{"a", 2},
	}, c.Top(4))

	assert.Len(t, c.Top(100), 12)
	assert.Empty(t, c.Top(0))
	assert.Empty(t, c.Top(-1))
}

func TestCounter_Prune(t *testing.T) {
	c := NewCounter(4, hashtable.XXHash64, zap.NewNop())
	defer c.Close()

	require.NoError(t, c.CountWords(strings.NewReader(sample)))
	assert.Equal(t, 8, c.Prune(2))
	assert.Equal(t, 4, c.Distinct())
	assert.Equal(t, []wordCount{
		{"the", 5},
		{"dog", 3},
		{"fox", 3},
		{"a", 2},
	}, c.Top(10))
}

func TestCounter_Collision(t *testing.T) {
	constant := func([]byte) uint64 { return 7 }
	c := NewCounter(1, constant, zap.NewNop())
	defer c.Close()

	c.Add("alpha")
	c.Add("beta")
	c.Add("alpha")
	assert.Equal(t, 1, c.Distinct())
	assert.Equal(t, 1, c.Collisions())
	assert.Equal(t, []wordCount{{"alpha", 2}}, c.Top(5))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	var out bytes.Buffer
	err := run([]string{"-top", "2", "-hash", "xxhash", "-log-level", "error", path}, strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.Equal(t, "      5 the\n      3 dog\n", out.String())
}

func TestRun_Stdin(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-top", "1", "-log-level", "error"}, strings.NewReader("b a b"), &out)
	require.NoError(t, err)
	assert.Equal(t, "      2 b\n", out.String())
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer
	assert.ErrorContains(t, run([]string{"-hash", "md5"}, strings.NewReader(""), &out), `unknown hash "md5"`)
	assert.ErrorContains(t, run([]string{"-buckets", "0"}, strings.NewReader(""), &out), "buckets must be positive")
	assert.ErrorContains(t, run([]string{"-top", "-1", "-log-level", "error"}, strings.NewReader("a b"), &out), "top must be positive")
	assert.ErrorContains(t, run([]string{"-log-level", "error", "/does/not/exist"}, strings.NewReader(""), &out), "failed to open")
}
