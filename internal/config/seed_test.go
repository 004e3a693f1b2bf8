package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedSourceConsumeIsOneShot(t *testing.T) {
	seed := NewSeedSource(t.TempDir())

	require.NoError(t, seed.Write("My invoice is wrong"))

	message, ok := seed.Consume()
	require.True(t, ok)
	assert.Equal(t, "My invoice is wrong", message)

	// A second consume finds nothing: the slot is cleared, not reapplied.
	_, ok = seed.Consume()
	assert.False(t, ok)
}

func TestSeedSourceEmptySlot(t *testing.T) {
	seed := NewSeedSource(t.TempDir())

	_, ok := seed.Consume()
	assert.False(t, ok)
}

func TestSeedSourceWriteReplaces(t *testing.T) {
	seed := NewSeedSource(t.TempDir())

	require.NoError(t, seed.Write("first"))
	require.NoError(t, seed.Write("second"))

	message, ok := seed.Consume()
	require.True(t, ok)
	assert.Equal(t, "second", message)
}

func TestSeedSourceRejectsEmptyMessage(t *testing.T) {
	seed := NewSeedSource(t.TempDir())
	assert.Error(t, seed.Write("   "))
}

func TestExpandPath(t *testing.T) {
	t.Setenv("TRIAGE_TEST_DIR", "/tmp/triage-test")

	assert.Equal(t, "/tmp/triage-test/db", ExpandPath("$TRIAGE_TEST_DIR/db"))
	assert.Equal(t, "", ExpandPath(""))
	assert.NotContains(t, ExpandPath("~/state"), "~")
}
