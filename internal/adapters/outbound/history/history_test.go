package history_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cemlint/cemlint/internal/adapters/outbound/history"
	"github.com/cemlint/cemlint/internal/domain"
)

func TestHistory_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	ts := time.Date(2026, 2, 25, 10, 0, 0, 0, time.UTC)
	entry := domain.RunEntry{
		Timestamp:  ts,
		CommitHash: "abc1234",
		Manifest:   "custom-elements.json",
		Status:     domain.StatusFail,
		Warnings:   2,
		Errors:     1,
	}

	err := h.Save(dir, entry)
	require.NoError(t, err)

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Errors)
	assert.Equal(t, "abc1234", entries[0].CommitHash)
	assert.True(t, ts.Equal(entries[0].Timestamp))
}

func TestHistory_AppendMultiple(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	require.NoError(t, h.Save(dir, domain.RunEntry{Status: domain.StatusFail, Errors: 3}))
	require.NoError(t, h.Save(dir, domain.RunEntry{Status: domain.StatusWarn, Warnings: 2}))
	require.NoError(t, h.Save(dir, domain.RunEntry{Status: domain.StatusPass}))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 3, entries[0].Errors)
	assert.Equal(t, domain.StatusPass, entries[2].Status)
}

func TestHistory_LoadEmpty(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	entries, err := h.Load(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistory_CreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	nestedDir := filepath.Join(dir, "deep", "nested")
	h := history.New()

	err := h.Save(nestedDir, domain.RunEntry{Status: domain.StatusPass})
	require.NoError(t, err)

	entries, err := h.Load(nestedDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.FileExists(t, filepath.Join(nestedDir, ".cemlint", "history", "runs.json"))
}
