// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package main

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pimmuno/protectconf/models"
)

func historyFixture() []models.HistoryEntry {
	runAt := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	return []models.HistoryEntry{
		{
			ID:       2,
			RunAt:    runAt.Add(time.Hour),
			Source:   "https://config.example.org/protect.yaml",
			Status:   models.RunStatusResolved,
			Digest:   "4a5c1e92b7d04f6e8a31bc55d9e0f7a2c8b64d13e97f0a25b3c61d84e5f92a07",
			Patients: 3,
			Issues:   0,
		},
		{
			ID:       1,
			RunAt:    runAt,
			Source:   "ProTECT_config.yaml",
			Status:   models.RunStatusInvalid,
			Digest:   "b1946ac92492d2347c6235b4d2611184a9c7e3d5f80b12c64da7e9f013a8b5c2",
			Patients: 0,
			Issues:   2,
		},
	}
}

func TestHistoryList_RendersTable(t *testing.T) {
	c, _, history := newTestContainer(t)
	history.EXPECT().List(gomock.Any(), 20).Return(historyFixture(), nil)

	out, _, err := executeCommand(t, newHistoryCommand(c), "list")

	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "SOURCE")
	assert.Contains(t, out, "https://config.example.org/protect.yaml")
	assert.Contains(t, out, models.RunStatusInvalid)
	// Digests are shortened in the listing.
	assert.Contains(t, out, "4a5c1e92b7d0")
	assert.NotContains(t, out, "4a5c1e92b7d04f6e")
}

func TestHistoryList_LimitFlag(t *testing.T) {
	c, _, history := newTestContainer(t)
	history.EXPECT().List(gomock.Any(), 5).Return(historyFixture(), nil)

	_, _, err := executeCommand(t, newHistoryCommand(c), "list", "--limit", "5")

	require.NoError(t, err)
}

func TestHistoryList_Empty(t *testing.T) {
	c, _, history := newTestContainer(t)
	history.EXPECT().List(gomock.Any(), 20).Return(nil, nil)

	out, _, err := executeCommand(t, newHistoryCommand(c), "list")

	require.NoError(t, err)
	assert.Contains(t, out, "history is empty")
}

func TestHistoryShow_RendersEntry(t *testing.T) {
	c, _, history := newTestContainer(t)
	entry := historyFixture()[0]
	history.EXPECT().Show(gomock.Any(), int64(2)).Return(entry, nil)

	out, _, err := executeCommand(t, newHistoryCommand(c), "show", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "ID:       2")
	assert.Contains(t, out, "Source:   https://config.example.org/protect.yaml")
	assert.Contains(t, out, "Patients: 3")
	// Show prints the digest in full.
	assert.Contains(t, out, entry.Digest)
}

func TestHistoryShow_BadID(t *testing.T) {
	c, _, _ := newTestContainer(t)

	_, _, err := executeCommand(t, newHistoryCommand(c), "show", "not-a-number")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid history id "not-a-number"`)
}

func TestHistoryShow_PropagatesNotFound(t *testing.T) {
	c, _, history := newTestContainer(t)
	notFound := errors.New("history entry was not found")
	history.EXPECT().Show(gomock.Any(), int64(99)).Return(models.HistoryEntry{}, notFound)

	_, _, err := executeCommand(t, newHistoryCommand(c), "show", "99")

	require.ErrorIs(t, err, notFound)
}

func TestHistoryClear_ReportsCount(t *testing.T) {
	c, _, history := newTestContainer(t)
	history.EXPECT().Clear(gomock.Any()).Return(int64(3), nil)

	out, _, err := executeCommand(t, newHistoryCommand(c), "clear")

	require.NoError(t, err)
	assert.Contains(t, out, "removed 3 history entries")
}

func TestHistoryClear_SingularNoun(t *testing.T) {
	c, _, history := newTestContainer(t)
	history.EXPECT().Clear(gomock.Any()).Return(int64(1), nil)

	out, _, err := executeCommand(t, newHistoryCommand(c), "clear")

	require.NoError(t, err)
	assert.Contains(t, out, "removed 1 history entry")
}
