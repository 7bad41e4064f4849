// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pimmuno/protectconf/internal/logger"
	"github.com/pimmuno/protectconf/internal/mock"
	"github.com/pimmuno/protectconf/internal/service"
	"github.com/pimmuno/protectconf/internal/store"
	"github.com/pimmuno/protectconf/models"
)

func newTestHistorySvc(t *testing.T, ctrl *gomock.Controller) (service.HistoryService, *mock.MockHistoryRepository) {
	t.Helper()
	mockHistory := mock.NewMockHistoryRepository(ctrl)
	return service.NewHistoryService(mockHistory, logger.Nop()), mockHistory
}

func TestHistoryList_PassesLimitThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockHistory := newTestHistorySvc(t, ctrl)
	ctx := testCtx()

	want := []models.HistoryEntry{
		{ID: 2, Source: "protect.yaml", RunAt: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)},
		{ID: 1, Source: "defaults"},
	}
	mockHistory.EXPECT().
		Recent(ctx, 5).
		Return(want, nil)

	entries, err := svc.List(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, want, entries)
}

func TestHistoryShow_ReturnsEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockHistory := newTestHistorySvc(t, ctrl)
	ctx := testCtx()

	mockHistory.EXPECT().
		Get(ctx, int64(3)).
		Return(models.HistoryEntry{ID: 3, Digest: "abc"}, nil)

	entry, err := svc.Show(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, int64(3), entry.ID)
	assert.Equal(t, "abc", entry.Digest)
}

func TestHistoryShow_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockHistory := newTestHistorySvc(t, ctrl)
	ctx := testCtx()

	mockHistory.EXPECT().
		Get(ctx, int64(99)).
		Return(models.HistoryEntry{}, store.ErrHistoryEntryNotFound)

	_, err := svc.Show(ctx, 99)

	assert.ErrorIs(t, err, store.ErrHistoryEntryNotFound)
}

func TestHistoryClear_ReportsRemovedCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockHistory := newTestHistorySvc(t, ctrl)
	ctx := testCtx()

	mockHistory.EXPECT().
		Clear(ctx).
		Return(int64(4), nil)

	removed, err := svc.Clear(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)
}

func TestHistoryClear_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockHistory := newTestHistorySvc(t, ctrl)
	ctx := testCtx()

	clearErr := errors.New("database is locked")
	mockHistory.EXPECT().
		Clear(ctx).
		Return(int64(0), clearErr)

	_, err := svc.Clear(ctx)

	assert.ErrorIs(t, err, clearErr)
}
