// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pimmuno/protectconf/internal/logger"
	"github.com/pimmuno/protectconf/internal/mock"
	"github.com/pimmuno/protectconf/internal/resolver"
	"github.com/pimmuno/protectconf/internal/service"
	"github.com/pimmuno/protectconf/internal/settings"
	"github.com/pimmuno/protectconf/models"
)

func newTestCLIResolutionSvc(t *testing.T, ctrl *gomock.Controller, cfg settings.Resolver) (service.CLIResolutionService, *mock.MockDocumentFetcher, *mock.MockHistoryRepository) {
	t.Helper()

	mockFetcher := mock.NewMockDocumentFetcher(ctrl)
	mockHistory := mock.NewMockHistoryRepository(ctrl)

	res, err := resolver.New()
	require.NoError(t, err)

	svc := service.NewCLIResolutionService(res, mockFetcher, mockHistory, cfg, logger.Nop())
	return svc, mockFetcher, mockHistory
}

// ── ResolveSource ────────────────────────────────────────────────────────

// TestResolveSource_FetchesAndResolves verifies the happy path: the
// document comes from the fetcher and resolves cleanly. With RecordHistory
// unset the history database is never touched.
func TestResolveSource_FetchesAndResolves(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockFetcher, _ := newTestCLIResolutionSvc(t, ctrl, settings.Resolver{})
	ctx := testCtx()

	mockFetcher.EXPECT().
		Fetch(ctx, "protect.yaml").
		Return([]byte(validUserDoc), nil)

	result, err := svc.ResolveSource(ctx, "protect.yaml", service.ResolveSourceOptions{})

	require.NoError(t, err)
	assert.True(t, result.Report.OK)
	assert.Equal(t, models.RunStatusResolved, result.Status())
	assert.NotEmpty(t, result.Digest)
	assert.Equal(t, 1, result.Patients)
	assert.Empty(t, result.RunID, "CLI resolves never touch the run registry")
}

// TestResolveSource_EmptySourceSkipsFetcher verifies that a defaults-only
// resolve never calls the fetcher.
func TestResolveSource_EmptySourceSkipsFetcher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestCLIResolutionSvc(t, ctrl, settings.Resolver{})

	result, err := svc.ResolveSource(testCtx(), "", service.ResolveSourceOptions{})

	require.NoError(t, err)
	assert.False(t, result.Report.OK, "bare defaults lack patients and output folder")
	assert.Zero(t, result.Patients)
}

// TestResolveSource_RecordsHistory verifies that the appended history
// entry mirrors the resolution outcome.
func TestResolveSource_RecordsHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockFetcher, mockHistory := newTestCLIResolutionSvc(t, ctrl, settings.Resolver{})
	ctx := testCtx()

	mockFetcher.EXPECT().
		Fetch(ctx, "protect.yaml").
		Return([]byte(validUserDoc), nil)

	var appended models.HistoryEntry
	mockHistory.EXPECT().
		Append(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.HistoryEntry) error {
			appended = *entry
			return nil
		})

	result, err := svc.ResolveSource(ctx, "protect.yaml", service.ResolveSourceOptions{RecordHistory: true})

	require.NoError(t, err)
	assert.Equal(t, "protect.yaml", appended.Source)
	assert.Equal(t, result.Status(), appended.Status)
	assert.Equal(t, result.Digest, appended.Digest)
	assert.Equal(t, result.Patients, appended.Patients)
	assert.False(t, appended.RunAt.IsZero())
}

// TestResolveSource_DefaultsOnlyHistorySource verifies that a resolve
// without a user document is recorded under the "defaults" marker.
func TestResolveSource_DefaultsOnlyHistorySource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockHistory := newTestCLIResolutionSvc(t, ctrl, settings.Resolver{})
	ctx := testCtx()

	mockHistory.EXPECT().
		Append(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.HistoryEntry) error {
			assert.Equal(t, "defaults", entry.Source)
			return nil
		})

	_, err := svc.ResolveSource(ctx, "", service.ResolveSourceOptions{RecordHistory: true})
	require.NoError(t, err)
}

// TestResolveSource_HistoryFailureDoesNotFailResolve verifies that the
// history is an audit trail, not a gate.
func TestResolveSource_HistoryFailureDoesNotFailResolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockFetcher, mockHistory := newTestCLIResolutionSvc(t, ctrl, settings.Resolver{})
	ctx := testCtx()

	mockFetcher.EXPECT().
		Fetch(ctx, "protect.yaml").
		Return([]byte(validUserDoc), nil)
	mockHistory.EXPECT().
		Append(ctx, gomock.Any()).
		Return(errors.New("disk full"))

	result, err := svc.ResolveSource(ctx, "protect.yaml", service.ResolveSourceOptions{RecordHistory: true})

	require.NoError(t, err)
	assert.True(t, result.Report.OK)
}

// TestResolveSource_FetchError verifies that retrieval failures surface
// before any resolution work happens.
func TestResolveSource_FetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockFetcher, _ := newTestCLIResolutionSvc(t, ctrl, settings.Resolver{})
	ctx := testCtx()

	fetchErr := errors.New("no such file")
	mockFetcher.EXPECT().
		Fetch(ctx, "missing.yaml").
		Return(nil, fetchErr)

	_, err := svc.ResolveSource(ctx, "missing.yaml", service.ResolveSourceOptions{RecordHistory: true})

	assert.ErrorIs(t, err, fetchErr)
}

// TestResolveSource_CoresCapPrecedence verifies that a per-call cap beats
// the configured one, and the configured one applies otherwise.
func TestResolveSource_CoresCapPrecedence(t *testing.T) {
	const doc = validUserDoc + `  max_cores: 16
`

	tests := []struct {
		name      string
		cfgCap    int
		optsCap   int
		wantCores int64
	}{
		{name: "OptionBeatsSettings", cfgCap: 3, optsCap: 2, wantCores: 2},
		{name: "SettingsUsedWhenOptionUnset", cfgCap: 3, optsCap: 0, wantCores: 3},
		{name: "Uncapped", cfgCap: 0, optsCap: 0, wantCores: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockFetcher, _ := newTestCLIResolutionSvc(t, ctrl, settings.Resolver{MaxCoresPerJob: tt.cfgCap})
			ctx := testCtx()

			mockFetcher.EXPECT().
				Fetch(ctx, "protect.yaml").
				Return([]byte(doc), nil)

			result, err := svc.ResolveSource(ctx, "protect.yaml", service.ResolveSourceOptions{MaxCoresPerJob: tt.optsCap})
			require.NoError(t, err)

			cores, ok := result.Tree.Scalar("Universal_Options", "max_cores")
			require.True(t, ok)
			n, isInt := cores.IntVal()
			require.True(t, isInt)
			assert.Equal(t, tt.wantCores, n)
		})
	}
}

// ── ValidateSource ───────────────────────────────────────────────────────

// TestValidateSource_ReportsIssues verifies that an incomplete document
// produces a failing report without touching the history.
func TestValidateSource_ReportsIssues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockFetcher, _ := newTestCLIResolutionSvc(t, ctrl, settings.Resolver{})
	ctx := testCtx()

	mockFetcher.EXPECT().
		Fetch(ctx, "incomplete.yaml").
		Return([]byte(invalidUserDoc), nil)

	report, err := svc.ValidateSource(ctx, "incomplete.yaml")

	require.NoError(t, err)
	assert.False(t, report.OK)
	assert.NotEmpty(t, report.Issues)
}

func TestValidateSource_FetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockFetcher, _ := newTestCLIResolutionSvc(t, ctrl, settings.Resolver{})
	ctx := testCtx()

	fetchErr := errors.New("connection refused")
	mockFetcher.EXPECT().
		Fetch(ctx, "https://config.example.org/protect.yaml").
		Return(nil, fetchErr)

	_, err := svc.ValidateSource(ctx, "https://config.example.org/protect.yaml")

	assert.ErrorIs(t, err, fetchErr)
}
