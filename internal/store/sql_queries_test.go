// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pimmuno/protectconf/models"
)

func Test_buildListRunsQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildListRunsQuery(models.RunFilter{Status: models.RunStatusResolved})
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 1)
	require.Equal(t, models.RunStatusResolved, args[0])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from resolution_runs")
	require.Contains(t, q, "where")
	require.Contains(t, q, "status")
	require.Contains(t, q, "order by created_at desc")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")
}

func Test_buildListRunsQuery_SelectsAllExpectedColumns(t *testing.T) {
	query, _, err := buildListRunsQuery(models.RunFilter{})
	require.NoError(t, err)

	q := strings.ToLower(query)

	// Check that all expected columns are present in the SELECT section.
	// This is a "contains" check; it does not enforce order but catches regressions quickly.
	cols := []string{
		"id",
		"created_at",
		"source",
		"status",
		"digest",
		"patients",
		"issues",
		"document",
	}
	for _, c := range cols {
		require.Contains(t, q, c)
	}
}

func Test_buildListRunsQuery(t *testing.T) {
	tests := []struct {
		name       string
		filter     models.RunFilter
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "success: no filters",
			filter: models.RunFilter{},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "select")
				require.Contains(t, q, "from resolution_runs")
				require.Contains(t, q, "order by created_at desc")

				// No predicates and no cap without filters.
				require.NotContains(t, q, "where")
				require.NotContains(t, q, "limit")
				assert.Empty(t, args)
			},
		},
		{
			name:   "success: status filter only",
			filter: models.RunFilter{Status: models.RunStatusInvalid},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "where")
				require.Contains(t, q, "status")
				require.NotContains(t, q, "source =")
				require.Contains(t, query, "$1")

				require.Len(t, args, 1)
				assert.Equal(t, models.RunStatusInvalid, args[0])
			},
		},
		{
			name:   "success: source filter only",
			filter: models.RunFilter{Source: models.RunSourceCLI},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "where")
				require.Contains(t, q, "source")
				require.Contains(t, query, "$1")

				require.Len(t, args, 1)
				assert.Equal(t, models.RunSourceCLI, args[0])
			},
		},
		{
			name: "success: both filters and limit",
			filter: models.RunFilter{
				Status: models.RunStatusResolved,
				Source: models.RunSourceHTTP,
				Limit:  25,
			},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "where")
				require.Contains(t, q, "status")
				require.Contains(t, q, "source")
				require.Contains(t, q, "limit 25")

				// Postgres placeholders for both predicates.
				require.Contains(t, query, "$1")
				require.Contains(t, query, "$2")

				require.Len(t, args, 2)
				assert.Contains(t, args, models.RunStatusResolved)
				assert.Contains(t, args, models.RunSourceHTTP)
			},
		},
		{
			name:   "success: zero limit adds no cap",
			filter: models.RunFilter{Limit: 0},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.NotContains(t, strings.ToLower(query), "limit")
				assert.Empty(t, args)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListRunsQuery(tt.filter)

			require.NoError(t, err)
			assert.NotEmpty(t, query)

			if tt.checkQuery != nil {
				tt.checkQuery(t, query, args)
			}
		})
	}
}
