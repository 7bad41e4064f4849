package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/pimmuno/protectconf/models"
)

const (
	saveRunQuery = `INSERT INTO resolution_runs (id, created_at, source, status, digest, patients, issues, document)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

	getRunQuery = `SELECT id, created_at, source, status, digest, patients, issues, document
    FROM resolution_runs
    WHERE id = $1;`

	deleteRunQuery = `DELETE FROM resolution_runs
    WHERE id = $1;`
)

// runColumns is the column order shared by every SELECT and its row scan.
var runColumns = []string{
	"id", "created_at", "source", "status", "digest", "patients", "issues", "document",
}

// buildListRunsQuery assembles the archive listing query. Empty filter
// fields add no predicate; a positive limit caps the result set. Rows come
// back newest first.
func buildListRunsQuery(filter models.RunFilter) (string, []any, error) {
	qb := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select(runColumns...).
		From("resolution_runs").
		OrderBy("created_at DESC", "id")

	if filter.Status != "" {
		qb = qb.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Source != "" {
		qb = qb.Where(sq.Eq{"source": filter.Source})
	}
	if filter.Limit > 0 {
		qb = qb.Limit(uint64(filter.Limit))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
