// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/schedule-engine/pkg/types"
)

// QueryOptions holds parameters for event store queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string over session names,
	// speakers, locations, and raw text.
	Query string

	// Date filters by substring of the canonical date label.
	Date string

	// Speaker filters by substring of the speaker field.
	Speaker string

	// Location filters by substring of the location field.
	Location string

	// DocID filters by source document.
	DocID string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Date == "" && q.Speaker == "" && q.Location == "" && q.DocID == ""
}

// QueryResult is an Event with its store provenance.
type QueryResult struct {
	types.Event `yaml:",inline"`
	DocID       string `json:"doc_id" yaml:"doc_id"`
	Seq         int    `json:"seq" yaml:"seq"`
}

// Retrieve queries the event store with optional full-text search and
// structured filters. Full-text queries are ranked by relevance when the
// FTS5 module is available and fall back to substring scans over the
// searchable columns otherwise; structured-only and fallback queries keep
// document order (doc_id, seq).
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != "" && s.fts
	)

	switch {
	case useFTS:
		qb.WriteString(
			`SELECT e.doc_id, e.seq, e.date, e.time, e.session_name, e.speaker, e.location, e.raw_text
			FROM events_fts
			JOIN events e ON e.rowid = events_fts.rowid
			WHERE events_fts MATCH ?`)
		args = append(args, opts.Query)
	case opts.Query != "":
		qb.WriteString(
			`SELECT e.doc_id, e.seq, e.date, e.time, e.session_name, e.speaker, e.location, e.raw_text
			FROM events e
			WHERE (e.session_name LIKE ? OR e.speaker LIKE ? OR e.location LIKE ? OR e.raw_text LIKE ?)`)
		term := "%" + opts.Query + "%"
		args = append(args, term, term, term, term)
	default:
		qb.WriteString(
			`SELECT e.doc_id, e.seq, e.date, e.time, e.session_name, e.speaker, e.location, e.raw_text
			FROM events e
			WHERE 1=1`)
	}

	like := func(column, value string) {
		qb.WriteString(` AND ` + column + ` LIKE ?`)
		args = append(args, "%"+value+"%")
	}
	if opts.Date != "" {
		like("e.date", opts.Date)
	}
	if opts.Speaker != "" {
		like("e.speaker", opts.Speaker)
	}
	if opts.Location != "" {
		like("e.location", opts.Location)
	}
	if opts.DocID != "" {
		qb.WriteString(` AND e.doc_id = ?`)
		args = append(args, opts.DocID)
	}

	if useFTS {
		qb.WriteString(` ORDER BY events_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY e.doc_id, e.seq`)
	}
	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var r QueryResult
		err := rows.Scan(&r.DocID, &r.Seq,
			&r.Date, &r.Time, &r.SessionName, &r.Speaker, &r.Location, &r.RawText)
		if err != nil {
			return nil, fmt.Errorf("scanning event row: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
