package results

import (
	"context"
	"database/sql"
	"time"
)

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) Append(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO quiz_results (id,learner_id,score,total,completed_at) VALUES ($1,$2,$3,$4,$5)`,
		e.ID, e.LearnerID, e.Score, e.Total, e.CompletedAt.UnixMilli())
	return err
}

func (s *SQLStore) History(ctx context.Context, learnerID string) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,learner_id,score,total,completed_at FROM quiz_results WHERE learner_id=$1 ORDER BY seq`,
		learnerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var ms int64
		if err := rows.Scan(&e.ID, &e.LearnerID, &e.Score, &e.Total, &ms); err != nil {
			return nil, err
		}
		e.CompletedAt = time.UnixMilli(ms).UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}
