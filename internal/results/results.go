// Package results keeps each learner's history of submitted quizzes and
// summarizes it for the performance page.
package results

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidResult = errors.New("invalid result")

// Entry is one submitted quiz. Entries are append-only.
type Entry struct {
	ID          string    `json:"id"`
	LearnerID   string    `json:"learner_id"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	CompletedAt time.Time `json:"completed_at"`
}

func (e Entry) Percentage() int { return Percentage(e.Score, e.Total) }

// Percentage rounds score/total to a whole percent.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

type Store interface {
	Append(ctx context.Context, e Entry) error
	// History returns a learner's entries oldest first.
	History(ctx context.Context, learnerID string) ([]Entry, error)
}

type Summary struct {
	Average int     `json:"average"`
	Count   int     `json:"count"`
	History []Entry `json:"history"`
}

type Aggregator struct {
	store Store
}

func NewAggregator(s Store) *Aggregator { return &Aggregator{store: s} }

// Record appends a (score, total) pair. It only rejects malformed pairs.
func (a *Aggregator) Record(ctx context.Context, learnerID string, score, total int, at time.Time) (Entry, error) {
	if total <= 0 || score < 0 || score > total {
		return Entry{}, fmt.Errorf("%w: %d/%d", ErrInvalidResult, score, total)
	}
	e := Entry{
		ID:          uuid.NewString(),
		LearnerID:   learnerID,
		Score:       score,
		Total:       total,
		CompletedAt: at,
	}
	if err := a.store.Append(ctx, e); err != nil {
		return Entry{}, fmt.Errorf("append result: %w", err)
	}
	return e, nil
}

func (a *Aggregator) History(ctx context.Context, learnerID string) ([]Entry, error) {
	return a.store.History(ctx, learnerID)
}

func (a *Aggregator) Count(ctx context.Context, learnerID string) (int, error) {
	h, err := a.store.History(ctx, learnerID)
	return len(h), err
}

func (a *Aggregator) Average(ctx context.Context, learnerID string) (int, error) {
	h, err := a.store.History(ctx, learnerID)
	if err != nil {
		return 0, err
	}
	return Average(h), nil
}

func (a *Aggregator) Summary(ctx context.Context, learnerID string) (Summary, error) {
	h, err := a.store.History(ctx, learnerID)
	if err != nil {
		return Summary{}, err
	}
	if h == nil {
		h = []Entry{}
	}
	return Summary{Average: Average(h), Count: len(h), History: h}, nil
}

// Average is the mean of the unrounded entry percentages, rounded once at
// the end. Zero for an empty history.
func Average(entries []Entry) int {
	if len(entries) == 0 {
		return 0
	}
	sum := 0.0
	for _, e := range entries {
		sum += float64(e.Score) / float64(e.Total) * 100
	}
	return int(math.Round(sum / float64(len(entries))))
}
