package quiz

import (
	"time"

	"github.com/mind-engage/mindengage-media/internal/results"
)

type Question struct {
	ID          int      `json:"id"`
	Prompt      string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct_answer"`
	Explanation string   `json:"explanation"`
	ImageURL    string   `json:"image_url,omitempty"`
}

type State string

const (
	StateSelecting State = "selecting" // no subset drawn yet
	StateAnswering State = "answering"
	StateRevealed  State = "revealed"
)

// Result is the outcome of one submitted session.
type Result struct {
	SessionID   string    `json:"session_id"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	CompletedAt time.Time `json:"completed_at"`
}

func (r Result) Percentage() int { return results.Percentage(r.Score, r.Total) }

// Passed reports score/total >= 70%, compared exactly on integers.
func (r Result) Passed() bool { return r.Total > 0 && r.Score*100 >= PassPercent*r.Total }
