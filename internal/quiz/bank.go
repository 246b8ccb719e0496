package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

const (
	// SubsetSize is how many questions one session draws.
	SubsetSize = 5
	// PassPercent is the score that earns the success cue.
	PassPercent = 70
)

var ErrInvalidQuestion = errors.New("invalid question")

// Bank is an immutable set of questions.
type Bank struct {
	questions []Question
	byID      map[int]int
}

func NewBank(qs []Question) (*Bank, error) {
	b := &Bank{questions: make([]Question, len(qs)), byID: make(map[int]int, len(qs))}
	for i, q := range qs {
		if _, dup := b.byID[q.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidQuestion, q.ID)
		}
		if len(q.Options) != 4 {
			return nil, fmt.Errorf("%w: question %d has %d options", ErrInvalidQuestion, q.ID, len(q.Options))
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			return nil, fmt.Errorf("%w: question %d correct index %d out of range", ErrInvalidQuestion, q.ID, q.Correct)
		}
		q.Options = append([]string(nil), q.Options...)
		b.questions[i] = q
		b.byID[q.ID] = i
	}
	return b, nil
}

// CourseBank is the 22-question multimedia bank.
func CourseBank() *Bank {
	b, err := NewBank(courseQuestions)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Bank) Len() int { return len(b.questions) }

func (b *Bank) Get(id int) (Question, bool) {
	i, ok := b.byID[id]
	if !ok {
		return Question{}, false
	}
	return b.questions[i], true
}

// Select draws min(SubsetSize, Len()) distinct questions. The permutation
// is a Fisher-Yates shuffle, so every subset is equally likely. A nil rng
// uses the process-wide source.
func (b *Bank) Select(rng *rand.Rand) []Question {
	shuffled := append([]Question(nil), b.questions...)
	swap := func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] }
	if rng != nil {
		rng.Shuffle(len(shuffled), swap)
	} else {
		rand.Shuffle(len(shuffled), swap)
	}
	return shuffled[:min(SubsetSize, len(shuffled))]
}
