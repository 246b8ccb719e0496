package quiz

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestCourseBankIsWellFormed(t *testing.T) {
	b := CourseBank()
	if b.Len() != 22 {
		t.Fatalf("bank size = %d, want 22", b.Len())
	}
	for id := 1; id <= 22; id++ {
		q, ok := b.Get(id)
		if !ok {
			t.Fatalf("question %d missing", id)
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) || q.Explanation == "" {
			t.Errorf("question %d malformed: %+v", id, q)
		}
	}
}

func TestNewBankRejectsBadQuestions(t *testing.T) {
	opts := []string{"a", "b", "c", "d"}
	cases := map[string][]Question{
		"duplicate": {{ID: 1, Options: opts}, {ID: 1, Options: opts}},
		"range":     {{ID: 1, Options: opts, Correct: 4}},
		"negative":  {{ID: 1, Options: opts, Correct: -1}},
		"options":   {{ID: 1, Options: opts[:3]}},
	}
	for name, qs := range cases {
		if _, err := NewBank(qs); !errors.Is(err, ErrInvalidQuestion) {
			t.Errorf("%s: err = %v", name, err)
		}
	}
}

func TestSelectDrawsDistinctSubset(t *testing.T) {
	b := CourseBank()
	rng := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 200; trial++ {
		qs := b.Select(rng)
		if len(qs) != SubsetSize {
			t.Fatalf("subset size = %d", len(qs))
		}
		seen := map[int]bool{}
		for _, q := range qs {
			if seen[q.ID] {
				t.Fatalf("duplicate question %d in %v", q.ID, qs)
			}
			if _, ok := b.Get(q.ID); !ok {
				t.Fatalf("question %d not from bank", q.ID)
			}
			seen[q.ID] = true
		}
	}
}

func TestSelectSmallBank(t *testing.T) {
	opts := []string{"a", "b", "c", "d"}
	b, err := NewBank([]Question{{ID: 1, Options: opts}, {ID: 2, Options: opts}})
	if err != nil {
		t.Fatal(err)
	}
	if got := len(b.Select(nil)); got != 2 {
		t.Fatalf("subset size = %d, want 2", got)
	}
}

func TestSelectIsRoughlyUniform(t *testing.T) {
	const trials = 22000
	b := CourseBank()
	rng := rand.New(rand.NewPCG(42, 7))
	counts := map[int]int{}
	for i := 0; i < trials; i++ {
		for _, q := range b.Select(rng) {
			counts[q.ID]++
		}
	}
	want := trials * SubsetSize / b.Len() // 5000
	for id := 1; id <= b.Len(); id++ {
		if c := counts[id]; c < want*9/10 || c > want*11/10 {
			t.Errorf("question %d drawn %d times, want about %d", id, c, want)
		}
	}
}

func TestSelectDoesNotMutateBank(t *testing.T) {
	b := CourseBank()
	b.Select(rand.New(rand.NewPCG(3, 4)))
	for i, q := range b.questions {
		if q.ID != i+1 {
			t.Fatalf("bank order changed at %d: id %d", i, q.ID)
		}
	}
}
