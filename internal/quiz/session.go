package quiz

import (
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mind-engage/mindengage-media/internal/audio"
	"github.com/mind-engage/mindengage-media/internal/schedule"
)

// FeedbackDelay separates the submit cue from the success/neutral cue. It
// is longer than the submit cue itself so the two never blur together.
const FeedbackDelay = 500 * time.Millisecond

var (
	ErrUnknownQuestion  = errors.New("question not in session")
	ErrOptionOutOfRange = errors.New("option out of range")
)

// CuePlayer is the sound side of a session. Play must not block.
type CuePlayer interface {
	Play(c audio.Cue)
}

type silent struct{}

func (silent) Play(audio.Cue) {}

// ScheduledCue is one step of the audio feedback after a submit.
type ScheduledCue struct {
	Cue   audio.Cue     `json:"cue"`
	Delay time.Duration `json:"-"`
	// DelayMS mirrors Delay for JSON clients.
	DelayMS int64 `json:"delay_ms"`
}

// FeedbackPlan is the cue sequence a submit with result r plays.
func FeedbackPlan(r Result) []ScheduledCue {
	verdict := audio.CueNeutral
	if r.Passed() {
		verdict = audio.CueSuccess
	}
	return []ScheduledCue{
		{Cue: audio.CueSubmit},
		{Cue: verdict, Delay: FeedbackDelay, DelayMS: FeedbackDelay.Milliseconds()},
	}
}

// Session is one learner's quiz run. Illegal transitions (answering after
// the reveal, submitting with gaps) are silent no-ops: the caller is
// expected to have disabled the control.
type Session struct {
	bank  *Bank
	rng   *rand.Rand
	cues  CuePlayer
	sched schedule.Scheduler
	now   func() time.Time

	mu        sync.Mutex
	id        string // current attempt; every Reset starts a new one
	questions []Question
	answers   map[int]int
	revealed  bool
	result    *Result
}

type SessionOption func(*Session)

func WithRand(r *rand.Rand) SessionOption { return func(s *Session) { s.rng = r } }

func WithCues(c CuePlayer) SessionOption { return func(s *Session) { s.cues = c } }

func WithScheduler(sc schedule.Scheduler) SessionOption {
	return func(s *Session) { s.sched = sc }
}

func WithClock(now func() time.Time) SessionOption { return func(s *Session) { s.now = now } }

// NewSession returns a session in the selecting state; call Start to draw
// the first subset.
func NewSession(id string, bank *Bank, opts ...SessionOption) *Session {
	s := &Session{
		id:      id,
		bank:    bank,
		cues:    silent{},
		sched:   schedule.Real{},
		now:     time.Now,
		answers: map[int]int{},
	}
	for _, o := range opts {
		o(s)
	}
	if s.cues == nil {
		s.cues = silent{}
	}
	return s
}

// Start draws a fresh subset and clears answers and the reveal. It is also
// the reset transition; no cue plays. Each restart gets a new attempt id.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.questions != nil {
		s.id = uuid.NewString()
	}
	s.questions = s.bank.Select(s.rng)
	s.answers = map[int]int{}
	s.revealed = false
	s.result = nil
}

func (s *Session) Reset() { s.Start() }

// ID identifies the current attempt.
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() State {
	switch {
	case s.questions == nil:
		return StateSelecting
	case s.revealed:
		return StateRevealed
	default:
		return StateAnswering
	}
}

// SelectAnswer records option for a question, replacing any earlier pick,
// and plays the click cue. It reports false without changing anything once
// the session is revealed or before it has started.
func (s *Session) SelectAnswer(questionID, option int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stateLocked() != StateAnswering {
		return false, nil
	}
	q, ok := s.questionLocked(questionID)
	if !ok {
		return false, ErrUnknownQuestion
	}
	if option < 0 || option >= len(q.Options) {
		return false, ErrOptionOutOfRange
	}
	s.answers[questionID] = option
	s.cues.Play(audio.CueClick)
	return true, nil
}

// Submit reveals the session once every question has an answer. It plays
// the submit cue now and the verdict cue after FeedbackDelay. With any
// question unanswered it reports false and leaves the session untouched.
func (s *Session) Submit() (Result, bool) {
	r, ok, _ := s.SubmitFunc(nil)
	return r, ok
}

// SubmitFunc is Submit with a commit step. commit runs under the session
// lock after scoring and before the reveal; if it fails the session stays
// answering, no cue plays, and the error is returned with ok false.
func (s *Session) SubmitFunc(commit func(Result) error) (Result, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stateLocked() != StateAnswering || len(s.answers) < len(s.questions) {
		return Result{}, false, nil
	}
	score := 0
	for _, q := range s.questions {
		if a, ok := s.answers[q.ID]; ok && a == q.Correct {
			score++
		}
	}
	r := Result{SessionID: s.id, Score: score, Total: len(s.questions), CompletedAt: s.now()}
	if commit != nil {
		if err := commit(r); err != nil {
			return Result{}, false, err
		}
	}
	s.revealed = true
	s.result = &r

	for _, step := range FeedbackPlan(r) {
		if step.Delay == 0 {
			s.cues.Play(step.Cue)
			continue
		}
		cue := step.Cue
		s.sched.AfterFunc(step.Delay, func() { s.cues.Play(cue) })
	}
	return r, true, nil
}

func (s *Session) questionLocked(id int) (Question, bool) {
	for _, q := range s.questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Snapshot is a consistent copy of the session for projections.
type Snapshot struct {
	ID        string
	State     State
	Questions []Question
	Answers   map[int]int
	Result    *Result
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	answers := make(map[int]int, len(s.answers))
	for k, v := range s.answers {
		answers[k] = v
	}
	snap := Snapshot{
		ID:        s.id,
		State:     s.stateLocked(),
		Questions: append([]Question(nil), s.questions...),
		Answers:   answers,
	}
	if s.result != nil {
		r := *s.result
		snap.Result = &r
	}
	return snap
}
