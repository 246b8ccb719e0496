package quiz

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/mind-engage/mindengage-media/internal/audio"
	"github.com/mind-engage/mindengage-media/internal/schedule"
)

type cueLog struct {
	clock *schedule.Manual
	plays []played
}

type played struct {
	cue audio.Cue
	at  time.Duration
}

func (l *cueLog) Play(c audio.Cue) { l.plays = append(l.plays, played{c, l.clock.Elapsed()}) }

func (l *cueLog) cues() []audio.Cue {
	out := make([]audio.Cue, len(l.plays))
	for i, p := range l.plays {
		out[i] = p.cue
	}
	return out
}

var fixedNow = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

func newTestSession(t *testing.T) (*Session, *cueLog, *schedule.Manual) {
	t.Helper()
	clock := schedule.NewManual()
	cues := &cueLog{clock: clock}
	s := NewSession("s1", CourseBank(),
		WithRand(rand.New(rand.NewPCG(11, 13))),
		WithCues(cues),
		WithScheduler(clock),
		WithClock(func() time.Time { return fixedNow }),
	)
	s.Start()
	return s, cues, clock
}

// answerAll answers every question, getting the first `correct` of them right.
func answerAll(t *testing.T, s *Session, correct int) {
	t.Helper()
	for i, q := range s.Snapshot().Questions {
		opt := q.Correct
		if i >= correct {
			opt = (q.Correct + 1) % len(q.Options)
		}
		if ok, err := s.SelectAnswer(q.ID, opt); !ok || err != nil {
			t.Fatalf("SelectAnswer(%d,%d) = %v, %v", q.ID, opt, ok, err)
		}
	}
}

func TestNewSessionStartsInSelecting(t *testing.T) {
	s := NewSession("s0", CourseBank())
	if s.State() != StateSelecting {
		t.Fatalf("state = %s", s.State())
	}
	if ok, err := s.SelectAnswer(1, 0); ok || err != nil {
		t.Fatalf("answer before start = %v, %v", ok, err)
	}
	if _, ok := s.Submit(); ok {
		t.Fatal("submit before start should be a no-op")
	}
}

func TestStartDrawsFiveQuestions(t *testing.T) {
	s, _, _ := newTestSession(t)
	snap := s.Snapshot()
	if snap.State != StateAnswering || len(snap.Questions) != SubsetSize || len(snap.Answers) != 0 {
		t.Fatalf("snapshot = %+v", snap)
	}
}

func TestSubmitWithGapsIsNoop(t *testing.T) {
	s, cues, clock := newTestSession(t)
	qs := s.Snapshot().Questions
	for _, q := range qs[:SubsetSize-1] {
		if _, err := s.SelectAnswer(q.ID, 0); err != nil {
			t.Fatal(err)
		}
	}
	if _, ok := s.Submit(); ok {
		t.Fatal("submit with a missing answer should be ignored")
	}
	clock.Advance(time.Second)
	if s.State() != StateAnswering {
		t.Fatalf("state = %s", s.State())
	}
	for _, c := range cues.cues() {
		if c != audio.CueClick {
			t.Fatalf("unexpected cue %s", c)
		}
	}
}

func TestSelectAnswerOverwrites(t *testing.T) {
	s, cues, _ := newTestSession(t)
	q := s.Snapshot().Questions[0]
	_, _ = s.SelectAnswer(q.ID, 0)
	_, _ = s.SelectAnswer(q.ID, 3)
	if got := s.Snapshot().Answers[q.ID]; got != 3 {
		t.Fatalf("answer = %d, want 3", got)
	}
	if len(cues.plays) != 2 {
		t.Fatalf("clicks = %d, want 2", len(cues.plays))
	}
}

func TestSelectAnswerValidation(t *testing.T) {
	s, cues, _ := newTestSession(t)
	q := s.Snapshot().Questions[0]
	if _, err := s.SelectAnswer(999, 0); !errors.Is(err, ErrUnknownQuestion) {
		t.Fatalf("unknown question err = %v", err)
	}
	if _, err := s.SelectAnswer(q.ID, 4); !errors.Is(err, ErrOptionOutOfRange) {
		t.Fatalf("range err = %v", err)
	}
	if _, err := s.SelectAnswer(q.ID, -1); !errors.Is(err, ErrOptionOutOfRange) {
		t.Fatalf("negative err = %v", err)
	}
	if len(cues.plays) != 0 || len(s.Snapshot().Answers) != 0 {
		t.Fatal("rejected answers must not click or record")
	}
}

func TestSubmitScoresAndPlaysSuccess(t *testing.T) {
	s, cues, clock := newTestSession(t)
	answerAll(t, s, 4)
	cues.plays = nil

	r, ok := s.Submit()
	if !ok {
		t.Fatal("submit rejected")
	}
	if r.Score != 4 || r.Total != 5 || r.Percentage() != 80 || !r.CompletedAt.Equal(fixedNow) {
		t.Fatalf("result = %+v", r)
	}
	if s.State() != StateRevealed {
		t.Fatalf("state = %s", s.State())
	}
	if got := cues.cues(); len(got) != 1 || got[0] != audio.CueSubmit {
		t.Fatalf("immediate cues = %v", got)
	}

	clock.Advance(FeedbackDelay - time.Millisecond)
	if len(cues.plays) != 1 {
		t.Fatal("verdict played early")
	}
	clock.Advance(time.Millisecond)
	if len(cues.plays) != 2 || cues.plays[1].cue != audio.CueSuccess || cues.plays[1].at != FeedbackDelay {
		t.Fatalf("plays = %+v", cues.plays)
	}
}

func TestSubmitBelowThresholdPlaysNeutral(t *testing.T) {
	s, cues, clock := newTestSession(t)
	answerAll(t, s, 3)
	r, _ := s.Submit()
	clock.Advance(FeedbackDelay)
	if r.Score != 3 || r.Percentage() != 60 {
		t.Fatalf("result = %+v", r)
	}
	last := cues.plays[len(cues.plays)-1]
	if last.cue != audio.CueNeutral {
		t.Fatalf("verdict = %s", last.cue)
	}
}

func TestRevealFreezesAnswers(t *testing.T) {
	s, cues, _ := newTestSession(t)
	answerAll(t, s, 5)
	s.Submit()
	before := s.Snapshot().Answers
	n := len(cues.plays)

	q := s.Snapshot().Questions[0]
	ok, err := s.SelectAnswer(q.ID, (q.Correct+1)%4)
	if ok || err != nil {
		t.Fatalf("answer after reveal = %v, %v", ok, err)
	}
	if s.Snapshot().Answers[q.ID] != before[q.ID] || len(cues.plays) != n {
		t.Fatal("revealed session changed")
	}
	if _, ok := s.Submit(); ok {
		t.Fatal("second submit should be ignored")
	}
}

func TestResetAfterReveal(t *testing.T) {
	s, cues, _ := newTestSession(t)
	answerAll(t, s, 2)
	s.Submit()
	n := len(cues.plays)

	s.Reset()
	snap := s.Snapshot()
	if snap.State != StateAnswering || len(snap.Answers) != 0 || len(snap.Questions) != SubsetSize || snap.Result != nil {
		t.Fatalf("after reset = %+v", snap)
	}
	if len(cues.plays) != n {
		t.Fatal("reset should not play a cue")
	}

	if _, ok := s.Submit(); ok {
		t.Fatal("submit straight after reset should be a no-op")
	}
	if s.State() != StateAnswering || len(s.Snapshot().Answers) != 0 {
		t.Fatal("session changed by empty submit")
	}
}

func TestScoreBounds(t *testing.T) {
	for correct := 0; correct <= SubsetSize; correct++ {
		s, _, _ := newTestSession(t)
		answerAll(t, s, correct)
		r, ok := s.Submit()
		if !ok || r.Score != correct {
			t.Fatalf("correct=%d: result %+v ok=%v", correct, r, ok)
		}
	}
}

func TestFeedbackPlan(t *testing.T) {
	cases := []struct {
		score int
		want  audio.Cue
	}{{5, audio.CueSuccess}, {4, audio.CueSuccess}, {3, audio.CueNeutral}, {0, audio.CueNeutral}}
	for _, c := range cases {
		plan := FeedbackPlan(Result{Score: c.score, Total: 5})
		if len(plan) != 2 || plan[0].Cue != audio.CueSubmit || plan[0].Delay != 0 {
			t.Fatalf("plan = %+v", plan)
		}
		if plan[1].Cue != c.want || plan[1].DelayMS != 500 {
			t.Errorf("score %d: verdict %+v", c.score, plan[1])
		}
	}
}

func TestResultPassedUsesExactThreshold(t *testing.T) {
	if !(Result{Score: 7, Total: 10}).Passed() {
		t.Fatal("7/10 is exactly 70%")
	}
	if (Result{Score: 69, Total: 100}).Passed() {
		t.Fatal("69% should not pass")
	}
	if (Result{}).Passed() {
		t.Fatal("empty result should not pass")
	}
}

func TestSubmitFuncFailureLeavesSessionAnswering(t *testing.T) {
	s, cues, clock := newTestSession(t)
	answerAll(t, s, 4)
	cues.plays = nil

	_, ok, err := s.SubmitFunc(func(Result) error { return errors.New("write failed") })
	if ok || err == nil {
		t.Fatalf("SubmitFunc = %v, %v", ok, err)
	}
	clock.Advance(time.Second)
	if s.State() != StateAnswering || len(cues.plays) != 0 || s.Snapshot().Result != nil {
		t.Fatal("failed commit changed the session")
	}

	var committed Result
	r, ok, err := s.SubmitFunc(func(r Result) error { committed = r; return nil })
	if !ok || err != nil || committed != r || r.Score != 4 || r.SessionID != "s1" {
		t.Fatalf("retry = %+v %v %v, committed %+v", r, ok, err, committed)
	}
	if s.State() != StateRevealed {
		t.Fatalf("state = %s", s.State())
	}
}

func TestResetStartsNewAttempt(t *testing.T) {
	s, _, _ := newTestSession(t)
	first := s.ID()
	if first != "s1" {
		t.Fatalf("first attempt id = %q", first)
	}
	s.Reset()
	if s.ID() == first || s.Snapshot().ID != s.ID() {
		t.Fatalf("attempt id after reset = %q", s.ID())
	}
}
