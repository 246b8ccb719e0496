package quiz

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mind-engage/mindengage-media/internal/audio"
	"github.com/mind-engage/mindengage-media/internal/results"
	"github.com/mind-engage/mindengage-media/internal/schedule"
	syncx "github.com/mind-engage/mindengage-media/internal/sync"
)

type eventSink struct {
	events []syncx.Event
	err    error
}

func (s *eventSink) Append(_ context.Context, e syncx.Event) error {
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, e)
	return nil
}

type failingRecorder struct{}

func (failingRecorder) Record(context.Context, string, int, int, time.Time) (results.Entry, error) {
	return results.Entry{}, errors.New("disk full")
}

func newTestService() (*Service, *results.Aggregator, *eventSink, *cueLog, *schedule.Manual) {
	clock := schedule.NewManual()
	cues := &cueLog{clock: clock}
	agg := results.NewAggregator(results.NewMemoryStore())
	events := &eventSink{}
	svc := &Service{
		Bank:      CourseBank(),
		Sessions:  NewMemoryStore(),
		Cues:      cues,
		Scheduler: clock,
		Results:   agg,
		Events:    events,
		Now:       func() time.Time { return fixedNow },
	}
	return svc, agg, events, cues, clock
}

func answerView(t *testing.T, svc *Service, learner string, correct int) {
	t.Helper()
	sess, ok := svc.Sessions.Get(learner)
	if !ok {
		t.Fatal("no session")
	}
	for i, q := range sess.Snapshot().Questions {
		opt := q.Correct
		if i >= correct {
			opt = (q.Correct + 1) % 4
		}
		out, err := svc.Answer(context.Background(), learner, q.ID, opt)
		if err != nil || !out.Applied {
			t.Fatalf("answer %d: %+v %v", q.ID, out, err)
		}
	}
}

func TestServiceWithoutSession(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()
	if _, err := svc.Current("nobody"); !errors.Is(err, ErrNoSession) {
		t.Fatalf("Current err = %v", err)
	}
	if _, err := svc.Answer(ctx, "nobody", 1, 0); !errors.Is(err, ErrNoSession) {
		t.Fatalf("Answer err = %v", err)
	}
	if _, err := svc.Submit(ctx, "nobody"); !errors.Is(err, ErrNoSession) {
		t.Fatalf("Submit err = %v", err)
	}
}

func TestServiceRoundTrip(t *testing.T) {
	svc, agg, events, cues, clock := newTestService()
	ctx := context.Background()

	v := svc.Start(ctx, "ana")
	if v.State != StateAnswering || v.Total != SubsetSize {
		t.Fatalf("start view = %+v", v)
	}

	// an incomplete submit changes nothing
	out, err := svc.Submit(ctx, "ana")
	if err != nil || out.Applied || out.Result != nil {
		t.Fatalf("early submit = %+v, %v", out, err)
	}

	answerView(t, svc, "ana", 4)
	out, err = svc.Submit(ctx, "ana")
	if err != nil || !out.Applied {
		t.Fatalf("submit = %+v, %v", out, err)
	}
	if out.Result == nil || out.Result.Score != 4 || out.Result.Total != 5 || out.Result.LearnerID != "ana" {
		t.Fatalf("result = %+v", out.Result)
	}
	if len(out.Feedback) != 2 || out.Feedback[1].Cue != audio.CueSuccess {
		t.Fatalf("feedback = %+v", out.Feedback)
	}
	if out.Session.State != StateRevealed || *out.Session.Percentage != 80 {
		t.Fatalf("session = %+v", out.Session)
	}

	clock.Advance(FeedbackDelay)
	if last := cues.plays[len(cues.plays)-1]; last.cue != audio.CueSuccess {
		t.Fatalf("last cue = %s", last.cue)
	}

	sum, err := agg.Summary(ctx, "ana")
	if err != nil || sum.Count != 1 || sum.Average != 80 {
		t.Fatalf("summary = %+v, %v", sum, err)
	}
	if len(events.events) != 1 || events.events[0].Type != syncx.TypeQuizSubmitted {
		t.Fatalf("events = %+v", events.events)
	}

	// revealed: a second submit and further answers are not applied
	out, err = svc.Submit(ctx, "ana")
	if err != nil || out.Applied {
		t.Fatalf("second submit = %+v, %v", out, err)
	}
	q := out.Session.Questions[0]
	ans, err := svc.Answer(ctx, "ana", q.ID, 0)
	if err != nil || ans.Applied {
		t.Fatalf("answer after reveal = %+v, %v", ans, err)
	}
	if n, _ := agg.Count(ctx, "ana"); n != 1 {
		t.Fatalf("count = %d", n)
	}
}

func TestServiceResetKeepsHistory(t *testing.T) {
	svc, agg, _, _, _ := newTestService()
	ctx := context.Background()

	v := svc.Reset(ctx, "bia")
	if v.State != StateAnswering {
		t.Fatalf("reset without session = %+v", v)
	}
	answerView(t, svc, "bia", 3)
	if _, err := svc.Submit(ctx, "bia"); err != nil {
		t.Fatal(err)
	}

	v = svc.Reset(ctx, "bia")
	if v.State != StateAnswering || v.Answered != 0 {
		t.Fatalf("reset view = %+v", v)
	}
	cur, err := svc.Current("bia")
	if err != nil || cur.ID != v.ID {
		t.Fatalf("current = %+v, %v", cur, err)
	}
	out, _ := svc.Submit(ctx, "bia")
	if out.Applied {
		t.Fatal("submit after reset applied")
	}
	if sum, _ := agg.Summary(ctx, "bia"); sum.Count != 1 || sum.Average != 60 {
		t.Fatalf("summary = %+v", sum)
	}
}

func TestServiceAnswerErrors(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()
	v := svc.Start(ctx, "caio")
	if _, err := svc.Answer(ctx, "caio", 999, 0); !errors.Is(err, ErrUnknownQuestion) {
		t.Fatalf("err = %v", err)
	}
	if _, err := svc.Answer(ctx, "caio", v.Questions[0].ID, 7); !errors.Is(err, ErrOptionOutOfRange) {
		t.Fatalf("err = %v", err)
	}
}

func TestServiceRecorderFailureKeepsSessionOpen(t *testing.T) {
	svc, agg, events, cues, clock := newTestService()
	working := svc.Results
	svc.Results = failingRecorder{}
	ctx := context.Background()
	svc.Start(ctx, "davi")
	answerView(t, svc, "davi", 5)
	cues.plays = nil

	if _, err := svc.Submit(ctx, "davi"); err == nil {
		t.Fatal("expected recorder error")
	}
	clock.Advance(time.Second)
	if len(events.events) != 0 {
		t.Fatal("event logged for unrecorded result")
	}
	if len(cues.plays) != 0 {
		t.Fatalf("cues played for unrecorded result: %v", cues.cues())
	}
	v, _ := svc.Current("davi")
	if v.State != StateAnswering || v.Answered != SubsetSize || v.Score != nil {
		t.Fatalf("session after failed record = %+v", v)
	}

	svc.Results = working
	out, err := svc.Submit(ctx, "davi")
	if err != nil || !out.Applied || out.Result == nil || out.Result.Score != 5 {
		t.Fatalf("retry = %+v, %v", out, err)
	}
	if n, _ := agg.Count(ctx, "davi"); n != 1 {
		t.Fatalf("count = %d, want 1", n)
	}
	if got := cues.cues(); len(got) != 1 || got[0] != audio.CueSubmit {
		t.Fatalf("cues after retry = %v", got)
	}
}

func TestServiceEventKeyPerAttempt(t *testing.T) {
	svc, _, events, _, _ := newTestService()
	ctx := context.Background()
	first := svc.Start(ctx, "fabi")
	for i := 0; i < 2; i++ {
		answerView(t, svc, "fabi", 5)
		if out, err := svc.Submit(ctx, "fabi"); err != nil || !out.Applied {
			t.Fatalf("submit %d = %+v, %v", i, out, err)
		}
		svc.Reset(ctx, "fabi")
	}
	if len(events.events) != 2 {
		t.Fatalf("events = %d", len(events.events))
	}
	if events.events[0].Key != first.ID || events.events[1].Key == first.ID {
		t.Fatalf("event keys = %q, %q (first attempt %q)", events.events[0].Key, events.events[1].Key, first.ID)
	}
}

func TestServiceEventFailureIsNotFatal(t *testing.T) {
	svc, _, events, _, _ := newTestService()
	events.err = errors.New("locked")
	ctx := context.Background()
	svc.Start(ctx, "eva")
	answerView(t, svc, "eva", 5)
	out, err := svc.Submit(ctx, "eva")
	if err != nil || !out.Applied {
		t.Fatalf("submit = %+v, %v", out, err)
	}
}

// Two learners never share a session.
func TestServiceIsolatesLearners(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()
	a := svc.Start(ctx, "a")
	b := svc.Start(ctx, "b")
	if a.ID == b.ID {
		t.Fatal("shared session id")
	}
	answerView(t, svc, "a", 5)
	if v, _ := svc.Current("b"); v.Answered != 0 {
		t.Fatalf("learner b saw a's answers: %+v", v)
	}
}
