package quiz

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/mind-engage/mindengage-media/internal/results"
	"github.com/mind-engage/mindengage-media/internal/schedule"
	syncx "github.com/mind-engage/mindengage-media/internal/sync"
)

var ErrNoSession = errors.New("no quiz session")

// Recorder receives every completed session.
type Recorder interface {
	Record(ctx context.Context, learnerID string, score, total int, at time.Time) (results.Entry, error)
}

type EventSink interface {
	Append(ctx context.Context, e syncx.Event) error
}

// Service runs one session per learner and forwards finished ones to the
// results history.
type Service struct {
	Bank      *Bank
	Sessions  Store
	Cues      CuePlayer
	Scheduler schedule.Scheduler
	Results   Recorder
	Events    EventSink // optional
	Now       func() time.Time
}

// SubmitOutcome is what a submit produced. Applied is false when the
// session still had unanswered questions or was already revealed.
type SubmitOutcome struct {
	Applied  bool           `json:"applied"`
	Session  View           `json:"session"`
	Result   *results.Entry `json:"result,omitempty"`
	Feedback []ScheduledCue `json:"feedback,omitempty"`
}

type AnswerOutcome struct {
	Applied bool `json:"applied"`
	Session View `json:"session"`
}

func (s *Service) newSession() *Session {
	opts := []SessionOption{WithCues(s.Cues)}
	if s.Scheduler != nil {
		opts = append(opts, WithScheduler(s.Scheduler))
	}
	if s.Now != nil {
		opts = append(opts, WithClock(s.Now))
	}
	return NewSession(uuid.NewString(), s.Bank, opts...)
}

// Start begins a session for the learner, replacing any existing one.
func (s *Service) Start(_ context.Context, learnerID string) View {
	sess := s.newSession()
	sess.Start()
	s.Sessions.Put(learnerID, sess)
	return sess.Snapshot().View()
}

// Reset draws a fresh subset for the learner's session, or starts one.
func (s *Service) Reset(ctx context.Context, learnerID string) View {
	sess, ok := s.Sessions.Get(learnerID)
	if !ok {
		return s.Start(ctx, learnerID)
	}
	sess.Reset()
	return sess.Snapshot().View()
}

func (s *Service) Current(learnerID string) (View, error) {
	sess, ok := s.Sessions.Get(learnerID)
	if !ok {
		return View{}, ErrNoSession
	}
	return sess.Snapshot().View(), nil
}

func (s *Service) Answer(_ context.Context, learnerID string, questionID, option int) (AnswerOutcome, error) {
	sess, ok := s.Sessions.Get(learnerID)
	if !ok {
		return AnswerOutcome{}, ErrNoSession
	}
	applied, err := sess.SelectAnswer(questionID, option)
	if err != nil {
		return AnswerOutcome{}, err
	}
	return AnswerOutcome{Applied: applied, Session: sess.Snapshot().View()}, nil
}

func (s *Service) Submit(ctx context.Context, learnerID string) (SubmitOutcome, error) {
	sess, ok := s.Sessions.Get(learnerID)
	if !ok {
		return SubmitOutcome{}, ErrNoSession
	}
	var entry results.Entry
	r, applied, err := sess.SubmitFunc(func(r Result) error {
		var err error
		entry, err = s.Results.Record(ctx, learnerID, r.Score, r.Total, r.CompletedAt)
		return err
	})
	if err != nil {
		return SubmitOutcome{}, err
	}
	out := SubmitOutcome{Applied: applied, Session: sess.Snapshot().View()}
	if !applied {
		return out, nil
	}
	out.Result = &entry
	out.Feedback = FeedbackPlan(r)

	if s.Events != nil {
		ev, err := syncx.NewEvent(syncx.TypeQuizSubmitted, r.SessionID, entry)
		if err == nil {
			err = s.Events.Append(ctx, ev)
		}
		if err != nil {
			log.Printf("quiz: event log append for session %s: %v", r.SessionID, err)
		}
	}
	return out, nil
}
