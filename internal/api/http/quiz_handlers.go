package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mind-engage/mindengage-media/internal/quiz"
	"github.com/mind-engage/mindengage-media/internal/rbac"
)

// POST /api/quiz/session
func StartQuizHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := svc.Start(r.Context(), rbac.SubjectFromContext(r.Context()))
		writeJSON(w, http.StatusCreated, v)
	}
}

// GET /api/quiz/session
func GetQuizHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.Current(rbac.SubjectFromContext(r.Context()))
		if err != nil {
			quizError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

// POST /api/quiz/session/answers  {"question_id":3,"option":1}
//
// After the reveal the answer is ignored and applied is false.
func AnswerQuizHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			QuestionID *int `json:"question_id"`
			Option     *int `json:"option"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.QuestionID == nil || in.Option == nil {
			http.Error(w, "question_id and option required", http.StatusBadRequest)
			return
		}
		out, err := svc.Answer(r.Context(), rbac.SubjectFromContext(r.Context()), *in.QuestionID, *in.Option)
		if err != nil {
			quizError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// POST /api/quiz/session/submit
//
// With unanswered questions nothing happens and applied is false. On
// success the result is recorded and the response carries the feedback
// cue schedule.
func SubmitQuizHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.Submit(r.Context(), rbac.SubjectFromContext(r.Context()))
		if err != nil {
			quizError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// POST /api/quiz/session/reset
func ResetQuizHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Reset(r.Context(), rbac.SubjectFromContext(r.Context())))
	}
}

func quizError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, quiz.ErrNoSession):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, quiz.ErrUnknownQuestion), errors.Is(err, quiz.ErrOptionOutOfRange):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
