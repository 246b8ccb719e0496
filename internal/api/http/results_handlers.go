package http

import (
	"net/http"
	"strings"

	"github.com/mind-engage/mindengage-media/internal/results"
	"github.com/mind-engage/mindengage-media/internal/rbac"
	syncx "github.com/mind-engage/mindengage-media/internal/sync"
)

// learnerParam is ?learner_id=, defaulting to the caller.
func learnerParam(r *http.Request) string {
	if id := strings.TrimSpace(r.URL.Query().Get("learner_id")); id != "" {
		return id
	}
	return rbac.SubjectFromContext(r.Context())
}

// IsResultsOwner reports whether the request asks for the caller's own
// history.
func IsResultsOwner(r *http.Request) bool {
	return learnerParam(r) == rbac.SubjectFromContext(r.Context())
}

// GET /api/results?learner_id=...
// RBAC: results:view-own for the caller's history (router checks
// ownership), results:view-all for anyone else's.
func ResultsSummaryHandler(agg *results.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := agg.Summary(r.Context(), learnerParam(r))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, s)
	}
}

// GET /api/admin/results?learner_id=...  (learner_id required)
func AdminResultsHandler(agg *results.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.URL.Query().Get("learner_id"))
		if id == "" {
			http.Error(w, "learner_id required", http.StatusBadRequest)
			return
		}
		s, err := agg.Summary(r.Context(), id)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, s)
	}
}

// GET /api/admin/events?after=0&limit=100
func ListEventsHandler(repo *syncx.EventRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		after := parseIntDefault(r.URL.Query().Get("after"), 0)
		limit := parseIntDefault(r.URL.Query().Get("limit"), 100)
		evs, err := repo.Since(r.Context(), int64(after), limit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if evs == nil {
			evs = []syncx.Event{}
		}
		writeJSON(w, http.StatusOK, evs)
	}
}
