package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	authmw "github.com/mind-engage/mindengage-media/internal/auth/middleware"
	"github.com/mind-engage/mindengage-media/internal/rbac"
)

const (
	guestCookie    = "me_guest_id"
	guestCookieTTL = 30 * 24 * time.Hour
)

// GuestLoginHandler issues a learner token. A browser that already holds a
// guest cookie keeps its learner id, and with it its result history.
func GuestLoginHandler(a *authmw.AuthService, secureCookie bool) http.HandlerFunc {
	type out struct {
		AccessToken string `json:"access_token"`
		LearnerID   string `json:"learner_id"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		learnerID := ""
		if c, err := r.Cookie(guestCookie); err == nil {
			if id, err := uuid.Parse(c.Value); err == nil {
				learnerID = id.String()
			}
		}
		if learnerID == "" {
			learnerID = uuid.NewString()
		}

		tok, err := a.IssueJWT(learnerID, rbac.RoleLearner)
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		sameSite := http.SameSiteLaxMode
		if secureCookie {
			sameSite = http.SameSiteNoneMode
		}
		http.SetCookie(w, &http.Cookie{
			Name:     guestCookie,
			Value:    learnerID,
			Path:     "/",
			HttpOnly: true,
			Secure:   secureCookie,
			SameSite: sameSite,
			Expires:  time.Now().Add(guestCookieTTL),
		})
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out{AccessToken: tok, LearnerID: learnerID})
	}
}
