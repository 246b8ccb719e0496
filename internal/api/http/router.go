package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mind-engage/mindengage-media/internal/auth"
	authmw "github.com/mind-engage/mindengage-media/internal/auth/middleware"
	"github.com/mind-engage/mindengage-media/internal/proxy"
	"github.com/mind-engage/mindengage-media/internal/quiz"
	"github.com/mind-engage/mindengage-media/internal/rbac"
	"github.com/mind-engage/mindengage-media/internal/results"
	syncx "github.com/mind-engage/mindengage-media/internal/sync"
)

type Deps struct {
	Auth          *authmw.AuthService
	AdminUser     string
	AdminPassHash string
	SecureCookies bool
	CORSOrigins   []string

	Quiz       *quiz.Service
	Results    *results.Aggregator
	Events     *syncx.EventRepo // nil hides /api/admin/events
	Proxy      *proxy.Proxy
	Renderings *Renderings
	Ambient    AmbientHandlers
}

func NewRouter(d Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/guest", auth.GuestLoginHandler(d.Auth, d.SecureCookies))
	r.Post("/auth/login", authmw.LoginHandler(d.Auth, d.AdminUser, d.AdminPassHash))

	// Public media: browsers load these from <audio>/<img> tags without a
	// bearer header.
	r.Get("/api/audio-proxy/{fileID}", AudioProxyHandler(d.Proxy))
	r.Get("/api/narration/{section}", NarrationHandler())
	r.Get("/api/cues/{cue}", CueWAVHandler(d.Renderings))
	r.Get("/api/ambient/loop", AmbientLoopWAVHandler(d.Renderings))
	r.Route("/api/catalog", MountCatalog)

	r.Group(func(pr chi.Router) {
		pr.Use(authmw.JWTMiddleware(d.Auth))

		play := pr.With(rbac.Require("quiz:play"))
		play.Post("/api/quiz/session", StartQuizHandler(d.Quiz))
		play.Get("/api/quiz/session", GetQuizHandler(d.Quiz))
		play.Post("/api/quiz/session/answers", AnswerQuizHandler(d.Quiz))
		play.Post("/api/quiz/session/submit", SubmitQuizHandler(d.Quiz))
		play.Post("/api/quiz/session/reset", ResetQuizHandler(d.Quiz))

		pr.With(rbac.Require("results:view-own"), rbac.RequireOwnerOr("results:view-all", IsResultsOwner)).
			Get("/api/results", ResultsSummaryHandler(d.Results))
		pr.With(rbac.Require("results:view-all")).
			Get("/api/admin/results", AdminResultsHandler(d.Results))
		if d.Events != nil {
			pr.With(rbac.Require("events:view")).
				Get("/api/admin/events", ListEventsHandler(d.Events))
		}

		pr.Get("/api/ambient", d.Ambient.Status)
		ambient := pr.With(rbac.Require("ambient:control"))
		ambient.Post("/api/ambient/start", d.Ambient.Start)
		ambient.Post("/api/ambient/stop", d.Ambient.Stop)
		ambient.Post("/api/ambient/toggle", d.Ambient.Toggle)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	return r
}
