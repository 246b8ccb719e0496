package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"go.uber.org/fx"

	api "github.com/mind-engage/mindengage-media/internal/api/http"
	"github.com/mind-engage/mindengage-media/internal/audio"
	auth "github.com/mind-engage/mindengage-media/internal/auth/middleware"
	"github.com/mind-engage/mindengage-media/internal/config"
	"github.com/mind-engage/mindengage-media/internal/db"
	"github.com/mind-engage/mindengage-media/internal/proxy"
	"github.com/mind-engage/mindengage-media/internal/quiz"
	"github.com/mind-engage/mindengage-media/internal/results"
	"github.com/mind-engage/mindengage-media/internal/schedule"
	"github.com/mind-engage/mindengage-media/internal/storage"
	syncx "github.com/mind-engage/mindengage-media/internal/sync"
)

var configModule = fx.Provide(config.FromEnv)

var storageModule = fx.Provide(
	provideDB,
	provideResults,
	syncx.NewEventRepo,
	provideProxy,
)

var audioModule = fx.Provide(
	provideAudio,
	provideAmbient,
)

var serviceModule = fx.Provide(provideQuiz)

var httpModule = fx.Options(
	fx.Provide(provideRouter),
	fx.Invoke(startServer),
)

func provideDB(lc fx.Lifecycle, cfg config.Config) (*sql.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{OnStop: func(context.Context) error { return dbh.Close() }})
	return dbh, nil
}

func provideResults(dbh *sql.DB) *results.Aggregator {
	return results.NewAggregator(results.NewSQLStore(dbh))
}

func provideProxy(cfg config.Config) (*proxy.Proxy, error) {
	var cache storage.BlobStore
	if cfg.ProxyCache {
		fs, err := storage.NewFSStore(cfg.BlobBasePath)
		if err != nil {
			return nil, err
		}
		cache = fs
	}
	return proxy.New(cfg.ProxyUpstream, nil, cache), nil
}

// provideAudio opens the one output device of the process. A missing
// device is not fatal: the returned nil context plays nothing.
func provideAudio(lc fx.Lifecycle, cfg config.Config) *audio.Context {
	if cfg.AudioOutput != config.AudioDevice {
		log.Printf("audio: output %q, server-side playback off", cfg.AudioOutput)
		return nil
	}
	actx, err := audio.Open(cfg.AudioSampleRate)
	if err != nil {
		log.Printf("audio: %v, server-side playback off", err)
		return nil
	}
	lc.Append(fx.Hook{OnStop: func(context.Context) error { return actx.Close() }})
	log.Printf("audio: device open at %d Hz", cfg.AudioSampleRate)
	return actx
}

// provideAmbient registers after provideAudio, so its stop hook runs
// before the device closes.
func provideAmbient(lc fx.Lifecycle, actx *audio.Context) *audio.Ambient {
	a := audio.NewAmbient(actx.Graph(), schedule.Real{})
	lc.Append(fx.Hook{OnStop: func(context.Context) error {
		a.Close()
		return nil
	}})
	return a
}

func provideQuiz(actx *audio.Context, agg *results.Aggregator, events *syncx.EventRepo) *quiz.Service {
	return &quiz.Service{
		Bank:      quiz.CourseBank(),
		Sessions:  quiz.NewMemoryStore(),
		Cues:      audio.NewSoundBank(actx.Graph()),
		Scheduler: schedule.Real{},
		Results:   agg,
		Events:    events,
	}
}

type routerParams struct {
	fx.In

	Config  config.Config
	Audio   *audio.Context
	Ambient *audio.Ambient
	Quiz    *quiz.Service
	Results *results.Aggregator
	Events  *syncx.EventRepo
	Proxy   *proxy.Proxy
}

func provideRouter(p routerParams) http.Handler {
	cfg := p.Config
	if cfg.AdminPassHash == "" {
		log.Printf("auth: ADMIN_PASS_HASH unset, admin login disabled")
	}
	return api.NewRouter(api.Deps{
		Auth:          auth.NewAuthService(cfg.AuthSecret),
		AdminUser:     cfg.AdminUser,
		AdminPassHash: cfg.AdminPassHash,
		SecureCookies: cfg.Mode == config.ModeOnline,
		CORSOrigins:   cfg.CORSOrigins(),
		Quiz:          p.Quiz,
		Results:       p.Results,
		Events:        p.Events,
		Proxy:         p.Proxy,
		Renderings:    api.NewRenderings(cfg.AudioSampleRate),
		Ambient:       api.AmbientHandlers{Ambient: p.Ambient, HasDevice: p.Audio != nil},
	})
}

func startServer(lc fx.Lifecycle, sd fx.Shutdowner, cfg config.Config, h http.Handler) {
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: h, ReadHeaderTimeout: 10 * time.Second}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", cfg.HTTPAddr)
			if err != nil {
				return err
			}
			log.Printf("listening on %s (mode=%s, db=%s, audio=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver, cfg.AudioOutput)
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Printf("http server: %v", err)
					_ = sd.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
