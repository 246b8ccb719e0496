package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// AudioOutput selects where server-side playback goes.
type AudioOutput string

const (
	AudioNone   AudioOutput = "none"
	AudioDevice AudioOutput = "device"
)

const DefaultProxyUpstream = "https://drive.usercontent.google.com/download"

type Config struct {
	Mode      Mode
	HTTPAddr  string
	PublicURL string

	DBDriver string
	DBDSN    string

	BlobBasePath string // proxy cache root

	AudioOutput     AudioOutput
	AudioSampleRate int

	ProxyUpstream string
	ProxyCache    bool

	AuthSecret    string // HMAC key for learner/admin tokens
	AdminUser     string
	AdminPassHash string // bcrypt; empty disables admin login

	CORSOriginsOnline  []string
	CORSOriginsOffline []string
}

// FromEnv reads the process environment, after loading an optional .env
// file from the working directory. Variables already set win over .env.
func FromEnv() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("config: .env: %v", err)
	}
	mode := Mode(envOr("MODE", string(ModeOffline)))
	return Config{
		Mode:               mode,
		HTTPAddr:           envOr("HTTP_ADDR", ":8080"),
		PublicURL:          strings.TrimSuffix(os.Getenv("PUBLIC_URL"), "/"),
		DBDriver:           envOr("DB_DRIVER", "sqlite"),
		DBDSN:              envOr("DB_DSN", ""),
		BlobBasePath:       envOr("BLOB_BASE_PATH", "./data"),
		AudioOutput:        AudioOutput(envOr("AUDIO_OUTPUT", string(AudioNone))),
		AudioSampleRate:    envInt("AUDIO_SAMPLE_RATE", 44100),
		ProxyUpstream:      envOr("AUDIO_PROXY_UPSTREAM", DefaultProxyUpstream),
		ProxyCache:         envBool("AUDIO_PROXY_CACHE", mode == ModeOffline),
		AuthSecret:         envOr("AUTH_HMAC_SECRET", "dev-secret-change-me"),
		AdminUser:          envOr("ADMIN_USER", "admin"),
		AdminPassHash:      os.Getenv("ADMIN_PASS_HASH"),
		CORSOriginsOnline:  csvOr("CORS_ORIGINS_ONLINE", "https://media.mindengage.ai"),
		CORSOriginsOffline: csvOr("CORS_ORIGINS_OFFLINE", "http://localhost:3000,http://localhost:5173"),
	}
}

// CORSOrigins are the allowed origins for the configured mode.
func (c Config) CORSOrigins() []string {
	if c.Mode == ModeOnline {
		return c.CORSOriginsOnline
	}
	return c.CORSOriginsOffline
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}
func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("config: %s=%q is not a positive integer, using %d", k, v, def)
		return def
	}
	return n
}
func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
