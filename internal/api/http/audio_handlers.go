package http

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/mind-engage/mindengage-media/internal/audio"
)

// Renderings caches offline-rendered WAV files. Every cue and the loop are
// deterministic, so each is rendered at most once.
type Renderings struct {
	rate int

	mu    sync.Mutex
	files map[string][]byte
}

func NewRenderings(sampleRate int) *Renderings {
	if sampleRate <= 0 {
		sampleRate = audio.DefaultSampleRate
	}
	return &Renderings{rate: sampleRate, files: map[string][]byte{}}
}

func (rs *Renderings) get(key string, render func(rate int) []float32) ([]byte, error) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if b, ok := rs.files[key]; ok {
		return b, nil
	}
	b, err := audio.WAV(render(rs.rate), rs.rate)
	if err != nil {
		return nil, err
	}
	rs.files[key] = b
	return b, nil
}

func writeWAV(w http.ResponseWriter, b []byte) {
	w.Header().Set("Content-Type", "audio/wav")
	w.Header().Set("Content-Length", strconv.Itoa(len(b)))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(b)
}

// GET /api/cues/{cue}
func CueWAVHandler(rs *Renderings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := audio.ParseCue(chi.URLParam(r, "cue"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		b, err := rs.get("cue/"+string(c), func(rate int) []float32 { return audio.RenderCue(c, rate) })
		if err != nil {
			http.Error(w, "render: "+err.Error(), http.StatusInternalServerError)
			return
		}
		writeWAV(w, b)
	}
}

// GET /api/ambient/loop
func AmbientLoopWAVHandler(rs *Renderings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := rs.get("ambient", audio.RenderAmbientLoop)
		if err != nil {
			http.Error(w, "render: "+err.Error(), http.StatusInternalServerError)
			return
		}
		writeWAV(w, b)
	}
}

type ambientState struct {
	Playing bool `json:"playing"`
	Device  bool `json:"device"` // false when no output device is open
}

// AmbientHandlers drive the server-side ambient loop. Without an output
// device every action succeeds and playing stays false.
type AmbientHandlers struct {
	Ambient   *audio.Ambient
	HasDevice bool
}

func (h AmbientHandlers) state() ambientState {
	return ambientState{Playing: h.Ambient.Playing(), Device: h.HasDevice}
}

// GET /api/ambient
func (h AmbientHandlers) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.state())
}

// POST /api/ambient/start
func (h AmbientHandlers) Start(w http.ResponseWriter, r *http.Request) {
	h.Ambient.Start()
	writeJSON(w, http.StatusOK, h.state())
}

// POST /api/ambient/stop
func (h AmbientHandlers) Stop(w http.ResponseWriter, r *http.Request) {
	h.Ambient.Stop()
	writeJSON(w, http.StatusOK, h.state())
}

// POST /api/ambient/toggle
func (h AmbientHandlers) Toggle(w http.ResponseWriter, r *http.Request) {
	h.Ambient.Toggle()
	writeJSON(w, http.StatusOK, h.state())
}
