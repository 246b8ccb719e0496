package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mind-engage/mindengage-media/internal/catalog"
	"github.com/mind-engage/mindengage-media/internal/proxy"
)

// GET /api/audio-proxy/{fileID}
func AudioProxyHandler(p *proxy.Proxy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fileID := chi.URLParam(r, "fileID")
		b, err := p.Fetch(r.Context(), fileID)
		switch {
		case errors.Is(err, proxy.ErrBadFileID):
			jsonError(w, http.StatusBadRequest, "Invalid file id")
			return
		case errors.Is(err, proxy.ErrUpstream):
			jsonError(w, http.StatusInternalServerError, "Failed to fetch audio file")
			return
		case err != nil:
			log.Printf("audio proxy %s: %v", fileID, err)
			jsonError(w, http.StatusInternalServerError, "Failed to proxy audio file")
			return
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Header().Set("Content-Length", strconv.Itoa(len(b)))
		w.Header().Set("Cache-Control", "public, max-age=86400")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		_, _ = w.Write(b)
	}
}

// GET /api/narration/{section} redirects to the proxied narration file.
func NarrationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := catalog.Narration(chi.URLParam(r, "section"))
		if !ok {
			http.Error(w, "no narration", http.StatusNotFound)
			return
		}
		http.Redirect(w, r, proxy.Path(id), http.StatusFound)
	}
}

func MountCatalog(r chi.Router) {
	r.Get("/topics", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, catalog.Topics())
	})
	// GET /gallery?category=Vetorial ("Todas" or empty for all)
	r.Get("/gallery", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"categories": catalog.Categories(),
			"images":     catalog.Gallery(r.URL.Query().Get("category")),
		})
	})
	r.Get("/tracks", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, catalog.Tracks())
	})
	r.Get("/sections", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, catalog.Sections())
	})
}
