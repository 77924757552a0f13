// Package api serves a read-only HTTP view of a board document: its
// parameters, footprint placements, and an SVG preview. It exists for quick
// inspection in a browser while iterating on parameter files; it never
// mutates the document.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mechwright/switchyard/pkg/board"
	"github.com/mechwright/switchyard/pkg/cache"
	"github.com/mechwright/switchyard/pkg/observability"
	"github.com/mechwright/switchyard/pkg/params"
	"github.com/mechwright/switchyard/pkg/place"
	"github.com/mechwright/switchyard/pkg/render/boardsvg"
)

// Server exposes a placed board over HTTP.
type Server struct {
	board  board.Board
	params params.Set
	cache  cache.Cache
	logger *log.Logger

	// docHash keys cached artifacts so a changed document or parameter
	// set never serves a stale preview.
	docHash string
}

// NewServer wires the routes for a board document. The cache may be a
// NullCache when no artifact caching is wanted.
func NewServer(b board.Board, set params.Set, c cache.Cache, logger *log.Logger) *Server {
	state, _ := json.Marshal(struct {
		Refs   []string   `json:"refs"`
		Params params.Set `json:"params"`
	}{Refs: b.FootprintRefs(), Params: set})

	return &Server{
		board:   b,
		params:  set,
		cache:   c,
		logger:  logger,
		docHash: cache.Hash(state),
	}
}

// Handler returns the HTTP handler with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Get("/api/params", s.handleParams)
	r.Get("/api/placements", s.handlePlacements)
	r.Get("/board.svg", s.handleBoardSVG)

	return r
}

// ListenAndServe runs the server until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	s.logger.Info("serving board preview", "addr", addr)
	return srv.ListenAndServe()
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleParams(w http.ResponseWriter, _ *http.Request) {
	out := make(map[string]paramValue, len(s.params))
	for key, q := range s.params {
		out[key] = paramValue{Value: q.Value, Unit: q.Unit}
	}
	writeJSON(w, http.StatusOK, out)
}

type paramValue struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type placementEntry struct {
	Ref         string  `json:"ref"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Orientation float64 `json:"orientation"`
}

func (s *Server) handlePlacements(w http.ResponseWriter, _ *http.Request) {
	var out []placementEntry
	for _, ref := range place.Refs() {
		fp, ok := s.board.Footprint(ref)
		if !ok {
			continue
		}
		pos := fp.Position()
		out = append(out, placementEntry{
			Ref:         fp.Ref(),
			X:           pos.X,
			Y:           pos.Y,
			Orientation: fp.Orientation(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleBoardSVG(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key := cache.ArtifactKey("boardsvg", s.docHash)

	svg, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache read failed", "error", err)
	}
	if hit {
		observability.Cache().OnCacheHit(ctx, key)
	} else {
		observability.Cache().OnCacheMiss(ctx, key)
		svg = boardsvg.Render(s.board, place.Refs(), boardsvg.Options{Labels: true})
		if err := s.cache.Set(ctx, key, svg, cache.TTLArtifact); err != nil {
			s.logger.Warn("cache write failed", "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, key, len(svg))
		}
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(svg); err != nil {
		s.logger.Error("write response", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
