// Package server implements the graphio HTTP service.
//
// The service exposes the codec over three endpoints:
//
//	POST /v1/convert?to=<format>   XML body → converted text
//	POST /v1/render?format=svg|png XML body → rendered image (cached)
//	GET  /healthz                  liveness and version
//
// Conversion is stateless; rendering is backed by the artifact cache so
// repeated requests for the same graph skip the Graphviz run.
package server

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/mhersch/graphio/pkg/buildinfo"
	"github.com/mhersch/graphio/pkg/cache"
	"github.com/mhersch/graphio/pkg/codec"
	apperrors "github.com/mhersch/graphio/pkg/errors"
	"github.com/mhersch/graphio/pkg/graph"
	"github.com/mhersch/graphio/pkg/observability"
	"github.com/mhersch/graphio/pkg/render"
)

// maxBodyBytes caps request bodies; graphs beyond this are rejected.
const maxBodyBytes = 8 << 20

// artifactTTL is how long rendered artifacts stay cached.
const artifactTTL = 24 * time.Hour

// Server handles HTTP requests for graph conversion and rendering.
type Server struct {
	logger *log.Logger
	cache  cache.Cache
	keyer  cache.Keyer
	router chi.Router
}

// New creates a Server. A nil cache disables artifact caching, a nil
// logger falls back to the default logger.
func New(logger *log.Logger, c cache.Cache) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if c == nil {
		c = cache.NewNullCache()
	}

	s := &Server{
		logger: logger,
		cache:  c,
		keyer:  cache.NewDefaultKeyer(),
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/convert", s.handleConvert)
		r.Post("/render", s.handleRender)
	})
	s.router = r

	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// handleHealth reports liveness and the build version.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Short(),
	})
}

// handleConvert reads an XML graph from the body and writes it in the
// format named by the "to" query parameter.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	to := codec.Format(r.URL.Query().Get("to"))
	if !to.Writable() {
		s.writeError(w, r, apperrors.New(apperrors.ErrCodeInvalidFormat, "unknown target format %q", to))
		return
	}

	g, err := s.readGraph(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out, err := codec.Write(g, to)
	if err != nil {
		s.writeError(w, r, s.mapCodecError(err))
		return
	}

	w.Header().Set("Content-Type", contentType(to))
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, out)
}

// handleRender converts the XML body to DOT and rasterizes it. The
// "format" query parameter selects svg (default) or png; "labeled=true"
// adds weight labels to the connectors.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = render.FormatSVG
	}
	if err := render.ValidateFormat(format); err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "validate render format"))
		return
	}

	dotFormat := codec.FormatDOT
	if r.URL.Query().Get("labeled") == "true" {
		dotFormat = codec.FormatDOTWeighted
	}

	g, err := s.readGraph(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	dot, err := codec.Write(g, dotFormat)
	if err != nil {
		s.writeError(w, r, s.mapCodecError(err))
		return
	}

	ctx := r.Context()
	key := s.keyer.ArtifactKey(cache.Hash([]byte(dot)), format)
	if data, hit, err := s.cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnHit(ctx, "artifact")
		serveArtifact(w, format, data)
		return
	}
	observability.Cache().OnMiss(ctx, "artifact")

	start := time.Now()
	data, err := render.Render(ctx, dot, format)
	observability.Render().OnRenderComplete(ctx, format, len(data), time.Since(start), err)
	if err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInternal, err, "render %s", format))
		return
	}

	if err := s.cache.Set(ctx, key, data, artifactTTL); err != nil {
		s.logger.Warn("cache artifact", "err", err)
	} else {
		observability.Cache().OnSet(ctx, "artifact", len(data))
	}
	serveArtifact(w, format, data)
}

// readGraph parses the request body as XML markup into a fresh graph.
func (s *Server) readGraph(r *http.Request) (*graph.Memory, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "read request body")
	}
	if len(body) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "empty request body")
	}

	g := graph.NewMemory()
	start := time.Now()
	err = codec.Read(g, body, codec.FormatXML)
	observability.Codec().OnReadComplete(r.Context(), string(codec.FormatXML), len(body), time.Since(start), err)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeParse, err, "parse graph markup")
	}
	return g, nil
}

// mapCodecError attaches the right application code to codec failures.
func (s *Server) mapCodecError(err error) error {
	switch {
	case errors.Is(err, codec.ErrUnsupportedFormat):
		return apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "convert graph")
	case errors.Is(err, codec.ErrNotHypergraph):
		return apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "convert graph")
	default:
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "convert graph")
	}
}

// contentType maps a codec format to its response content type.
func contentType(f codec.Format) string {
	if f == "" || f == codec.FormatXML {
		return "application/xml; charset=utf-8"
	}
	return "text/vnd.graphviz; charset=utf-8"
}

// serveArtifact writes a rendered image with its content type.
func serveArtifact(w http.ResponseWriter, format string, data []byte) {
	switch format {
	case render.FormatPNG:
		w.Header().Set("Content-Type", "image/png")
	default:
		w.Header().Set("Content-Type", "image/svg+xml")
	}
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
