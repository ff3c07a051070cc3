// Package bridge exposes the generation pipeline over a local HTTP server.
//
// The bridge is the surface a design editor plugin talks to. It accepts
// plugin messages, runs generations against an in-memory document, and
// serves the document and node previews back.
//
// # Protocol
//
// All plugin traffic goes through POST /message with a JSON body:
//
//	{"kind": "generate", "generate": {"variants": [{"size": 16}], "custom_stroke": false}}
//	{"kind": "cancel"}
//
// A generate message runs synchronously and answers with a done reply:
//
//	{"kind": "done", "summary": "Created 1 component set(s) ...", "sets": 1, "cancelled": false}
//
// Rejected input answers with an error reply and a 4xx status:
//
//	{"kind": "error", "code": "INVALID_SELECTION", "message": "select at least one icon"}
//
// Only one run may be in flight; a second generate is refused with
// RUN_IN_FLIGHT while a cancel message stops the running generation
// between icons. GET /document serves the current document as JSON, and
// GET /preview/{id}?format=png&scale=2 serves a rendering of one node.
package bridge

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/darasoba/iconset-builder/pkg/errors"
	"github.com/darasoba/iconset-builder/pkg/observability"
	"github.com/darasoba/iconset-builder/pkg/pipeline"
	"github.com/darasoba/iconset-builder/pkg/scene"
)

// Message is the envelope for plugin requests.
type Message struct {
	Kind     string            `json:"kind"`
	Generate *pipeline.Options `json:"generate,omitempty"`
}

// Message kinds.
const (
	KindGenerate = "generate"
	KindCancel   = "cancel"
	KindDone     = "done"
	KindError    = "error"
)

// DoneReply reports a finished or cancelled run.
type DoneReply struct {
	Kind      string `json:"kind"`
	Summary   string `json:"summary"`
	Sets      int    `json:"sets"`
	Cancelled bool   `json:"cancelled"`
}

// ErrorReply reports a refused message.
type ErrorReply struct {
	Kind    string `json:"kind"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Server bridges one document to plugin requests. At most one generation
// run is in flight at a time; further generate messages are refused until
// it finishes.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger

	// docMu guards the document. Runs take the write lock, reads take
	// the read lock.
	docMu sync.RWMutex
	doc   *scene.Document

	// runMu guards the in-flight run state.
	runMu   sync.Mutex
	cancel  context.CancelFunc
	running bool
}

// NewServer creates a bridge over doc. A nil runner gets a default one
// with caching disabled.
func NewServer(doc *scene.Document, runner *pipeline.Runner, logger *log.Logger) *Server {
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, logger: logger, doc: doc}
}

// Router builds the HTTP handler.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(hookMiddleware)
	r.Post("/message", s.handleMessage)
	r.Get("/document", s.handleDocument)
	r.Get("/preview/{id}", s.handlePreview)
	return r
}

// hookMiddleware reports requests to the observability registry.
func hookMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.Bridge().OnRequest(r.Context(), r.Method, r.URL.Path)
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		observability.Bridge().OnResponse(r.Context(), r.Method, r.URL.Path, sw.status, time.Since(start))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	var msg Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidFormat, err, "malformed message"))
		return
	}

	switch msg.Kind {
	case KindGenerate:
		s.handleGenerate(w, r, msg)
	case KindCancel:
		s.handleCancel(w, r)
	default:
		s.writeError(w, r, errors.New(errors.ErrCodeUnsupported, "unknown message kind %q", msg.Kind))
	}
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request, msg Message) {
	ctx, err := s.startRun()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	defer s.endRun()

	var opts pipeline.Options
	if msg.Generate != nil {
		opts = *msg.Generate
	}
	opts.Logger = s.logger

	s.docMu.Lock()
	result, err := s.runner.Execute(ctx, s.doc, opts)
	s.docMu.Unlock()

	if err != nil && result == nil {
		s.writeError(w, r, err)
		return
	}

	// A cancelled run still reports what it created.
	writeJSON(w, http.StatusOK, DoneReply{
		Kind:      KindDone,
		Summary:   result.Summary,
		Sets:      len(result.Sets),
		Cancelled: result.Cancelled,
	})
}

func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	if err := s.cancelRun(); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, DoneReply{Kind: KindDone, Summary: "Cancelling run."})
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	s.docMu.RLock()
	defer s.docMu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	if err := scene.WriteDocument(s.doc, w); err != nil {
		s.logger.Error("serialize document", "err", err)
	}
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	opts := pipeline.PreviewOptions{Format: r.URL.Query().Get("format")}
	if v := r.URL.Query().Get("scale"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil || scale <= 0 {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidFormat, "invalid scale %q", v))
			return
		}
		opts.Scale = scale
	}

	s.docMu.RLock()
	data, err := s.runner.Preview(r.Context(), s.doc, id, opts)
	s.docMu.RUnlock()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if opts.Format == pipeline.FormatPNG {
		w.Header().Set("Content-Type", "image/png")
	} else {
		w.Header().Set("Content-Type", "image/svg+xml")
	}
	_, _ = w.Write(data)
}

// =============================================================================
// Run State
// =============================================================================

// startRun claims the single run slot.
func (s *Server) startRun() (context.Context, error) {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	if s.running {
		return nil, errors.New(errors.ErrCodeRunInFlight, "a generation run is already in flight")
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.running = true
	return ctx, nil
}

func (s *Server) endRun() {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = nil
	s.running = false
}

func (s *Server) cancelRun() error {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	if !s.running {
		return errors.New(errors.ErrCodeNoRun, "no generation run in flight")
	}
	s.cancel()
	return nil
}

// =============================================================================
// Responses
// =============================================================================

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	observability.Bridge().OnError(r.Context(), r.Method, r.URL.Path, err)
	s.logger.Warn("request refused", "path", r.URL.Path, "err", err)

	writeJSON(w, statusFor(err), ErrorReply{
		Kind:    KindError,
		Code:    string(errors.GetCode(err)),
		Message: errors.UserMessage(err),
	})
}

// statusFor maps error codes to HTTP statuses.
func statusFor(err error) int {
	switch code := errors.GetCode(err); {
	case code == errors.ErrCodeRunInFlight:
		return http.StatusConflict
	case code == errors.ErrCodeNodeNotFound || code == errors.ErrCodeNoRun:
		return http.StatusNotFound
	case code == errors.ErrCodeInvalidFormat || code == errors.ErrCodeUnsupported:
		return http.StatusBadRequest
	case errors.IsInputRejection(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
