// Package handler provides the HTTP handlers for the portfolio server: the
// admin content API, auth endpoints, uploads, and the public pages.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/rmalloy/folio/internal/auth"
	"github.com/rmalloy/folio/internal/content"
	"github.com/rmalloy/folio/internal/media"
	"github.com/rmalloy/folio/internal/site"
	"github.com/rmalloy/folio/internal/store"
)

const maxUploadBytes = 16 << 20

// Handler holds the server dependencies and registers routes.
type Handler struct {
	store store.Store
	saver *content.Saver
	auth  *auth.Service
	media *media.Service
	site  *site.Renderer
	log   *zap.Logger
	mux   *http.ServeMux
}

// New creates a Handler and wires up all routes.
func New(s store.Store, saver *content.Saver, authSvc *auth.Service, mediaSvc *media.Service, renderer *site.Renderer, log *zap.Logger) *Handler {
	h := &Handler{
		store: s,
		saver: saver,
		auth:  authSvc,
		media: mediaSvc,
		site:  renderer,
		log:   log,
		mux:   http.NewServeMux(),
	}
	h.routes()
	return h
}

// ServeHTTP makes Handler an http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) routes() {
	// Health
	h.mux.HandleFunc("GET /health", h.health)

	// --- Auth ---
	h.mux.HandleFunc("POST /api/auth/login", h.login)
	h.mux.HandleFunc("POST /api/auth/logout", h.logout)
	h.mux.HandleFunc("GET /api/auth/me", h.me)

	// --- Content API ---
	h.mux.HandleFunc("GET /api/content", h.getDocument)
	h.mux.HandleFunc("PUT /api/content", h.requireAuth(h.putDocument))
	h.mux.HandleFunc("GET /api/content/{section}", h.getSection)
	h.mux.HandleFunc("PUT /api/content/{section}", h.requireAuth(h.putSection))

	// --- Uploads ---
	h.mux.HandleFunc("POST /api/uploads", h.requireAuth(h.upload))
	h.mux.HandleFunc("GET /api/uploads", h.gallery)
	h.mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.media.Dir()))))

	// --- Public site ---
	h.mux.HandleFunc("GET /static/site.css", h.styleSheet)
	h.mux.HandleFunc("GET /blog/{slug}", h.blogPost)
	h.mux.HandleFunc("GET /p/{subdomain}", h.subdomain)
	h.mux.HandleFunc("GET /", h.home)
}

// ---------- helpers ----------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"detail": msg})
}

func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// requireAuth verifies the session cookie before the wrapped handler runs.
// The verified identity rides along so the save coordinator can log it.
func (h *Handler) requireAuth(next func(w http.ResponseWriter, r *http.Request, identity string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := h.auth.Identity(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next(w, r, identity)
	}
}

// statusForError maps the edit/save error taxonomy onto HTTP statuses.
func statusForError(err error) int {
	switch {
	case errors.Is(err, content.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, content.ErrUnknownSection):
		return http.StatusNotFound
	case errors.Is(err, content.ErrShapeMismatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ---------- status ----------

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// ---------- auth ----------

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	token, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	h.auth.SetCookie(w, token)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "email": req.Email})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.auth.ClearCookie(w)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.auth.Identity(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"email": identity})
}

// ---------- content ----------

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.Load(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *Handler) putDocument(w http.ResponseWriter, r *http.Request, identity string) {
	var doc content.Document
	if err := readJSON(r, &doc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if err := h.saver.SaveDocument(r.Context(), identity, doc); err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	h.site.Invalidate()
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// getSection returns the section's current value, defaulted to an empty
// array or object so the editor is usable before anything is saved.
func (h *Handler) getSection(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("section")
	doc, err := h.store.Load(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	_, value, err := content.Resolve(name, doc)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, value)
}

func (h *Handler) putSection(w http.ResponseWriter, r *http.Request, identity string) {
	name := r.PathValue("section")
	var value any
	if err := readJSON(r, &value); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if err := h.saver.SaveSection(r.Context(), identity, name, value); err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	h.site.Invalidate()
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// ---------- uploads ----------

func (h *Handler) upload(w http.ResponseWriter, r *http.Request, _ string) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()
	url, err := h.media.Save(header.Filename, file)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "url": url})
}

func (h *Handler) gallery(w http.ResponseWriter, r *http.Request) {
	files, err := h.media.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, files)
}

// ---------- public site ----------

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	// "GET /" is a subtree match; anything unrouted lands here.
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	h.site.Home(w, r)
}

func (h *Handler) styleSheet(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write(site.StyleSheet())
}

func (h *Handler) blogPost(w http.ResponseWriter, r *http.Request) {
	h.site.Post(w, r, r.PathValue("slug"))
}

func (h *Handler) subdomain(w http.ResponseWriter, r *http.Request) {
	h.site.Subdomain(w, r, r.PathValue("subdomain"))
}
