// Package api provides JSON handlers exposing the theme operations.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/dusk-app/dusk/app/enum"
)

//go:generate moq -out mocks/themecontroller.go -pkg mocks -skip-ensure -fmt goimports . ThemeController

// ThemeController defines the theme operations exposed by the API.
// Defined here (consumer side) to allow different controller implementations.
type ThemeController interface {
	Resolve(ctx context.Context) enum.Theme
	Apply(ctx context.Context, t enum.Theme)
	Toggle(ctx context.Context) enum.Theme
	Current() enum.Theme
	OnChange(fn func(enum.Theme)) func()
}

// Handler handles API requests for /api/* endpoints.
type Handler struct {
	controller ThemeController
}

// New creates a new API handler.
func New(ctrl ThemeController) *Handler {
	return &Handler{controller: ctrl}
}

// Register registers API routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /theme", h.handleGet)
	r.HandleFunc("PUT /theme", h.handleSet)
	r.HandleFunc("POST /theme/toggle", h.handleToggle)
	r.HandleFunc("GET /theme/events", h.handleEvents)
}

// themeInfo is the JSON projection of a theme.
type themeInfo struct {
	Theme    string `json:"theme"`
	Icon     string `json:"icon"`
	Label    string `json:"label"`
	Resolved string `json:"resolved,omitempty"` // what resolution would pick right now
}

func infoFor(t enum.Theme) themeInfo {
	return themeInfo{Theme: t.String(), Icon: t.Icon(), Label: t.Label()}
}

// handleGet returns the active theme plus what a fresh resolution would pick,
// the two diverge only before the controller ran.
// GET /api/theme
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	info := infoFor(h.controller.Current())
	info.Resolved = h.controller.Resolve(r.Context()).String()
	rest.RenderJSON(w, info)
}

// handleSet applies an explicit theme.
// PUT /api/theme with body {"theme": "dark"}
func (h *Handler) handleSet(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Theme string `json:"theme"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "failed to decode request")
		return
	}

	theme, err := enum.ParseTheme(req.Theme)
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid theme")
		return
	}

	h.controller.Apply(r.Context(), theme)
	rest.RenderJSON(w, infoFor(theme))
}

// handleToggle flips the theme and returns the new value.
// POST /api/theme/toggle
func (h *Handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	newTheme := h.controller.Toggle(r.Context())
	rest.RenderJSON(w, infoFor(newTheme))
}

// handleEvents streams theme changes as server-sent events. The current theme
// is sent immediately, then one event per change until the client goes away.
// GET /api/theme/events
func (h *Handler) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, fmt.Errorf("flusher not supported"), "streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	// buffered and non-blocking on notify: a slow client skips intermediate
	// values and catches up on the next event
	updates := make(chan enum.Theme, 8)
	unsubscribe := h.controller.OnChange(func(t enum.Theme) {
		select {
		case updates <- t:
		default:
		}
	})
	defer unsubscribe()

	sendEvent(w, h.controller.Current())
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case t := <-updates:
			sendEvent(w, t)
			flusher.Flush()
		}
	}
}

// sendEvent writes a single themeChanged SSE frame.
func sendEvent(w http.ResponseWriter, t enum.Theme) {
	fmt.Fprintf(w, "event: themeChanged\ndata: {\"theme\":%q}\n\n", t.String())
}
