package web

import (
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
)

// handleIndex renders the main page with the active theme painted on the
// document root, so the first render already has the correct scheme.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(h.controller.Current())
	if err := h.tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		log.Printf("[ERROR] failed to execute template: %v", err)
	}
}

// handleThemeToggle flips the theme and returns the new projection, the page
// script swaps data-theme, glyph and label in place.
func (h *Handler) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	newTheme := h.controller.Toggle(r.Context())
	log.Printf("[DEBUG] theme toggled to %s", newTheme)

	data := h.pageData(newTheme)
	rest.RenderJSON(w, rest.JSON{"theme": data.Theme, "icon": data.Icon, "label": data.Label})
}
