// Package web provides HTTP handlers for the web UI.
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"

	"github.com/go-pkgz/routegroup"

	"github.com/dusk-app/dusk/app/enum"
)

//go:generate moq -out mocks/themecontroller.go -pkg mocks -skip-ensure -fmt goimports . ThemeController

//go:embed static
var staticFS embed.FS

//go:embed templates
var templatesFS embed.FS

// StaticFS returns the embedded static filesystem for external use.
func StaticFS() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to get static sub-filesystem: %w", err)
	}
	return sub, nil
}

// ThemeController defines the theme operations the web UI needs.
type ThemeController interface {
	Toggle(ctx context.Context) enum.Theme
	Current() enum.Theme
}

// Config holds web handler configuration.
type Config struct {
	BaseURL string
	Version string
}

// Handler handles web UI requests.
type Handler struct {
	controller ThemeController
	tmpl       *template.Template
	baseURL    string
	version    string
}

// New creates a new web handler.
func New(ctrl ThemeController, cfg Config) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Handler{
		controller: ctrl,
		tmpl:       tmpl,
		baseURL:    cfg.BaseURL,
		version:    cfg.Version,
	}, nil
}

// Register registers web UI routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /{$}", h.handleIndex)
	r.HandleFunc("POST /web/theme", h.handleThemeToggle)
}

// parseTemplates parses all templates from embedded filesystem.
func parseTemplates() (*template.Template, error) {
	tmpl := template.New("")

	baseContent, err := templatesFS.ReadFile("templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("read base.html: %w", err)
	}
	if _, err := tmpl.New("base.html").Parse(string(baseContent)); err != nil {
		return nil, fmt.Errorf("parse base.html: %w", err)
	}

	return tmpl, nil
}

// templateData holds data passed to templates.
type templateData struct {
	Theme   string // active theme identifier, painted as data-theme on the root
	Icon    string // toggle control glyph for the active theme
	Label   string // accessible label, names the switch target
	BaseURL string
	Version string
}

// pageData projects the theme onto the template fields.
func (h *Handler) pageData(t enum.Theme) templateData {
	return templateData{
		Theme:   t.String(),
		Icon:    t.Icon(),
		Label:   t.Label(),
		BaseURL: h.baseURL,
		Version: h.version,
	}
}
