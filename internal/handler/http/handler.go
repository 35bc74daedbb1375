// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, flash messaging, and template
// rendering for the server-rendered blog pages. Identity resolution,
// logging, and tracing concerns are all handled at this layer before
// requests are forwarded to the service layer.
package http

import (
	"fmt"
	"html/template"
	"io/fs"
	"strings"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/web"
)

type Handler struct {
	services *service.Services

	cfg  config.App
	tmpl map[string]*template.Template

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		tmpl:     tmpl,
		logger:   logger,
	}, nil
}

// parseTemplates builds one template set per page, each sharing the common
// layout. Pages are addressed by file name without the ".html" suffix.
func parseTemplates() (map[string]*template.Template, error) {
	entries, err := fs.ReadDir(web.Templates, "templates")
	if err != nil {
		return nil, err
	}

	templates := map[string]*template.Template{}
	for _, entry := range entries {
		name := entry.Name()
		if name == "layout.html" {
			continue
		}

		t, err := template.ParseFS(web.Templates, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, err
		}

		templates[strings.TrimSuffix(name, ".html")] = t
	}

	return templates, nil
}
