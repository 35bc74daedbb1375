package http

import (
	"bytes"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// templateData carries everything a rendered page may need. CurrentUser and
// Flash are filled in by [Handler.render]; handlers only populate the fields
// their page uses.
type templateData struct {
	CurrentUser models.User
	Flash       string

	Posts    []models.BlogPost
	Post     models.BlogPost
	Comments []models.Comment
	IsEdit   bool
}

// render executes the named page template inside the shared layout and
// writes the result with the given status code.
//
// The page is rendered into a buffer first so that a template error can
// still produce a clean 500 response instead of a half-written page.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, status int, data templateData) {
	log := logger.FromRequest(r)

	if user, ok := utils.GetCurrentUserFromContext(r.Context()); ok {
		data.CurrentUser = user
	}

	if data.Flash == "" {
		data.Flash = popFlash(w, r)
	}

	t, ok := h.tmpl[name]
	if !ok {
		log.Error().Str("template", name).Msg("unknown template requested")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Err(err).Str("template", name).Msg("error rendering template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
