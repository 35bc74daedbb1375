package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// setSessionCookie stores the session identifier in the browser, signed with
// the application secret so a tampered cookie never reaches the session
// store.
func (h *Handler) setSessionCookie(w http.ResponseWriter, session models.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.SessionCookieName,
		Value:    utils.SignString(session.ID, h.cfg.SecretKey),
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie immediately.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.SessionCookieName,
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionIDFromRequest extracts and verifies the signed session identifier
// from the request cookie. The second return value is false when the cookie
// is absent or its signature does not check out.
func (h *Handler) sessionIDFromRequest(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(h.cfg.SessionCookieName)
	if err != nil {
		return "", false
	}

	return utils.VerifySignedString(cookie.Value, h.cfg.SecretKey)
}
