package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// withCurrentUser resolves the session cookie into the signed-in user and
// stores the result in the request context. Every request carries a user
// value; an anonymous visitor is represented by the zero [models.User].
//
// A cookie pointing to an expired or revoked session is treated the same as
// no cookie at all, and the stale cookie is cleared. Any other resolution
// failure aborts the request, because serving a page to a visitor whose
// identity could not be established would be worse than failing loudly.
func (h *Handler) withCurrentUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		var user models.User
		if sessionID, ok := h.sessionIDFromRequest(r); ok {
			resolved, err := h.services.SessionService.Resolve(ctx, sessionID)
			switch {
			case err == nil:
				user = resolved
			case errors.Is(err, service.ErrNoActiveSession):
				h.clearSessionCookie(w)
			default:
				log.Err(err).Str("func", "withCurrentUser").Msg("error resolving session")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
		}

		ctx = context.WithValue(ctx, utils.CurrentUserCtxKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
