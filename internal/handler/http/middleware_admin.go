package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/utils"
)

// bootstrapAdminID is the id of the first registered account, which is the
// only account allowed to manage posts.
const bootstrapAdminID = 1

// adminOnly forbids access to everyone except the bootstrap admin account.
// It must run after [Handler.withCurrentUser].
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := utils.GetCurrentUserFromContext(r.Context())
		if !ok || user.ID != bootstrapAdminID {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
