package http

import (
	"encoding/base64"
	"net/http"
)

// flashCookieName is the short-lived cookie carrying a notice for the next
// rendered page only.
const flashCookieName = "flash"

// setFlash queues a message for display on the next rendered page. The value
// is base64-encoded because cookie values cannot contain spaces or commas.
func setFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.URLEncoding.EncodeToString([]byte(message)),
		Path:     "/",
		HttpOnly: true,
	})
}

// popFlash returns the queued flash message, if any, and deletes the cookie
// so the notice shows exactly once.
func popFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	message, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return ""
	}

	return string(message)
}
