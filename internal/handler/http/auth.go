package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// Flash messages shown to visitors on authentication pages.
const (
	msgAlreadyRegistered = "You've already signed up with that email, log in instead!"
	msgWrongEmail        = "That email does not exist, please try again."
	msgWrongPassword     = "Password incorrect, please try again."
	msgAllFieldsRequired = "All fields are required."
	msgLoginToComment    = "You need to login or register to comment."
)

func (h *Handler) showRegister(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "register", http.StatusOK, templateData{})
}

// register creates an account and signs the new user in right away.
//
// Registering with an email that is already taken redirects to the login
// page with an explanatory notice instead of creating a duplicate account.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	user, err := h.services.AuthService.RegisterUser(ctx,
		r.PostFormValue("email"),
		r.PostFormValue("password"),
		r.PostFormValue("name"),
	)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrEmailAlreadyExists):
		setFlash(w, msgAlreadyRegistered)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	case errors.Is(err, service.ErrInvalidDataProvided):
		h.render(w, r, "register", http.StatusUnprocessableEntity, templateData{Flash: msgAllFieldsRequired})
		return
	default:
		log.Err(err).Str("func", "register").Msg("error registering user")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	session, err := h.services.SessionService.Establish(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "register").Msg("error establishing session")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, session)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) showLogin(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "login", http.StatusOK, templateData{})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	user, err := h.services.AuthService.Login(ctx,
		r.PostFormValue("email"),
		r.PostFormValue("password"),
	)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrUserNotFound):
		h.render(w, r, "login", http.StatusUnauthorized, templateData{Flash: msgWrongEmail})
		return
	case errors.Is(err, service.ErrWrongPassword):
		h.render(w, r, "login", http.StatusUnauthorized, templateData{Flash: msgWrongPassword})
		return
	default:
		log.Err(err).Str("func", "login").Msg("error logging in")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	session, err := h.services.SessionService.Establish(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "login").Msg("error establishing session")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, session)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// logout revokes the current session and always lands on the index page,
// even when there was no session to revoke.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if sessionID, ok := h.sessionIDFromRequest(r); ok {
		if err := h.services.SessionService.Revoke(r.Context(), sessionID); err != nil {
			log.Err(err).Str("func", "logout").Msg("error revoking session")
		}
	}

	h.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// currentUser returns the user resolved by the session middleware.
func currentUser(r *http.Request) (user models.User) {
	user, _ = utils.GetCurrentUserFromContext(r.Context())
	return user
}
