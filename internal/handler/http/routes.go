package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the application router. Post management routes are restricted
// to the bootstrap admin account; everything else is public, with the
// signed-in user (if any) resolved on every request.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCurrentUser)

	router.Get("/", h.index)

	router.Get("/register", h.showRegister)
	router.Post("/register", h.register)
	router.Get("/login", h.showLogin)
	router.Post("/login", h.login)
	router.Get("/logout", h.logout)

	router.Get("/post/{id}", h.showPost)
	router.Post("/post/{id}", h.addComment)

	router.Group(func(r chi.Router) {
		r.Use(h.adminOnly)

		r.Get("/new-post", h.showNewPost)
		r.Post("/new-post", h.createPost)
		r.Get("/edit-post/{id}", h.showEditPost)
		r.Post("/edit-post/{id}", h.editPost)
		r.Get("/delete/{id}", h.deletePost)
	})

	router.Get("/about", h.about)
	router.Get("/contact", h.contact)

	router.Handle("/static/*", http.FileServerFS(web.Static))

	return router
}
