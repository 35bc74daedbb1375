package http

import "net/http"

func (h *Handler) about(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "about", http.StatusOK, templateData{})
}

func (h *Handler) contact(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "contact", http.StatusOK, templateData{})
}
