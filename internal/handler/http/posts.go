package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
	"github.com/go-chi/chi/v5"
)

const msgTitleTaken = "A post with that title already exists, pick another one."

// postIDFromURL parses the {id} route parameter. A missing or non-numeric id
// is indistinguishable from a post that does not exist, so callers respond
// with 404 on error.
func postIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	posts, err := h.services.BlogService.ListPosts(r.Context())
	if err != nil {
		log.Err(err).Str("func", "index").Msg("error listing posts")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.render(w, r, "index", http.StatusOK, templateData{Posts: posts})
}

func (h *Handler) showPost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	postID, err := postIDFromURL(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	post, err := h.services.BlogService.GetPost(ctx, postID)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrPostNotFound):
		http.NotFound(w, r)
		return
	default:
		log.Err(err).Str("func", "showPost").Msg("error getting post")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	comments, err := h.services.BlogService.ListComments(ctx, postID)
	if err != nil {
		log.Err(err).Str("func", "showPost").Msg("error listing comments")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.render(w, r, "post", http.StatusOK, templateData{Post: post, Comments: comments})
}

// addComment stores a comment on behalf of the signed-in user. Anonymous
// visitors are bounced to the login page with a notice instead.
func (h *Handler) addComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	postID, err := postIDFromURL(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	user := currentUser(r)
	if user.IsAnonymous() {
		setFlash(w, msgLoginToComment)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	_, err = h.services.BlogService.AddComment(ctx, postID, user.ID, r.PostFormValue("body"))
	switch {
	case err == nil:
	case errors.Is(err, store.ErrPostNotFound):
		http.NotFound(w, r)
		return
	case errors.Is(err, service.ErrInvalidDataProvided):
		// An empty comment is silently dropped; the page is shown again.
	default:
		log.Err(err).Str("func", "addComment").Msg("error adding comment")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/post/%d", postID), http.StatusSeeOther)
}

func (h *Handler) showNewPost(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "make-post", http.StatusOK, templateData{})
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	post := postFromForm(r)
	created, err := h.services.BlogService.CreatePost(r.Context(), post, currentUser(r).ID)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrPostTitleExists):
		h.render(w, r, "make-post", http.StatusConflict, templateData{Post: post, Flash: msgTitleTaken})
		return
	case errors.Is(err, service.ErrInvalidDataProvided):
		h.render(w, r, "make-post", http.StatusUnprocessableEntity, templateData{Post: post, Flash: msgAllFieldsRequired})
		return
	default:
		log.Err(err).Str("func", "createPost").Msg("error creating post")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/post/%d", created.ID), http.StatusSeeOther)
}

func (h *Handler) showEditPost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	postID, err := postIDFromURL(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	post, err := h.services.BlogService.GetPost(r.Context(), postID)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrPostNotFound):
		http.NotFound(w, r)
		return
	default:
		log.Err(err).Str("func", "showEditPost").Msg("error getting post")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.render(w, r, "make-post", http.StatusOK, templateData{Post: post, IsEdit: true})
}

func (h *Handler) editPost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	postID, err := postIDFromURL(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	post := postFromForm(r)
	post.ID = postID

	err = h.services.BlogService.UpdatePost(r.Context(), post, currentUser(r).ID)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrPostNotFound):
		http.NotFound(w, r)
		return
	case errors.Is(err, store.ErrPostTitleExists):
		h.render(w, r, "make-post", http.StatusConflict, templateData{Post: post, IsEdit: true, Flash: msgTitleTaken})
		return
	case errors.Is(err, service.ErrInvalidDataProvided):
		h.render(w, r, "make-post", http.StatusUnprocessableEntity, templateData{Post: post, IsEdit: true, Flash: msgAllFieldsRequired})
		return
	default:
		log.Err(err).Str("func", "editPost").Msg("error updating post")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/post/%d", postID), http.StatusSeeOther)
}

// deletePost removes the post together with its comments and returns to the
// index page. Deleting a post that is already gone is not an error.
func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	postID, err := postIDFromURL(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	err = h.services.BlogService.DeletePost(r.Context(), postID)
	if err != nil && !errors.Is(err, store.ErrPostNotFound) {
		log.Err(err).Str("func", "deletePost").Msg("error deleting post")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func postFromForm(r *http.Request) models.BlogPost {
	return models.BlogPost{
		Title:    r.PostFormValue("title"),
		Subtitle: r.PostFormValue("subtitle"),
		ImgURL:   r.PostFormValue("img_url"),
		Body:     r.PostFormValue("body"),
	}
}
