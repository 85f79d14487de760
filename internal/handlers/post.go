package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/crucial707/blog-api/internal/metrics"
	"github.com/crucial707/blog-api/internal/middleware"
	"github.com/crucial707/blog-api/internal/service"
)

const postNotFound = "Post not found"

// ==========================
// Post Handler
// ==========================
type PostHandler struct {
	Service *service.PostService
}

// ==========================
// Create (auth required)
// ==========================
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	var input service.PostInput
	if !decodeJSON(w, r, &input) {
		metrics.IncPostOp("create", http.StatusBadRequest)
		return
	}

	postID, err := h.Service.Create(r.Context(), userID, input)
	if err != nil {
		metrics.IncPostOp("create", statusFor(err))
		writeServiceError(w, r, "create post", err, postNotFound)
		return
	}

	metrics.IncPostOp("create", http.StatusCreated)
	writeJSON(w, http.StatusCreated, map[string]string{"postID": postID})
}

// ==========================
// Get (public)
// ==========================
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	post, err := h.Service.Get(r.Context(), postID)
	if err != nil {
		metrics.IncPostOp("get", statusFor(err))
		writeServiceError(w, r, "get post", err, postNotFound)
		return
	}

	metrics.IncPostOp("get", http.StatusOK)
	writeJSON(w, http.StatusOK, map[string]any{"post": post})
}

// ==========================
// Update (owner only)
// ==========================
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	postID := chi.URLParam(r, "postID")

	var input service.PostInput
	if !decodeJSON(w, r, &input) {
		metrics.IncPostOp("update", http.StatusBadRequest)
		return
	}

	post, err := h.Service.Update(r.Context(), userID, postID, input)
	if err != nil {
		metrics.IncPostOp("update", statusFor(err))
		writeServiceError(w, r, "update post", err, postNotFound)
		return
	}

	metrics.IncPostOp("update", http.StatusOK)
	writeJSON(w, http.StatusOK, map[string]string{
		"postID": post.ID,
		"msg":    "Post updated successfully",
	})
}

// ==========================
// Delete (owner only)
// ==========================
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	postID := chi.URLParam(r, "postID")

	if err := h.Service.Delete(r.Context(), userID, postID); err != nil {
		metrics.IncPostOp("delete", statusFor(err))
		writeServiceError(w, r, "delete post", err, postNotFound)
		return
	}

	metrics.IncPostOp("delete", http.StatusOK)
	writeJSON(w, http.StatusOK, map[string]string{"msg": "Post deleted successfully"})
}
