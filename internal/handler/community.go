package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/wellverse/internal/apperror"
	"github.com/sakif/wellverse/internal/auth"
	"github.com/sakif/wellverse/internal/service"
)

// CommunityHandler serves community listings and post feeds.
type CommunityHandler struct {
	communities *service.CommunityService
}

func NewCommunityHandler(communities *service.CommunityService) *CommunityHandler {
	return &CommunityHandler{communities: communities}
}

// HandleList returns all communities.
//
// HTTP: GET /api/communities
func (h *CommunityHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	communities, err := h.communities.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, communities)
}

// HandleGet returns one community.
//
// HTTP: GET /api/communities/{id}
func (h *CommunityHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	community, err := h.communities.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, community)
}

// HandleListPosts returns the community's posts, newest first.
//
// HTTP: GET /api/communities/{id}/posts
func (h *CommunityHandler) HandleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.communities.ListPosts(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

type createPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// HandleCreatePost publishes a post by the session user.
//
// HTTP: POST /api/communities/{id}/posts
func (h *CommunityHandler) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apperror.NotAuthenticated())
		return
	}

	var req createPostRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	post, err := h.communities.CreatePost(r.Context(), chi.URLParam(r, "id"), userID, req.Title, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, post)
}
