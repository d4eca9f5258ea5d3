package blog

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zhouzirui/z-blog/backend/internal/model/post"
	blogService "github.com/zhouzirui/z-blog/backend/internal/service/blog"
	"github.com/zhouzirui/z-blog/backend/pkg/utils"
)

// Service is the read surface the handler needs from the blog service.
type Service interface {
	List(ctx context.Context) []post.Summary
	Get(ctx context.Context, identifier string) (post.Post, error)
}

// Handler serves the blog post routes.
type Handler struct {
	svc Service
}

// New creates a blog handler.
func New(svc Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the blog routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/blogs", h.handleListPosts)
	r.Get("/blogs/{identifier}", h.handleGetPost)
}

func (h *Handler) handleListPosts(w http.ResponseWriter, r *http.Request) {
	log.Printf("[blog] request=%s received for /api/blogs", middleware.GetReqID(r.Context()))
	utils.RespondJSON(w, http.StatusOK, h.svc.List(r.Context()))
}

func (h *Handler) handleGetPost(w http.ResponseWriter, r *http.Request) {
	identifier := chi.URLParam(r, "identifier")
	log.Printf("[blog] request=%s received for /api/blogs/%s", middleware.GetReqID(r.Context()), identifier)

	found, err := h.svc.Get(r.Context(), identifier)
	if err != nil {
		if errors.Is(err, blogService.ErrPostNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Blog post not found")
			return
		}
		log.Printf("[blog] lookup failed for %s: %v", identifier, err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to load blog post")
		return
	}

	utils.RespondJSON(w, http.StatusOK, found)
}
