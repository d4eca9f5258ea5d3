package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zhouzirui/z-blog/backend/internal/handler/blog"
	middlewarePkg "github.com/zhouzirui/z-blog/backend/internal/middleware"
	"github.com/zhouzirui/z-blog/backend/pkg/utils"
)

const livenessMessage = "Blog API is running. Try /api/blogs or /api/blogs/:id_or_slug"

// NewRouter wires HTTP routes to the blog service.
func NewRouter(blogSvc blog.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondText(w, http.StatusOK, livenessMessage)
	})

	blogHandler := blog.New(blogSvc)

	r.Route("/api", func(api chi.Router) {
		blogHandler.RegisterRoutes(api)
	})

	return r
}
