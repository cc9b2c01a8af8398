package blog

import (
	"go-ngo/internal/middleware"
	"go-ngo/internal/rbac"

	"github.com/gofiber/fiber/v2"
)

type BlogApi struct {
	controller *BlogController
	resolver   middleware.PrincipalResolver
}

func NewBlogApi(controller *BlogController, resolver middleware.PrincipalResolver) *BlogApi {
	return &BlogApi{controller: controller, resolver: resolver}
}

// Setup registers blog routes. Published posts are public; everything
// else runs through the blogs module permissions. The admin listing is
// registered before the slug route so "/admin" never matches as a slug.
func (h *BlogApi) Setup(app *fiber.App) {
	blogs := app.Group("/api/blog")

	blogs.Get("/", h.controller.ListPublishedBlogs)

	auth := middleware.Authenticate(h.resolver)
	blogs.Get("/admin", auth, middleware.RequireModulePermission("blogs", rbac.ActionRead), h.controller.ListAllBlogs)
	blogs.Post("/", auth, middleware.RequireModulePermission("blogs", rbac.ActionCreate), h.controller.CreateBlog)
	blogs.Put("/:id", auth, middleware.RequireModulePermission("blogs", rbac.ActionUpdate), h.controller.UpdateBlog)
	blogs.Delete("/:id", auth, middleware.RequireModulePermission("blogs", rbac.ActionDelete), h.controller.DeleteBlog)

	blogs.Get("/:slug", h.controller.GetBlogBySlug)
}
