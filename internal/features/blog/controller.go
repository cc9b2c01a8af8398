package blog

import (
	"go-ngo/internal/common/apperr"
	"go-ngo/internal/common/validation"
	"go-ngo/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

type BlogController struct {
	BlogService BlogService
}

func NewBlogController(blogService BlogService) *BlogController {
	return &BlogController{BlogService: blogService}
}

type CreateBlogRequest struct {
	Title           string   `json:"title" validate:"required,min=3"`
	Category        string   `json:"category" validate:"required,min=2"`
	Content         string   `json:"content" validate:"required,min=100"`
	Status          string   `json:"status" validate:"omitempty,oneof=Draft Review Published"`
	MetaDescription string   `json:"metaDescription" validate:"omitempty,max=160"`
	SEOKeywords     []string `json:"seoKeywords" validate:"omitempty,max=10"`
	Tags            []string `json:"tags" validate:"omitempty,max=7"`
	VideoURL        string   `json:"videoUrl" validate:"omitempty,url"`
}

type UpdateBlogRequest struct {
	Title           string   `json:"title" validate:"omitempty,min=3"`
	Category        string   `json:"category" validate:"omitempty,min=2"`
	Content         string   `json:"content" validate:"omitempty,min=100"`
	Status          string   `json:"status" validate:"omitempty,oneof=Draft Review Published"`
	MetaDescription string   `json:"metaDescription" validate:"omitempty,max=160"`
	SEOKeywords     []string `json:"seoKeywords" validate:"omitempty,max=10"`
	Tags            []string `json:"tags" validate:"omitempty,max=7"`
	VideoURL        string   `json:"videoUrl" validate:"omitempty,url"`
}

func (ctrl *BlogController) CreateBlog(c *fiber.Ctx) error {
	var req CreateBlogRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return apperr.Unauthenticated("Not authenticated")
	}

	blog := &Blog{
		Title:           req.Title,
		Category:        req.Category,
		Content:         req.Content,
		Status:          req.Status,
		AuthorID:        principal.ID,
		MetaDescription: req.MetaDescription,
		SEOKeywords:     req.SEOKeywords,
		Tags:            req.Tags,
		VideoURL:        req.VideoURL,
	}
	if err := ctrl.BlogService.Create(c.Context(), blog); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "blog": blog})
}

func (ctrl *BlogController) ListPublishedBlogs(c *fiber.Ctx) error {
	blogs, err := ctrl.BlogService.ListPublished(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "blogs": blogs})
}

func (ctrl *BlogController) ListAllBlogs(c *fiber.Ctx) error {
	blogs, err := ctrl.BlogService.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "blogs": blogs})
}

func (ctrl *BlogController) GetBlogBySlug(c *fiber.Ctx) error {
	blog, err := ctrl.BlogService.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "blog": blog})
}

func (ctrl *BlogController) UpdateBlog(c *fiber.Ctx) error {
	var req UpdateBlogRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	set := bson.M{}
	if req.Title != "" {
		set["title"] = req.Title
	}
	if req.Category != "" {
		set["category"] = req.Category
	}
	if req.Content != "" {
		set["content"] = req.Content
	}
	if req.Status != "" {
		set["status"] = req.Status
	}
	if req.MetaDescription != "" {
		set["meta_description"] = req.MetaDescription
	}
	if req.SEOKeywords != nil {
		set["seo_keywords"] = req.SEOKeywords
	}
	if req.Tags != nil {
		set["tags"] = req.Tags
	}
	if req.VideoURL != "" {
		set["video_url"] = req.VideoURL
	}
	if len(set) == 0 {
		return apperr.BadRequest("Nothing to update")
	}

	blog, err := ctrl.BlogService.Update(c.Context(), c.Params("id"), set)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "blog": blog})
}

func (ctrl *BlogController) DeleteBlog(c *fiber.Ctx) error {
	if err := ctrl.BlogService.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "Blog deleted"})
}
