package handler

import (
	"fireforge/internal/dto"
	"fireforge/internal/service"

	"github.com/gofiber/fiber/v2"
)

// BlogHandler handles public article reads and the admin CRUD behind them
type BlogHandler struct {
	service service.BlogService
}

// NewBlogHandler creates a new BlogHandler instance
func NewBlogHandler(service service.BlogService) *BlogHandler {
	return &BlogHandler{
		service: service,
	}
}

// ListPublishedPosts handles GET /api/posts.
func (h *BlogHandler) ListPublishedPosts(c *fiber.Ctx) error {
	posts, err := h.service.ListPublishedPosts(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(posts)
}

// GetPublishedPost handles GET /api/posts/:slug. Drafts come back 404.
func (h *BlogHandler) GetPublishedPost(c *fiber.Ctx) error {
	post, err := h.service.GetPublishedPost(c.Context(), c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(post)
}

// ListAllPosts handles GET /api/admin/posts, drafts included.
func (h *BlogHandler) ListAllPosts(c *fiber.Ctx) error {
	posts, err := h.service.ListAllPosts(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(posts)
}

// CreatePost handles POST /api/admin/posts.
func (h *BlogHandler) CreatePost(c *fiber.Ctx) error {
	var req dto.BlogPostRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	post, err := h.service.CreatePost(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /api/admin/posts/:id.
func (h *BlogHandler) UpdatePost(c *fiber.Ctx) error {
	var req dto.BlogPostRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	post, err := h.service.UpdatePost(c.Context(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/admin/posts/:id.
func (h *BlogHandler) DeletePost(c *fiber.Ctx) error {
	if err := h.service.DeletePost(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetPublished handles PATCH /api/admin/posts/:id/publish.
func (h *BlogHandler) SetPublished(c *fiber.Ctx) error {
	var req dto.PublishUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.service.SetPublished(c.Context(), c.Params("id"), req.Published); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
