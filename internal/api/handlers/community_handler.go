package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"nourishnet/domain"
	"nourishnet/internal/api/presenters"
	"nourishnet/pkg/community"
)

type (
	CommunityHandler interface {
		AddPost(c *fiber.Ctx) error
		GetPosts(c *fiber.Ctx) error
		LikePost(c *fiber.Ctx) error
	}

	communityHandler struct {
		communityService community.CommunityService
		validator        *validator.Validate
	}
)

func NewCommunityHandler(communityService community.CommunityService, validator *validator.Validate) CommunityHandler {
	return &communityHandler{
		communityService: communityService,
		validator:        validator,
	}
}

func (h *communityHandler) AddPost(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddCommunityPostRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPost, err)
	}

	res, err := h.communityService.AddPost(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPost, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddPost)
}

func (h *communityHandler) GetPosts(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	posts, count, err := h.communityService.GetPosts(c.Context(), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPosts, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"posts": posts,
		"total": count,
	}, fiber.StatusOK, domain.MessageSuccessGetPosts)
}

func (h *communityHandler) LikePost(c *fiber.Ctx) error {
	postID := c.Params("id")

	res, err := h.communityService.LikePost(c.Context(), postID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLikePost, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLikePost)
}
