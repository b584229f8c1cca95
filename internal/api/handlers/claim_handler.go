package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"nourishnet/domain"
	"nourishnet/internal/api/presenters"
	"nourishnet/pkg/claim"
)

type (
	ClaimHandler interface {
		CreateClaim(c *fiber.Ctx) error
		GetClaimDetails(c *fiber.Ctx) error
		GetMyClaims(c *fiber.Ctx) error
		GetIncomingClaims(c *fiber.Ctx) error
		GetItemClaims(c *fiber.Ctx) error
		UpdateClaimStatus(c *fiber.Ctx) error
	}

	claimHandler struct {
		claimService claim.ClaimService
		validator    *validator.Validate
	}
)

func NewClaimHandler(claimService claim.ClaimService, validator *validator.Validate) ClaimHandler {
	return &claimHandler{
		claimService: claimService,
		validator:    validator,
	}
}

func (h *claimHandler) CreateClaim(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateClaimRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateClaim, err)
	}

	res, err := h.claimService.CreateClaim(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, claimErrorStatus(err), domain.MessageFailedCreateClaim, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateClaim)
}

func (h *claimHandler) GetClaimDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	claimID := c.Params("id")

	res, err := h.claimService.GetClaimByID(c.Context(), claimID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, claimErrorStatus(err), domain.MessageFailedGetClaims, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetClaims)
}

func (h *claimHandler) GetMyClaims(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.claimService.GetMyClaims(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetClaims, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetClaims)
}

func (h *claimHandler) GetIncomingClaims(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.claimService.GetIncomingClaims(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetClaims, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetClaims)
}

func (h *claimHandler) GetItemClaims(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	foodItemID := c.Params("id")

	res, err := h.claimService.GetItemClaims(c.Context(), foodItemID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, claimErrorStatus(err), domain.MessageFailedGetClaims, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetClaims)
}

func (h *claimHandler) UpdateClaimStatus(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	claimID := c.Params("id")
	req := new(domain.UpdateClaimStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateClaimStatus, err)
	}

	res, err := h.claimService.UpdateClaimStatus(c.Context(), claimID, req.Status, userID)
	if err != nil {
		return presenters.ErrorResponse(c, claimErrorStatus(err), domain.MessageFailedUpdateClaimStatus, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateClaimStatus)
}

func claimErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrClaimNotFound), errors.Is(err, domain.ErrFoodItemNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorizedClaimAccess):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrInvalidClaimTransition), errors.Is(err, domain.ErrClaimAlreadyExists):
		return fiber.StatusConflict
	default:
		return fiber.StatusBadRequest
	}
}
