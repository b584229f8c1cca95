package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"nourishnet/domain"
	"nourishnet/internal/api/presenters"
	"nourishnet/pkg/delivery"
)

type (
	DeliveryHandler interface {
		GetAvailableJobs(c *fiber.Ctx) error
		GetPartnerJobs(c *fiber.Ctx) error
		AcceptJob(c *fiber.Ctx) error
		SubmitVerification(c *fiber.Ctx) error
		ReviewVerification(c *fiber.Ctx) error
		SetAvailability(c *fiber.Ctx) error
	}

	deliveryHandler struct {
		deliveryService delivery.DeliveryService
		validator       *validator.Validate
	}
)

func NewDeliveryHandler(deliveryService delivery.DeliveryService, validator *validator.Validate) DeliveryHandler {
	return &deliveryHandler{
		deliveryService: deliveryService,
		validator:       validator,
	}
}

func (h *deliveryHandler) GetAvailableJobs(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.deliveryService.GetAvailableJobs(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, deliveryErrorStatus(err), domain.MessageFailedGetDeliveryJobs, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDeliveryJobs)
}

func (h *deliveryHandler) GetPartnerJobs(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.deliveryService.GetPartnerJobs(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, deliveryErrorStatus(err), domain.MessageFailedGetDeliveryJobs, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDeliveryJobs)
}

func (h *deliveryHandler) AcceptJob(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	claimID := c.Params("id")

	res, err := h.deliveryService.AcceptJob(c.Context(), claimID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, deliveryErrorStatus(err), domain.MessageFailedAcceptDeliveryJob, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAcceptDeliveryJob)
}

func (h *deliveryHandler) SubmitVerification(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SubmitVerificationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if file, err := c.FormFile("drivers_license"); err == nil {
		req.DriversLicense = file
	}
	if file, err := c.FormFile("insurance"); err == nil {
		req.Insurance = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitVerification, err)
	}

	if err := h.deliveryService.SubmitVerification(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, deliveryErrorStatus(err), domain.MessageFailedSubmitVerification, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSubmitVerification)
}

func (h *deliveryHandler) ReviewVerification(c *fiber.Ctx) error {
	partnerUserID := c.Params("id")
	req := new(domain.ReviewVerificationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReviewVerification, err)
	}

	if err := h.deliveryService.ReviewVerification(c.Context(), partnerUserID, req.Status); err != nil {
		return presenters.ErrorResponse(c, deliveryErrorStatus(err), domain.MessageFailedReviewVerification, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessReviewVerification)
}

func (h *deliveryHandler) SetAvailability(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SetAvailabilityRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetAvailability, err)
	}

	if err := h.deliveryService.SetAvailability(c.Context(), userID, req.Availability); err != nil {
		return presenters.ErrorResponse(c, deliveryErrorStatus(err), domain.MessageFailedSetAvailability, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSetAvailability)
}

func deliveryErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrPartnerNotFound), errors.Is(err, domain.ErrDeliveryJobNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrPartnerNotVerified):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrDeliveryJobTaken):
		return fiber.StatusConflict
	default:
		return fiber.StatusBadRequest
	}
}
