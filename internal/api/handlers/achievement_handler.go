package handlers

import (
	"github.com/gofiber/fiber/v2"

	"nourishnet/domain"
	"nourishnet/internal/api/presenters"
	"nourishnet/pkg/achievement"
)

type (
	AchievementHandler interface {
		GetAchievements(c *fiber.Ctx) error
		GetUserAchievements(c *fiber.Ctx) error
	}

	achievementHandler struct {
		achievementService achievement.AchievementService
	}
)

func NewAchievementHandler(achievementService achievement.AchievementService) AchievementHandler {
	return &achievementHandler{achievementService: achievementService}
}

func (h *achievementHandler) GetAchievements(c *fiber.Ctx) error {
	res, err := h.achievementService.GetAchievements(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAchievements, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAchievements)
}

func (h *achievementHandler) GetUserAchievements(c *fiber.Ctx) error {
	userID := c.Params("id")

	res, err := h.achievementService.GetUserAchievements(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAchievements, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAchievements)
}
