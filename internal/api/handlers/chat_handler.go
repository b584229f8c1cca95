package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"nourishnet/domain"
	"nourishnet/internal/api/presenters"
	"nourishnet/pkg/chat"
)

type (
	ChatHandler interface {
		SendChatRequest(c *fiber.Ctx) error
		GetChatRequests(c *fiber.Ctx) error
		AnswerChatRequest(c *fiber.Ctx) error
		GetConversations(c *fiber.Ctx) error
		GetMessages(c *fiber.Ctx) error
		SendMessage(c *fiber.Ctx) error
	}

	chatHandler struct {
		chatService chat.ChatService
		validator   *validator.Validate
	}
)

func NewChatHandler(chatService chat.ChatService, validator *validator.Validate) ChatHandler {
	return &chatHandler{
		chatService: chatService,
		validator:   validator,
	}
}

func (h *chatHandler) SendChatRequest(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SendChatRequestRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendChatRequest, err)
	}

	res, err := h.chatService.SendChatRequest(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, chatErrorStatus(err), domain.MessageFailedSendChatRequest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSendChatRequest)
}

func (h *chatHandler) GetChatRequests(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.chatService.GetChatRequests(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendChatRequest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSendChatRequest)
}

func (h *chatHandler) AnswerChatRequest(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	requestID := c.Params("id")
	req := new(domain.AnswerChatRequestRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAnswerChatRequest, err)
	}

	res, err := h.chatService.AnswerChatRequest(c.Context(), requestID, req.Answer, userID)
	if err != nil {
		return presenters.ErrorResponse(c, chatErrorStatus(err), domain.MessageFailedAnswerChatRequest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAnswerChatRequest)
}

func (h *chatHandler) GetConversations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.chatService.GetConversations(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetConversations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetConversations)
}

func (h *chatHandler) GetMessages(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	conversationID := c.Params("id")

	res, err := h.chatService.GetMessages(c.Context(), conversationID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, chatErrorStatus(err), domain.MessageFailedGetMessages, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMessages)
}

func (h *chatHandler) SendMessage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	conversationID := c.Params("id")
	req := new(domain.SendMessageRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendMessage, err)
	}

	res, err := h.chatService.SendMessage(c.Context(), conversationID, userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, chatErrorStatus(err), domain.MessageFailedSendMessage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSendMessage)
}

func chatErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrChatRequestNotFound), errors.Is(err, domain.ErrConversationNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrNotParticipant), errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrChatRequestExists), errors.Is(err, domain.ErrChatRequestResolved):
		return fiber.StatusConflict
	default:
		return fiber.StatusBadRequest
	}
}
