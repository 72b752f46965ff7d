package handler

import (
	"errors"
	"strconv"

	"skill-trade/internal/delivery/http/middleware"
	"skill-trade/internal/pkg/response"
	"skill-trade/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MessageHandler struct {
	uc usecase.MessageUsecase
}

type sendMessageRequest struct {
	FromUserID int64  `json:"from_user_id"`
	ToUsername string `json:"to_username"`
	Body       string `json:"body"`
}

type sendMessageResponse struct {
	ID         int64  `json:"id"`
	FromUserID int64  `json:"from_user_id"`
	ToUserID   int64  `json:"to_user_id"`
	Body       string `json:"body"`
}

func NewMessageHandler(uc usecase.MessageUsecase) *MessageHandler {
	return &MessageHandler{uc: uc}
}

func (h *MessageHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/messages", h.List)
}

func (h *MessageHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/messages", h.Send)
}

func (h *MessageHandler) Send(c fiber.Ctx) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	var req sendMessageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}
	if req.FromUserID == 0 || req.ToUsername == "" || req.Body == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}
	if req.FromUserID != callerID {
		return middleware.NewAppError(fiber.StatusForbidden, response.MessageForbidden, nil)
	}

	sent, err := h.uc.Send(c.Context(), callerID, req.ToUsername, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
		case errors.Is(err, usecase.ErrRecipientNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Recipient not found", err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
		}
	}

	return response.JSON(c, fiber.StatusOK, sendMessageResponse{
		ID:         sent.ID,
		FromUserID: sent.FromUserID,
		ToUserID:   sent.ToUserID,
		Body:       sent.Body,
	})
}

func (h *MessageHandler) List(c fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "user_id required", err)
	}

	items, err := h.uc.ListForUser(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return response.JSON(c, fiber.StatusOK, items)
}
