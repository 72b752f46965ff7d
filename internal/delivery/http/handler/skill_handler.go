package handler

import (
	"errors"
	"strconv"

	"skill-trade/internal/delivery/http/middleware"
	"skill-trade/internal/pkg/response"
	"skill-trade/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

type createSkillRequest struct {
	UserID int64  `json:"user_id"`
	Offer  string `json:"offer"`
	Want   string `json:"want"`
}

type updateSkillRequest struct {
	Offer string `json:"offer"`
	Want  string `json:"want"`
}

type createSkillResponse struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	Offer  string `json:"offer"`
	Want   string `json:"want"`
}

type updateSkillResponse struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id"`
	Offer   string `json:"offer"`
	Want    string `json:"want"`
}

type deleteSkillResponse struct {
	Success bool `json:"success"`
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

// RegisterPublicRoutes wires the read path; RegisterProtectedRoutes wires the
// mutations behind the auth middleware.
func (h *SkillHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/skills", h.List)
}

func (h *SkillHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/skills", h.Create)
	r.Put("/skills/:id", h.Update)
	r.Delete("/skills/:id", h.Delete)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListListings(c.Context(), c.Query("q"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
	return response.JSON(c, fiber.StatusOK, items)
}

func (h *SkillHandler) Create(c fiber.Ctx) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	var req createSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}
	if req.UserID == 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}
	if req.UserID != callerID {
		return middleware.NewAppError(fiber.StatusForbidden, response.MessageForbidden, nil)
	}

	created, err := h.uc.CreateListing(c.Context(), callerID, req.Offer, req.Want)
	if err != nil {
		return mapSkillError(err)
	}

	return response.JSON(c, fiber.StatusOK, createSkillResponse{
		ID:     created.ID,
		UserID: created.UserID,
		Offer:  created.Offer,
		Want:   created.Want,
	})
}

func (h *SkillHandler) Update(c fiber.Ctx) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req updateSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	updated, err := h.uc.UpdateListing(c.Context(), callerID, id, req.Offer, req.Want)
	if err != nil {
		return mapSkillError(err)
	}

	return response.JSON(c, fiber.StatusOK, updateSkillResponse{
		Success: true,
		ID:      updated.ID,
		Offer:   updated.Offer,
		Want:    updated.Want,
	})
}

func (h *SkillHandler) Delete(c fiber.Ctx) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteListing(c.Context(), callerID, id); err != nil {
		return mapSkillError(err)
	}

	return response.JSON(c, fiber.StatusOK, deleteSkillResponse{Success: true})
}

func parseIDParam(c fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, middleware.NewAppError(fiber.StatusNotFound, "Skill not found", err)
	}
	return id, nil
}

func mapSkillError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, response.MessageForbidden, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
