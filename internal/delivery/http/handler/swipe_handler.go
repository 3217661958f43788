package handler

import (
	"jobswipe/internal/delivery/http/dto"
	"jobswipe/internal/pkg/response"
	"jobswipe/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SwipeHandler struct {
	uc usecase.SwipeUsecase
}

func NewSwipeHandler(uc usecase.SwipeUsecase) *SwipeHandler {
	return &SwipeHandler{uc: uc}
}

func (h *SwipeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Record)
	r.Post("/batch", h.RecordBatch)
	r.Patch("/:id", h.UpdateAction)
}

func (h *SwipeHandler) Record(c fiber.Ctx) error {
	var req dto.SwipeRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	s, inserted, err := h.uc.Record(requestContext(c), usecase.SwipeInput{
		UserID: req.UserID,
		JobID:  req.JobID,
		Action: req.Action,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	status := fiber.StatusOK
	if inserted {
		status = fiber.StatusCreated
	}
	return response.Success(c, status, response.MessageOK, dto.NewSwipeResponse(s))
}

func (h *SwipeHandler) RecordBatch(c fiber.Ctx) error {
	var req []dto.SwipeRequest
	if err := c.Bind().Body(&req); err != nil {
		return invalidPayload(err)
	}
	if err := validateEach(req); err != nil {
		return err
	}

	in := make([]usecase.SwipeInput, 0, len(req))
	for _, it := range req {
		in = append(in, usecase.SwipeInput{UserID: it.UserID, JobID: it.JobID, Action: it.Action})
	}

	res, err := h.uc.RecordBatch(requestContext(c), in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SwipeBatchResponse{
		InsertedCount: res.Inserted,
		UpdatedCount:  res.Updated,
	})
}

func (h *SwipeHandler) UpdateAction(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateSwipeRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	updated, err := h.uc.UpdateAction(c.Context(), id, req.Action)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSwipeResponse(updated))
}
