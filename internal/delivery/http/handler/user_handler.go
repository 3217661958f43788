package handler

import (
	"jobswipe/internal/delivery/http/dto"
	"jobswipe/internal/pkg/response"
	"jobswipe/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const defaultSwipeListLimit = 100

type UserHandler struct {
	uc usecase.UserUsecase
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Get("/:id", h.Get)
	r.Patch("/:id", h.Update)
	r.Put("/:id/preferences", h.UpdatePreferences)
	r.Get("/:id/swipes", h.ListSwipes)
}

func (h *UserHandler) Create(c fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	in := usecase.CreateUserInput{Email: req.Email, Name: req.Name, Skills: req.Skills}
	if req.Preferences != nil {
		in.Preferences = &usecase.PreferencesInput{
			JobTypes:     req.Preferences.JobTypes,
			LocationType: req.Preferences.LocationType,
			MinSalary:    req.Preferences.MinSalary,
		}
	}

	created, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "User created", dto.NewUserResponse(created))
}

func (h *UserHandler) Get(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	usr, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(usr))
}

func (h *UserHandler) Update(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateUserRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if req.Email == nil && req.Name == nil && req.Skills == nil {
		return invalidPayload(nil)
	}

	updated, err := h.uc.Update(c.Context(), id, usecase.UpdateUserInput{
		Email:  req.Email,
		Name:   req.Name,
		Skills: req.Skills,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(updated))
}

func (h *UserHandler) UpdatePreferences(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.PreferencesRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	updated, err := h.uc.UpdatePreferences(c.Context(), id, usecase.PreferencesInput{
		JobTypes:     req.JobTypes,
		LocationType: req.LocationType,
		MinSalary:    req.MinSalary,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(updated))
}

func (h *UserHandler) ListSwipes(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	limit, err := parseQueryInt(c, "limit", defaultSwipeListLimit)
	if err != nil {
		return err
	}

	items, err := h.uc.ListSwipes(c.Context(), id, limit)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSwipeResponses(items))
}
