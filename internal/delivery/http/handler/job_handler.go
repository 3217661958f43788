package handler

import (
	"jobswipe/internal/delivery/http/dto"
	"jobswipe/internal/pkg/response"
	"jobswipe/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Patch("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	created, err := h.uc.Create(c.Context(), usecase.CreateJobInput{
		Title:          req.Title,
		Company:        req.Company,
		LogoURL:        req.LogoURL,
		Salary:         req.Salary.ToDomain(),
		JobType:        req.JobType,
		IsRemote:       req.IsRemote,
		Location:       req.Location,
		SkillsRequired: req.SkillsRequired,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Job created", dto.NewJobResponse(created))
}

func (h *JobHandler) List(c fiber.Ctx) error {
	page, err := parseQueryInt(c, "page", 1)
	if err != nil {
		return err
	}
	limit, err := parseQueryInt(c, "limit", 0)
	if err != nil {
		return err
	}

	res, err := h.uc.List(c.Context(), page, limit)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.JobListResponse{
		Items: dto.NewJobResponses(res.Items),
		Page:  res.Page,
		Limit: res.Limit,
	})
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	j, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(j))
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateJobRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	in := usecase.UpdateJobInput{
		Title:          req.Title,
		Company:        req.Company,
		LogoURL:        req.LogoURL,
		JobType:        req.JobType,
		IsRemote:       req.IsRemote,
		Location:       req.Location,
		SkillsRequired: req.SkillsRequired,
	}
	if req.Salary != nil {
		s := req.Salary.ToDomain()
		in.Salary = &s
	}
	if in == (usecase.UpdateJobInput{}) {
		return invalidPayload(nil)
	}

	updated, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(updated))
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job deleted", fiber.Map{"id": id})
}
