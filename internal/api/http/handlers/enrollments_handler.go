package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/wsei-dev/university-records/internal/api/dto"
	"github.com/wsei-dev/university-records/internal/service"
	apperrors "github.com/wsei-dev/university-records/pkg/util"
)

// EnrollmentsHandler manages enrollment endpoints.
type EnrollmentsHandler struct {
	service *service.EnrollmentService
}

// NewEnrollmentsHandler constructs the handler.
func NewEnrollmentsHandler(enrollmentService *service.EnrollmentService) *EnrollmentsHandler {
	return &EnrollmentsHandler{service: enrollmentService}
}

// List GET /enrollments.
func (h *EnrollmentsHandler) List(c *fiber.Ctx) error {
	enrollments, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.EnrollmentResponse, 0, len(enrollments))
	for i := range enrollments {
		items = append(items, dto.NewEnrollmentResponse(&enrollments[i]))
	}
	return c.JSON(items)
}

// Get GET /enrollments/:id.
func (h *EnrollmentsHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	enrollment, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEnrollmentResponse(enrollment))
}

// Create POST /enrollments.
func (h *EnrollmentsHandler) Create(c *fiber.Ctx) error {
	var req dto.EnrollmentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	enrollment, err := h.service.Create(c.UserContext(), actor(c), req.StudentID, req.CourseID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewEnrollmentResponse(enrollment))
}

// Update PUT /enrollments/:id.
func (h *EnrollmentsHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.EnrollmentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	enrollment, err := h.service.Update(c.UserContext(), actor(c), id, service.EnrollmentUpdateInput{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEnrollmentResponse(enrollment))
}

// Delete DELETE /enrollments/:id.
func (h *EnrollmentsHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), actor(c), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
