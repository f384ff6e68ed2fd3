package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/wsei-dev/university-records/internal/api/dto"
	"github.com/wsei-dev/university-records/internal/auth"
	"github.com/wsei-dev/university-records/internal/service"
	apperrors "github.com/wsei-dev/university-records/pkg/util"
)

// StudentsHandler manages student endpoints.
type StudentsHandler struct {
	service *service.StudentService
}

// NewStudentsHandler constructs the handler.
func NewStudentsHandler(studentService *service.StudentService) *StudentsHandler {
	return &StudentsHandler{service: studentService}
}

// List GET /students.
func (h *StudentsHandler) List(c *fiber.Ctx) error {
	students, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		items = append(items, dto.NewStudentResponse(&students[i]))
	}
	return c.JSON(items)
}

// Get GET /students/:id.
func (h *StudentsHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	student, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewStudentResponse(student))
}

// Create POST /students.
func (h *StudentsHandler) Create(c *fiber.Ctx) error {
	var req dto.StudentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	student, err := h.service.Create(c.UserContext(), actor(c), req.Name, req.Email)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewStudentResponse(student))
}

// Update PUT /students/:id.
func (h *StudentsHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.StudentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	student, err := h.service.Update(c.UserContext(), actor(c), id, service.StudentUpdateInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewStudentResponse(student))
}

// Delete DELETE /students/:id.
func (h *StudentsHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), actor(c), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func pathID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", nil)
	}
	return int64(id), nil
}

func actor(c *fiber.Ctx) string {
	if claims, ok := auth.ClaimsFromContext(c); ok {
		return claims.Subject
	}
	return "anonymous"
}
