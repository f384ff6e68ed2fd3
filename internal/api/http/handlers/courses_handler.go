package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/wsei-dev/university-records/internal/api/dto"
	"github.com/wsei-dev/university-records/internal/service"
	apperrors "github.com/wsei-dev/university-records/pkg/util"
)

// CoursesHandler manages course endpoints.
type CoursesHandler struct {
	service *service.CourseService
}

// NewCoursesHandler constructs the handler.
func NewCoursesHandler(courseService *service.CourseService) *CoursesHandler {
	return &CoursesHandler{service: courseService}
}

// List GET /courses.
func (h *CoursesHandler) List(c *fiber.Ctx) error {
	courses, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		items = append(items, dto.NewCourseResponse(&courses[i]))
	}
	return c.JSON(items)
}

// Get GET /courses/:id.
func (h *CoursesHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	course, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCourseResponse(course))
}

// Create POST /courses.
func (h *CoursesHandler) Create(c *fiber.Ctx) error {
	var req dto.CourseCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	course, err := h.service.Create(c.UserContext(), actor(c), req.Title, req.Credits)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewCourseResponse(course))
}

// Update PUT /courses/:id.
func (h *CoursesHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.CourseUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	course, err := h.service.Update(c.UserContext(), actor(c), id, service.CourseUpdateInput{
		Title:   req.Title,
		Credits: req.Credits,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCourseResponse(course))
}

// Delete DELETE /courses/:id.
func (h *CoursesHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), actor(c), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
