package admin

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/wsei-dev/university-records/internal/api/dto"
)

// EnrollmentsIndex GET /enrollments.
func (h *Handlers) EnrollmentsIndex(c *fiber.Ctx) error {
	enrollments, err := h.client.ListEnrollments(c.UserContext(), h.sessions.Token(c))
	if err != nil {
		return h.fail(c, "views/enrollments_index", nil, err)
	}
	return h.render(c, "views/enrollments_index", fiber.Map{"Enrollments": enrollments})
}

// EnrollmentNew GET /enrollments/new: the form needs student and course
// lookups for its selects.
func (h *Handlers) EnrollmentNew(c *fiber.Ctx) error {
	data, err := h.enrollmentLookups(c)
	if err != nil {
		return h.fail(c, "views/enrollments_index", nil, err)
	}
	data["Title"] = "New enrollment"
	data["Action"] = "/enrollments"
	return h.render(c, "views/enrollments_form", data)
}

// EnrollmentCreate POST /enrollments.
func (h *Handlers) EnrollmentCreate(c *fiber.Ctx) error {
	studentID, _ := strconv.ParseInt(c.FormValue("studentId"), 10, 64)
	courseID, _ := strconv.ParseInt(c.FormValue("courseId"), 10, 64)
	req := dto.EnrollmentCreateRequest{StudentID: studentID, CourseID: courseID}

	if err := h.client.CreateEnrollment(c.UserContext(), h.sessions.Token(c), req); err != nil {
		data, lookupErr := h.enrollmentLookups(c)
		if lookupErr != nil {
			return h.fail(c, "views/enrollments_index", nil, lookupErr)
		}
		data["Title"] = "New enrollment"
		data["Action"] = "/enrollments"
		return h.fail(c, "views/enrollments_form", data, err)
	}
	return c.Redirect("/enrollments")
}

// EnrollmentEdit GET /enrollments/:id/edit.
func (h *Handlers) EnrollmentEdit(c *fiber.Ctx) error {
	id, err := pageID(c)
	if err != nil {
		return c.Redirect("/enrollments")
	}
	enrollment, err := h.client.GetEnrollment(c.UserContext(), h.sessions.Token(c), id)
	if err != nil {
		return h.fail(c, "views/enrollments_index", nil, err)
	}
	data, err := h.enrollmentLookups(c)
	if err != nil {
		return h.fail(c, "views/enrollments_index", nil, err)
	}
	data["Title"] = "Edit enrollment"
	data["Action"] = "/enrollments/" + strconv.FormatInt(id, 10)
	data["SelectedStudent"] = enrollment.StudentID
	data["SelectedCourse"] = enrollment.CourseID
	return h.render(c, "views/enrollments_form", data)
}

// EnrollmentUpdate POST /enrollments/:id.
func (h *Handlers) EnrollmentUpdate(c *fiber.Ctx) error {
	id, err := pageID(c)
	if err != nil {
		return c.Redirect("/enrollments")
	}
	var req dto.EnrollmentUpdateRequest
	if studentID, err := strconv.ParseInt(c.FormValue("studentId"), 10, 64); err == nil && studentID > 0 {
		req.StudentID = &studentID
	}
	if courseID, err := strconv.ParseInt(c.FormValue("courseId"), 10, 64); err == nil && courseID > 0 {
		req.CourseID = &courseID
	}

	if err := h.client.UpdateEnrollment(c.UserContext(), h.sessions.Token(c), id, req); err != nil {
		data, lookupErr := h.enrollmentLookups(c)
		if lookupErr != nil {
			return h.fail(c, "views/enrollments_index", nil, lookupErr)
		}
		data["Title"] = "Edit enrollment"
		data["Action"] = "/enrollments/" + strconv.FormatInt(id, 10)
		return h.fail(c, "views/enrollments_form", data, err)
	}
	return c.Redirect("/enrollments")
}

// EnrollmentDelete POST /enrollments/:id/delete.
func (h *Handlers) EnrollmentDelete(c *fiber.Ctx) error {
	id, err := pageID(c)
	if err != nil {
		return c.Redirect("/enrollments")
	}
	if err := h.client.DeleteEnrollment(c.UserContext(), h.sessions.Token(c), id); err != nil {
		return h.fail(c, "views/enrollments_index", nil, err)
	}
	return c.Redirect("/enrollments")
}

func (h *Handlers) enrollmentLookups(c *fiber.Ctx) (fiber.Map, error) {
	token := h.sessions.Token(c)
	students, err := h.client.ListStudents(c.UserContext(), token)
	if err != nil {
		return nil, err
	}
	courses, err := h.client.ListCourses(c.UserContext(), token)
	if err != nil {
		return nil, err
	}
	return fiber.Map{"Students": students, "Courses": courses}, nil
}
