package admin

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/wsei-dev/university-records/internal/api/dto"
)

// CoursesIndex GET /courses.
func (h *Handlers) CoursesIndex(c *fiber.Ctx) error {
	courses, err := h.client.ListCourses(c.UserContext(), h.sessions.Token(c))
	if err != nil {
		return h.fail(c, "views/courses_index", nil, err)
	}
	return h.render(c, "views/courses_index", fiber.Map{"Courses": courses})
}

// CourseNew GET /courses/new.
func (h *Handlers) CourseNew(c *fiber.Ctx) error {
	return h.render(c, "views/courses_form", fiber.Map{
		"Title": "New course", "Action": "/courses",
		"CourseTitle": "", "Credits": 0,
	})
}

// CourseCreate POST /courses.
func (h *Handlers) CourseCreate(c *fiber.Ctx) error {
	credits, _ := strconv.Atoi(c.FormValue("credits"))
	req := dto.CourseCreateRequest{
		Title:   c.FormValue("title"),
		Credits: credits,
	}
	if err := h.client.CreateCourse(c.UserContext(), h.sessions.Token(c), req); err != nil {
		return h.fail(c, "views/courses_form", fiber.Map{
			"Title": "New course", "Action": "/courses",
			"CourseTitle": req.Title, "Credits": req.Credits,
		}, err)
	}
	return c.Redirect("/courses")
}

// CourseEdit GET /courses/:id/edit.
func (h *Handlers) CourseEdit(c *fiber.Ctx) error {
	id, err := pageID(c)
	if err != nil {
		return c.Redirect("/courses")
	}
	course, err := h.client.GetCourse(c.UserContext(), h.sessions.Token(c), id)
	if err != nil {
		return h.fail(c, "views/courses_index", nil, err)
	}
	return h.render(c, "views/courses_form", fiber.Map{
		"Title":       "Edit course",
		"Action":      "/courses/" + strconv.FormatInt(id, 10),
		"CourseTitle": course.Title,
		"Credits":     course.Credits,
	})
}

// CourseUpdate POST /courses/:id.
func (h *Handlers) CourseUpdate(c *fiber.Ctx) error {
	id, err := pageID(c)
	if err != nil {
		return c.Redirect("/courses")
	}
	req := dto.CourseUpdateRequest{Title: c.FormValue("title")}
	if raw := c.FormValue("credits"); raw != "" {
		if credits, err := strconv.Atoi(raw); err == nil {
			req.Credits = &credits
		}
	}
	if err := h.client.UpdateCourse(c.UserContext(), h.sessions.Token(c), id, req); err != nil {
		return h.fail(c, "views/courses_form", fiber.Map{
			"Title": "Edit course", "Action": "/courses/" + strconv.FormatInt(id, 10),
			"CourseTitle": req.Title, "Credits": c.FormValue("credits"),
		}, err)
	}
	return c.Redirect("/courses")
}

// CourseDelete POST /courses/:id/delete.
func (h *Handlers) CourseDelete(c *fiber.Ctx) error {
	id, err := pageID(c)
	if err != nil {
		return c.Redirect("/courses")
	}
	if err := h.client.DeleteCourse(c.UserContext(), h.sessions.Token(c), id); err != nil {
		return h.fail(c, "views/courses_index", nil, err)
	}
	return c.Redirect("/courses")
}
