package admin

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/wsei-dev/university-records/internal/api/dto"
)

// StudentsIndex GET /students.
func (h *Handlers) StudentsIndex(c *fiber.Ctx) error {
	students, err := h.client.ListStudents(c.UserContext(), h.sessions.Token(c))
	if err != nil {
		return h.fail(c, "views/students_index", nil, err)
	}
	return h.render(c, "views/students_index", fiber.Map{"Students": students})
}

// StudentNew GET /students/new.
func (h *Handlers) StudentNew(c *fiber.Ctx) error {
	return h.render(c, "views/students_form", fiber.Map{
		"Title": "New student", "Action": "/students",
		"Name": "", "Email": "",
	})
}

// StudentCreate POST /students.
func (h *Handlers) StudentCreate(c *fiber.Ctx) error {
	req := dto.StudentCreateRequest{
		Name:  c.FormValue("name"),
		Email: c.FormValue("email"),
	}
	if err := h.client.CreateStudent(c.UserContext(), h.sessions.Token(c), req); err != nil {
		return h.fail(c, "views/students_form", fiber.Map{
			"Title": "New student", "Action": "/students",
			"Name": req.Name, "Email": req.Email,
		}, err)
	}
	return c.Redirect("/students")
}

// StudentEdit GET /students/:id/edit.
func (h *Handlers) StudentEdit(c *fiber.Ctx) error {
	id, err := pageID(c)
	if err != nil {
		return c.Redirect("/students")
	}
	student, err := h.client.GetStudent(c.UserContext(), h.sessions.Token(c), id)
	if err != nil {
		return h.fail(c, "views/students_index", nil, err)
	}
	return h.render(c, "views/students_form", fiber.Map{
		"Title":  "Edit student",
		"Action": "/students/" + strconv.FormatInt(id, 10),
		"Name":   student.Name,
		"Email":  student.Email,
	})
}

// StudentUpdate POST /students/:id.
func (h *Handlers) StudentUpdate(c *fiber.Ctx) error {
	id, err := pageID(c)
	if err != nil {
		return c.Redirect("/students")
	}
	req := dto.StudentUpdateRequest{
		Name:  c.FormValue("name"),
		Email: c.FormValue("email"),
	}
	if err := h.client.UpdateStudent(c.UserContext(), h.sessions.Token(c), id, req); err != nil {
		return h.fail(c, "views/students_form", fiber.Map{
			"Title": "Edit student", "Action": "/students/" + strconv.FormatInt(id, 10),
			"Name": req.Name, "Email": req.Email,
		}, err)
	}
	return c.Redirect("/students")
}

// StudentDelete POST /students/:id/delete.
func (h *Handlers) StudentDelete(c *fiber.Ctx) error {
	id, err := pageID(c)
	if err != nil {
		return c.Redirect("/students")
	}
	if err := h.client.DeleteStudent(c.UserContext(), h.sessions.Token(c), id); err != nil {
		return h.fail(c, "views/students_index", nil, err)
	}
	return c.Redirect("/students")
}

func pageID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, err
	}
	return int64(id), nil
}
