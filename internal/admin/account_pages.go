package admin

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// LoginForm GET /login.
func (h *Handlers) LoginForm(c *fiber.Ctx) error {
	return c.Render("views/login", fiber.Map{}, layoutName)
}

// Login POST /login: acquires a token from the API and caches it in the
// session.
func (h *Handlers) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	token, err := h.client.Token(c.UserContext(), username, password)
	if err != nil {
		msg := "wrong username or password"
		if !errors.Is(err, ErrUnauthorized) {
			msg = "the records API is unreachable"
		}
		return c.Render("views/login", fiber.Map{"Error": msg}, layoutName)
	}

	if err := h.sessions.SignIn(c, token); err != nil {
		return err
	}
	return c.Redirect("/")
}

// Logout POST /logout.
func (h *Handlers) Logout(c *fiber.Ctx) error {
	if err := h.sessions.SignOut(c); err != nil {
		return err
	}
	return c.Redirect("/login")
}

// Denied GET /denied.
func (h *Handlers) Denied(c *fiber.Ctx) error {
	return h.render(c, "views/denied", nil)
}

func emptyCounts() fiber.Map {
	return fiber.Map{"StudentCount": 0, "CourseCount": 0, "EnrollmentCount": 0}
}

// Dashboard GET /.
func (h *Handlers) Dashboard(c *fiber.Ctx) error {
	token := h.sessions.Token(c)

	students, err := h.client.ListStudents(c.UserContext(), token)
	if err != nil {
		return h.fail(c, "views/dashboard", emptyCounts(), err)
	}
	courses, err := h.client.ListCourses(c.UserContext(), token)
	if err != nil {
		return h.fail(c, "views/dashboard", emptyCounts(), err)
	}
	enrollments, err := h.client.ListEnrollments(c.UserContext(), token)
	if err != nil {
		return h.fail(c, "views/dashboard", emptyCounts(), err)
	}

	return h.render(c, "views/dashboard", fiber.Map{
		"StudentCount":    len(students),
		"CourseCount":     len(courses),
		"EnrollmentCount": len(enrollments),
	})
}
