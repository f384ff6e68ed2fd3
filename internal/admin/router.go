package admin

import (
	"embed"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"

	"github.com/wsei-dev/university-records/internal/domain"
)

//go:embed views/*.html
var viewsFS embed.FS

// NewViewEngine returns the template engine over the embedded views.
func NewViewEngine() *html.Engine {
	return html.NewFileSystem(http.FS(viewsFS), ".html")
}

// RegisterRoutes wires the admin pages. Everything except the login page
// requires a signed-in session; mutating pages additionally require the
// Admin role, mirroring the API's write policy.
func RegisterRoutes(app *fiber.App, h *Handlers) {
	app.Get("/login", h.LoginForm)
	app.Post("/login", h.Login)
	app.Post("/logout", h.Logout)

	signedIn := app.Group("", h.requireLogin)
	signedIn.Get("/", h.Dashboard)
	signedIn.Get("/denied", h.Denied)

	signedIn.Get("/students", h.StudentsIndex)
	signedIn.Get("/courses", h.CoursesIndex)
	signedIn.Get("/enrollments", h.EnrollmentsIndex)

	adminOnly := signedIn.Group("", h.requireAdmin)
	adminOnly.Get("/students/new", h.StudentNew)
	adminOnly.Post("/students", h.StudentCreate)
	adminOnly.Get("/students/:id/edit", h.StudentEdit)
	adminOnly.Post("/students/:id", h.StudentUpdate)
	adminOnly.Post("/students/:id/delete", h.StudentDelete)

	adminOnly.Get("/courses/new", h.CourseNew)
	adminOnly.Post("/courses", h.CourseCreate)
	adminOnly.Get("/courses/:id/edit", h.CourseEdit)
	adminOnly.Post("/courses/:id", h.CourseUpdate)
	adminOnly.Post("/courses/:id/delete", h.CourseDelete)

	adminOnly.Get("/enrollments/new", h.EnrollmentNew)
	adminOnly.Post("/enrollments", h.EnrollmentCreate)
	adminOnly.Get("/enrollments/:id/edit", h.EnrollmentEdit)
	adminOnly.Post("/enrollments/:id", h.EnrollmentUpdate)
	adminOnly.Post("/enrollments/:id/delete", h.EnrollmentDelete)
}

func (h *Handlers) requireLogin(c *fiber.Ctx) error {
	if h.sessions.Token(c) == "" {
		return c.Redirect("/login")
	}
	return c.Next()
}

func (h *Handlers) requireAdmin(c *fiber.Ctx) error {
	if h.sessions.Role(c) != string(domain.RoleAdmin) {
		return c.Redirect("/denied")
	}
	return c.Next()
}
