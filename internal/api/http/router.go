package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wsei-dev/university-records/internal/api/http/handlers"
	"github.com/wsei-dev/university-records/internal/auth"
	"github.com/wsei-dev/university-records/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Security    *handlers.SecurityHandler
	Students    *handlers.StudentsHandler
	Courses     *handlers.CoursesHandler
	Enrollments *handlers.EnrollmentsHandler
	Gate        *auth.Gate
}

type route struct {
	method  string
	path    string
	policy  auth.Policy
	handler fiber.Handler
}

// RegisterRoutes wires HTTP routes. Access control lives entirely in this
// table: reads need a valid token, writes need the Admin role, and the token
// and health endpoints are open.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	admin := auth.RoleRequired(domain.RoleAdmin)

	table := []route{
		{fiber.MethodGet, "/health/live", auth.Anonymous(), cfg.Health.Live},
		{fiber.MethodGet, "/health/ready", auth.Anonymous(), cfg.Health.Ready},
		{fiber.MethodGet, "/health/metrics", auth.Anonymous(), cfg.Health.Metrics},

		{fiber.MethodPost, "/token", auth.Anonymous(), cfg.Security.Token},

		{fiber.MethodGet, "/students", auth.Authenticated(), cfg.Students.List},
		{fiber.MethodGet, "/students/:id", auth.Authenticated(), cfg.Students.Get},
		{fiber.MethodPost, "/students", admin, cfg.Students.Create},
		{fiber.MethodPut, "/students/:id", admin, cfg.Students.Update},
		{fiber.MethodDelete, "/students/:id", admin, cfg.Students.Delete},

		{fiber.MethodGet, "/courses", auth.Authenticated(), cfg.Courses.List},
		{fiber.MethodGet, "/courses/:id", auth.Authenticated(), cfg.Courses.Get},
		{fiber.MethodPost, "/courses", admin, cfg.Courses.Create},
		{fiber.MethodPut, "/courses/:id", admin, cfg.Courses.Update},
		{fiber.MethodDelete, "/courses/:id", admin, cfg.Courses.Delete},

		{fiber.MethodGet, "/enrollments", auth.Authenticated(), cfg.Enrollments.List},
		{fiber.MethodGet, "/enrollments/:id", auth.Authenticated(), cfg.Enrollments.Get},
		{fiber.MethodPost, "/enrollments", admin, cfg.Enrollments.Create},
		{fiber.MethodPut, "/enrollments/:id", admin, cfg.Enrollments.Update},
		{fiber.MethodDelete, "/enrollments/:id", admin, cfg.Enrollments.Delete},
	}

	for _, r := range table {
		app.Add(r.method, r.path, cfg.Gate.Require(r.policy), r.handler)
	}
}
