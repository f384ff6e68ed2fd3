package admin

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const layoutName = "views/layout"

// Handlers serves the server-rendered admin pages.
type Handlers struct {
	client   *Client
	sessions *Sessions
	logger   *zap.Logger
}

// NewHandlers constructs the page handlers.
func NewHandlers(client *Client, sessions *Sessions, logger *zap.Logger) *Handlers {
	return &Handlers{client: client, sessions: sessions, logger: logger}
}

// render wraps c.Render, merging the signed-in identity into the view data.
func (h *Handlers) render(c *fiber.Ctx, view string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["User"] = h.sessions.User(c)
	data["Role"] = h.sessions.Role(c)
	return c.Render(view, data, layoutName)
}

// fail handles an API error: expired or rejected tokens send the operator
// back to login, anything else re-renders the view with a message.
func (h *Handlers) fail(c *fiber.Ctx, view string, data fiber.Map, err error) error {
	if errors.Is(err, ErrUnauthorized) {
		return c.Redirect("/login")
	}
	if data == nil {
		data = fiber.Map{}
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		data["Error"] = apiErr.Message
	} else {
		h.logger.Error("admin page failure", zap.Error(err))
		data["Error"] = "the records API is unreachable"
	}
	return h.render(c, view, data)
}
