package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/wsei-dev/university-records/internal/api/dto"
	"github.com/wsei-dev/university-records/internal/service"
	apperrors "github.com/wsei-dev/university-records/pkg/util"
)

// SecurityHandler exposes the token issuance endpoint.
type SecurityHandler struct {
	auth *service.AuthService
}

// NewSecurityHandler constructs the handler.
func NewSecurityHandler(authService *service.AuthService) *SecurityHandler {
	return &SecurityHandler{auth: authService}
}

// Token handles POST /token.
func (h *SecurityHandler) Token(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	token, _, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Contract: bad credentials answer 401 with an empty body.
			// SendStatus would write the status text as the body.
			return c.Status(fiber.StatusUnauthorized).Send(nil)
		}
		return err
	}

	return c.JSON(dto.TokenResponse{Token: token})
}
