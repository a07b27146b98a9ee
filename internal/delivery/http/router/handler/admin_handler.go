package handler

import (
	"log/slog"
	"net/http"

	"prepmap/internal/delivery/http/middleware"
	"prepmap/internal/delivery/http/response"
	"prepmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	SeedUC usecase.SeedUsecase
	Logger *slog.Logger
}

// AdminHandler serves maintenance operations
type AdminHandler struct {
	seedUC usecase.SeedUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		seedUC: params.SeedUC,
		logger: params.Logger,
	}
}

// Seed migrates the schema and reloads the facility seed data
func (h *AdminHandler) Seed(c echo.Context) error {
	subject, _ := middleware.GetSubject(c)
	h.logger.InfoContext(c.Request().Context(), "Reseed requested", slog.String("subject", subject))

	report, err := h.seedUC.Seed(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}
