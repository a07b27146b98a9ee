package handler

import (
	"log/slog"
	"net/http"

	"prepmap/internal/delivery/http/response"
	"prepmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FacilityHandlerParams holds dependencies for FacilityHandler, injected by Fx.
type FacilityHandlerParams struct {
	fx.In

	FacilityUC usecase.FacilityUsecase
	Logger     *slog.Logger
}

// FacilityHandler serves the facility directory
type FacilityHandler struct {
	facilityUC usecase.FacilityUsecase
	logger     *slog.Logger
}

// NewFacilityHandler is the constructor for FacilityHandler
func NewFacilityHandler(params FacilityHandlerParams) *FacilityHandler {
	return &FacilityHandler{
		facilityUC: params.FacilityUC,
		logger:     params.Logger,
	}
}

// ListFacilitiesRequest filters the directory by region; empty lists everything.
type ListFacilitiesRequest struct {
	Region string `query:"region" validate:"omitempty,regionid"`
}

// ContactRequest identifies a facility in the path.
type ContactRequest struct {
	ID int64 `param:"id" validate:"gt=0"`
}

// ListFacilities returns the facilities of a region
func (h *FacilityHandler) ListFacilities(c echo.Context) error {
	var req ListFacilitiesRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	facilities, err := h.facilityUC.ListFacilities(c.Request().Context(), req.Region)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, facilities)
}

// ContactQR returns a PNG QR code dialing the facility's key contact
func (h *FacilityHandler) ContactQR(c echo.Context) error {
	var req ContactRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	png, err := h.facilityUC.ContactQR(c.Request().Context(), req.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}
