// Package handler contains the HTTP handlers for the application.
package handler

import (
	"bytes"
	"log/slog"
	"net/http"

	"prepmap/internal/delivery/http/response"
	"prepmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const contentTypeSVG = "image/svg+xml"

// MapHandlerParams holds dependencies for MapHandler, injected by Fx.
type MapHandlerParams struct {
	fx.In

	MapUC  usecase.MapUsecase
	Logger *slog.Logger
}

// MapHandler serves the region list, region details and rendered maps.
type MapHandler struct {
	mapUC  usecase.MapUsecase
	logger *slog.Logger
}

// NewMapHandler is the constructor for MapHandler
func NewMapHandler(params MapHandlerParams) *MapHandler {
	return &MapHandler{
		mapUC:  params.MapUC,
		logger: params.Logger,
	}
}

// RegionRequest identifies a region in the path.
type RegionRequest struct {
	ID string `param:"id" validate:"required,regionid"`
}

// MapRequest selects the region styled as active.
type MapRequest struct {
	Active string `query:"active" validate:"omitempty,regionid"`
}

// HitRequest is a map-space point.
type HitRequest struct {
	X float64 `query:"x"`
	Y float64 `query:"y"`
}

// HitResponse carries the region under the point; Region is null over the background.
type HitResponse struct {
	Region *usecase.RegionSummary `json:"region"`
}

// ListRegions returns every selectable region
func (h *MapHandler) ListRegions(c echo.Context) error {
	regions, err := h.mapUC.ListRegions(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, regions)
}

// GetRegion returns the viewport plan and labelled facilities of a region
func (h *MapHandler) GetRegion(c echo.Context) error {
	var req RegionRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	detail, err := h.mapUC.GetRegion(c.Request().Context(), req.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if detail.Degraded {
		return response.Degraded(c, http.StatusOK, detail)
	}

	return response.Success(c, http.StatusOK, detail)
}

// HitTest resolves a map-space point to a region
func (h *MapHandler) HitTest(c echo.Context) error {
	var req HitRequest
	if err := echo.QueryParamsBinder(c).
		MustFloat64("x", &req.X).
		MustFloat64("y", &req.Y).
		BindError(); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "x and y must be numbers")
	}

	region, err := h.mapUC.HitTest(c.Request().Context(), req.X, req.Y)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, HitResponse{Region: region})
}

// RenderMap writes the full map as SVG
func (h *MapHandler) RenderMap(c echo.Context) error {
	var req MapRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	var buf bytes.Buffer
	if err := h.mapUC.RenderMap(c.Request().Context(), &buf, req.Active); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, contentTypeSVG, buf.Bytes())
}

// RenderRegion writes the zoomed region view as SVG
func (h *MapHandler) RenderRegion(c echo.Context) error {
	var req RegionRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	var buf bytes.Buffer
	if err := h.mapUC.RenderRegion(c.Request().Context(), &buf, req.ID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, contentTypeSVG, buf.Bytes())
}
