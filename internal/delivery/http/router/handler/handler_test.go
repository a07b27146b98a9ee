package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"prepmap/internal/delivery/http/middleware"
	"prepmap/internal/delivery/http/response"
	"prepmap/internal/delivery/http/validator"
	"prepmap/internal/domain/entity"
	domainerrors "prepmap/internal/domain/errors"
	"prepmap/internal/domain/service"
	"prepmap/internal/errors"
	"prepmap/internal/mapcore/viewport"
	mockService "prepmap/internal/mocks/service"
	mockUsecase "prepmap/internal/mocks/usecase"
	"prepmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerFixtures struct {
	echo       *echo.Echo
	mapUC      *mockUsecase.MockMapUsecase
	facilityUC *mockUsecase.MockFacilityUsecase
	seedUC     *mockUsecase.MockSeedUsecase
	tokens     *mockService.MockTokenService
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestHandlers(t *testing.T) handlerFixtures {
	fx := handlerFixtures{
		echo:       echo.New(),
		mapUC:      mockUsecase.NewMockMapUsecase(t),
		facilityUC: mockUsecase.NewMockFacilityUsecase(t),
		seedUC:     mockUsecase.NewMockSeedUsecase(t),
		tokens:     mockService.NewMockTokenService(t),
	}
	logger := discardLogger()
	fx.echo.Validator = validator.New()
	fx.echo.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	mapHandler := NewMapHandler(MapHandlerParams{MapUC: fx.mapUC, Logger: logger})
	facilityHandler := NewFacilityHandler(FacilityHandlerParams{FacilityUC: fx.facilityUC, Logger: logger})
	adminHandler := NewAdminHandler(AdminHandlerParams{SeedUC: fx.seedUC, Logger: logger})
	auth := middleware.NewAuthMiddleware(fx.tokens)

	fx.echo.GET("/health", HealthCheck)
	fx.echo.GET("/api/regions", mapHandler.ListRegions)
	fx.echo.GET("/api/regions/:id", mapHandler.GetRegion)
	fx.echo.GET("/api/regions/:id/map.svg", mapHandler.RenderRegion)
	fx.echo.GET("/api/map.svg", mapHandler.RenderMap)
	fx.echo.GET("/api/hit", mapHandler.HitTest)
	fx.echo.GET("/api/facilities", facilityHandler.ListFacilities)
	fx.echo.GET("/api/facilities/:id/contact.png", facilityHandler.ContactQR)
	fx.echo.POST("/api/admin/seed", adminHandler.Seed, auth.Authenticate, auth.RequireRole(service.RoleAdmin))

	return fx
}

func (fx handlerFixtures) do(method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestHealthCheck(t *testing.T) {
	fx := createTestHandlers(t)

	rec := fx.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(decode(t, rec).Data))
}

func TestMapHandler_ListRegions(t *testing.T) {
	fx := createTestHandlers(t)
	fx.mapUC.EXPECT().ListRegions(mock.Anything).Return([]usecase.RegionSummary{
		{ID: "AHAFO", DisplayName: "Ahafo", Ordinal: 0},
	}, nil)

	rec := fx.do(http.MethodGet, "/api/regions", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var regions []usecase.RegionSummary
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &regions))
	require.Len(t, regions, 1)
	assert.Equal(t, "Ahafo", regions[0].DisplayName)
}

func TestMapHandler_MapUnavailable(t *testing.T) {
	fx := createTestHandlers(t)
	fx.mapUC.EXPECT().ListRegions(mock.Anything).
		Return(nil, domainerrors.ErrMapUnavailable.WithDetails("bucket not found"))

	rec := fx.do(http.MethodGet, "/api/regions", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "MAP_UNAVAILABLE", env.Error.Code)
	// 5xx responses carry no details
	assert.Nil(t, env.Error.Details)
}

func TestMapHandler_GetRegion(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setup      func(fx handlerFixtures)
		wantStatus int
		wantCode   string
		degraded   bool
	}{
		{
			name:   "found",
			target: "/api/regions/EASTERN",
			setup: func(fx handlerFixtures) {
				fx.mapUC.EXPECT().GetRegion(mock.Anything, "EASTERN").Return(&usecase.RegionDetail{
					Region:     usecase.RegionSummary{ID: "EASTERN", DisplayName: "Eastern"},
					Viewport:   viewport.Plan{Animated: true},
					Facilities: []*entity.Facility{{ID: 1, Name: "Eastern Regional Hospital"}},
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "degraded",
			target: "/api/regions/VOLTA",
			setup: func(fx handlerFixtures) {
				fx.mapUC.EXPECT().GetRegion(mock.Anything, "VOLTA").Return(&usecase.RegionDetail{
					Region:     usecase.RegionSummary{ID: "VOLTA"},
					Facilities: []*entity.Facility{},
					Degraded:   true,
				}, nil)
			},
			wantStatus: http.StatusOK,
			degraded:   true,
		},
		{
			name:   "unknown",
			target: "/api/regions/ATLANTIS",
			setup: func(fx handlerFixtures) {
				fx.mapUC.EXPECT().GetRegion(mock.Anything, "ATLANTIS").
					Return(nil, domainerrors.ErrRegionNotFound.WithDetails("unknown region ATLANTIS"))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "REGION_NOT_FOUND",
		},
		{
			name:       "malformed id",
			target:     "/api/regions/eastern-region",
			setup:      func(handlerFixtures) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestHandlers(t)
			tt.setup(fx)

			rec := fx.do(http.MethodGet, tt.target, nil)
			assert.Equal(t, tt.wantStatus, rec.Code)

			env := decode(t, rec)
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)

				return
			}
			require.NotNil(t, env.Meta)
			assert.Equal(t, tt.degraded, env.Meta.Degraded)
		})
	}
}

func TestMapHandler_HitTest(t *testing.T) {
	fx := createTestHandlers(t)
	fx.mapUC.EXPECT().HitTest(mock.Anything, 420.5, 718.0).
		Return(&usecase.RegionSummary{ID: "EASTERN", DisplayName: "Eastern"}, nil)
	fx.mapUC.EXPECT().HitTest(mock.Anything, 0.0, 0.0).Return(nil, nil)

	rec := fx.do(http.MethodGet, "/api/hit?x=420.5&y=718", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"region":{"id":"EASTERN","display_name":"Eastern","ordinal":0}}`, string(decode(t, rec).Data))

	rec = fx.do(http.MethodGet, "/api/hit?x=0&y=0", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"region":null}`, string(decode(t, rec).Data))

	rec = fx.do(http.MethodGet, "/api/hit?x=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMapHandler_RenderMap(t *testing.T) {
	fx := createTestHandlers(t)
	fx.mapUC.EXPECT().RenderMap(mock.Anything, mock.Anything, "ASHANTI").
		RunAndReturn(func(_ context.Context, w io.Writer, _ string) error {
			_, err := io.WriteString(w, `<svg xmlns="http://www.w3.org/2000/svg"></svg>`)

			return err
		})

	rec := fx.do(http.MethodGet, "/api/map.svg?active=ASHANTI", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Body.String(), "<svg")
}

func TestMapHandler_RenderRegion_Unavailable(t *testing.T) {
	fx := createTestHandlers(t)
	fx.mapUC.EXPECT().RenderRegion(mock.Anything, mock.Anything, "OTI").
		Return(errors.WithStack(domainerrors.ErrMapUnavailable))

	rec := fx.do(http.MethodGet, "/api/regions/OTI/map.svg", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "MAP_UNAVAILABLE", decode(t, rec).Error.Code)
}

func TestFacilityHandler_ListFacilities(t *testing.T) {
	fx := createTestHandlers(t)
	fx.facilityUC.EXPECT().ListFacilities(mock.Anything, "EASTERN").Return([]*entity.Facility{
		{ID: 19, Name: "Eastern Regional Hospital", RegionID: "EASTERN", StockStatus: entity.StockAvailable},
	}, nil)

	rec := fx.do(http.MethodGet, "/api/facilities?region=EASTERN", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []*entity.Facility
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, entity.StockAvailable, list[0].StockStatus)
}

func TestFacilityHandler_ListFacilities_QueryFailed(t *testing.T) {
	fx := createTestHandlers(t)
	fx.facilityUC.EXPECT().ListFacilities(mock.Anything, "").
		Return(nil, errors.WithStack(domainerrors.ErrFacilityQueryFailed))

	rec := fx.do(http.MethodGet, "/api/facilities", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "FACILITY_QUERY_FAILED", decode(t, rec).Error.Code)
}

func TestFacilityHandler_ContactQR(t *testing.T) {
	fx := createTestHandlers(t)
	fx.facilityUC.EXPECT().ContactQR(mock.Anything, int64(19)).Return([]byte("\x89PNG"), nil)

	rec := fx.do(http.MethodGet, "/api/facilities/19/contact.png", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String())

	rec = fx.do(http.MethodGet, "/api/facilities/0/contact.png", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = fx.do(http.MethodGet, "/api/facilities/abc/contact.png", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminHandler_Seed(t *testing.T) {
	bearer := func(token string) http.Header {
		return http.Header{echo.HeaderAuthorization: []string{"Bearer " + token}}
	}

	t.Run("missing token", func(t *testing.T) {
		fx := createTestHandlers(t)

		rec := fx.do(http.MethodPost, "/api/admin/seed", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestHandlers(t)
		fx.tokens.EXPECT().ValidateToken("bad").Return(nil, errors.New("token is expired"))

		rec := fx.do(http.MethodPost, "/api/admin/seed", bearer("bad"))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("not an admin", func(t *testing.T) {
		fx := createTestHandlers(t)
		claims := &service.Claims{Roles: []string{"viewer"}}
		fx.tokens.EXPECT().ValidateToken("viewer").Return(claims, nil)

		rec := fx.do(http.MethodPost, "/api/admin/seed", bearer("viewer"))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin", func(t *testing.T) {
		fx := createTestHandlers(t)
		claims := &service.Claims{Roles: []string{service.RoleAdmin}}
		claims.Subject = "ops"
		fx.tokens.EXPECT().ValidateToken("admin").Return(claims, nil)
		fx.seedUC.EXPECT().Seed(mock.Anything).Return(&entity.SeedReport{Facilities: 19, Contacts: 19, Stocks: 37}, nil)

		rec := fx.do(http.MethodPost, "/api/admin/seed", bearer("admin"))
		require.Equal(t, http.StatusOK, rec.Code)

		var report entity.SeedReport
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &report))
		assert.Equal(t, 19, report.Facilities)
	})
}
