package impl

import (
	"context"
	"log/slog"

	"prepmap/internal/domain/entity"
	domainerrors "prepmap/internal/domain/errors"
	"prepmap/internal/domain/repository"
	"prepmap/internal/domain/service"
	"prepmap/internal/errors"
	"prepmap/internal/infra/metrics"
	"prepmap/internal/usecase"

	"go.uber.org/fx"
)

// FacilityServiceParams holds dependencies for the facility service
type FacilityServiceParams struct {
	fx.In

	Facilities repository.FacilityRepository
	QRCode     service.QRCodeService
	Logger     *slog.Logger
	Metrics    *metrics.Collector `optional:"true"`
}

type facilityService struct {
	facilities repository.FacilityRepository
	qrcode     service.QRCodeService
	logger     *slog.Logger
	metrics    *metrics.Collector
}

// NewFacilityService creates a new facility service instance
func NewFacilityService(params FacilityServiceParams) usecase.FacilityUsecase {
	return &facilityService{
		facilities: params.Facilities,
		qrcode:     params.QRCode,
		logger:     params.Logger,
		metrics:    params.Metrics,
	}
}

// ListFacilities returns the directory listing; unlike the map views a
// directory failure is reported to the caller.
func (s *facilityService) ListFacilities(ctx context.Context, regionID string) ([]*entity.Facility, error) {
	facilities, err := s.facilities.FindByRegion(ctx, regionID)
	if err != nil {
		s.metrics.IncFetchFailure("directory")
		s.logger.ErrorContext(ctx, "Database error", slog.String("region", regionID), slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrFacilityQueryFailed)
	}

	return facilities, nil
}

// ContactQR renders the key contact's phone, falling back to the facility's own phone.
func (s *facilityService) ContactQR(ctx context.Context, facilityID int64) ([]byte, error) {
	facility, err := s.facilities.FindByID(ctx, facilityID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrFacilityNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(domainerrors.ErrFacilityQueryFailed, err.Error())
	}

	phone := facility.Phone
	if facility.Contact != nil && facility.Contact.Phone != "" {
		phone = facility.Contact.Phone
	}
	if phone == "" {
		return nil, errors.WithStack(domainerrors.ErrContactUnavailable)
	}

	png, err := s.qrcode.GenerateContactQR(phone)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrQRCodeGenerationFailed, err.Error())
	}

	return png, nil
}
