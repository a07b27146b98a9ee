package usecase

import (
	"context"

	"prepmap/internal/domain/entity"
)

// FacilityUsecase defines the interface for facility directory use cases
type FacilityUsecase interface {
	// ListFacilities returns the facilities of regionID, or all when empty.
	ListFacilities(ctx context.Context, regionID string) ([]*entity.Facility, error)

	// ContactQR renders the key contact's phone of a facility as a tel: QR code.
	ContactQR(ctx context.Context, facilityID int64) ([]byte, error)
}
