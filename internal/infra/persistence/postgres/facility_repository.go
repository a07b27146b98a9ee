// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"prepmap/internal/domain/entity"
	domainerrors "prepmap/internal/domain/errors"
	"prepmap/internal/domain/repository"
	"prepmap/internal/errors"
	"prepmap/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// facilitySelect joins each facility with its key contact and PrEP stock line.
// Rows are ordered so that the first row of every facility carries its
// earliest contact and stock line.
const facilitySelect = `
	SELECT
	  f.id, f.name, f.region_id, f.latitude, f.longitude, f.address, f.phone,
	  cp.name AS contact_name, cp.phone_number AS contact_phone,
	  ds.status AS stock_status
	FROM facilities f
	LEFT JOIN contact_people cp ON f.id = cp.facility_id
	LEFT JOIN drug_stocks ds ON f.id = ds.facility_id AND ds.drug_name LIKE 'PrEP%'
`

const facilityOrder = ` ORDER BY f.id, cp.id, ds.id`

// facilityRepository implements the domain.FacilityRepository interface using GORM.
type facilityRepository struct {
	db *gorm.DB
}

// NewFacilityRepository is the constructor for facilityRepository.
func NewFacilityRepository(db *gorm.DB) repository.FacilityRepository {
	return &facilityRepository{db: db}
}

// FindByRegion runs the joined facility query, filtered by region when regionID is set.
func (repo *facilityRepository) FindByRegion(ctx context.Context, regionID string) ([]*entity.Facility, error) {
	query := facilitySelect
	args := []any{}
	if regionID != "" {
		query += ` WHERE f.region_id = ?`
		args = append(args, regionID)
	}

	var rows []*model.FacilityRow
	if err := repo.db.WithContext(ctx).
		Raw(query+facilityOrder, args...).
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find facilities by region")
	}

	return toFacilityDomains(rows), nil
}

// FindByID retrieves a single facility with its key contact and PrEP stock.
func (repo *facilityRepository) FindByID(ctx context.Context, id int64) (*entity.Facility, error) {
	var rows []*model.FacilityRow
	if err := repo.db.WithContext(ctx).
		Raw(facilitySelect+` WHERE f.id = ?`+facilityOrder, id).
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find facility by id")
	}

	facilities := toFacilityDomains(rows)
	if len(facilities) == 0 {
		return nil, errors.WithStack(domainerrors.ErrFacilityNotFound)
	}

	return facilities[0], nil
}

// toFacilityDomains folds joined rows into one facility per id, keeping the first contact and stock line.
func toFacilityDomains(rows []*model.FacilityRow) []*entity.Facility {
	facilities := make([]*entity.Facility, 0, len(rows))
	seen := make(map[int64]struct{}, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.ID]; ok {
			continue
		}
		seen[row.ID] = struct{}{}
		facilities = append(facilities, toFacilityDomain(row))
	}

	return facilities
}

func toFacilityDomain(row *model.FacilityRow) *entity.Facility {
	f := &entity.Facility{
		ID:       row.ID,
		Name:     row.Name,
		RegionID: row.RegionID,
		Coordinates: entity.Coordinates{
			Lat: row.Latitude,
			Lng: row.Longitude,
		},
		Address:     deref(row.Address),
		Phone:       deref(row.Phone),
		StockStatus: entity.StockOut,
	}
	if row.ContactName != nil {
		f.Contact = &entity.Contact{
			Name:  *row.ContactName,
			Phone: deref(row.ContactPhone),
		}
	}
	if row.StockStatus != nil {
		if status := entity.StockStatus(*row.StockStatus); status.Valid() {
			f.StockStatus = status
		}
	}

	return f
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
