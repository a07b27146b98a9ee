package postgres

import (
	"context"

	"prepmap/internal/domain/entity"
	domainerrors "prepmap/internal/domain/errors"
	"prepmap/internal/domain/repository"
	"prepmap/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// seedRepository implements the domain.SeedRepository interface using GORM.
type seedRepository struct {
	db *gorm.DB
}

// NewSeedRepository is the constructor for seedRepository.
func NewSeedRepository(db *gorm.DB) repository.SeedRepository {
	return &seedRepository{db: db}
}

// Migrate creates the facilities, contact_people and drug_stocks tables.
func (repo *seedRepository) Migrate(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).AutoMigrate(
		&model.FacilityModel{},
		&model.ContactPersonModel{},
		&model.DrugStockModel{},
	); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to migrate facility schema")
	}

	return nil
}

// Clear deletes every stock line, contact and facility, children first,
// and restarts the id sequences.
func (repo *seedRepository) Clear(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Exec(`TRUNCATE TABLE drug_stocks, contact_people, facilities RESTART IDENTITY`).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear facility tables")
	}

	return nil
}

// Create inserts the facility with its contact and stock lines in one statement set.
func (repo *seedRepository) Create(ctx context.Context, seed *entity.FacilitySeed) error {
	facilityM := fromFacilitySeed(seed)

	if err := repo.db.WithContext(ctx).Create(facilityM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrSeedFailed.WrapMessage("invalid stock status for " + seed.Facility.Name)
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrSeedFailed.WrapMessage("missing required facility information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrSeedFailed.WrapMessage("invalid facility reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create facility")
	}

	seed.Facility.ID = facilityM.ID

	return nil
}

func fromFacilitySeed(seed *entity.FacilitySeed) *model.FacilityModel {
	f := seed.Facility
	facilityM := &model.FacilityModel{
		Name:      f.Name,
		RegionID:  f.RegionID,
		Latitude:  f.Coordinates.Lat,
		Longitude: f.Coordinates.Lng,
		Address:   f.Address,
		Phone:     f.Phone,
	}
	if f.Contact != nil {
		facilityM.ContactPeople = []model.ContactPersonModel{{
			Name:  f.Contact.Name,
			Role:  seed.ContactRole,
			Phone: f.Contact.Phone,
		}}
	}
	for _, stock := range seed.Stocks {
		facilityM.DrugStocks = append(facilityM.DrugStocks, model.DrugStockModel{
			DrugName: stock.DrugName,
			Status:   string(stock.Status),
		})
	}

	return facilityM
}
