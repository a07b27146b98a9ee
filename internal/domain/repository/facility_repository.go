// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"prepmap/internal/domain/entity"
)

// FacilityRepository reads facilities joined with their key contact and PrEP stock.
type FacilityRepository interface {
	// FindByRegion returns the facilities whose region_id equals regionID,
	// ordered by id. An empty regionID returns every facility.
	FindByRegion(ctx context.Context, regionID string) ([]*entity.Facility, error)

	// FindByID retrieves a single facility. It returns ErrFacilityNotFound when absent.
	FindByID(ctx context.Context, id int64) (*entity.Facility, error)
}

// SeedRepository rebuilds the facility tables.
type SeedRepository interface {
	// Migrate creates or updates the facility schema.
	Migrate(ctx context.Context) error

	// Clear removes every facility together with its contacts and stock lines.
	Clear(ctx context.Context) error

	// Create inserts a facility with its contact and stock lines, filling in the generated ID.
	Create(ctx context.Context, seed *entity.FacilitySeed) error
}

// FacilityCachePurger drops cached facility reads, e.g. after a reseed.
type FacilityCachePurger interface {
	Purge(ctx context.Context) error
}
