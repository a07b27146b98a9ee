package usecase

import (
	"context"

	"prepmap/internal/domain/entity"
)

// SeedUsecase defines the interface for the admin reseed
type SeedUsecase interface {
	// Seed migrates the schema and replaces every facility with the seed set.
	Seed(ctx context.Context) (*entity.SeedReport, error)
}
