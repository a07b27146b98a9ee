package impl

import (
	"context"
	"log/slog"

	"prepmap/internal/domain/entity"
	domainerrors "prepmap/internal/domain/errors"
	"prepmap/internal/domain/repository"
	"prepmap/internal/errors"
	"prepmap/internal/usecase"

	"go.uber.org/fx"
)

// SeedServiceParams holds dependencies for the seed service
type SeedServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Purger    repository.FacilityCachePurger `optional:"true"`
	Logger    *slog.Logger
}

type seedService struct {
	txManager repository.TransactionManager
	purger    repository.FacilityCachePurger
	logger    *slog.Logger
}

// NewSeedService creates a new seed service instance
func NewSeedService(params SeedServiceParams) usecase.SeedUsecase {
	return &seedService{
		txManager: params.TxManager,
		purger:    params.Purger,
		logger:    params.Logger,
	}
}

// Seed migrates and reseeds in one transaction, then drops cached listings.
func (s *seedService) Seed(ctx context.Context) (*entity.SeedReport, error) {
	report := &entity.SeedReport{}

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		seedRepo := factory.NewSeedRepository()

		if err := seedRepo.Migrate(ctx); err != nil {
			return err
		}
		if err := seedRepo.Clear(ctx); err != nil {
			return err
		}

		for _, seed := range seedSet() {
			if err := seedRepo.Create(ctx, seed); err != nil {
				return errors.Wrapf(err, "seed %s", seed.Facility.Name)
			}
			report.Facilities++
			if seed.Facility.Contact != nil {
				report.Contacts++
			}
			report.Stocks += len(seed.Stocks)
		}

		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Seed failed", slog.Any("error", err))

		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, errors.Wrap(domainerrors.ErrSeedFailed, err.Error())
	}

	if s.purger != nil {
		if err := s.purger.Purge(ctx); err != nil {
			s.logger.WarnContext(ctx, "Failed to purge facility cache after seed", slog.Any("error", err))
		}
	}

	s.logger.InfoContext(ctx, "Database seeded",
		slog.Int("facilities", report.Facilities),
		slog.Int("contacts", report.Contacts),
		slog.Int("stocks", report.Stocks),
	)

	return report, nil
}
