package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"prepmap/internal/domain/entity"
	domainerrors "prepmap/internal/domain/errors"
	"prepmap/internal/domain/repository"
	mockRepo "prepmap/internal/mocks/repository"
	"prepmap/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type seedServiceFixtures struct {
	service   usecase.SeedUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	seedRepo  *mockRepo.MockSeedRepository
	purger    *mockRepo.MockFacilityCachePurger
}

func createTestSeedService(t *testing.T) seedServiceFixtures {
	fx := seedServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		seedRepo:  mockRepo.NewMockSeedRepository(t),
		purger:    mockRepo.NewMockFacilityCachePurger(t),
	}
	fx.service = NewSeedService(SeedServiceParams{
		TxManager: fx.txManager,
		Purger:    fx.purger,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	fx.txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
	fx.factory.EXPECT().NewSeedRepository().Return(fx.seedRepo)

	return fx
}

func TestSeedService_Seed(t *testing.T) {
	fx := createTestSeedService(t)
	ctx := context.Background()

	fx.seedRepo.EXPECT().Migrate(ctx).Return(nil).Once()
	fx.seedRepo.EXPECT().Clear(ctx).Return(nil).Once()

	var created []string
	fx.seedRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.FacilitySeed")).
		Run(func(_ context.Context, seed *entity.FacilitySeed) {
			created = append(created, seed.Facility.Name)
		}).
		Return(nil)
	fx.purger.EXPECT().Purge(ctx).Return(nil).Once()

	report, err := fx.service.Seed(ctx)
	require.NoError(t, err)

	seeds := seedSet()
	assert.Equal(t, len(seeds), report.Facilities)
	assert.Equal(t, len(seeds), report.Contacts)
	assert.Len(t, created, len(seeds))
	assert.Contains(t, created, "Eastern Regional Hospital")

	stocks := 0
	for _, s := range seeds {
		stocks += len(s.Stocks)
	}
	assert.Equal(t, stocks, report.Stocks)
}

func TestSeedService_Seed_RollsBackOnCreateFailure(t *testing.T) {
	fx := createTestSeedService(t)
	ctx := context.Background()

	fx.seedRepo.EXPECT().Migrate(ctx).Return(nil)
	fx.seedRepo.EXPECT().Clear(ctx).Return(nil)
	fx.seedRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("duplicate key")).Once()

	_, err := fx.service.Seed(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrSeedFailed)
	fx.purger.AssertNotCalled(t, "Purge", mock.Anything)
}

func TestSeedService_Seed_KeepsAppError(t *testing.T) {
	fx := createTestSeedService(t)
	ctx := context.Background()

	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("permission denied"), "migrate")
	fx.seedRepo.EXPECT().Migrate(ctx).Return(dbErr)

	_, err := fx.service.Seed(ctx)
	assert.Equal(t, dbErr, err)
}

func TestSeedService_Seed_PurgeFailureIsNotFatal(t *testing.T) {
	fx := createTestSeedService(t)
	ctx := context.Background()

	fx.seedRepo.EXPECT().Migrate(ctx).Return(nil)
	fx.seedRepo.EXPECT().Clear(ctx).Return(nil)
	fx.seedRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.purger.EXPECT().Purge(ctx).Return(errors.New("redis down"))

	report, err := fx.service.Seed(ctx)
	require.NoError(t, err)
	assert.Positive(t, report.Facilities)
}

func TestSeedSet(t *testing.T) {
	seeds := seedSet()
	require.NotEmpty(t, seeds)

	for _, s := range seeds {
		assert.NotEmpty(t, s.Facility.Name)
		assert.NotEmpty(t, s.Facility.RegionID)
		require.NotNil(t, s.Facility.Contact, s.Facility.Name)
		for _, stock := range s.Stocks {
			assert.True(t, stock.Status.Valid(), s.Facility.Name)
		}
	}
}
