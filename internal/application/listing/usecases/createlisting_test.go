package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	subscriptionservices "github.com/casaplex/casaplex/internal/application/subscription/services"
	"github.com/casaplex/casaplex/internal/domain/subscription"
	"github.com/casaplex/casaplex/internal/shared/authorization"
	"github.com/casaplex/casaplex/internal/shared/errors"
)

type mockSubscriptionRepository struct {
	mock.Mock
}

func (m *mockSubscriptionRepository) Create(ctx context.Context, s *subscription.Subscription) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, s *subscription.Subscription) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockSubscriptionRepository) GetCurrent(ctx context.Context, agentID uint) (*subscription.Subscription, error) {
	args := m.Called(ctx, agentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepository) GetCurrentForUpdate(ctx context.Context, agentID uint) (*subscription.Subscription, error) {
	args := m.Called(ctx, agentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepository) ListByAgent(ctx context.Context, agentID uint) ([]*subscription.Subscription, error) {
	args := m.Called(ctx, agentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*subscription.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepository) ClearAgent(ctx context.Context, agentID uint) error {
	args := m.Called(ctx, agentID)
	return args.Error(0)
}

func activeSubscription(t *testing.T, agentID uint, quota, used uint) *subscription.Subscription {
	t.Helper()
	s, err := subscription.Reconstruct(subscription.ReconstructParams{
		ID:        1,
		SID:       "sub_test",
		AgentID:   &agentID,
		PlanName:  "Starter",
		PlanPrice: 900,
		Quota:     quota,
		UsedCount: used,
		ExpiresAt: time.Now().UTC().Add(24 * time.Hour),
		Active:    true,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	return s
}

func newCreateListingUseCaseForGuards(agentRepo *mockAgentRepository, cityRepo *mockCityRepository, subRepo *mockSubscriptionRepository) *CreateListingUseCase {
	entitlement := subscriptionservices.NewEntitlementService(subRepo, nil, &mockLogger{})
	return NewCreateListingUseCase(
		new(mockListingRepository), cityRepo, agentRepo,
		entitlement, nil, new(mockSubmissionNotifier), &mockLogger{},
	)
}

func baseCreateCommand(actorID uint, role authorization.Role) CreateListingCommand {
	return CreateListingCommand{
		ActorID:     actorID,
		ActorRole:   role,
		CityID:      1,
		Title:       "Garden house",
		Description: "Quiet street",
		DealType:    "sale",
		Price:       180000,
	}
}

func TestCreateListing_DeactivatedAccount(t *testing.T) {
	agentRepo := new(mockAgentRepository)
	agentRepo.On("GetByID", mock.Anything, uint(3)).Return(testAgent(t, 3, authorization.RoleAgent, false, true), nil)

	uc := newCreateListingUseCaseForGuards(agentRepo, new(mockCityRepository), new(mockSubscriptionRepository))

	_, err := uc.Execute(context.Background(), baseCreateCommand(3, authorization.RoleAgent))
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestCreateListing_UnverifiedEmail(t *testing.T) {
	agentRepo := new(mockAgentRepository)
	agentRepo.On("GetByID", mock.Anything, uint(3)).Return(testAgent(t, 3, authorization.RoleAgent, true, false), nil)

	uc := newCreateListingUseCaseForGuards(agentRepo, new(mockCityRepository), new(mockSubscriptionRepository))

	_, err := uc.Execute(context.Background(), baseCreateCommand(3, authorization.RoleAgent))
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestCreateListing_NoSubscription(t *testing.T) {
	agentRepo := new(mockAgentRepository)
	agentRepo.On("GetByID", mock.Anything, uint(3)).Return(testAgent(t, 3, authorization.RoleAgent, true, true), nil)

	subRepo := new(mockSubscriptionRepository)
	subRepo.On("GetCurrent", mock.Anything, uint(3)).Return(nil, nil)

	uc := newCreateListingUseCaseForGuards(agentRepo, new(mockCityRepository), subRepo)

	_, err := uc.Execute(context.Background(), baseCreateCommand(3, authorization.RoleAgent))
	require.Error(t, err)
	assert.True(t, errors.IsQuotaRequiredError(err))
}

func TestCreateListing_ExhaustedQuota(t *testing.T) {
	agentRepo := new(mockAgentRepository)
	agentRepo.On("GetByID", mock.Anything, uint(3)).Return(testAgent(t, 3, authorization.RoleAgent, true, true), nil)

	sub := activeSubscription(t, 3, 2, 2)
	subRepo := new(mockSubscriptionRepository)
	subRepo.On("GetCurrent", mock.Anything, uint(3)).Return(sub, nil)
	// The first evaluation that sees the exhausted quota flips and persists
	// the active flag.
	subRepo.On("Update", mock.Anything, sub).Return(nil)

	uc := newCreateListingUseCaseForGuards(agentRepo, new(mockCityRepository), subRepo)

	_, err := uc.Execute(context.Background(), baseCreateCommand(3, authorization.RoleAgent))
	require.Error(t, err)
	assert.True(t, errors.IsQuotaRequiredError(err))
	assert.False(t, sub.IsActive())
	subRepo.AssertExpectations(t)
}

func TestCreateListing_UnknownCity(t *testing.T) {
	agentRepo := new(mockAgentRepository)
	agentRepo.On("GetByID", mock.Anything, uint(3)).Return(testAgent(t, 3, authorization.RoleAgent, true, true), nil)

	subRepo := new(mockSubscriptionRepository)
	subRepo.On("GetCurrent", mock.Anything, uint(3)).Return(activeSubscription(t, 3, 5, 0), nil)

	cityRepo := new(mockCityRepository)
	cityRepo.On("GetByID", mock.Anything, uint(1)).Return(nil, nil)

	uc := newCreateListingUseCaseForGuards(agentRepo, cityRepo, subRepo)

	_, err := uc.Execute(context.Background(), baseCreateCommand(3, authorization.RoleAgent))
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateListing_InvalidDealType(t *testing.T) {
	agentRepo := new(mockAgentRepository)
	agentRepo.On("GetByID", mock.Anything, uint(3)).Return(testAgent(t, 3, authorization.RoleAgent, true, true), nil)

	subRepo := new(mockSubscriptionRepository)
	subRepo.On("GetCurrent", mock.Anything, uint(3)).Return(activeSubscription(t, 3, 5, 0), nil)

	uc := newCreateListingUseCaseForGuards(agentRepo, new(mockCityRepository), subRepo)

	cmd := baseCreateCommand(3, authorization.RoleAgent)
	cmd.DealType = "barter"

	_, err := uc.Execute(context.Background(), cmd)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
