package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/casaplex/casaplex/internal/domain/subscription"
	"github.com/casaplex/casaplex/internal/shared/logger"
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

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)            {}
func (noopLogger) Info(msg string, args ...any)             {}
func (noopLogger) Warn(msg string, args ...any)             {}
func (noopLogger) Error(msg string, args ...any)            {}
func (n noopLogger) With(args ...any) logger.Interface      { return n }
func (n noopLogger) Named(name string) logger.Interface     { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...any)  {}
func (noopLogger) Infow(msg string, keysAndValues ...any)   {}
func (noopLogger) Warnw(msg string, keysAndValues ...any)   {}
func (noopLogger) Errorw(msg string, keysAndValues ...any)  {}

func fixture(t *testing.T, quota, used uint, expiresAt time.Time, active bool) *subscription.Subscription {
	t.Helper()
	agentID := uint(3)
	s, err := subscription.Reconstruct(subscription.ReconstructParams{
		ID:        1,
		SID:       "sub_fixture",
		AgentID:   &agentID,
		PlanName:  "Starter",
		PlanPrice: 900,
		Quota:     quota,
		UsedCount: used,
		ExpiresAt: expiresAt,
		Active:    active,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	return s
}

func future() time.Time { return time.Now().UTC().Add(24 * time.Hour) }
func past() time.Time   { return time.Now().UTC().Add(-time.Hour) }

func TestIsEntitled_NoSubscription(t *testing.T) {
	repo := new(mockSubscriptionRepository)
	repo.On("GetCurrent", mock.Anything, uint(3)).Return(nil, nil)

	svc := NewEntitlementService(repo, nil, noopLogger{})

	entitled, err := svc.IsEntitled(context.Background(), 3)
	require.NoError(t, err)
	assert.False(t, entitled)
}

func TestIsEntitled_ActiveWithQuota(t *testing.T) {
	repo := new(mockSubscriptionRepository)
	repo.On("GetCurrent", mock.Anything, uint(3)).Return(fixture(t, 5, 2, future(), true), nil)

	svc := NewEntitlementService(repo, nil, noopLogger{})

	entitled, err := svc.IsEntitled(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, entitled)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestIsEntitled_ExhaustedFlipsOnce(t *testing.T) {
	sub := fixture(t, 5, 5, future(), true)
	repo := new(mockSubscriptionRepository)
	repo.On("GetCurrent", mock.Anything, uint(3)).Return(sub, nil)
	repo.On("Update", mock.Anything, sub).Return(nil).Once()

	svc := NewEntitlementService(repo, nil, noopLogger{})

	entitled, err := svc.IsEntitled(context.Background(), 3)
	require.NoError(t, err)
	assert.False(t, entitled)
	assert.False(t, sub.IsActive())

	// The flag is already down; the second evaluation persists nothing.
	entitled, err = svc.IsEntitled(context.Background(), 3)
	require.NoError(t, err)
	assert.False(t, entitled)
	repo.AssertExpectations(t)
}

func TestIsEntitled_Expired(t *testing.T) {
	sub := fixture(t, 5, 0, past(), true)
	repo := new(mockSubscriptionRepository)
	repo.On("GetCurrent", mock.Anything, uint(3)).Return(sub, nil)
	repo.On("Update", mock.Anything, sub).Return(nil).Once()

	svc := NewEntitlementService(repo, nil, noopLogger{})

	entitled, err := svc.IsEntitled(context.Background(), 3)
	require.NoError(t, err)
	assert.False(t, entitled)
	assert.False(t, sub.IsActive())
}

func TestConsumeQuota_NoSubscription(t *testing.T) {
	repo := new(mockSubscriptionRepository)
	repo.On("GetCurrentForUpdate", mock.Anything, uint(3)).Return(nil, nil)

	svc := NewEntitlementService(repo, nil, noopLogger{})

	err := svc.ConsumeQuota(context.Background(), 3)
	assert.ErrorIs(t, err, subscription.ErrNoSubscription)
}

func TestConsumeQuota_Inactive(t *testing.T) {
	repo := new(mockSubscriptionRepository)
	repo.On("GetCurrentForUpdate", mock.Anything, uint(3)).Return(fixture(t, 5, 5, future(), false), nil)

	svc := NewEntitlementService(repo, nil, noopLogger{})

	err := svc.ConsumeQuota(context.Background(), 3)
	assert.ErrorIs(t, err, subscription.ErrSubscriptionInactive)
}

func TestConsumeQuota_ExhaustedUnderLock(t *testing.T) {
	sub := fixture(t, 5, 5, future(), true)
	repo := new(mockSubscriptionRepository)
	repo.On("GetCurrentForUpdate", mock.Anything, uint(3)).Return(sub, nil)
	repo.On("Update", mock.Anything, sub).Return(nil).Once()

	svc := NewEntitlementService(repo, nil, noopLogger{})

	err := svc.ConsumeQuota(context.Background(), 3)
	assert.ErrorIs(t, err, subscription.ErrSubscriptionInactive)
	assert.False(t, sub.IsActive())
	repo.AssertExpectations(t)
}

func TestConsumeQuota_Success(t *testing.T) {
	sub := fixture(t, 5, 4, future(), true)
	repo := new(mockSubscriptionRepository)
	repo.On("GetCurrentForUpdate", mock.Anything, uint(3)).Return(sub, nil)
	repo.On("Update", mock.Anything, sub).Return(nil).Once()

	svc := NewEntitlementService(repo, nil, noopLogger{})

	err := svc.ConsumeQuota(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, uint(5), sub.UsedCount())
	assert.True(t, sub.IsActive())
	repo.AssertExpectations(t)
}
