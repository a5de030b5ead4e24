package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/casaplex/casaplex/internal/domain/agent"
	"github.com/casaplex/casaplex/internal/domain/listing"
	"github.com/casaplex/casaplex/internal/domain/publication"
	"github.com/casaplex/casaplex/internal/shared/logger"
)

type mockListingRepository struct {
	mock.Mock
}

func (m *mockListingRepository) Create(ctx context.Context, l *listing.Listing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *mockListingRepository) Update(ctx context.Context, l *listing.Listing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *mockListingRepository) Delete(ctx context.Context, listingID uint) error {
	args := m.Called(ctx, listingID)
	return args.Error(0)
}

func (m *mockListingRepository) GetByID(ctx context.Context, listingID uint) (*listing.Listing, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Listing), args.Error(1)
}

func (m *mockListingRepository) GetBySID(ctx context.Context, sid string) (*listing.Listing, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Listing), args.Error(1)
}

func (m *mockListingRepository) Search(ctx context.Context, filter listing.Filter, vis listing.Visibility, page, pageSize int) ([]*listing.Listing, int64, error) {
	args := m.Called(ctx, filter, vis, page, pageSize)
	var listings []*listing.Listing
	if args.Get(0) != nil {
		listings = args.Get(0).([]*listing.Listing)
	}
	return listings, args.Get(1).(int64), args.Error(2)
}

func (m *mockListingRepository) Latest(ctx context.Context, limit int) ([]*listing.Listing, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*listing.Listing), args.Error(1)
}

func (m *mockListingRepository) CountByStatus(ctx context.Context, ownerID uint) (map[publication.Status]int64, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[publication.Status]int64), args.Error(1)
}

func (m *mockListingRepository) Bounds(ctx context.Context) (listing.SearchBounds, error) {
	args := m.Called(ctx)
	return args.Get(0).(listing.SearchBounds), args.Error(1)
}

func (m *mockListingRepository) ClearOwner(ctx context.Context, ownerID uint) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

type mockCityRepository struct {
	mock.Mock
}

func (m *mockCityRepository) Create(ctx context.Context, c *listing.City) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCityRepository) Update(ctx context.Context, c *listing.City) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCityRepository) Delete(ctx context.Context, cityID uint) error {
	args := m.Called(ctx, cityID)
	return args.Error(0)
}

func (m *mockCityRepository) GetByID(ctx context.Context, cityID uint) (*listing.City, error) {
	args := m.Called(ctx, cityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.City), args.Error(1)
}

func (m *mockCityRepository) GetByName(ctx context.Context, name string) (*listing.City, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.City), args.Error(1)
}

func (m *mockCityRepository) List(ctx context.Context) ([]*listing.City, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*listing.City), args.Error(1)
}

type mockAgentRepository struct {
	mock.Mock
}

func (m *mockAgentRepository) Create(ctx context.Context, a *agent.Agent) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockAgentRepository) Update(ctx context.Context, a *agent.Agent) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockAgentRepository) Delete(ctx context.Context, agentID uint) error {
	args := m.Called(ctx, agentID)
	return args.Error(0)
}

func (m *mockAgentRepository) GetByID(ctx context.Context, agentID uint) (*agent.Agent, error) {
	args := m.Called(ctx, agentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Agent), args.Error(1)
}

func (m *mockAgentRepository) GetBySID(ctx context.Context, sid string) (*agent.Agent, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Agent), args.Error(1)
}

func (m *mockAgentRepository) GetByEmail(ctx context.Context, email string) (*agent.Agent, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Agent), args.Error(1)
}

func (m *mockAgentRepository) List(ctx context.Context, filter agent.DirectoryFilter) ([]*agent.Agent, int64, error) {
	args := m.Called(ctx, filter)
	var agents []*agent.Agent
	if args.Get(0) != nil {
		agents = args.Get(0).([]*agent.Agent)
	}
	return agents, args.Get(1).(int64), args.Error(2)
}

type mockSubmissionNotifier struct {
	mock.Mock
}

func (m *mockSubmissionNotifier) SendSubmissionNotice(kind, title, agentName string) error {
	args := m.Called(kind, title, agentName)
	return args.Error(0)
}

// mockLogger discards all output. Tests assert behavior, not log lines.
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface { return m }
func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {}
