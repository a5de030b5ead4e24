package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/casaplex/casaplex/internal/domain/listing"
	"github.com/casaplex/casaplex/internal/domain/publication"
	"github.com/casaplex/casaplex/internal/shared/authorization"
	"github.com/casaplex/casaplex/internal/shared/errors"
)

func TestListingsByAgent_UnknownAgent(t *testing.T) {
	listingRepo := new(mockListingRepository)
	cityRepo := new(mockCityRepository)
	agentRepo := new(mockAgentRepository)
	agentRepo.On("GetBySID", mock.Anything, "agt_missing").Return(nil, nil)

	uc := NewListingsByAgentUseCase(listingRepo, cityRepo, agentRepo)

	_, err := uc.Execute(context.Background(), ListingsByAgentCommand{AgentSID: "agt_missing", Page: 1})

	assert.True(t, errors.IsNotFoundError(err))
	listingRepo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListingsByAgent_DeactivatedAgentReadsAsMissing(t *testing.T) {
	const agentID uint = 3
	listingRepo := new(mockListingRepository)
	cityRepo := new(mockCityRepository)
	agentRepo := new(mockAgentRepository)
	agentRepo.On("GetBySID", mock.Anything, "agt_tester").
		Return(testAgent(t, agentID, authorization.RoleAgent, false, true), nil)

	uc := NewListingsByAgentUseCase(listingRepo, cityRepo, agentRepo)

	_, err := uc.Execute(context.Background(), ListingsByAgentCommand{AgentSID: "agt_tester", Page: 1})

	assert.True(t, errors.IsNotFoundError(err))
	listingRepo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListingsByAgent_PublishedOnlyScopedToOwner(t *testing.T) {
	const agentID uint = 3
	published := testListing(t, agentID, publication.StatusPublished, "")

	listingRepo := new(mockListingRepository)
	cityRepo := new(mockCityRepository)
	agentRepo := new(mockAgentRepository)

	agentRepo.On("GetBySID", mock.Anything, "agt_tester").
		Return(testAgent(t, agentID, authorization.RoleAgent, true, true), nil)
	listingRepo.On("Search", mock.Anything, listing.Filter{}, mock.MatchedBy(func(vis listing.Visibility) bool {
		return vis.OwnerID != nil && *vis.OwnerID == agentID &&
			len(vis.Statuses) == 1 && vis.Statuses[0] == publication.StatusPublished
	}), 1, mock.Anything).Return([]*listing.Listing{published}, int64(1), nil)
	cityRepo.On("List", mock.Anything).Return([]*listing.City{}, nil)

	uc := NewListingsByAgentUseCase(listingRepo, cityRepo, agentRepo)

	result, err := uc.Execute(context.Background(), ListingsByAgentCommand{AgentSID: "agt_tester", Page: 1})

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.Items, 1)
	assert.Equal(t, published.SID(), result.Items[0].SID)
	listingRepo.AssertExpectations(t)
}
