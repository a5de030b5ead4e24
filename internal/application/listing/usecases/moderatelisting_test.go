package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/casaplex/casaplex/internal/domain/agent"
	"github.com/casaplex/casaplex/internal/domain/listing"
	"github.com/casaplex/casaplex/internal/domain/publication"
	"github.com/casaplex/casaplex/internal/shared/authorization"
	"github.com/casaplex/casaplex/internal/shared/errors"
)

func testListing(t *testing.T, ownerID uint, status publication.Status, note string) *listing.Listing {
	t.Helper()
	l, err := listing.Reconstruct(listing.ReconstructParams{
		ID:           7,
		SID:          "lst_moderation",
		OwnerID:      &ownerID,
		CityID:       1,
		Title:        "Two bedroom apartment",
		Description:  "Close to the river",
		DealType:     listing.DealSale,
		Price:        250000,
		Status:       status,
		RevisionNote: note,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)
	return l
}

func testAgent(t *testing.T, id uint, role authorization.Role, active, verified bool) *agent.Agent {
	t.Helper()
	a, err := agent.Reconstruct(agent.ReconstructParams{
		ID:            id,
		SID:           "agt_tester",
		Name:          "Dana Tester",
		Email:         "dana@example.com",
		PasswordHash:  "x",
		Role:          role,
		Active:        active,
		EmailVerified: verified,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	})
	require.NoError(t, err)
	return a
}

// The full moderation cycle on one listing: submit, reject with a note,
// revise and resubmit, approve.
func TestModerationCycle(t *testing.T) {
	const ownerID uint = 3
	l := testListing(t, ownerID, publication.StatusDraft, "")

	listingRepo := new(mockListingRepository)
	agentRepo := new(mockAgentRepository)
	notifier := new(mockSubmissionNotifier)
	log := &mockLogger{}

	listingRepo.On("GetBySID", mock.Anything, "lst_moderation").Return(l, nil)
	listingRepo.On("Update", mock.Anything, l).Return(nil)
	agentRepo.On("GetByID", mock.Anything, ownerID).Return(testAgent(t, ownerID, authorization.RoleAgent, true, true), nil)
	notifier.On("SendSubmissionNotice", "listing", "Two bedroom apartment", "Dana Tester").Return(nil)

	submitUC := NewSubmitListingUseCase(listingRepo, agentRepo, notifier, log)
	rejectUC := NewRejectListingUseCase(listingRepo, log)
	approveUC := NewApproveListingUseCase(listingRepo, log)

	submitCmd := SubmitListingCommand{ActorID: ownerID, ActorRole: authorization.RoleAgent, SID: "lst_moderation"}

	resp, err := submitUC.Execute(context.Background(), submitCmd)
	require.NoError(t, err)
	assert.Equal(t, string(publication.StatusPendingReview), resp.Status)

	// A rejection without a note never leaves the validation layer.
	_, err = rejectUC.Execute(context.Background(), RejectListingCommand{SID: "lst_moderation", Note: "  "})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, publication.StatusPendingReview, l.Status())

	resp, err = rejectUC.Execute(context.Background(), RejectListingCommand{SID: "lst_moderation", Note: "add floor plans"})
	require.NoError(t, err)
	assert.Equal(t, string(publication.StatusReturned), resp.Status)
	assert.Equal(t, "add floor plans", resp.RevisionNote)

	// Resubmission clears the note.
	resp, err = submitUC.Execute(context.Background(), submitCmd)
	require.NoError(t, err)
	assert.Equal(t, string(publication.StatusPendingReview), resp.Status)
	assert.Empty(t, resp.RevisionNote)

	resp, err = approveUC.Execute(context.Background(), l.SID())
	require.NoError(t, err)
	assert.Equal(t, string(publication.StatusPublished), resp.Status)

	listingRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestApproveListing_NotPending(t *testing.T) {
	l := testListing(t, 3, publication.StatusDraft, "")

	listingRepo := new(mockListingRepository)
	listingRepo.On("GetBySID", mock.Anything, "lst_moderation").Return(l, nil)

	uc := NewApproveListingUseCase(listingRepo, &mockLogger{})

	_, err := uc.Execute(context.Background(), "lst_moderation")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidStateError(err))
	assert.Equal(t, publication.StatusDraft, l.Status())
}

func TestApproveListing_NotFound(t *testing.T) {
	listingRepo := new(mockListingRepository)
	listingRepo.On("GetBySID", mock.Anything, "lst_missing").Return(nil, nil)

	uc := NewApproveListingUseCase(listingRepo, &mockLogger{})

	_, err := uc.Execute(context.Background(), "lst_missing")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRejectListing_NotPending(t *testing.T) {
	l := testListing(t, 3, publication.StatusPublished, "")

	listingRepo := new(mockListingRepository)
	listingRepo.On("GetBySID", mock.Anything, "lst_moderation").Return(l, nil)

	uc := NewRejectListingUseCase(listingRepo, &mockLogger{})

	_, err := uc.Execute(context.Background(), RejectListingCommand{SID: "lst_moderation", Note: "anything"})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidStateError(err))
}

func TestSubmitListing_ForeignListingReadsAsMissing(t *testing.T) {
	l := testListing(t, 3, publication.StatusDraft, "")

	listingRepo := new(mockListingRepository)
	agentRepo := new(mockAgentRepository)
	listingRepo.On("GetBySID", mock.Anything, "lst_moderation").Return(l, nil)

	uc := NewSubmitListingUseCase(listingRepo, agentRepo, new(mockSubmissionNotifier), &mockLogger{})

	_, err := uc.Execute(context.Background(), SubmitListingCommand{
		ActorID:   99,
		ActorRole: authorization.RoleAgent,
		SID:       "lst_moderation",
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Equal(t, publication.StatusDraft, l.Status())
}

func TestSubmitListing_OperatorCanSubmitForeign(t *testing.T) {
	l := testListing(t, 3, publication.StatusDraft, "")

	listingRepo := new(mockListingRepository)
	agentRepo := new(mockAgentRepository)
	notifier := new(mockSubmissionNotifier)

	listingRepo.On("GetBySID", mock.Anything, "lst_moderation").Return(l, nil)
	listingRepo.On("Update", mock.Anything, l).Return(nil)
	agentRepo.On("GetByID", mock.Anything, uint(50)).Return(testAgent(t, 50, authorization.RoleOperator, true, true), nil)
	notifier.On("SendSubmissionNotice", "listing", "Two bedroom apartment", "Dana Tester").Return(nil)

	uc := NewSubmitListingUseCase(listingRepo, agentRepo, notifier, &mockLogger{})

	resp, err := uc.Execute(context.Background(), SubmitListingCommand{
		ActorID:   50,
		ActorRole: authorization.RoleOperator,
		SID:       "lst_moderation",
	})
	require.NoError(t, err)
	assert.Equal(t, string(publication.StatusPendingReview), resp.Status)
}
