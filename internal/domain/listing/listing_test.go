package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casaplex/casaplex/internal/domain/publication"
)

func newTestListing(t *testing.T, dealType DealType, rent *uint64, requested publication.Status) *Listing {
	t.Helper()
	l, err := NewListing(1, 2, "Sunny flat", "Two rooms near the park", dealType, 250000, rent, Attributes{SizeM2: 80, Rooms: 2, BuildYear: 2015}, "main.jpg", nil, requested)
	require.NoError(t, err)
	return l
}

func TestNewListing_RentNormalization(t *testing.T) {
	rent := uint64(1200)

	sale := newTestListing(t, DealSale, &rent, publication.StatusDraft)
	assert.Nil(t, sale.MonthlyRent(), "sale listings carry no monthly rent")

	rental := newTestListing(t, DealRent, nil, publication.StatusDraft)
	require.NotNil(t, rental.MonthlyRent())
	assert.Equal(t, uint64(0), *rental.MonthlyRent(), "missing rent defaults to zero")

	explicit := newTestListing(t, DealRent, &rent, publication.StatusDraft)
	require.NotNil(t, explicit.MonthlyRent())
	assert.Equal(t, rent, *explicit.MonthlyRent())
}

func TestNewListing_ClampsRequestedStatus(t *testing.T) {
	l := newTestListing(t, DealSale, nil, publication.StatusPublished)
	assert.Equal(t, publication.StatusDraft, l.Status(), "authors cannot self-publish at creation")

	l = newTestListing(t, DealSale, nil, publication.StatusPendingReview)
	assert.Equal(t, publication.StatusPendingReview, l.Status())
}

func TestListing_OwnerUpdateWhilePendingIsFrozen(t *testing.T) {
	l := newTestListing(t, DealSale, nil, publication.StatusPendingReview)

	err := l.Update(2, "New title", "desc", DealSale, 300000, nil, Attributes{}, "", nil, publication.StatusDraft, true)
	assert.ErrorIs(t, err, publication.ErrFrozenUnderReview)
	assert.Equal(t, "Sunny flat", l.Title(), "frozen edit must not change content")

	err = l.Update(2, "New title", "desc", DealSale, 300000, nil, Attributes{}, "", nil, publication.StatusPendingReview, false)
	require.NoError(t, err, "operators edit through the freeze")
	assert.Equal(t, "New title", l.Title())
}

func TestListing_OwnerEditOfPublishedReturnsToDraft(t *testing.T) {
	l := newTestListing(t, DealRent, nil, publication.StatusPendingReview)
	require.NoError(t, l.Approve())
	require.True(t, l.IsPublished())

	err := l.Update(2, "Refreshed", "desc", DealRent, 1500, nil, Attributes{}, "", nil, publication.StatusPublished, true)
	require.NoError(t, err)
	assert.Equal(t, publication.StatusDraft, l.Status())
}

func TestListing_OperatorEditOfPublishedReturnsToDraft(t *testing.T) {
	l := newTestListing(t, DealSale, nil, publication.StatusPendingReview)
	require.NoError(t, l.Approve())

	// an operator edit that does not ask for a status change still
	// re-enters the pipeline
	err := l.Update(2, "Corrected address", "desc", DealSale, 260000, nil, Attributes{}, "", nil, publication.StatusPublished, false)
	require.NoError(t, err)
	assert.Equal(t, publication.StatusDraft, l.Status())
}

func TestListing_RejectAndResubmitCycle(t *testing.T) {
	l := newTestListing(t, DealSale, nil, publication.StatusPendingReview)

	require.NoError(t, l.Reject("add more photos"))
	assert.Equal(t, publication.StatusReturned, l.Status())
	assert.Equal(t, "add more photos", l.RevisionNote())

	require.NoError(t, l.Submit())
	assert.Equal(t, publication.StatusPendingReview, l.Status())
	assert.Empty(t, l.RevisionNote(), "resubmission clears the note")
}

func TestListing_Ownership(t *testing.T) {
	l := newTestListing(t, DealSale, nil, publication.StatusDraft)
	assert.True(t, l.IsOwnedBy(1))
	assert.False(t, l.IsOwnedBy(7))

	l.ClearOwner()
	assert.Nil(t, l.OwnerID())
	assert.False(t, l.IsOwnedBy(1))
}

func TestReconstruct_RejectsBrokenNoteInvariant(t *testing.T) {
	_, err := Reconstruct(ReconstructParams{
		ID:           1,
		CityID:       1,
		Title:        "t",
		DealType:     DealSale,
		Status:       publication.StatusDraft,
		RevisionNote: "leftover note",
	})
	assert.Error(t, err)
}
