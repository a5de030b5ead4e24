package article

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casaplex/casaplex/internal/domain/publication"
)

func TestNewArticle_PublishAtDefaultsToNow(t *testing.T) {
	before := time.Now().UTC()
	a, err := NewArticle(1, "Market trends", "Prices went up.", "<p>Prices went up.</p>", "", nil, time.Time{}, publication.StatusDraft)
	require.NoError(t, err)
	assert.False(t, a.PublishAt().Before(before))
}

func TestArticle_FutureDatedHiddenFromPublic(t *testing.T) {
	now := time.Now().UTC()
	future := now.Add(48 * time.Hour)

	a, err := NewArticle(1, "Scheduled", "body", "<p>body</p>", "", nil, future, publication.StatusPendingReview)
	require.NoError(t, err)
	require.NoError(t, a.Approve())

	assert.False(t, a.IsVisibleAt(now), "future-dated article stays hidden even when published")
	assert.True(t, a.IsVisibleAt(future), "visible exactly at publish_at")
	assert.True(t, a.IsVisibleAt(future.Add(time.Second)))
}

func TestArticle_DraftNeverPublic(t *testing.T) {
	a, err := NewArticle(1, "Draft", "body", "", "", nil, time.Time{}, publication.StatusDraft)
	require.NoError(t, err)
	assert.False(t, a.IsVisibleAt(time.Now().Add(time.Hour)))
}

func TestArticle_AuthorEditFrozenUnderReview(t *testing.T) {
	a, err := NewArticle(1, "Pending", "body", "", "", nil, time.Time{}, publication.StatusPendingReview)
	require.NoError(t, err)

	err = a.Update("Edited", "body", "", "", nil, time.Time{}, publication.StatusDraft, true)
	assert.ErrorIs(t, err, publication.ErrFrozenUnderReview)

	require.NoError(t, a.Update("Edited", "body", "", "", nil, time.Time{}, publication.StatusPendingReview, false))
	assert.Equal(t, "Edited", a.Title())
}

func TestArticle_OperatorEditOfPublishedReturnsToDraft(t *testing.T) {
	a, err := NewArticle(1, "Live", "body", "", "", nil, time.Time{}, publication.StatusPendingReview)
	require.NoError(t, err)
	require.NoError(t, a.Approve())

	err = a.Update("Live, corrected", "body", "", "", nil, time.Time{}, publication.StatusPublished, false)
	require.NoError(t, err)
	assert.Equal(t, publication.StatusDraft, a.Status())
}
