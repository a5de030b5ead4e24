package publication

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noteInvariant asserts the core invariant: the revision note is non-empty
// exactly when the status is returned.
func noteInvariant(t *testing.T, w *Workflow) {
	t.Helper()
	if w.Status() == StatusReturned {
		assert.NotEmpty(t, w.RevisionNote())
	} else {
		assert.Empty(t, w.RevisionNote())
	}
}

func TestClampRequested(t *testing.T) {
	tests := []struct {
		requested Status
		want      Status
	}{
		{StatusDraft, StatusDraft},
		{StatusPendingReview, StatusPendingReview},
		{StatusPublished, StatusDraft},
		{StatusReturned, StatusDraft},
		{Status("bogus"), StatusDraft},
	}

	for _, tt := range tests {
		t.Run(string(tt.requested), func(t *testing.T) {
			assert.Equal(t, tt.want, ClampRequested(tt.requested))
		})
	}
}

func TestWorkflow_FullCycle(t *testing.T) {
	w := NewWorkflow(StatusDraft)
	assert.Equal(t, StatusDraft, w.Status())
	noteInvariant(t, &w)

	// author submits
	require.NoError(t, w.Resubmit())
	assert.Equal(t, StatusPendingReview, w.Status())
	assert.True(t, w.IsFrozenForAuthor())
	noteInvariant(t, &w)

	// operator rejects with a note
	require.NoError(t, w.Reject("add more photos"))
	assert.Equal(t, StatusReturned, w.Status())
	assert.Equal(t, "add more photos", w.RevisionNote())
	noteInvariant(t, &w)

	// author edits and resubmits, note is cleared
	require.NoError(t, w.Resubmit())
	assert.Equal(t, StatusPendingReview, w.Status())
	assert.Empty(t, w.RevisionNote())
	noteInvariant(t, &w)

	// operator approves
	require.NoError(t, w.Approve())
	assert.True(t, w.IsPublished())
	noteInvariant(t, &w)

	// editing a published entity re-enters the pipeline at draft
	require.NoError(t, w.AuthorEdit(StatusPublished))
	assert.Equal(t, StatusDraft, w.Status())
	noteInvariant(t, &w)
}

func TestWorkflow_AuthorEditFrozenUnderReview(t *testing.T) {
	w := NewWorkflow(StatusPendingReview)

	err := w.AuthorEdit(StatusDraft)

	assert.ErrorIs(t, err, ErrFrozenUnderReview)
	assert.Equal(t, StatusPendingReview, w.Status())
}

func TestWorkflow_OperatorEditBypassesFreeze(t *testing.T) {
	w := NewWorkflow(StatusPendingReview)

	w.OperatorEdit(StatusDraft)

	assert.Equal(t, StatusDraft, w.Status())
}

func TestWorkflow_OperatorEditOfPublishedDropsToDraft(t *testing.T) {
	w := NewWorkflow(StatusPendingReview)
	require.NoError(t, w.Approve())

	// even re-requesting the current status counts as a material edit
	w.OperatorEdit(StatusPublished)

	assert.Equal(t, StatusDraft, w.Status())
	noteInvariant(t, &w)
}

func TestWorkflow_OperatorEditCanPromoteDraft(t *testing.T) {
	w := NewWorkflow(StatusDraft)

	w.OperatorEdit(StatusPublished)

	assert.Equal(t, StatusPublished, w.Status())
}

func TestWorkflow_AuthorCannotSelfPublish(t *testing.T) {
	w := NewWorkflow(StatusDraft)

	require.NoError(t, w.AuthorEdit(StatusPublished))

	assert.Equal(t, StatusDraft, w.Status())
}

func TestWorkflow_AuthorEditOfReturnedClearsNote(t *testing.T) {
	w := NewWorkflow(StatusDraft)
	require.NoError(t, w.Resubmit())
	require.NoError(t, w.Reject("blurry images"))

	require.NoError(t, w.AuthorEdit(StatusDraft))

	assert.Equal(t, StatusDraft, w.Status())
	assert.Empty(t, w.RevisionNote())
}

func TestWorkflow_RejectRequiresNote(t *testing.T) {
	w := NewWorkflow(StatusPendingReview)

	assert.ErrorIs(t, w.Reject("  "), ErrRevisionNoteRequired)
	assert.Equal(t, StatusPendingReview, w.Status())
}

func TestWorkflow_ApproveOutsideQueue(t *testing.T) {
	w := NewWorkflow(StatusDraft)
	assert.ErrorIs(t, w.Approve(), ErrNotPendingReview)

	require.NoError(t, w.Resubmit())
	require.NoError(t, w.Approve())
	assert.ErrorIs(t, w.Approve(), ErrNotPendingReview)
}

func TestWorkflow_ResubmitOnlyFromDraftOrReturned(t *testing.T) {
	w := NewWorkflow(StatusPendingReview)
	assert.ErrorIs(t, w.Resubmit(), ErrNotReturned)

	require.NoError(t, w.Approve())
	assert.ErrorIs(t, w.Resubmit(), ErrNotReturned)
}

func TestReconstructWorkflow_EnforcesNoteInvariant(t *testing.T) {
	_, err := ReconstructWorkflow(StatusDraft, "stray note")
	assert.Error(t, err)

	_, err = ReconstructWorkflow(StatusReturned, "")
	assert.Error(t, err)

	w, err := ReconstructWorkflow(StatusReturned, "fix the price")
	require.NoError(t, err)
	assert.Equal(t, "fix the price", w.RevisionNote())

	_, err = ReconstructWorkflow(Status("weird"), "")
	assert.Error(t, err)
}
