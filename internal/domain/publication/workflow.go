package publication

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrFrozenUnderReview is returned when an author edits an entity that
	// is sitting in the review queue. Operators are exempt.
	ErrFrozenUnderReview = errors.New("entity is under review and frozen against author edits")

	// ErrNotPendingReview is returned when an approve/reject targets an
	// entity outside the review queue.
	ErrNotPendingReview = errors.New("entity is not pending review")

	// ErrRevisionNoteRequired is returned when a rejection carries no note.
	ErrRevisionNoteRequired = errors.New("a revision note is required to return an entity")

	// ErrNotReturned is returned when a resubmit targets an entity that was
	// never returned for revision.
	ErrNotReturned = errors.New("entity was not returned for revision")
)

// Workflow holds the publication state of a single entity. Listing and
// Article embed it so both kinds move through an identical pipeline.
//
// Invariant: RevisionNote is non-empty exactly when the status is returned;
// any move to a different status clears the note.
type Workflow struct {
	status       Status
	revisionNote string
}

// NewWorkflow starts an entity in the workflow. The author's requested
// status is clamped to draft/pending_review.
func NewWorkflow(requested Status) Workflow {
	return Workflow{status: ClampRequested(requested)}
}

// ReconstructWorkflow rehydrates workflow state from persistence.
func ReconstructWorkflow(status Status, revisionNote string) (Workflow, error) {
	if !status.IsValid() {
		return Workflow{}, fmt.Errorf("invalid publication status: %q", status)
	}
	if status != StatusReturned && revisionNote != "" {
		return Workflow{}, fmt.Errorf("revision note present on %s entity", status)
	}
	if status == StatusReturned && revisionNote == "" {
		return Workflow{}, fmt.Errorf("returned entity is missing its revision note")
	}
	return Workflow{status: status, revisionNote: revisionNote}, nil
}

// Status returns the current publication status.
func (w *Workflow) Status() Status {
	return w.status
}

// RevisionNote returns the operator's note; empty unless status is returned.
func (w *Workflow) RevisionNote() string {
	return w.revisionNote
}

// IsPublished reports whether the entity is publicly visible.
func (w *Workflow) IsPublished() bool {
	return w.status == StatusPublished
}

// IsFrozenForAuthor reports whether author edits are blocked. Items in the
// review queue are read-only to their author until an operator decides.
func (w *Workflow) IsFrozenForAuthor() bool {
	return w.status == StatusPendingReview
}

// AuthorEdit applies an author's edit with the requested status. Editing a
// published entity pulls it back to draft so it re-enters the pipeline;
// editing a returned entity clears the revision note.
func (w *Workflow) AuthorEdit(requested Status) error {
	if w.IsFrozenForAuthor() {
		return ErrFrozenUnderReview
	}
	if !authorRequestable(requested) {
		requested = StatusDraft
	}
	w.setStatus(requested)
	return nil
}

// OperatorEdit applies an operator's edit. Operators may edit any state
// and may move a non-published entity to any status directly, but editing
// a published entity pulls it back to draft so it re-enters the pipeline,
// exactly as an author edit would.
func (w *Workflow) OperatorEdit(requested Status) {
	if !requested.IsValid() {
		requested = StatusDraft
	}
	if w.status == StatusPublished {
		requested = StatusDraft
	}
	if requested == StatusReturned && w.revisionNote == "" {
		// cannot silently enter returned without a note
		requested = StatusDraft
	}
	w.setStatus(requested)
}

// Approve moves a pending entity to published.
func (w *Workflow) Approve() error {
	if w.status != StatusPendingReview {
		return ErrNotPendingReview
	}
	w.setStatus(StatusPublished)
	return nil
}

// Reject returns a pending entity to its author with a mandatory note.
func (w *Workflow) Reject(note string) error {
	if w.status != StatusPendingReview {
		return ErrNotPendingReview
	}
	note = strings.TrimSpace(note)
	if note == "" {
		return ErrRevisionNoteRequired
	}
	w.status = StatusReturned
	w.revisionNote = note
	return nil
}

// Resubmit sends a returned entity back into the review queue, clearing the
// note. Drafts may be submitted the same way.
func (w *Workflow) Resubmit() error {
	if w.status != StatusReturned && w.status != StatusDraft {
		return ErrNotReturned
	}
	w.setStatus(StatusPendingReview)
	return nil
}

// setStatus applies the transition and maintains the revision-note
// invariant: leaving returned always clears the note.
func (w *Workflow) setStatus(s Status) {
	if s != StatusReturned {
		w.revisionNote = ""
	}
	w.status = s
}
