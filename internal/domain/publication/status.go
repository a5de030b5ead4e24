// Package publication implements the moderation workflow shared by listings
// and articles: draft -> pending_review -> published / returned, with
// returned items cycling back through review after the author revises them.
package publication

import "fmt"

// Status is the visible publication state of a listing or article.
type Status string

const (
	StatusDraft         Status = "draft"
	StatusPendingReview Status = "pending_review"
	StatusPublished     Status = "published"
	StatusReturned      Status = "returned"
)

// ValidStatuses enumerates every recognized status.
var ValidStatuses = map[Status]bool{
	StatusDraft:         true,
	StatusPendingReview: true,
	StatusPublished:     true,
	StatusReturned:      true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return ValidStatuses[s]
}

// ParseStatus validates a raw status string.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid publication status: %q", raw)
	}
	return s, nil
}

// ClampRequested maps an author's requested status at creation time onto the
// states an author may actually enter. Authors cannot self-publish or
// self-return; anything outside draft/pending_review becomes draft.
func ClampRequested(requested Status) Status {
	if requested == StatusDraft || requested == StatusPendingReview {
		return requested
	}
	return StatusDraft
}

// authorRequestable reports whether an author may ask for this status on an
// edit of their own entity.
func authorRequestable(s Status) bool {
	return s == StatusDraft || s == StatusPendingReview
}
