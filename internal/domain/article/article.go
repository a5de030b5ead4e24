// Package article holds the blog article aggregate and its category catalog.
package article

import (
	"fmt"
	"strings"
	"time"

	"github.com/casaplex/casaplex/internal/domain/publication"
	"github.com/casaplex/casaplex/internal/shared/biztime"
	"github.com/casaplex/casaplex/internal/shared/id"
)

// Article is the aggregate root for an agent-authored blog post. The body
// is stored as markdown; bodyHTML is the sanitized rendering and is
// recomputed by the application layer whenever the body changes.
type Article struct {
	publication.Workflow

	id          uint
	sid         string
	authorID    *uint
	title       string
	body        string
	bodyHTML    string
	imageURL    string
	categoryIDs []uint
	publishAt   time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// NewArticle creates an article authored by the given agent. A zero
// publishAt defaults to now; a future value keeps the article out of the
// public catalog until that time even when published.
func NewArticle(authorID uint, title, body, bodyHTML, imageURL string, categoryIDs []uint, publishAt time.Time, requested publication.Status) (*Article, error) {
	if authorID == 0 {
		return nil, fmt.Errorf("author ID cannot be zero")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("body is required")
	}

	now := biztime.NowUTC()
	if publishAt.IsZero() {
		publishAt = now
	}
	return &Article{
		Workflow:    publication.NewWorkflow(requested),
		sid:         id.MustGenerateWithPrefix(id.PrefixArticle, id.DefaultLength),
		authorID:    &authorID,
		title:       title,
		body:        body,
		bodyHTML:    bodyHTML,
		imageURL:    imageURL,
		categoryIDs: categoryIDs,
		publishAt:   publishAt,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructParams rehydrates an Article from persistence.
type ReconstructParams struct {
	ID           uint
	SID          string
	AuthorID     *uint
	Title        string
	Body         string
	BodyHTML     string
	ImageURL     string
	CategoryIDs  []uint
	PublishAt    time.Time
	Status       publication.Status
	RevisionNote string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Reconstruct builds an Article from stored state.
func Reconstruct(p ReconstructParams) (*Article, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("article ID cannot be zero")
	}
	wf, err := publication.ReconstructWorkflow(p.Status, p.RevisionNote)
	if err != nil {
		return nil, err
	}
	return &Article{
		Workflow:    wf,
		id:          p.ID,
		sid:         p.SID,
		authorID:    p.AuthorID,
		title:       p.Title,
		body:        p.Body,
		bodyHTML:    p.BodyHTML,
		imageURL:    p.ImageURL,
		categoryIDs: p.CategoryIDs,
		publishAt:   p.PublishAt,
		createdAt:   p.CreatedAt,
		updatedAt:   p.UpdatedAt,
	}, nil
}

func (a *Article) ID() uint             { return a.id }
func (a *Article) SID() string          { return a.sid }
func (a *Article) AuthorID() *uint      { return a.authorID }
func (a *Article) Title() string        { return a.title }
func (a *Article) Body() string         { return a.body }
func (a *Article) BodyHTML() string     { return a.bodyHTML }
func (a *Article) ImageURL() string     { return a.imageURL }
func (a *Article) CategoryIDs() []uint  { return a.categoryIDs }
func (a *Article) PublishAt() time.Time { return a.publishAt }
func (a *Article) CreatedAt() time.Time { return a.createdAt }
func (a *Article) UpdatedAt() time.Time { return a.updatedAt }

// IsOwnedBy reports whether the given agent authored this article.
func (a *Article) IsOwnedBy(agentID uint) bool {
	return a.authorID != nil && *a.authorID == agentID
}

// IsVisibleAt reports whether the article belongs in the public catalog at
// the given instant: published and not future-dated.
func (a *Article) IsVisibleAt(now time.Time) bool {
	return a.IsPublished() && !a.publishAt.After(now)
}

// ClearAuthor detaches the article from a deleted agent account.
func (a *Article) ClearAuthor() {
	a.authorID = nil
	a.touch()
}

// SetID assigns the database identity after insertion.
func (a *Article) SetID(newID uint) error {
	if a.id != 0 {
		return fmt.Errorf("article ID already set")
	}
	if newID == 0 {
		return fmt.Errorf("article ID cannot be zero")
	}
	a.id = newID
	return nil
}

// Update applies a content edit. asOwner selects the author-side workflow
// rules, same as for listings.
func (a *Article) Update(title, body, bodyHTML, imageURL string, categoryIDs []uint, publishAt time.Time, requested publication.Status, asOwner bool) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(body) == "" {
		return fmt.Errorf("body is required")
	}

	if asOwner {
		if err := a.AuthorEdit(requested); err != nil {
			return err
		}
	} else {
		a.OperatorEdit(requested)
	}

	if publishAt.IsZero() {
		publishAt = a.publishAt
	}
	a.title = title
	a.body = body
	a.bodyHTML = bodyHTML
	a.imageURL = imageURL
	a.categoryIDs = categoryIDs
	a.publishAt = publishAt
	a.touch()
	return nil
}

// Submit sends a draft or returned article to the review queue.
func (a *Article) Submit() error {
	if err := a.Resubmit(); err != nil {
		return err
	}
	a.touch()
	return nil
}

// Approve publishes an article under review.
func (a *Article) Approve() error {
	if err := a.Workflow.Approve(); err != nil {
		return err
	}
	a.touch()
	return nil
}

// Reject returns an article to its author with a mandatory revision note.
func (a *Article) Reject(note string) error {
	if err := a.Workflow.Reject(note); err != nil {
		return err
	}
	a.touch()
	return nil
}

func (a *Article) touch() {
	a.updatedAt = biztime.NowUTC()
}
