package article

import (
	"context"
	"time"

	"github.com/casaplex/casaplex/internal/domain/publication"
)

// Visibility scopes an article catalog query.
type Visibility struct {
	Statuses []publication.Status
	AuthorID *uint
	// PublishedBefore, when set, hides articles future-dated past this
	// instant. Public queries set it to now.
	PublishedBefore *time.Time
}

// PublicAt is the visibility every unauthenticated caller gets.
func PublicAt(now time.Time) Visibility {
	return Visibility{
		Statuses:        []publication.Status{publication.StatusPublished},
		PublishedBefore: &now,
	}
}

// AuthorVisibility scopes results to one agent, optionally by status.
func AuthorVisibility(authorID uint, statuses ...publication.Status) Visibility {
	return Visibility{Statuses: statuses, AuthorID: &authorID}
}

// Filter carries the article search criteria.
type Filter struct {
	// Search matches title and body, OR'd with the author name.
	Search     string
	CategoryID *uint
}

// Repository is the persistence port for articles.
type Repository interface {
	Create(ctx context.Context, a *Article) error
	Update(ctx context.Context, a *Article) error
	Delete(ctx context.Context, articleID uint) error

	// GetByID returns (nil, nil) when no article matches.
	GetByID(ctx context.Context, articleID uint) (*Article, error)
	GetBySID(ctx context.Context, sid string) (*Article, error)

	// Search returns a page of matches newest-first plus the total count.
	Search(ctx context.Context, filter Filter, vis Visibility, page, pageSize int) ([]*Article, int64, error)

	// Latest returns the newest publicly visible articles.
	Latest(ctx context.Context, now time.Time, limit int) ([]*Article, error)

	// CountByStatus tallies an author's articles per publication state.
	CountByStatus(ctx context.Context, authorID uint) (map[publication.Status]int64, error)

	// ClearAuthor nulls the author reference on all articles of a
	// deleted agent.
	ClearAuthor(ctx context.Context, authorID uint) error
}
