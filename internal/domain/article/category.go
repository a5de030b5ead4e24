package article

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/casaplex/casaplex/internal/shared/biztime"
)

// Category is an operator-managed tag articles attach to.
type Category struct {
	id        uint
	title     string
	createdAt time.Time
	updatedAt time.Time
}

// NewCategory creates a category catalog entry.
func NewCategory(title string) (*Category, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("category title is required")
	}
	now := biztime.NowUTC()
	return &Category{title: title, createdAt: now, updatedAt: now}, nil
}

// ReconstructCategory builds a Category from stored state.
func ReconstructCategory(id uint, title string, createdAt, updatedAt time.Time) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	if title == "" {
		return nil, fmt.Errorf("category title is required")
	}
	return &Category{id: id, title: title, createdAt: createdAt, updatedAt: updatedAt}, nil
}

func (c *Category) ID() uint             { return c.id }
func (c *Category) Title() string        { return c.title }
func (c *Category) CreatedAt() time.Time { return c.createdAt }
func (c *Category) UpdatedAt() time.Time { return c.updatedAt }

// SetID assigns the database identity after insertion.
func (c *Category) SetID(newID uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID already set")
	}
	c.id = newID
	return nil
}

// Rename updates the category title.
func (c *Category) Rename(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("category title is required")
	}
	c.title = title
	c.updatedAt = biztime.NowUTC()
	return nil
}

// CategoryRepository is the persistence port for article categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, categoryID uint) error
	GetByID(ctx context.Context, categoryID uint) (*Category, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Category, error)
	List(ctx context.Context) ([]*Category, error)
}
