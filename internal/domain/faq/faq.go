// Package faq holds the operator-managed FAQ entries shown on the help page.
package faq

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/casaplex/casaplex/internal/shared/biztime"
)

var ErrFAQNotFound = errors.New("faq entry not found")

// FAQ is a question and answer pair, listed newest-first.
type FAQ struct {
	id        uint
	title     string
	answer    string
	createdAt time.Time
	updatedAt time.Time
}

// New creates an FAQ entry.
func New(title, answer string) (*FAQ, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if strings.TrimSpace(answer) == "" {
		return nil, fmt.Errorf("answer is required")
	}
	now := biztime.NowUTC()
	return &FAQ{title: title, answer: answer, createdAt: now, updatedAt: now}, nil
}

// Reconstruct builds an FAQ from stored state.
func Reconstruct(id uint, title, answer string, createdAt, updatedAt time.Time) (*FAQ, error) {
	if id == 0 {
		return nil, fmt.Errorf("faq ID cannot be zero")
	}
	return &FAQ{id: id, title: title, answer: answer, createdAt: createdAt, updatedAt: updatedAt}, nil
}

func (f *FAQ) ID() uint             { return f.id }
func (f *FAQ) Title() string        { return f.title }
func (f *FAQ) Answer() string       { return f.answer }
func (f *FAQ) CreatedAt() time.Time { return f.createdAt }
func (f *FAQ) UpdatedAt() time.Time { return f.updatedAt }

// SetID assigns the database identity after insertion.
func (f *FAQ) SetID(newID uint) error {
	if f.id != 0 {
		return fmt.Errorf("faq ID already set")
	}
	f.id = newID
	return nil
}

// Update edits the entry.
func (f *FAQ) Update(title, answer string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(answer) == "" {
		return fmt.Errorf("answer is required")
	}
	f.title = title
	f.answer = answer
	f.updatedAt = biztime.NowUTC()
	return nil
}

// Repository is the persistence port for FAQ entries.
type Repository interface {
	Create(ctx context.Context, f *FAQ) error
	Update(ctx context.Context, f *FAQ) error
	Delete(ctx context.Context, faqID uint) error
	GetByID(ctx context.Context, faqID uint) (*FAQ, error)
	List(ctx context.Context) ([]*FAQ, error)
}
