// Package contact holds visitor-submitted contact messages.
package contact

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/casaplex/casaplex/internal/shared/biztime"
)

var ErrMessageNotFound = errors.New("contact message not found")

// Message is a contact form submission awaiting operator review.
type Message struct {
	id        uint
	name      string
	email     string
	phone     string
	subject   string
	body      string
	reviewed  bool
	createdAt time.Time
	updatedAt time.Time
}

// NewMessage creates an unreviewed contact submission.
func NewMessage(name, email, phone, subject, body string) (*Message, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address: %w", err)
	}
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("message body is required")
	}
	now := biztime.NowUTC()
	return &Message{
		name:      name,
		email:     email,
		phone:     strings.TrimSpace(phone),
		subject:   strings.TrimSpace(subject),
		body:      body,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct builds a Message from stored state.
func Reconstruct(id uint, name, email, phone, subject, body string, reviewed bool, createdAt, updatedAt time.Time) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	return &Message{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		subject:   subject,
		body:      body,
		reviewed:  reviewed,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (m *Message) ID() uint             { return m.id }
func (m *Message) Name() string         { return m.name }
func (m *Message) Email() string        { return m.email }
func (m *Message) Phone() string        { return m.phone }
func (m *Message) Subject() string      { return m.subject }
func (m *Message) Body() string         { return m.body }
func (m *Message) IsReviewed() bool     { return m.reviewed }
func (m *Message) CreatedAt() time.Time { return m.createdAt }
func (m *Message) UpdatedAt() time.Time { return m.updatedAt }

// SetID assigns the database identity after insertion.
func (m *Message) SetID(newID uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID already set")
	}
	m.id = newID
	return nil
}

// MarkReviewed flags the message as handled by an operator.
func (m *Message) MarkReviewed() {
	m.reviewed = true
	m.updatedAt = biztime.NowUTC()
}

// Repository is the persistence port for contact messages.
type Repository interface {
	Create(ctx context.Context, m *Message) error
	Update(ctx context.Context, m *Message) error
	Delete(ctx context.Context, messageID uint) error
	GetByID(ctx context.Context, messageID uint) (*Message, error)
	// List returns messages newest-first; unreviewedOnly narrows to the
	// operator work queue.
	List(ctx context.Context, unreviewedOnly bool, page, pageSize int) ([]*Message, int64, error)
}
