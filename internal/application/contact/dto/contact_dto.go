package dto

import (
	"time"

	"github.com/casaplex/casaplex/internal/domain/contact"
)

// ContactMessageResponse is the API shape of a contact form message.
type ContactMessageResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Reviewed  bool      `json:"reviewed"`
	CreatedAt time.Time `json:"created_at"`
}

// NewContactMessageResponse maps a contact message entity.
func NewContactMessageResponse(m *contact.Message) ContactMessageResponse {
	return ContactMessageResponse{
		ID:        m.ID(),
		Name:      m.Name(),
		Email:     m.Email(),
		Phone:     m.Phone(),
		Subject:   m.Subject(),
		Body:      m.Body(),
		Reviewed:  m.IsReviewed(),
		CreatedAt: m.CreatedAt(),
	}
}

// NewContactMessageResponses maps a message page.
func NewContactMessageResponses(messages []*contact.Message) []ContactMessageResponse {
	out := make([]ContactMessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, NewContactMessageResponse(m))
	}
	return out
}
