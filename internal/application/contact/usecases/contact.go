package usecases

import (
	"context"
	"fmt"

	"github.com/casaplex/casaplex/internal/application/contact/dto"
	"github.com/casaplex/casaplex/internal/domain/contact"
	"github.com/casaplex/casaplex/internal/shared/constants"
	"github.com/casaplex/casaplex/internal/shared/errors"
	"github.com/casaplex/casaplex/internal/shared/logger"
	"github.com/casaplex/casaplex/internal/shared/utils"
)

// ContactNotifier forwards a stored message to the operator mailbox.
type ContactNotifier interface {
	SendContactNotice(name, fromEmail, subject, body string) error
}

type SubmitContactCommand struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Body    string
}

// SubmitContactUseCase stores a contact form message and forwards it by
// email. The route in front of it is rate limited per client IP.
type SubmitContactUseCase struct {
	contactRepo contact.Repository
	notifier    ContactNotifier
	logger      logger.Interface
}

func NewSubmitContactUseCase(
	contactRepo contact.Repository,
	notifier ContactNotifier,
	logger logger.Interface,
) *SubmitContactUseCase {
	return &SubmitContactUseCase{
		contactRepo: contactRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *SubmitContactUseCase) Execute(ctx context.Context, cmd SubmitContactCommand) (*dto.ContactMessageResponse, error) {
	m, err := contact.NewMessage(cmd.Name, cmd.Email, cmd.Phone, cmd.Subject, cmd.Body)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.contactRepo.Create(ctx, m); err != nil {
		uc.logger.Errorw("failed to store contact message", "error", err)
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}

	uc.logger.Infow("contact message received", "message_id", m.ID(), "subject", m.Subject())

	if err := uc.notifier.SendContactNotice(m.Name(), m.Email(), m.Subject(), m.Body()); err != nil {
		uc.logger.Warnw("contact notice failed", "message_id", m.ID(), "error", err)
	}

	resp := dto.NewContactMessageResponse(m)
	return &resp, nil
}

type ListContactMessagesCommand struct {
	UnreviewedOnly bool
	Page           int
}

// MessagesResult is one page of the operator contact inbox.
type MessagesResult struct {
	Items    []dto.ContactMessageResponse
	Total    int64
	Page     int
	PageSize int
}

// ListContactMessagesUseCase pages the operator contact inbox.
type ListContactMessagesUseCase struct {
	contactRepo contact.Repository
}

func NewListContactMessagesUseCase(contactRepo contact.Repository) *ListContactMessagesUseCase {
	return &ListContactMessagesUseCase{contactRepo: contactRepo}
}

func (uc *ListContactMessagesUseCase) Execute(ctx context.Context, cmd ListContactMessagesCommand) (*MessagesResult, error) {
	pageSize := constants.DefaultPageSize
	messages, total, err := uc.contactRepo.List(ctx, cmd.UnreviewedOnly, cmd.Page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}

	return &MessagesResult{
		Items:    dto.NewContactMessageResponses(messages),
		Total:    total,
		Page:     utils.ClampPage(cmd.Page, total, pageSize),
		PageSize: pageSize,
	}, nil
}

// MarkContactReviewedUseCase marks an inbox message as handled.
type MarkContactReviewedUseCase struct {
	contactRepo contact.Repository
	logger      logger.Interface
}

func NewMarkContactReviewedUseCase(contactRepo contact.Repository, logger logger.Interface) *MarkContactReviewedUseCase {
	return &MarkContactReviewedUseCase{contactRepo: contactRepo, logger: logger}
}

func (uc *MarkContactReviewedUseCase) Execute(ctx context.Context, messageID uint) (*dto.ContactMessageResponse, error) {
	m, err := uc.contactRepo.GetByID(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("failed to load contact message: %w", err)
	}
	if m == nil {
		return nil, errors.NewNotFoundError("contact message not found")
	}

	m.MarkReviewed()
	if err := uc.contactRepo.Update(ctx, m); err != nil {
		uc.logger.Errorw("failed to mark message reviewed", "message_id", messageID, "error", err)
		return nil, fmt.Errorf("failed to mark message reviewed: %w", err)
	}

	resp := dto.NewContactMessageResponse(m)
	return &resp, nil
}

// DeleteContactMessageUseCase removes an inbox message.
type DeleteContactMessageUseCase struct {
	contactRepo contact.Repository
	logger      logger.Interface
}

func NewDeleteContactMessageUseCase(contactRepo contact.Repository, logger logger.Interface) *DeleteContactMessageUseCase {
	return &DeleteContactMessageUseCase{contactRepo: contactRepo, logger: logger}
}

func (uc *DeleteContactMessageUseCase) Execute(ctx context.Context, messageID uint) error {
	m, err := uc.contactRepo.GetByID(ctx, messageID)
	if err != nil {
		return fmt.Errorf("failed to load contact message: %w", err)
	}
	if m == nil {
		return errors.NewNotFoundError("contact message not found")
	}

	if err := uc.contactRepo.Delete(ctx, messageID); err != nil {
		uc.logger.Errorw("failed to delete contact message", "message_id", messageID, "error", err)
		return fmt.Errorf("failed to delete contact message: %w", err)
	}
	return nil
}
