package mappers

import (
	"github.com/casaplex/casaplex/internal/domain/contact"
	"github.com/casaplex/casaplex/internal/domain/faq"
	"github.com/casaplex/casaplex/internal/infrastructure/persistence/models"
)

// ContactMessageMapper converts between contact messages and persistence
// models.
type ContactMessageMapper interface {
	ToEntity(model *models.ContactMessageModel) (*contact.Message, error)
	ToModel(entity *contact.Message) *models.ContactMessageModel
	ToEntities(models []*models.ContactMessageModel) ([]*contact.Message, error)
}

type ContactMessageMapperImpl struct{}

func NewContactMessageMapper() ContactMessageMapper {
	return &ContactMessageMapperImpl{}
}

func (m *ContactMessageMapperImpl) ToEntity(model *models.ContactMessageModel) (*contact.Message, error) {
	if model == nil {
		return nil, nil
	}
	return contact.Reconstruct(
		model.ID,
		model.Name,
		model.Email,
		model.Phone,
		model.Subject,
		model.Body,
		model.Reviewed,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *ContactMessageMapperImpl) ToModel(entity *contact.Message) *models.ContactMessageModel {
	if entity == nil {
		return nil
	}
	return &models.ContactMessageModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		Email:     entity.Email(),
		Phone:     entity.Phone(),
		Subject:   entity.Subject(),
		Body:      entity.Body(),
		Reviewed:  entity.IsReviewed(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *ContactMessageMapperImpl) ToEntities(messageModels []*models.ContactMessageModel) ([]*contact.Message, error) {
	entities := make([]*contact.Message, 0, len(messageModels))
	for _, model := range messageModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// FAQMapper converts between FAQ entries and persistence models.
type FAQMapper interface {
	ToEntity(model *models.FAQModel) (*faq.FAQ, error)
	ToModel(entity *faq.FAQ) *models.FAQModel
	ToEntities(models []*models.FAQModel) ([]*faq.FAQ, error)
}

type FAQMapperImpl struct{}

func NewFAQMapper() FAQMapper {
	return &FAQMapperImpl{}
}

func (m *FAQMapperImpl) ToEntity(model *models.FAQModel) (*faq.FAQ, error) {
	if model == nil {
		return nil, nil
	}
	return faq.Reconstruct(model.ID, model.Title, model.Answer, model.CreatedAt, model.UpdatedAt)
}

func (m *FAQMapperImpl) ToModel(entity *faq.FAQ) *models.FAQModel {
	if entity == nil {
		return nil
	}
	return &models.FAQModel{
		ID:        entity.ID(),
		Title:     entity.Title(),
		Answer:    entity.Answer(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *FAQMapperImpl) ToEntities(faqModels []*models.FAQModel) ([]*faq.FAQ, error) {
	entities := make([]*faq.FAQ, 0, len(faqModels))
	for _, model := range faqModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
