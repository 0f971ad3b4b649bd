package recipient

import (
	"context"

	"foodcycle-backend/domain"
)

type (
	RecipientService interface {
		GetRecipients(ctx context.Context, recipientType string, page, limit int) ([]domain.RecipientResponse, int64, error)
	}

	recipientService struct {
		recipientRepository RecipientRepository
	}
)

func NewRecipientService(recipientRepository RecipientRepository) RecipientService {
	return &recipientService{recipientRepository: recipientRepository}
}

func (s *recipientService) GetRecipients(ctx context.Context, recipientType string, page, limit int) ([]domain.RecipientResponse, int64, error) {
	recipients, count, err := s.recipientRepository.GetRecipients(ctx, recipientType, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.RecipientResponse, 0, len(recipients))
	for _, r := range recipients {
		response = append(response, domain.RecipientResponse{
			ID:      r.ID,
			Name:    r.Name,
			Address: r.Address,
			Contact: r.Contact,
			Type:    r.Type,
			Score:   r.Score,
		})
	}

	return response, count, nil
}
