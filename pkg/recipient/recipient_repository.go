package recipient

import (
	"context"
	"foodcycle-backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RecipientRepository interface {
		CreateRecipient(ctx context.Context, recipient *entities.Recipient) (bool, error)
		GetRecipientByID(ctx context.Context, id uint) (*entities.Recipient, error)
		GetRecipients(ctx context.Context, recipientType string, page, limit int) ([]*entities.Recipient, int64, error)
	}

	recipientRepository struct {
		db *gorm.DB
	}
)

func NewRecipientRepository(db *gorm.DB) RecipientRepository {
	return &recipientRepository{db: db}
}

func (r *recipientRepository) CreateRecipient(ctx context.Context, recipient *entities.Recipient) (bool, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(recipient)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *recipientRepository) GetRecipientByID(ctx context.Context, id uint) (*entities.Recipient, error) {
	var recipient entities.Recipient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipient).Error; err != nil {
		return nil, err
	}
	return &recipient, nil
}

func (r *recipientRepository) GetRecipients(ctx context.Context, recipientType string, page, limit int) ([]*entities.Recipient, int64, error) {
	var recipients []*entities.Recipient
	var count int64

	offset := (page - 1) * limit
	query := r.db.WithContext(ctx)

	if recipientType != "" {
		query = query.Where("type = ?", recipientType)
	}

	if err := query.Model(&entities.Recipient{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("id DESC").Find(&recipients).Error; err != nil {
		return nil, 0, err
	}

	return recipients, count, nil
}
