package repository

import (
	"context"

	"github.com/localboost/backend/internal/entity"
	"github.com/localboost/backend/pkg/xcontext"
)

type CreditFilter struct {
	SponsorProfileID string
	RecipientUserID  string
	Status           []entity.CreditStatus
}

type CreditRepository interface {
	Create(context.Context, *entity.Credit) error
	GetByID(ctx context.Context, id string) (*entity.Credit, error)
	GetList(ctx context.Context, filter *CreditFilter, offset, limit int) ([]entity.Credit, error)
	UpdateByID(ctx context.Context, id string, data *entity.Credit) error
}

type creditRepository struct{}

func NewCreditRepository() *creditRepository {
	return &creditRepository{}
}

func (r *creditRepository) Create(ctx context.Context, data *entity.Credit) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *creditRepository) GetByID(ctx context.Context, id string) (*entity.Credit, error) {
	var record entity.Credit
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *creditRepository) GetList(
	ctx context.Context, filter *CreditFilter, offset, limit int,
) ([]entity.Credit, error) {
	tx := xcontext.DB(ctx).
		Offset(offset).
		Limit(limit).
		Order("created_at ASC")

	if filter.SponsorProfileID != "" {
		tx = tx.Where("sponsor_profile_id=?", filter.SponsorProfileID)
	}

	if filter.RecipientUserID != "" {
		tx = tx.Where("recipient_user_id=?", filter.RecipientUserID)
	}

	if len(filter.Status) > 0 {
		tx = tx.Where("status IN (?)", filter.Status)
	}

	var records []entity.Credit
	if err := tx.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *creditRepository) UpdateByID(ctx context.Context, id string, data *entity.Credit) error {
	return xcontext.DB(ctx).Model(&entity.Credit{}).Where("id=?", id).Updates(data).Error
}
