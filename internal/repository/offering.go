package repository

import (
	"context"

	"github.com/localboost/backend/internal/entity"
	"github.com/localboost/backend/pkg/xcontext"
)

type OfferingFilter struct {
	CreatorProfileID string
	ActiveOnly       bool
}

type OfferingRepository interface {
	Create(context.Context, *entity.Offering) error
	GetByID(ctx context.Context, id string) (*entity.Offering, error)
	GetList(ctx context.Context, filter *OfferingFilter, offset, limit int) ([]entity.Offering, error)
	UpdateByID(ctx context.Context, id string, data *entity.Offering) error
	Deactivate(ctx context.Context, id string) error
}

type offeringRepository struct{}

func NewOfferingRepository() *offeringRepository {
	return &offeringRepository{}
}

func (r *offeringRepository) Create(ctx context.Context, data *entity.Offering) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *offeringRepository) GetByID(ctx context.Context, id string) (*entity.Offering, error) {
	var record entity.Offering
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *offeringRepository) GetList(
	ctx context.Context, filter *OfferingFilter, offset, limit int,
) ([]entity.Offering, error) {
	tx := xcontext.DB(ctx).
		Offset(offset).
		Limit(limit).
		Order("created_at ASC")

	if filter.CreatorProfileID != "" {
		tx = tx.Where("creator_profile_id=?", filter.CreatorProfileID)
	}

	if filter.ActiveOnly {
		tx = tx.Where("active=?", true)
	}

	var records []entity.Offering
	if err := tx.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *offeringRepository) UpdateByID(ctx context.Context, id string, data *entity.Offering) error {
	return xcontext.DB(ctx).Model(&entity.Offering{}).Where("id=?", id).Updates(data).Error
}

func (r *offeringRepository) Deactivate(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Model(&entity.Offering{}).
		Where("id=?", id).
		Update("active", false).Error
}
