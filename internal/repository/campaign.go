package repository

import (
	"context"
	"fmt"

	"github.com/localboost/backend/internal/entity"
	"github.com/localboost/backend/pkg/xcontext"
)

type CampaignFilter struct {
	SponsorProfileID string
	CreatorProfileID string
	Status           []entity.CampaignStatus
}

type CampaignRepository interface {
	Create(context.Context, *entity.Campaign) error
	GetByID(ctx context.Context, id string) (*entity.Campaign, error)
	GetList(ctx context.Context, filter *CampaignFilter, offset, limit int) ([]entity.Campaign, error)
	UpdateByID(ctx context.Context, id string, data *entity.Campaign) error
	AssignCreator(ctx context.Context, id, creatorProfileID string) error
	DeleteByID(ctx context.Context, id string) error
}

type campaignRepository struct{}

func NewCampaignRepository() *campaignRepository {
	return &campaignRepository{}
}

func (r *campaignRepository) Create(ctx context.Context, data *entity.Campaign) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *campaignRepository) GetByID(ctx context.Context, id string) (*entity.Campaign, error) {
	var record entity.Campaign
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *campaignRepository) GetList(
	ctx context.Context, filter *CampaignFilter, offset, limit int,
) ([]entity.Campaign, error) {
	tx := xcontext.DB(ctx).
		Offset(offset).
		Limit(limit).
		Order("created_at ASC")

	if filter.SponsorProfileID != "" {
		tx = tx.Where("sponsor_profile_id=?", filter.SponsorProfileID)
	}

	if filter.CreatorProfileID != "" {
		tx = tx.Where("creator_profile_id=?", filter.CreatorProfileID)
	}

	if len(filter.Status) > 0 {
		tx = tx.Where("status IN (?)", filter.Status)
	}

	var records []entity.Campaign
	if err := tx.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *campaignRepository) UpdateByID(ctx context.Context, id string, data *entity.Campaign) error {
	return xcontext.DB(ctx).Model(&entity.Campaign{}).Where("id=?", id).Updates(data).Error
}

func (r *campaignRepository) AssignCreator(ctx context.Context, id, creatorProfileID string) error {
	tx := xcontext.DB(ctx).Model(&entity.Campaign{}).
		Where("id=?", id).
		Update("creator_profile_id", creatorProfileID)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected != 1 {
		return fmt.Errorf("assign creator not exec correctly")
	}

	return nil
}

func (r *campaignRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.Campaign{}, "id=?", id).Error
}
