package repository

import (
	"context"

	"github.com/localboost/backend/internal/entity"
	"github.com/localboost/backend/pkg/xcontext"
)

type DeliverableRepository interface {
	Create(context.Context, *entity.Deliverable) error
	GetByID(ctx context.Context, id string) (*entity.Deliverable, error)
	GetByCampaignID(ctx context.Context, campaignID string) ([]entity.Deliverable, error)
	UpdateByID(ctx context.Context, id string, data *entity.Deliverable) error
	DeleteByCampaignID(ctx context.Context, campaignID string) error
}

type deliverableRepository struct{}

func NewDeliverableRepository() *deliverableRepository {
	return &deliverableRepository{}
}

func (r *deliverableRepository) Create(ctx context.Context, data *entity.Deliverable) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *deliverableRepository) GetByID(ctx context.Context, id string) (*entity.Deliverable, error) {
	var record entity.Deliverable
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *deliverableRepository) GetByCampaignID(
	ctx context.Context, campaignID string,
) ([]entity.Deliverable, error) {
	var records []entity.Deliverable
	err := xcontext.DB(ctx).
		Where("campaign_id=?", campaignID).
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *deliverableRepository) UpdateByID(ctx context.Context, id string, data *entity.Deliverable) error {
	return xcontext.DB(ctx).Model(&entity.Deliverable{}).Where("id=?", id).Updates(data).Error
}

func (r *deliverableRepository) DeleteByCampaignID(ctx context.Context, campaignID string) error {
	return xcontext.DB(ctx).Delete(&entity.Deliverable{}, "campaign_id=?", campaignID).Error
}
