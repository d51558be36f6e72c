package repository

import (
	"context"

	"github.com/localboost/backend/internal/entity"
	"github.com/localboost/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type CreatorProfileRepository interface {
	Create(context.Context, *entity.CreatorProfile) error
	GetByID(ctx context.Context, id string) (*entity.CreatorProfile, error)
	GetByIDs(ctx context.Context, ids []string) ([]entity.CreatorProfile, error)
	GetActiveByUserID(ctx context.Context, userID string) (*entity.CreatorProfile, error)
	GetList(ctx context.Context, offset, limit int) ([]entity.CreatorProfile, error)
	UpdateByID(ctx context.Context, id string, data *entity.CreatorProfile) error
	IncreaseStats(ctx context.Context, id string, reputation, completed uint64) error
	Deactivate(ctx context.Context, id string) error
}

type creatorProfileRepository struct{}

func NewCreatorProfileRepository() *creatorProfileRepository {
	return &creatorProfileRepository{}
}

func (r *creatorProfileRepository) Create(ctx context.Context, data *entity.CreatorProfile) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *creatorProfileRepository) GetByID(ctx context.Context, id string) (*entity.CreatorProfile, error) {
	var record entity.CreatorProfile
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *creatorProfileRepository) GetByIDs(ctx context.Context, ids []string) ([]entity.CreatorProfile, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var records []entity.CreatorProfile
	if err := xcontext.DB(ctx).Find(&records, "id IN (?)", ids).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *creatorProfileRepository) GetActiveByUserID(
	ctx context.Context, userID string,
) (*entity.CreatorProfile, error) {
	var record entity.CreatorProfile
	err := xcontext.DB(ctx).Take(&record, "user_id=? AND active=?", userID, true).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *creatorProfileRepository) GetList(
	ctx context.Context, offset, limit int,
) ([]entity.CreatorProfile, error) {
	var records []entity.CreatorProfile
	err := xcontext.DB(ctx).
		Where("active=?", true).
		Order("reputation_score DESC").
		Offset(offset).
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *creatorProfileRepository) UpdateByID(
	ctx context.Context, id string, data *entity.CreatorProfile,
) error {
	return xcontext.DB(ctx).Model(&entity.CreatorProfile{}).Where("id=?", id).Updates(data).Error
}

// IncreaseStats atomically adds to the reputation and completed-campaign
// counters. Called by the campaign completion cascade inside its transaction.
func (r *creatorProfileRepository) IncreaseStats(
	ctx context.Context, id string, reputation, completed uint64,
) error {
	return xcontext.DB(ctx).Model(&entity.CreatorProfile{}).
		Where("id=?", id).
		Updates(map[string]any{
			"reputation_score":    gorm.Expr("reputation_score+?", reputation),
			"completed_campaigns": gorm.Expr("completed_campaigns+?", completed),
		}).Error
}

func (r *creatorProfileRepository) Deactivate(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Model(&entity.CreatorProfile{}).
		Where("id=?", id).
		Update("active", false).Error
}
