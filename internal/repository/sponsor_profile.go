package repository

import (
	"context"

	"github.com/localboost/backend/internal/entity"
	"github.com/localboost/backend/pkg/xcontext"
)

type SponsorProfileRepository interface {
	Create(context.Context, *entity.SponsorProfile) error
	GetByID(ctx context.Context, id string) (*entity.SponsorProfile, error)
	GetActiveByUserID(ctx context.Context, userID string) (*entity.SponsorProfile, error)
	UpdateByID(ctx context.Context, id string, data *entity.SponsorProfile) error
	Deactivate(ctx context.Context, id string) error
}

type sponsorProfileRepository struct{}

func NewSponsorProfileRepository() *sponsorProfileRepository {
	return &sponsorProfileRepository{}
}

func (r *sponsorProfileRepository) Create(ctx context.Context, data *entity.SponsorProfile) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *sponsorProfileRepository) GetByID(ctx context.Context, id string) (*entity.SponsorProfile, error) {
	var record entity.SponsorProfile
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *sponsorProfileRepository) GetActiveByUserID(
	ctx context.Context, userID string,
) (*entity.SponsorProfile, error) {
	var record entity.SponsorProfile
	err := xcontext.DB(ctx).Take(&record, "user_id=? AND active=?", userID, true).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *sponsorProfileRepository) UpdateByID(
	ctx context.Context, id string, data *entity.SponsorProfile,
) error {
	return xcontext.DB(ctx).Model(&entity.SponsorProfile{}).Where("id=?", id).Updates(data).Error
}

func (r *sponsorProfileRepository) Deactivate(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Model(&entity.SponsorProfile{}).
		Where("id=?", id).
		Update("active", false).Error
}
