package repository

import (
	"context"
	"fmt"

	"github.com/localboost/backend/internal/entity"
	"github.com/localboost/backend/pkg/xcontext"
)

type ProofFilter struct {
	DeliverableID string
	UserID        string
	Status        []entity.ProofStatus
}

type ProofRepository interface {
	Create(context.Context, *entity.Proof) error
	GetByID(ctx context.Context, id string) (*entity.Proof, error)
	GetList(ctx context.Context, filter *ProofFilter, offset, limit int) ([]entity.Proof, error)
	CountOthersByStatus(ctx context.Context, deliverableID, excludedID string, status entity.ProofStatus) (int64, error)
	UpdateReviewByID(ctx context.Context, id string, data *entity.Proof) error
	DeleteByDeliverableIDs(ctx context.Context, deliverableIDs []string) error
}

type proofRepository struct{}

func NewProofRepository() *proofRepository {
	return &proofRepository{}
}

func (r *proofRepository) Create(ctx context.Context, data *entity.Proof) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *proofRepository) GetByID(ctx context.Context, id string) (*entity.Proof, error) {
	var record entity.Proof
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *proofRepository) GetList(
	ctx context.Context, filter *ProofFilter, offset, limit int,
) ([]entity.Proof, error) {
	tx := xcontext.DB(ctx).
		Offset(offset).
		Limit(limit).
		Order("created_at ASC")

	if filter.DeliverableID != "" {
		tx = tx.Where("deliverable_id=?", filter.DeliverableID)
	}

	if filter.UserID != "" {
		tx = tx.Where("user_id=?", filter.UserID)
	}

	if len(filter.Status) > 0 {
		tx = tx.Where("status IN (?)", filter.Status)
	}

	var records []entity.Proof
	if err := tx.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

// CountOthersByStatus counts proofs of the deliverable in the given status,
// not counting the excluded one. The review cascade uses it to decide whether
// a rejection reverts the deliverable.
func (r *proofRepository) CountOthersByStatus(
	ctx context.Context, deliverableID, excludedID string, status entity.ProofStatus,
) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Proof{}).
		Where("deliverable_id=? AND id<>? AND status=?", deliverableID, excludedID, status).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *proofRepository) UpdateReviewByID(ctx context.Context, id string, data *entity.Proof) error {
	tx := xcontext.DB(ctx).Model(&entity.Proof{}).Where("id=?", id).Updates(data)
	if err := tx.Error; err != nil {
		return err
	}

	if tx.RowsAffected != 1 {
		return fmt.Errorf("update review not exec correctly")
	}

	return nil
}

func (r *proofRepository) DeleteByDeliverableIDs(ctx context.Context, deliverableIDs []string) error {
	if len(deliverableIDs) == 0 {
		return nil
	}

	return xcontext.DB(ctx).Delete(&entity.Proof{}, "deliverable_id IN (?)", deliverableIDs).Error
}
