package domain

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/localboost/backend/internal/common"
	"github.com/localboost/backend/internal/domain/proofcheck"
	"github.com/localboost/backend/internal/entity"
	"github.com/localboost/backend/internal/model"
	"github.com/localboost/backend/internal/repository"
	"github.com/localboost/backend/pkg/enum"
	"github.com/localboost/backend/pkg/errorx"
	"github.com/localboost/backend/pkg/xcontext"
	"github.com/localboost/backend/pkg/xredis"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// campaignReputationBump is added to the creator's reputation score for
// every completed campaign.
const campaignReputationBump = 10

type ProofDomain interface {
	Submit(context.Context, *model.SubmitProofRequest) (*model.SubmitProofResponse, error)
	Get(context.Context, *model.GetProofRequest) (*model.GetProofResponse, error)
	GetList(context.Context, *model.GetListProofRequest) (*model.GetListProofResponse, error)
	Review(context.Context, *model.ReviewProofRequest) (*model.ReviewProofResponse, error)
}

type proofDomain struct {
	proofRepo          repository.ProofRepository
	deliverableRepo    repository.DeliverableRepository
	campaignRepo       repository.CampaignRepository
	creatorProfileRepo repository.CreatorProfileRepository
	redisClient        xredis.Client
	sponsorVerifier    *common.SponsorOwnershipVerifier
	creatorVerifier    *common.CreatorOwnershipVerifier
}

func NewProofDomain(
	proofRepo repository.ProofRepository,
	deliverableRepo repository.DeliverableRepository,
	campaignRepo repository.CampaignRepository,
	sponsorProfileRepo repository.SponsorProfileRepository,
	creatorProfileRepo repository.CreatorProfileRepository,
	userRepo repository.UserRepository,
	redisClient xredis.Client,
) *proofDomain {
	return &proofDomain{
		proofRepo:          proofRepo,
		deliverableRepo:    deliverableRepo,
		campaignRepo:       campaignRepo,
		creatorProfileRepo: creatorProfileRepo,
		redisClient:        redisClient,
		sponsorVerifier:    common.NewSponsorOwnershipVerifier(sponsorProfileRepo, userRepo),
		creatorVerifier:    common.NewCreatorOwnershipVerifier(creatorProfileRepo, userRepo),
	}
}

func (d *proofDomain) Submit(
	ctx context.Context, req *model.SubmitProofRequest,
) (*model.SubmitProofResponse, error) {
	deliverable, err := d.deliverableRepo.GetByID(ctx, req.DeliverableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found deliverable")
		}

		xcontext.Logger(ctx).Errorf("Cannot get deliverable: %v", err)
		return nil, errorx.Unknown
	}

	campaign, err := d.campaignRepo.GetByID(ctx, deliverable.CampaignID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get campaign of deliverable: %v", err)
		return nil, errorx.Unknown
	}

	if !campaign.CreatorProfileID.Valid {
		return nil, errorx.New(errorx.Unavailable, "The campaign has no assigned creator")
	}

	if err := d.creatorVerifier.Verify(ctx, campaign.CreatorProfileID.String); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when submitting proof: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if campaign.Status != entity.CampaignActive {
		return nil, errorx.New(errorx.Unavailable, "The campaign is not active")
	}

	if !slices.Contains(entity.SubmittableStatuses, deliverable.Status) {
		return nil, errorx.New(errorx.Unavailable,
			"Cannot submit a proof for a %s deliverable", deliverable.Status)
	}

	proofType, err := enum.ToEnum[entity.ProofType](req.Type)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid proof type %s", req.Type)
	}

	checker, err := proofcheck.NewChecker(ctx, proofType, req.Metadata)
	if err != nil {
		var errx errorx.Error
		if errors.As(err, &errx) {
			return nil, errx
		}

		xcontext.Logger(ctx).Errorf("Cannot create proof checker: %v", err)
		return nil, errorx.Unknown
	}

	if err := checker.Check(ctx, req.Content); err != nil {
		return nil, err
	}

	proof := &entity.Proof{
		Base:          entity.Base{ID: uuid.NewString()},
		DeliverableID: req.DeliverableID,
		UserID:        xcontext.RequestUserID(ctx),
		Type:          proofType,
		Content:       req.Content,
		Metadata:      req.Metadata,
		Status:        entity.ProofPending,
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.proofRepo.Create(ctx, proof); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create proof: %v", err)
		return nil, errorx.Unknown
	}

	if deliverable.Status != entity.DeliverableSubmitted {
		update := &entity.Deliverable{Status: entity.DeliverableSubmitted}
		if err := d.deliverableRepo.UpdateByID(ctx, deliverable.ID, update); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot mark deliverable as submitted: %v", err)
			return nil, errorx.Unknown
		}
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.SubmitProofResponse{ID: proof.ID, Status: string(proof.Status)}, nil
}

func (d *proofDomain) Get(
	ctx context.Context, req *model.GetProofRequest,
) (*model.GetProofResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty id")
	}

	proof, err := d.proofRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found proof")
		}

		xcontext.Logger(ctx).Errorf("Cannot get proof: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetProofResponse(model.ConvertProof(proof))
	return &resp, nil
}

func (d *proofDomain) GetList(
	ctx context.Context, req *model.GetListProofRequest,
) (*model.GetListProofResponse, error) {
	offset, limit, err := common.Pagination(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	filter := &repository.ProofFilter{
		DeliverableID: req.DeliverableID,
		UserID:        req.UserID,
	}

	if req.Status != "" {
		status, err := enum.ToEnum[entity.ProofStatus](req.Status)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
		}

		filter.Status = []entity.ProofStatus{status}
	}

	proofs, err := d.proofRepo.GetList(ctx, filter, offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get proofs: %v", err)
		return nil, errorx.Unknown
	}

	resp := []model.Proof{}
	for i := range proofs {
		resp = append(resp, model.ConvertProof(&proofs[i]))
	}

	return &model.GetListProofResponse{Proofs: resp}, nil
}

func (d *proofDomain) Review(
	ctx context.Context, req *model.ReviewProofRequest,
) (*model.ReviewProofResponse, error) {
	action, err := enum.ToEnum[entity.ProofStatus](req.Action)
	if err != nil || action == entity.ProofPending {
		return nil, errorx.New(errorx.BadRequest, "Invalid action %s", req.Action)
	}

	proof, err := d.proofRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found proof")
		}

		xcontext.Logger(ctx).Errorf("Cannot get proof: %v", err)
		return nil, errorx.Unknown
	}

	if err := entity.CheckProofTransition(proof.Status, action); err != nil {
		return nil, errorx.New(errorx.Unavailable, "The proof has been reviewed before")
	}

	deliverable, err := d.deliverableRepo.GetByID(ctx, proof.DeliverableID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get deliverable of proof: %v", err)
		return nil, errorx.Unknown
	}

	campaign, err := d.campaignRepo.GetByID(ctx, deliverable.CampaignID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get campaign of proof: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.sponsorVerifier.Verify(ctx, campaign.SponsorProfileID); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when reviewing proof: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	// The review and its cascades commit together.
	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	review := &entity.Proof{
		Status:      action,
		ReviewerID:  sql.NullString{Valid: true, String: xcontext.RequestUserID(ctx)},
		ReviewedAt:  sql.NullTime{Valid: true, Time: time.Now()},
		ReviewNotes: req.Notes,
	}

	if err := d.proofRepo.UpdateReviewByID(ctx, req.ID, review); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update proof review: %v", err)
		return nil, errorx.Unknown
	}

	switch action {
	case entity.ProofApproved:
		if err := d.verifyDeliverable(ctx, deliverable, campaign); err != nil {
			return nil, err
		}

	case entity.ProofRejected:
		if err := d.revertDeliverable(ctx, deliverable, proof.ID); err != nil {
			return nil, err
		}
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.ReviewProofResponse{}, nil
}

func (d *proofDomain) verifyDeliverable(
	ctx context.Context, deliverable *entity.Deliverable, campaign *entity.Campaign,
) error {
	err := entity.CheckDeliverableTransition(deliverable.Status, entity.DeliverableVerified)
	if err != nil {
		return errorx.New(errorx.Unavailable,
			"Cannot verify a %s deliverable", deliverable.Status)
	}

	update := &entity.Deliverable{
		Status:      entity.DeliverableVerified,
		CompletedAt: sql.NullTime{Valid: true, Time: time.Now()},
	}

	if err := d.deliverableRepo.UpdateByID(ctx, deliverable.ID, update); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot verify deliverable: %v", err)
		return errorx.Unknown
	}

	return d.completeCampaignIfDone(ctx, deliverable, campaign)
}

// revertDeliverable moves the deliverable back to pending after a rejection,
// unless another approved proof or an earlier verification keeps it settled.
func (d *proofDomain) revertDeliverable(
	ctx context.Context, deliverable *entity.Deliverable, rejectedProofID string,
) error {
	approved, err := d.proofRepo.CountOthersByStatus(
		ctx, deliverable.ID, rejectedProofID, entity.ProofApproved)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count approved proofs: %v", err)
		return errorx.Unknown
	}

	if approved > 0 {
		return nil
	}

	if entity.CheckDeliverableTransition(deliverable.Status, entity.DeliverablePending) != nil {
		return nil
	}

	update := &entity.Deliverable{Status: entity.DeliverablePending}
	if err := d.deliverableRepo.UpdateByID(ctx, deliverable.ID, update); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot revert deliverable: %v", err)
		return errorx.Unknown
	}

	return nil
}

// completeCampaignIfDone closes the campaign once every deliverable is
// verified. The in-flight deliverable counts as verified no matter what the
// persisted read returned.
func (d *proofDomain) completeCampaignIfDone(
	ctx context.Context, verified *entity.Deliverable, campaign *entity.Campaign,
) error {
	deliverables, err := d.deliverableRepo.GetByCampaignID(ctx, campaign.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get deliverables of campaign: %v", err)
		return errorx.Unknown
	}

	if len(deliverables) == 0 {
		return nil
	}

	verifiedCount := 0
	for _, deliverable := range deliverables {
		if deliverable.ID == verified.ID || deliverable.Status == entity.DeliverableVerified {
			verifiedCount++
		}
	}

	if verifiedCount != len(deliverables) {
		return nil
	}

	if entity.CheckCampaignTransition(campaign.Status, entity.CampaignCompleted) != nil {
		return nil
	}

	update := &entity.Campaign{Status: entity.CampaignCompleted}
	if err := d.campaignRepo.UpdateByID(ctx, campaign.ID, update); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot complete campaign: %v", err)
		return errorx.Unknown
	}

	creatorProfileID := campaign.CreatorProfileID.String
	err = d.creatorProfileRepo.IncreaseStats(ctx, creatorProfileID, campaignReputationBump, 1)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot increase creator stats: %v", err)
		return errorx.Unknown
	}

	d.updateLeaderboard(ctx, creatorProfileID)
	return nil
}

// updateLeaderboard bumps the redis sorted sets. A redis failure only logs;
// the database remains the source of truth and the leaderboard is rebuilt
// lazily.
func (d *proofDomain) updateLeaderboard(ctx context.Context, creatorProfileID string) {
	if d.redisClient == nil {
		return
	}

	creator, err := d.creatorProfileRepo.GetByID(ctx, creatorProfileID)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot get creator for leaderboard: %v", err)
		return
	}

	member := common.RedisValueCreator(creator.DisplayName, creator.ID)
	err = d.redisClient.ZIncrBy(ctx, common.RedisKeyCreatorReputation(),
		float64(campaignReputationBump), member)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot update reputation leaderboard: %v", err)
	}

	err = d.redisClient.ZIncrBy(ctx, common.RedisKeyCreatorCompleted(), 1, member)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot update completed leaderboard: %v", err)
	}
}
