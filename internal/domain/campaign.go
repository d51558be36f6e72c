package domain

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/localboost/backend/internal/common"
	"github.com/localboost/backend/internal/entity"
	"github.com/localboost/backend/internal/model"
	"github.com/localboost/backend/internal/repository"
	"github.com/localboost/backend/pkg/enum"
	"github.com/localboost/backend/pkg/errorx"
	"github.com/localboost/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type CampaignDomain interface {
	Create(context.Context, *model.CreateCampaignRequest) (*model.CreateCampaignResponse, error)
	Get(context.Context, *model.GetCampaignRequest) (*model.GetCampaignResponse, error)
	GetList(context.Context, *model.GetListCampaignRequest) (*model.GetListCampaignResponse, error)
	Update(context.Context, *model.UpdateCampaignRequest) (*model.UpdateCampaignResponse, error)
	AssignCreator(context.Context, *model.AssignCreatorRequest) (*model.AssignCreatorResponse, error)
	Activate(context.Context, *model.ActivateCampaignRequest) (*model.ActivateCampaignResponse, error)
	Cancel(context.Context, *model.CancelCampaignRequest) (*model.CancelCampaignResponse, error)
	Dispute(context.Context, *model.DisputeCampaignRequest) (*model.DisputeCampaignResponse, error)
	Delete(context.Context, *model.DeleteCampaignRequest) (*model.DeleteCampaignResponse, error)
}

type campaignDomain struct {
	campaignRepo       repository.CampaignRepository
	deliverableRepo    repository.DeliverableRepository
	proofRepo          repository.ProofRepository
	creatorProfileRepo repository.CreatorProfileRepository
	ownershipVerifier  *common.SponsorOwnershipVerifier
}

func NewCampaignDomain(
	campaignRepo repository.CampaignRepository,
	deliverableRepo repository.DeliverableRepository,
	proofRepo repository.ProofRepository,
	sponsorProfileRepo repository.SponsorProfileRepository,
	creatorProfileRepo repository.CreatorProfileRepository,
	userRepo repository.UserRepository,
) *campaignDomain {
	return &campaignDomain{
		campaignRepo:       campaignRepo,
		deliverableRepo:    deliverableRepo,
		proofRepo:          proofRepo,
		creatorProfileRepo: creatorProfileRepo,
		ownershipVerifier:  common.NewSponsorOwnershipVerifier(sponsorProfileRepo, userRepo),
	}
}

func parseDate(s string) (sql.NullTime, error) {
	if s == "" {
		return sql.NullTime{}, nil
	}

	t, err := time.Parse(model.DefaultTimeLayout, s)
	if err != nil {
		return sql.NullTime{}, err
	}

	return sql.NullTime{Valid: true, Time: t}, nil
}

func (d *campaignDomain) Create(
	ctx context.Context, req *model.CreateCampaignRequest,
) (*model.CreateCampaignResponse, error) {
	if err := d.ownershipVerifier.Verify(ctx, req.SponsorProfileID); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when creating campaign: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	compensation, err := enum.ToEnum[entity.CompensationType](req.CompensationType)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid compensation type %s", req.CompensationType)
	}

	if req.CashAmount > 0 && !compensation.IncludesCash() {
		return nil, errorx.New(errorx.BadRequest, "Cash amount requires a cash compensation type")
	}

	if req.CreditAmount > 0 && !compensation.IncludesCredit() {
		return nil, errorx.New(errorx.BadRequest, "Credit amount requires a credit compensation type")
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid start date")
	}

	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid end date")
	}

	if startDate.Valid && endDate.Valid && endDate.Time.Before(startDate.Time) {
		return nil, errorx.New(errorx.BadRequest, "End date must not precede start date")
	}

	campaign := &entity.Campaign{
		Base:             entity.Base{ID: uuid.NewString()},
		SponsorProfileID: req.SponsorProfileID,
		Title:            req.Title,
		Description:      req.Description,
		Status:           entity.CampaignDraft,
		StartDate:        startDate,
		EndDate:          endDate,
		CompensationType: compensation,
		CashAmount:       req.CashAmount,
		CreditAmount:     req.CreditAmount,
		Notes:            req.Notes,
	}

	if err := d.campaignRepo.Create(ctx, campaign); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create campaign: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateCampaignResponse{ID: campaign.ID}, nil
}

func (d *campaignDomain) Get(
	ctx context.Context, req *model.GetCampaignRequest,
) (*model.GetCampaignResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty id")
	}

	campaign, err := d.campaignRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found campaign")
		}

		xcontext.Logger(ctx).Errorf("Cannot get campaign: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetCampaignResponse(model.ConvertCampaign(campaign))
	return &resp, nil
}

func (d *campaignDomain) GetList(
	ctx context.Context, req *model.GetListCampaignRequest,
) (*model.GetListCampaignResponse, error) {
	offset, limit, err := common.Pagination(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	filter := &repository.CampaignFilter{
		SponsorProfileID: req.SponsorProfileID,
		CreatorProfileID: req.CreatorProfileID,
	}

	if req.Status != "" {
		status, err := enum.ToEnum[entity.CampaignStatus](req.Status)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
		}

		filter.Status = []entity.CampaignStatus{status}
	}

	campaigns, err := d.campaignRepo.GetList(ctx, filter, offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get campaigns: %v", err)
		return nil, errorx.Unknown
	}

	resp := []model.Campaign{}
	for i := range campaigns {
		resp = append(resp, model.ConvertCampaign(&campaigns[i]))
	}

	return &model.GetListCampaignResponse{Campaigns: resp}, nil
}

func (d *campaignDomain) Update(
	ctx context.Context, req *model.UpdateCampaignRequest,
) (*model.UpdateCampaignResponse, error) {
	campaign, err := d.loadOwnedCampaign(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if campaign.Status != entity.CampaignDraft {
		return nil, errorx.New(errorx.Unavailable, "Only draft campaigns can be edited")
	}

	if req.CashAmount > 0 && !campaign.CompensationType.IncludesCash() {
		return nil, errorx.New(errorx.BadRequest, "Cash amount requires a cash compensation type")
	}

	if req.CreditAmount > 0 && !campaign.CompensationType.IncludesCredit() {
		return nil, errorx.New(errorx.BadRequest, "Credit amount requires a credit compensation type")
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid start date")
	}

	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid end date")
	}

	update := &entity.Campaign{
		Title:        req.Title,
		Description:  req.Description,
		StartDate:    startDate,
		EndDate:      endDate,
		CashAmount:   req.CashAmount,
		CreditAmount: req.CreditAmount,
		Notes:        req.Notes,
	}

	if err := d.campaignRepo.UpdateByID(ctx, req.ID, update); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update campaign: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateCampaignResponse{}, nil
}

func (d *campaignDomain) AssignCreator(
	ctx context.Context, req *model.AssignCreatorRequest,
) (*model.AssignCreatorResponse, error) {
	campaign, err := d.loadOwnedCampaign(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if campaign.Status != entity.CampaignDraft {
		return nil, errorx.New(errorx.Unavailable, "Only draft campaigns accept a creator")
	}

	creator, err := d.creatorProfileRepo.GetByID(ctx, req.CreatorProfileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found creator profile")
		}

		xcontext.Logger(ctx).Errorf("Cannot get creator profile: %v", err)
		return nil, errorx.Unknown
	}

	if !creator.Active {
		return nil, errorx.New(errorx.Unavailable, "Cannot assign an inactive creator profile")
	}

	if err := d.campaignRepo.AssignCreator(ctx, req.ID, req.CreatorProfileID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot assign creator: %v", err)
		return nil, errorx.Unknown
	}

	return &model.AssignCreatorResponse{}, nil
}

func (d *campaignDomain) Activate(
	ctx context.Context, req *model.ActivateCampaignRequest,
) (*model.ActivateCampaignResponse, error) {
	campaign, err := d.loadOwnedCampaign(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := entity.CheckCampaignTransition(campaign.Status, entity.CampaignActive); err != nil {
		return nil, errorx.New(errorx.Unavailable,
			"Cannot activate a %s campaign", campaign.Status)
	}

	if !campaign.CreatorProfileID.Valid {
		return nil, errorx.New(errorx.Unavailable, "Cannot activate a campaign with no creator")
	}

	err = d.campaignRepo.UpdateByID(ctx, req.ID, &entity.Campaign{Status: entity.CampaignActive})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot activate campaign: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ActivateCampaignResponse{}, nil
}

func (d *campaignDomain) Cancel(
	ctx context.Context, req *model.CancelCampaignRequest,
) (*model.CancelCampaignResponse, error) {
	campaign, err := d.loadOwnedCampaign(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := entity.CheckCampaignTransition(campaign.Status, entity.CampaignCancelled); err != nil {
		return nil, errorx.New(errorx.Unavailable,
			"Cannot cancel a %s campaign", campaign.Status)
	}

	err = d.campaignRepo.UpdateByID(ctx, req.ID, &entity.Campaign{Status: entity.CampaignCancelled})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot cancel campaign: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CancelCampaignResponse{}, nil
}

func (d *campaignDomain) Dispute(
	ctx context.Context, req *model.DisputeCampaignRequest,
) (*model.DisputeCampaignResponse, error) {
	campaign, err := d.loadOwnedCampaign(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := entity.CheckCampaignTransition(campaign.Status, entity.CampaignDisputed); err != nil {
		return nil, errorx.New(errorx.Unavailable,
			"Cannot dispute a %s campaign", campaign.Status)
	}

	update := &entity.Campaign{Status: entity.CampaignDisputed, Notes: req.Reason}
	if err := d.campaignRepo.UpdateByID(ctx, req.ID, update); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot dispute campaign: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DisputeCampaignResponse{}, nil
}

func (d *campaignDomain) Delete(
	ctx context.Context, req *model.DeleteCampaignRequest,
) (*model.DeleteCampaignResponse, error) {
	if _, err := d.loadOwnedCampaign(ctx, req.ID); err != nil {
		return nil, err
	}

	// Proofs, deliverables, and the campaign go away together or not at all.
	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	deliverables, err := d.deliverableRepo.GetByCampaignID(ctx, req.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get deliverables: %v", err)
		return nil, errorx.Unknown
	}

	deliverableIDs := make([]string, 0, len(deliverables))
	for _, deliverable := range deliverables {
		deliverableIDs = append(deliverableIDs, deliverable.ID)
	}

	if err := d.proofRepo.DeleteByDeliverableIDs(ctx, deliverableIDs); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete proofs: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.deliverableRepo.DeleteByCampaignID(ctx, req.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete deliverables: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.campaignRepo.DeleteByID(ctx, req.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete campaign: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.DeleteCampaignResponse{}, nil
}

func (d *campaignDomain) loadOwnedCampaign(ctx context.Context, id string) (*entity.Campaign, error) {
	campaign, err := d.campaignRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found campaign")
		}

		xcontext.Logger(ctx).Errorf("Cannot get campaign: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.ownershipVerifier.Verify(ctx, campaign.SponsorProfileID); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied on campaign %s: %v", id, err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	return campaign, nil
}
