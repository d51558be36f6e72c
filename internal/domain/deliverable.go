package domain

import (
	"context"
	"errors"

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

type DeliverableDomain interface {
	Create(context.Context, *model.CreateDeliverableRequest) (*model.CreateDeliverableResponse, error)
	GetList(context.Context, *model.GetListDeliverableRequest) (*model.GetListDeliverableResponse, error)
	Update(context.Context, *model.UpdateDeliverableRequest) (*model.UpdateDeliverableResponse, error)
	Start(context.Context, *model.StartDeliverableRequest) (*model.StartDeliverableResponse, error)
}

type deliverableDomain struct {
	deliverableRepo    repository.DeliverableRepository
	campaignRepo       repository.CampaignRepository
	creatorProfileRepo repository.CreatorProfileRepository
	sponsorVerifier    *common.SponsorOwnershipVerifier
	creatorVerifier    *common.CreatorOwnershipVerifier
}

func NewDeliverableDomain(
	deliverableRepo repository.DeliverableRepository,
	campaignRepo repository.CampaignRepository,
	sponsorProfileRepo repository.SponsorProfileRepository,
	creatorProfileRepo repository.CreatorProfileRepository,
	userRepo repository.UserRepository,
) *deliverableDomain {
	return &deliverableDomain{
		deliverableRepo:    deliverableRepo,
		campaignRepo:       campaignRepo,
		creatorProfileRepo: creatorProfileRepo,
		sponsorVerifier:    common.NewSponsorOwnershipVerifier(sponsorProfileRepo, userRepo),
		creatorVerifier:    common.NewCreatorOwnershipVerifier(creatorProfileRepo, userRepo),
	}
}

func (d *deliverableDomain) Create(
	ctx context.Context, req *model.CreateDeliverableRequest,
) (*model.CreateDeliverableResponse, error) {
	campaign, err := d.campaignRepo.GetByID(ctx, req.CampaignID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found campaign")
		}

		xcontext.Logger(ctx).Errorf("Cannot get campaign: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.sponsorVerifier.Verify(ctx, campaign.SponsorProfileID); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when creating deliverable: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if campaign.Status != entity.CampaignDraft && campaign.Status != entity.CampaignActive {
		return nil, errorx.New(errorx.Unavailable,
			"Cannot add deliverables to a %s campaign", campaign.Status)
	}

	deliverableType, err := enum.ToEnum[entity.DeliverableType](req.Type)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid deliverable type %s", req.Type)
	}

	verification, err := enum.ToEnum[entity.VerificationMethodType](req.VerificationMethod)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest,
			"Invalid verification method %s", req.VerificationMethod)
	}

	deadline, err := parseDate(req.Deadline)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid deadline")
	}

	deliverable := &entity.Deliverable{
		Base:               entity.Base{ID: uuid.NewString()},
		CampaignID:         req.CampaignID,
		Type:               deliverableType,
		Title:              req.Title,
		Description:        req.Description,
		Deadline:           deadline,
		VerificationMethod: verification,
		Status:             entity.DeliverablePending,
	}

	if err := d.deliverableRepo.Create(ctx, deliverable); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create deliverable: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateDeliverableResponse{ID: deliverable.ID}, nil
}

func (d *deliverableDomain) GetList(
	ctx context.Context, req *model.GetListDeliverableRequest,
) (*model.GetListDeliverableResponse, error) {
	deliverables, err := d.deliverableRepo.GetByCampaignID(ctx, req.CampaignID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get deliverables: %v", err)
		return nil, errorx.Unknown
	}

	resp := []model.Deliverable{}
	for i := range deliverables {
		resp = append(resp, model.ConvertDeliverable(&deliverables[i]))
	}

	return &model.GetListDeliverableResponse{Deliverables: resp}, nil
}

func (d *deliverableDomain) Update(
	ctx context.Context, req *model.UpdateDeliverableRequest,
) (*model.UpdateDeliverableResponse, error) {
	deliverable, campaign, err := d.loadDeliverable(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := d.sponsorVerifier.Verify(ctx, campaign.SponsorProfileID); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when updating deliverable: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if deliverable.Status == entity.DeliverableVerified {
		return nil, errorx.New(errorx.Unavailable, "Cannot edit a verified deliverable")
	}

	deadline, err := parseDate(req.Deadline)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid deadline")
	}

	update := &entity.Deliverable{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    deadline,
	}

	if err := d.deliverableRepo.UpdateByID(ctx, req.ID, update); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update deliverable: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateDeliverableResponse{}, nil
}

func (d *deliverableDomain) Start(
	ctx context.Context, req *model.StartDeliverableRequest,
) (*model.StartDeliverableResponse, error) {
	deliverable, campaign, err := d.loadDeliverable(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if !campaign.CreatorProfileID.Valid {
		return nil, errorx.New(errorx.Unavailable, "The campaign has no assigned creator")
	}

	if err := d.creatorVerifier.Verify(ctx, campaign.CreatorProfileID.String); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when starting deliverable: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if campaign.Status != entity.CampaignActive {
		return nil, errorx.New(errorx.Unavailable, "The campaign is not active")
	}

	err = entity.CheckDeliverableTransition(deliverable.Status, entity.DeliverableInProgress)
	if err != nil {
		return nil, errorx.New(errorx.Unavailable,
			"Cannot start a %s deliverable", deliverable.Status)
	}

	update := &entity.Deliverable{Status: entity.DeliverableInProgress}
	if err := d.deliverableRepo.UpdateByID(ctx, req.ID, update); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot start deliverable: %v", err)
		return nil, errorx.Unknown
	}

	return &model.StartDeliverableResponse{}, nil
}

func (d *deliverableDomain) loadDeliverable(
	ctx context.Context, id string,
) (*entity.Deliverable, *entity.Campaign, error) {
	deliverable, err := d.deliverableRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errorx.New(errorx.NotFound, "Not found deliverable")
		}

		xcontext.Logger(ctx).Errorf("Cannot get deliverable: %v", err)
		return nil, nil, errorx.Unknown
	}

	campaign, err := d.campaignRepo.GetByID(ctx, deliverable.CampaignID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get campaign of deliverable: %v", err)
		return nil, nil, errorx.Unknown
	}

	return deliverable, campaign, nil
}
