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

type CreditDomain interface {
	Issue(context.Context, *model.IssueCreditRequest) (*model.IssueCreditResponse, error)
	Get(context.Context, *model.GetCreditRequest) (*model.GetCreditResponse, error)
	GetList(context.Context, *model.GetListCreditRequest) (*model.GetListCreditResponse, error)
	Redeem(context.Context, *model.RedeemCreditRequest) (*model.RedeemCreditResponse, error)
	Cancel(context.Context, *model.CancelCreditRequest) (*model.CancelCreditResponse, error)
	Expire(context.Context, *model.ExpireCreditRequest) (*model.ExpireCreditResponse, error)
}

type creditDomain struct {
	creditRepo        repository.CreditRepository
	campaignRepo      repository.CampaignRepository
	userRepo          repository.UserRepository
	ownershipVerifier *common.SponsorOwnershipVerifier
}

func NewCreditDomain(
	creditRepo repository.CreditRepository,
	campaignRepo repository.CampaignRepository,
	sponsorProfileRepo repository.SponsorProfileRepository,
	userRepo repository.UserRepository,
) *creditDomain {
	return &creditDomain{
		creditRepo:        creditRepo,
		campaignRepo:      campaignRepo,
		userRepo:          userRepo,
		ownershipVerifier: common.NewSponsorOwnershipVerifier(sponsorProfileRepo, userRepo),
	}
}

func (d *creditDomain) Issue(
	ctx context.Context, req *model.IssueCreditRequest,
) (*model.IssueCreditResponse, error) {
	if err := d.ownershipVerifier.Verify(ctx, req.SponsorProfileID); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when issuing credit: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	campaignID := sql.NullString{}
	if req.CampaignID != "" {
		campaign, err := d.campaignRepo.GetByID(ctx, req.CampaignID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errorx.New(errorx.NotFound, "Not found campaign")
			}

			xcontext.Logger(ctx).Errorf("Cannot get campaign: %v", err)
			return nil, errorx.Unknown
		}

		if !campaign.CompensationType.IncludesCredit() {
			return nil, errorx.New(errorx.BadRequest,
				"The campaign compensation does not include credits")
		}

		campaignID = sql.NullString{Valid: true, String: req.CampaignID}
	}

	recipientID := sql.NullString{}
	if req.RecipientUserID != "" {
		if _, err := d.userRepo.GetByID(ctx, req.RecipientUserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errorx.New(errorx.NotFound, "Not found recipient")
			}

			xcontext.Logger(ctx).Errorf("Cannot get recipient: %v", err)
			return nil, errorx.Unknown
		}

		recipientID = sql.NullString{Valid: true, String: req.RecipientUserID}
	}

	expiresAt, err := parseDate(req.ExpiresAt)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid expiration date")
	}

	credit := &entity.Credit{
		Base:             entity.Base{ID: uuid.NewString()},
		SponsorProfileID: req.SponsorProfileID,
		CampaignID:       campaignID,
		RecipientUserID:  recipientID,
		Title:            req.Title,
		Description:      req.Description,
		Value:            req.Value,
		RedemptionRules:  req.RedemptionRules,
		Status:           entity.CreditActive,
		ExpiresAt:        expiresAt,
	}

	if err := d.creditRepo.Create(ctx, credit); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create credit: %v", err)
		return nil, errorx.Unknown
	}

	return &model.IssueCreditResponse{ID: credit.ID}, nil
}

func (d *creditDomain) Get(
	ctx context.Context, req *model.GetCreditRequest,
) (*model.GetCreditResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty id")
	}

	credit, err := d.creditRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found credit")
		}

		xcontext.Logger(ctx).Errorf("Cannot get credit: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetCreditResponse(model.ConvertCredit(credit))
	return &resp, nil
}

func (d *creditDomain) GetList(
	ctx context.Context, req *model.GetListCreditRequest,
) (*model.GetListCreditResponse, error) {
	offset, limit, err := common.Pagination(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	filter := &repository.CreditFilter{
		SponsorProfileID: req.SponsorProfileID,
		RecipientUserID:  req.RecipientUserID,
	}

	if req.Status != "" {
		status, err := enum.ToEnum[entity.CreditStatus](req.Status)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
		}

		filter.Status = []entity.CreditStatus{status}
	}

	credits, err := d.creditRepo.GetList(ctx, filter, offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get credits: %v", err)
		return nil, errorx.Unknown
	}

	resp := []model.Credit{}
	for i := range credits {
		resp = append(resp, model.ConvertCredit(&credits[i]))
	}

	return &model.GetListCreditResponse{Credits: resp}, nil
}

func (d *creditDomain) Redeem(
	ctx context.Context, req *model.RedeemCreditRequest,
) (*model.RedeemCreditResponse, error) {
	credit, err := d.loadCredit(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	// Only the recipient redeems a targeted credit. Untargeted credits are
	// redeemed by the sponsor on behalf of whoever presents them.
	if credit.RecipientUserID.Valid {
		if credit.RecipientUserID.String != xcontext.RequestUserID(ctx) {
			return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
		}
	} else if err := d.ownershipVerifier.Verify(ctx, credit.SponsorProfileID); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when redeeming credit: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if err := entity.CheckCreditTransition(credit.Status, entity.CreditRedeemed); err != nil {
		return nil, errorx.New(errorx.Unavailable, "Cannot redeem a %s credit", credit.Status)
	}

	if credit.Expired(time.Now()) {
		return nil, errorx.New(errorx.Unavailable, "The credit has expired")
	}

	update := &entity.Credit{
		Status:     entity.CreditRedeemed,
		RedeemedAt: sql.NullTime{Valid: true, Time: time.Now()},
	}

	if err := d.creditRepo.UpdateByID(ctx, req.ID, update); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot redeem credit: %v", err)
		return nil, errorx.Unknown
	}

	return &model.RedeemCreditResponse{}, nil
}

func (d *creditDomain) Cancel(
	ctx context.Context, req *model.CancelCreditRequest,
) (*model.CancelCreditResponse, error) {
	credit, err := d.loadCredit(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := d.ownershipVerifier.Verify(ctx, credit.SponsorProfileID); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when cancelling credit: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if err := entity.CheckCreditTransition(credit.Status, entity.CreditCancelled); err != nil {
		return nil, errorx.New(errorx.Unavailable, "Cannot cancel a %s credit", credit.Status)
	}

	update := &entity.Credit{Status: entity.CreditCancelled}
	if err := d.creditRepo.UpdateByID(ctx, req.ID, update); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot cancel credit: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CancelCreditResponse{}, nil
}

func (d *creditDomain) Expire(
	ctx context.Context, req *model.ExpireCreditRequest,
) (*model.ExpireCreditResponse, error) {
	credit, err := d.loadCredit(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := d.ownershipVerifier.Verify(ctx, credit.SponsorProfileID); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when expiring credit: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if err := entity.CheckCreditTransition(credit.Status, entity.CreditExpired); err != nil {
		return nil, errorx.New(errorx.Unavailable, "Cannot expire a %s credit", credit.Status)
	}

	if !credit.Expired(time.Now()) {
		return nil, errorx.New(errorx.Unavailable, "The credit has not reached its expiry date")
	}

	update := &entity.Credit{Status: entity.CreditExpired}
	if err := d.creditRepo.UpdateByID(ctx, req.ID, update); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot expire credit: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ExpireCreditResponse{}, nil
}

func (d *creditDomain) loadCredit(ctx context.Context, id string) (*entity.Credit, error) {
	credit, err := d.creditRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found credit")
		}

		xcontext.Logger(ctx).Errorf("Cannot get credit: %v", err)
		return nil, errorx.Unknown
	}

	return credit, nil
}
