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

type SponsorDomain interface {
	Create(context.Context, *model.CreateSponsorProfileRequest) (*model.CreateSponsorProfileResponse, error)
	Get(context.Context, *model.GetSponsorProfileRequest) (*model.GetSponsorProfileResponse, error)
	GetMy(context.Context, *model.GetMySponsorProfileRequest) (*model.GetMySponsorProfileResponse, error)
	Update(context.Context, *model.UpdateSponsorProfileRequest) (*model.UpdateSponsorProfileResponse, error)
	Delete(context.Context, *model.DeleteSponsorProfileRequest) (*model.DeleteSponsorProfileResponse, error)
}

type sponsorDomain struct {
	sponsorProfileRepo repository.SponsorProfileRepository
	ownershipVerifier  *common.SponsorOwnershipVerifier
}

func NewSponsorDomain(
	sponsorProfileRepo repository.SponsorProfileRepository,
	userRepo repository.UserRepository,
) *sponsorDomain {
	return &sponsorDomain{
		sponsorProfileRepo: sponsorProfileRepo,
		ownershipVerifier:  common.NewSponsorOwnershipVerifier(sponsorProfileRepo, userRepo),
	}
}

func (d *sponsorDomain) Create(
	ctx context.Context, req *model.CreateSponsorProfileRequest,
) (*model.CreateSponsorProfileResponse, error) {
	paymentMethod, err := enum.ToEnum[entity.PaymentMethodType](req.PaymentMethod)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid payment method %s", req.PaymentMethod)
	}

	if req.BudgetMax > 0 && req.BudgetMin > req.BudgetMax {
		return nil, errorx.New(errorx.BadRequest, "Budget min must not exceed budget max")
	}

	userID := xcontext.RequestUserID(ctx)
	_, err = d.sponsorProfileRepo.GetActiveByUserID(ctx, userID)
	if err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "You already have an active sponsor profile")
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot check existing sponsor profile: %v", err)
		return nil, errorx.Unknown
	}

	profile := &entity.SponsorProfile{
		Base:          entity.Base{ID: uuid.NewString()},
		UserID:        userID,
		BusinessName:  req.BusinessName,
		Industry:      req.Industry,
		Description:   req.Description,
		Location:      req.Location,
		WebsiteURL:    req.WebsiteURL,
		LogoURL:       req.LogoURL,
		BudgetMin:     req.BudgetMin,
		BudgetMax:     req.BudgetMax,
		PaymentMethod: paymentMethod,
		Active:        true,
	}

	if err := d.sponsorProfileRepo.Create(ctx, profile); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create sponsor profile: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateSponsorProfileResponse{ID: profile.ID}, nil
}

func (d *sponsorDomain) Get(
	ctx context.Context, req *model.GetSponsorProfileRequest,
) (*model.GetSponsorProfileResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty id")
	}

	profile, err := d.sponsorProfileRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found sponsor profile")
		}

		xcontext.Logger(ctx).Errorf("Cannot get sponsor profile: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetSponsorProfileResponse(model.ConvertSponsorProfile(profile))
	return &resp, nil
}

func (d *sponsorDomain) GetMy(
	ctx context.Context, req *model.GetMySponsorProfileRequest,
) (*model.GetMySponsorProfileResponse, error) {
	profile, err := d.sponsorProfileRepo.GetActiveByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "You have no active sponsor profile")
		}

		xcontext.Logger(ctx).Errorf("Cannot get sponsor profile: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetMySponsorProfileResponse(model.ConvertSponsorProfile(profile))
	return &resp, nil
}

func (d *sponsorDomain) Update(
	ctx context.Context, req *model.UpdateSponsorProfileRequest,
) (*model.UpdateSponsorProfileResponse, error) {
	if err := d.ownershipVerifier.Verify(ctx, req.ID); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when updating sponsor profile: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	update := &entity.SponsorProfile{
		BusinessName: req.BusinessName,
		Industry:     req.Industry,
		Description:  req.Description,
		Location:     req.Location,
		WebsiteURL:   req.WebsiteURL,
		LogoURL:      req.LogoURL,
		BudgetMin:    req.BudgetMin,
		BudgetMax:    req.BudgetMax,
	}

	if req.PaymentMethod != "" {
		paymentMethod, err := enum.ToEnum[entity.PaymentMethodType](req.PaymentMethod)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid payment method %s", req.PaymentMethod)
		}

		update.PaymentMethod = paymentMethod
	}

	if err := d.sponsorProfileRepo.UpdateByID(ctx, req.ID, update); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update sponsor profile: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateSponsorProfileResponse{}, nil
}

func (d *sponsorDomain) Delete(
	ctx context.Context, req *model.DeleteSponsorProfileRequest,
) (*model.DeleteSponsorProfileResponse, error) {
	if err := d.ownershipVerifier.Verify(ctx, req.ID); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when deleting sponsor profile: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if err := d.sponsorProfileRepo.Deactivate(ctx, req.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot deactivate sponsor profile: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteSponsorProfileResponse{}, nil
}
