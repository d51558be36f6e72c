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

type CreatorDomain interface {
	Create(context.Context, *model.CreateCreatorProfileRequest) (*model.CreateCreatorProfileResponse, error)
	Get(context.Context, *model.GetCreatorProfileRequest) (*model.GetCreatorProfileResponse, error)
	GetMy(context.Context, *model.GetMyCreatorProfileRequest) (*model.GetMyCreatorProfileResponse, error)
	GetList(context.Context, *model.GetListCreatorProfileRequest) (*model.GetListCreatorProfileResponse, error)
	Update(context.Context, *model.UpdateCreatorProfileRequest) (*model.UpdateCreatorProfileResponse, error)
	Delete(context.Context, *model.DeleteCreatorProfileRequest) (*model.DeleteCreatorProfileResponse, error)
}

type creatorDomain struct {
	creatorProfileRepo repository.CreatorProfileRepository
	ownershipVerifier  *common.CreatorOwnershipVerifier
}

func NewCreatorDomain(
	creatorProfileRepo repository.CreatorProfileRepository,
	userRepo repository.UserRepository,
) *creatorDomain {
	return &creatorDomain{
		creatorProfileRepo: creatorProfileRepo,
		ownershipVerifier:  common.NewCreatorOwnershipVerifier(creatorProfileRepo, userRepo),
	}
}

func (d *creatorDomain) Create(
	ctx context.Context, req *model.CreateCreatorProfileRequest,
) (*model.CreateCreatorProfileResponse, error) {
	payoutMethod, err := enum.ToEnum[entity.PaymentMethodType](req.PayoutMethod)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid payout method %s", req.PayoutMethod)
	}

	userID := xcontext.RequestUserID(ctx)
	_, err = d.creatorProfileRepo.GetActiveByUserID(ctx, userID)
	if err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "You already have an active creator profile")
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot check existing creator profile: %v", err)
		return nil, errorx.Unknown
	}

	profile := &entity.CreatorProfile{
		Base:          entity.Base{ID: uuid.NewString()},
		UserID:        userID,
		DisplayName:   req.DisplayName,
		Bio:           req.Bio,
		Specialties:   req.Specialties,
		Communities:   req.Communities,
		PortfolioURL:  req.PortfolioURL,
		SocialLinks:   req.SocialLinks,
		PayoutMethod:  payoutMethod,
		WalletAddress: req.WalletAddress,
		Active:        true,
	}

	if err := d.creatorProfileRepo.Create(ctx, profile); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create creator profile: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateCreatorProfileResponse{ID: profile.ID}, nil
}

func (d *creatorDomain) Get(
	ctx context.Context, req *model.GetCreatorProfileRequest,
) (*model.GetCreatorProfileResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty id")
	}

	profile, err := d.creatorProfileRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found creator profile")
		}

		xcontext.Logger(ctx).Errorf("Cannot get creator profile: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetCreatorProfileResponse(model.ConvertCreatorProfile(profile))
	return &resp, nil
}

func (d *creatorDomain) GetMy(
	ctx context.Context, req *model.GetMyCreatorProfileRequest,
) (*model.GetMyCreatorProfileResponse, error) {
	profile, err := d.creatorProfileRepo.GetActiveByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "You have no active creator profile")
		}

		xcontext.Logger(ctx).Errorf("Cannot get creator profile: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetMyCreatorProfileResponse(model.ConvertCreatorProfile(profile))
	return &resp, nil
}

func (d *creatorDomain) GetList(
	ctx context.Context, req *model.GetListCreatorProfileRequest,
) (*model.GetListCreatorProfileResponse, error) {
	offset, limit, err := common.Pagination(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	profiles, err := d.creatorProfileRepo.GetList(ctx, offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get creator profiles: %v", err)
		return nil, errorx.Unknown
	}

	resp := []model.CreatorProfile{}
	for i := range profiles {
		resp = append(resp, model.ConvertCreatorProfile(&profiles[i]))
	}

	return &model.GetListCreatorProfileResponse{CreatorProfiles: resp}, nil
}

func (d *creatorDomain) Update(
	ctx context.Context, req *model.UpdateCreatorProfileRequest,
) (*model.UpdateCreatorProfileResponse, error) {
	if err := d.ownershipVerifier.Verify(ctx, req.ID); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when updating creator profile: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	update := &entity.CreatorProfile{
		DisplayName:   req.DisplayName,
		Bio:           req.Bio,
		Specialties:   req.Specialties,
		Communities:   req.Communities,
		PortfolioURL:  req.PortfolioURL,
		SocialLinks:   req.SocialLinks,
		WalletAddress: req.WalletAddress,
	}

	if req.PayoutMethod != "" {
		payoutMethod, err := enum.ToEnum[entity.PaymentMethodType](req.PayoutMethod)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid payout method %s", req.PayoutMethod)
		}

		update.PayoutMethod = payoutMethod
	}

	if err := d.creatorProfileRepo.UpdateByID(ctx, req.ID, update); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update creator profile: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateCreatorProfileResponse{}, nil
}

func (d *creatorDomain) Delete(
	ctx context.Context, req *model.DeleteCreatorProfileRequest,
) (*model.DeleteCreatorProfileResponse, error) {
	if err := d.ownershipVerifier.Verify(ctx, req.ID); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when deleting creator profile: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if err := d.creatorProfileRepo.Deactivate(ctx, req.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot deactivate creator profile: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteCreatorProfileResponse{}, nil
}
