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

type OfferingDomain interface {
	Create(context.Context, *model.CreateOfferingRequest) (*model.CreateOfferingResponse, error)
	Get(context.Context, *model.GetOfferingRequest) (*model.GetOfferingResponse, error)
	GetList(context.Context, *model.GetListOfferingRequest) (*model.GetListOfferingResponse, error)
	Update(context.Context, *model.UpdateOfferingRequest) (*model.UpdateOfferingResponse, error)
	Delete(context.Context, *model.DeleteOfferingRequest) (*model.DeleteOfferingResponse, error)
}

type offeringDomain struct {
	offeringRepo      repository.OfferingRepository
	ownershipVerifier *common.CreatorOwnershipVerifier
}

func NewOfferingDomain(
	offeringRepo repository.OfferingRepository,
	creatorProfileRepo repository.CreatorProfileRepository,
	userRepo repository.UserRepository,
) *offeringDomain {
	return &offeringDomain{
		offeringRepo:      offeringRepo,
		ownershipVerifier: common.NewCreatorOwnershipVerifier(creatorProfileRepo, userRepo),
	}
}

func (d *offeringDomain) Create(
	ctx context.Context, req *model.CreateOfferingRequest,
) (*model.CreateOfferingResponse, error) {
	if err := d.ownershipVerifier.Verify(ctx, req.CreatorProfileID); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when creating offering: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	for _, t := range req.DeliverableTypes {
		if _, err := enum.ToEnum[entity.DeliverableType](t); err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid deliverable type %s", t)
		}
	}

	offering := &entity.Offering{
		Base:              entity.Base{ID: uuid.NewString()},
		CreatorProfileID:  req.CreatorProfileID,
		Title:             req.Title,
		Description:       req.Description,
		DeliverableTypes:  req.DeliverableTypes,
		BasePrice:         req.BasePrice,
		EstimatedDuration: req.EstimatedDuration,
		Active:            true,
	}

	if err := d.offeringRepo.Create(ctx, offering); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create offering: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateOfferingResponse{ID: offering.ID}, nil
}

func (d *offeringDomain) Get(
	ctx context.Context, req *model.GetOfferingRequest,
) (*model.GetOfferingResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty id")
	}

	offering, err := d.offeringRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found offering")
		}

		xcontext.Logger(ctx).Errorf("Cannot get offering: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetOfferingResponse(model.ConvertOffering(offering))
	return &resp, nil
}

func (d *offeringDomain) GetList(
	ctx context.Context, req *model.GetListOfferingRequest,
) (*model.GetListOfferingResponse, error) {
	offset, limit, err := common.Pagination(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	offerings, err := d.offeringRepo.GetList(ctx, &repository.OfferingFilter{
		CreatorProfileID: req.CreatorProfileID,
		ActiveOnly:       true,
	}, offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get offerings: %v", err)
		return nil, errorx.Unknown
	}

	resp := []model.Offering{}
	for i := range offerings {
		resp = append(resp, model.ConvertOffering(&offerings[i]))
	}

	return &model.GetListOfferingResponse{Offerings: resp}, nil
}

func (d *offeringDomain) Update(
	ctx context.Context, req *model.UpdateOfferingRequest,
) (*model.UpdateOfferingResponse, error) {
	offering, err := d.offeringRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found offering")
		}

		xcontext.Logger(ctx).Errorf("Cannot get offering: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.ownershipVerifier.Verify(ctx, offering.CreatorProfileID); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when updating offering: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	for _, t := range req.DeliverableTypes {
		if _, err := enum.ToEnum[entity.DeliverableType](t); err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid deliverable type %s", t)
		}
	}

	update := &entity.Offering{
		Title:             req.Title,
		Description:       req.Description,
		DeliverableTypes:  req.DeliverableTypes,
		BasePrice:         req.BasePrice,
		EstimatedDuration: req.EstimatedDuration,
	}

	if err := d.offeringRepo.UpdateByID(ctx, req.ID, update); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update offering: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateOfferingResponse{}, nil
}

func (d *offeringDomain) Delete(
	ctx context.Context, req *model.DeleteOfferingRequest,
) (*model.DeleteOfferingResponse, error) {
	offering, err := d.offeringRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found offering")
		}

		xcontext.Logger(ctx).Errorf("Cannot get offering: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.ownershipVerifier.Verify(ctx, offering.CreatorProfileID); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when deleting offering: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if err := d.offeringRepo.Deactivate(ctx, req.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot deactivate offering: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteOfferingResponse{}, nil
}
