package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/localboost/backend/internal/common"
	"github.com/localboost/backend/internal/entity"
	"github.com/localboost/backend/internal/model"
	"github.com/localboost/backend/internal/repository"
	"github.com/localboost/backend/pkg/errorx"
	"github.com/localboost/backend/pkg/storage"
	"github.com/localboost/backend/pkg/xcontext"
)

type UserDomain interface {
	GetMe(context.Context, *model.GetMeRequest) (*model.GetMeResponse, error)
	Update(context.Context, *model.UpdateUserRequest) (*model.UpdateUserResponse, error)
	UploadAvatar(context.Context, *model.UploadAvatarRequest) (*model.UploadAvatarResponse, error)
}

type userDomain struct {
	userRepo repository.UserRepository
	fileRepo repository.FileRepository
	storage  storage.Storage
}

func NewUserDomain(
	userRepo repository.UserRepository,
	fileRepo repository.FileRepository,
	storage storage.Storage,
) *userDomain {
	return &userDomain{
		userRepo: userRepo,
		fileRepo: fileRepo,
		storage:  storage,
	}
}

func (d *userDomain) GetMe(
	ctx context.Context, req *model.GetMeRequest,
) (*model.GetMeResponse, error) {
	user, err := d.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetMeResponse(model.ConvertUser(user, true))
	return &resp, nil
}

func (d *userDomain) Update(
	ctx context.Context, req *model.UpdateUserRequest,
) (*model.UpdateUserResponse, error) {
	err := d.userRepo.UpdateByID(ctx, xcontext.RequestUserID(ctx), &entity.User{
		Username:    req.Username,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateUserResponse{}, nil
}

func (d *userDomain) UploadAvatar(
	ctx context.Context, req *model.UploadAvatarRequest,
) (*model.UploadAvatarResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	uresp, err := common.ProcessImage(ctx, d.storage, "image")
	if err != nil {
		return nil, err
	}

	// The first element is the biggest size of avatar.
	avatarURL := uresp[0].Url
	if err := d.userRepo.UpdateByID(ctx, userID, &entity.User{AvatarURL: avatarURL}); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update avatar: %v", err)
		return nil, errorx.Unknown
	}

	for _, u := range uresp {
		err := d.fileRepo.Create(ctx, &entity.File{
			Base:      entity.Base{ID: uuid.NewString()},
			Mime:      "image",
			Name:      u.FileName,
			Url:       u.Url,
			CreatedBy: userID,
			UserID:    userID,
		})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot save file record: %v", err)
			return nil, errorx.Unknown
		}
	}

	return &model.UploadAvatarResponse{URL: avatarURL}, nil
}
