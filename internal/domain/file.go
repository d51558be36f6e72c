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

type FileDomain interface {
	UploadImage(context.Context, *model.UploadImageRequest) (*model.UploadImageResponse, error)
}

type fileDomain struct {
	fileRepo repository.FileRepository
	storage  storage.Storage
}

func NewFileDomain(fileRepo repository.FileRepository, storage storage.Storage) *fileDomain {
	return &fileDomain{fileRepo: fileRepo, storage: storage}
}

func (d *fileDomain) UploadImage(
	ctx context.Context, req *model.UploadImageRequest,
) (*model.UploadImageResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	uresp, err := common.ProcessImage(ctx, d.storage, "image")
	if err != nil {
		return nil, err
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

	return &model.UploadImageResponse{URL: uresp[0].Url}, nil
}
