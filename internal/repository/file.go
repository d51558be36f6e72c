package repository

import (
	"context"

	"github.com/localboost/backend/internal/entity"
	"github.com/localboost/backend/pkg/xcontext"
)

type FileRepository interface {
	Create(ctx context.Context, data *entity.File) error
}

type fileRepository struct{}

func NewFileRepository() *fileRepository {
	return &fileRepository{}
}

func (r *fileRepository) Create(ctx context.Context, data *entity.File) error {
	return xcontext.DB(ctx).Create(data).Error
}
