package testutil

import (
	"context"

	"github.com/localboost/backend/pkg/storage"
)

type MockStorage struct {
	UploadFunc     func(ctx context.Context, obj *storage.UploadObject) (*storage.UploadResponse, error)
	BulkUploadFunc func(ctx context.Context, objs []*storage.UploadObject) ([]*storage.UploadResponse, error)
}

func (m *MockStorage) Upload(
	ctx context.Context, obj *storage.UploadObject,
) (*storage.UploadResponse, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, obj)
	}

	return &storage.UploadResponse{Url: obj.FileName, FileName: obj.FileName}, nil
}

func (m *MockStorage) BulkUpload(
	ctx context.Context, objs []*storage.UploadObject,
) ([]*storage.UploadResponse, error) {
	if m.BulkUploadFunc != nil {
		return m.BulkUploadFunc(ctx, objs)
	}

	resp := []*storage.UploadResponse{}
	for _, obj := range objs {
		resp = append(resp, &storage.UploadResponse{Url: obj.FileName, FileName: obj.FileName})
	}

	return resp, nil
}
