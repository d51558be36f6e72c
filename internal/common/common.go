package common

import (
	"context"

	"github.com/localboost/backend/pkg/errorx"
	"github.com/localboost/backend/pkg/xcontext"
)

// Pagination clamps a requested offset/limit against the server defaults.
func Pagination(ctx context.Context, offset, limit int) (int, int, error) {
	cfg := xcontext.Configs(ctx).ApiServer
	if limit == 0 {
		limit = cfg.DefaultLimit
	}

	if limit < 0 {
		return 0, 0, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if limit > cfg.MaxLimit {
		return 0, 0, errorx.New(errorx.BadRequest, "Exceed the maximum of limit (%d)", cfg.MaxLimit)
	}

	if offset < 0 {
		return 0, 0, errorx.New(errorx.BadRequest, "Offset must not be negative")
	}

	return offset, limit, nil
}
