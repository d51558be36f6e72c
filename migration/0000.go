package migration

import (
	"context"

	"github.com/localboost/backend/internal/entity"
	"github.com/localboost/backend/pkg/xcontext"
)

// migrate0000 will create the database with the latest version.
func migrate0000(ctx context.Context) error {
	if err := xcontext.DB(ctx).AutoMigrate(
		&entity.User{},
		&entity.RefreshToken{},
		&entity.SponsorProfile{},
		&entity.CreatorProfile{},
		&entity.Offering{},
		&entity.Campaign{},
		&entity.Deliverable{},
		&entity.Proof{},
		&entity.Credit{},
		&entity.File{},
		&entity.Migration{},
	); err != nil {
		return err
	}

	return Record(ctx, "0000")
}
