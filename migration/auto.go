package migration

import (
	"context"

	"github.com/localboost/backend/internal/entity"
	"github.com/localboost/backend/pkg/xcontext"
)

// When this migrator is called, no need to call other migrators.
func AutoMigrate(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
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
	)
}
