package migration

import (
	"context"

	"github.com/localboost/backend/internal/entity"
	"github.com/localboost/backend/pkg/xcontext"
)

func migrate0001(ctx context.Context) error {
	if xcontext.DB(ctx).Migrator().HasColumn(&entity.SponsorProfile{}, "contact_email") {
		if err := xcontext.DB(ctx).Migrator().DropColumn(&entity.SponsorProfile{}, "contact_email"); err != nil {
			return err
		}
	}

	return Record(ctx, "0001")
}
