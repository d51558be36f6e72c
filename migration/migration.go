package migration

import (
	"context"
	"time"

	"github.com/localboost/backend/internal/entity"
	"github.com/localboost/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// Migrators maps a schema version to its migrator. The migrate command looks
// the version up here and runs exactly one of them.
var Migrators = map[string]func(context.Context) error{
	"auto": AutoMigrate,
	"0000": migrate0000,
	"0001": migrate0001,
}

// Record marks a version as applied. Migrators call this after they finish so
// a re-run can be detected.
func Record(ctx context.Context, version string) error {
	return xcontext.DB(ctx).Create(&entity.Migration{Version: version, CreatedAt: time.Now()}).Error
}

// Applied reports whether the version has been recorded before.
func Applied(ctx context.Context, version string) (bool, error) {
	err := xcontext.DB(ctx).Take(&entity.Migration{}, "version=?", version).Error
	if err == nil {
		return true, nil
	}

	if err == gorm.ErrRecordNotFound {
		return false, nil
	}

	return false, err
}
