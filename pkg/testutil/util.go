package testutil

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/localboost/backend/config"
	"github.com/localboost/backend/migration"
	"github.com/localboost/backend/pkg/authenticator"
	"github.com/localboost/backend/pkg/logger"
	"github.com/localboost/backend/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func NewMockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	cfg := config.Configs{
		Env: "testing",
		ApiServer: config.ServerConfigs{
			DefaultLimit: 10,
			MaxLimit:     50,
		},
		Auth: config.AuthConfigs{
			TokenSecret: "secret",
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: time.Minute,
			},
			RefreshToken: config.TokenConfigs{
				Name:       "refresh_token",
				Expiration: time.Minute,
			},
			Identity: config.IdentityConfigs{
				Name:      "localboost",
				SecretKey: "identity-secret",
				IDField:   "id",
			},
		},
		Session: config.SessionConfigs{
			Secret: "session-secret",
			Name:   "auth_session",
		},
		File: config.FileConfigs{
			MaxSize:     2 << 20,
			ImageBucket: "images",
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.ERROR))
	ctx = xcontext.WithTokenEngine(ctx, authenticator.NewTokenEngine(cfg.Auth.TokenSecret))
	ctx = xcontext.WithSessionStore(ctx, sessions.NewCookieStore([]byte(cfg.Session.Secret)))
	ctx = xcontext.WithDB(ctx, db)

	if err := migration.AutoMigrate(ctx); err != nil {
		panic(err)
	}

	return ctx
}

func NewMockContextWithUserID(ctx context.Context, userID string) context.Context {
	return xcontext.WithRequestUserID(ctx, userID)
}

func NewMockContextWith(ctx context.Context, r *http.Request) context.Context {
	return xcontext.WithHTTPRequest(ctx, r)
}
