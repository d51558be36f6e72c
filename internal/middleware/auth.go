package middleware

import (
	"context"
	"strings"

	"github.com/localboost/backend/internal/model"
	"github.com/localboost/backend/pkg/errorx"
	"github.com/localboost/backend/pkg/router"
	"github.com/localboost/backend/pkg/xcontext"
)

// WithAuthentication resolves the access token from the Authorization header
// or the access-token cookie and stores the user id in the context. It never
// fails; Authenticate enforces the requirement.
func WithAuthentication() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		token := getAccessToken(ctx)
		if token == "" {
			return ctx, nil
		}

		var info model.AccessToken
		if err := xcontext.TokenEngine(ctx).Verify(token, &info); err != nil {
			return ctx, nil
		}

		return xcontext.WithRequestUserID(ctx, info.ID), nil
	}
}

func Authenticate() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		if xcontext.RequestUserID(ctx) == "" {
			return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		return ctx, nil
	}
}

func getAccessToken(ctx context.Context) string {
	r := xcontext.HTTPRequest(ctx)
	authorization := r.Header.Get("Authorization")
	auth, token, found := strings.Cut(authorization, " ")
	if found {
		if auth == "Bearer" {
			return token
		}
		return ""
	}

	cookie, err := r.Cookie(xcontext.Configs(ctx).Auth.AccessToken.Name)
	if err != nil || cookie == nil {
		return ""
	}

	return cookie.Value
}
