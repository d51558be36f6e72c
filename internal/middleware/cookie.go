package middleware

import (
	"context"
	"net/http"

	"github.com/localboost/backend/pkg/router"
	"github.com/localboost/backend/pkg/xcontext"
)

type CookieResponse interface {
	CookieInfo(context.Context) []http.Cookie
}

// HandleSetAccessToken writes the cookies of a CookieResponse after the
// handler has produced it.
func HandleSetAccessToken() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		tokenResp, ok := xcontext.Response(ctx).(CookieResponse)
		if ok {
			for _, cookie := range tokenResp.CookieInfo(ctx) {
				cookie := cookie
				http.SetCookie(xcontext.HTTPWriter(ctx), &cookie)
			}
		}

		return ctx, nil
	}
}
