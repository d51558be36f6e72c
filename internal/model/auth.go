package model

import (
	"context"
	"net/http"
	"time"

	"github.com/localboost/backend/pkg/xcontext"
)

// Access Token and Refresh Token
type AccessToken struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

type RefreshToken struct {
	Family  string
	Counter uint64
}

// Identity verification
type VerifyIdentityRequest struct {
	Credential string `json:"credential" validate:"required"`
}

type VerifyIdentityResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (r VerifyIdentityResponse) CookieInfo(ctx context.Context) []http.Cookie {
	return []http.Cookie{
		{
			Name:     xcontext.Configs(ctx).Auth.AccessToken.Name,
			Value:    r.AccessToken,
			Path:     "/",
			Domain:   "",
			Expires:  time.Now().Add(xcontext.Configs(ctx).Auth.AccessToken.Expiration),
			Secure:   true,
			HttpOnly: false,
		},
		{
			Name:     xcontext.Configs(ctx).Auth.RefreshToken.Name,
			Value:    r.RefreshToken,
			Path:     "/",
			Domain:   "",
			Expires:  time.Now().Add(xcontext.Configs(ctx).Auth.RefreshToken.Expiration),
			Secure:   true,
			HttpOnly: false,
		},
	}
}

// Refresh token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
