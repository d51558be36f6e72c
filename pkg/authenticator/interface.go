package authenticator

import (
	"context"
	"time"
)

type TokenEngine interface {
	Generate(expiration time.Duration, obj any) (string, error)
	Verify(token string, obj any) error
}

// IdentityUser is the user record resolved from the mini-app identity
// provider.
type IdentityUser struct {
	ID          string
	Username    string
	DisplayName string
	AvatarURL   string
}

// IIdentityService resolves the current user from the credential the mini-app
// SDK handed to the client. Implementations try their discovery sources in a
// fixed order until one yields a valid user record.
type IIdentityService interface {
	Service() string
	GetUserContext(ctx context.Context, credential string) (IdentityUser, error)
}
