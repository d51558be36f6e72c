package domain

import (
	"context"
	"testing"

	"github.com/localboost/backend/internal/model"
	"github.com/localboost/backend/internal/repository"
	"github.com/localboost/backend/pkg/authenticator"
	"github.com/localboost/backend/pkg/errorx"
	"github.com/localboost/backend/pkg/testutil"
	"github.com/localboost/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

type mockIdentityService struct {
	user authenticator.IdentityUser
	err  error
}

func (m *mockIdentityService) Service() string {
	return "mock"
}

func (m *mockIdentityService) GetUserContext(
	ctx context.Context, credential string,
) (authenticator.IdentityUser, error) {
	if m.err != nil {
		return authenticator.IdentityUser{}, m.err
	}

	return m.user, nil
}

func newTestAuthDomain(identityService authenticator.IIdentityService) *authDomain {
	return NewAuthDomain(
		repository.NewUserRepository(),
		repository.NewRefreshTokenRepository(),
		identityService,
	)
}

func Test_authDomain_VerifyIdentity_NewUser(t *testing.T) {
	ctx := testutil.NewMockContext()
	domain := newTestAuthDomain(&mockIdentityService{
		user: authenticator.IdentityUser{
			ID:          "external-new",
			Username:    "newcomer",
			DisplayName: "New Comer",
		},
	})

	resp, err := domain.VerifyIdentity(ctx, &model.VerifyIdentityRequest{Credential: "signed"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)
	require.Equal(t, "newcomer", resp.User.Username)

	user, err := repository.NewUserRepository().GetByExternalID(ctx, "external-new")
	require.NoError(t, err)
	require.Equal(t, "New Comer", user.DisplayName)

	accessToken := model.AccessToken{}
	require.NoError(t, xcontext.TokenEngine(ctx).Verify(resp.AccessToken, &accessToken))
	require.Equal(t, user.ID, accessToken.ID)
}

func Test_authDomain_VerifyIdentity_ExistingUser(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestAuthDomain(&mockIdentityService{
		user: authenticator.IdentityUser{
			ID:          testutil.User1.ExternalID,
			Username:    testutil.User1.Username,
			DisplayName: "Brew & Bloom Rebranded",
		},
	})

	resp, err := domain.VerifyIdentity(ctx, &model.VerifyIdentityRequest{Credential: "signed"})
	require.NoError(t, err)
	require.Equal(t, testutil.User1.ID, resp.User.ID)

	// The profile fields follow the identity provider.
	user, err := repository.NewUserRepository().GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, "Brew & Bloom Rebranded", user.DisplayName)
}

func Test_authDomain_VerifyIdentity_BadCredential(t *testing.T) {
	ctx := testutil.NewMockContext()
	domain := newTestAuthDomain(&mockIdentityService{
		err: errorx.New(errorx.Unauthenticated, "invalid signature"),
	})

	_, err := domain.VerifyIdentity(ctx, &model.VerifyIdentityRequest{Credential: "forged"})

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unauthenticated, errx.Code)
}

func Test_authDomain_Refresh_RotationAndStolenDetection(t *testing.T) {
	ctx := testutil.NewMockContext()
	domain := newTestAuthDomain(&mockIdentityService{
		user: authenticator.IdentityUser{ID: "external-new", Username: "newcomer"},
	})

	verifyResp, err := domain.VerifyIdentity(ctx, &model.VerifyIdentityRequest{Credential: "signed"})
	require.NoError(t, err)

	// A normal rotation bumps the counter and returns a fresh pair.
	refreshResp, err := domain.Refresh(ctx, &model.RefreshTokenRequest{
		RefreshToken: verifyResp.RefreshToken,
	})
	require.NoError(t, err)
	require.NotEqual(t, verifyResp.RefreshToken, refreshResp.RefreshToken)

	// Replaying the old token means someone else rotated it first. The whole
	// family is revoked.
	_, err = domain.Refresh(ctx, &model.RefreshTokenRequest{
		RefreshToken: verifyResp.RefreshToken,
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.StolenDetected, errx.Code)

	// The rotated token is dead too once the family is gone.
	_, err = domain.Refresh(ctx, &model.RefreshTokenRequest{
		RefreshToken: refreshResp.RefreshToken,
	})
	require.Error(t, err)
}
