package domain

import (
	"testing"

	"github.com/localboost/backend/internal/model"
	"github.com/localboost/backend/internal/repository"
	"github.com/localboost/backend/pkg/errorx"
	"github.com/localboost/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTestSponsorDomain() *sponsorDomain {
	return NewSponsorDomain(
		repository.NewSponsorProfileRepository(),
		repository.NewUserRepository(),
	)
}

func Test_sponsorDomain_Create(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestSponsorDomain()

	userCtx := testutil.NewMockContextWithUserID(ctx, testutil.User3.ID)
	resp, err := domain.Create(userCtx, &model.CreateSponsorProfileRequest{
		BusinessName:  "Corner Books",
		PaymentMethod: "traditional",
		BudgetMin:     50,
		BudgetMax:     500,
	})
	require.NoError(t, err)

	my, err := domain.GetMy(userCtx, &model.GetMySponsorProfileRequest{})
	require.NoError(t, err)
	require.Equal(t, resp.ID, my.ID)
	require.Equal(t, "Corner Books", my.BusinessName)
}

func Test_sponsorDomain_Create_OnlyOneActiveProfile(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestSponsorDomain()

	// User1 already owns SponsorProfile1.
	userCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err := domain.Create(userCtx, &model.CreateSponsorProfileRequest{
		BusinessName:  "Second Venture",
		PaymentMethod: "traditional",
	})

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.AlreadyExists, errx.Code)

	// Deactivating the old profile frees the slot.
	_, err = domain.Delete(userCtx, &model.DeleteSponsorProfileRequest{ID: testutil.SponsorProfile1.ID})
	require.NoError(t, err)

	_, err = domain.GetMy(userCtx, &model.GetMySponsorProfileRequest{})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)

	_, err = domain.Create(userCtx, &model.CreateSponsorProfileRequest{
		BusinessName:  "Second Venture",
		PaymentMethod: "traditional",
	})
	require.NoError(t, err)
}

func Test_sponsorDomain_Create_InvalidBudget(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestSponsorDomain()

	userCtx := testutil.NewMockContextWithUserID(ctx, testutil.User3.ID)
	_, err := domain.Create(userCtx, &model.CreateSponsorProfileRequest{
		BusinessName:  "Corner Books",
		PaymentMethod: "traditional",
		BudgetMin:     500,
		BudgetMax:     50,
	})

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_sponsorDomain_Update_NotOwner(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestSponsorDomain()

	otherCtx := testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	_, err := domain.Update(otherCtx, &model.UpdateSponsorProfileRequest{
		ID:           testutil.SponsorProfile1.ID,
		BusinessName: "Hijacked",
	})

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)
}

func Test_sponsorDomain_Update_AdminBypass(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestSponsorDomain()

	adminCtx := testutil.NewMockContextWithUserID(ctx, testutil.AdminUser.ID)
	_, err := domain.Update(adminCtx, &model.UpdateSponsorProfileRequest{
		ID:       testutil.SponsorProfile1.ID,
		Location: "Shelbyville",
	})
	require.NoError(t, err)

	profile, err := repository.NewSponsorProfileRepository().GetByID(ctx, testutil.SponsorProfile1.ID)
	require.NoError(t, err)
	require.Equal(t, "Shelbyville", profile.Location)
}
