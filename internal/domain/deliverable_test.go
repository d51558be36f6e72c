package domain

import (
	"testing"

	"github.com/localboost/backend/internal/entity"
	"github.com/localboost/backend/internal/model"
	"github.com/localboost/backend/internal/repository"
	"github.com/localboost/backend/pkg/errorx"
	"github.com/localboost/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTestDeliverableDomain() *deliverableDomain {
	return NewDeliverableDomain(
		repository.NewDeliverableRepository(),
		repository.NewCampaignRepository(),
		repository.NewSponsorProfileRepository(),
		repository.NewCreatorProfileRepository(),
		repository.NewUserRepository(),
	)
}

func Test_deliverableDomain_Create(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestDeliverableDomain()

	sponsorCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	resp, err := domain.Create(sponsorCtx, &model.CreateDeliverableRequest{
		CampaignID:         testutil.Campaign1.ID,
		Type:               "check_in",
		Title:              "Visit the cafe",
		VerificationMethod: "qr_checkin",
	})
	require.NoError(t, err)

	deliverable, err := repository.NewDeliverableRepository().GetByID(ctx, resp.ID)
	require.NoError(t, err)
	require.Equal(t, entity.DeliverablePending, deliverable.Status)
	require.Equal(t, entity.DeliverableCheckIn, deliverable.Type)
}

func Test_deliverableDomain_Create_ClosedCampaign(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestDeliverableDomain()

	err := repository.NewCampaignRepository().UpdateByID(
		ctx, testutil.Campaign1.ID, &entity.Campaign{Status: entity.CampaignCompleted})
	require.NoError(t, err)

	sponsorCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err = domain.Create(sponsorCtx, &model.CreateDeliverableRequest{
		CampaignID:         testutil.Campaign1.ID,
		Type:               "check_in",
		Title:              "Too late",
		VerificationMethod: "qr_checkin",
	})

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unavailable, errx.Code)
}

func Test_deliverableDomain_Start(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestDeliverableDomain()

	creatorCtx := testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	_, err := domain.Start(creatorCtx, &model.StartDeliverableRequest{ID: testutil.Deliverable1.ID})
	require.NoError(t, err)

	deliverable, err := repository.NewDeliverableRepository().GetByID(ctx, testutil.Deliverable1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.DeliverableInProgress, deliverable.Status)

	// Starting twice is not a legal transition.
	_, err = domain.Start(creatorCtx, &model.StartDeliverableRequest{ID: testutil.Deliverable1.ID})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unavailable, errx.Code)
}

func Test_deliverableDomain_Start_NotCreator(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestDeliverableDomain()

	sponsorCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err := domain.Start(sponsorCtx, &model.StartDeliverableRequest{ID: testutil.Deliverable1.ID})

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)
}

func Test_deliverableDomain_Update_Verified(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestDeliverableDomain()

	err := repository.NewDeliverableRepository().UpdateByID(
		ctx, testutil.Deliverable1.ID, &entity.Deliverable{Status: entity.DeliverableVerified})
	require.NoError(t, err)

	sponsorCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err = domain.Update(sponsorCtx, &model.UpdateDeliverableRequest{
		ID:    testutil.Deliverable1.ID,
		Title: "Too late to edit",
	})

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unavailable, errx.Code)
}
