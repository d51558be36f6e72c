package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/localboost/backend/internal/entity"
	"github.com/localboost/backend/internal/model"
	"github.com/localboost/backend/internal/repository"
	"github.com/localboost/backend/pkg/errorx"
	"github.com/localboost/backend/pkg/reflectutil"
	"github.com/localboost/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestCampaignDomain() *campaignDomain {
	return NewCampaignDomain(
		repository.NewCampaignRepository(),
		repository.NewDeliverableRepository(),
		repository.NewProofRepository(),
		repository.NewSponsorProfileRepository(),
		repository.NewCreatorProfileRepository(),
		repository.NewUserRepository(),
	)
}

func Test_campaignDomain_Create(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestCampaignDomain()

	sponsorCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	resp, err := domain.Create(sponsorCtx, &model.CreateCampaignRequest{
		SponsorProfileID: testutil.SponsorProfile1.ID,
		Title:            "Winter pop-up",
		CompensationType: "cash",
		CashAmount:       300,
	})
	require.NoError(t, err)

	campaign, err := repository.NewCampaignRepository().GetByID(ctx, resp.ID)
	require.NoError(t, err)
	require.Equal(t, entity.CampaignDraft, campaign.Status)
	require.False(t, campaign.CreatorProfileID.Valid)
}

func Test_campaignDomain_Create_AmountMismatch(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestCampaignDomain()

	sponsorCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err := domain.Create(sponsorCtx, &model.CreateCampaignRequest{
		SponsorProfileID: testutil.SponsorProfile1.ID,
		Title:            "Winter pop-up",
		CompensationType: "credit",
		CashAmount:       300,
	})

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_campaignDomain_Create_NotOwner(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestCampaignDomain()

	creatorCtx := testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	_, err := domain.Create(creatorCtx, &model.CreateCampaignRequest{
		SponsorProfileID: testutil.SponsorProfile1.ID,
		Title:            "Not my profile",
		CompensationType: "cash",
	})

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)
}

func Test_campaignDomain_GetList(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestCampaignDomain()

	resp, err := domain.GetList(ctx, &model.GetListCampaignRequest{
		SponsorProfileID: testutil.SponsorProfile1.ID,
		Status:           "draft",
	})
	require.NoError(t, err)
	require.Len(t, resp.Campaigns, 1)
	require.True(t, reflectutil.PartialEqual(&model.Campaign{
		ID:               testutil.Campaign2.ID,
		SponsorProfileID: testutil.SponsorProfile1.ID,
		Status:           "draft",
		CompensationType: "credit",
		CreditAmount:     200,
	}, &resp.Campaigns[0]))

	_, err = domain.GetList(ctx, &model.GetListCampaignRequest{Status: "archived"})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_campaignDomain_ActivateRequiresCreator(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestCampaignDomain()

	sponsorCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err := domain.Activate(sponsorCtx, &model.ActivateCampaignRequest{ID: testutil.Campaign2.ID})

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unavailable, errx.Code)

	_, err = domain.AssignCreator(sponsorCtx, &model.AssignCreatorRequest{
		ID:               testutil.Campaign2.ID,
		CreatorProfileID: testutil.CreatorProfile1.ID,
	})
	require.NoError(t, err)

	_, err = domain.Activate(sponsorCtx, &model.ActivateCampaignRequest{ID: testutil.Campaign2.ID})
	require.NoError(t, err)

	campaign, err := repository.NewCampaignRepository().GetByID(ctx, testutil.Campaign2.ID)
	require.NoError(t, err)
	require.Equal(t, entity.CampaignActive, campaign.Status)
}

func Test_campaignDomain_UpdateOnlyDraft(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestCampaignDomain()

	sponsorCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err := domain.Update(sponsorCtx, &model.UpdateCampaignRequest{
		ID:    testutil.Campaign1.ID,
		Title: "Renamed",
	})

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unavailable, errx.Code)

	_, err = domain.Update(sponsorCtx, &model.UpdateCampaignRequest{
		ID:    testutil.Campaign2.ID,
		Title: "Renamed",
	})
	require.NoError(t, err)
}

func Test_campaignDomain_Delete_Cascades(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestCampaignDomain()
	proofRepo := repository.NewProofRepository()

	proofID := uuid.NewString()
	err := proofRepo.Create(ctx, &entity.Proof{
		Base:          entity.Base{ID: proofID},
		DeliverableID: testutil.Deliverable1.ID,
		UserID:        testutil.User2.ID,
		Type:          entity.ProofText,
		Content:       "A submission that goes away with the campaign",
		Status:        entity.ProofPending,
	})
	require.NoError(t, err)

	sponsorCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err = domain.Delete(sponsorCtx, &model.DeleteCampaignRequest{ID: testutil.Campaign1.ID})
	require.NoError(t, err)

	_, err = repository.NewCampaignRepository().GetByID(ctx, testutil.Campaign1.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	deliverables, err := repository.NewDeliverableRepository().GetByCampaignID(ctx, testutil.Campaign1.ID)
	require.NoError(t, err)
	require.Empty(t, deliverables)

	_, err = proofRepo.GetByID(ctx, proofID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func Test_campaignDomain_Dispute(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestCampaignDomain()

	sponsorCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err := domain.Dispute(sponsorCtx, &model.DisputeCampaignRequest{
		ID:     testutil.Campaign1.ID,
		Reason: "Deliverables never arrived",
	})
	require.NoError(t, err)

	campaign, err := repository.NewCampaignRepository().GetByID(ctx, testutil.Campaign1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.CampaignDisputed, campaign.Status)
	require.Equal(t, "Deliverables never arrived", campaign.Notes)

	// Draft campaigns cannot be disputed.
	_, err = domain.Dispute(sponsorCtx, &model.DisputeCampaignRequest{ID: testutil.Campaign2.ID})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unavailable, errx.Code)
}
