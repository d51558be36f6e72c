package domain

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/localboost/backend/internal/common"
	"github.com/localboost/backend/internal/entity"
	"github.com/localboost/backend/internal/model"
	"github.com/localboost/backend/internal/repository"
	"github.com/localboost/backend/pkg/errorx"
	"github.com/localboost/backend/pkg/testutil"
	"github.com/localboost/backend/pkg/xredis"
	"github.com/stretchr/testify/require"
)

func newTestProofDomain(redisClient xredis.Client) *proofDomain {
	return NewProofDomain(
		repository.NewProofRepository(),
		repository.NewDeliverableRepository(),
		repository.NewCampaignRepository(),
		repository.NewSponsorProfileRepository(),
		repository.NewCreatorProfileRepository(),
		repository.NewUserRepository(),
		redisClient,
	)
}

func submitTextProof(t *testing.T, ctx context.Context, d *proofDomain, deliverableID string) string {
	creatorCtx := testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	resp, err := d.Submit(creatorCtx, &model.SubmitProofRequest{
		DeliverableID: deliverableID,
		Type:          "text",
		Content:       "Posted the launch announcement this morning",
	})
	require.NoError(t, err)
	require.Equal(t, "pending", resp.Status)

	return resp.ID
}

func Test_proofDomain_Submit(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestProofDomain(nil)

	proofID := submitTextProof(t, ctx, domain, testutil.Deliverable1.ID)

	proof, err := repository.NewProofRepository().GetByID(ctx, proofID)
	require.NoError(t, err)
	require.Equal(t, entity.ProofPending, proof.Status)
	require.Equal(t, testutil.User2.ID, proof.UserID)

	deliverable, err := repository.NewDeliverableRepository().GetByID(ctx, testutil.Deliverable1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.DeliverableSubmitted, deliverable.Status)
}

func Test_proofDomain_Submit_NotAssignedCreator(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestProofDomain(nil)

	strangerCtx := testutil.NewMockContextWithUserID(ctx, testutil.User3.ID)
	_, err := domain.Submit(strangerCtx, &model.SubmitProofRequest{
		DeliverableID: testutil.Deliverable1.ID,
		Type:          "text",
		Content:       "I am not the assigned creator",
	})

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)
}

func Test_proofDomain_Submit_InvalidType(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestProofDomain(nil)

	creatorCtx := testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	_, err := domain.Submit(creatorCtx, &model.SubmitProofRequest{
		DeliverableID: testutil.Deliverable1.ID,
		Type:          "carrier-pigeon",
		Content:       "coo",
	})

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_proofDomain_Review_ApproveVerifiesDeliverable(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestProofDomain(nil)

	proofID := submitTextProof(t, ctx, domain, testutil.Deliverable1.ID)

	sponsorCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err := domain.Review(sponsorCtx, &model.ReviewProofRequest{
		ID:     proofID,
		Action: "approved",
		Notes:  "Looks great",
	})
	require.NoError(t, err)

	proof, err := repository.NewProofRepository().GetByID(ctx, proofID)
	require.NoError(t, err)
	require.Equal(t, entity.ProofApproved, proof.Status)
	require.True(t, proof.ReviewerID.Valid)
	require.Equal(t, testutil.User1.ID, proof.ReviewerID.String)
	require.True(t, proof.ReviewedAt.Valid)

	deliverable, err := repository.NewDeliverableRepository().GetByID(ctx, testutil.Deliverable1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.DeliverableVerified, deliverable.Status)
	require.True(t, deliverable.CompletedAt.Valid)

	// The second deliverable is still open, so the campaign stays active.
	campaign, err := repository.NewCampaignRepository().GetByID(ctx, testutil.Campaign1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.CampaignActive, campaign.Status)
}

func Test_proofDomain_Review_LastApprovalCompletesCampaign(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	redisClient := testutil.NewInMemoryRedisClient()
	domain := newTestProofDomain(redisClient)

	proof1 := submitTextProof(t, ctx, domain, testutil.Deliverable1.ID)
	proof2 := submitTextProof(t, ctx, domain, testutil.Deliverable2.ID)

	sponsorCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err := domain.Review(sponsorCtx, &model.ReviewProofRequest{ID: proof1, Action: "approved"})
	require.NoError(t, err)
	_, err = domain.Review(sponsorCtx, &model.ReviewProofRequest{ID: proof2, Action: "approved"})
	require.NoError(t, err)

	campaign, err := repository.NewCampaignRepository().GetByID(ctx, testutil.Campaign1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.CampaignCompleted, campaign.Status)

	creator, err := repository.NewCreatorProfileRepository().GetByID(ctx, testutil.CreatorProfile1.ID)
	require.NoError(t, err)
	require.Equal(t, testutil.CreatorProfile1.ReputationScore+campaignReputationBump, creator.ReputationScore)
	require.Equal(t, testutil.CreatorProfile1.CompletedCampaigns+1, creator.CompletedCampaigns)

	records, err := redisClient.ZRevRangeWithScores(ctx, common.RedisKeyCreatorReputation(), 0, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	member := common.RedisValueCreator(testutil.CreatorProfile1.DisplayName, testutil.CreatorProfile1.ID)
	require.Equal(t, member, records[0].Member)
	require.Equal(t, float64(campaignReputationBump), records[0].Score)
}

func Test_proofDomain_CampaignWithoutDeliverablesNeverCompletes(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestProofDomain(nil)
	campaignRepo := repository.NewCampaignRepository()

	campaign := &entity.Campaign{
		Base:             entity.Base{ID: uuid.NewString()},
		SponsorProfileID: testutil.SponsorProfile1.ID,
		CreatorProfileID: sql.NullString{Valid: true, String: testutil.CreatorProfile1.ID},
		Title:            "Nothing agreed yet",
		Status:           entity.CampaignActive,
		CompensationType: entity.CompensationCash,
		CashAmount:       100,
	}
	require.NoError(t, campaignRepo.Create(ctx, campaign))

	// The deliverable was removed between the read and the completion check.
	// An empty campaign must stay open rather than complete vacuously.
	orphan := &entity.Deliverable{
		Base:       entity.Base{ID: uuid.NewString()},
		CampaignID: campaign.ID,
	}
	require.NoError(t, domain.completeCampaignIfDone(ctx, orphan, campaign))

	got, err := campaignRepo.GetByID(ctx, campaign.ID)
	require.NoError(t, err)
	require.Equal(t, entity.CampaignActive, got.Status)

	creator, err := repository.NewCreatorProfileRepository().GetByID(ctx, testutil.CreatorProfile1.ID)
	require.NoError(t, err)
	require.Equal(t, testutil.CreatorProfile1.ReputationScore, creator.ReputationScore)
	require.Equal(t, testutil.CreatorProfile1.CompletedCampaigns, creator.CompletedCampaigns)
}

func Test_proofDomain_Review_RejectRevertsDeliverable(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestProofDomain(nil)

	proofID := submitTextProof(t, ctx, domain, testutil.Deliverable1.ID)

	sponsorCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err := domain.Review(sponsorCtx, &model.ReviewProofRequest{
		ID:     proofID,
		Action: "rejected",
		Notes:  "Wrong hashtag",
	})
	require.NoError(t, err)

	deliverable, err := repository.NewDeliverableRepository().GetByID(ctx, testutil.Deliverable1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.DeliverablePending, deliverable.Status)

	// The creator can try again after the rejection.
	submitTextProof(t, ctx, domain, testutil.Deliverable1.ID)
}

func Test_proofDomain_Review_Twice(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestProofDomain(nil)

	proofID := submitTextProof(t, ctx, domain, testutil.Deliverable1.ID)

	sponsorCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err := domain.Review(sponsorCtx, &model.ReviewProofRequest{ID: proofID, Action: "approved"})
	require.NoError(t, err)

	_, err = domain.Review(sponsorCtx, &model.ReviewProofRequest{ID: proofID, Action: "rejected"})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unavailable, errx.Code)
}

func Test_proofDomain_Review_RejectKeepsOtherApproval(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestProofDomain(nil)
	proofRepo := repository.NewProofRepository()

	pendingProof := submitTextProof(t, ctx, domain, testutil.Deliverable1.ID)

	// Another proof on the same deliverable was already approved.
	err := proofRepo.Create(ctx, &entity.Proof{
		Base:          entity.Base{ID: uuid.NewString()},
		DeliverableID: testutil.Deliverable1.ID,
		UserID:        testutil.User2.ID,
		Type:          entity.ProofText,
		Content:       "An earlier accepted submission",
		Status:        entity.ProofApproved,
	})
	require.NoError(t, err)

	sponsorCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err = domain.Review(sponsorCtx, &model.ReviewProofRequest{ID: pendingProof, Action: "rejected"})
	require.NoError(t, err)

	deliverable, err := repository.NewDeliverableRepository().GetByID(ctx, testutil.Deliverable1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.DeliverableSubmitted, deliverable.Status)
}

func Test_proofDomain_Review_RejectAfterVerifiedKeepsVerified(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestProofDomain(nil)
	proofRepo := repository.NewProofRepository()

	approvedProof := submitTextProof(t, ctx, domain, testutil.Deliverable1.ID)

	sponsorCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err := domain.Review(sponsorCtx, &model.ReviewProofRequest{ID: approvedProof, Action: "approved"})
	require.NoError(t, err)

	// A leftover pending proof gets rejected after the deliverable was
	// already verified.
	leftover := uuid.NewString()
	err = proofRepo.Create(ctx, &entity.Proof{
		Base:          entity.Base{ID: leftover},
		DeliverableID: testutil.Deliverable1.ID,
		UserID:        testutil.User2.ID,
		Type:          entity.ProofText,
		Content:       "A duplicate submission",
		Status:        entity.ProofPending,
	})
	require.NoError(t, err)

	_, err = domain.Review(sponsorCtx, &model.ReviewProofRequest{ID: leftover, Action: "rejected"})
	require.NoError(t, err)

	deliverable, err := repository.NewDeliverableRepository().GetByID(ctx, testutil.Deliverable1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.DeliverableVerified, deliverable.Status)
}

func Test_proofDomain_Review_NotSponsor(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestProofDomain(nil)

	proofID := submitTextProof(t, ctx, domain, testutil.Deliverable1.ID)

	creatorCtx := testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	_, err := domain.Review(creatorCtx, &model.ReviewProofRequest{ID: proofID, Action: "approved"})

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)
}

func Test_proofDomain_Review_AdminBypass(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestProofDomain(nil)

	proofID := submitTextProof(t, ctx, domain, testutil.Deliverable1.ID)

	adminCtx := testutil.NewMockContextWithUserID(ctx, testutil.AdminUser.ID)
	_, err := domain.Review(adminCtx, &model.ReviewProofRequest{ID: proofID, Action: "approved"})
	require.NoError(t, err)
}
