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

func Test_statisticDomain_GetCreatorLeaderboard(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	creatorProfileRepo := repository.NewCreatorProfileRepository()
	err := creatorProfileRepo.Create(ctx, &entity.CreatorProfile{
		Base:               entity.Base{ID: "creator_profile2"},
		UserID:             testutil.User3.ID,
		DisplayName:        "Top Creator",
		ReputationScore:    120,
		CompletedCampaigns: 9,
		PayoutMethod:       entity.PaymentTraditional,
		Active:             true,
	})
	require.NoError(t, err)

	// The redis keys do not exist yet, the leaderboard is rebuilt from the
	// database counters.
	domain := NewStatisticDomain(creatorProfileRepo, testutil.NewInMemoryRedisClient())
	resp, err := domain.GetCreatorLeaderboard(ctx, &model.GetCreatorLeaderboardRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Leaderboard, 2)

	require.Equal(t, "creator_profile2", resp.Leaderboard[0].CreatorProfileID)
	require.Equal(t, "Top Creator", resp.Leaderboard[0].DisplayName)
	require.Equal(t, uint64(120), resp.Leaderboard[0].Value)
	require.Equal(t, uint64(1), resp.Leaderboard[0].Rank)

	require.Equal(t, testutil.CreatorProfile1.ID, resp.Leaderboard[1].CreatorProfileID)
	require.Equal(t, uint64(50), resp.Leaderboard[1].Value)
	require.Equal(t, uint64(2), resp.Leaderboard[1].Rank)
}

func Test_statisticDomain_GetCreatorLeaderboard_OrderedByCompleted(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	domain := NewStatisticDomain(
		repository.NewCreatorProfileRepository(), testutil.NewInMemoryRedisClient())
	resp, err := domain.GetCreatorLeaderboard(ctx, &model.GetCreatorLeaderboardRequest{
		OrderedBy: "completed",
	})
	require.NoError(t, err)
	require.Len(t, resp.Leaderboard, 1)
	require.Equal(t, testutil.CreatorProfile1.CompletedCampaigns, resp.Leaderboard[0].Value)
}

func Test_statisticDomain_GetCreatorLeaderboard_InvalidOrder(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	domain := NewStatisticDomain(
		repository.NewCreatorProfileRepository(), testutil.NewInMemoryRedisClient())
	_, err := domain.GetCreatorLeaderboard(ctx, &model.GetCreatorLeaderboardRequest{
		OrderedBy: "followers",
	})

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}
