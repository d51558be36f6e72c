package domain

import (
	"context"

	"github.com/localboost/backend/internal/common"
	"github.com/localboost/backend/internal/model"
	"github.com/localboost/backend/internal/repository"
	"github.com/localboost/backend/pkg/errorx"
	"github.com/localboost/backend/pkg/xcontext"
	"github.com/localboost/backend/pkg/xredis"
	"github.com/redis/go-redis/v9"
)

type StatisticDomain interface {
	GetCreatorLeaderboard(context.Context, *model.GetCreatorLeaderboardRequest) (*model.GetCreatorLeaderboardResponse, error)
}

type statisticDomain struct {
	creatorProfileRepo repository.CreatorProfileRepository
	redisClient        xredis.Client
}

func NewStatisticDomain(
	creatorProfileRepo repository.CreatorProfileRepository,
	redisClient xredis.Client,
) *statisticDomain {
	return &statisticDomain{
		creatorProfileRepo: creatorProfileRepo,
		redisClient:        redisClient,
	}
}

func (d *statisticDomain) GetCreatorLeaderboard(
	ctx context.Context, req *model.GetCreatorLeaderboardRequest,
) (*model.GetCreatorLeaderboardResponse, error) {
	var key string
	switch req.OrderedBy {
	case "", "reputation":
		key = common.RedisKeyCreatorReputation()
	case "completed":
		key = common.RedisKeyCreatorCompleted()
	default:
		return nil, errorx.New(errorx.BadRequest,
			"Leaderboard must be ordered by reputation or completed")
	}

	offset, limit, err := common.Pagination(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	if err := d.rebuildIfMissing(ctx, key); err != nil {
		return nil, err
	}

	records, err := d.redisClient.ZRevRangeWithScores(ctx, key, offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get leaderboard from redis: %v", err)
		return nil, errorx.Unknown
	}

	leaderboard := []model.CreatorLeaderboardEntry{}
	for i, record := range records {
		displayName, profileID := common.FromRedisValueCreator(record.Member.(string))
		leaderboard = append(leaderboard, model.CreatorLeaderboardEntry{
			CreatorProfileID: profileID,
			DisplayName:      displayName,
			Value:            uint64(record.Score),
			Rank:             uint64(offset + i + 1),
		})
	}

	return &model.GetCreatorLeaderboardResponse{Leaderboard: leaderboard}, nil
}

// rebuildIfMissing reloads the sorted sets from the database when redis lost
// them. The database counters are the source of truth.
func (d *statisticDomain) rebuildIfMissing(ctx context.Context, key string) error {
	existed, err := d.redisClient.Exist(ctx, key)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot check leaderboard key: %v", err)
		return errorx.Unknown
	}

	if existed {
		return nil
	}

	profiles, err := d.creatorProfileRepo.GetList(ctx, 0, xcontext.Configs(ctx).ApiServer.MaxLimit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load creators for leaderboard: %v", err)
		return errorx.Unknown
	}

	for _, profile := range profiles {
		member := common.RedisValueCreator(profile.DisplayName, profile.ID)
		err := d.redisClient.ZAdd(ctx, common.RedisKeyCreatorReputation(), redis.Z{
			Score:  float64(profile.ReputationScore),
			Member: member,
		})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot rebuild reputation leaderboard: %v", err)
			return errorx.Unknown
		}

		err = d.redisClient.ZAdd(ctx, common.RedisKeyCreatorCompleted(), redis.Z{
			Score:  float64(profile.CompletedCampaigns),
			Member: member,
		})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot rebuild completed leaderboard: %v", err)
			return errorx.Unknown
		}
	}

	return nil
}
