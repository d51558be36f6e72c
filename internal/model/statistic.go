package model

type CreatorLeaderboardEntry struct {
	CreatorProfileID string `json:"creator_profile_id"`
	DisplayName      string `json:"display_name"`
	Value            uint64 `json:"value"`
	Rank             uint64 `json:"rank"`
}

type GetCreatorLeaderboardRequest struct {
	OrderedBy string `json:"ordered_by"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetCreatorLeaderboardResponse struct {
	Leaderboard []CreatorLeaderboardEntry `json:"leaderboard"`
}
