package model

type CreateCreatorProfileRequest struct {
	DisplayName   string         `json:"display_name" validate:"required"`
	Bio           string         `json:"bio"`
	Specialties   []string       `json:"specialties"`
	Communities   []string       `json:"communities"`
	PortfolioURL  string         `json:"portfolio_url"`
	SocialLinks   map[string]any `json:"social_links"`
	PayoutMethod  string         `json:"payout_method" validate:"required"`
	WalletAddress string         `json:"wallet_address"`
}

type CreateCreatorProfileResponse struct {
	ID string `json:"id"`
}

type GetCreatorProfileRequest struct {
	ID string `json:"id"`
}

type GetCreatorProfileResponse CreatorProfile

type GetMyCreatorProfileRequest struct{}

type GetMyCreatorProfileResponse CreatorProfile

type GetListCreatorProfileRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetListCreatorProfileResponse struct {
	CreatorProfiles []CreatorProfile `json:"creator_profiles"`
}

type UpdateCreatorProfileRequest struct {
	ID            string         `json:"id" validate:"required"`
	DisplayName   string         `json:"display_name"`
	Bio           string         `json:"bio"`
	Specialties   []string       `json:"specialties"`
	Communities   []string       `json:"communities"`
	PortfolioURL  string         `json:"portfolio_url"`
	SocialLinks   map[string]any `json:"social_links"`
	PayoutMethod  string         `json:"payout_method"`
	WalletAddress string         `json:"wallet_address"`
}

type UpdateCreatorProfileResponse struct{}

type DeleteCreatorProfileRequest struct {
	ID string `json:"id" validate:"required"`
}

type DeleteCreatorProfileResponse struct{}
