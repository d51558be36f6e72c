package model

type IssueCreditRequest struct {
	SponsorProfileID string         `json:"sponsor_profile_id" validate:"required"`
	CampaignID       string         `json:"campaign_id"`
	RecipientUserID  string         `json:"recipient_user_id"`
	Title            string         `json:"title" validate:"required"`
	Description      string         `json:"description"`
	Value            uint64         `json:"value" validate:"required"`
	RedemptionRules  map[string]any `json:"redemption_rules"`
	ExpiresAt        string         `json:"expires_at"`
}

type IssueCreditResponse struct {
	ID string `json:"id"`
}

type GetCreditRequest struct {
	ID string `json:"id"`
}

type GetCreditResponse Credit

type GetListCreditRequest struct {
	SponsorProfileID string `json:"sponsor_profile_id"`
	RecipientUserID  string `json:"recipient_user_id"`
	Status           string `json:"status"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetListCreditResponse struct {
	Credits []Credit `json:"credits"`
}

type RedeemCreditRequest struct {
	ID string `json:"id" validate:"required"`
}

type RedeemCreditResponse struct{}

type CancelCreditRequest struct {
	ID string `json:"id" validate:"required"`
}

type CancelCreditResponse struct{}

type ExpireCreditRequest struct {
	ID string `json:"id" validate:"required"`
}

type ExpireCreditResponse struct{}
