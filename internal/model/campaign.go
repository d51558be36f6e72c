package model

type CreateCampaignRequest struct {
	SponsorProfileID string `json:"sponsor_profile_id" validate:"required"`
	Title            string `json:"title" validate:"required"`
	Description      string `json:"description"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	CompensationType string `json:"compensation_type" validate:"required"`
	CashAmount       uint64 `json:"cash_amount"`
	CreditAmount     uint64 `json:"credit_amount"`
	Notes            string `json:"notes"`
}

type CreateCampaignResponse struct {
	ID string `json:"id"`
}

type GetCampaignRequest struct {
	ID string `json:"id"`
}

type GetCampaignResponse Campaign

type GetListCampaignRequest struct {
	SponsorProfileID string `json:"sponsor_profile_id"`
	CreatorProfileID string `json:"creator_profile_id"`
	Status           string `json:"status"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetListCampaignResponse struct {
	Campaigns []Campaign `json:"campaigns"`
}

type UpdateCampaignRequest struct {
	ID           string `json:"id" validate:"required"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	CashAmount   uint64 `json:"cash_amount"`
	CreditAmount uint64 `json:"credit_amount"`
	Notes        string `json:"notes"`
}

type UpdateCampaignResponse struct{}

type AssignCreatorRequest struct {
	ID               string `json:"id" validate:"required"`
	CreatorProfileID string `json:"creator_profile_id" validate:"required"`
}

type AssignCreatorResponse struct{}

type ActivateCampaignRequest struct {
	ID string `json:"id" validate:"required"`
}

type ActivateCampaignResponse struct{}

type CancelCampaignRequest struct {
	ID string `json:"id" validate:"required"`
}

type CancelCampaignResponse struct{}

type DisputeCampaignRequest struct {
	ID     string `json:"id" validate:"required"`
	Reason string `json:"reason"`
}

type DisputeCampaignResponse struct{}

type DeleteCampaignRequest struct {
	ID string `json:"id" validate:"required"`
}

type DeleteCampaignResponse struct{}
