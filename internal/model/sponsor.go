package model

type CreateSponsorProfileRequest struct {
	BusinessName  string `json:"business_name" validate:"required"`
	Industry      string `json:"industry"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	WebsiteURL    string `json:"website_url"`
	LogoURL       string `json:"logo_url"`
	BudgetMin     uint64 `json:"budget_min"`
	BudgetMax     uint64 `json:"budget_max"`
	PaymentMethod string `json:"payment_method" validate:"required"`
}

type CreateSponsorProfileResponse struct {
	ID string `json:"id"`
}

type GetSponsorProfileRequest struct {
	ID string `json:"id"`
}

type GetSponsorProfileResponse SponsorProfile

type GetMySponsorProfileRequest struct{}

type GetMySponsorProfileResponse SponsorProfile

type UpdateSponsorProfileRequest struct {
	ID            string `json:"id" validate:"required"`
	BusinessName  string `json:"business_name"`
	Industry      string `json:"industry"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	WebsiteURL    string `json:"website_url"`
	LogoURL       string `json:"logo_url"`
	BudgetMin     uint64 `json:"budget_min"`
	BudgetMax     uint64 `json:"budget_max"`
	PaymentMethod string `json:"payment_method"`
}

type UpdateSponsorProfileResponse struct{}

type DeleteSponsorProfileRequest struct {
	ID string `json:"id" validate:"required"`
}

type DeleteSponsorProfileResponse struct{}
