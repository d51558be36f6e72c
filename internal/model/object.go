package model

type User struct {
	ID          string `json:"id"`
	ExternalID  string `json:"external_id,omitempty"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
	Role        string `json:"role,omitempty"`
}

type SponsorProfile struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	BusinessName  string `json:"business_name"`
	Industry      string `json:"industry"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	WebsiteURL    string `json:"website_url"`
	LogoURL       string `json:"logo_url"`
	BudgetMin     uint64 `json:"budget_min"`
	BudgetMax     uint64 `json:"budget_max"`
	PaymentMethod string `json:"payment_method"`
	Active        bool   `json:"active"`
}

type CreatorProfile struct {
	ID                 string         `json:"id"`
	UserID             string         `json:"user_id"`
	DisplayName        string         `json:"display_name"`
	Bio                string         `json:"bio"`
	Specialties        []string       `json:"specialties"`
	Communities        []string       `json:"communities"`
	PortfolioURL       string         `json:"portfolio_url"`
	SocialLinks        map[string]any `json:"social_links"`
	ReputationScore    uint64         `json:"reputation_score"`
	CompletedCampaigns uint64         `json:"completed_campaigns"`
	PayoutMethod       string         `json:"payout_method"`
	WalletAddress      string         `json:"wallet_address"`
	Active             bool           `json:"active"`
}

type Offering struct {
	ID                string   `json:"id"`
	CreatorProfileID  string   `json:"creator_profile_id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	DeliverableTypes  []string `json:"deliverable_types"`
	BasePrice         uint64   `json:"base_price"`
	EstimatedDuration string   `json:"estimated_duration"`
	Active            bool     `json:"active"`
}

type Campaign struct {
	ID               string `json:"id"`
	SponsorProfileID string `json:"sponsor_profile_id"`
	CreatorProfileID string `json:"creator_profile_id,omitempty"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Status           string `json:"status"`
	StartDate        string `json:"start_date,omitempty"`
	EndDate          string `json:"end_date,omitempty"`
	CompensationType string `json:"compensation_type"`
	CashAmount       uint64 `json:"cash_amount"`
	CreditAmount     uint64 `json:"credit_amount"`
	Notes            string `json:"notes,omitempty"`
}

type Deliverable struct {
	ID                 string `json:"id"`
	CampaignID         string `json:"campaign_id"`
	Type               string `json:"type"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	Deadline           string `json:"deadline,omitempty"`
	VerificationMethod string `json:"verification_method"`
	Status             string `json:"status"`
	CompletedAt        string `json:"completed_at,omitempty"`
}

type Proof struct {
	ID            string         `json:"id"`
	DeliverableID string         `json:"deliverable_id"`
	UserID        string         `json:"user_id"`
	Type          string         `json:"type"`
	Content       string         `json:"content"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	Status        string         `json:"status"`
	ReviewerID    string         `json:"reviewer_id,omitempty"`
	ReviewedAt    string         `json:"reviewed_at,omitempty"`
	ReviewNotes   string         `json:"review_notes,omitempty"`
}

type Credit struct {
	ID               string         `json:"id"`
	SponsorProfileID string         `json:"sponsor_profile_id"`
	CampaignID       string         `json:"campaign_id,omitempty"`
	RecipientUserID  string         `json:"recipient_user_id,omitempty"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Value            uint64         `json:"value"`
	RedemptionRules  map[string]any `json:"redemption_rules,omitempty"`
	Status           string         `json:"status"`
	ExpiresAt        string         `json:"expires_at,omitempty"`
	RedeemedAt       string         `json:"redeemed_at,omitempty"`
}
