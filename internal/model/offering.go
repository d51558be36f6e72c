package model

type CreateOfferingRequest struct {
	CreatorProfileID  string   `json:"creator_profile_id" validate:"required"`
	Title             string   `json:"title" validate:"required"`
	Description       string   `json:"description"`
	DeliverableTypes  []string `json:"deliverable_types"`
	BasePrice         uint64   `json:"base_price"`
	EstimatedDuration string   `json:"estimated_duration"`
}

type CreateOfferingResponse struct {
	ID string `json:"id"`
}

type GetOfferingRequest struct {
	ID string `json:"id"`
}

type GetOfferingResponse Offering

type GetListOfferingRequest struct {
	CreatorProfileID string `json:"creator_profile_id"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetListOfferingResponse struct {
	Offerings []Offering `json:"offerings"`
}

type UpdateOfferingRequest struct {
	ID                string   `json:"id" validate:"required"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	DeliverableTypes  []string `json:"deliverable_types"`
	BasePrice         uint64   `json:"base_price"`
	EstimatedDuration string   `json:"estimated_duration"`
}

type UpdateOfferingResponse struct{}

type DeleteOfferingRequest struct {
	ID string `json:"id" validate:"required"`
}

type DeleteOfferingResponse struct{}
