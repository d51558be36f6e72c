package model

type CreateDeliverableRequest struct {
	CampaignID         string `json:"campaign_id" validate:"required"`
	Type               string `json:"type" validate:"required"`
	Title              string `json:"title" validate:"required"`
	Description        string `json:"description"`
	Deadline           string `json:"deadline"`
	VerificationMethod string `json:"verification_method" validate:"required"`
}

type CreateDeliverableResponse struct {
	ID string `json:"id"`
}

type GetListDeliverableRequest struct {
	CampaignID string `json:"campaign_id" validate:"required"`
}

type GetListDeliverableResponse struct {
	Deliverables []Deliverable `json:"deliverables"`
}

type UpdateDeliverableRequest struct {
	ID          string `json:"id" validate:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
}

type UpdateDeliverableResponse struct{}

type StartDeliverableRequest struct {
	ID string `json:"id" validate:"required"`
}

type StartDeliverableResponse struct{}
