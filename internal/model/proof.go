package model

type SubmitProofRequest struct {
	DeliverableID string         `json:"deliverable_id" validate:"required"`
	Type          string         `json:"type" validate:"required"`
	Content       string         `json:"content"`
	Metadata      map[string]any `json:"metadata"`
}

type SubmitProofResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type GetProofRequest struct {
	ID string `json:"id"`
}

type GetProofResponse Proof

type GetListProofRequest struct {
	DeliverableID string `json:"deliverable_id"`
	UserID        string `json:"user_id"`
	Status        string `json:"status"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetListProofResponse struct {
	Proofs []Proof `json:"proofs"`
}

type ReviewProofRequest struct {
	ID     string `json:"id" validate:"required"`
	Action string `json:"action" validate:"required"`
	Notes  string `json:"notes"`
}

type ReviewProofResponse struct{}
