package entity

import (
	"database/sql"
	"fmt"

	"github.com/localboost/backend/pkg/enum"
	"golang.org/x/exp/slices"
)

type ProofType string

var (
	ProofImage      = enum.New(ProofType("image"))
	ProofLink       = enum.New(ProofType("link"))
	ProofText       = enum.New(ProofType("text"))
	ProofQRScan     = enum.New(ProofType("qr_scan"))
	ProofAttendance = enum.New(ProofType("attendance"))
)

type ProofStatus string

var (
	ProofPending  = enum.New(ProofStatus("pending"))
	ProofApproved = enum.New(ProofStatus("approved"))
	ProofRejected = enum.New(ProofStatus("rejected"))
)

// Approved and rejected are final. A rejected proof is never re-reviewed;
// the creator submits a fresh one instead.
var proofTransitions = map[ProofStatus][]ProofStatus{
	ProofPending:  {ProofApproved, ProofRejected},
	ProofApproved: {},
	ProofRejected: {},
}

func CheckProofTransition(from, to ProofStatus) error {
	targets, ok := proofTransitions[from]
	if !ok {
		return fmt.Errorf("unknown proof status %s", from)
	}

	if !slices.Contains(targets, to) {
		return fmt.Errorf("cannot transition proof from %s to %s", from, to)
	}

	return nil
}

type Proof struct {
	Base

	DeliverableID string      `gorm:"index"`
	Deliverable   Deliverable `gorm:"foreignKey:DeliverableID"`

	UserID string `gorm:"not null"`
	User   User   `gorm:"foreignKey:UserID"`

	Type        ProofType
	Content     string
	Metadata    Map
	Status      ProofStatus
	ReviewerID  sql.NullString
	Reviewer    User `gorm:"foreignKey:ReviewerID"`
	ReviewedAt  sql.NullTime
	ReviewNotes string
}
