package entity

import (
	"database/sql"
	"fmt"

	"github.com/localboost/backend/pkg/enum"
	"golang.org/x/exp/slices"
)

type DeliverableType string

var (
	DeliverableEventAppearance = enum.New(DeliverableType("event_appearance"))
	DeliverableContentPost     = enum.New(DeliverableType("content_post"))
	DeliverableCheckIn         = enum.New(DeliverableType("check_in"))
	DeliverableCustom          = enum.New(DeliverableType("custom"))
)

type VerificationMethodType string

var (
	VerificationManualUpload   = enum.New(VerificationMethodType("manual_upload"))
	VerificationQRCheckin      = enum.New(VerificationMethodType("qr_checkin"))
	VerificationLinkSubmission = enum.New(VerificationMethodType("link_submission"))
)

type DeliverableStatus string

var (
	DeliverablePending    = enum.New(DeliverableStatus("pending"))
	DeliverableInProgress = enum.New(DeliverableStatus("in_progress"))
	DeliverableSubmitted  = enum.New(DeliverableStatus("submitted"))
	DeliverableVerified   = enum.New(DeliverableStatus("verified"))
	DeliverableRejected   = enum.New(DeliverableStatus("rejected"))
)

// The rejected branch returns to pending rather than terminating, so a
// creator can resubmit after a rejection.
var deliverableTransitions = map[DeliverableStatus][]DeliverableStatus{
	DeliverablePending:    {DeliverableInProgress, DeliverableSubmitted},
	DeliverableInProgress: {DeliverableSubmitted},
	DeliverableSubmitted:  {DeliverableVerified, DeliverableRejected, DeliverablePending},
	DeliverableVerified:   {},
	DeliverableRejected:   {DeliverablePending, DeliverableSubmitted},
}

func CheckDeliverableTransition(from, to DeliverableStatus) error {
	targets, ok := deliverableTransitions[from]
	if !ok {
		return fmt.Errorf("unknown deliverable status %s", from)
	}

	if !slices.Contains(targets, to) {
		return fmt.Errorf("cannot transition deliverable from %s to %s", from, to)
	}

	return nil
}

// SubmittableStatuses are the deliverable states accepting a new proof.
var SubmittableStatuses = []DeliverableStatus{
	DeliverablePending, DeliverableInProgress, DeliverableRejected,
}

type Deliverable struct {
	Base

	CampaignID string   `gorm:"index"`
	Campaign   Campaign `gorm:"foreignKey:CampaignID"`

	Type               DeliverableType
	Title              string
	Description        string
	Deadline           sql.NullTime
	VerificationMethod VerificationMethodType
	Status             DeliverableStatus
	CompletedAt        sql.NullTime
}
