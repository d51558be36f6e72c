package entity

import (
	"database/sql"
	"fmt"

	"github.com/localboost/backend/pkg/enum"
	"golang.org/x/exp/slices"
)

type CampaignStatus string

var (
	CampaignDraft     = enum.New(CampaignStatus("draft"))
	CampaignActive    = enum.New(CampaignStatus("active"))
	CampaignCompleted = enum.New(CampaignStatus("completed"))
	CampaignDisputed  = enum.New(CampaignStatus("disputed"))
	CampaignCancelled = enum.New(CampaignStatus("cancelled"))
)

// campaignTransitions lists the legal moves of the campaign state machine.
// Completed, disputed, and cancelled are terminal: no control path leads out
// of them, even though the data layer would not forbid a manual repair.
var campaignTransitions = map[CampaignStatus][]CampaignStatus{
	CampaignDraft:     {CampaignActive, CampaignCancelled},
	CampaignActive:    {CampaignCompleted, CampaignDisputed, CampaignCancelled},
	CampaignCompleted: {},
	CampaignDisputed:  {},
	CampaignCancelled: {},
}

func CheckCampaignTransition(from, to CampaignStatus) error {
	targets, ok := campaignTransitions[from]
	if !ok {
		return fmt.Errorf("unknown campaign status %s", from)
	}

	if !slices.Contains(targets, to) {
		return fmt.Errorf("cannot transition campaign from %s to %s", from, to)
	}

	return nil
}

type CompensationType string

var (
	CompensationCash   = enum.New(CompensationType("cash"))
	CompensationCredit = enum.New(CompensationType("credit"))
	CompensationHybrid = enum.New(CompensationType("hybrid"))
)

func (c CompensationType) IncludesCash() bool {
	return c == CompensationCash || c == CompensationHybrid
}

func (c CompensationType) IncludesCredit() bool {
	return c == CompensationCredit || c == CompensationHybrid
}

type Campaign struct {
	Base

	SponsorProfileID string         `gorm:"index"`
	SponsorProfile   SponsorProfile `gorm:"foreignKey:SponsorProfileID"`

	// CreatorProfileID is null while the campaign is open.
	CreatorProfileID sql.NullString
	CreatorProfile   CreatorProfile `gorm:"foreignKey:CreatorProfileID"`

	Title            string
	Description      string
	Status           CampaignStatus
	StartDate        sql.NullTime
	EndDate          sql.NullTime
	CompensationType CompensationType
	CashAmount       uint64
	CreditAmount     uint64
	Notes            string
}
