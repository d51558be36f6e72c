package entity

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/localboost/backend/pkg/enum"
	"golang.org/x/exp/slices"
)

type CreditStatus string

var (
	CreditActive    = enum.New(CreditStatus("active"))
	CreditRedeemed  = enum.New(CreditStatus("redeemed"))
	CreditExpired   = enum.New(CreditStatus("expired"))
	CreditCancelled = enum.New(CreditStatus("cancelled"))
)

var creditTransitions = map[CreditStatus][]CreditStatus{
	CreditActive:    {CreditRedeemed, CreditExpired, CreditCancelled},
	CreditRedeemed:  {},
	CreditExpired:   {},
	CreditCancelled: {},
}

func CheckCreditTransition(from, to CreditStatus) error {
	targets, ok := creditTransitions[from]
	if !ok {
		return fmt.Errorf("unknown credit status %s", from)
	}

	if !slices.Contains(targets, to) {
		return fmt.Errorf("cannot transition credit from %s to %s", from, to)
	}

	return nil
}

type Credit struct {
	Base

	SponsorProfileID string         `gorm:"index"`
	SponsorProfile   SponsorProfile `gorm:"foreignKey:SponsorProfileID"`

	// CampaignID links the credit back to the campaign it was earned on.
	// Manually issued credits leave it null.
	CampaignID sql.NullString
	Campaign   Campaign `gorm:"foreignKey:CampaignID"`

	RecipientUserID sql.NullString `gorm:"index"`
	Recipient       User           `gorm:"foreignKey:RecipientUserID"`

	Title           string
	Description     string
	Value           uint64
	RedemptionRules Map
	Status          CreditStatus
	ExpiresAt       sql.NullTime
	RedeemedAt      sql.NullTime
}

// Expired reports whether the credit's expiry date has passed. The stored
// status only catches up when a caller explicitly expires the credit.
func (c *Credit) Expired(now time.Time) bool {
	return c.ExpiresAt.Valid && now.After(c.ExpiresAt.Time)
}
