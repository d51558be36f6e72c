package entity

import "github.com/localboost/backend/pkg/enum"

type PaymentMethodType string

var (
	PaymentTraditional = enum.New(PaymentMethodType("traditional"))
	PaymentWallet      = enum.New(PaymentMethodType("wallet"))
	PaymentBoth        = enum.New(PaymentMethodType("both"))
)

type SponsorProfile struct {
	Base

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	BusinessName  string
	Industry      string
	Description   string
	Location      string
	WebsiteURL    string
	LogoURL       string
	BudgetMin     uint64
	BudgetMax     uint64
	PaymentMethod PaymentMethodType
	Active        bool `gorm:"default:true"`
}
