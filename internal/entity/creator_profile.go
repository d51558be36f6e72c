package entity

type CreatorProfile struct {
	Base

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	DisplayName        string
	Bio                string
	Specialties        Array[string]
	Communities        Array[string]
	PortfolioURL       string
	SocialLinks        Map
	ReputationScore    uint64
	CompletedCampaigns uint64
	PayoutMethod       PaymentMethodType

	// WalletAddress is an opaque string. It is never validated or
	// transacted against.
	WalletAddress string

	Active bool `gorm:"default:true"`
}
