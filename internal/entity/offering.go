package entity

type Offering struct {
	Base

	CreatorProfileID string         `gorm:"index"`
	CreatorProfile   CreatorProfile `gorm:"foreignKey:CreatorProfileID"`

	Title             string
	Description       string
	DeliverableTypes  Array[string]
	BasePrice         uint64
	EstimatedDuration string
	Active            bool `gorm:"default:true"`
}
