package entity

import "time"

type RefreshToken struct {
	UserID string
	User   User `gorm:"foreignKey:UserID"`

	Family     string `gorm:"primaryKey"`
	Counter    uint64
	Expiration time.Time
}
