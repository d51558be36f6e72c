package entity

import "github.com/localboost/backend/pkg/enum"

type GlobalRole string

var (
	RoleSuperAdmin = enum.New(GlobalRole("super_admin"))
	RoleAdmin      = enum.New(GlobalRole("admin"))
	RoleUser       = enum.New(GlobalRole("user"))
)

var GlobalAdminRoles = []GlobalRole{RoleSuperAdmin, RoleAdmin}

type User struct {
	Base

	// ExternalID is the stable identifier the mini-app identity provider
	// assigns to this user.
	ExternalID  string `gorm:"unique"`
	Username    string
	DisplayName string
	AvatarURL   string
	Role        GlobalRole `gorm:"default:user"`
}
