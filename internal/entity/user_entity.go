package entity

import "time"

type UserRole string
type UserStatus string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleViewer   UserRole = "viewer"
	UserRoleUploader UserRole = "uploader"
	UserRoleApprover UserRole = "approver"
	UserRoleCustom   UserRole = "custom"

	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

// Permission flags granted to a user
const (
	PermissionUpload  = "upload"
	PermissionChat    = "chat"
	PermissionAdmin   = "admin"
	PermissionApprove = "approve"
)

type User struct {
	Id          string
	Email       string
	Name        string
	Role        UserRole
	Title       string
	AvatarURL   string
	LastActive  time.Time
	CanUseAI    bool
	Permissions []string
	JoinedAt    time.Time
	Status      UserStatus
}

func (u *User) HasPermission(permission string) bool {
	for _, p := range u.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers never share the permission slice.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Permissions = append([]string(nil), u.Permissions...)
	return &c
}

func IsValidRole(role UserRole) bool {
	switch role {
	case UserRoleAdmin, UserRoleViewer, UserRoleUploader, UserRoleApprover, UserRoleCustom:
		return true
	}
	return false
}
