package models

import "time"

// Role names used across the app. A user always holds at least one role.
const (
	RoleAdmin        = "Admin"
	RoleCollaborator = "Collaborator"
	RoleUser         = "User"
)

// AvailableRoles is the set an admin can assign from.
var AvailableRoles = []string{RoleAdmin, RoleCollaborator, RoleUser}

type User struct {
	ID           string     `gorm:"primaryKey" json:"id"`
	Email        string     `gorm:"unique;not null" json:"email"`
	PasswordHash string     `json:"-"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Provider     string     `json:"provider"` // "local" or "google"
	Roles        []UserRole `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"roles"`
	CreatedAt    time.Time  `json:"created_at"`
}

// UserRole holds one role membership. Unique per (user, role).
type UserRole struct {
	ID     uint   `gorm:"primaryKey" json:"-"`
	UserID string `gorm:"index;uniqueIndex:idx_user_role;not null" json:"-"`
	Role   string `gorm:"uniqueIndex:idx_user_role;not null" json:"role"`
}

// RoleNames flattens the role rows into plain strings for JWT claims and responses.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Role)
	}
	return names
}

// HasRole reports whether the user holds the given role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r.Role == role {
			return true
		}
	}
	return false
}
