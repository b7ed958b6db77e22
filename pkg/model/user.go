package model

import "time"

// Role represents the role of a LuxeBid account.
type Role string

const (
	// RoleBuyer bids on auctions and pays for won items.
	RoleBuyer Role = "buyer"
	// RoleSeller lists items and fulfils orders.
	RoleSeller Role = "seller"
	// RoleAdmin has access to the admin dashboard and dispute resolution.
	RoleAdmin Role = "admin"
)

// User represents a LuxeBid account as returned by the backend.
// The backend does not send an explicit "admin" role; admin status is
// carried by the staff/superuser flags and folded in by EffectiveRole.
type User struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        Role      `json:"role"`
	IsStaff     bool      `json:"is_staff"`
	IsSuperuser bool      `json:"is_superuser"`
	Verified    bool      `json:"is_verified"`
	JoinedAt    time.Time `json:"date_joined"`
}

// EffectiveRole returns the role used for routing decisions.
// Staff and superuser accounts count as admin regardless of the
// declared role field.
func (u *User) EffectiveRole() Role {
	if u.IsStaff || u.IsSuperuser {
		return RoleAdmin
	}
	return u.Role
}

// IsAdmin reports whether the user may access admin-only sections.
func (u *User) IsAdmin() bool {
	return u.EffectiveRole() == RoleAdmin
}
