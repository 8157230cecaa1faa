package model

import "time"

// Role is the access level of a user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User represents an employee taking part in the carpooling program.
// Its JSON form is also the shape of the persisted session record.
type User struct {
	ID           string    `json:"id" gorm:"size:64;primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Role         Role      `json:"role" gorm:"type:varchar(20);not null;default:'user'"`
	Organization string    `json:"organization" gorm:"size:255;not null"`
	Location     string    `json:"location" gorm:"size:255"`
	Avatar       string    `json:"avatar,omitempty" gorm:"size:512"`
	CreatedAt    time.Time `json:"createdAt"`
}

// IsAdmin reports whether the user may access administrative views.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
