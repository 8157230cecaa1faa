package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ID prefixes for generated identifiers.
const (
	UserIDPrefix         = "user"
	RideIDPrefix         = "ride"
	RequestIDPrefix      = "request"
	MessageIDPrefix      = "message"
	NotificationIDPrefix = "notification"
)

// NewID returns a fresh identifier such as "ride-5b0c...".
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// BeforeCreate sets the ID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = NewID(UserIDPrefix)
	}
	return nil
}

// BeforeCreate sets the ID before creating the record.
func (r *Ride) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = NewID(RideIDPrefix)
	}
	return nil
}

// BeforeCreate sets the ID before creating the record.
func (rr *RideRequest) BeforeCreate(tx *gorm.DB) error {
	if rr.ID == "" {
		rr.ID = NewID(RequestIDPrefix)
	}
	return nil
}

// BeforeCreate sets the ID before creating the record.
func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = NewID(MessageIDPrefix)
	}
	return nil
}

// BeforeCreate sets the ID before creating the record.
func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = NewID(NotificationIDPrefix)
	}
	return nil
}
