package model

import "time"

// NotificationType is the severity used to present a notification.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// Notification is an alert owned by a single user.
type Notification struct {
	ID        string           `json:"id" gorm:"size:64;primaryKey"`
	UserID    string           `json:"userId" gorm:"size:64;not null;index"`
	Title     string           `json:"title" gorm:"size:255;not null"`
	Message   string           `json:"message" gorm:"type:text;not null"`
	Type      NotificationType `json:"type" gorm:"type:varchar(20);not null;default:'info'"`
	Read      bool             `json:"read" gorm:"default:false"`
	Link      string           `json:"link,omitempty" gorm:"size:255"`
	CreatedAt time.Time        `json:"createdAt"`
}
