package model

import "time"

// Message is a direct message between two users, optionally about a ride.
type Message struct {
	ID         string    `json:"id" gorm:"size:64;primaryKey"`
	SenderID   string    `json:"senderId" gorm:"size:64;not null;index"`
	ReceiverID string    `json:"receiverId" gorm:"size:64;not null;index"`
	RideID     string    `json:"rideId,omitempty" gorm:"size:64;index"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	Read       bool      `json:"read" gorm:"default:false"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Involves reports whether userID is the sender or the receiver.
func (m *Message) Involves(userID string) bool {
	return m.SenderID == userID || m.ReceiverID == userID
}
