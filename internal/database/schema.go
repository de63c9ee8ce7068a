package database

import "time"

type Conversation struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    string    `gorm:"size:255;not null;index"`
	Title     string    `gorm:"size:255;not null"`
	CreatedAt time.Time `gorm:"index"`

	Messages []Message `gorm:"constraint:OnDelete:CASCADE"`
}

type Message struct {
	ID             uint   `gorm:"primaryKey"`
	ConversationID uint   `gorm:"not null;index"`
	Content        string `gorm:"type:text;not null"`
	IsUser         bool   `gorm:"not null"`
	CreatedAt      time.Time
}
