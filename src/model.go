package src

import (
	"time"

	"github.com/google/uuid"
)

// Message is the persisted record served under /mensagens
type Message struct {
	ID        uuid.UUID `json:"id" gorm:"primary_key;type:varchar(36)"`
	Author    string    `json:"author" gorm:"column:author;not null"`
	Content   string    `json:"content" gorm:"column:content;type:text;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;index"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at"`
	LikeCount int       `json:"likeCount" gorm:"column:like_count;not null"`
}

// TableName keeps the table name stable regardless of gorm's pluralization rules
func (Message) TableName() string {
	return "messages"
}

// MessageRequest body accepted by create and update routes.
// ID is only compared against the path id on update, create always assigns a new one.
type MessageRequest struct {
	ID      *uuid.UUID `json:"id,omitempty"`
	Author  string     `json:"author" validate:"required"`
	Content string     `json:"content" validate:"required"`
}
