package comment

import (
	"time"

	"blogapp/internal/app/user"
)

// Comment is a reply attached to exactly one board. The author is
// nullable: comment creation accepts an absent principal (see the
// service note).
type Comment struct {
	ID        uint64     `json:"id" gorm:"primaryKey"`
	Content   string     `json:"content" gorm:"type:text;not null"`
	UserID    *uint64    `json:"user_id" gorm:"index"`
	User      *user.User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	BoardID   uint64     `json:"board_id" gorm:"not null;index"`
	CreatedAt time.Time  `json:"created_at"`
}

type SaveRequest struct {
	Content string `form:"content" json:"content" binding:"required"`
}
