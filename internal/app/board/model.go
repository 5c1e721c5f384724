package board

import (
	"time"

	"blogapp/internal/app/user"
)

// Board is a blog post, owned by exactly one user. Only the owner may
// update or delete it; anyone may read it.
type Board struct {
	ID        uint64    `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	UserID    uint64    `json:"user_id" gorm:"not null;index"`
	User      user.User `json:"user" gorm:"foreignKey:UserID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SaveRequest carries board fields for create (form-encoded) and
// update (JSON). The owner is never part of the payload: it is always
// re-asserted from the current principal.
type SaveRequest struct {
	Title   string `form:"title" json:"title" validate:"required,min=3,max=100"`
	Content string `form:"content" json:"content" validate:"required"`
}

// Page is one slice of the board listing plus its metadata. Page
// indexes are zero-based and the size is fixed.
type Page struct {
	Boards     []*Board `json:"boards"`
	Page       int      `json:"page"`
	Size       int      `json:"size"`
	Total      int64    `json:"total"`
	TotalPages int64    `json:"totalPages"`
	HasNext    bool     `json:"hasNext"`
	HasPrev    bool     `json:"hasPrev"`
}
