package models

import "time"

type Post struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `json:"content"`
	Published bool      `gorm:"default:true" json:"published"`
	UserID    int       `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
}

type CreatePostRequest struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content"`
	Published *bool  `json:"published"` // nil means default true
}

type UpdatePostRequest struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content"`
	Published *bool  `json:"published"`
}

// PostResponse pairs a post with its vote count for list and detail reads.
type PostResponse struct {
	Post  Post  `json:"post"`
	Votes int64 `json:"votes"`
}
