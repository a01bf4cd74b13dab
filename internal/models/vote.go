package models

import "time"

// Vote marks that a user has liked a post. The composite unique index is what
// makes concurrent casts safe: the database admits at most one row per
// (user, post) pair and the loser of a race sees a unique violation.
type Vote struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	UserID    int       `gorm:"not null;uniqueIndex:idx_votes_user_post" json:"user_id"`
	PostID    int       `gorm:"not null;uniqueIndex:idx_votes_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
	Post      Post      `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

// VoteDir values accepted by the vote endpoint. This is the literal contract:
// an explicit cast/retract flag, not a state flip.
const (
	VoteRetract = 0
	VoteCast    = 1
)

type VoteRequest struct {
	PostID int  `json:"post_id" binding:"required"`
	Dir    *int `json:"dir" binding:"required,oneof=0 1"`
}
