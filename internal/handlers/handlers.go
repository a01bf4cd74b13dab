package handlers

import (
	"time"

	"gorm.io/gorm"
)

// Handler combines all handler types
type Handler struct {
	Auth *AuthHandler
	Post *PostHandler
	Vote *VoteHandler
	User *UserHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(db *gorm.DB, jwtSecret string, tokenTTL time.Duration) *Handler {
	return &Handler{
		Auth: NewAuthHandler(db, jwtSecret, tokenTTL),
		Post: NewPostHandler(db),
		Vote: NewVoteHandler(db),
		User: NewUserHandler(db),
	}
}
