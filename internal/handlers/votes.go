package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"postly/internal/middleware"
	"postly/internal/models"
)

type VoteHandler struct {
	db *gorm.DB
}

func NewVoteHandler(db *gorm.DB) *VoteHandler {
	return &VoteHandler{db: db}
}

// Vote casts (dir=1) or retracts (dir=0) the caller's like on a post. The dir
// flag is an explicit instruction, not a toggle: casting an existing vote is a
// conflict and retracting a missing one is not found.
//
// The cast path is a single INSERT. When two requests race for the same
// (user, post) pair, the votes table's composite unique index lets exactly one
// through; the other sees a unique violation and answers 409.
func (h *VoteHandler) Vote(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var input models.VoteRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dir must be 0 or 1"})
		return
	}

	var post models.Post
	if err := h.db.First(&post, "id = ?", input.PostID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if *input.Dir == models.VoteCast {
		vote := models.Vote{
			UserID: userID,
			PostID: input.PostID,
		}
		if err := h.db.Create(&vote).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "Already voted on this post"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add vote"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Successfully added vote"})
		return
	}

	result := h.db.Where("user_id = ? AND post_id = ?", userID, input.PostID).Delete(&models.Vote{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vote"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vote does not exist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully deleted vote"})
}
