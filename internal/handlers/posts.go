package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"postly/internal/middleware"
	"postly/internal/models"
)

type PostHandler struct {
	db *gorm.DB
}

func NewPostHandler(db *gorm.DB) *PostHandler {
	return &PostHandler{db: db}
}

func (h *PostHandler) countVotes(postID int) int64 {
	var votes int64
	h.db.Model(&models.Vote{}).Where("post_id = ?", postID).Count(&votes)
	return votes
}

// GetPosts lists posts newest-first with their vote counts. Supports limit,
// skip and a title substring search.
func (h *PostHandler) GetPosts(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skip"})
		return
	}

	query := h.db.Preload("User").Order("created_at desc").Limit(limit).Offset(skip)
	if search := c.Query("search"); search != "" {
		query = query.Where("title ILIKE ?", "%"+search+"%")
	}

	var posts []models.Post
	if err := query.Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	responses := make([]models.PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, models.PostResponse{
			Post:  post,
			Votes: h.countVotes(post.ID),
		})
	}

	c.JSON(http.StatusOK, responses)
}

// GetPost returns a single post by ID
func (h *PostHandler) GetPost(c *gin.Context) {
	postID := c.Param("id")

	var post models.Post
	if err := h.db.Preload("User").First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, models.PostResponse{
		Post:  post,
		Votes: h.countVotes(post.ID),
	})
}

// CreatePost creates a new post owned by the caller.
func (h *PostHandler) CreatePost(c *gin.Context) {
	var input models.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	published := true
	if input.Published != nil {
		published = *input.Published
	}

	post := models.Post{
		Title:     input.Title,
		Content:   input.Content,
		Published: published,
		UserID:    userID,
	}

	if err := h.db.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	h.db.Preload("User").First(&post, post.ID)

	c.JSON(http.StatusCreated, post)
}

// UpdatePost replaces a post's title, content and published flag. Only the
// owner may do this.
func (h *PostHandler) UpdatePost(c *gin.Context) {
	postID := c.Param("id")

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var input models.UpdatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var post models.Post
	if err := h.db.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if post.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to perform requested action"})
		return
	}

	post.Title = input.Title
	post.Content = input.Content
	if input.Published != nil {
		post.Published = *input.Published
	}

	if err := h.db.Save(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	h.db.Preload("User").First(&post, post.ID)

	c.JSON(http.StatusOK, post)
}

// DeletePost deletes a post. Only the owner may do this; the post's votes go
// with it via the cascade.
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID := c.Param("id")

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var post models.Post
	if err := h.db.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if post.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to perform requested action"})
		return
	}

	if err := h.db.Delete(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	c.Status(http.StatusNoContent)
}
