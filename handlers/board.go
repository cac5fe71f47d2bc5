// File: handlers/board.go
package handlers

import (
	"net/http"
	"strconv"

	"praxia/models"
	"praxia/services/board"

	"github.com/gin-gonic/gin"
)

// BoardHandler exposes the social board endpoints.
type BoardHandler struct {
	Service board.BoardService
}

// NewBoardHandler constructs a BoardHandler.
func NewBoardHandler(svc board.BoardService) *BoardHandler {
	return &BoardHandler{Service: svc}
}

// ListPostsHandler handles GET /board/posts.
func (h *BoardHandler) ListPostsHandler(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "0"), 10, 64)
	posts, err := h.Service.ListPosts(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// CreatePostHandler handles POST /board/posts.
func (h *BoardHandler) CreatePostHandler(c *gin.Context) {
	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	post, err := h.Service.CreatePost(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, post)
}

// DeletePostHandler handles DELETE /board/posts/:id.
func (h *BoardHandler) DeletePostHandler(c *gin.Context) {
	if err := h.Service.DeletePost(c.Request.Context(), c.GetString("userID"), c.Param("id")); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}
