package comment

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"blogapp/internal/middleware"
	"blogapp/internal/web"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	CreateComment(c *gin.Context)
	GetCommentsByBoardID(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// CreateComment takes the form-encoded comment body and redirects
// back to the parent board's detail view.
func (h *handler) CreateComment(c *gin.Context) {
	boardID, ok := boardID(c)
	if !ok {
		return
	}

	var req SaveRequest
	if err := c.ShouldBind(&req); err != nil {
		web.Redirect(c, fmt.Sprintf("/boards/%d", boardID), "comment content is required")
		return
	}

	principal := middleware.Principal(c)
	_, err := h.service.CreateComment(c.Request.Context(), principal, boardID, req)
	switch {
	case err == nil:
		web.Redirect(c, fmt.Sprintf("/boards/%d", boardID), "")
	case errors.Is(err, web.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "board not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save comment"})
	}
}

func (h *handler) GetCommentsByBoardID(c *gin.Context) {
	boardID, ok := boardID(c)
	if !ok {
		return
	}

	comments, err := h.service.GetCommentsByBoardID(c.Request.Context(), boardID)
	if err != nil {
		if errors.Is(err, web.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "board not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get comments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func boardID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid board ID"})
		return 0, false
	}
	return id, true
}
