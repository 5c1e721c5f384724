package board

import (
	"errors"
	"net/http"
	"strconv"

	"blogapp/internal/middleware"
	"blogapp/internal/web"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	ListBoards(c *gin.Context)
	GetBoard(c *gin.Context)
	GetSaveForm(c *gin.Context)
	GetUpdateForm(c *gin.Context)
	CreateBoard(c *gin.Context)
	UpdateBoard(c *gin.Context)
	DeleteBoard(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// ListBoards returns one page of the listing, id descending, zero
// based page index from the query string.
func (h *handler) ListBoards(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}

	p, err := h.service.GetBoardPage(c.Request.Context(), page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch boards"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handler) GetBoard(c *gin.Context) {
	id, ok := boardID(c)
	if !ok {
		return
	}

	board, err := h.service.GetBoardByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "board not found"})
		return
	}
	c.JSON(http.StatusOK, board)
}

// GetSaveForm backs the create view; there is nothing to pre-fill.
func (h *handler) GetSaveForm(c *gin.Context) {
	c.JSON(http.StatusOK, SaveRequest{})
}

// GetUpdateForm returns the board for form pre-fill. Read-only, so no
// authorization: mutation is gated on the write path.
func (h *handler) GetUpdateForm(c *gin.Context) {
	h.GetBoard(c)
}

// CreateBoard takes the form-encoded submission and answers in the
// browser-navigation style: a redirect with a message.
func (h *handler) CreateBoard(c *gin.Context) {
	var req SaveRequest
	if err := c.ShouldBind(&req); err != nil {
		web.Redirect(c, "/boards/new", "invalid submission")
		return
	}

	principal := middleware.Principal(c)
	_, err := h.service.CreateBoard(c.Request.Context(), principal, req)
	switch {
	case err == nil:
		web.Redirect(c, "/boards", "board created")
	case errors.Is(err, web.ErrUnauthenticated):
		web.Redirect(c, "/login", "authentication required")
	default:
		web.Redirect(c, "/boards/new", err.Error())
	}
}

// UpdateBoard is the API-style path: JSON in, envelope out.
func (h *handler) UpdateBoard(c *gin.Context) {
	id, ok := boardID(c)
	if !ok {
		return
	}

	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, web.Fail("invalid request body", nil))
		return
	}

	principal := middleware.Principal(c)
	if _, err := h.service.UpdateBoard(c.Request.Context(), principal, id, req); err != nil {
		web.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, web.OK("board updated", nil))
}

func (h *handler) DeleteBoard(c *gin.Context) {
	id, ok := boardID(c)
	if !ok {
		return
	}

	principal := middleware.Principal(c)
	if err := h.service.DeleteBoard(c.Request.Context(), principal, id); err != nil {
		web.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, web.OK("board deleted", nil))
}

func boardID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid board ID"})
		return 0, false
	}
	return id, true
}
