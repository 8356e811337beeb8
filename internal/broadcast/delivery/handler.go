package delivery

import (
	"errors"
	"net/http"
	"strconv"

	broadcastdto "sellerapp-backend/internal/broadcast/dto"
	"sellerapp-backend/internal/broadcast/usecase"

	"github.com/gin-gonic/gin"
)

// BroadcastHandler handles the admin broadcast dashboard HTTP requests
type BroadcastHandler struct {
	broadcastUsecase usecase.BroadcastUsecase
}

// NewBroadcastHandler creates a new BroadcastHandler
func NewBroadcastHandler(broadcastUsecase usecase.BroadcastUsecase) *BroadcastHandler {
	return &BroadcastHandler{
		broadcastUsecase: broadcastUsecase,
	}
}

// Send dispatches (or dry-runs) an admin broadcast
// POST /admin/fcm-management/api/send
func (h *BroadcastHandler) Send(c *gin.Context) {
	var req broadcastdto.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
			"mode":    h.broadcastUsecase.Mode(),
		})
		return
	}

	sender := broadcastdto.Sender{
		ID:    c.GetString("principalID"),
		Email: c.GetString("principalEmail"),
	}

	resp, err := h.broadcastUsecase.Send(c.Request.Context(), sender, &req)
	if err != nil {
		var validationErr *usecase.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   validationErr.Msg,
				"mode":    validationErr.Mode,
			})
			return
		}

		var dispatchErr *usecase.DispatchError
		if errors.As(err, &dispatchErr) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success":            false,
				"mode":               dispatchErr.Mode,
				"error":              dispatchErr.Error(),
				"targetTokenCount":   dispatchErr.TargetTokenCount,
				"originalTokenCount": dispatchErr.OriginalTokenCount,
				"fallbackAdvice":     dispatchErr.FallbackAdvice,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"mode":    "error",
			"error":   "Failed to process notification request",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Tokens lists every registered push token with its owner
// GET /admin/fcm-management/api/tokens
func (h *BroadcastHandler) Tokens(c *gin.Context) {
	resp, err := h.broadcastUsecase.Tokens()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch FCM tokens",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// History returns paginated delivery records, newest first
// GET /admin/fcm-management/api/history?page&limit&targeting&status
func (h *BroadcastHandler) History(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	resp, err := h.broadcastUsecase.History(broadcastdto.HistoryQuery{
		Page:      page,
		Limit:     limit,
		Targeting: c.Query("targeting"),
		Status:    c.Query("status"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch notification history",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Stats returns aggregate token and notification statistics
// GET /admin/fcm-management/api/stats
func (h *BroadcastHandler) Stats(c *gin.Context) {
	resp, err := h.broadcastUsecase.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch FCM statistics",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}
