package handlers

import (
	"net/http"

	"campusq/internal/queue"
	"campusq/internal/response"
	"campusq/internal/ws"

	"github.com/gin-gonic/gin"
)

// JoinQueue godoc
// @Summary		Join a queue
// @Description	Appends a visitor to the queue; id and timestamp are generated when not supplied
// @Tags			queue
// @Accept			json
// @Produce		json
// @Param			id		path		string				true	"Queue ID"
// @Param			entry	body		queue.JoinParams	true	"Visitor data"
// @Success		200	{object}	models.Entry			"Entry with assigned position"
// @Failure		400	{object}	response.ErrorResponse	"Missing name or service (VALIDATION_ERROR)"
// @Failure		404	{object}	response.ErrorResponse	"Queue not found (QUEUE_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Server error (DB_ERROR)"
// @Router			/api/queues/{id}/join [post]
func (h *Handler) JoinQueue(c *gin.Context) {
	queueID := c.Param("id")

	var req queue.JoinParams
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Invalid join data",
			Details: err.Error(),
		})
		return
	}

	_, entry, err := h.svc.AddEntry(c.Request.Context(), queueID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.invalidateQueue(c.Request.Context(), queueID)
	h.hub.BroadcastWSMessage(ws.WSMessage{
		EventType: "entry_joined",
		QueueID:   queueID,
		Data: map[string]interface{}{
			"entry_id": entry.ID,
			"position": entry.Position,
		},
	})

	c.JSON(http.StatusOK, entry)
}

type ServeRequest struct {
	ItemID string `json:"itemId" binding:"required"`
}

type ServeResponse struct {
	Success bool        `json:"success"`
	Queue   interface{} `json:"queue"`
}

// ServeEntry godoc
// @Summary		Mark a visitor as served
// @Description	Removes the entry and renumbers the rest; an unknown item id leaves the queue unchanged
// @Tags			queue
// @Accept			json
// @Produce		json
// @Param			id		path		string			true	"Queue ID"
// @Param			item	body		ServeRequest	true	"Entry to remove"
// @Security		BearerAuth
// @Success		200	{object}	ServeResponse			"Updated queue"
// @Failure		400	{object}	response.ErrorResponse	"Missing itemId (VALIDATION_ERROR)"
// @Failure		404	{object}	response.ErrorResponse	"Queue not found (QUEUE_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Server error (DB_ERROR)"
// @Router			/api/queues/{id}/serve [post]
func (h *Handler) ServeEntry(c *gin.Context) {
	queueID := c.Param("id")

	var req ServeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Item ID is required",
			Details: err.Error(),
		})
		return
	}

	q, err := h.svc.RemoveEntry(c.Request.Context(), queueID, req.ItemID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.invalidateQueue(c.Request.Context(), queueID)
	h.hub.BroadcastWSMessage(ws.WSMessage{
		EventType: "entry_served",
		QueueID:   queueID,
		Data: map[string]interface{}{
			"entry_id": req.ItemID,
		},
	})

	c.JSON(http.StatusOK, ServeResponse{Success: true, Queue: q})
}

// Cleanup godoc
// @Summary		Sweep expired queues
// @Description	Deletes queues older than 15 hours; a no-op sweep returns zero
// @Tags			queue
// @Produce		json
// @Success		200	{object}	response.DeletedResponse	"Number of queues removed"
// @Failure		500	{object}	response.ErrorResponse		"Server error (DB_ERROR)"
// @Router			/api/cleanup [post]
func (h *Handler) Cleanup(c *gin.Context) {
	deleted, err := h.svc.SweepExpired(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.DeletedResponse{Success: true, DeletedCount: deleted})
}
