package handlers

import (
	"encoding/json"
	"net/http"

	"campusq/internal/queue"
	"campusq/internal/response"
	"campusq/internal/ws"

	"github.com/gin-gonic/gin"
)

// CreateQueue godoc
// @Summary		Create a queue
// @Description	Creates a queue for a service category; services are copied from the category catalog
// @Tags			queues
// @Accept			json
// @Produce		json
// @Param			queue	body		queue.CreateParams	true	"Queue data"
// @Security		BearerAuth
// @Success		201	{object}	models.Queue			"Created queue"
// @Failure		400	{object}	response.ErrorResponse	"Missing title or unknown category (VALIDATION_ERROR)"
// @Failure		500	{object}	response.ErrorResponse	"Server error (DB_ERROR)"
// @Router			/api/queues [post]
func (h *Handler) CreateQueue(c *gin.Context) {
	var req queue.CreateParams
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Invalid queue data",
			Details: err.Error(),
		})
		return
	}

	q, err := h.svc.CreateQueue(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, q)
}

// GetQueue godoc
// @Summary		Fetch a queue
// @Description	Returns the queue with its entries in stored order
// @Tags			queues
// @Produce		json
// @Param			id	path		string	true	"Queue ID"
// @Success		200	{object}	models.Queue			"Queue"
// @Failure		404	{object}	response.ErrorResponse	"Queue not found (QUEUE_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Server error (DB_ERROR)"
// @Router			/api/queues/{id} [get]
func (h *Handler) GetQueue(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	if data, ok := h.cachedQueue(ctx, id); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", data)
		return
	}

	q, err := h.svc.GetQueue(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	if data, err := json.Marshal(q); err == nil {
		h.cacheQueue(ctx, id, data)
	}
	c.JSON(http.StatusOK, q)
}

// ListQueues godoc
// @Summary		List queues
// @Description	Returns all queues with their entries, order unspecified
// @Tags			queues
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}		models.Queue			"Queues"
// @Failure		500	{object}	response.ErrorResponse	"Server error (DB_ERROR)"
// @Router			/api/queues [get]
func (h *Handler) ListQueues(c *gin.Context) {
	queues, err := h.svc.ListQueues(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, queues)
}

// PatchQueue godoc
// @Summary		Update a queue
// @Description	Applies a partial field overwrite; positions are reassigned when items are replaced
// @Tags			queues
// @Accept			json
// @Produce		json
// @Param			id		path		string		true	"Queue ID"
// @Param			patch	body		queue.Patch	true	"Fields to overwrite"
// @Security		BearerAuth
// @Success		200	{object}	models.Queue			"Updated queue"
// @Failure		400	{object}	response.ErrorResponse	"Malformed body (VALIDATION_ERROR)"
// @Failure		404	{object}	response.ErrorResponse	"Queue not found (QUEUE_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Server error (DB_ERROR)"
// @Router			/api/queues/{id} [patch]
func (h *Handler) PatchQueue(c *gin.Context) {
	id := c.Param("id")

	var patch queue.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Invalid patch body",
			Details: err.Error(),
		})
		return
	}

	q, err := h.svc.UpdateQueue(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	h.invalidateQueue(c.Request.Context(), id)
	h.hub.BroadcastWSMessage(ws.WSMessage{
		EventType: "queue_updated",
		QueueID:   id,
	})

	c.JSON(http.StatusOK, q)
}

// DeleteQueue godoc
// @Summary		Close a queue
// @Description	Deletes the queue and all its entries
// @Tags			queues
// @Produce		json
// @Param			id	path		string	true	"Queue ID"
// @Security		BearerAuth
// @Success		200	{object}	response.SuccessResponse	"Queue closed"
// @Failure		404	{object}	response.ErrorResponse		"Queue not found (QUEUE_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse		"Server error (DB_ERROR)"
// @Router			/api/queues/{id} [delete]
func (h *Handler) DeleteQueue(c *gin.Context) {
	id := c.Param("id")

	existed, err := h.svc.DeleteQueue(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !existed {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "QUEUE_NOT_FOUND",
			Message: "Queue not found",
		})
		return
	}

	h.invalidateQueue(c.Request.Context(), id)
	h.hub.BroadcastWSMessage(ws.WSMessage{
		EventType: "queue_closed",
		QueueID:   id,
	})

	c.JSON(http.StatusOK, response.SuccessResponse{Message: "Queue closed"})
}
