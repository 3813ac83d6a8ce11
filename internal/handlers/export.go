package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode"

	"campusq/internal/response"

	"github.com/gin-gonic/gin"
)

// ExportRecord is one roster row in the export surface.
type ExportRecord struct {
	Position  int    `json:"position"`
	Name      string `json:"name"`
	Service   string `json:"service"`
	Details   string `json:"details"`
	Timestamp string `json:"timestamp"`
}

// sanitizeField strips control characters from free-text fields so they
// cannot corrupt the delimited output.
func sanitizeField(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// ExportQueue godoc
// @Summary		Export the queue roster
// @Description	Renders the entry list as CSV (default) or JSON
// @Tags			queues
// @Produce		json
// @Param			id		path	string	true	"Queue ID"
// @Param			format	query	string	false	"csv or json"	default(csv)
// @Security		BearerAuth
// @Success		200	{array}		ExportRecord			"Roster"
// @Failure		400	{object}	response.ErrorResponse	"Unknown format (VALIDATION_ERROR)"
// @Failure		404	{object}	response.ErrorResponse	"Queue not found (QUEUE_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Server error (DB_ERROR)"
// @Router			/api/queues/{id}/export [get]
func (h *Handler) ExportQueue(c *gin.Context) {
	id := c.Param("id")
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "json" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Format must be csv or json",
		})
		return
	}

	q, err := h.svc.GetQueue(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	records := make([]ExportRecord, 0, len(q.Items))
	for _, item := range q.Items {
		records = append(records, ExportRecord{
			Position:  item.Position,
			Name:      sanitizeField(item.Name),
			Service:   sanitizeField(item.Service),
			Details:   sanitizeField(item.Details),
			Timestamp: time.UnixMilli(item.Timestamp).Format("2006-01-02 15:04:05"),
		})
	}

	// The filename ends up inside a quoted Content-Disposition value, so
	// double quotes must not survive sanitization.
	safeTitle := strings.ReplaceAll(sanitizeField(q.Title), `"`, "")
	filename := fmt.Sprintf("queue-%s-%s", safeTitle, time.Now().Format("2006-01-02"))

	if format == "json" {
		c.Header("Content-Disposition", `attachment; filename="`+filename+`.json"`)
		c.JSON(http.StatusOK, records)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`.csv"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	w.Write([]string{"Position", "Name", "Service", "Details", "Timestamp"})
	for _, rec := range records {
		w.Write([]string{strconv.Itoa(rec.Position), rec.Name, rec.Service, rec.Details, rec.Timestamp})
	}
	w.Flush()
}
