package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type SubmitRatingRequest struct {
	Value int `json:"value" binding:"required,min=1,max=5"`
}

// SubmitRating records the star value. The device-local write always
// succeeds; a failed remote write is reported without undoing it, so the
// response still carries the accepted value.
func (h *Handlers) SubmitRating(c *gin.Context) {
	var req SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "value must be an integer from 1 to 5"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	err := h.ratings.Submit(ctx, c.GetString("deviceId"), c.GetString("uid"), c.Param("id"), req.Value, time.Now().Unix())
	if err != nil {
		c.JSON(http.StatusAccepted, gin.H{
			"value":   req.Value,
			"warning": "rating saved on this device but not persisted",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"value": req.Value, "message": "rating saved"})
}

func (h *Handlers) GetUserRating(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	value, ok := h.ratings.UserRating(ctx, c.GetString("deviceId"), c.GetString("uid"), c.Param("id"))
	if !ok {
		c.JSON(http.StatusOK, gin.H{"rated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rated": true, "value": value})
}

func (h *Handlers) GetPostAverage(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	c.JSON(http.StatusOK, h.ratings.PostAverage(ctx, c.Param("id")))
}
