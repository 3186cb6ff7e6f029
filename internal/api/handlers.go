package api

import (
	"errors"
	"net/http"

	"github.com/Veraticus/tastemood/internal/common"
	"github.com/Veraticus/tastemood/internal/inference"
	"github.com/gin-gonic/gin"
)

type handler struct {
	svc Service
}

type predictRequest struct {
	Text *string `json:"text"`
}

func (h *handler) predict(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": inference.MsgInvalidRequest})
		return
	}

	prediction, err := h.svc.Classify(c.Request.Context(), *req.Text)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, prediction)
}

func (h *handler) history(c *gin.Context) {
	records, err := h.svc.ListHistory(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sentiments": records})
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// writeError maps the service error taxonomy onto HTTP status codes.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, common.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, common.ErrClassification):
		status = http.StatusUnprocessableEntity
	}

	_ = c.Error(err)
	c.JSON(status, gin.H{"message": common.UserMessage(err, "Internal server error.")})
}
