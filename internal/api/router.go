// Package api exposes the inference service over HTTP.
package api

import (
	"context"

	"github.com/Veraticus/tastemood/internal/model"
	"github.com/gin-gonic/gin"
)

// Service is the part of the inference service the HTTP layer needs.
type Service interface {
	Classify(ctx context.Context, text string) (model.Prediction, error)
	ListHistory(ctx context.Context) ([]model.SentimentRecord, error)
}

// NewRouter builds the gin engine serving the sentiment API.
func NewRouter(svc Service) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(), gin.Recovery())

	h := &handler{svc: svc}

	r.GET("/health", h.health)
	r.POST("/predict/", h.predict)
	r.GET("/history/", h.history)

	return r
}
