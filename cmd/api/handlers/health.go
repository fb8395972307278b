package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erictt/bq-metadata-search/framework/web"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status string `json:"status"`
}

// Health reports whether the metadata store answers.
func Health(store Pinger) web.Handler {
	return func(ctx *gin.Context) error {
		if err := store.Ping(ctx); err != nil {
			return web.NewRequestError(web.ErrServiceUnavailable, http.StatusServiceUnavailable)
		}

		return web.Respond(ctx, HealthResponse{Status: "ok"}, http.StatusOK)
	}
}
