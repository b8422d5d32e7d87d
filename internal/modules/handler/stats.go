package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tours360/tourgraph/internal/middleware"
	"github.com/tours360/tourgraph/internal/modules/serializer"
	"github.com/tours360/tourgraph/internal/modules/service"
)

type StatsHandler struct {
	svc service.StatsService
}

func NewStatsHandler(s service.StatsService) *StatsHandler {
	return &StatsHandler{svc: s}
}

// GetStats godoc
//
//	@Summary		Dashboard counters
//	@Tags			stats
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Stats}
//	@Router			/api/v1/stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	st, err := h.svc.Summary(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		c.JSON(serializer.ServiceErr(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: st})
}
