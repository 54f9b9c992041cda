package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dentalcare-app/clinic-api/internal/httperr"
	"github.com/dentalcare-app/clinic-api/internal/httpresp"
	"github.com/dentalcare-app/clinic-api/internal/store"
)

type StatsHandler struct {
	store store.Store
}

func NewStatsHandler(st store.Store) *StatsHandler {
	return &StatsHandler{store: st}
}

func (h *StatsHandler) Get(c *gin.Context) {
	counts, err := h.store.SystemCounts(c.Request.Context())
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.OK(c, counts)
}
