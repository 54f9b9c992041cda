package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dentalcare-app/clinic-api/internal/httperr"
	"github.com/dentalcare-app/clinic-api/internal/httpresp"
	"github.com/dentalcare-app/clinic-api/internal/models"
	"github.com/dentalcare-app/clinic-api/internal/store"
)

type ServiceHandler struct {
	store store.Store
}

func NewServiceHandler(st store.Store) *ServiceHandler {
	return &ServiceHandler{store: st}
}

// List returns the price list, cheapest first.
func (h *ServiceHandler) List(c *gin.Context) {
	var spec *models.Specialization
	if raw := c.Query("specialization"); raw != "" {
		s := models.Specialization(raw)
		if !s.Valid() {
			httperr.BadRequest(c, "invalid_specialization", "Unknown specialization.")
			return
		}
		spec = &s
	}

	services, err := h.store.ListServices(c.Request.Context(), spec)
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.List(c, services)
}
