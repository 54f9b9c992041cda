package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dentalcare-app/clinic-api/internal/dto"
	"github.com/dentalcare-app/clinic-api/internal/httperr"
	"github.com/dentalcare-app/clinic-api/internal/httpresp"
	"github.com/dentalcare-app/clinic-api/internal/models"
	"github.com/dentalcare-app/clinic-api/internal/store"
	usecase "github.com/dentalcare-app/clinic-api/internal/usecase/appointment"
	doctorusecase "github.com/dentalcare-app/clinic-api/internal/usecase/doctor"
)

type DoctorHandler struct {
	store        store.Store
	availability *usecase.Availability
	stats        *doctorusecase.Stats
}

func NewDoctorHandler(st store.Store, availability *usecase.Availability, stats *doctorusecase.Stats) *DoctorHandler {
	return &DoctorHandler{
		store:        st,
		availability: availability,
		stats:        stats,
	}
}

// List returns the doctor directory, optionally filtered by specialization
// and optionally with each doctor's upcoming open slots embedded.
func (h *DoctorHandler) List(c *gin.Context) {
	var spec *models.Specialization
	if raw := c.Query("specialization"); raw != "" {
		s := models.Specialization(raw)
		if !s.Valid() {
			httperr.BadRequest(c, "invalid_specialization", "Unknown specialization.")
			return
		}
		spec = &s
	}

	includeSchedule, _ := strconv.ParseBool(c.DefaultQuery("include_schedule", "false"))

	doctors, err := h.store.ListDoctors(c.Request.Context(), spec)
	if err != nil {
		httperr.Business(c, err)
		return
	}

	out := make([]dto.DoctorResponse, 0, len(doctors))
	for i := range doctors {
		var slots []time.Time
		if includeSchedule {
			slots, err = h.availability.Execute(c.Request.Context(), doctors[i].ID, 0)
			if err != nil {
				httperr.Business(c, err)
				return
			}
		}
		out = append(out, dto.Doctor(&doctors[i], slots))
	}

	httpresp.List(c, out)
}

func (h *DoctorHandler) Statistics(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	st, err := h.stats.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.OK(c, st)
}
