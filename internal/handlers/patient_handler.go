package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dentalcare-app/clinic-api/internal/httperr"
	"github.com/dentalcare-app/clinic-api/internal/httpresp"
	"github.com/dentalcare-app/clinic-api/internal/store"
	usecase "github.com/dentalcare-app/clinic-api/internal/usecase/patient"
)

type PatientHandler struct {
	store   store.Store
	history *usecase.History
}

func NewPatientHandler(st store.Store, history *usecase.History) *PatientHandler {
	return &PatientHandler{store: st, history: history}
}

func (h *PatientHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	p, err := h.store.PatientByID(c.Request.Context(), id)
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.OK(c, p)
}

func (h *PatientHandler) History(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	out, err := h.history.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.OK(c, out)
}
