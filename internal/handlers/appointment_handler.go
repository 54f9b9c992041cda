package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/dentalcare-app/clinic-api/internal/domain/appointment"
	"github.com/dentalcare-app/clinic-api/internal/dto"
	"github.com/dentalcare-app/clinic-api/internal/httperr"
	"github.com/dentalcare-app/clinic-api/internal/httpresp"
	"github.com/dentalcare-app/clinic-api/internal/store"
	usecase "github.com/dentalcare-app/clinic-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	store store.Store

	create     *usecase.Create
	confirm    *usecase.Confirm
	cancel     *usecase.Cancel
	complete   *usecase.Complete
	reschedule *usecase.Reschedule
}

func NewAppointmentHandler(
	st store.Store,
	create *usecase.Create,
	confirm *usecase.Confirm,
	cancel *usecase.Cancel,
	complete *usecase.Complete,
	reschedule *usecase.Reschedule,
) *AppointmentHandler {
	return &AppointmentHandler{
		store:      st,
		create:     create,
		confirm:    confirm,
		cancel:     cancel,
		complete:   complete,
		reschedule: reschedule,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	PatientID   uint      `json:"patient_id" binding:"required"`
	DoctorID    uint      `json:"doctor_id" binding:"required"`
	Time        time.Time `json:"appointment_time" binding:"required"`
	ServiceType string    `json:"service_type" binding:"required"`
	Notes       *string   `json:"notes"`
}

type CompleteAppointmentRequest struct {
	Diagnosis       *string `json:"diagnosis"`
	Treatment       *string `json:"treatment"`
	Recommendations *string `json:"recommendations"`
	Notes           *string `json:"notes"`
}

type RescheduleAppointmentRequest struct {
	NewTime time.Time `json:"new_time" binding:"required"`
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	var f domain.Filter

	patientID, ok := parseOptionalID(c, "patient_id")
	if !ok {
		return
	}
	f.PatientID = patientID

	doctorID, ok := parseOptionalID(c, "doctor_id")
	if !ok {
		return
	}
	f.DoctorID = doctorID

	if raw := c.Query("status"); raw != "" {
		status := domain.Status(raw)
		if !status.Valid() {
			httperr.BadRequest(c, "invalid_status", "Unknown appointment status.")
			return
		}
		f.Status = &status
	}

	appointments, err := h.store.ListAppointments(c.Request.Context(), f)
	if err != nil {
		httperr.Business(c, err)
		return
	}

	ctx := c.Request.Context()
	httpresp.List(c, dto.Appointments(appointments, patientNames(ctx, h.store), doctorNames(ctx, h.store)))
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment data.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), usecase.CreateInput{
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		ScheduledAt: req.Time,
		ServiceType: req.ServiceType,
		Notes:       req.Notes,
	})
	if err != nil {
		httperr.Business(c, err)
		return
	}

	ctx := c.Request.Context()
	httpresp.Created(c, dto.Appointment(ap, patientNames(ctx, h.store), doctorNames(ctx, h.store)))
}

// ======================================================
// CONFIRM
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ap, err := h.confirm.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Business(c, err)
		return
	}

	ctx := c.Request.Context()
	httpresp.OK(c, dto.Appointment(ap, patientNames(ctx, h.store), doctorNames(ctx, h.store)))
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	actor := domain.Actor(c.DefaultQuery("cancelled_by", string(domain.ActorPatient)))
	if !actor.Valid() {
		httperr.BadRequest(c, "invalid_actor", "cancelled_by must be patient or clinic.")
		return
	}

	if _, err := h.cancel.Execute(c.Request.Context(), id, actor); err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.Success(c, "Appointment cancelled", gin.H{
		"appointment_id": id,
		"cancelled_by":   actor,
	})
}

// ======================================================
// COMPLETE
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req CompleteAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid completion data.")
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), id, domain.Outcome{
		Diagnosis:       req.Diagnosis,
		Treatment:       req.Treatment,
		Recommendations: req.Recommendations,
		Notes:           req.Notes,
	})
	if err != nil {
		httperr.Business(c, err)
		return
	}

	ctx := c.Request.Context()
	httpresp.OK(c, dto.Appointment(ap, patientNames(ctx, h.store), doctorNames(ctx, h.store)))
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "new_time is required.")
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), id, usecase.RescheduleInput{NewTime: req.NewTime})
	if err != nil {
		httperr.Business(c, err)
		return
	}

	ctx := c.Request.Context()
	httpresp.OK(c, dto.Appointment(ap, patientNames(ctx, h.store), doctorNames(ctx, h.store)))
}
