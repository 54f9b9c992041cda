package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dentalcare-app/clinic-api/internal/dto"
	"github.com/dentalcare-app/clinic-api/internal/httperr"
	"github.com/dentalcare-app/clinic-api/internal/httpresp"
	"github.com/dentalcare-app/clinic-api/internal/store"
	usecase "github.com/dentalcare-app/clinic-api/internal/usecase/review"
)

type ReviewHandler struct {
	store  store.Store
	create *usecase.Create
}

func NewReviewHandler(st store.Store, create *usecase.Create) *ReviewHandler {
	return &ReviewHandler{store: st, create: create}
}

type CreateReviewRequest struct {
	PatientID     uint    `json:"patient_id" binding:"required"`
	DoctorID      *uint   `json:"doctor_id"`
	AppointmentID uint    `json:"appointment_id" binding:"required"`
	Rating        int     `json:"rating" binding:"required,min=1,max=5"`
	Comment       *string `json:"comment" binding:"omitempty,max=1000"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid review data, rating must be 1-5.")
		return
	}

	rv, err := h.create.Execute(c.Request.Context(), usecase.CreateInput{
		PatientID:     req.PatientID,
		DoctorID:      req.DoctorID,
		AppointmentID: req.AppointmentID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.Created(c, dto.Review(rv, patientNames(c.Request.Context(), h.store)))
}

// ListByDoctor returns a doctor's reviews in insertion order, oldest first.
func (h *ReviewHandler) ListByDoctor(c *gin.Context) {
	doctorID, ok := parseOptionalID(c, "doctor_id")
	if !ok {
		return
	}
	if doctorID == nil {
		httperr.BadRequest(c, "missing_doctor_id", "doctor_id query parameter is required.")
		return
	}

	reviews, err := h.store.ReviewsByDoctor(c.Request.Context(), *doctorID)
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.List(c, dto.Reviews(reviews, patientNames(c.Request.Context(), h.store)))
}
