package dto

import (
	"time"

	"github.com/dentalcare-app/clinic-api/internal/models"
)

// ======================================================
// RESPONSE SHAPES
// ======================================================

// Appointment carries the flat record plus the display names of both
// parties, as the clients render lists without extra lookups.
type AppointmentResponse struct {
	ID uint `json:"id"`

	PatientID   uint   `json:"patient_id"`
	PatientName string `json:"patient_name"`
	DoctorID    uint   `json:"doctor_id"`
	DoctorName  string `json:"doctor_name"`

	ScheduledAt time.Time `json:"appointment_time"`
	ServiceType string    `json:"service_type"`
	Status      string    `json:"status"`

	Notes           *string `json:"notes"`
	Diagnosis       *string `json:"diagnosis"`
	Treatment       *string `json:"treatment"`
	Recommendations *string `json:"recommendations"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DoctorResponse struct {
	ID uint `json:"id"`

	FirstName      string                `json:"first_name"`
	LastName       string                `json:"last_name"`
	Specialization models.Specialization `json:"specialization"`

	ExperienceYears int      `json:"experience_years"`
	PhotoURL        *string  `json:"photo_url"`
	Rating          *float64 `json:"rating"`
	ReviewsCount    *int     `json:"reviews_count"`

	// Empty unless the caller asked for the schedule.
	AvailableSlots []time.Time `json:"available_slots"`
}

type ResultResponse struct {
	ID uint `json:"id"`

	PatientID uint `json:"patient_id"`
	DoctorID  uint `json:"doctor_id"`

	DoctorName string `json:"doctor_name"`

	ResultType  models.ResultType `json:"result_type"`
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	FileURL     string            `json:"file_url"`

	CreatedAt time.Time `json:"created_at"`
}

type ReviewResponse struct {
	ID uint `json:"id"`

	PatientID     uint   `json:"patient_id"`
	PatientName   string `json:"patient_name"`
	DoctorID      uint   `json:"doctor_id"`
	AppointmentID uint   `json:"appointment_id"`

	Rating  int     `json:"rating"`
	Comment *string `json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}

// ======================================================
// CONVERTERS
// ======================================================

type NameLookup func(id uint) string

func Appointment(ap *models.Appointment, patientName, doctorName NameLookup) AppointmentResponse {
	return AppointmentResponse{
		ID:              ap.ID,
		PatientID:       ap.PatientID,
		PatientName:     patientName(ap.PatientID),
		DoctorID:        ap.DoctorID,
		DoctorName:      doctorName(ap.DoctorID),
		ScheduledAt:     ap.ScheduledAt,
		ServiceType:     ap.ServiceType,
		Status:          ap.Status,
		Notes:           ap.Notes,
		Diagnosis:       ap.Diagnosis,
		Treatment:       ap.Treatment,
		Recommendations: ap.Recommendations,
		CreatedAt:       ap.CreatedAt,
		UpdatedAt:       ap.UpdatedAt,
	}
}

func Appointments(aps []models.Appointment, patientName, doctorName NameLookup) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(aps))
	for i := range aps {
		out = append(out, Appointment(&aps[i], patientName, doctorName))
	}
	return out
}

func Doctor(d *models.Doctor, slots []time.Time) DoctorResponse {
	if slots == nil {
		slots = []time.Time{}
	}
	return DoctorResponse{
		ID:              d.ID,
		FirstName:       d.FirstName,
		LastName:        d.LastName,
		Specialization:  d.Specialization,
		ExperienceYears: d.ExperienceYears,
		PhotoURL:        d.PhotoURL,
		Rating:          d.Rating,
		ReviewsCount:    d.ReviewsCount,
		AvailableSlots:  slots,
	}
}

func Result(r *models.MedicalResult, doctorName NameLookup) ResultResponse {
	return ResultResponse{
		ID:          r.ID,
		PatientID:   r.PatientID,
		DoctorID:    r.DoctorID,
		DoctorName:  doctorName(r.DoctorID),
		ResultType:  r.ResultType,
		Title:       r.Title,
		Description: r.Description,
		FileURL:     r.FileURL,
		CreatedAt:   r.CreatedAt,
	}
}

func Results(rs []models.MedicalResult, doctorName NameLookup) []ResultResponse {
	out := make([]ResultResponse, 0, len(rs))
	for i := range rs {
		out = append(out, Result(&rs[i], doctorName))
	}
	return out
}

func Review(rv *models.Review, patientName NameLookup) ReviewResponse {
	return ReviewResponse{
		ID:            rv.ID,
		PatientID:     rv.PatientID,
		PatientName:   patientName(rv.PatientID),
		DoctorID:      rv.DoctorID,
		AppointmentID: rv.AppointmentID,
		Rating:        rv.Rating,
		Comment:       rv.Comment,
		CreatedAt:     rv.CreatedAt,
	}
}

func Reviews(rvs []models.Review, patientName NameLookup) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(rvs))
	for i := range rvs {
		out = append(out, Review(&rvs[i], patientName))
	}
	return out
}
