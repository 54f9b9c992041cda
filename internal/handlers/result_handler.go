package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dentalcare-app/clinic-api/internal/dto"
	"github.com/dentalcare-app/clinic-api/internal/httperr"
	"github.com/dentalcare-app/clinic-api/internal/httpresp"
	"github.com/dentalcare-app/clinic-api/internal/models"
	"github.com/dentalcare-app/clinic-api/internal/store"
	usecase "github.com/dentalcare-app/clinic-api/internal/usecase/result"
)

type ResultHandler struct {
	store  store.Store
	upload *usecase.Upload
}

func NewResultHandler(st store.Store, upload *usecase.Upload) *ResultHandler {
	return &ResultHandler{store: st, upload: upload}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateResultRequest struct {
	PatientID   uint              `json:"patient_id" binding:"required"`
	DoctorID    uint              `json:"doctor_id" binding:"required"`
	ResultType  models.ResultType `json:"result_type" binding:"required"`
	Title       string            `json:"title" binding:"required"`
	Description *string           `json:"description"`
	FileURL     string            `json:"file_url" binding:"required"`
}

// ======================================================
// LIST
// ======================================================

func (h *ResultHandler) ListByPatient(c *gin.Context) {
	patientID, ok := parseID(c, "patient_id")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	exists, err := h.store.PatientExists(ctx, patientID)
	if err != nil {
		httperr.Business(c, err)
		return
	}
	if !exists {
		httperr.NotFound(c, httperr.CodePatientNotFound, "Patient not found.")
		return
	}

	f := store.ResultFilter{PatientID: patientID}
	if raw := c.Query("result_type"); raw != "" {
		rt := models.ResultType(raw)
		if !rt.Valid() {
			httperr.BadRequest(c, "invalid_result_type", "Unknown result type.")
			return
		}
		f.Type = &rt
	}

	results, err := h.store.ListResults(ctx, f)
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.List(c, dto.Results(results, doctorNames(ctx, h.store)))
}

// ======================================================
// CREATE (JSON, file already hosted)
// ======================================================

func (h *ResultHandler) Create(c *gin.Context) {
	var req CreateResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid result data.")
		return
	}
	if !req.ResultType.Valid() {
		httperr.BadRequest(c, "invalid_result_type", "Unknown result type.")
		return
	}

	res, err := h.upload.Execute(c.Request.Context(), usecase.UploadInput{
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		ResultType:  req.ResultType,
		Title:       req.Title,
		Description: req.Description,
		FileURL:     req.FileURL,
	})
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.Created(c, dto.Result(res, doctorNames(c.Request.Context(), h.store)))
}

// ======================================================
// UPLOAD (multipart, file goes to object storage)
// ======================================================

func (h *ResultHandler) Upload(c *gin.Context) {
	patientID, err := strconv.ParseUint(c.PostForm("patient_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_patient_id", "Invalid patient_id field.")
		return
	}
	doctorID, err := strconv.ParseUint(c.PostForm("doctor_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "Invalid doctor_id field.")
		return
	}

	rt := models.ResultType(c.PostForm("result_type"))
	if !rt.Valid() {
		httperr.BadRequest(c, "invalid_result_type", "Unknown result type.")
		return
	}

	title := c.PostForm("title")
	if title == "" {
		httperr.BadRequest(c, "invalid_request", "title is required.")
		return
	}

	var description *string
	if d := c.PostForm("description"); d != "" {
		description = &d
	}

	fh, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "A file part is required.")
		return
	}
	file, err := fh.Open()
	if err != nil {
		httperr.Internal(c, "file_read_error", "Could not read the uploaded file.")
		return
	}
	defer file.Close()

	res, err := h.upload.Execute(c.Request.Context(), usecase.UploadInput{
		PatientID:   uint(patientID),
		DoctorID:    uint(doctorID),
		ResultType:  rt,
		Title:       title,
		Description: description,
		File:        file,
	})
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.Created(c, dto.Result(res, doctorNames(c.Request.Context(), h.store)))
}
