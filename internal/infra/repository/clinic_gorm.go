package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/dentalcare-app/clinic-api/internal/domain/appointment"
	"github.com/dentalcare-app/clinic-api/internal/httperr"
	"github.com/dentalcare-app/clinic-api/internal/models"
	"github.com/dentalcare-app/clinic-api/internal/store"
)

var cancelledStatuses = []string{
	string(domain.StatusCancelledByPatient),
	string(domain.StatusCancelledByClinic),
}

type ClinicGormRepository struct {
	db *gorm.DB
}

func NewClinicGormRepository(db *gorm.DB) *ClinicGormRepository {
	return &ClinicGormRepository{db: db}
}

// --------------------------------------------------
// Directory
// --------------------------------------------------

func (r *ClinicGormRepository) DoctorExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Doctor{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ClinicGormRepository) PatientExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Patient{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ClinicGormRepository) DoctorByID(ctx context.Context, id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := r.db.WithContext(ctx).First(&doctor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusinessf(httperr.CodeDoctorNotFound, "doctor %d does not exist", id)
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *ClinicGormRepository) PatientByID(ctx context.Context, id uint) (*models.Patient, error) {
	var patient models.Patient
	if err := r.db.WithContext(ctx).First(&patient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusinessf(httperr.CodePatientNotFound, "patient %d does not exist", id)
		}
		return nil, err
	}
	return &patient, nil
}

func (r *ClinicGormRepository) ListDoctors(ctx context.Context, specialization *models.Specialization) ([]models.Doctor, error) {
	q := r.db.WithContext(ctx).Order("id ASC")
	if specialization != nil {
		q = q.Where("specialization = ?", *specialization)
	}

	var doctors []models.Doctor
	if err := q.Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

// slotHolderIDs selects, with a row lock, the ids of the doctor's active
// appointments at the exact instant. Postgres rejects FOR UPDATE on
// aggregate queries, so the rows are fetched and counted client-side.
// excludeID skips the appointment being moved; pass 0 when creating.
func slotHolderIDs(tx *gorm.DB, doctorID uint, at time.Time, excludeID uint) *gorm.DB {
	q := tx.Model(&models.Appointment{}).
		Select("id").
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"doctor_id = ? AND scheduled_at = ? AND status NOT IN ?",
			doctorID, at, cancelledStatuses,
		)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	return q
}

func (r *ClinicGormRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := slotHolderIDs(tx, ap.DoctorID, ap.ScheduledAt, 0).Find(&ids).Error; err != nil {
			return err
		}
		if len(ids) > 0 {
			return httperr.ErrBusinessf(httperr.CodeSlotConflict, "the selected time is already taken")
		}
		return tx.Create(ap).Error
	})
}

func (r *ClinicGormRepository) AppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusinessf(httperr.CodeAppointmentNotFound, "appointment %d does not exist", id)
		}
		return nil, err
	}
	return &ap, nil
}

func (r *ClinicGormRepository) SaveAppointment(ctx context.Context, ap *models.Appointment) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *ClinicGormRepository) ChangeAppointmentTime(ctx context.Context, id uint, newTime, now time.Time) (*models.Appointment, error) {
	var ap models.Appointment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&ap, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusinessf(httperr.CodeAppointmentNotFound, "appointment %d does not exist", id)
			}
			return err
		}

		var ids []uint
		if err := slotHolderIDs(tx, ap.DoctorID, newTime, id).Find(&ids).Error; err != nil {
			return err
		}
		if len(ids) > 0 {
			return httperr.ErrBusinessf(httperr.CodeSlotConflict, "the new time is already taken")
		}

		ap.ScheduledAt = newTime
		ap.UpdatedAt = now
		return tx.Save(&ap).Error
	})
	if err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *ClinicGormRepository) ListAppointments(ctx context.Context, f domain.Filter) ([]models.Appointment, error) {
	q := r.db.WithContext(ctx).Order("scheduled_at ASC, id ASC")
	if f.PatientID != nil {
		q = q.Where("patient_id = ?", *f.PatientID)
	}
	if f.DoctorID != nil {
		q = q.Where("doctor_id = ?", *f.DoctorID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", string(*f.Status))
	}

	var apts []models.Appointment
	if err := q.Find(&apts).Error; err != nil {
		return nil, err
	}
	return apts, nil
}

func (r *ClinicGormRepository) AppointmentsByDoctor(ctx context.Context, doctorID uint) ([]models.Appointment, error) {
	return r.ListAppointments(ctx, domain.Filter{DoctorID: &doctorID})
}

func (r *ClinicGormRepository) AppointmentsByPatient(ctx context.Context, patientID uint) ([]models.Appointment, error) {
	return r.ListAppointments(ctx, domain.Filter{PatientID: &patientID})
}

// --------------------------------------------------
// Medical results
// --------------------------------------------------

func (r *ClinicGormRepository) CreateResult(ctx context.Context, res *models.MedicalResult) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *ClinicGormRepository) ListResults(ctx context.Context, f store.ResultFilter) ([]models.MedicalResult, error) {
	q := r.db.WithContext(ctx).
		Where("patient_id = ?", f.PatientID).
		Order("created_at DESC, id DESC")
	if f.Type != nil {
		q = q.Where("result_type = ?", *f.Type)
	}

	var results []models.MedicalResult
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *ClinicGormRepository) ResultsByPatient(ctx context.Context, patientID uint) ([]models.MedicalResult, error) {
	return r.ListResults(ctx, store.ResultFilter{PatientID: patientID})
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *ClinicGormRepository) ListServices(ctx context.Context, specialization *models.Specialization) ([]models.Service, error) {
	q := r.db.WithContext(ctx).Order("price ASC, id ASC")
	if specialization != nil {
		q = q.Where("specialization = ?", *specialization)
	}

	var services []models.Service
	if err := q.Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Reviews
// --------------------------------------------------

// reviewIDsByAppointment locks any existing review rows of the appointment.
// Same shape as slotHolderIDs: a row-returning query, not an aggregate,
// because of the FOR UPDATE restriction on Postgres.
func reviewIDsByAppointment(tx *gorm.DB, appointmentID uint) *gorm.DB {
	return tx.Model(&models.Review{}).
		Select("id").
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("appointment_id = ?", appointmentID)
}

func (r *ClinicGormRepository) CreateReview(ctx context.Context, rv *models.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := reviewIDsByAppointment(tx, rv.AppointmentID).Find(&ids).Error; err != nil {
			return err
		}
		if len(ids) > 0 {
			return httperr.ErrBusinessf(httperr.CodeReviewExists, "appointment %d is already reviewed", rv.AppointmentID)
		}
		return tx.Create(rv).Error
	})
}

func (r *ClinicGormRepository) ReviewsByDoctor(ctx context.Context, doctorID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("id ASC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ClinicGormRepository) ReviewsByAppointment(ctx context.Context, appointmentID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// --------------------------------------------------
// Notifications
// --------------------------------------------------

func (r *ClinicGormRepository) CreateNotification(ctx context.Context, n *models.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *ClinicGormRepository) NotificationsByUser(ctx context.Context, userID uint, unreadOnly bool) ([]models.Notification, error) {
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC")
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}

	var notifications []models.Notification
	if err := q.Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *ClinicGormRepository) MarkNotificationRead(ctx context.Context, id uint) (*models.Notification, error) {
	var n models.Notification
	if err := r.db.WithContext(ctx).First(&n, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusinessf(httperr.CodeNotificationNotFound, "notification %d does not exist", id)
		}
		return nil, err
	}

	n.IsRead = true
	if err := r.db.WithContext(ctx).Save(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// --------------------------------------------------
// Stats
// --------------------------------------------------

func (r *ClinicGormRepository) SystemCounts(ctx context.Context) (store.Counts, error) {
	var c store.Counts

	counts := []struct {
		model any
		where []any
		dst   *int
	}{
		{model: &models.Doctor{}, dst: &c.Doctors},
		{model: &models.Patient{}, dst: &c.Patients},
		{model: &models.Appointment{}, dst: &c.Appointments},
		{model: &models.Appointment{}, where: []any{"status = ?", string(domain.StatusPending)}, dst: &c.PendingAppointments},
		{model: &models.Appointment{}, where: []any{"status = ?", string(domain.StatusConfirmed)}, dst: &c.ConfirmedAppointments},
		{model: &models.MedicalResult{}, dst: &c.Results},
	}

	for _, cnt := range counts {
		q := r.db.WithContext(ctx).Model(cnt.model)
		if len(cnt.where) > 0 {
			q = q.Where(cnt.where[0], cnt.where[1:]...)
		}
		var n int64
		if err := q.Count(&n).Error; err != nil {
			return store.Counts{}, err
		}
		*cnt.dst = int(n)
	}

	return c, nil
}

// Compile-time check
var _ store.Store = (*ClinicGormRepository)(nil)
