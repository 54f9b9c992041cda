package appointment

import (
	"time"

	"github.com/dentalcare-app/clinic-api/internal/httperr"
	"github.com/dentalcare-app/clinic-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================
//
// Each action validates the transition against the current status,
// then mutates the record in place. `now` is the single time reading
// of the surrounding operation.

func Confirm(ap *models.Appointment, now time.Time) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.UpdatedAt = now
	return nil
}

func Cancel(ap *models.Appointment, actor Actor, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	// Patients must give 24h notice; the clinic may cancel at any time.
	if actor == ActorPatient && ap.ScheduledAt.Sub(now) < CancelLeadTime {
		return httperr.ErrBusinessf(
			httperr.CodeCancellationTooLate,
			"patients may cancel no later than %d hours before the appointment",
			int(CancelLeadTime.Hours()),
		)
	}

	if actor == ActorPatient {
		ap.Status = string(StatusCancelledByPatient)
	} else {
		ap.Status = string(StatusCancelledByClinic)
	}
	ap.UpdatedAt = now
	return nil
}

// Outcome is the medical conclusion recorded when a visit is completed.
type Outcome struct {
	Diagnosis       *string
	Treatment       *string
	Recommendations *string
	Notes           *string
}

func Complete(ap *models.Appointment, out Outcome, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	if ap.ScheduledAt.After(now) {
		return httperr.ErrBusinessf(
			httperr.CodeNotYetOccurred,
			"cannot complete an appointment that has not occurred yet",
		)
	}

	ap.Status = string(StatusCompleted)
	ap.Diagnosis = out.Diagnosis
	ap.Treatment = out.Treatment
	ap.Recommendations = out.Recommendations
	if out.Notes != nil {
		ap.Notes = out.Notes
	}
	ap.UpdatedAt = now
	return nil
}
