package appointment

import "github.com/dentalcare-app/clinic-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending            Status = "pending"
	StatusConfirmed          Status = "confirmed"
	StatusCompleted          Status = "completed"
	StatusCancelledByPatient Status = "cancelled_by_patient"
	StatusCancelledByClinic  Status = "cancelled_by_clinic"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted,
		StatusCancelledByPatient, StatusCancelledByClinic:
		return true
	}
	return false
}

// Terminal statuses admit no further transitions.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusCancelledByPatient, StatusCancelledByClinic:
		return true
	}
	return false
}

// Active appointments occupy their slot. Cancelled ones do not.
func (s Status) Active() bool {
	switch s {
	case StatusCancelledByPatient, StatusCancelledByClinic:
		return false
	}
	return true
}

func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Cancellation actor
// ===============================

type Actor string

const (
	ActorPatient Actor = "patient"
	ActorClinic  Actor = "clinic"
)

func (a Actor) Valid() bool {
	return a == ActorPatient || a == ActorClinic
}

// ===============================
// Transition guards
// ===============================

func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusinessf(
			httperr.CodeInvalidTransition,
			"only a pending appointment can be confirmed, current status is %q", current,
		)
	}
	return nil
}

func CanCancel(current Status) error {
	if current.Terminal() {
		return httperr.ErrBusinessf(
			httperr.CodeInvalidTransition,
			"appointment with status %q cannot be cancelled", current,
		)
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusinessf(
			httperr.CodeInvalidTransition,
			"only a confirmed appointment can be completed, current status is %q", current,
		)
	}
	return nil
}

func CanReschedule(current Status) error {
	if current.Terminal() {
		return httperr.ErrBusinessf(
			httperr.CodeInvalidTransition,
			"appointment with status %q cannot be rescheduled", current,
		)
	}
	return nil
}
