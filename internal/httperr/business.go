package httperr

import (
	"errors"
	"fmt"
)

// ===============================
// Business error taxonomy
// ===============================

const (
	CodeDoctorNotFound       = "doctor_not_found"
	CodePatientNotFound      = "patient_not_found"
	CodeAppointmentNotFound  = "appointment_not_found"
	CodeNotificationNotFound = "notification_not_found"

	// Booking-time validation, one code per rule. The first failing rule wins.
	CodeTimeInPast           = "time_in_past"
	CodeOutsideBusinessHours = "outside_business_hours"
	CodeWeekendClosed        = "weekend_closed"
	CodeMisalignedMinute     = "misaligned_minute"

	CodeSlotConflict        = "slot_conflict"
	CodeInvalidTransition   = "invalid_transition"
	CodeCancellationTooLate = "cancellation_too_late"
	CodeNotYetOccurred      = "not_yet_occurred"

	CodeReviewForbidden = "review_forbidden"
	CodeReviewExists    = "review_exists"

	CodeStorageNotConfigured = "storage_not_configured"
)

type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

func ErrBusinessf(code, format string, args ...any) error {
	return BusinessError{Code: code, Message: fmt.Sprintf(format, args...)}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
