package booking

import "github.com/padlasalon/salon-booking/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

func InitialStatus() Status {
	return StatusPending
}

// Occupies reports whether an appointment in this status still holds its
// stylist/slot. Cancelled and completed appointments free the slot.
func (s Status) Occupies() bool {
	return s == StatusPending || s == StatusConfirmed
}

// ===============================
// Transition Guards
// ===============================

// CanConfirm: only a pending appointment can be confirmed.
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}

// CanCancel: only a pending appointment can be cancelled.
func CanCancel(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}

// CanComplete: only a confirmed appointment can be completed. Completed and
// cancelled are terminal, so a repeat completion is rejected here, which is
// what guarantees points are awarded at most once.
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}
