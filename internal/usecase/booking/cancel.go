package booking

import (
	"context"

	"github.com/padlasalon/salon-booking/internal/audit"
	domain "github.com/padlasalon/salon-booking/internal/domain/booking"
	"github.com/padlasalon/salon-booking/internal/models"
	"github.com/padlasalon/salon-booking/internal/timezone"
)

type CancelBooking struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewCancelBooking(
	repo domain.Repository,
	audit audit.Recorder,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute cancels a pending booking. Points redeemed at booking time are not
// refunded; the deduction is final once the booking is placed.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	adminID string,
	appointmentID string,
) (*models.Appointment, error) {

	now := timezone.Now()

	var ap *models.Appointment
	err := uc.repo.Transact(ctx, func(tx domain.Repository) error {
		var err error
		ap, err = tx.GetAppointmentForUpdate(ctx, appointmentID)
		if err != nil {
			return err
		}
		if err := domain.Cancel(ap, now); err != nil {
			return err
		}
		return tx.UpdateAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "booking_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
