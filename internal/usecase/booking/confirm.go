package booking

import (
	"context"

	"github.com/padlasalon/salon-booking/internal/audit"
	domain "github.com/padlasalon/salon-booking/internal/domain/booking"
	"github.com/padlasalon/salon-booking/internal/models"
)

type ConfirmBooking struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewConfirmBooking(
	repo domain.Repository,
	audit audit.Recorder,
) *ConfirmBooking {
	return &ConfirmBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	adminID string,
	appointmentID string,
) (*models.Appointment, error) {

	var ap *models.Appointment
	err := uc.repo.Transact(ctx, func(tx domain.Repository) error {
		var err error
		ap, err = tx.GetAppointmentForUpdate(ctx, appointmentID)
		if err != nil {
			return err
		}
		if err := domain.Confirm(ap); err != nil {
			return err
		}
		return tx.UpdateAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "booking_confirmed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
