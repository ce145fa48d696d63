package booking

import (
	"context"

	"github.com/padlasalon/salon-booking/internal/audit"
	domain "github.com/padlasalon/salon-booking/internal/domain/booking"
	"github.com/padlasalon/salon-booking/internal/models"
	"github.com/padlasalon/salon-booking/internal/timezone"
)

type CompleteBooking struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewCompleteBooking(
	repo domain.Repository,
	audit audit.Recorder,
) *CompleteBooking {
	return &CompleteBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute completes a confirmed booking and credits the earned points to the
// owning user. Transition and award commit as one transaction over a locked
// appointment row, so a concurrent second completion either sees COMPLETED
// and is rejected, or waits and then is rejected. Guests earn nothing.
func (uc *CompleteBooking) Execute(
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
		if err := domain.Complete(ap, now); err != nil {
			return err
		}
		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		if ap.UserID == "" || ap.PointsEarned == 0 {
			return nil
		}

		user, err := tx.GetUserByID(ctx, ap.UserID)
		if err != nil {
			return err
		}
		if err := domain.ApplyPointsDelta(user, ap.PointsEarned); err != nil {
			return err
		}
		return tx.UpdateUser(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "booking_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"points_earned": ap.PointsEarned,
		},
	})

	return ap, nil
}
