package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/padlasalon/salon-booking/internal/audit"
	"github.com/padlasalon/salon-booking/internal/catalog"
	domain "github.com/padlasalon/salon-booking/internal/domain/booking"
	"github.com/padlasalon/salon-booking/internal/httperr"
	"github.com/padlasalon/salon-booking/internal/models"
	"github.com/padlasalon/salon-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	// UserID is empty for guest bookings.
	UserID string

	ServiceIDs []string
	StylistID  *string

	Date     string
	TimeSlot string

	RedeemPoints bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewCreateBooking(
	repo domain.Repository,
	audit audit.Recorder,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Validation
	// --------------------------------------------------
	if len(in.ServiceIDs) == 0 {
		return nil, httperr.ErrBusiness("empty_services")
	}
	if in.TimeSlot == "" || !catalog.ValidSlot(in.TimeSlot) {
		return nil, httperr.ErrBusiness("missing_time_slot")
	}
	if _, err := timezone.ParseDate(in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	services, err := uc.repo.GetServicesByIDs(ctx, in.ServiceIDs)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Stylist availability re-check; the UI already
	// filters occupied stylists but cannot be trusted
	// --------------------------------------------------
	if in.StylistID != nil {
		stylist, err := uc.repo.GetStylist(ctx, *in.StylistID)
		if err != nil {
			return nil, httperr.ErrBusiness("stylist_unavailable")
		}
		if !stylist.IsAvailable {
			return nil, httperr.ErrBusiness("stylist_unavailable")
		}
		taken, err := uc.repo.CountActiveAppointments(
			ctx,
			stylist.ID,
			in.Date,
			in.TimeSlot,
		)
		if err != nil {
			return nil, err
		}
		if taken > 0 {
			return nil, httperr.ErrBusiness("stylist_unavailable")
		}
	}

	// --------------------------------------------------
	// Identity snapshot (guest fallback)
	// --------------------------------------------------
	var user *models.User
	if in.UserID != "" {
		user, err = uc.repo.GetUserByID(ctx, in.UserID)
		if err != nil {
			return nil, err
		}
	}

	userName, userPhone := "Guest User", "N/A"
	points := 0
	if user != nil {
		userName, userPhone = user.Name, user.Phone
		points = user.LoyaltyPoints
	}

	// --------------------------------------------------
	// Pricing (guests have no balance to redeem)
	// --------------------------------------------------
	redeem := in.RedeemPoints && user != nil
	quote := domain.BuildQuote(services, points, redeem)

	ap := &models.Appointment{
		ID:             uuid.NewString(),
		UserID:         in.UserID,
		UserName:       userName,
		UserPhone:      userPhone,
		Services:       services,
		StylistID:      in.StylistID,
		Date:           in.Date,
		TimeSlot:       in.TimeSlot,
		Status:         string(domain.InitialStatus()),
		TotalPrice:     quote.Total,
		Discount:       quote.Discount,
		PointsRedeemed: quote.Discount,
	}

	// --------------------------------------------------
	// Creation + optimistic point deduction, one unit.
	// A rejected booking leaves no partial state behind.
	// --------------------------------------------------
	err = uc.repo.Transact(ctx, func(tx domain.Repository) error {
		if err := tx.CreateAppointment(ctx, ap); err != nil {
			return err
		}
		if quote.Discount > 0 {
			if err := domain.ApplyPointsDelta(user, -quote.Discount); err != nil {
				return err
			}
			if err := tx.UpdateUser(ctx, user); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   optionalID(in.UserID),
		Action:   "booking_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"total":    ap.TotalPrice,
			"discount": ap.Discount,
		},
	})

	return ap, nil
}

func optionalID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
