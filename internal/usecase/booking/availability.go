package booking

import (
	"context"

	"github.com/padlasalon/salon-booking/internal/catalog"
	domain "github.com/padlasalon/salon-booking/internal/domain/booking"
	"github.com/padlasalon/salon-booking/internal/httperr"
	"github.com/padlasalon/salon-booking/internal/models"
	"github.com/padlasalon/salon-booking/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// StylistOption is a stylist annotated with bookability for a concrete
// date/slot pair.
type StylistOption struct {
	Stylist models.Stylist `json:"stylist"`
	Free    bool           `json:"free"`
}

// Stylists reports which stylists can take the given slot.
func (uc *GetAvailability) Stylists(
	ctx context.Context,
	date string,
	timeSlot string,
) ([]StylistOption, error) {

	if _, err := timezone.ParseDate(date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if !catalog.ValidSlot(timeSlot) {
		return nil, httperr.ErrBusiness("missing_time_slot")
	}

	stylists, err := uc.repo.ListStylists(ctx)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.ListAppointmentsByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	out := make([]StylistOption, 0, len(stylists))
	for _, st := range stylists {
		out = append(out, StylistOption{
			Stylist: st,
			Free:    domain.StylistFree(st, date, timeSlot, existing),
		})
	}
	return out, nil
}

// Slots returns the day's template with slots already held by the given
// stylist marked unavailable. Without a stylist the template is returned
// as-is: "any available" bookings never pin a slot.
func (uc *GetAvailability) Slots(
	ctx context.Context,
	date string,
	stylistID *string,
) ([]catalog.TimeSlot, error) {

	if _, err := timezone.ParseDate(date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	slots := catalog.TimeSlots(date)
	if stylistID == nil {
		return slots, nil
	}

	stylist, err := uc.repo.GetStylist(ctx, *stylistID)
	if err != nil {
		return nil, httperr.ErrBusiness("stylist_unavailable")
	}

	existing, err := uc.repo.ListAppointmentsByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	for i := range slots {
		slots[i].Available = domain.StylistFree(*stylist, date, slots[i].Time, existing)
	}
	return slots, nil
}
