package booking

import "github.com/padlasalon/salon-booking/internal/models"

// Blocks reports whether an existing appointment occupies the given
// stylist/date/slot combination. "Any available" bookings carry no stylist
// and never occupy a specific stylist's slot.
func Blocks(ap models.Appointment, stylistID, date, timeSlot string) bool {
	if !Status(ap.Status).Occupies() {
		return false
	}
	if ap.StylistID == nil || *ap.StylistID != stylistID {
		return false
	}
	return ap.Date == date && ap.TimeSlot == timeSlot
}

// StylistFree applies the availability rule: the staff-level flag must be on
// and no pending or confirmed appointment may hold the same slot.
func StylistFree(stylist models.Stylist, date, timeSlot string, existing []models.Appointment) bool {
	if !stylist.IsAvailable {
		return false
	}
	for _, ap := range existing {
		if Blocks(ap, stylist.ID, date, timeSlot) {
			return false
		}
	}
	return true
}
