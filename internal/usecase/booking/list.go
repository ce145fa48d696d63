package booking

import (
	"context"

	domain "github.com/padlasalon/salon-booking/internal/domain/booking"
	"github.com/padlasalon/salon-booking/internal/dto"
	"github.com/padlasalon/salon-booking/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// ByDate lists a day's bookings (admin view); an empty date lists all.
func (uc *ListBookings) ByDate(
	ctx context.Context,
	date string,
) ([]dto.BookingListDTO, error) {

	var (
		apps []models.Appointment
		err  error
	)
	if date == "" {
		apps, err = uc.repo.ListAppointments(ctx)
	} else {
		apps, err = uc.repo.ListAppointmentsByDate(ctx, date)
	}
	if err != nil {
		return nil, err
	}
	return toDTOs(apps), nil
}

// ForUser lists a customer's own bookings.
func (uc *ListBookings) ForUser(
	ctx context.Context,
	userID string,
) ([]dto.BookingListDTO, error) {

	apps, err := uc.repo.ListAppointmentsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toDTOs(apps), nil
}

func toDTOs(apps []models.Appointment) []dto.BookingListDTO {
	out := make([]dto.BookingListDTO, 0, len(apps))
	for _, ap := range apps {
		names := make([]string, 0, len(ap.Services))
		for _, s := range ap.Services {
			names = append(names, s.Name)
		}
		out = append(out, dto.BookingListDTO{
			ID:           ap.ID,
			Date:         ap.Date,
			TimeSlot:     ap.TimeSlot,
			Status:       ap.Status,
			UserName:     ap.UserName,
			UserPhone:    ap.UserPhone,
			StylistID:    ap.StylistID,
			Services:     names,
			TotalPrice:   ap.TotalPrice,
			Discount:     ap.Discount,
			PointsEarned: ap.PointsEarned,
		})
	}
	return out
}
