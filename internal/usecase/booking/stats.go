package booking

import (
	"context"

	domain "github.com/padlasalon/salon-booking/internal/domain/booking"
	"github.com/padlasalon/salon-booking/internal/timezone"
)

type Stats struct {
	TotalRevenue      int `json:"total_revenue"`
	TotalAppointments int `json:"total_appointments"`
	TodayAppointments int `json:"today_appointments"`
}

type GetStats struct {
	repo domain.Repository
}

func NewGetStats(repo domain.Repository) *GetStats {
	return &GetStats{repo: repo}
}

// Execute folds the appointment collection into the admin dashboard figures.
// Cancelled bookings are excluded from revenue but still counted.
func (uc *GetStats) Execute(ctx context.Context) (*Stats, error) {
	apps, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	today := timezone.Today()

	var out Stats
	for _, ap := range apps {
		out.TotalAppointments++
		if ap.Date == today {
			out.TodayAppointments++
		}
		if ap.Status != string(domain.StatusCancelled) {
			out.TotalRevenue += ap.TotalPrice
		}
	}
	return &out, nil
}
