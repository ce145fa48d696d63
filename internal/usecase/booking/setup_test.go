package booking_test

import (
	"context"
	"testing"

	"github.com/padlasalon/salon-booking/internal/audit"
	"github.com/padlasalon/salon-booking/internal/catalog"
	"github.com/padlasalon/salon-booking/internal/infra/repository"
	"github.com/padlasalon/salon-booking/internal/models"
	ucBooking "github.com/padlasalon/salon-booking/internal/usecase/booking"
)

type fixture struct {
	repo     *repository.Memory
	create   *ucBooking.CreateBooking
	confirm  *ucBooking.ConfirmBooking
	cancel   *ucBooking.CancelBooking
	complete *ucBooking.CompleteBooking
	quote    *ucBooking.QuoteBooking
	avail    *ucBooking.GetAvailability
	stats    *ucBooking.GetStats
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := repository.NewMemory(catalog.Services(), catalog.Stylists())
	rec := audit.Nop{}

	return &fixture{
		repo:     repo,
		create:   ucBooking.NewCreateBooking(repo, rec),
		confirm:  ucBooking.NewConfirmBooking(repo, rec),
		cancel:   ucBooking.NewCancelBooking(repo, rec),
		complete: ucBooking.NewCompleteBooking(repo, rec),
		quote:    ucBooking.NewQuoteBooking(repo),
		avail:    ucBooking.NewGetAvailability(repo),
		stats:    ucBooking.NewGetStats(repo),
	}
}

func (f *fixture) seedUser(t *testing.T, id, phone string, points int) *models.User {
	t.Helper()

	user := &models.User{
		ID:            id,
		Name:          "Rahul Varma",
		Phone:         phone,
		Role:          models.RoleCustomer,
		LoyaltyPoints: points,
	}
	if err := f.repo.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func (f *fixture) userPoints(t *testing.T, id string) int {
	t.Helper()

	user, err := f.repo.GetUserByID(context.Background(), id)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	return user.LoyaltyPoints
}

func strPtr(s string) *string {
	return &s
}
