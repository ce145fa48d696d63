package booking

import (
	"context"

	domain "github.com/padlasalon/salon-booking/internal/domain/booking"
	"github.com/padlasalon/salon-booking/internal/httperr"
)

type QuoteBooking struct {
	repo domain.Repository
}

func NewQuoteBooking(repo domain.Repository) *QuoteBooking {
	return &QuoteBooking{repo: repo}
}

// Execute previews pricing for a service selection. An empty userID prices
// a guest checkout, which has no points to redeem.
func (uc *QuoteBooking) Execute(
	ctx context.Context,
	userID string,
	serviceIDs []string,
	redeem bool,
) (*domain.Quote, error) {

	if len(serviceIDs) == 0 {
		return nil, httperr.ErrBusiness("empty_services")
	}

	services, err := uc.repo.GetServicesByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}

	points := 0
	if userID != "" {
		user, err := uc.repo.GetUserByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		points = user.LoyaltyPoints
	} else {
		redeem = false
	}

	quote := domain.BuildQuote(services, points, redeem)
	return &quote, nil
}
