package booking

import (
	"github.com/padlasalon/salon-booking/internal/httperr"
	"github.com/padlasalon/salon-booking/internal/models"
)

// Loyalty rules: 1 point = 1 currency unit. Redemption is all-or-nothing per
// booking and capped at half the subtotal; earning is 5% of the amount
// actually paid, credited when the appointment completes.

const (
	redeemCapPercent = 50
	earnRatePercent  = 5
)

// MaxRedeemable returns the discount a customer may apply:
// min(pointsAvailable, floor(subtotal/2)).
func MaxRedeemable(pointsAvailable, subtotal int) int {
	if pointsAvailable < 0 {
		pointsAvailable = 0
	}
	limit := subtotal * redeemCapPercent / 100
	if pointsAvailable < limit {
		return pointsAvailable
	}
	return limit
}

// EarnedPoints returns the points accrued for a completed appointment.
func EarnedPoints(finalTotal int) int {
	if finalTotal <= 0 {
		return 0
	}
	return finalTotal * earnRatePercent / 100
}

// Quote is the priced breakdown of a service selection.
type Quote struct {
	Subtotal      int `json:"subtotal"`
	MaxRedeemable int `json:"max_redeemable"`
	Discount      int `json:"discount"`
	Total         int `json:"total"`
	PointsToEarn  int `json:"points_to_earn"`
}

// BuildQuote prices a selection against the customer's point balance.
// When redeem is false the discount is zero; a partial redemption amount is
// never accepted.
func BuildQuote(services []models.Service, pointsAvailable int, redeem bool) Quote {
	subtotal := 0
	for _, s := range services {
		subtotal += s.Price
	}

	max := MaxRedeemable(pointsAvailable, subtotal)
	discount := 0
	if redeem {
		discount = max
	}
	total := subtotal - discount

	return Quote{
		Subtotal:      subtotal,
		MaxRedeemable: max,
		Discount:      discount,
		Total:         total,
		PointsToEarn:  EarnedPoints(total),
	}
}

// ApplyPointsDelta adjusts a user's balance. Call sites bound redemptions by
// MaxRedeemable, so a negative result indicates a bug elsewhere: the balance
// is clamped at zero and the inconsistency reported.
func ApplyPointsDelta(user *models.User, delta int) error {
	next := user.LoyaltyPoints + delta
	if next < 0 {
		user.LoyaltyPoints = 0
		return httperr.ErrBusiness("points_underflow")
	}
	user.LoyaltyPoints = next
	return nil
}
