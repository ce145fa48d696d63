package booking_test

import (
	"testing"

	booking "github.com/padlasalon/salon-booking/internal/domain/booking"
	"github.com/padlasalon/salon-booking/internal/httperr"
	"github.com/padlasalon/salon-booking/internal/models"
)

func TestMaxRedeemable(t *testing.T) {
	tests := []struct {
		name     string
		points   int
		subtotal int
		want     int
	}{
		{"points below cap", 100, 450, 100},
		{"cap below points", 500, 450, 225},
		{"exact scenario", 200, 450, 200},
		{"zero points", 0, 450, 0},
		{"zero subtotal", 200, 0, 0},
		{"odd subtotal floors", 10, 3, 1},
		{"negative points treated as zero", -5, 450, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := booking.MaxRedeemable(tt.points, tt.subtotal)
			if got != tt.want {
				t.Errorf("MaxRedeemable(%d, %d) = %d, want %d",
					tt.points, tt.subtotal, got, tt.want)
			}
			if got > tt.subtotal/2 {
				t.Errorf("redeemable %d exceeds half of subtotal %d", got, tt.subtotal)
			}
		})
	}
}

func TestEarnedPoints(t *testing.T) {
	tests := []struct {
		total int
		want  int
	}{
		{250, 12},
		{300, 15},
		{0, 0},
		{19, 0},
		{20, 1},
		{-100, 0},
	}

	for _, tt := range tests {
		if got := booking.EarnedPoints(tt.total); got != tt.want {
			t.Errorf("EarnedPoints(%d) = %d, want %d", tt.total, got, tt.want)
		}
	}
}

func TestBuildQuoteRedeem(t *testing.T) {
	services := []models.Service{
		{ID: "s1", Price: 300},
		{ID: "s2", Price: 150},
	}

	q := booking.BuildQuote(services, 200, true)

	if q.Subtotal != 450 {
		t.Errorf("Subtotal = %d, want 450", q.Subtotal)
	}
	if q.MaxRedeemable != 200 {
		t.Errorf("MaxRedeemable = %d, want 200", q.MaxRedeemable)
	}
	if q.Discount != 200 {
		t.Errorf("Discount = %d, want 200", q.Discount)
	}
	if q.Total != 250 {
		t.Errorf("Total = %d, want 250", q.Total)
	}
	if q.PointsToEarn != 12 {
		t.Errorf("PointsToEarn = %d, want 12", q.PointsToEarn)
	}
	if q.Total != q.Subtotal-q.Discount {
		t.Errorf("total invariant broken: %d != %d - %d", q.Total, q.Subtotal, q.Discount)
	}
}

func TestBuildQuoteNoRedeem(t *testing.T) {
	services := []models.Service{{ID: "s1", Price: 300}}

	q := booking.BuildQuote(services, 200, false)

	if q.Discount != 0 {
		t.Errorf("Discount = %d, want 0", q.Discount)
	}
	if q.Total != 300 {
		t.Errorf("Total = %d, want 300", q.Total)
	}
	if q.MaxRedeemable != 150 {
		t.Errorf("MaxRedeemable = %d, want 150", q.MaxRedeemable)
	}
}

func TestApplyPointsDelta(t *testing.T) {
	user := &models.User{LoyaltyPoints: 100}

	if err := booking.ApplyPointsDelta(user, -40); err != nil {
		t.Fatalf("ApplyPointsDelta: %v", err)
	}
	if user.LoyaltyPoints != 60 {
		t.Errorf("LoyaltyPoints = %d, want 60", user.LoyaltyPoints)
	}

	if err := booking.ApplyPointsDelta(user, 15); err != nil {
		t.Fatalf("ApplyPointsDelta: %v", err)
	}
	if user.LoyaltyPoints != 75 {
		t.Errorf("LoyaltyPoints = %d, want 75", user.LoyaltyPoints)
	}
}

func TestApplyPointsDeltaClampsAtZero(t *testing.T) {
	user := &models.User{LoyaltyPoints: 10}

	err := booking.ApplyPointsDelta(user, -50)
	if !httperr.IsBusiness(err, "points_underflow") {
		t.Fatalf("expected points_underflow, got %v", err)
	}
	if user.LoyaltyPoints != 0 {
		t.Errorf("LoyaltyPoints = %d, want clamp at 0", user.LoyaltyPoints)
	}
}
