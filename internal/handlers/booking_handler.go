package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/padlasalon/salon-booking/internal/httperr"
	"github.com/padlasalon/salon-booking/internal/httpresp"
	"github.com/padlasalon/salon-booking/internal/middleware"
	ucBooking "github.com/padlasalon/salon-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create *ucBooking.CreateBooking
	quote  *ucBooking.QuoteBooking
	list   *ucBooking.ListBookings
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	quote *ucBooking.QuoteBooking,
	list *ucBooking.ListBookings,
) *BookingHandler {
	return &BookingHandler{
		create: create,
		quote:  quote,
		list:   list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ServiceIDs   []string `json:"service_ids" binding:"required"`
	StylistID    *string  `json:"stylist_id"`
	Date         string   `json:"date" binding:"required"`
	TimeSlot     string   `json:"time_slot" binding:"required"`
	RedeemPoints bool     `json:"redeem_points"`
}

type QuoteRequest struct {
	ServiceIDs   []string `json:"service_ids" binding:"required"`
	RedeemPoints bool     `json:"redeem_points"`
}

// ======================================================
// HANDLERS
// ======================================================

// Create books an appointment. Works for guests (no token) and customers.
func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:       middleware.UserID(c),
		ServiceIDs:   req.ServiceIDs,
		StylistID:    req.StylistID,
		Date:         req.Date,
		TimeSlot:     req.TimeSlot,
		RedeemPoints: req.RedeemPoints,
	})
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// Quote previews the priced breakdown for a selection before booking.
func (h *BookingHandler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid quote data.")
		return
	}

	q, err := h.quote.Execute(
		c.Request.Context(),
		middleware.UserID(c),
		req.ServiceIDs,
		req.RedeemPoints,
	)
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.OK(c, q)
}

// ListMine returns the authenticated customer's bookings.
func (h *BookingHandler) ListMine(c *gin.Context) {
	out, err := h.list.ForUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.Internal(c, "list_error", "Could not load bookings.")
		return
	}
	httpresp.List(c, out)
}
