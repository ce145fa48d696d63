package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/padlasalon/salon-booking/internal/httperr"
	"github.com/padlasalon/salon-booking/internal/httpresp"
	"github.com/padlasalon/salon-booking/internal/middleware"
	ucBooking "github.com/padlasalon/salon-booking/internal/usecase/booking"
)

type AdminHandler struct {
	confirm  *ucBooking.ConfirmBooking
	cancel   *ucBooking.CancelBooking
	complete *ucBooking.CompleteBooking
	list     *ucBooking.ListBookings
	stats    *ucBooking.GetStats
}

func NewAdminHandler(
	confirm *ucBooking.ConfirmBooking,
	cancel *ucBooking.CancelBooking,
	complete *ucBooking.CompleteBooking,
	list *ucBooking.ListBookings,
	stats *ucBooking.GetStats,
) *AdminHandler {
	return &AdminHandler{
		confirm:  confirm,
		cancel:   cancel,
		complete: complete,
		list:     list,
		stats:    stats,
	}
}

func (h *AdminHandler) Confirm(c *gin.Context) {
	ap, err := h.confirm.Execute(
		c.Request.Context(),
		middleware.UserID(c),
		c.Param("id"),
	)
	if err != nil {
		httperr.Business(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AdminHandler) Cancel(c *gin.Context) {
	ap, err := h.cancel.Execute(
		c.Request.Context(),
		middleware.UserID(c),
		c.Param("id"),
	)
	if err != nil {
		httperr.Business(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AdminHandler) Complete(c *gin.Context) {
	ap, err := h.complete.Execute(
		c.Request.Context(),
		middleware.UserID(c),
		c.Param("id"),
	)
	if err != nil {
		httperr.Business(c, err)
		return
	}
	httpresp.OK(c, ap)
}

// List returns bookings, optionally narrowed with ?date=YYYY-MM-DD.
func (h *AdminHandler) List(c *gin.Context) {
	out, err := h.list.ByDate(c.Request.Context(), c.Query("date"))
	if err != nil {
		httperr.Internal(c, "list_error", "Could not load bookings.")
		return
	}
	httpresp.List(c, out)
}

func (h *AdminHandler) Stats(c *gin.Context) {
	out, err := h.stats.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "stats_error", "Could not compute stats.")
		return
	}
	httpresp.OK(c, out)
}
