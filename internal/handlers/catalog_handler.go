package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/padlasalon/salon-booking/internal/domain/booking"
	"github.com/padlasalon/salon-booking/internal/httperr"
	"github.com/padlasalon/salon-booking/internal/httpresp"
	ucBooking "github.com/padlasalon/salon-booking/internal/usecase/booking"
)

type CatalogHandler struct {
	repo         domain.Repository
	availability *ucBooking.GetAvailability
}

func NewCatalogHandler(
	repo domain.Repository,
	availability *ucBooking.GetAvailability,
) *CatalogHandler {
	return &CatalogHandler{
		repo:         repo,
		availability: availability,
	}
}

type serviceView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	DurationMin int    `json:"duration_min"`
	Category    string `json:"category"`
	IsPopular   bool   `json:"is_popular"`
}

// ListServices returns the menu with names resolved for ?lang=en|gu|hi.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.repo.ListServices(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "catalog_error", "Could not load services.")
		return
	}

	lang := c.DefaultQuery("lang", "en")
	out := make([]serviceView, 0, len(services))
	for _, s := range services {
		out = append(out, serviceView{
			ID:          s.ID,
			Name:        s.LocalizedName(lang),
			Description: s.Description,
			Price:       s.Price,
			DurationMin: s.DurationMin,
			Category:    s.Category,
			IsPopular:   s.IsPopular,
		})
	}
	httpresp.List(c, out)
}

func (h *CatalogHandler) ListStylists(c *gin.Context) {
	stylists, err := h.repo.ListStylists(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "catalog_error", "Could not load stylists.")
		return
	}
	httpresp.List(c, stylists)
}

// Slots returns the day's time-slot grid. With ?stylist_id= the grid
// reflects that stylist's existing bookings.
func (h *CatalogHandler) Slots(c *gin.Context) {
	date := c.Query("date")

	var stylistID *string
	if id := c.Query("stylist_id"); id != "" {
		stylistID = &id
	}

	slots, err := h.availability.Slots(c.Request.Context(), date, stylistID)
	if err != nil {
		httperr.Business(c, err)
		return
	}
	httpresp.List(c, slots)
}

// Stylists reports per-stylist bookability for ?date=&time=.
func (h *CatalogHandler) Stylists(c *gin.Context) {
	options, err := h.availability.Stylists(
		c.Request.Context(),
		c.Query("date"),
		c.Query("time"),
	)
	if err != nil {
		httperr.Business(c, err)
		return
	}
	httpresp.List(c, options)
}
