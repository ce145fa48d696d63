package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/padlasalon/salon-booking/internal/domain/booking"
	"github.com/padlasalon/salon-booking/internal/httperr"
	"github.com/padlasalon/salon-booking/internal/httpresp"
	"github.com/padlasalon/salon-booking/internal/middleware"
)

type MeHandler struct {
	repo domain.Repository
}

func NewMeHandler(repo domain.Repository) *MeHandler {
	return &MeHandler{repo: repo}
}

// GetMe returns the profile with the current loyalty balance and the visit
// history projection (completed appointments, newest first).
func (h *MeHandler) GetMe(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.UserID(c)

	user, err := h.repo.GetUserByID(ctx, userID)
	if err != nil {
		httperr.Business(c, err)
		return
	}

	visits, err := h.repo.ListVisits(ctx, userID)
	if err != nil {
		httperr.Internal(c, "history_error", "Could not load visit history.")
		return
	}

	httpresp.OK(c, gin.H{
		"id":                   user.ID,
		"name":                 user.Name,
		"phone":                user.Phone,
		"role":                 user.Role,
		"loyalty_points":       user.LoyaltyPoints,
		"preferred_stylist_id": user.PreferredStylistID,
		"visit_history":        visits,
	})
}
