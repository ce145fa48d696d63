package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/padlasalon/salon-booking/internal/ai"
	domain "github.com/padlasalon/salon-booking/internal/domain/booking"
	"github.com/padlasalon/salon-booking/internal/httperr"
	"github.com/padlasalon/salon-booking/internal/httpresp"
	"github.com/padlasalon/salon-booking/internal/middleware"
)

type AssistantHandler struct {
	ai   *ai.Client
	repo domain.Repository
}

func NewAssistantHandler(aiClient *ai.Client, repo domain.Repository) *AssistantHandler {
	return &AssistantHandler{
		ai:   aiClient,
		repo: repo,
	}
}

// Suggestion returns a personalized next-service recommendation. The AI
// call is best-effort; a failure surfaces as the static fallback text, never
// as an error.
func (h *AssistantHandler) Suggestion(c *gin.Context) {
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

	services, err := h.repo.ListServices(ctx)
	if err != nil {
		httperr.Internal(c, "catalog_error", "Could not load services.")
		return
	}

	httpresp.OK(c, gin.H{
		"suggestion": h.ai.Suggest(ctx, user, visits, services),
	})
}

type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
}

// Chat relays a message to the assistant. A missing session id starts a new
// session; the id is echoed back so the client can continue it.
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "A message is required.")
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	reply := h.ai.Chat(c.Request.Context(), sessionID, req.Message)

	httpresp.OK(c, gin.H{
		"session_id": sessionID,
		"reply":      reply,
	})
}
