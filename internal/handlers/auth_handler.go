package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/padlasalon/salon-booking/internal/config"
	"github.com/padlasalon/salon-booking/internal/httperr"
	"github.com/padlasalon/salon-booking/internal/models"
	"github.com/padlasalon/salon-booking/internal/otp"
	"github.com/padlasalon/salon-booking/internal/usecase/identity"
)

type AuthHandler struct {
	otp     *otp.Manager
	resolve *identity.ResolveOrCreate
	config  *config.Config
}

func NewAuthHandler(
	otpManager *otp.Manager,
	resolve *identity.ResolveOrCreate,
	cfg *config.Config,
) *AuthHandler {
	return &AuthHandler{
		otp:     otpManager,
		resolve: resolve,
		config:  cfg,
	}
}

// --------- Requests ---------

type RequestOTPRequest struct {
	Phone string `json:"phone" binding:"required,min=6"`
}

type VerifyOTPRequest struct {
	Phone string `json:"phone" binding:"required,min=6"`
	Code  string `json:"code" binding:"required,len=6"`
}

// --------- Handlers ---------

func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "A phone number is required.")
		return
	}

	phone := strings.TrimSpace(req.Phone)
	if err := h.otp.Issue(c.Request.Context(), phone); err != nil {
		httperr.Internal(c, "otp_issue_failed", "Could not send a verification code.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "code_sent"})
}

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Phone and 6-digit code are required.")
		return
	}

	phone := strings.TrimSpace(req.Phone)
	ctx := c.Request.Context()

	if err := h.otp.Verify(ctx, phone, req.Code); err != nil {
		httperr.Business(c, err)
		return
	}

	user, err := h.resolve.Execute(ctx, phone, h.config.IsAdminPhone(phone))
	if err != nil {
		httperr.Internal(c, "login_failed", "Could not resolve the account.")
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not create a session.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":             user.ID,
			"name":           user.Name,
			"phone":          user.Phone,
			"role":           user.Role,
			"loyalty_points": user.LoyaltyPoints,
		},
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
