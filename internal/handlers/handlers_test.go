package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/padlasalon/salon-booking/internal/ai"
	"github.com/padlasalon/salon-booking/internal/audit"
	"github.com/padlasalon/salon-booking/internal/catalog"
	"github.com/padlasalon/salon-booking/internal/config"
	"github.com/padlasalon/salon-booking/internal/handlers"
	"github.com/padlasalon/salon-booking/internal/infra/repository"
	"github.com/padlasalon/salon-booking/internal/kv"
	"github.com/padlasalon/salon-booking/internal/middleware"
	"github.com/padlasalon/salon-booking/internal/models"
	"github.com/padlasalon/salon-booking/internal/otp"
	ucBooking "github.com/padlasalon/salon-booking/internal/usecase/booking"
	"github.com/padlasalon/salon-booking/internal/usecase/identity"
)

const testSecret = "test-secret"

type app struct {
	router *gin.Engine
	repo   *repository.Memory
	logs   *observer.ObservedLogs
}

// newApp wires the full route table against the in-memory backends.
func newApp(t *testing.T) *app {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemory(catalog.Services(), catalog.Stylists())
	store := kv.NewMemory()
	cfg := &config.Config{
		JWTSecret:   testSecret,
		AdminPhones: []string{"9999999999"},
	}
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)

	rec := audit.Nop{}
	otpManager := otp.NewManager(store, log)
	aiClient := ai.NewClient("", store, log)

	createUC := ucBooking.NewCreateBooking(repo, rec)
	confirmUC := ucBooking.NewConfirmBooking(repo, rec)
	cancelUC := ucBooking.NewCancelBooking(repo, rec)
	completeUC := ucBooking.NewCompleteBooking(repo, rec)
	quoteUC := ucBooking.NewQuoteBooking(repo)
	listUC := ucBooking.NewListBookings(repo)
	availabilityUC := ucBooking.NewGetAvailability(repo)
	statsUC := ucBooking.NewGetStats(repo)
	resolveUC := identity.NewResolveOrCreate(repo)

	authHandler := handlers.NewAuthHandler(otpManager, resolveUC, cfg)
	catalogHandler := handlers.NewCatalogHandler(repo, availabilityUC)
	bookingHandler := handlers.NewBookingHandler(createUC, quoteUC, listUC)
	adminHandler := handlers.NewAdminHandler(confirmUC, cancelUC, completeUC, listUC, statsUC)
	meHandler := handlers.NewMeHandler(repo)
	assistantHandler := handlers.NewAssistantHandler(aiClient, repo)

	r := gin.New()
	api := r.Group("/api")

	api.POST("/auth/otp", authHandler.RequestOTP)
	api.POST("/auth/verify", authHandler.VerifyOTP)

	api.GET("/catalog/services", catalogHandler.ListServices)
	api.GET("/catalog/stylists", catalogHandler.ListStylists)
	api.GET("/catalog/slots", catalogHandler.Slots)
	api.GET("/availability", catalogHandler.Stylists)

	open := api.Group("/")
	open.Use(middleware.OptionalAuth(cfg))
	open.POST("/bookings", bookingHandler.Create)
	open.POST("/bookings/quote", bookingHandler.Quote)

	secured := api.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	secured.GET("/me", meHandler.GetMe)
	secured.GET("/me/bookings", bookingHandler.ListMine)
	secured.GET("/assistant/suggestion", assistantHandler.Suggestion)

	api.POST("/assistant/chat", assistantHandler.Chat)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireAdmin())
	admin.GET("/bookings", adminHandler.List)
	admin.GET("/stats", adminHandler.Stats)
	admin.PATCH("/bookings/:id/confirm", adminHandler.Confirm)
	admin.PATCH("/bookings/:id/cancel", adminHandler.Cancel)
	admin.PATCH("/bookings/:id/complete", adminHandler.Complete)

	return &app{router: r, repo: repo, logs: logs}
}

func (a *app) seedUser(t *testing.T, id, phone, role string, points int) {
	t.Helper()

	err := a.repo.CreateUser(context.Background(), &models.User{
		ID:            id,
		Name:          "Rahul Varma",
		Phone:         phone,
		Role:          role,
		LoyaltyPoints: points,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

func mintToken(t *testing.T, userID, role string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func (a *app) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

// ======================================================
// AUTH
// ======================================================

func TestLoginFlow(t *testing.T) {
	a := newApp(t)

	w := a.do(t, http.MethodPost, "/api/auth/otp", "", gin.H{"phone": "9800000001"})
	if w.Code != http.StatusOK {
		t.Fatalf("otp status = %d: %s", w.Code, w.Body.String())
	}

	var code string
	for _, entry := range a.logs.All() {
		if entry.Message == "otp issued" {
			code = entry.ContextMap()["code"].(string)
		}
	}
	if code == "" {
		t.Fatal("no code logged")
	}

	w = a.do(t, http.MethodPost, "/api/auth/verify", "", gin.H{
		"phone": "9800000001",
		"code":  code,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("verify status = %d: %s", w.Code, w.Body.String())
	}

	out := decode(t, w)
	if out["token"] == "" || out["token"] == nil {
		t.Error("no token issued")
	}
	user := out["user"].(map[string]any)
	if user["role"] != models.RoleCustomer {
		t.Errorf("role = %v, want CUSTOMER", user["role"])
	}
	if user["loyalty_points"].(float64) != 0 {
		t.Errorf("points = %v, want 0", user["loyalty_points"])
	}
}

func TestLoginAdminPhone(t *testing.T) {
	a := newApp(t)

	a.do(t, http.MethodPost, "/api/auth/otp", "", gin.H{"phone": "9999999999"})

	var code string
	for _, entry := range a.logs.All() {
		if entry.Message == "otp issued" {
			code = entry.ContextMap()["code"].(string)
		}
	}

	w := a.do(t, http.MethodPost, "/api/auth/verify", "", gin.H{
		"phone": "9999999999",
		"code":  code,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("verify status = %d: %s", w.Code, w.Body.String())
	}
	user := decode(t, w)["user"].(map[string]any)
	if user["role"] != models.RoleAdmin {
		t.Errorf("role = %v, want ADMIN", user["role"])
	}
}

func TestVerifyWrongCode(t *testing.T) {
	a := newApp(t)

	a.do(t, http.MethodPost, "/api/auth/otp", "", gin.H{"phone": "9800000001"})

	w := a.do(t, http.MethodPost, "/api/auth/verify", "", gin.H{
		"phone": "9800000001",
		"code":  "000000",
	})
	// One-in-a-million collision with the real code is acceptable here.
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

// ======================================================
// BOOKINGS
// ======================================================

func TestGuestBookingOverHTTP(t *testing.T) {
	a := newApp(t)

	w := a.do(t, http.MethodPost, "/api/bookings", "", gin.H{
		"service_ids": []string{"s1", "s2"},
		"stylist_id":  "b1",
		"date":        "2026-09-01",
		"time_slot":   "10:00",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	out := decode(t, w)
	if out["status"] != "PENDING" {
		t.Errorf("status = %v, want PENDING", out["status"])
	}
	if out["user_name"] != "Guest User" {
		t.Errorf("user_name = %v, want Guest User", out["user_name"])
	}
	if out["total_price"].(float64) != 450 {
		t.Errorf("total_price = %v, want 450", out["total_price"])
	}
}

func TestBookingRejectsMissingFields(t *testing.T) {
	a := newApp(t)

	w := a.do(t, http.MethodPost, "/api/bookings", "", gin.H{
		"service_ids": []string{"s1"},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestBookingConflictStatus(t *testing.T) {
	a := newApp(t)

	body := gin.H{
		"service_ids": []string{"s1"},
		"stylist_id":  "b1",
		"date":        "2026-09-01",
		"time_slot":   "10:00",
	}
	if w := a.do(t, http.MethodPost, "/api/bookings", "", body); w.Code != http.StatusCreated {
		t.Fatalf("first booking status = %d", w.Code)
	}

	w := a.do(t, http.MethodPost, "/api/bookings", "", body)
	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", w.Code)
	}
	if decode(t, w)["error_code"] != "stylist_unavailable" {
		t.Errorf("error_code = %v", decode(t, w)["error_code"])
	}
}

func TestQuoteOverHTTP(t *testing.T) {
	a := newApp(t)
	a.seedUser(t, "u1", "9800000001", models.RoleCustomer, 200)

	w := a.do(t, http.MethodPost, "/api/bookings/quote", mintToken(t, "u1", models.RoleCustomer), gin.H{
		"service_ids":   []string{"s1", "s2"},
		"redeem_points": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	out := decode(t, w)
	if out["subtotal"].(float64) != 450 || out["discount"].(float64) != 200 || out["total"].(float64) != 250 {
		t.Errorf("quote = %v", out)
	}
}

// ======================================================
// ADMIN
// ======================================================

func TestAdminGates(t *testing.T) {
	a := newApp(t)
	a.seedUser(t, "u1", "9800000001", models.RoleCustomer, 0)

	w := a.do(t, http.MethodGet, "/api/admin/stats", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous status = %d, want 401", w.Code)
	}

	w = a.do(t, http.MethodGet, "/api/admin/stats", mintToken(t, "u1", models.RoleCustomer), nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("customer status = %d, want 403", w.Code)
	}
}

func TestAdminLifecycleOverHTTP(t *testing.T) {
	a := newApp(t)
	a.seedUser(t, "a1", "9999999999", models.RoleAdmin, 0)
	a.seedUser(t, "u1", "9800000001", models.RoleCustomer, 0)
	adminToken := mintToken(t, "a1", models.RoleAdmin)

	w := a.do(t, http.MethodPost, "/api/bookings", mintToken(t, "u1", models.RoleCustomer), gin.H{
		"service_ids": []string{"s1", "s2"},
		"date":        "2026-09-01",
		"time_slot":   "11:00",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}
	id := decode(t, w)["id"].(string)

	w = a.do(t, http.MethodPatch, "/api/admin/bookings/"+id+"/confirm", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("confirm status = %d: %s", w.Code, w.Body.String())
	}

	w = a.do(t, http.MethodPatch, "/api/admin/bookings/"+id+"/complete", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("complete status = %d: %s", w.Code, w.Body.String())
	}
	if decode(t, w)["points_earned"].(float64) != 22 {
		t.Errorf("points_earned = %v, want 22", decode(t, w)["points_earned"])
	}

	w = a.do(t, http.MethodPatch, "/api/admin/bookings/"+id+"/complete", adminToken, nil)
	if w.Code != http.StatusConflict {
		t.Errorf("re-complete status = %d, want 409", w.Code)
	}

	w = a.do(t, http.MethodGet, "/api/admin/stats", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stats status = %d", w.Code)
	}
	if decode(t, w)["total_revenue"].(float64) != 450 {
		t.Errorf("total_revenue = %v, want 450", decode(t, w)["total_revenue"])
	}

	// The customer sees the credited balance.
	w = a.do(t, http.MethodGet, "/api/me", mintToken(t, "u1", models.RoleCustomer), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me status = %d", w.Code)
	}
	if decode(t, w)["loyalty_points"].(float64) != 22 {
		t.Errorf("loyalty_points = %v, want 22", decode(t, w)["loyalty_points"])
	}
}

func TestAdminListByDate(t *testing.T) {
	a := newApp(t)
	a.seedUser(t, "a1", "9999999999", models.RoleAdmin, 0)
	adminToken := mintToken(t, "a1", models.RoleAdmin)

	for _, b := range []gin.H{
		{"service_ids": []string{"s1"}, "date": "2026-09-01", "time_slot": "10:00"},
		{"service_ids": []string{"s2"}, "date": "2026-09-02", "time_slot": "10:00"},
	} {
		if w := a.do(t, http.MethodPost, "/api/bookings", "", b); w.Code != http.StatusCreated {
			t.Fatalf("create status = %d", w.Code)
		}
	}

	w := a.do(t, http.MethodGet, "/api/admin/bookings?date=2026-09-01", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	if decode(t, w)["total"].(float64) != 1 {
		t.Errorf("total = %v, want 1", decode(t, w)["total"])
	}

	w = a.do(t, http.MethodGet, "/api/admin/bookings", adminToken, nil)
	if decode(t, w)["total"].(float64) != 2 {
		t.Errorf("unfiltered total = %v, want 2", decode(t, w)["total"])
	}
}

// ======================================================
// CATALOG / ASSISTANT
// ======================================================

func TestCatalogEndpoints(t *testing.T) {
	a := newApp(t)

	w := a.do(t, http.MethodGet, "/api/catalog/services", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("services status = %d", w.Code)
	}
	if decode(t, w)["total"].(float64) != 5 {
		t.Errorf("services total = %v, want 5", decode(t, w)["total"])
	}

	w = a.do(t, http.MethodGet, "/api/catalog/slots?date=2026-09-01", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("slots status = %d", w.Code)
	}
	if decode(t, w)["total"].(float64) != 20 {
		t.Errorf("slots total = %v, want 20", decode(t, w)["total"])
	}

	w = a.do(t, http.MethodGet, "/api/availability?date=2026-09-01&time=10:00", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("availability status = %d: %s", w.Code, w.Body.String())
	}
}

func TestAssistantChatOverHTTP(t *testing.T) {
	a := newApp(t)

	w := a.do(t, http.MethodPost, "/api/assistant/chat", "", gin.H{
		"message": "Do you do beard styling?",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	out := decode(t, w)
	if out["session_id"] == "" || out["session_id"] == nil {
		t.Error("no session id issued")
	}
	if out["reply"] == "" || out["reply"] == nil {
		t.Error("no reply")
	}
}
