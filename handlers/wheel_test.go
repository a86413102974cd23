package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"lovestore-backend/ledger"
	"lovestore-backend/middleware"

	"github.com/gin-gonic/gin"
)

// setupWheelRouter wires the wheel endpoints with a rigged draw so tests
// know which prize comes out.
func setupWheelRouter(svc *ledger.Service, intn func(int) int) *gin.Engine {
	r := gin.New()
	wheelHandler := &WheelHandler{Ledger: svc, Intn: intn}

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	api.POST("/wheel/spin", wheelHandler.Spin)
	api.GET("/wheel/status", wheelHandler.Status)
	return r
}

func TestSpinCreditsPrize(t *testing.T) {
	db := freshDB()
	svc := newTestService(db, 1)
	router := setupWheelRouter(svc, func(int) int { return 3 }) // prize 250
	_, token := seedTestUser(db, "spinner@test.com", "user", 0)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/wheel/spin", nil, token))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := parseResponse(w)
	if resp["prize"] != float64(250) {
		t.Errorf("expected prize 250, got %v", resp["prize"])
	}
	if resp["balance"] != float64(250) {
		t.Errorf("expected balance 250, got %v", resp["balance"])
	}
	if resp["spins_remaining"] != float64(0) {
		t.Errorf("expected 0 spins remaining, got %v", resp["spins_remaining"])
	}
}

func TestSpinTwiceSameDayRejected(t *testing.T) {
	db := freshDB()
	svc := newTestService(db, 1)
	router := setupWheelRouter(svc, func(int) int { return 0 })
	_, token := seedTestUser(db, "greedy@test.com", "user", 0)

	w1 := httptest.NewRecorder()
	router.ServeHTTP(w1, authRequest("POST", "/api/wheel/spin", nil, token))
	if w1.Code != http.StatusOK {
		t.Fatalf("first spin: expected 200, got %d", w1.Code)
	}

	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, authRequest("POST", "/api/wheel/spin", nil, token))
	if w2.Code != http.StatusTooManyRequests {
		t.Fatalf("second spin: expected 429, got %d: %s", w2.Code, w2.Body.String())
	}
}

func TestSpinPrizeComesFromWheelTable(t *testing.T) {
	db := freshDB()
	svc := newTestService(db, len(wheelPrizes))
	router := setupWheelRouter(svc, nil) // real math/rand draw
	_, token := seedTestUser(db, "random@test.com", "user", 0)

	valid := map[float64]bool{}
	for _, p := range wheelPrizes {
		valid[float64(p)] = true
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/wheel/spin", nil, token))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := parseResponse(w)
	prize, ok := resp["prize"].(float64)
	if !ok || !valid[prize] {
		t.Errorf("prize %v is not a wheel segment", resp["prize"])
	}
}

func TestWheelStatusBeforeAndAfterSpin(t *testing.T) {
	db := freshDB()
	svc := newTestService(db, 1)
	router := setupWheelRouter(svc, func(int) int { return 0 })
	_, token := seedTestUser(db, "status@test.com", "user", 0)

	w1 := httptest.NewRecorder()
	router.ServeHTTP(w1, authRequest("GET", "/api/wheel/status", nil, token))
	if w1.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w1.Code)
	}
	resp := parseResponse(w1)
	if resp["can_spin"] != true || resp["spins_remaining"] != float64(1) {
		t.Errorf("expected eligible with 1 remaining, got %v", resp)
	}

	spin := httptest.NewRecorder()
	router.ServeHTTP(spin, authRequest("POST", "/api/wheel/spin", nil, token))
	if spin.Code != http.StatusOK {
		t.Fatalf("spin failed: %d", spin.Code)
	}

	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, authRequest("GET", "/api/wheel/status", nil, token))
	resp = parseResponse(w2)
	if resp["can_spin"] != false || resp["spins_remaining"] != float64(0) {
		t.Errorf("expected ineligible with 0 remaining, got %v", resp)
	}
}

func TestSpinRequiresAuth(t *testing.T) {
	db := freshDB()
	router := setupWheelRouter(newTestService(db, 1), nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/wheel/spin", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
