package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GurshaanDaula/Assignment2-Database/internal/handler"

	"github.com/gorilla/handlers"
)

func testCORSHandler(s *Server) http.Handler {
	// Same middleware stack as in Run
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Requested-With"}),
	)
	return cors(s.router)
}

func TestCORSPreflightRequest(t *testing.T) {
	server := NewServer(&handler.UserHandler{}, &handler.RoomHandler{})

	req := httptest.NewRequest("OPTIONS", "/join-chat/1", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	rr := httptest.NewRecorder()
	testCORSHandler(server).ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %v, want *", got)
	}

	allowHeaders := rr.Header().Get("Access-Control-Allow-Headers")
	if allowHeaders == "" {
		t.Error("Access-Control-Allow-Headers should not be empty for OPTIONS request")
	}
}

func TestCORSWithActualRequest(t *testing.T) {
	server := NewServer(&handler.UserHandler{}, &handler.RoomHandler{})

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("Origin", "http://example.com")

	rr := httptest.NewRecorder()
	testCORSHandler(server).ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %v, want *", got)
	}
	if rr.Code != http.StatusOK {
		t.Errorf("GET /ping = %d, want %d", rr.Code, http.StatusOK)
	}
}
