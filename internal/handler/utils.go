package handler

import (
	"net/http"
	"strconv"

	"github.com/GurshaanDaula/Assignment2-Database/internal/model"
	"github.com/GurshaanDaula/Assignment2-Database/internal/pkg/auth"
	"github.com/GurshaanDaula/Assignment2-Database/internal/pkg/httputils"
	"github.com/GurshaanDaula/Assignment2-Database/internal/service"

	"github.com/gorilla/mux"
)

type PongResponse struct {
	Message string `json:"message"`
}

// Ping
// @Summary Ping the server
// @Description Liveness check
// @Tags system
// @Produce json
// @Success 200 {object} PongResponse
// @Router /ping [get]
func Ping(w http.ResponseWriter, r *http.Request) {
	httputils.ResponseJSON(w, 200, PongResponse{Message: "Pong"})
}

// currentSession читает подписанную куку и резолвит сессию в Redis.
// Каждое успешное обращение продлевает её TTL.
func currentSession(r *http.Request, signer *auth.CookieSigner, sessions service.SessionService) (*model.Session, bool) {
	id, err := signer.SessionID(r)
	if err != nil {
		return nil, false
	}

	session, err := sessions.Get(id)
	if err != nil {
		return nil, false
	}

	return session, true
}

// requireSession для POST-экшенов: без сессии отвечаем 403 с JSON-телом.
func requireSession(w http.ResponseWriter, r *http.Request, signer *auth.CookieSigner, sessions service.SessionService, message string) (*model.Session, bool) {
	session, ok := currentSession(r, signer, sessions)
	if !ok {
		httputils.ResponseError(w, http.StatusForbidden, message)
		return nil, false
	}
	return session, true
}

func pathID(r *http.Request, name string) (uint, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}
