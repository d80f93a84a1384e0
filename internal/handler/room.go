package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/GurshaanDaula/Assignment2-Database/internal/model"
	"github.com/GurshaanDaula/Assignment2-Database/internal/pkg/auth"
	"github.com/GurshaanDaula/Assignment2-Database/internal/pkg/httputils"
	"github.com/GurshaanDaula/Assignment2-Database/internal/service"

	"github.com/gorilla/mux"
)

type RoomHandler struct {
	roomService    service.RoomService
	messageService service.MessageService
	sessionService service.SessionService
	signer         *auth.CookieSigner
}

func NewRoomHandler(roomService service.RoomService, messageService service.MessageService, sessionService service.SessionService, signer *auth.CookieSigner) *RoomHandler {
	return &RoomHandler{
		roomService:    roomService,
		messageService: messageService,
		sessionService: sessionService,
		signer:         signer,
	}
}

func (h *RoomHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/", h.home).Methods("GET")
	router.HandleFunc("/chatrooms", h.listRooms).Methods("GET", "OPTIONS")
	router.HandleFunc("/chat/{room_id}", h.chatPage).Methods("GET")
	router.HandleFunc("/join-chat/{room_id}", h.joinRoom).Methods("POST", "OPTIONS")
	router.HandleFunc("/send-message/{room_id}", h.sendMessage).Methods("POST", "OPTIONS")
	router.HandleFunc("/read-message/{room_id}/{message_id}", h.readMessage).Methods("POST", "OPTIONS")
}

type homePage struct {
	Username    string
	UserID      uint
	Rooms       []model.Room
	JoinedRooms []model.Room
}

func (h *RoomHandler) home(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(r, h.signer, h.sessionService)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	rooms, err := h.roomService.ListAllRooms()
	if err != nil {
		httputils.ResponseError(w, http.StatusInternalServerError, "Database error")
		return
	}

	joined, err := h.roomService.ListRoomsForUser(session.UserID)
	if err != nil {
		httputils.ResponseError(w, http.StatusInternalServerError, "Database error")
		return
	}

	render(w, "index.html", homePage{
		Username:    session.Username,
		UserID:      session.UserID,
		Rooms:       rooms,
		JoinedRooms: joined,
	})
}

type roomsPage struct {
	Rooms []model.Room
}

// @Summary List chatrooms
// @Description List every chat room
// @ID list-chatrooms
// @Produce html
// @Success 200
// @Failure 500 {object} response.ErrorResponse
// @Router /chatrooms [get]
func (h *RoomHandler) listRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.roomService.ListAllRooms()
	if err != nil {
		httputils.ResponseError(w, http.StatusInternalServerError, "Database error")
		return
	}

	render(w, "chatrooms.html", roomsPage{Rooms: rooms})
}

type chatPage struct {
	Room     *model.Room
	Messages []model.RoomMessage
	Username string
}

func (h *RoomHandler) chatPage(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(r, h.signer, h.sessionService)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	roomID, ok := pathID(r, "room_id")
	if !ok {
		httputils.ResponseError(w, http.StatusBadRequest, "Failed to parse room ID")
		return
	}

	room, err := h.roomService.GetRoom(roomID)
	if err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			httputils.ResponseError(w, http.StatusNotFound, "Room not found")
			return
		}
		httputils.ResponseError(w, http.StatusInternalServerError, "Database error")
		return
	}

	messages, err := h.messageService.ListMessages(roomID)
	if err != nil {
		httputils.ResponseError(w, http.StatusInternalServerError, "Database error")
		return
	}

	render(w, "chat.html", chatPage{
		Room:     room,
		Messages: messages,
		Username: session.Username,
	})
}

// @Summary Join a chat room
// @Description Create a membership for the logged in user; joining twice is a no-op
// @ID join-chat
// @Success 302 "Redirect to chat page"
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Param room_id path int true "Room ID"
// @Router /join-chat/{room_id} [post]
func (h *RoomHandler) joinRoom(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r, h.signer, h.sessionService, "You need to be logged in to join a chat")
	if !ok {
		return
	}

	roomID, ok := pathID(r, "room_id")
	if !ok {
		httputils.ResponseError(w, http.StatusBadRequest, "Failed to parse room ID")
		return
	}

	if err := h.roomService.JoinRoom(session.UserID, roomID); err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			httputils.ResponseError(w, http.StatusNotFound, "Room not found")
			return
		}
		httputils.ResponseError(w, http.StatusInternalServerError, "Database error")
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/chat/%d", roomID), http.StatusFound)
}

// @Summary Send a message
// @Description Post a message to a room the user has joined
// @ID send-message
// @Accept x-www-form-urlencoded
// @Success 302 "Redirect to chat page"
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Param room_id path int true "Room ID"
// @Param message formData string true "Message text"
// @Router /send-message/{room_id} [post]
func (h *RoomHandler) sendMessage(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r, h.signer, h.sessionService, "You need to be logged in to send a message")
	if !ok {
		return
	}

	roomID, ok := pathID(r, "room_id")
	if !ok {
		httputils.ResponseError(w, http.StatusBadRequest, "Failed to parse room ID")
		return
	}

	if err := r.ParseForm(); err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	_, err := h.messageService.SendMessage(session.UserID, roomID, r.FormValue("message"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotMember):
			httputils.ResponseError(w, http.StatusNotFound, "Room or user not found")
		case errors.Is(err, service.ErrEmptyMessage):
			httputils.ResponseError(w, http.StatusBadRequest, "Message text is required")
		default:
			httputils.ResponseError(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/chat/%d", roomID), http.StatusFound)
}

// @Summary Mark a message as read
// @Description Move the user's last-read marker in a room
// @ID read-message
// @Success 302 "Redirect to chat page"
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Param room_id path int true "Room ID"
// @Param message_id path int true "Message ID"
// @Router /read-message/{room_id}/{message_id} [post]
func (h *RoomHandler) readMessage(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r, h.signer, h.sessionService, "You need to be logged in to read a message")
	if !ok {
		return
	}

	roomID, ok := pathID(r, "room_id")
	if !ok {
		httputils.ResponseError(w, http.StatusBadRequest, "Failed to parse room ID")
		return
	}

	messageID, ok := pathID(r, "message_id")
	if !ok {
		httputils.ResponseError(w, http.StatusBadRequest, "Failed to parse message ID")
		return
	}

	if err := h.messageService.MarkRead(session.UserID, roomID, messageID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotMember), errors.Is(err, service.ErrMessageNotInRoom):
			httputils.ResponseError(w, http.StatusNotFound, "Room or message not found")
		default:
			httputils.ResponseError(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/chat/%d", roomID), http.StatusFound)
}
