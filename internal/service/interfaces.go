package service

import (
	"github.com/GurshaanDaula/Assignment2-Database/internal/model"
)

type UserService interface {
	Register(email, username, password string) (*model.User, error)
	Authenticate(email, password string) (*model.User, error)
	GetUserByID(id uint) (*model.User, error)
}

type SessionService interface {
	Create(userID uint, username string) (string, error)
	Get(id string) (*model.Session, error)
	Destroy(id string) error
}

type RoomService interface {
	JoinRoom(userID, roomID uint) error
	ListRoomsForUser(userID uint) ([]model.Room, error)
	ListAllRooms() ([]model.Room, error)
	GetRoom(roomID uint) (*model.Room, error)
}

type MessageService interface {
	SendMessage(userID, roomID uint, text string) (*model.Message, error)
	ListMessages(roomID uint) ([]model.RoomMessage, error)
	MarkRead(userID, roomID, messageID uint) error
}
