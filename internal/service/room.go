package service

import (
	"errors"

	"github.com/GurshaanDaula/Assignment2-Database/internal/model"
	"github.com/GurshaanDaula/Assignment2-Database/internal/repository"

	"gorm.io/gorm"
)

type roomService struct {
	roomRepo repository.RoomRepository
}

func NewRoomService(roomRepo repository.RoomRepository) RoomService {
	return &roomService{roomRepo: roomRepo}
}

// JoinRoom идемпотентен: повторный вход в комнату ничего не меняет.
func (s *roomService) JoinRoom(userID, roomID uint) error {
	if userID == 0 || roomID == 0 {
		return errors.New("userID and roomID cannot be zero")
	}

	if _, err := s.roomRepo.FindByID(roomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		return err
	}

	return s.roomRepo.CreateMembership(&model.RoomUser{
		RoomID:            roomID,
		UserID:            userID,
		LastReadMessageID: model.NoMessageRead,
	})
}

func (s *roomService) ListRoomsForUser(userID uint) ([]model.Room, error) {
	if userID == 0 {
		return nil, errors.New("userID cannot be zero")
	}

	return s.roomRepo.ListForUser(userID)
}

func (s *roomService) ListAllRooms() ([]model.Room, error) {
	return s.roomRepo.ListAll()
}

func (s *roomService) GetRoom(roomID uint) (*model.Room, error) {
	room, err := s.roomRepo.FindByID(roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}
