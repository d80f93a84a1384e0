package service

import (
	"errors"
	"strings"
	"time"

	"github.com/GurshaanDaula/Assignment2-Database/internal/model"
	"github.com/GurshaanDaula/Assignment2-Database/internal/repository"

	"gorm.io/gorm"
)

type messageService struct {
	roomRepo    repository.RoomRepository
	messageRepo repository.MessageRepository
}

func NewMessageService(roomRepo repository.RoomRepository, messageRepo repository.MessageRepository) MessageService {
	return &messageService{
		roomRepo:    roomRepo,
		messageRepo: messageRepo,
	}
}

// SendMessage требует существующего членства: кто не входил в комнату,
// тот в ней не пишет.
func (s *messageService) SendMessage(userID, roomID uint, text string) (*model.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	membership, err := s.roomRepo.GetMembership(roomID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotMember
		}
		return nil, err
	}

	message := &model.Message{
		RoomUserID: membership.ID,
		Text:       text,
		SentAt:     time.Now(),
	}
	if err := s.messageRepo.Create(message); err != nil {
		return nil, err
	}

	return message, nil
}

func (s *messageService) ListMessages(roomID uint) ([]model.RoomMessage, error) {
	if roomID == 0 {
		return nil, errors.New("roomID cannot be zero")
	}

	return s.messageRepo.ListForRoom(roomID)
}

// MarkRead двигает маркер прочитанного. Сообщение обязано принадлежать
// этой же комнате, иначе маркер не трогаем.
func (s *messageService) MarkRead(userID, roomID, messageID uint) error {
	membership, err := s.roomRepo.GetMembership(roomID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotMember
		}
		return err
	}

	ok, err := s.messageRepo.ExistsInRoom(messageID, roomID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrMessageNotInRoom
	}

	return s.roomRepo.SetLastRead(membership.ID, messageID)
}
