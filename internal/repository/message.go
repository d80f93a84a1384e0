package repository

import (
	"github.com/GurshaanDaula/Assignment2-Database/internal/model"

	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(message *model.Message) error
	ListForRoom(roomID uint) ([]model.RoomMessage, error)
	ExistsInRoom(messageID, roomID uint) (bool, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *model.Message) error {
	return r.db.Create(message).Error
}

// ListForRoom отдает сообщения комнаты вместе с именем автора.
// Автор восстанавливается через членство: message -> room_user -> user.
// Сортировка по времени отправки, id как детерминированный tiebreak.
func (r *messageRepository) ListForRoom(roomID uint) ([]model.RoomMessage, error) {
	var messages []model.RoomMessage
	err := r.db.Model(&model.Message{}).
		Select("messages.id AS message_id, messages.text, messages.sent_at, users.username").
		Joins("JOIN room_users ON room_users.id = messages.room_user_id").
		Joins("JOIN users ON users.id = room_users.user_id").
		Where("room_users.room_id = ?", roomID).
		Order("messages.sent_at ASC, messages.id ASC").
		Scan(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) ExistsInRoom(messageID, roomID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Message{}).
		Joins("JOIN room_users ON room_users.id = messages.room_user_id").
		Where("messages.id = ? AND room_users.room_id = ?", messageID, roomID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
