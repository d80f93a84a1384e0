package repository

import (
	"github.com/GurshaanDaula/Assignment2-Database/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoomRepository interface {
	FindByID(id uint) (*model.Room, error)
	ListAll() ([]model.Room, error)
	ListForUser(userID uint) ([]model.Room, error)
	GetMembership(roomID, userID uint) (*model.RoomUser, error)
	CreateMembership(membership *model.RoomUser) error
	SetLastRead(roomUserID, messageID uint) error
}

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) FindByID(id uint) (*model.Room, error) {
	var room model.Room
	if err := r.db.First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) ListAll() ([]model.Room, error) {
	var rooms []model.Room
	if err := r.db.Order("id ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) ListForUser(userID uint) ([]model.Room, error) {
	var rooms []model.Room
	err := r.db.Model(&model.Room{}).
		Joins("JOIN room_users ON room_users.room_id = rooms.id").
		Where("room_users.user_id = ? AND room_users.deleted_at IS NULL", userID).
		Order("rooms.id ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) GetMembership(roomID, userID uint) (*model.RoomUser, error) {
	var membership model.RoomUser
	err := r.db.Where("room_id = ? AND user_id = ?", roomID, userID).
		First(&membership).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// CreateMembership вставляет строку членства. Уникальный индекс по
// (room_id, user_id) плюс DoNothing делают повторный join no-op'ом даже
// при одновременных запросах.
func (r *roomRepository) CreateMembership(membership *model.RoomUser) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "room_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(membership).Error
}

func (r *roomRepository) SetLastRead(roomUserID, messageID uint) error {
	return r.db.Model(&model.RoomUser{}).Where("id = ?", roomUserID).
		Update("last_read_message_id", messageID).Error
}
