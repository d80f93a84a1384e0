package model

import "gorm.io/gorm"

type Room struct {
	gorm.Model
	Name string `json:"name"`
}

// NoMessageRead — сентинел "ещё ничего не прочитано" для членства.
const NoMessageRead uint = 0

// RoomUser связывает пользователя с комнатой и хранит позицию чтения.
// Пара (room_id, user_id) уникальна: повторный join не создает вторую строку.
type RoomUser struct {
	gorm.Model
	RoomID            uint `json:"room_id" gorm:"uniqueIndex:idx_room_user"`
	UserID            uint `json:"user_id" gorm:"uniqueIndex:idx_room_user"`
	LastReadMessageID uint `json:"last_read_message_id" gorm:"default:0"`
}
