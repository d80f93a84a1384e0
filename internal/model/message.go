package model

import (
	"time"

	"gorm.io/gorm"
)

// Message принадлежит членству (RoomUser), а не пользователю напрямую:
// автор и комната восстанавливаются только через строку членства.
type Message struct {
	gorm.Model
	RoomUserID uint      `json:"room_user_id"`
	Text       string    `json:"text"`
	SentAt     time.Time `json:"sent_at"`
}

// RoomMessage — строка выдачи сообщений комнаты вместе с именем автора.
type RoomMessage struct {
	MessageID uint      `json:"message_id"`
	Text      string    `json:"text"`
	SentAt    time.Time `json:"sent_at"`
	Username  string    `json:"username"`
}
