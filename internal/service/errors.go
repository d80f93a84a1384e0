package service

import "errors"

var (
	ErrWeakPassword     = errors.New("password must be at least 10 characters long and include an uppercase letter, a lowercase letter, a number, and a special character")
	ErrEmailTaken       = errors.New("email already in use")
	ErrUserNotFound     = errors.New("user not found")
	ErrWrongPassword    = errors.New("incorrect password")
	ErrRoomNotFound     = errors.New("room not found")
	ErrNotMember        = errors.New("room or user not found")
	ErrMessageNotInRoom = errors.New("message does not belong to this room")
	ErrEmptyMessage     = errors.New("message text is required")
)
