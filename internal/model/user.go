package model

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email             string `json:"email" gorm:"uniqueIndex"`
	Username          string `json:"username"`
	PasswordHash      string `json:"-"`
	ProfilePictureKey string `json:"profile_picture_key"`
}
