package model

// Session — серверное состояние сессии, хранится в Redis по opaque id.
type Session struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}
