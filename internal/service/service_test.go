package service

import (
	"fmt"
	"testing"

	"github.com/GurshaanDaula/Assignment2-Database/internal/model"
	"github.com/GurshaanDaula/Assignment2-Database/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fixture struct {
	db       *gorm.DB
	users    UserService
	rooms    RoomService
	messages MessageService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Room{}, &model.RoomUser{}, &model.Message{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	return &fixture{
		db:       db,
		users:    NewUserService(userRepo),
		rooms:    NewRoomService(roomRepo),
		messages: NewMessageService(roomRepo, messageRepo),
	}
}

func (f *fixture) createRoom(t *testing.T, name string) *model.Room {
	t.Helper()
	room := &model.Room{Name: name}
	if err := f.db.Create(room).Error; err != nil {
		t.Fatalf("create room: %v", err)
	}
	return room
}
