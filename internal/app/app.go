package app

import (
	"log"

	"github.com/GurshaanDaula/Assignment2-Database/internal/config"
	"github.com/GurshaanDaula/Assignment2-Database/internal/handler"
	"github.com/GurshaanDaula/Assignment2-Database/internal/pkg/auth"
	"github.com/GurshaanDaula/Assignment2-Database/internal/repository"
	"github.com/GurshaanDaula/Assignment2-Database/internal/service"

	"github.com/redis/go-redis/v9"
)

func Run(cfg *config.Config) {
	db, err := repository.NewDB(cfg.DSN())
	if err != nil {
		log.Fatal(err)
	}

	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	sessionRepo, err := repository.NewSessionRepository(rdb)
	if err != nil {
		log.Fatal(err)
	}

	userService := service.NewUserService(userRepo)
	sessionService := service.NewSessionService(sessionRepo)
	roomService := service.NewRoomService(roomRepo)
	messageService := service.NewMessageService(roomRepo, messageRepo)

	var avatarService *service.AvatarService
	if cfg.S3Enabled() {
		avatarService, err = service.NewAvatarService(cfg, userRepo)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		log.Println("S3 is not configured, avatar uploads disabled")
	}

	signer := auth.NewCookieSigner(cfg.SessionSecret)

	userHandler := handler.NewUserHandler(userService, sessionService, avatarService, signer)
	roomHandler := handler.NewRoomHandler(roomService, messageService, sessionService, signer)

	server := NewServer(userHandler, roomHandler)
	server.Run(cfg.ServerPort)
}
