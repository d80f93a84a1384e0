package repository

import (
	"fmt"
	"time"

	"github.com/GurshaanDaula/Assignment2-Database/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Комнаты, создаваемые на пустой базе. Управление комнатами вне скоупа,
// приложение рассчитывает на заранее заполненную таблицу.
var defaultRooms = []string{"General", "Random", "Tech Talk"}

func NewDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Настройка пула соединений
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Migrate приводит схему к актуальной и сеет комнаты, если их нет.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Room{},
		&model.RoomUser{},
		&model.Message{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	var count int64
	if err := db.Model(&model.Room{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, name := range defaultRooms {
		if err := db.Create(&model.Room{Name: name}).Error; err != nil {
			return fmt.Errorf("failed to seed room %q: %w", name, err)
		}
	}

	return nil
}
