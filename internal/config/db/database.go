package db

import (
	"fmt"
	"time"

	"github.com/linskybing/tracker-go/internal/config"
	"github.com/linskybing/tracker-go/internal/domain/activity"
	"github.com/linskybing/tracker-go/internal/domain/board"
	"github.com/linskybing/tracker-go/internal/domain/invitation"
	"github.com/linskybing/tracker-go/internal/domain/project"
	"github.com/linskybing/tracker-go/internal/domain/ticket"
	"github.com/linskybing/tracker-go/internal/domain/user"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Models lists every persisted type in dependency order.
func Models() []any {
	return []any{
		&user.User{},
		&project.Project{},
		&project.Member{},
		&board.Board{},
		&board.Column{},
		&ticket.Ticket{},
		&ticket.Comment{},
		&ticket.History{},
		&ticket.Attachment{},
		&invitation.Invitation{},
		&activity.Log{},
	}
}

func DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
		config.DbSSLMode,
	)
}

// Init opens the connection pool. When migrate is set the schema is brought
// up to date before returning.
func Init(migrate bool) error {
	level := logger.Warn
	if !config.IsProduction() {
		level = logger.Info
	}

	gdb, err := gorm.Open(postgres.Open(DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if migrate {
		if err := Migrate(gdb); err != nil {
			return err
		}
	}

	DB = gdb
	log.Info().Str("host", config.DbHost).Str("db", config.DbName).Msg("database connected")
	return nil
}

func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Info().Int("tables", len(Models())).Msg("database migrated")
	return nil
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}

func Close() {
	if DB == nil {
		return
	}
	if sqlDB, err := DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
