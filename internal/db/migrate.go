package db

import (
	"blogapp/internal/app/board"
	"blogapp/internal/app/comment"
	"blogapp/internal/app/session"
	"blogapp/internal/app/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB, logger *zap.Logger) error {
	if err := db.AutoMigrate(
		&user.User{},
		&session.Session{},
		&board.Board{},
		&comment.Comment{},
	); err != nil {
		return err
	}
	logger.Info("Database migrations applied")
	return nil
}
