package seeder

import (
	"blogapp/internal/app/board"
	"blogapp/internal/app/session"
	"blogapp/internal/app/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Seeder struct {
	db       *gorm.DB
	sessions session.Service
	logger   *zap.Logger
}

func NewSeeder(db *gorm.DB, sessions session.Service, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:       db,
		sessions: sessions,
		logger:   logger,
	}
}

func (s *Seeder) Seed() error {
	s.logger.Info("Running database seeders...")

	if err := s.seedDemoData(); err != nil {
		return err
	}

	s.logger.Info("Database seeders completed successfully")
	return nil
}

// seedDemoData creates a demo author with a few posts and an active
// session so a fresh environment is browsable immediately.
func (s *Seeder) seedDemoData() error {
	var count int64
	s.db.Model(&user.User{}).Count(&count)
	if count > 0 {
		s.logger.Info("Users already exist, skipping seed")
		return nil
	}

	author := &user.User{Username: "demo", Email: "demo@blogapp.local"}
	if err := s.db.Create(author).Error; err != nil {
		return err
	}

	boards := []board.Board{
		{Title: "Welcome", Content: "First post on this blog.", UserID: author.ID},
		{Title: "Second post", Content: "Pagination needs more than one post.", UserID: author.ID},
		{Title: "Third post", Content: "And a third for a full page.", UserID: author.ID},
		{Title: "Fourth post", Content: "This one lands on page two.", UserID: author.ID},
	}
	if err := s.db.Create(&boards).Error; err != nil {
		return err
	}

	sess, err := s.sessions.IssueSession(author.ID)
	if err != nil {
		return err
	}

	s.logger.Info("Seeded demo data",
		zap.String("username", author.Username),
		zap.Int("boards", len(boards)),
		zap.String("session_key", sess.SessionKey),
	)
	return nil
}
