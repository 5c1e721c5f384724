package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"blogapp/internal/app/user"
	"blogapp/internal/providers/redis"

	"go.uber.org/zap"
)

// Service resolves session keys to principals. Absence of a principal
// is a normal outcome: callers get (nil, nil) semantics through the
// identity middleware, never an error branch they are forced to treat
// as exceptional.
type Service interface {
	IssueSession(userID uint64) (*Session, error)
	GetUserBySessionKey(ctx context.Context, sessionKey string) (*user.User, error)
}

type service struct {
	repo     Repository
	userRepo user.Repository
	redisP   *redis.RedisProvider
	logger   *zap.SugaredLogger
}

func NewService(repo Repository, userRepo user.Repository, redisP *redis.RedisProvider, logger *zap.Logger) Service {
	return &service{
		repo:     repo,
		userRepo: userRepo,
		redisP:   redisP,
		logger:   logger.Sugar(),
	}
}

func (s *service) IssueSession(userID uint64) (*Session, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	_ = s.repo.CloseUserSessions(userID)

	sessionKey, err := generateSessionKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session key: %w", err)
	}

	session := &Session{
		SessionKey: sessionKey,
		UserID:     userID,
		StartedAt:  time.Now().UTC(),
	}
	if err := s.repo.CreateSession(session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

func (s *service) GetUserBySessionKey(ctx context.Context, sessionKey string) (*user.User, error) {
	cacheKey := fmt.Sprintf("user:session:%s", sessionKey)

	if s.redisP != nil {
		cached, err := s.redisP.Get(ctx, cacheKey).Result()
		if err == nil && cached != "" {
			var u user.User
			if json.Unmarshal([]byte(cached), &u) == nil {
				return &u, nil
			}
		}
	}

	session, err := s.repo.GetSessionByKey(sessionKey)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	u, err := s.userRepo.GetByID(session.UserID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	if s.redisP != nil {
		if data, err := json.Marshal(u); err == nil {
			s.redisP.SetEX(ctx, cacheKey, data, 0)
		}
	}
	return u, nil
}

func generateSessionKey() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
