package comment

import (
	"context"
	"fmt"

	"blogapp/internal/app/board"
	"blogapp/internal/app/user"
	"blogapp/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	CreateComment(ctx context.Context, principal *user.User, boardID uint64, req SaveRequest) (*Comment, error)
	GetCommentsByBoardID(ctx context.Context, boardID uint64) ([]*Comment, error)
}

type service struct {
	repo     Repository
	boardSvc board.Service
	eventBus *utils.EventBus
	logger   *zap.SugaredLogger
}

func NewService(repo Repository, boardSvc board.Service, eventBus *utils.EventBus, logger *zap.Logger) Service {
	return &service{
		repo:     repo,
		boardSvc: boardSvc,
		eventBus: eventBus,
		logger:   logger.Sugar(),
	}
}

// CreateComment appends a comment to an existing board. Unlike the
// board write paths it performs no authentication check: a nil
// principal is stored as an anonymous author. That asymmetry matches
// the established product behavior; tightening it is a product
// decision, not a code one.
func (s *service) CreateComment(ctx context.Context, principal *user.User, boardID uint64, req SaveRequest) (*Comment, error) {
	boardEntity, err := s.boardSvc.GetBoardByID(ctx, boardID)
	if err != nil {
		return nil, err
	}

	comment := &Comment{
		Content: req.Content,
		BoardID: boardEntity.ID,
	}
	if principal != nil {
		comment.UserID = &principal.ID
	}

	if err := s.repo.Save(comment); err != nil {
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}

	if s.eventBus != nil {
		s.eventBus.Publish("comment_created", map[string]any{
			"comment_id": comment.ID,
			"board_id":   boardID,
		})
	}
	return comment, nil
}

func (s *service) GetCommentsByBoardID(ctx context.Context, boardID uint64) ([]*Comment, error) {
	if _, err := s.boardSvc.GetBoardByID(ctx, boardID); err != nil {
		return nil, err
	}

	comments, err := s.repo.FindByBoardID(boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	return comments, nil
}
