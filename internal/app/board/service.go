package board

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"blogapp/internal/app/user"
	"blogapp/internal/authz"
	"blogapp/internal/providers/redis"
	"blogapp/internal/utils"
	"blogapp/internal/validation"
	"blogapp/internal/web"

	"go.uber.org/zap"
)

// PageSize is the fixed listing page size; only the zero-based page
// index is configurable per request.
const PageSize = 3

const cachePrefix = "boards:page"

// Service implements the board use cases. The principal is threaded
// in explicitly on every operation; a nil principal means the request
// is unauthenticated.
//
// Update and Delete are fetch-then-authorize-then-write with no
// concurrency control: two concurrent mutations of the same id can
// race. That weak guarantee is intentional and relied upon by nothing.
type Service interface {
	CreateBoard(ctx context.Context, principal *user.User, req SaveRequest) (*Board, error)
	UpdateBoard(ctx context.Context, principal *user.User, id uint64, req SaveRequest) (*Board, error)
	DeleteBoard(ctx context.Context, principal *user.User, id uint64) error
	GetBoardByID(ctx context.Context, id uint64) (*Board, error)
	GetBoardPage(ctx context.Context, page int) (*Page, error)
}

type service struct {
	repo     Repository
	redisP   *redis.RedisProvider
	eventBus *utils.EventBus
	logger   *zap.SugaredLogger
}

func NewService(repo Repository, redisP *redis.RedisProvider, eventBus *utils.EventBus, logger *zap.Logger) Service {
	return &service{
		repo:     repo,
		redisP:   redisP,
		eventBus: eventBus,
		logger:   logger.Sugar(),
	}
}

func (s *service) CreateBoard(ctx context.Context, principal *user.User, req SaveRequest) (*Board, error) {
	if principal == nil {
		return nil, web.ErrUnauthenticated
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	board := &Board{
		Title:   req.Title,
		Content: stripParagraphTags(req.Content),
		UserID:  principal.ID,
	}
	if err := s.repo.Save(board); err != nil {
		return nil, fmt.Errorf("failed to save board: %w", err)
	}

	s.invalidatePageCache(ctx)
	s.publish("board_created", board.ID, principal.ID)
	return board, nil
}

func (s *service) UpdateBoard(ctx context.Context, principal *user.User, id uint64, req SaveRequest) (*Board, error) {
	if principal == nil {
		return nil, web.ErrUnauthenticated
	}

	entity, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(principal, entity.UserID); err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	// Identifier comes from the path and the owner from the principal,
	// never from the payload: a client cannot hand a board to someone
	// else by posting a different owner.
	entity.Title = req.Title
	entity.Content = req.Content
	entity.UserID = principal.ID

	if err := s.repo.Save(entity); err != nil {
		return nil, fmt.Errorf("failed to update board: %w", err)
	}

	s.invalidatePageCache(ctx)
	s.publish("board_updated", entity.ID, principal.ID)
	return entity, nil
}

func (s *service) DeleteBoard(ctx context.Context, principal *user.User, id uint64) error {
	if principal == nil {
		return web.ErrUnauthenticated
	}

	entity, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if err := authz.Authorize(principal, entity.UserID); err != nil {
		return err
	}

	if err := s.repo.DeleteByID(id); err != nil {
		// The repository separates "no such row" from a store failure,
		// but the client-visible outcome stays not-found-shaped for
		// both, matching the established delete contract.
		s.logger.Warnw("Board delete failed", "board_id", id, "error", err)
		return fmt.Errorf("board %d could not be deleted: %w", id, web.ErrNotFound)
	}

	s.invalidatePageCache(ctx)
	s.publish("board_deleted", id, principal.ID)
	return nil
}

func (s *service) GetBoardByID(ctx context.Context, id uint64) (*Board, error) {
	return s.repo.FindByID(id)
}

func (s *service) GetBoardPage(ctx context.Context, page int) (*Page, error) {
	if page < 0 {
		page = 0
	}

	cacheKey := fmt.Sprintf("%s:%d", cachePrefix, page)
	if s.redisP != nil {
		cached, err := s.redisP.Get(ctx, cacheKey).Result()
		if err == nil && cached != "" {
			var p Page
			if json.Unmarshal([]byte(cached), &p) == nil {
				return &p, nil
			}
		}
	}

	boards, total, err := s.repo.FindPage(page, PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get boards: %w", err)
	}

	totalPages := (total + PageSize - 1) / PageSize
	p := &Page{
		Boards:     boards,
		Page:       page,
		Size:       PageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    int64(page+1) < totalPages,
		HasPrev:    page > 0,
	}

	if s.redisP != nil && len(boards) > 0 {
		if data, err := json.Marshal(p); err == nil {
			s.redisP.SetEX(ctx, cacheKey, data, 0)
		}
	}
	return p, nil
}

func (s *service) invalidatePageCache(ctx context.Context) {
	if s.redisP == nil {
		return
	}
	deleted := s.redisP.DelByPattern(ctx, cachePrefix+":*")
	if deleted > 0 {
		s.logger.Debugw("Board page cache invalidated", "deleted_keys", deleted)
	}
}

func (s *service) publish(event string, boardID, userID uint64) {
	if s.eventBus == nil {
		return
	}
	s.eventBus.Publish(event, map[string]any{
		"board_id": boardID,
		"user_id":  userID,
	})
}

// stripParagraphTags removes literal <p> and </p> wrapper markup left
// by the post editor. Content normalization only, not an HTML
// sanitizer.
func stripParagraphTags(content string) string {
	content = strings.ReplaceAll(content, "<p>", "")
	return strings.ReplaceAll(content, "</p>", "")
}
