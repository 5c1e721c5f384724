package comment

import (
	"context"
	"errors"
	"testing"

	"blogapp/internal/app/board"
	"blogapp/internal/app/user"
	"blogapp/internal/web"

	"go.uber.org/zap"
)

type fakeBoardService struct {
	boards map[uint64]*board.Board
}

func (f *fakeBoardService) GetBoardByID(ctx context.Context, id uint64) (*board.Board, error) {
	b, ok := f.boards[id]
	if !ok {
		return nil, web.ErrNotFound
	}
	return b, nil
}

func (f *fakeBoardService) CreateBoard(ctx context.Context, principal *user.User, req board.SaveRequest) (*board.Board, error) {
	panic("not used")
}

func (f *fakeBoardService) UpdateBoard(ctx context.Context, principal *user.User, id uint64, req board.SaveRequest) (*board.Board, error) {
	panic("not used")
}

func (f *fakeBoardService) DeleteBoard(ctx context.Context, principal *user.User, id uint64) error {
	panic("not used")
}

func (f *fakeBoardService) GetBoardPage(ctx context.Context, page int) (*board.Page, error) {
	panic("not used")
}

type fakeRepository struct {
	saved     []*Comment
	byBoard   map[uint64][]*Comment
	saveCalls int
}

func (f *fakeRepository) Save(comment *Comment) error {
	f.saveCalls++
	comment.ID = uint64(len(f.saved) + 1)
	f.saved = append(f.saved, comment)
	return nil
}

func (f *fakeRepository) FindByBoardID(boardID uint64) ([]*Comment, error) {
	return f.byBoard[boardID], nil
}

func newTestService(repo Repository, boards board.Service) Service {
	return NewService(repo, boards, nil, zap.NewNop())
}

func TestCreateCommentParentMustExist(t *testing.T) {
	repo := &fakeRepository{}
	boards := &fakeBoardService{boards: map[uint64]*board.Board{}}
	svc := newTestService(repo, boards)

	principal := &user.User{ID: 1, Username: "ssar"}
	_, err := svc.CreateComment(context.Background(), principal, 9, SaveRequest{Content: "hi"})
	if !errors.Is(err, web.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if repo.saveCalls != 0 {
		t.Fatalf("expected no write for missing board, got %d saves", repo.saveCalls)
	}
}

func TestCreateCommentWithPrincipal(t *testing.T) {
	repo := &fakeRepository{}
	boards := &fakeBoardService{boards: map[uint64]*board.Board{
		5: {ID: 5, Title: "post", UserID: 2},
	}}
	svc := newTestService(repo, boards)

	principal := &user.User{ID: 1, Username: "ssar"}
	created, err := svc.CreateComment(context.Background(), principal, 5, SaveRequest{Content: "nice post"})
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if created.BoardID != 5 {
		t.Errorf("expected board 5, got %d", created.BoardID)
	}
	if created.UserID == nil || *created.UserID != principal.ID {
		t.Errorf("expected author %d, got %v", principal.ID, created.UserID)
	}
}

// Comment creation deliberately accepts a missing principal: the
// author column stays NULL and the write still happens.
func TestCreateCommentWithoutPrincipal(t *testing.T) {
	repo := &fakeRepository{}
	boards := &fakeBoardService{boards: map[uint64]*board.Board{
		5: {ID: 5, Title: "post", UserID: 2},
	}}
	svc := newTestService(repo, boards)

	created, err := svc.CreateComment(context.Background(), nil, 5, SaveRequest{Content: "drive-by"})
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if created.UserID != nil {
		t.Errorf("expected anonymous author, got %v", *created.UserID)
	}
	if repo.saveCalls != 1 {
		t.Fatalf("expected one save, got %d", repo.saveCalls)
	}
}

func TestGetCommentsMissingBoard(t *testing.T) {
	repo := &fakeRepository{}
	boards := &fakeBoardService{boards: map[uint64]*board.Board{}}
	svc := newTestService(repo, boards)

	_, err := svc.GetCommentsByBoardID(context.Background(), 9)
	if !errors.Is(err, web.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
