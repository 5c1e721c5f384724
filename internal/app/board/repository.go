package board

import (
	"errors"
	"fmt"

	"blogapp/internal/web"

	"gorm.io/gorm"
)

type Repository interface {
	FindByID(id uint64) (*Board, error)
	Save(board *Board) error
	DeleteByID(id uint64) error
	FindPage(page, size int) ([]*Board, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(id uint64) (*Board, error) {
	var board Board
	err := r.db.Preload("User").Where("id = ?", id).First(&board).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, web.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *repository) Save(board *Board) error {
	return r.db.Save(board).Error
}

// DeleteByID distinguishes an absent row from a store failure: the
// former maps to web.ErrNotFound, the latter is wrapped and passed up.
func (r *repository) DeleteByID(id uint64) error {
	res := r.db.Delete(&Board{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete board %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return web.ErrNotFound
	}
	return nil
}

// FindPage returns the requested zero-based page sorted by id
// descending, plus the total record count. A page past the end comes
// back empty, not as an error.
func (r *repository) FindPage(page, size int) ([]*Board, int64, error) {
	var total int64
	if err := r.db.Model(&Board{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var boards []*Board
	err := r.db.Preload("User").
		Order("id DESC").
		Offset(page * size).
		Limit(size).
		Find(&boards).Error
	if err != nil {
		return nil, 0, err
	}
	return boards, total, nil
}
