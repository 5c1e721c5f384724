package comment

import "gorm.io/gorm"

type Repository interface {
	Save(comment *Comment) error
	FindByBoardID(boardID uint64) ([]*Comment, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Save(comment *Comment) error {
	return r.db.Create(comment).Error
}

func (r *repository) FindByBoardID(boardID uint64) ([]*Comment, error) {
	var comments []*Comment
	err := r.db.Preload("User").
		Where("board_id = ?", boardID).
		Order("id ASC").
		Find(&comments).Error
	return comments, err
}
