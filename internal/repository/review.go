package repository

import (
	"context"
	"errors"
	"time"

	"github.com/user/moviefans/internal/model"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// FindByID 根据 ID 查找影评
func (r *ReviewRepository) FindByID(ctx context.Context, id int64) (*model.Review, error) {
	var review model.Review
	err := r.db.WithContext(ctx).First(&review, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// Create 创建影评
func (r *ReviewRepository) Create(ctx context.Context, review *model.Review) error {
	review.CreatedAt = time.Now()
	return r.db.WithContext(ctx).Create(review).Error
}
