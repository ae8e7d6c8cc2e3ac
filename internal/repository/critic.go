package repository

import (
	"context"
	"errors"
	"time"

	"github.com/user/moviefans/internal/model"
	"gorm.io/gorm"
)

type CriticRepository struct {
	db *gorm.DB
}

func NewCriticRepository(db *gorm.DB) *CriticRepository {
	return &CriticRepository{db: db}
}

// FindByID 根据 ID 查找影评人
func (r *CriticRepository) FindByID(ctx context.Context, id int64) (*model.Critic, error) {
	var critic model.Critic
	err := r.db.WithContext(ctx).First(&critic, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &critic, nil
}

// FindByUsername 根据用户名查找影评人
func (r *CriticRepository) FindByUsername(ctx context.Context, username string) (*model.Critic, error) {
	var critic model.Critic
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&critic).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &critic, nil
}

// Create 创建影评人
func (r *CriticRepository) Create(ctx context.Context, critic *model.Critic) error {
	critic.CreatedAt = time.Now()
	return r.db.WithContext(ctx).Create(critic).Error
}
