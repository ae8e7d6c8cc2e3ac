package repository

import (
	"context"
	"errors"

	"github.com/user/moviefans/internal/model"
	"gorm.io/gorm"
)

type ActorRepository struct {
	db *gorm.DB
}

func NewActorRepository(db *gorm.DB) *ActorRepository {
	return &ActorRepository{db: db}
}

// FindByID 根据 ID 查找演员
func (r *ActorRepository) FindByID(ctx context.Context, id int64) (*model.Actor, error) {
	var actor model.Actor
	err := r.db.WithContext(ctx).First(&actor, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &actor, nil
}

// Create 创建演员
func (r *ActorRepository) Create(ctx context.Context, actor *model.Actor) error {
	return r.db.WithContext(ctx).Create(actor).Error
}
