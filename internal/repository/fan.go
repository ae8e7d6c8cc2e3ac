package repository

import (
	"context"
	"errors"
	"time"

	"github.com/user/moviefans/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FanRepository struct {
	db *gorm.DB
}

func NewFanRepository(db *gorm.DB) *FanRepository {
	return &FanRepository{db: db}
}

// FindByID 根据 ID 查找影迷
func (r *FanRepository) FindByID(ctx context.Context, id int64) (*model.Fan, error) {
	var fan model.Fan
	err := r.db.WithContext(ctx).First(&fan, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fan, nil
}

// FindByUsername 根据用户名查找影迷
func (r *FanRepository) FindByUsername(ctx context.Context, username string) (*model.Fan, error) {
	var fan model.Fan
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&fan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fan, nil
}

// Create 创建影迷
func (r *FanRepository) Create(ctx context.Context, fan *model.Fan) error {
	fan.CreatedAt = time.Now()
	return r.db.WithContext(ctx).Create(fan).Error
}

// FollowFan 关注影迷（幂等）
func (r *FanRepository) FollowFan(ctx context.Context, fanID, followsFanID int64) error {
	edge := &model.FanFollow{FanID: fanID, FollowsFanID: followsFanID, CreatedAt: time.Now()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(edge).Error
}

// FollowCritic 关注影评人（幂等）
func (r *FanRepository) FollowCritic(ctx context.Context, fanID, criticID int64) error {
	edge := &model.CriticFollow{FanID: fanID, CriticID: criticID, CreatedAt: time.Now()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(edge).Error
}

// FollowedCriticIDs 获取影迷关注的影评人 ID，按关注先后排序
func (r *FanRepository) FollowedCriticIDs(ctx context.Context, fanID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&model.CriticFollow{}).
		Where("fan_id = ?", fanID).
		Order("id ASC").
		Pluck("critic_id", &ids).Error
	return ids, err
}

// FollowedFanIDs 获取影迷关注的影迷 ID，按关注先后排序
func (r *FanRepository) FollowedFanIDs(ctx context.Context, fanID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&model.FanFollow{}).
		Where("fan_id = ?", fanID).
		Order("id ASC").
		Pluck("follows_fan_id", &ids).Error
	return ids, err
}

// LikedMovieIDs 获取影迷喜欢的电影 ID，按点赞先后排序
func (r *FanRepository) LikedMovieIDs(ctx context.Context, fanID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&model.MovieLike{}).
		Where("fan_id = ?", fanID).
		Order("id ASC").
		Pluck("movie_id", &ids).Error
	return ids, err
}
