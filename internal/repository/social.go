package repository

import (
	"context"
	"time"

	"github.com/user/moviefans/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SocialRepository struct {
	db *gorm.DB
}

func NewSocialRepository(db *gorm.DB) *SocialRepository {
	return &SocialRepository{db: db}
}

// Like 影迷喜欢电影
// 同一事务内先摘掉 dislike 边再写 like 边，保证一对 (影迷, 电影)
// 任何时刻至多处于 喜欢/不喜欢 之一
func (r *SocialRepository) Like(ctx context.Context, fanID, movieID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("fan_id = ? AND movie_id = ?", fanID, movieID).
			Delete(&model.MovieDislike{}).Error; err != nil {
			return err
		}
		edge := &model.MovieLike{FanID: fanID, MovieID: movieID, CreatedAt: time.Now()}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(edge).Error
	})
}

// Dislike 影迷不喜欢电影（与 Like 对称）
func (r *SocialRepository) Dislike(ctx context.Context, fanID, movieID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("fan_id = ? AND movie_id = ?", fanID, movieID).
			Delete(&model.MovieLike{}).Error; err != nil {
			return err
		}
		edge := &model.MovieDislike{FanID: fanID, MovieID: movieID, CreatedAt: time.Now()}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(edge).Error
	})
}

// Recommend 影评人推荐电影（幂等）
func (r *SocialRepository) Recommend(ctx context.Context, criticID, movieID int64) error {
	edge := &model.MovieRecommendation{CriticID: criticID, MovieID: movieID, CreatedAt: time.Now()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(edge).Error
}

// AttachReview 把影评挂接到电影（幂等）
func (r *SocialRepository) AttachReview(ctx context.Context, movieID, reviewID int64) error {
	edge := &model.MovieReview{MovieID: movieID, ReviewID: reviewID}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(edge).Error
}

// AttachCast 把演员挂接到电影（幂等）
func (r *SocialRepository) AttachCast(ctx context.Context, movieID, actorID int64) error {
	edge := &model.MovieCast{MovieID: movieID, ActorID: actorID}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(edge).Error
}

// IsLikedBy 影迷是否喜欢该电影
func (r *SocialRepository) IsLikedBy(ctx context.Context, fanID, movieID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.MovieLike{}).
		Where("fan_id = ? AND movie_id = ?", fanID, movieID).Count(&count).Error
	return count > 0, err
}

// IsDislikedBy 影迷是否不喜欢该电影
func (r *SocialRepository) IsDislikedBy(ctx context.Context, fanID, movieID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.MovieDislike{}).
		Where("fan_id = ? AND movie_id = ?", fanID, movieID).Count(&count).Error
	return count > 0, err
}

// IsRecommendedBy 影评人是否推荐该电影
func (r *SocialRepository) IsRecommendedBy(ctx context.Context, criticID, movieID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.MovieRecommendation{}).
		Where("critic_id = ? AND movie_id = ?", criticID, movieID).Count(&count).Error
	return count > 0, err
}

// FansWhoLiked 喜欢该电影的影迷，按点赞先后排序
func (r *SocialRepository) FansWhoLiked(ctx context.Context, movieID int64) ([]model.Fan, error) {
	fans := make([]model.Fan, 0)
	err := r.db.WithContext(ctx).Model(&model.Fan{}).
		Joins("JOIN movie_likes ON movie_likes.fan_id = fans.id").
		Where("movie_likes.movie_id = ?", movieID).
		Order("movie_likes.id ASC").
		Find(&fans).Error
	return fans, err
}

// FansWhoDisliked 不喜欢该电影的影迷
func (r *SocialRepository) FansWhoDisliked(ctx context.Context, movieID int64) ([]model.Fan, error) {
	fans := make([]model.Fan, 0)
	err := r.db.WithContext(ctx).Model(&model.Fan{}).
		Joins("JOIN movie_dislikes ON movie_dislikes.fan_id = fans.id").
		Where("movie_dislikes.movie_id = ?", movieID).
		Order("movie_dislikes.id ASC").
		Find(&fans).Error
	return fans, err
}

// CriticsWhoRecommended 推荐该电影的影评人
func (r *SocialRepository) CriticsWhoRecommended(ctx context.Context, movieID int64) ([]model.Critic, error) {
	critics := make([]model.Critic, 0)
	err := r.db.WithContext(ctx).Model(&model.Critic{}).
		Joins("JOIN movie_recommendations ON movie_recommendations.critic_id = critics.id").
		Where("movie_recommendations.movie_id = ?", movieID).
		Order("movie_recommendations.id ASC").
		Find(&critics).Error
	return critics, err
}

// ReviewsOf 电影的全部影评
func (r *SocialRepository) ReviewsOf(ctx context.Context, movieID int64) ([]model.Review, error) {
	reviews := make([]model.Review, 0)
	err := r.db.WithContext(ctx).Model(&model.Review{}).
		Joins("JOIN movie_reviews ON movie_reviews.review_id = reviews.id").
		Where("movie_reviews.movie_id = ?", movieID).
		Order("movie_reviews.id ASC").
		Find(&reviews).Error
	return reviews, err
}

// CastOf 电影的演员表
func (r *SocialRepository) CastOf(ctx context.Context, movieID int64) ([]model.Actor, error) {
	actors := make([]model.Actor, 0)
	err := r.db.WithContext(ctx).Model(&model.Actor{}).
		Joins("JOIN movie_cast ON movie_cast.actor_id = actors.id").
		Where("movie_cast.movie_id = ?", movieID).
		Order("movie_cast.id ASC").
		Find(&actors).Error
	return actors, err
}

// RecommendedMovieIDs 批量取出多个影评人的推荐边，按边插入顺序分组
// 推荐流用，一次查询代替逐个影评人加载
func (r *SocialRepository) RecommendedMovieIDs(ctx context.Context, criticIDs []int64) (map[int64][]int64, error) {
	result := make(map[int64][]int64, len(criticIDs))
	if len(criticIDs) == 0 {
		return result, nil
	}
	var edges []model.MovieRecommendation
	err := r.db.WithContext(ctx).
		Where("critic_id IN ?", criticIDs).
		Order("id ASC").
		Find(&edges).Error
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		result[e.CriticID] = append(result[e.CriticID], e.MovieID)
	}
	return result, nil
}

// LikedMovieIDsByFans 批量取出多个影迷的喜欢边，按边插入顺序分组
func (r *SocialRepository) LikedMovieIDsByFans(ctx context.Context, fanIDs []int64) (map[int64][]int64, error) {
	result := make(map[int64][]int64, len(fanIDs))
	if len(fanIDs) == 0 {
		return result, nil
	}
	var edges []model.MovieLike
	err := r.db.WithContext(ctx).
		Where("fan_id IN ?", fanIDs).
		Order("id ASC").
		Find(&edges).Error
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		result[e.FanID] = append(result[e.FanID], e.MovieID)
	}
	return result, nil
}
