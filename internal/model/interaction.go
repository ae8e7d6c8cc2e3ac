package model

import (
	"time"
)

// 社交关系全部落在独立的边表上，每条边由两端 ID 唯一确定。
// 自增主键同时承担插入顺序语义：推荐流按边的写入先后遍历。

// MovieLike 影迷喜欢电影
type MovieLike struct {
	ID        int64     `json:"id" db:"id" gorm:"primaryKey"`
	FanID     int64     `json:"fan_id" db:"fan_id" gorm:"uniqueIndex:uniq_movie_likes_edge"`
	MovieID   int64     `json:"movie_id" db:"movie_id" gorm:"uniqueIndex:uniq_movie_likes_edge"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// MovieDislike 影迷不喜欢电影
type MovieDislike struct {
	ID        int64     `json:"id" db:"id" gorm:"primaryKey"`
	FanID     int64     `json:"fan_id" db:"fan_id" gorm:"uniqueIndex:uniq_movie_dislikes_edge"`
	MovieID   int64     `json:"movie_id" db:"movie_id" gorm:"uniqueIndex:uniq_movie_dislikes_edge"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// MovieRecommendation 影评人推荐电影
type MovieRecommendation struct {
	ID        int64     `json:"id" db:"id" gorm:"primaryKey"`
	CriticID  int64     `json:"critic_id" db:"critic_id" gorm:"uniqueIndex:uniq_movie_recommendations_edge"`
	MovieID   int64     `json:"movie_id" db:"movie_id" gorm:"uniqueIndex:uniq_movie_recommendations_edge"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// MovieReview 影评挂接到电影
type MovieReview struct {
	ID       int64 `json:"id" db:"id" gorm:"primaryKey"`
	MovieID  int64 `json:"movie_id" db:"movie_id" gorm:"uniqueIndex:uniq_movie_reviews_edge"`
	ReviewID int64 `json:"review_id" db:"review_id" gorm:"uniqueIndex:uniq_movie_reviews_edge"`
}

// MovieCast 电影演员表
type MovieCast struct {
	ID      int64 `json:"id" db:"id" gorm:"primaryKey"`
	MovieID int64 `json:"movie_id" db:"movie_id" gorm:"uniqueIndex:uniq_movie_cast_edge"`
	ActorID int64 `json:"actor_id" db:"actor_id" gorm:"uniqueIndex:uniq_movie_cast_edge"`
}

// TableName 指定表名
func (MovieCast) TableName() string {
	return "movie_cast"
}

// FanFollow 影迷关注影迷
type FanFollow struct {
	ID           int64     `json:"id" db:"id" gorm:"primaryKey"`
	FanID        int64     `json:"fan_id" db:"fan_id" gorm:"uniqueIndex:uniq_fan_follows_edge"`
	FollowsFanID int64     `json:"follows_fan_id" db:"follows_fan_id" gorm:"uniqueIndex:uniq_fan_follows_edge"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// CriticFollow 影迷关注影评人
type CriticFollow struct {
	ID        int64     `json:"id" db:"id" gorm:"primaryKey"`
	FanID     int64     `json:"fan_id" db:"fan_id" gorm:"uniqueIndex:uniq_critic_follows_edge"`
	CriticID  int64     `json:"critic_id" db:"critic_id" gorm:"uniqueIndex:uniq_critic_follows_edge"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
