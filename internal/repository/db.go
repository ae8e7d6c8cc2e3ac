package repository

import (
	"fmt"

	"github.com/user/moviefans/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 初始化数据库连接
func InitDB(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("无法连接数据库: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库 ping 失败: %w", err)
	}

	// 设置连接池
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	// 自动建表（实体表 + 关系边表）
	if err := db.AutoMigrate(
		&model.Movie{}, &model.Fan{}, &model.Critic{}, &model.Review{}, &model.Actor{},
		&model.MovieLike{}, &model.MovieDislike{}, &model.MovieRecommendation{},
		&model.MovieReview{}, &model.MovieCast{},
		&model.FanFollow{}, &model.CriticFollow{},
	); err != nil {
		return nil, fmt.Errorf("自动建表失败: %w", err)
	}

	return db, nil
}

// Repositories 仓库集合
type Repositories struct {
	DB     *gorm.DB
	Movie  *MovieRepository
	Fan    *FanRepository
	Critic *CriticRepository
	Review *ReviewRepository
	Actor  *ActorRepository
	Social *SocialRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:     db,
		Movie:  NewMovieRepository(db),
		Fan:    NewFanRepository(db),
		Critic: NewCriticRepository(db),
		Review: NewReviewRepository(db),
		Actor:  NewActorRepository(db),
		Social: NewSocialRepository(db),
	}
}
