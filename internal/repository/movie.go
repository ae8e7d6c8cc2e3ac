package repository

import (
	"context"
	"errors"
	"time"

	"github.com/user/moviefans/internal/model"
	"gorm.io/gorm"
)

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// FindByID 根据 TMDB ID 查找电影
func (r *MovieRepository) FindByID(ctx context.Context, id int64) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.WithContext(ctx).First(&movie, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// FindAll 获取全部已缓存电影
func (r *MovieRepository) FindAll(ctx context.Context) ([]model.Movie, error) {
	movies := make([]model.Movie, 0)
	err := r.db.WithContext(ctx).Order("id ASC").Find(&movies).Error
	return movies, err
}

// ByIDs 批量查找电影，返回 id -> 电影 映射
func (r *MovieRepository) ByIDs(ctx context.Context, ids []int64) (map[int64]model.Movie, error) {
	result := make(map[int64]model.Movie, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var movies []model.Movie
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&movies).Error; err != nil {
		return nil, err
	}
	for _, m := range movies {
		result[m.ID] = m
	}
	return result, nil
}

// Upsert 创建或更新电影
// 只覆盖目录来源的描述字段，本地维护的关系（喜欢/推荐/影评/演员表）不受影响
func (r *MovieRepository) Upsert(ctx context.Context, movie *model.Movie) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO movies (id, title, original_title, original_language, region,
		                    release_date, vote_average, popularity, poster_path, overview, genre_ids, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			original_title = EXCLUDED.original_title,
			original_language = EXCLUDED.original_language,
			region = EXCLUDED.region,
			release_date = EXCLUDED.release_date,
			vote_average = EXCLUDED.vote_average,
			popularity = EXCLUDED.popularity,
			poster_path = EXCLUDED.poster_path,
			overview = EXCLUDED.overview,
			genre_ids = EXCLUDED.genre_ids,
			updated_at = EXCLUDED.updated_at
	`, movie.ID, movie.Title, movie.OriginalTitle, movie.Language, movie.Region,
		movie.ReleaseDate, movie.Rating, movie.Popularity, movie.Poster, movie.Overview,
		movie.GenreIDs, time.Now()).Error
}

// Save 保存客户端提交的完整电影（POST /api/movie）
func (r *MovieRepository) Save(ctx context.Context, movie *model.Movie) error {
	movie.UpdatedAt = time.Now()
	return r.Upsert(ctx, movie)
}
