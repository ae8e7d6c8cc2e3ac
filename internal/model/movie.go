package model

import (
	"time"

	"github.com/lib/pq"
)

// Movie 电影模型（TMDB 信息）
// ID 直接使用 TMDB 的电影 ID，保证全局稳定
type Movie struct {
	ID            int64         `json:"id" db:"id" gorm:"primaryKey;autoIncrement:false"`
	Title         string        `json:"title" db:"title"`
	OriginalTitle string        `json:"original_title" db:"original_title"`
	Language      string        `json:"original_language" db:"original_language"`
	Region        string        `json:"region" db:"region"`
	ReleaseDate   string        `json:"release_date" db:"release_date"`
	Rating        float64       `json:"vote_average" db:"vote_average" gorm:"index"`
	Popularity    float64       `json:"popularity" db:"popularity"`
	Poster        string        `json:"poster_path" db:"poster_path"`
	Overview      string        `json:"overview" db:"overview"`
	GenreIDs      pq.Int64Array `json:"genre_ids" db:"genre_ids" gorm:"type:integer[]"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at" gorm:"index"`
}

// Actor 演员
type Actor struct {
	ID   int64  `json:"id" db:"id" gorm:"primaryKey"`
	Name string `json:"name" db:"name"`
}

// Review 影评
type Review struct {
	ID        int64     `json:"id" db:"id" gorm:"primaryKey"`
	Author    string    `json:"author" db:"author"`
	Body      string    `json:"body" db:"body"`
	Score     float64   `json:"score" db:"score"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
