package handler

import (
	"github.com/user/moviefans/internal/config"
	"github.com/user/moviefans/internal/service"
)

// Handler HTTP 处理器
type Handler struct {
	Config      *config.Config
	Movies      *service.MovieService
	Social      *service.SocialService
	Recommender *service.Recommender
}

// NewHandler 创建处理器
func NewHandler(cfg *config.Config, movies *service.MovieService,
	social *service.SocialService, rec *service.Recommender) *Handler {
	return &Handler{
		Config:      cfg,
		Movies:      movies,
		Social:      social,
		Recommender: rec,
	}
}
