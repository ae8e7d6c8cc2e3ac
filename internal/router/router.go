package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/moviefans/internal/handler"
	"github.com/user/moviefans/internal/middleware"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// ==================== 目录浏览 ====================
		api.GET("/search/movies", h.SearchMovies)
		api.GET("/movies/top_rated", h.TopRatedMovies)
		api.GET("/movies/now_playing", h.NowPlayingMovies)
		api.GET("/movies/popular", h.PopularMovies)
		api.GET("/movies/upcoming", h.UpcomingMovies)
		api.GET("/movies/:id", h.FindMovieByID)
		api.GET("/movies", h.AllMovies)
		api.POST("/movie", h.CreateMovie)

		// ==================== 社交关系 ====================
		api.POST("/like/movie/:movieId/fan/:username", h.LikeMovie)
		api.POST("/dislike/movie/:movieId/fan/:username", h.DislikeMovie)
		api.POST("/recommend/movie/:movieId/critic/:username", h.RecommendMovie)
		api.POST("/reviews/movie/:movieId/review/:reviewId", h.ReviewMovie)

		api.GET("/check/like/fan/:username/movie/:movieId", h.CheckLike)
		api.GET("/check/dislike/fan/:username/movie/:movieId", h.CheckDislike)
		api.GET("/check/recommend/critic/:username/movie/:movieId", h.CheckRecommend)

		api.GET("/like/movie/:movieId/likedbyfans", h.FansWhoLiked)
		api.GET("/dislike/movie/:movieId/dislikedbyfans", h.FansWhoDisliked)
		api.GET("/recommend/movie/:movieId/recommendedby", h.CriticsWhoRecommended)
		api.GET("/movie/:movieId/reviews", h.MovieReviews)
		api.GET("/movie/:movieId/cast", h.MovieCast)

		// ==================== 推荐流 ====================
		api.GET("/fan/:id/movies/recommended", h.RecommendedForFan)

		// ==================== 实体与关注 ====================
		api.POST("/fan", h.CreateFan)
		api.POST("/critic", h.CreateCritic)
		api.POST("/review", h.CreateReview)
		api.POST("/actor", h.CreateActor)
		api.POST("/fan/:username/follows/fan/:target", h.FollowFan)
		api.POST("/fan/:username/follows/critic/:critic", h.FollowCritic)
		api.POST("/cast/movie/:movieId/actor/:actorId", h.AttachCast)
	}

	// ==================== 管理端 ====================
	admin := r.Group("/api/admin")
	admin.Use(middleware.RequireAuth(h.Config.AppSecret))
	admin.Use(middleware.RequireAdmin())
	{
		admin.POST("/cache/clean", h.AdminCacheClean)
		admin.GET("/stats", h.AdminStats)
	}
}
