package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/user/moviefans/internal/model"
	"github.com/user/moviefans/internal/service"
)

// browse 类别接口共用的逻辑：目录失败按契约降级成空列表，库失败是 500
func (h *Handler) browse(c *gin.Context, kind service.FetchKind, query string) {
	lang := c.DefaultQuery("lang", "en-US")
	region := c.DefaultQuery("region", "us")
	page := c.DefaultQuery("page", "1")

	movies, err := h.Movies.Browse(c.Request.Context(), kind, lang, region, query, page)
	if err != nil {
		if errors.Is(err, service.ErrUpstreamUnavailable) {
			c.JSON(http.StatusOK, []model.Movie{})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, movies)
}

// SearchMovies 搜索电影
func (h *Handler) SearchMovies(c *gin.Context) {
	query := c.Query("query")

	// 记住访客最近一次搜索词
	if query != "" {
		session := sessions.Default(c)
		session.Set("last_query", query)
		if err := session.Save(); err != nil {
			log.Printf("[Session] 保存失败: %v", err)
		}
	}

	h.browse(c, service.KindSearch, query)
}

// TopRatedMovies 高分榜
func (h *Handler) TopRatedMovies(c *gin.Context) {
	h.browse(c, service.KindTopRated, "")
}

// NowPlayingMovies 正在上映
func (h *Handler) NowPlayingMovies(c *gin.Context) {
	h.browse(c, service.KindNowPlaying, "")
}

// PopularMovies 热门榜
func (h *Handler) PopularMovies(c *gin.Context) {
	h.browse(c, service.KindPopular, "")
}

// UpcomingMovies 即将上映
func (h *Handler) UpcomingMovies(c *gin.Context) {
	h.browse(c, service.KindUpcoming, "")
}

// FindMovieByID 按 TMDB ID 获取单部电影
func (h *Handler) FindMovieByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, nil)
		return
	}

	movie, err := h.Movies.Find(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUpstreamUnavailable) {
			c.JSON(http.StatusNotFound, nil)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, movie)
}

// AllMovies 全部已缓存电影
func (h *Handler) AllMovies(c *gin.Context) {
	movies, err := h.Movies.All(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, movies)
}

// CreateMovie 客户端直接提交电影
func (h *Handler) CreateMovie(c *gin.Context) {
	var movie model.Movie
	if err := c.ShouldBindJSON(&movie); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if err := h.Movies.Save(c.Request.Context(), &movie); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, movie)
}

// RecommendedForFan 影迷的个性化推荐流
func (h *Handler) RecommendedForFan(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, []model.Movie{})
		return
	}

	feed, err := h.Recommender.Feed(c.Request.Context(), id)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, feed)
}
