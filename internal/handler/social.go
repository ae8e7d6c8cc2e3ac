package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// 历史接口的响应形状是老客户端的既定契约：
// 写操作无响应体；电影不存在时列表查询返回 null 而不是 []。

// LikeMovie 影迷喜欢电影
func (h *Handler) LikeMovie(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
	if err != nil {
		c.Status(http.StatusOK)
		return
	}
	if err := h.Social.Like(c.Request.Context(), movieID, c.Param("username")); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}

// DislikeMovie 影迷不喜欢电影
func (h *Handler) DislikeMovie(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
	if err != nil {
		c.Status(http.StatusOK)
		return
	}
	if err := h.Social.Dislike(c.Request.Context(), movieID, c.Param("username")); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}

// RecommendMovie 影评人推荐电影
func (h *Handler) RecommendMovie(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
	if err != nil {
		c.Status(http.StatusOK)
		return
	}
	if err := h.Social.Recommend(c.Request.Context(), movieID, c.Param("username")); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}

// ReviewMovie 把影评挂接到电影
func (h *Handler) ReviewMovie(c *gin.Context) {
	movieID, err1 := strconv.ParseInt(c.Param("movieId"), 10, 64)
	reviewID, err2 := strconv.ParseInt(c.Param("reviewId"), 10, 64)
	if err1 != nil || err2 != nil {
		c.Status(http.StatusOK)
		return
	}
	if err := h.Social.AttachReview(c.Request.Context(), movieID, reviewID); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}

// CheckLike 影迷是否喜欢电影 -> true/false
func (h *Handler) CheckLike(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, false)
		return
	}
	liked, err := h.Social.IsLikedBy(c.Request.Context(), movieID, c.Param("username"))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, liked)
}

// CheckDislike 影迷是否不喜欢电影 -> 影迷实体或 null
// 与 CheckLike 返回 bool 不对称，这同样是既定契约
func (h *Handler) CheckDislike(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	fan, err := h.Social.IsDislikedBy(c.Request.Context(), movieID, c.Param("username"))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, fan)
}

// CheckRecommend 影评人是否推荐电影 -> 影评人实体或 null
func (h *Handler) CheckRecommend(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	critic, err := h.Social.IsRecommendedBy(c.Request.Context(), movieID, c.Param("username"))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, critic)
}

// FansWhoLiked 喜欢该电影的影迷列表
// 注意：这里读的是 movieID，而路由声明的参数是 movieId，所以永远取不到值、
// 走不到查询分支。线上客户端已经依赖这个行为，先原样保留。
func (h *Handler) FansWhoLiked(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movieID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	fans, err := h.Social.FansWhoLiked(c.Request.Context(), movieID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, fans)
}

// FansWhoDisliked 不喜欢该电影的影迷列表
func (h *Handler) FansWhoDisliked(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	fans, err := h.Social.FansWhoDisliked(c.Request.Context(), movieID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, fans)
}

// CriticsWhoRecommended 推荐该电影的影评人列表
func (h *Handler) CriticsWhoRecommended(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	critics, err := h.Social.CriticsWhoRecommended(c.Request.Context(), movieID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, critics)
}

// MovieReviews 电影的影评列表
func (h *Handler) MovieReviews(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	reviews, err := h.Social.ReviewsOf(c.Request.Context(), movieID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// MovieCast 电影的演员表
func (h *Handler) MovieCast(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	cast, err := h.Social.CastOf(c.Request.Context(), movieID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, cast)
}
