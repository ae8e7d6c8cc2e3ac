package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/user/moviefans/internal/model"
	"github.com/user/moviefans/internal/utils"
)

var validate = validator.New()

// createUserRequest 影迷/影评人创建请求
type createUserRequest struct {
	Username  string `json:"username" validate:"required,alphanum,min=2,max=32"`
	FirstName string `json:"first_name" validate:"max=64"`
	LastName  string `json:"last_name" validate:"max=64"`
}

// CreateFan 创建影迷
func (h *Handler) CreateFan(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "无效的请求数据")
		return
	}
	if err := validate.Struct(&req); err != nil {
		utils.BadRequest(c, "用户名不合法")
		return
	}

	fan := &model.Fan{Username: req.Username, FirstName: req.FirstName, LastName: req.LastName}
	if err := h.Social.CreateFan(c.Request.Context(), fan); err != nil {
		utils.InternalServerError(c, "创建失败")
		return
	}
	utils.Success(c, fan)
}

// CreateCritic 创建影评人
func (h *Handler) CreateCritic(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "无效的请求数据")
		return
	}
	if err := validate.Struct(&req); err != nil {
		utils.BadRequest(c, "用户名不合法")
		return
	}

	critic := &model.Critic{Username: req.Username, FirstName: req.FirstName, LastName: req.LastName}
	if err := h.Social.CreateCritic(c.Request.Context(), critic); err != nil {
		utils.InternalServerError(c, "创建失败")
		return
	}
	utils.Success(c, critic)
}

// createReviewRequest 影评创建请求
type createReviewRequest struct {
	Author string  `json:"author" validate:"required,max=64"`
	Body   string  `json:"body" validate:"required"`
	Score  float64 `json:"score" validate:"gte=0,lte=10"`
}

// CreateReview 创建影评
func (h *Handler) CreateReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "无效的请求数据")
		return
	}
	if err := validate.Struct(&req); err != nil {
		utils.BadRequest(c, "影评内容不合法")
		return
	}

	review := &model.Review{Author: req.Author, Body: req.Body, Score: req.Score}
	if err := h.Social.CreateReview(c.Request.Context(), review); err != nil {
		utils.InternalServerError(c, "创建失败")
		return
	}
	utils.Success(c, review)
}

// createActorRequest 演员创建请求
type createActorRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required,max=128"`
}

// CreateActor 创建演员
func (h *Handler) CreateActor(c *gin.Context) {
	var req createActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "无效的请求数据")
		return
	}
	if err := validate.Struct(&req); err != nil {
		utils.BadRequest(c, "演员名不合法")
		return
	}

	actor := &model.Actor{ID: req.ID, Name: req.Name}
	if err := h.Social.CreateActor(c.Request.Context(), actor); err != nil {
		utils.InternalServerError(c, "创建失败")
		return
	}
	utils.Success(c, actor)
}

// FollowFan 影迷关注影迷
func (h *Handler) FollowFan(c *gin.Context) {
	if err := h.Social.FollowFan(c.Request.Context(), c.Param("username"), c.Param("target")); err != nil {
		utils.InternalServerError(c, "操作失败")
		return
	}
	utils.Success(c, nil)
}

// FollowCritic 影迷关注影评人
func (h *Handler) FollowCritic(c *gin.Context) {
	if err := h.Social.FollowCritic(c.Request.Context(), c.Param("username"), c.Param("critic")); err != nil {
		utils.InternalServerError(c, "操作失败")
		return
	}
	utils.Success(c, nil)
}

// AttachCast 把演员挂接到电影
func (h *Handler) AttachCast(c *gin.Context) {
	movieID, err1 := strconv.ParseInt(c.Param("movieId"), 10, 64)
	actorID, err2 := strconv.ParseInt(c.Param("actorId"), 10, 64)
	if err1 != nil || err2 != nil {
		utils.BadRequest(c, "无效的 ID")
		return
	}
	if err := h.Social.AttachCast(c.Request.Context(), movieID, actorID); err != nil {
		utils.InternalServerError(c, "操作失败")
		return
	}
	utils.Success(c, nil)
}
