package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/user/moviefans/internal/utils"
)

// AdminCacheClean 清空目录缓存
func (h *Handler) AdminCacheClean(c *gin.Context) {
	h.Movies.FlushCaches()
	utils.Success(c, nil)
}

// AdminStats 运行状态
func (h *Handler) AdminStats(c *gin.Context) {
	utils.Success(c, gin.H{
		"list_cache_len": h.Movies.CacheLen(),
		"operator":       c.GetString("username"),
	})
}
