package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/user/moviefans/internal/model"
	"github.com/user/moviefans/internal/utils"
	"golang.org/x/sync/singleflight"
)

// MovieStore 电影存储
type MovieStore interface {
	FindByID(ctx context.Context, id int64) (*model.Movie, error)
	FindAll(ctx context.Context) ([]model.Movie, error)
	Upsert(ctx context.Context, movie *model.Movie) error
	Save(ctx context.Context, movie *model.Movie) error
}

// MovieService 目录浏览 + 入库
// 目录返回的每部电影都会幂等落库，后续的社交操作才能按稳定 ID 引用
type MovieService struct {
	catalog   *CatalogClient
	movies    MovieStore
	listCache *utils.ListCache[[]model.Movie]
	group     singleflight.Group
}

func NewMovieService(catalog *CatalogClient, movies MovieStore) *MovieService {
	return &MovieService{
		catalog:   catalog,
		movies:    movies,
		listCache: utils.NewListCache[[]model.Movie](500, 10*time.Minute),
	}
}

// Browse 按类别浏览/搜索目录
// 结果顺序与上游一致；空搜索词直接返回空列表，不碰目录也不写库
func (s *MovieService) Browse(ctx context.Context, kind FetchKind, lang, region, query, page string) ([]model.Movie, error) {
	if kind == KindSearch && strings.TrimSpace(query) == "" {
		return []model.Movie{}, nil
	}

	key := fmt.Sprintf("%s|%s|%s|%s|%s", kind, lang, region, query, page)
	if cached, ok := s.listCache.Get(key); ok {
		return cached, nil
	}

	// 使用 singleflight 避免并发重复抓取同一页
	val, err, _ := s.group.Do(key, func() (interface{}, error) {
		movies, err := s.catalog.Fetch(ctx, kind, lang, region, query, page)
		if err != nil {
			return nil, err
		}
		for i := range movies {
			if err := s.movies.Upsert(ctx, &movies[i]); err != nil {
				return nil, fmt.Errorf("电影入库失败: %w", err)
			}
		}
		s.listCache.Set(key, movies)
		return movies, nil
	})
	if err != nil {
		log.Printf("[TMDB] 目录抓取失败 (kind=%s query=%q): %v", kind, query, err)
		return nil, err
	}
	return val.([]model.Movie), nil
}

// Find 按 TMDB ID 获取单部电影并落库
func (s *MovieService) Find(ctx context.Context, id int64) (*model.Movie, error) {
	cacheKey := fmt.Sprintf("movie:%d", id)
	if cached, ok := utils.CacheGet(cacheKey); ok {
		movie := cached.(model.Movie)
		return &movie, nil
	}

	val, err, _ := s.group.Do(cacheKey, func() (interface{}, error) {
		movie, err := s.catalog.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := s.movies.Upsert(ctx, movie); err != nil {
			return nil, fmt.Errorf("电影入库失败: %w", err)
		}
		utils.CacheSet(cacheKey, *movie, 5*time.Minute)
		return movie, nil
	})
	if err != nil {
		log.Printf("[TMDB] 电影详情抓取失败 (id=%d): %v", id, err)
		return nil, err
	}
	return val.(*model.Movie), nil
}

// All 全部已缓存电影
func (s *MovieService) All(ctx context.Context) ([]model.Movie, error) {
	return s.movies.FindAll(ctx)
}

// Save 保存客户端提交的电影
func (s *MovieService) Save(ctx context.Context, movie *model.Movie) error {
	return s.movies.Save(ctx, movie)
}

// FlushCaches 清空列表缓存和全局缓存（管理端用）
func (s *MovieService) FlushCaches() {
	s.listCache.Clear()
	utils.CacheClear()
}

// CacheLen 当前列表缓存条数
func (s *MovieService) CacheLen() int {
	return s.listCache.Len()
}
