package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/user/moviefans/internal/config"
	"github.com/user/moviefans/internal/model"
)

// ErrUpstreamUnavailable 上游目录（TMDB）不可用：网络失败、非 200 或响应解析失败
var ErrUpstreamUnavailable = errors.New("upstream catalog unavailable")

// FetchKind 目录查询类别
type FetchKind string

const (
	KindSearch     FetchKind = "search"
	KindTopRated   FetchKind = "top_rated"
	KindNowPlaying FetchKind = "now_playing"
	KindPopular    FetchKind = "popular"
	KindUpcoming   FetchKind = "upcoming"
)

// CatalogClient TMDB 目录客户端
type CatalogClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewCatalogClient(cfg *config.Config) *CatalogClient {
	return &CatalogClient{
		baseURL: strings.TrimRight(cfg.TMDBBaseURL, "/"),
		token:   cfg.TMDBToken,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type catalogMovie struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	OriginalLanguage string  `json:"original_language"`
	ReleaseDate      string  `json:"release_date"`
	VoteAverage      float64 `json:"vote_average"`
	Popularity       float64 `json:"popularity"`
	PosterPath       string  `json:"poster_path"`
	Overview         string  `json:"overview"`
	GenreIDs         []int64 `json:"genre_ids"`
}

type catalogListResponse struct {
	Page    int            `json:"page"`
	Results []catalogMovie `json:"results"`
}

func (m *catalogMovie) toModel(region string) model.Movie {
	return model.Movie{
		ID:            m.ID,
		Title:         m.Title,
		OriginalTitle: m.OriginalTitle,
		Language:      m.OriginalLanguage,
		Region:        region,
		ReleaseDate:   m.ReleaseDate,
		Rating:        m.VoteAverage,
		Popularity:    m.Popularity,
		Poster:        m.PosterPath,
		Overview:      m.Overview,
		GenreIDs:      pq.Int64Array(m.GenreIDs),
	}
}

// Fetch 按类别请求目录，返回的顺序与上游保持一致
// 搜索词里的空白统一替换成 +，与上游的查询格式一致
func (c *CatalogClient) Fetch(ctx context.Context, kind FetchKind, lang, region, query, page string) ([]model.Movie, error) {
	var url string
	switch kind {
	case KindSearch:
		wireQuery := strings.Join(strings.Fields(query), "+")
		url = fmt.Sprintf("%s/search/movie?query=%s&language=%s&page=%s", c.baseURL, wireQuery, lang, page)
	default:
		url = fmt.Sprintf("%s/movie/%s?language=%s&region=%s&page=%s", c.baseURL, kind, lang, region, page)
	}

	var result catalogListResponse
	if err := c.getJSON(ctx, url, &result); err != nil {
		return nil, err
	}

	movies := make([]model.Movie, 0, len(result.Results))
	for i := range result.Results {
		movies = append(movies, result.Results[i].toModel(region))
	}
	return movies, nil
}

// FindByID 按 TMDB ID 获取单部电影
func (c *CatalogClient) FindByID(ctx context.Context, id int64) (*model.Movie, error) {
	url := fmt.Sprintf("%s/movie/%d", c.baseURL, id)

	// 详情接口不返回 genre_ids，单独的结构接一下
	var result struct {
		catalogMovie
		Genres []struct {
			ID int64 `json:"id"`
		} `json:"genres"`
	}
	if err := c.getJSON(ctx, url, &result); err != nil {
		return nil, err
	}

	movie := result.catalogMovie.toModel("")
	for _, g := range result.Genres {
		movie.GenreIDs = append(movie.GenreIDs, g.ID)
	}
	return &movie, nil
}

func (c *CatalogClient) getJSON(ctx context.Context, url string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: 状态码 %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("%w: 解析响应失败: %v", ErrUpstreamUnavailable, err)
	}
	return nil
}
