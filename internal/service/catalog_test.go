package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/moviefans/internal/config"
)

func newTestCatalog(handler http.HandlerFunc) (*CatalogClient, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewCatalogClient(&config.Config{
		TMDBBaseURL: server.URL,
		TMDBToken:   "test-token",
	})
	return client, server
}

// 搜索：路径、鉴权头、查询词归一化
func TestCatalogSearch(t *testing.T) {
	var gotPath, gotRawQuery, gotAuth string
	client, server := newTestCatalog(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRawQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"page":1,"results":[
			{"id":1,"title":"A","original_language":"en","vote_average":7.5,"genre_ids":[28,12]},
			{"id":2,"title":"B"}
		]}`))
	})
	defer server.Close()

	movies, err := client.Fetch(context.Background(), KindSearch, "en-US", "us", "star  wars", "1")
	require.NoError(t, err)

	assert.Equal(t, "/search/movie", gotPath)
	assert.Equal(t, "query=star+wars&language=en-US&page=1", gotRawQuery)
	assert.Equal(t, "Bearer test-token", gotAuth)

	require.Len(t, movies, 2)
	assert.Equal(t, int64(1), movies[0].ID)
	assert.Equal(t, "A", movies[0].Title)
	assert.Equal(t, "en", movies[0].Language)
	assert.InDelta(t, 7.5, movies[0].Rating, 0.001)
	assert.Equal(t, []int64{28, 12}, []int64(movies[0].GenreIDs))
	assert.Equal(t, int64(2), movies[1].ID)
}

// 类别浏览：kind 直接映射到上游路径，带 region
func TestCatalogCategories(t *testing.T) {
	for _, kind := range []FetchKind{KindTopRated, KindNowPlaying, KindPopular, KindUpcoming} {
		var gotPath, gotRawQuery string
		client, server := newTestCatalog(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotRawQuery = r.URL.RawQuery
			w.Write([]byte(`{"page":1,"results":[]}`))
		})

		_, err := client.Fetch(context.Background(), kind, "en-US", "us", "", "2")
		require.NoError(t, err)
		assert.Equal(t, "/movie/"+string(kind), gotPath)
		assert.Equal(t, "language=en-US&region=us&page=2", gotRawQuery)
		server.Close()
	}
}

// 按 ID 获取详情，genres 对象数组转成 genre_ids
func TestCatalogFindByID(t *testing.T) {
	var gotPath string
	client, server := newTestCatalog(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"id":42,"title":"C","genres":[{"id":12,"name":"Adventure"},{"id":16,"name":"Animation"}]}`))
	})
	defer server.Close()

	movie, err := client.FindByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "/movie/42", gotPath)
	assert.Equal(t, int64(42), movie.ID)
	assert.Equal(t, []int64{12, 16}, []int64(movie.GenreIDs))
}

// 上游各种失败统一映射为 ErrUpstreamUnavailable
func TestCatalogUpstreamFailures(t *testing.T) {
	// 非 200
	client, server := newTestCatalog(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	_, err := client.Fetch(context.Background(), KindPopular, "en-US", "us", "", "1")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	server.Close()

	// 响应不是合法 JSON
	client, server = newTestCatalog(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})
	_, err = client.Fetch(context.Background(), KindSearch, "en-US", "us", "spy", "1")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	server.Close()

	// 连接失败（server 已关闭）
	_, err = client.FindByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}
