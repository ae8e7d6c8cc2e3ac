package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/moviefans/internal/config"
	"github.com/user/moviefans/internal/model"
	"github.com/user/moviefans/internal/repository"
	"github.com/user/moviefans/internal/utils"
)

type moviesFixture struct {
	store    *repository.MemoryStore
	svc      *MovieService
	server   *httptest.Server
	requests atomic.Int64
}

func newMoviesFixture(t *testing.T, upstream http.HandlerFunc) *moviesFixture {
	t.Helper()
	utils.InitCache()

	f := &moviesFixture{store: repository.NewMemoryStore()}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.requests.Add(1)
		upstream(w, r)
	}))
	t.Cleanup(f.server.Close)

	catalog := NewCatalogClient(&config.Config{TMDBBaseURL: f.server.URL, TMDBToken: "t"})
	f.svc = NewMovieService(catalog, f.store.Movies())
	return f
}

// 搜索结果按上游顺序返回，并且全部落库
func TestBrowseIngestsResults(t *testing.T) {
	f := newMoviesFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"page":1,"results":[{"id":1,"title":"A"},{"id":2,"title":"B"}]}`))
	})

	movies, err := f.svc.Browse(context.Background(), KindSearch, "en-US", "us", "spy", "1")
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, "A", movies[0].Title)
	assert.Equal(t, "B", movies[1].Title)

	cached, err := f.store.Movies().FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, cached, 2)

	m1, err := f.store.Movies().FindByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, m1)
	assert.Equal(t, "A", m1.Title)
}

// 空搜索词：不调上游、不写库
func TestBrowseEmptyQuery(t *testing.T) {
	f := newMoviesFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"page":1,"results":[{"id":1,"title":"A"}]}`))
	})

	movies, err := f.svc.Browse(context.Background(), KindSearch, "en-US", "us", "   ", "1")
	require.NoError(t, err)
	assert.NotNil(t, movies)
	assert.Empty(t, movies)
	assert.Equal(t, int64(0), f.requests.Load())

	cached, _ := f.store.Movies().FindAll(context.Background())
	assert.Empty(t, cached)
}

// 同一查询第二次命中列表缓存，不再请求上游
func TestBrowseListCache(t *testing.T) {
	f := newMoviesFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"page":1,"results":[{"id":1,"title":"A"}]}`))
	})

	_, err := f.svc.Browse(context.Background(), KindPopular, "en-US", "us", "", "1")
	require.NoError(t, err)
	_, err = f.svc.Browse(context.Background(), KindPopular, "en-US", "us", "", "1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), f.requests.Load())

	// 参数不同是另一个键
	_, err = f.svc.Browse(context.Background(), KindPopular, "en-US", "us", "", "2")
	require.NoError(t, err)
	assert.Equal(t, int64(2), f.requests.Load())

	// 清掉缓存后重新抓取
	f.svc.FlushCaches()
	_, err = f.svc.Browse(context.Background(), KindPopular, "en-US", "us", "", "1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), f.requests.Load())
}

// 上游失败原样返回 ErrUpstreamUnavailable，不捏造数据
func TestBrowseUpstreamDown(t *testing.T) {
	f := newMoviesFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	movies, err := f.svc.Browse(context.Background(), KindTopRated, "en-US", "us", "", "1")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.Nil(t, movies)

	cached, _ := f.store.Movies().FindAll(context.Background())
	assert.Empty(t, cached)
}

// 重新抓取同一部电影只更新描述字段，本地维护的社交边不受影响
func TestBrowseUpsertPreservesRelations(t *testing.T) {
	title := `{"page":1,"results":[{"id":1,"title":"老标题"}]}`
	f := newMoviesFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(title))
	})
	ctx := context.Background()

	_, err := f.svc.Browse(ctx, KindSearch, "en-US", "us", "spy", "1")
	require.NoError(t, err)

	fan := &model.Fan{Username: "alice"}
	require.NoError(t, f.store.Fans().Create(ctx, fan))
	require.NoError(t, f.store.Social().Like(ctx, fan.ID, 1))

	// 上游改了标题，换个键再抓一次
	title = `{"page":1,"results":[{"id":1,"title":"新标题"}]}`
	_, err = f.svc.Browse(ctx, KindSearch, "en-US", "us", "spy", "2")
	require.NoError(t, err)

	movie, err := f.store.Movies().FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "新标题", movie.Title)

	liked, err := f.store.Social().IsLikedBy(ctx, fan.ID, 1)
	require.NoError(t, err)
	assert.True(t, liked)
}

// 按 ID 获取：落库 + 缓存命中
func TestFindMovie(t *testing.T) {
	f := newMoviesFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":42,"title":"C"}`))
	})

	movie, err := f.svc.Find(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "C", movie.Title)

	stored, err := f.store.Movies().FindByID(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, stored)

	// 第二次命中 go-cache
	_, err = f.svc.Find(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(1), f.requests.Load())
}
