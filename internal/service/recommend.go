package service

import (
	"context"

	"github.com/user/moviefans/internal/model"
)

// FanGraphStore 推荐流需要的影迷侧关系（关注/点赞），一律按插入顺序返回
type FanGraphStore interface {
	FindByID(ctx context.Context, id int64) (*model.Fan, error)
	LikedMovieIDs(ctx context.Context, fanID int64) ([]int64, error)
	FollowedCriticIDs(ctx context.Context, fanID int64) ([]int64, error)
	FollowedFanIDs(ctx context.Context, fanID int64) ([]int64, error)
}

// FeedEdgeStore 推荐流需要的批量边查询
type FeedEdgeStore interface {
	RecommendedMovieIDs(ctx context.Context, criticIDs []int64) (map[int64][]int64, error)
	LikedMovieIDsByFans(ctx context.Context, fanIDs []int64) (map[int64][]int64, error)
}

// MovieLookup 批量电影查找
type MovieLookup interface {
	ByIDs(ctx context.Context, ids []int64) (map[int64]model.Movie, error)
}

// Recommender 个性化推荐流
//
// 两阶段累加：先遍历关注的影评人的推荐（关注顺序 x 推荐顺序），再遍历关注的
// 影迷的点赞；影迷自己已喜欢的电影被过滤掉。多个来源给出同一部电影时
// 保留重复条目，这是老客户端观察到的契约，不做去重。
//
// 关系是显式批量加载的：每类边一次查询，避免逐个关注对象的 N+1 加载。
// 只读，不写库也不调目录。
type Recommender struct {
	fans   FanGraphStore
	edges  FeedEdgeStore
	movies MovieLookup
}

func NewRecommender(fans FanGraphStore, edges FeedEdgeStore, movies MovieLookup) *Recommender {
	return &Recommender{fans: fans, edges: edges, movies: movies}
}

// Feed 计算影迷的推荐流；影迷不存在时返回空列表
func (r *Recommender) Feed(ctx context.Context, fanID int64) ([]model.Movie, error) {
	fan, err := r.fans.FindByID(ctx, fanID)
	if err != nil {
		return nil, err
	}
	if fan == nil {
		return []model.Movie{}, nil
	}

	likedIDs, err := r.fans.LikedMovieIDs(ctx, fanID)
	if err != nil {
		return nil, err
	}
	liked := make(map[int64]struct{}, len(likedIDs))
	for _, id := range likedIDs {
		liked[id] = struct{}{}
	}

	var feedIDs []int64

	// 第一轮：关注的影评人的推荐
	criticIDs, err := r.fans.FollowedCriticIDs(ctx, fanID)
	if err != nil {
		return nil, err
	}
	recsByCritic, err := r.edges.RecommendedMovieIDs(ctx, criticIDs)
	if err != nil {
		return nil, err
	}
	for _, criticID := range criticIDs {
		for _, movieID := range recsByCritic[criticID] {
			if _, ok := liked[movieID]; !ok {
				feedIDs = append(feedIDs, movieID)
			}
		}
	}

	// 第二轮：关注的影迷的点赞
	followedFanIDs, err := r.fans.FollowedFanIDs(ctx, fanID)
	if err != nil {
		return nil, err
	}
	likesByFan, err := r.edges.LikedMovieIDsByFans(ctx, followedFanIDs)
	if err != nil {
		return nil, err
	}
	for _, followedID := range followedFanIDs {
		for _, movieID := range likesByFan[followedID] {
			if _, ok := liked[movieID]; !ok {
				feedIDs = append(feedIDs, movieID)
			}
		}
	}

	// 一次性取回电影实体，再按累加顺序展开（重复 ID 展开成重复条目）
	movies, err := r.movies.ByIDs(ctx, feedIDs)
	if err != nil {
		return nil, err
	}
	feed := make([]model.Movie, 0, len(feedIDs))
	for _, id := range feedIDs {
		if m, ok := movies[id]; ok {
			feed = append(feed, m)
		}
	}
	return feed, nil
}
