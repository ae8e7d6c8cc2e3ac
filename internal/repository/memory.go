package repository

import (
	"context"
	"sync"
	"time"

	"github.com/user/moviefans/internal/model"
)

// MemoryStore 内存实现，接口与 gorm 仓库一致，测试用
// 边按追加顺序保存在切片里，对应数据库里自增主键的插入顺序语义
type MemoryStore struct {
	mu sync.RWMutex

	movies     map[int64]model.Movie
	movieOrder []int64
	fans       map[int64]model.Fan
	critics    map[int64]model.Critic
	reviews    map[int64]model.Review
	actors     map[int64]model.Actor
	nextID     int64

	likes         []memEdge // fan -> movie
	dislikes      []memEdge // fan -> movie
	recs          []memEdge // critic -> movie
	movieReviews  []memEdge // movie -> review
	movieCast     []memEdge // movie -> actor
	fanFollows    []memEdge // fan -> fan
	criticFollows []memEdge // fan -> critic
}

type memEdge struct {
	from, to int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		movies:  make(map[int64]model.Movie),
		fans:    make(map[int64]model.Fan),
		critics: make(map[int64]model.Critic),
		reviews: make(map[int64]model.Review),
		actors:  make(map[int64]model.Actor),
		nextID:  1,
	}
}

// Movies 电影子仓库
func (m *MemoryStore) Movies() *MemoryMovieStore { return &MemoryMovieStore{m} }

// Fans 影迷子仓库
func (m *MemoryStore) Fans() *MemoryFanStore { return &MemoryFanStore{m} }

// Critics 影评人子仓库
func (m *MemoryStore) Critics() *MemoryCriticStore { return &MemoryCriticStore{m} }

// Reviews 影评子仓库
func (m *MemoryStore) Reviews() *MemoryReviewStore { return &MemoryReviewStore{m} }

// Actors 演员子仓库
func (m *MemoryStore) Actors() *MemoryActorStore { return &MemoryActorStore{m} }

// Social 社交边子仓库
func (m *MemoryStore) Social() *MemorySocialStore { return &MemorySocialStore{m} }

func (m *MemoryStore) allocID() int64 {
	id := m.nextID
	m.nextID++
	return id
}

func hasEdge(edges []memEdge, from, to int64) bool {
	for _, e := range edges {
		if e.from == from && e.to == to {
			return true
		}
	}
	return false
}

func dropEdge(edges []memEdge, from, to int64) []memEdge {
	out := edges[:0]
	for _, e := range edges {
		if e.from != from || e.to != to {
			out = append(out, e)
		}
	}
	return out
}

// ==================== 电影 ====================

type MemoryMovieStore struct{ s *MemoryStore }

func (r *MemoryMovieStore) FindByID(_ context.Context, id int64) (*model.Movie, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if m, ok := r.s.movies[id]; ok {
		return &m, nil
	}
	return nil, nil
}

func (r *MemoryMovieStore) FindAll(_ context.Context) ([]model.Movie, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]model.Movie, 0, len(r.s.movieOrder))
	for _, id := range r.s.movieOrder {
		out = append(out, r.s.movies[id])
	}
	return out, nil
}

func (r *MemoryMovieStore) ByIDs(_ context.Context, ids []int64) (map[int64]model.Movie, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make(map[int64]model.Movie, len(ids))
	for _, id := range ids {
		if m, ok := r.s.movies[id]; ok {
			out[id] = m
		}
	}
	return out, nil
}

func (r *MemoryMovieStore) Upsert(_ context.Context, movie *model.Movie) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.movies[movie.ID]; !ok {
		r.s.movieOrder = append(r.s.movieOrder, movie.ID)
	}
	movie.UpdatedAt = time.Now()
	r.s.movies[movie.ID] = *movie
	return nil
}

func (r *MemoryMovieStore) Save(ctx context.Context, movie *model.Movie) error {
	return r.Upsert(ctx, movie)
}

// ==================== 影迷 ====================

type MemoryFanStore struct{ s *MemoryStore }

func (r *MemoryFanStore) FindByID(_ context.Context, id int64) (*model.Fan, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if f, ok := r.s.fans[id]; ok {
		return &f, nil
	}
	return nil, nil
}

func (r *MemoryFanStore) FindByUsername(_ context.Context, username string) (*model.Fan, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, f := range r.s.fans {
		if f.Username == username {
			return &f, nil
		}
	}
	return nil, nil
}

func (r *MemoryFanStore) Create(_ context.Context, fan *model.Fan) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if fan.ID == 0 {
		fan.ID = r.s.allocID()
	}
	fan.CreatedAt = time.Now()
	r.s.fans[fan.ID] = *fan
	return nil
}

func (r *MemoryFanStore) FollowFan(_ context.Context, fanID, followsFanID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !hasEdge(r.s.fanFollows, fanID, followsFanID) {
		r.s.fanFollows = append(r.s.fanFollows, memEdge{fanID, followsFanID})
	}
	return nil
}

func (r *MemoryFanStore) FollowCritic(_ context.Context, fanID, criticID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !hasEdge(r.s.criticFollows, fanID, criticID) {
		r.s.criticFollows = append(r.s.criticFollows, memEdge{fanID, criticID})
	}
	return nil
}

func (r *MemoryFanStore) FollowedCriticIDs(_ context.Context, fanID int64) ([]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return edgeTargets(r.s.criticFollows, fanID), nil
}

func (r *MemoryFanStore) FollowedFanIDs(_ context.Context, fanID int64) ([]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return edgeTargets(r.s.fanFollows, fanID), nil
}

func (r *MemoryFanStore) LikedMovieIDs(_ context.Context, fanID int64) ([]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return edgeTargets(r.s.likes, fanID), nil
}

func edgeTargets(edges []memEdge, from int64) []int64 {
	var ids []int64
	for _, e := range edges {
		if e.from == from {
			ids = append(ids, e.to)
		}
	}
	return ids
}

// ==================== 影评人 ====================

type MemoryCriticStore struct{ s *MemoryStore }

func (r *MemoryCriticStore) FindByID(_ context.Context, id int64) (*model.Critic, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if c, ok := r.s.critics[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r *MemoryCriticStore) FindByUsername(_ context.Context, username string) (*model.Critic, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.critics {
		if c.Username == username {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *MemoryCriticStore) Create(_ context.Context, critic *model.Critic) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if critic.ID == 0 {
		critic.ID = r.s.allocID()
	}
	critic.CreatedAt = time.Now()
	r.s.critics[critic.ID] = *critic
	return nil
}

// ==================== 影评 ====================

type MemoryReviewStore struct{ s *MemoryStore }

func (r *MemoryReviewStore) FindByID(_ context.Context, id int64) (*model.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if rv, ok := r.s.reviews[id]; ok {
		return &rv, nil
	}
	return nil, nil
}

func (r *MemoryReviewStore) Create(_ context.Context, review *model.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if review.ID == 0 {
		review.ID = r.s.allocID()
	}
	review.CreatedAt = time.Now()
	r.s.reviews[review.ID] = *review
	return nil
}

// ==================== 演员 ====================

type MemoryActorStore struct{ s *MemoryStore }

func (r *MemoryActorStore) FindByID(_ context.Context, id int64) (*model.Actor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if a, ok := r.s.actors[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func (r *MemoryActorStore) Create(_ context.Context, actor *model.Actor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if actor.ID == 0 {
		actor.ID = r.s.allocID()
	}
	r.s.actors[actor.ID] = *actor
	return nil
}

// ==================== 社交边 ====================

type MemorySocialStore struct{ s *MemoryStore }

func (r *MemorySocialStore) Like(_ context.Context, fanID, movieID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.dislikes = dropEdge(r.s.dislikes, fanID, movieID)
	if !hasEdge(r.s.likes, fanID, movieID) {
		r.s.likes = append(r.s.likes, memEdge{fanID, movieID})
	}
	return nil
}

func (r *MemorySocialStore) Dislike(_ context.Context, fanID, movieID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.likes = dropEdge(r.s.likes, fanID, movieID)
	if !hasEdge(r.s.dislikes, fanID, movieID) {
		r.s.dislikes = append(r.s.dislikes, memEdge{fanID, movieID})
	}
	return nil
}

func (r *MemorySocialStore) Recommend(_ context.Context, criticID, movieID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !hasEdge(r.s.recs, criticID, movieID) {
		r.s.recs = append(r.s.recs, memEdge{criticID, movieID})
	}
	return nil
}

func (r *MemorySocialStore) AttachReview(_ context.Context, movieID, reviewID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !hasEdge(r.s.movieReviews, movieID, reviewID) {
		r.s.movieReviews = append(r.s.movieReviews, memEdge{movieID, reviewID})
	}
	return nil
}

func (r *MemorySocialStore) AttachCast(_ context.Context, movieID, actorID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !hasEdge(r.s.movieCast, movieID, actorID) {
		r.s.movieCast = append(r.s.movieCast, memEdge{movieID, actorID})
	}
	return nil
}

func (r *MemorySocialStore) IsLikedBy(_ context.Context, fanID, movieID int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return hasEdge(r.s.likes, fanID, movieID), nil
}

func (r *MemorySocialStore) IsDislikedBy(_ context.Context, fanID, movieID int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return hasEdge(r.s.dislikes, fanID, movieID), nil
}

func (r *MemorySocialStore) IsRecommendedBy(_ context.Context, criticID, movieID int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return hasEdge(r.s.recs, criticID, movieID), nil
}

func (r *MemorySocialStore) FansWhoLiked(_ context.Context, movieID int64) ([]model.Fan, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	fans := make([]model.Fan, 0)
	for _, e := range r.s.likes {
		if e.to == movieID {
			fans = append(fans, r.s.fans[e.from])
		}
	}
	return fans, nil
}

func (r *MemorySocialStore) FansWhoDisliked(_ context.Context, movieID int64) ([]model.Fan, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	fans := make([]model.Fan, 0)
	for _, e := range r.s.dislikes {
		if e.to == movieID {
			fans = append(fans, r.s.fans[e.from])
		}
	}
	return fans, nil
}

func (r *MemorySocialStore) CriticsWhoRecommended(_ context.Context, movieID int64) ([]model.Critic, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	critics := make([]model.Critic, 0)
	for _, e := range r.s.recs {
		if e.to == movieID {
			critics = append(critics, r.s.critics[e.from])
		}
	}
	return critics, nil
}

func (r *MemorySocialStore) ReviewsOf(_ context.Context, movieID int64) ([]model.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	reviews := make([]model.Review, 0)
	for _, e := range r.s.movieReviews {
		if e.from == movieID {
			reviews = append(reviews, r.s.reviews[e.to])
		}
	}
	return reviews, nil
}

func (r *MemorySocialStore) CastOf(_ context.Context, movieID int64) ([]model.Actor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	actors := make([]model.Actor, 0)
	for _, e := range r.s.movieCast {
		if e.from == movieID {
			actors = append(actors, r.s.actors[e.to])
		}
	}
	return actors, nil
}

func (r *MemorySocialStore) RecommendedMovieIDs(_ context.Context, criticIDs []int64) (map[int64][]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return groupEdges(r.s.recs, criticIDs), nil
}

func (r *MemorySocialStore) LikedMovieIDsByFans(_ context.Context, fanIDs []int64) (map[int64][]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return groupEdges(r.s.likes, fanIDs), nil
}

func groupEdges(edges []memEdge, fromIDs []int64) map[int64][]int64 {
	wanted := make(map[int64]struct{}, len(fromIDs))
	for _, id := range fromIDs {
		wanted[id] = struct{}{}
	}
	out := make(map[int64][]int64, len(fromIDs))
	for _, e := range edges {
		if _, ok := wanted[e.from]; ok {
			out[e.from] = append(out[e.from], e.to)
		}
	}
	return out
}
