package service

import (
	"context"

	"github.com/user/moviefans/internal/model"
)

// MovieFinder 社交操作只需要电影的存在性检查
type MovieFinder interface {
	FindByID(ctx context.Context, id int64) (*model.Movie, error)
}

// FanStore 影迷存储
type FanStore interface {
	FindByID(ctx context.Context, id int64) (*model.Fan, error)
	FindByUsername(ctx context.Context, username string) (*model.Fan, error)
	Create(ctx context.Context, fan *model.Fan) error
	FollowFan(ctx context.Context, fanID, followsFanID int64) error
	FollowCritic(ctx context.Context, fanID, criticID int64) error
}

// CriticStore 影评人存储
type CriticStore interface {
	FindByID(ctx context.Context, id int64) (*model.Critic, error)
	FindByUsername(ctx context.Context, username string) (*model.Critic, error)
	Create(ctx context.Context, critic *model.Critic) error
}

// ReviewStore 影评存储
type ReviewStore interface {
	FindByID(ctx context.Context, id int64) (*model.Review, error)
	Create(ctx context.Context, review *model.Review) error
}

// ActorStore 演员存储
type ActorStore interface {
	FindByID(ctx context.Context, id int64) (*model.Actor, error)
	Create(ctx context.Context, actor *model.Actor) error
}

// SocialEdgeStore 社交关系边存储
type SocialEdgeStore interface {
	Like(ctx context.Context, fanID, movieID int64) error
	Dislike(ctx context.Context, fanID, movieID int64) error
	Recommend(ctx context.Context, criticID, movieID int64) error
	AttachReview(ctx context.Context, movieID, reviewID int64) error
	AttachCast(ctx context.Context, movieID, actorID int64) error
	IsLikedBy(ctx context.Context, fanID, movieID int64) (bool, error)
	IsDislikedBy(ctx context.Context, fanID, movieID int64) (bool, error)
	IsRecommendedBy(ctx context.Context, criticID, movieID int64) (bool, error)
	FansWhoLiked(ctx context.Context, movieID int64) ([]model.Fan, error)
	FansWhoDisliked(ctx context.Context, movieID int64) ([]model.Fan, error)
	CriticsWhoRecommended(ctx context.Context, movieID int64) ([]model.Critic, error)
	ReviewsOf(ctx context.Context, movieID int64) ([]model.Review, error)
	CastOf(ctx context.Context, movieID int64) ([]model.Actor, error)
}

// SocialService 社交图服务
// 写操作都有存在性前置检查：任一端实体不存在时静默跳过，不报错、不写半截状态。
// 查询在电影不存在时返回 nil，序列化后正好是老客户端期望的 null。
type SocialService struct {
	movies  MovieFinder
	fans    FanStore
	critics CriticStore
	reviews ReviewStore
	actors  ActorStore
	edges   SocialEdgeStore
}

func NewSocialService(movies MovieFinder, fans FanStore, critics CriticStore,
	reviews ReviewStore, actors ActorStore, edges SocialEdgeStore) *SocialService {
	return &SocialService{
		movies:  movies,
		fans:    fans,
		critics: critics,
		reviews: reviews,
		actors:  actors,
		edges:   edges,
	}
}

// fanAndMovie 同时解析影迷和电影，任意一个缺失返回 nil
func (s *SocialService) fanAndMovie(ctx context.Context, username string, movieID int64) (*model.Fan, *model.Movie, error) {
	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil {
		return nil, nil, err
	}
	if movie == nil {
		return nil, nil, nil
	}
	fan, err := s.fans.FindByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	return fan, movie, nil
}

// Like 影迷喜欢电影（若之前不喜欢，则转为喜欢）
func (s *SocialService) Like(ctx context.Context, movieID int64, username string) error {
	fan, movie, err := s.fanAndMovie(ctx, username, movieID)
	if err != nil {
		return err
	}
	if fan == nil || movie == nil {
		return nil
	}
	return s.edges.Like(ctx, fan.ID, movie.ID)
}

// Dislike 影迷不喜欢电影（与 Like 对称）
func (s *SocialService) Dislike(ctx context.Context, movieID int64, username string) error {
	fan, movie, err := s.fanAndMovie(ctx, username, movieID)
	if err != nil {
		return err
	}
	if fan == nil || movie == nil {
		return nil
	}
	return s.edges.Dislike(ctx, fan.ID, movie.ID)
}

// Recommend 影评人推荐电影
func (s *SocialService) Recommend(ctx context.Context, movieID int64, username string) error {
	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil {
		return err
	}
	critic, err := s.critics.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if movie == nil || critic == nil {
		return nil
	}
	return s.edges.Recommend(ctx, critic.ID, movie.ID)
}

// AttachReview 把影评挂接到电影
func (s *SocialService) AttachReview(ctx context.Context, movieID, reviewID int64) error {
	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil {
		return err
	}
	review, err := s.reviews.FindByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if movie == nil || review == nil {
		return nil
	}
	return s.edges.AttachReview(ctx, movie.ID, review.ID)
}

// AttachCast 把演员挂接到电影
func (s *SocialService) AttachCast(ctx context.Context, movieID, actorID int64) error {
	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil {
		return err
	}
	actor, err := s.actors.FindByID(ctx, actorID)
	if err != nil {
		return err
	}
	if movie == nil || actor == nil {
		return nil
	}
	return s.edges.AttachCast(ctx, movie.ID, actor.ID)
}

// IsLikedBy 影迷是否喜欢电影
func (s *SocialService) IsLikedBy(ctx context.Context, movieID int64, username string) (bool, error) {
	fan, movie, err := s.fanAndMovie(ctx, username, movieID)
	if err != nil {
		return false, err
	}
	if fan == nil || movie == nil {
		return false, nil
	}
	return s.edges.IsLikedBy(ctx, fan.ID, movie.ID)
}

// IsDislikedBy 影迷是否不喜欢电影；是则返回该影迷，否则返回 nil
func (s *SocialService) IsDislikedBy(ctx context.Context, movieID int64, username string) (*model.Fan, error) {
	fan, movie, err := s.fanAndMovie(ctx, username, movieID)
	if err != nil {
		return nil, err
	}
	if fan == nil || movie == nil {
		return nil, nil
	}
	disliked, err := s.edges.IsDislikedBy(ctx, fan.ID, movie.ID)
	if err != nil {
		return nil, err
	}
	if !disliked {
		return nil, nil
	}
	return fan, nil
}

// IsRecommendedBy 影评人是否推荐电影；是则返回该影评人，否则返回 nil
func (s *SocialService) IsRecommendedBy(ctx context.Context, movieID int64, username string) (*model.Critic, error) {
	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	critic, err := s.critics.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if movie == nil || critic == nil {
		return nil, nil
	}
	recommended, err := s.edges.IsRecommendedBy(ctx, critic.ID, movie.ID)
	if err != nil {
		return nil, err
	}
	if !recommended {
		return nil, nil
	}
	return critic, nil
}

// FansWhoLiked 喜欢该电影的影迷；电影不存在时返回 nil
func (s *SocialService) FansWhoLiked(ctx context.Context, movieID int64) ([]model.Fan, error) {
	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil || movie == nil {
		return nil, err
	}
	return s.edges.FansWhoLiked(ctx, movie.ID)
}

// FansWhoDisliked 不喜欢该电影的影迷
func (s *SocialService) FansWhoDisliked(ctx context.Context, movieID int64) ([]model.Fan, error) {
	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil || movie == nil {
		return nil, err
	}
	return s.edges.FansWhoDisliked(ctx, movie.ID)
}

// CriticsWhoRecommended 推荐该电影的影评人
func (s *SocialService) CriticsWhoRecommended(ctx context.Context, movieID int64) ([]model.Critic, error) {
	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil || movie == nil {
		return nil, err
	}
	return s.edges.CriticsWhoRecommended(ctx, movie.ID)
}

// ReviewsOf 电影的影评列表
func (s *SocialService) ReviewsOf(ctx context.Context, movieID int64) ([]model.Review, error) {
	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil || movie == nil {
		return nil, err
	}
	return s.edges.ReviewsOf(ctx, movie.ID)
}

// CastOf 电影的演员表
func (s *SocialService) CastOf(ctx context.Context, movieID int64) ([]model.Actor, error) {
	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil || movie == nil {
		return nil, err
	}
	return s.edges.CastOf(ctx, movie.ID)
}

// CreateFan 创建影迷；用户名冲突交给唯一索引拦
func (s *SocialService) CreateFan(ctx context.Context, fan *model.Fan) error {
	return s.fans.Create(ctx, fan)
}

// CreateCritic 创建影评人
func (s *SocialService) CreateCritic(ctx context.Context, critic *model.Critic) error {
	return s.critics.Create(ctx, critic)
}

// CreateReview 创建影评
func (s *SocialService) CreateReview(ctx context.Context, review *model.Review) error {
	return s.reviews.Create(ctx, review)
}

// CreateActor 创建演员
func (s *SocialService) CreateActor(ctx context.Context, actor *model.Actor) error {
	return s.actors.Create(ctx, actor)
}

// FollowFan 影迷关注影迷；任一方不存在则静默跳过
func (s *SocialService) FollowFan(ctx context.Context, username, targetUsername string) error {
	fan, err := s.fans.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	target, err := s.fans.FindByUsername(ctx, targetUsername)
	if err != nil {
		return err
	}
	if fan == nil || target == nil || fan.ID == target.ID {
		return nil
	}
	return s.fans.FollowFan(ctx, fan.ID, target.ID)
}

// FollowCritic 影迷关注影评人；任一方不存在则静默跳过
func (s *SocialService) FollowCritic(ctx context.Context, username, criticUsername string) error {
	fan, err := s.fans.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	critic, err := s.critics.FindByUsername(ctx, criticUsername)
	if err != nil {
		return err
	}
	if fan == nil || critic == nil {
		return nil
	}
	return s.fans.FollowCritic(ctx, fan.ID, critic.ID)
}
