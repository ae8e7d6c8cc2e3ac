package repository

import (
	"github.com/user/moviefans/internal/service"
)

// 数据库仓库和内存实现都必须满足 service 层声明的接口，
// 不一致时在编译期就失败。
var (
	_ service.MovieStore      = (*MovieRepository)(nil)
	_ service.MovieLookup     = (*MovieRepository)(nil)
	_ service.MovieFinder     = (*MovieRepository)(nil)
	_ service.FanStore        = (*FanRepository)(nil)
	_ service.FanGraphStore   = (*FanRepository)(nil)
	_ service.CriticStore     = (*CriticRepository)(nil)
	_ service.ReviewStore     = (*ReviewRepository)(nil)
	_ service.ActorStore      = (*ActorRepository)(nil)
	_ service.SocialEdgeStore = (*SocialRepository)(nil)
	_ service.FeedEdgeStore   = (*SocialRepository)(nil)

	_ service.MovieStore      = (*MemoryMovieStore)(nil)
	_ service.MovieLookup     = (*MemoryMovieStore)(nil)
	_ service.FanStore        = (*MemoryFanStore)(nil)
	_ service.FanGraphStore   = (*MemoryFanStore)(nil)
	_ service.CriticStore     = (*MemoryCriticStore)(nil)
	_ service.ReviewStore     = (*MemoryReviewStore)(nil)
	_ service.ActorStore      = (*MemoryActorStore)(nil)
	_ service.SocialEdgeStore = (*MemorySocialStore)(nil)
	_ service.FeedEdgeStore   = (*MemorySocialStore)(nil)
)
