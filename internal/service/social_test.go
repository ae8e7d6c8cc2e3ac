package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/moviefans/internal/model"
	"github.com/user/moviefans/internal/repository"
)

type socialFixture struct {
	store  *repository.MemoryStore
	social *SocialService
	ctx    context.Context
}

func newSocialFixture(t *testing.T) *socialFixture {
	t.Helper()
	store := repository.NewMemoryStore()
	return &socialFixture{
		store: store,
		social: NewSocialService(store.Movies(), store.Fans(), store.Critics(),
			store.Reviews(), store.Actors(), store.Social()),
		ctx: context.Background(),
	}
}

// 喜欢后再不喜欢：两种状态互斥
func TestLikeDislikeMutualExclusion(t *testing.T) {
	f := newSocialFixture(t)
	require.NoError(t, f.store.Movies().Upsert(f.ctx, &model.Movie{ID: 7, Title: "A"}))
	require.NoError(t, f.store.Fans().Create(f.ctx, &model.Fan{Username: "alice"}))

	require.NoError(t, f.social.Like(f.ctx, 7, "alice"))
	require.NoError(t, f.social.Dislike(f.ctx, 7, "alice"))

	liked, err := f.social.IsLikedBy(f.ctx, 7, "alice")
	require.NoError(t, err)
	assert.False(t, liked)

	disliker, err := f.social.IsDislikedBy(f.ctx, 7, "alice")
	require.NoError(t, err)
	require.NotNil(t, disliker)
	assert.Equal(t, "alice", disliker.Username)

	// 再喜欢回来，不喜欢的边被摘掉
	require.NoError(t, f.social.Like(f.ctx, 7, "alice"))
	liked, err = f.social.IsLikedBy(f.ctx, 7, "alice")
	require.NoError(t, err)
	assert.True(t, liked)
	disliker, err = f.social.IsDislikedBy(f.ctx, 7, "alice")
	require.NoError(t, err)
	assert.Nil(t, disliker)
}

// 重复喜欢是幂等的
func TestDoubleLikeIdempotent(t *testing.T) {
	f := newSocialFixture(t)
	require.NoError(t, f.store.Movies().Upsert(f.ctx, &model.Movie{ID: 7, Title: "A"}))
	require.NoError(t, f.store.Fans().Create(f.ctx, &model.Fan{Username: "alice"}))

	require.NoError(t, f.social.Like(f.ctx, 7, "alice"))
	require.NoError(t, f.social.Like(f.ctx, 7, "alice"))

	fans, err := f.social.FansWhoLiked(f.ctx, 7)
	require.NoError(t, err)
	require.Len(t, fans, 1)
	assert.Equal(t, "alice", fans[0].Username)
}

// 引用的实体不存在时写操作静默跳过
func TestMutationsSilentlySkipMissingRefs(t *testing.T) {
	f := newSocialFixture(t)
	require.NoError(t, f.store.Movies().Upsert(f.ctx, &model.Movie{ID: 7, Title: "A"}))
	require.NoError(t, f.store.Fans().Create(f.ctx, &model.Fan{Username: "alice"}))

	// 电影不存在
	require.NoError(t, f.social.Like(f.ctx, 404, "alice"))
	// 影迷不存在
	require.NoError(t, f.social.Like(f.ctx, 7, "nobody"))
	// 影评人不存在
	require.NoError(t, f.social.Recommend(f.ctx, 7, "nobody"))

	fans, err := f.social.FansWhoLiked(f.ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, fans)

	critics, err := f.social.CriticsWhoRecommended(f.ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, critics)
}

// 电影不存在时列表查询返回 nil（序列化成 null）
func TestListQueriesNilForMissingMovie(t *testing.T) {
	f := newSocialFixture(t)

	fans, err := f.social.FansWhoLiked(f.ctx, 404)
	require.NoError(t, err)
	assert.Nil(t, fans)

	reviews, err := f.social.ReviewsOf(f.ctx, 404)
	require.NoError(t, err)
	assert.Nil(t, reviews)

	cast, err := f.social.CastOf(f.ctx, 404)
	require.NoError(t, err)
	assert.Nil(t, cast)
}

// 影评挂接与查询
func TestAttachReview(t *testing.T) {
	f := newSocialFixture(t)
	require.NoError(t, f.store.Movies().Upsert(f.ctx, &model.Movie{ID: 7, Title: "A"}))
	review := &model.Review{Author: "alice", Body: "很好看", Score: 9}
	require.NoError(t, f.social.CreateReview(f.ctx, review))

	require.NoError(t, f.social.AttachReview(f.ctx, 7, review.ID))
	// 幂等
	require.NoError(t, f.social.AttachReview(f.ctx, 7, review.ID))

	reviews, err := f.social.ReviewsOf(f.ctx, 7)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "很好看", reviews[0].Body)

	// 不存在的影评不挂接
	require.NoError(t, f.social.AttachReview(f.ctx, 7, 12345))
	reviews, _ = f.social.ReviewsOf(f.ctx, 7)
	assert.Len(t, reviews, 1)
}

// 演员表挂接与查询
func TestAttachCast(t *testing.T) {
	f := newSocialFixture(t)
	require.NoError(t, f.store.Movies().Upsert(f.ctx, &model.Movie{ID: 7, Title: "A"}))
	require.NoError(t, f.social.CreateActor(f.ctx, &model.Actor{ID: 99, Name: "某演员"}))

	require.NoError(t, f.social.AttachCast(f.ctx, 7, 99))
	cast, err := f.social.CastOf(f.ctx, 7)
	require.NoError(t, err)
	require.Len(t, cast, 1)
	assert.Equal(t, "某演员", cast[0].Name)
}

// 推荐查询返回影评人实体或 nil
func TestIsRecommendedBy(t *testing.T) {
	f := newSocialFixture(t)
	require.NoError(t, f.store.Movies().Upsert(f.ctx, &model.Movie{ID: 7, Title: "A"}))
	require.NoError(t, f.store.Critics().Create(f.ctx, &model.Critic{Username: "bob"}))

	critic, err := f.social.IsRecommendedBy(f.ctx, 7, "bob")
	require.NoError(t, err)
	assert.Nil(t, critic)

	require.NoError(t, f.social.Recommend(f.ctx, 7, "bob"))
	critic, err = f.social.IsRecommendedBy(f.ctx, 7, "bob")
	require.NoError(t, err)
	require.NotNil(t, critic)
	assert.Equal(t, "bob", critic.Username)
}

// 自己不能关注自己
func TestFollowSelfIsNoop(t *testing.T) {
	f := newSocialFixture(t)
	require.NoError(t, f.store.Fans().Create(f.ctx, &model.Fan{Username: "alice"}))

	require.NoError(t, f.social.FollowFan(f.ctx, "alice", "alice"))

	fan, err := f.store.Fans().FindByUsername(f.ctx, "alice")
	require.NoError(t, err)
	ids, err := f.store.Fans().FollowedFanIDs(f.ctx, fan.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
