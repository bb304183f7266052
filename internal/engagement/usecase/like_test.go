package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"engagement-srv/internal/engagement"
	"engagement-srv/internal/model"
	"engagement-srv/internal/notification"
)

func likeInput(postID string) engagement.ToggleLikeInput {
	return engagement.ToggleLikeInput{
		PostID:    postID,
		UserAgent: chromeUA,
		IPAddress: "203.0.113.7",
	}
}

func TestToggleLike(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	t.Run("first toggle likes, second unlikes", func(t *testing.T) {
		repo := newFakeRepo(&model.Post{ID: "post-1", AuthorID: "author-1"})
		uc := newTestUseCase(repo, &stubCache{acquired: true}, &stubRevenue{}, &stubProducer{}, Config{})

		out, err := uc.ToggleLike(ctx, sc, likeInput("post-1"))
		require.NoError(t, err)
		require.True(t, out.IsLiked)
		require.Equal(t, int64(1), out.LikesCount)

		out, err = uc.ToggleLike(ctx, sc, likeInput("post-1"))
		require.NoError(t, err)
		require.False(t, out.IsLiked)
		require.Equal(t, int64(0), out.LikesCount)
	})

	t.Run("like notifies the author", func(t *testing.T) {
		repo := newFakeRepo(&model.Post{ID: "post-1", AuthorID: "author-1"})
		prod := &stubProducer{}
		uc := newTestUseCase(repo, &stubCache{acquired: true}, &stubRevenue{}, prod, Config{})

		_, err := uc.ToggleLike(ctx, sc, likeInput("post-1"))
		require.NoError(t, err)
		require.Len(t, prod.events, 1)
		require.Equal(t, notification.EventTypeLike, prod.events[0].Type)
		require.Equal(t, "author-1", prod.events[0].AuthorID)
		require.Equal(t, "user-1", prod.events[0].ActorID)
	})

	t.Run("self like is not notified", func(t *testing.T) {
		repo := newFakeRepo(&model.Post{ID: "post-1", AuthorID: "user-1"})
		prod := &stubProducer{}
		uc := newTestUseCase(repo, &stubCache{acquired: true}, &stubRevenue{}, prod, Config{})

		_, err := uc.ToggleLike(ctx, sc, likeInput("post-1"))
		require.NoError(t, err)
		require.Empty(t, prod.events)
	})

	t.Run("unlike is not notified", func(t *testing.T) {
		repo := newFakeRepo(&model.Post{ID: "post-1", AuthorID: "author-1"})
		prod := &stubProducer{}
		uc := newTestUseCase(repo, &stubCache{acquired: true}, &stubRevenue{}, prod, Config{})

		_, err := uc.ToggleLike(ctx, sc, likeInput("post-1"))
		require.NoError(t, err)
		_, err = uc.ToggleLike(ctx, sc, likeInput("post-1"))
		require.NoError(t, err)
		require.Len(t, prod.events, 1)
	})

	t.Run("held slot rate-limits the toggle", func(t *testing.T) {
		repo := newFakeRepo(&model.Post{ID: "post-1"})
		uc := newTestUseCase(repo, &stubCache{acquired: false}, &stubRevenue{}, &stubProducer{}, Config{})

		_, err := uc.ToggleLike(ctx, sc, likeInput("post-1"))
		require.ErrorIs(t, err, engagement.ErrRateLimited)
		require.Empty(t, repo.likes)
	})

	t.Run("cache outage allows the toggle", func(t *testing.T) {
		repo := newFakeRepo(&model.Post{ID: "post-1"})
		cache := &stubCache{acquireErr: errors.New("redis down")}
		uc := newTestUseCase(repo, cache, &stubRevenue{}, &stubProducer{}, Config{})

		out, err := uc.ToggleLike(ctx, sc, likeInput("post-1"))
		require.NoError(t, err)
		require.True(t, out.IsLiked)
	})

	t.Run("bot like adjusts the bot counter both ways", func(t *testing.T) {
		post := &model.Post{ID: "post-1", AuthorID: "author-1"}
		repo := newFakeRepo(post)
		uc := newTestUseCase(repo, &stubCache{acquired: true}, &stubRevenue{}, &stubProducer{}, Config{})

		input := likeInput("post-1")
		input.UserAgent = "curl/7.68.0"

		_, err := uc.ToggleLike(ctx, sc, input)
		require.NoError(t, err)
		require.Equal(t, int64(1), post.BotLikes)

		_, err = uc.ToggleLike(ctx, sc, input)
		require.NoError(t, err)
		require.Equal(t, int64(0), post.BotLikes)
	})

	t.Run("toggle triggers a revenue recompute", func(t *testing.T) {
		repo := newFakeRepo(&model.Post{ID: "post-1"})
		rev := &stubRevenue{}
		uc := newTestUseCase(repo, &stubCache{acquired: true}, rev, &stubProducer{}, Config{})

		_, err := uc.ToggleLike(ctx, sc, likeInput("post-1"))
		require.NoError(t, err)
		require.Equal(t, 1, rev.calls)
	})

	t.Run("missing post id", func(t *testing.T) {
		uc := newTestUseCase(newFakeRepo(nil), &stubCache{acquired: true}, &stubRevenue{}, &stubProducer{}, Config{})

		_, err := uc.ToggleLike(ctx, sc, likeInput(""))
		require.ErrorIs(t, err, engagement.ErrPostIDRequired)
	})

	t.Run("unknown post", func(t *testing.T) {
		uc := newTestUseCase(newFakeRepo(nil), &stubCache{acquired: true}, &stubRevenue{}, &stubProducer{}, Config{})

		_, err := uc.ToggleLike(ctx, sc, likeInput("missing"))
		require.ErrorIs(t, err, engagement.ErrPostNotFound)
	})
}

func TestGetLikes(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the like set with pagination", func(t *testing.T) {
		repo := newFakeRepo(&model.Post{ID: "post-1"})
		uc := newTestUseCase(repo, &stubCache{acquired: true}, &stubRevenue{}, &stubProducer{}, Config{})

		for _, userID := range []string{"user-1", "user-2", "user-3"} {
			_, err := uc.ToggleLike(ctx, model.Scope{UserID: userID}, likeInput("post-1"))
			require.NoError(t, err)
		}

		out, err := uc.GetLikes(ctx, model.Scope{UserID: "user-1"}, engagement.GetLikesInput{PostID: "post-1"})
		require.NoError(t, err)
		require.Len(t, out.Likes, 3)
		require.Equal(t, int64(3), out.Total)
	})

	t.Run("unknown post", func(t *testing.T) {
		uc := newTestUseCase(newFakeRepo(nil), &stubCache{}, &stubRevenue{}, &stubProducer{}, Config{})

		_, err := uc.GetLikes(ctx, model.Scope{}, engagement.GetLikesInput{PostID: "missing"})
		require.ErrorIs(t, err, engagement.ErrPostNotFound)
	})
}
