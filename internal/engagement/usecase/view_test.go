package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"engagement-srv/internal/engagement"
	"engagement-srv/internal/model"
	"engagement-srv/internal/revenue"
)

func validViewInput(postID string) engagement.RecordViewInput {
	return engagement.RecordViewInput{
		PostID:           postID,
		UserAgent:        chromeUA,
		IPAddress:        "203.0.113.7",
		ScrollPercentage: 85,
		ViewDurationMs:   5000,
	}
}

func TestRecordView(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	t.Run("valid human view bumps counters and refreshes revenue", func(t *testing.T) {
		repo := newFakeRepo(&model.Post{ID: "post-1", AuthorID: "author-1", Views: 4})
		rev := &stubRevenue{breakdown: revenue.Breakdown{ViewRevenue: 0.5, TotalRevenue: 0.5}}
		uc := newTestUseCase(repo, &stubCache{}, rev, &stubProducer{}, Config{})

		out, err := uc.RecordView(ctx, sc, validViewInput("post-1"))
		require.NoError(t, err)
		require.False(t, out.IsBot)
		require.True(t, out.IsValidView)
		require.Equal(t, int64(5), out.Views)
		require.Equal(t, int64(0), out.BotViews)
		require.Equal(t, 0.5, out.TotalRevenue)
		require.Len(t, repo.events, 1)
		require.True(t, repo.events[0].IsValidView)
		require.Equal(t, 1, rev.calls)
	})

	t.Run("bot view counts raw but is never valid", func(t *testing.T) {
		repo := newFakeRepo(&model.Post{ID: "post-1", AuthorID: "author-1"})
		uc := newTestUseCase(repo, &stubCache{}, &stubRevenue{}, &stubProducer{}, Config{})

		input := validViewInput("post-1")
		input.UserAgent = "curl/7.68.0"

		out, err := uc.RecordView(ctx, sc, input)
		require.NoError(t, err)
		require.True(t, out.IsBot)
		require.False(t, out.IsValidView)
		require.Equal(t, int64(1), out.Views)
		require.Equal(t, int64(1), out.BotViews)
		require.Len(t, repo.events, 1)
		require.True(t, repo.events[0].IsBot)
	})

	t.Run("shallow scroll is not a valid view", func(t *testing.T) {
		repo := newFakeRepo(&model.Post{ID: "post-1"})
		uc := newTestUseCase(repo, &stubCache{}, &stubRevenue{}, &stubProducer{}, Config{})

		input := validViewInput("post-1")
		input.ScrollPercentage = 40

		out, err := uc.RecordView(ctx, sc, input)
		require.NoError(t, err)
		require.False(t, out.IsBot)
		require.False(t, out.IsValidView)
		require.Equal(t, int64(1), out.Views)
	})

	t.Run("short duration is not a valid view", func(t *testing.T) {
		repo := newFakeRepo(&model.Post{ID: "post-1"})
		uc := newTestUseCase(repo, &stubCache{}, &stubRevenue{}, &stubProducer{}, Config{})

		input := validViewInput("post-1")
		input.ViewDurationMs = 1500

		out, err := uc.RecordView(ctx, sc, input)
		require.NoError(t, err)
		require.False(t, out.IsValidView)
	})

	t.Run("ledger failure falls back to direct counters", func(t *testing.T) {
		repo := newFakeRepo(&model.Post{ID: "post-1", Views: 9})
		repo.insertViewErr = errors.New("disk full")
		uc := newTestUseCase(repo, &stubCache{}, &stubRevenue{}, &stubProducer{}, Config{})

		out, err := uc.RecordView(ctx, sc, validViewInput("post-1"))
		require.NoError(t, err)
		require.Equal(t, int64(10), out.Views)
		require.Empty(t, repo.events)
	})

	t.Run("counter failure after ledger insert retries once", func(t *testing.T) {
		repo := newFakeRepo(&model.Post{ID: "post-1", Views: 2})
		repo.applyViewErr = errors.New("deadlock")
		repo.applyViewErrs = 1
		uc := newTestUseCase(repo, &stubCache{}, &stubRevenue{}, &stubProducer{}, Config{})

		out, err := uc.RecordView(ctx, sc, validViewInput("post-1"))
		require.NoError(t, err)
		require.Equal(t, 2, repo.applyCalls)
		require.Equal(t, int64(3), out.Views)
	})

	t.Run("counter failure with ledger row synthesizes counters", func(t *testing.T) {
		repo := newFakeRepo(&model.Post{ID: "post-1", Views: 7, BotViews: 2})
		repo.applyViewErr = errors.New("deadlock")
		repo.applyViewErrs = 2
		uc := newTestUseCase(repo, &stubCache{}, &stubRevenue{err: errors.New("down")}, &stubProducer{}, Config{})

		out, err := uc.RecordView(ctx, sc, validViewInput("post-1"))
		require.NoError(t, err)
		require.Len(t, repo.events, 1)
		require.Equal(t, int64(8), out.Views)
		require.Equal(t, int64(2), out.BotViews)
	})

	t.Run("both ledger and counter failing loses the view", func(t *testing.T) {
		repo := newFakeRepo(&model.Post{ID: "post-1"})
		repo.insertViewErr = errors.New("disk full")
		repo.applyViewErr = errors.New("deadlock")
		uc := newTestUseCase(repo, &stubCache{}, &stubRevenue{}, &stubProducer{}, Config{})

		_, err := uc.RecordView(ctx, sc, validViewInput("post-1"))
		require.ErrorIs(t, err, engagement.ErrRecordFailed)
	})

	t.Run("revenue recompute failure keeps stored snapshot", func(t *testing.T) {
		repo := newFakeRepo(&model.Post{ID: "post-1", ViewRevenue: 1.2, TotalRevenue: 1.7})
		uc := newTestUseCase(repo, &stubCache{}, &stubRevenue{err: errors.New("down")}, &stubProducer{}, Config{})

		out, err := uc.RecordView(ctx, sc, validViewInput("post-1"))
		require.NoError(t, err)
		require.Equal(t, 1.2, out.ViewRevenue)
		require.Equal(t, 1.7, out.TotalRevenue)
	})

	t.Run("view past the burst limit is flagged bot", func(t *testing.T) {
		repo := newFakeRepo(&model.Post{ID: "post-1", AuthorID: "author-1"})
		uc := newTestUseCase(repo, newCountingCache(), &stubRevenue{}, &stubProducer{}, Config{})

		for i := 1; i <= 10; i++ {
			out, err := uc.RecordView(ctx, sc, validViewInput("post-1"))
			require.NoError(t, err)
			require.False(t, out.IsBot, "view %d within the burst limit", i)
		}

		out, err := uc.RecordView(ctx, sc, validViewInput("post-1"))
		require.NoError(t, err)
		require.True(t, out.IsBot, "11th view in the window")
		require.Equal(t, int64(11), out.Views)
		require.Equal(t, int64(1), out.BotViews)
	})

	t.Run("burst by a second user on the same ip is flagged", func(t *testing.T) {
		repo := newFakeRepo(&model.Post{ID: "post-1", AuthorID: "author-1"})
		cache := newCountingCache()
		uc := newTestUseCase(repo, cache, &stubRevenue{}, &stubProducer{}, Config{})

		for i := 1; i <= 10; i++ {
			_, err := uc.RecordView(ctx, sc, validViewInput("post-1"))
			require.NoError(t, err)
		}

		out, err := uc.RecordView(ctx, model.Scope{UserID: "user-2"}, validViewInput("post-1"))
		require.NoError(t, err)
		require.True(t, out.IsBot)
	})

	t.Run("missing post id", func(t *testing.T) {
		uc := newTestUseCase(newFakeRepo(nil), &stubCache{}, &stubRevenue{}, &stubProducer{}, Config{})

		_, err := uc.RecordView(ctx, sc, validViewInput(""))
		require.ErrorIs(t, err, engagement.ErrPostIDRequired)
	})

	t.Run("unknown post", func(t *testing.T) {
		uc := newTestUseCase(newFakeRepo(nil), &stubCache{}, &stubRevenue{}, &stubProducer{}, Config{})

		_, err := uc.RecordView(ctx, sc, validViewInput("missing"))
		require.ErrorIs(t, err, engagement.ErrPostNotFound)
	})
}
