package usecase

import (
	"context"
	"sync"
	"time"

	"engagement-srv/internal/engagement/repository"
	"engagement-srv/internal/model"
	"engagement-srv/internal/notification"
	"engagement-srv/internal/revenue"
	"engagement-srv/pkg/log"
)

// fakeRepo is an in-memory PostgresRepository. Behaviour can be overridden
// per test through the function fields.
type fakeRepo struct {
	mu sync.Mutex

	post   *model.Post
	likes  map[string]time.Time // userID -> liked at
	events []repository.InsertViewEventOptions

	insertViewErr error
	applyViewErr  error
	applyViewErrs int // fail this many ApplyView calls with applyViewErr, then succeed
	applyCalls    int

	purgeBatches []int64
	purgeErr     error
}

func newFakeRepo(post *model.Post) *fakeRepo {
	return &fakeRepo{
		post:  post,
		likes: map[string]time.Time{},
	}
}

func (f *fakeRepo) GetPostByID(ctx context.Context, id string) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.post == nil || f.post.ID != id {
		return nil, repository.ErrPostNotFound
	}
	cp := *f.post
	return &cp, nil
}

func (f *fakeRepo) InsertViewEvent(ctx context.Context, opts repository.InsertViewEventOptions) (*model.ViewEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertViewErr != nil {
		return nil, f.insertViewErr
	}
	f.events = append(f.events, opts)
	return &model.ViewEvent{ID: opts.ID, PostID: opts.PostID}, nil
}

func (f *fakeRepo) ApplyView(ctx context.Context, opts repository.ApplyViewOptions) (repository.ViewCounters, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.applyCalls++
	if f.applyViewErrs > 0 {
		f.applyViewErrs--
		return repository.ViewCounters{}, f.applyViewErr
	}
	if f.applyViewErr != nil {
		return repository.ViewCounters{}, f.applyViewErr
	}
	f.post.Views++
	if opts.IsBot {
		f.post.BotViews++
	}
	return repository.ViewCounters{
		Views:        f.post.Views,
		BotViews:     f.post.BotViews,
		ViewRevenue:  f.post.ViewRevenue,
		TotalRevenue: f.post.TotalRevenue,
	}, nil
}

func (f *fakeRepo) InsertLike(ctx context.Context, postID, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.likes[userID]; ok {
		return false, nil
	}
	f.likes[userID] = time.Now()
	return true, nil
}

func (f *fakeRepo) DeleteLike(ctx context.Context, postID, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.likes[userID]; !ok {
		return false, nil
	}
	delete(f.likes, userID)
	return true, nil
}

func (f *fakeRepo) CountLikes(ctx context.Context, postID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.likes)), nil
}

func (f *fakeRepo) ListLikes(ctx context.Context, opts repository.ListLikesOptions) ([]model.PostLike, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var likes []model.PostLike
	for userID, at := range f.likes {
		likes = append(likes, model.PostLike{PostID: opts.PostID, UserID: userID, CreatedAt: at})
	}
	return likes, int64(len(likes)), nil
}

func (f *fakeRepo) ApplyBotLikeDelta(ctx context.Context, postID string, delta int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.post.BotLikes += delta
	if f.post.BotLikes < 0 {
		f.post.BotLikes = 0
	}
	return nil
}

func (f *fakeRepo) PurgeViewEventsBefore(ctx context.Context, cutoff time.Time, limit int) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.purgeErr != nil {
		return 0, f.purgeErr
	}
	if len(f.purgeBatches) == 0 {
		return 0, nil
	}
	batch := f.purgeBatches[0]
	f.purgeBatches = f.purgeBatches[1:]
	return batch, nil
}

// countingCache tracks velocity bumps like the Redis window counters do,
// so ordering between bump and classification is observable.
type countingCache struct {
	mu    sync.Mutex
	users map[string]int64
	ips   map[string]int64
}

func newCountingCache() *countingCache {
	return &countingCache{
		users: map[string]int64{},
		ips:   map[string]int64{},
	}
}

func (c *countingCache) BumpViewVelocity(ctx context.Context, userID, ip string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.users[userID]++
	c.ips[ip]++
	return nil
}

func (c *countingCache) CountRecentViews(ctx context.Context, userID, ip string) (int64, int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.users[userID], c.ips[ip], nil
}

func (c *countingCache) AcquireLikeSlot(ctx context.Context, postID, userID string) (bool, error) {
	return true, nil
}

// stubRevenue is a revenue.UseCase returning a canned breakdown.
type stubRevenue struct {
	breakdown revenue.Breakdown
	err       error
	calls     int
}

func (s *stubRevenue) Recompute(ctx context.Context, postID string) (revenue.Breakdown, error) {
	s.calls++
	return s.breakdown, s.err
}

// stubProducer records published events.
type stubProducer struct {
	events []notification.Event
	err    error
}

func (s *stubProducer) PublishEvent(ctx context.Context, event notification.Event) error {
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, event)
	return nil
}

func newTestUseCase(repo *fakeRepo, cache repository.CacheRepository, rev *stubRevenue, prod *stubProducer, cfg Config) *implUseCase {
	l := log.Init(log.ZapConfig{Level: "error"})
	return New(repo, cache, rev, prod, l, cfg).(*implUseCase)
}
