package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"engagement-srv/internal/model"
	"engagement-srv/internal/moderation"
	"engagement-srv/internal/moderation/repository"
	"engagement-srv/internal/notification"
	"engagement-srv/internal/revenue"
	"engagement-srv/pkg/log"
)

// fakeRepo enforces the same state-machine guards as the conditional
// updates in the real repository.
type fakeRepo struct {
	mu    sync.Mutex
	posts map[string]*model.Post

	likes      map[string]int64
	markedPaid []repository.MarkPaidOptions
}

func newFakeRepo(posts ...*model.Post) *fakeRepo {
	f := &fakeRepo{
		posts: map[string]*model.Post{},
		likes: map[string]int64{},
	}
	for _, p := range posts {
		f.posts[p.ID] = p
	}
	return f
}

func (f *fakeRepo) GetPostByID(ctx context.Context, id string) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	post, ok := f.posts[id]
	if !ok {
		return nil, repository.ErrPostNotFound
	}
	cp := *post
	return &cp, nil
}

func (f *fakeRepo) ApprovePost(ctx context.Context, opts repository.ApprovePostOptions) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	post, ok := f.posts[opts.PostID]
	if !ok || post.Approved || !post.Active || post.Paid {
		return false, nil
	}
	post.Approved = true
	post.ApprovedBy = opts.ApprovedBy
	post.ApprovedAt = &opts.ApprovedAt
	return true, nil
}

func (f *fakeRepo) RejectPost(ctx context.Context, opts repository.RejectPostOptions) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	post, ok := f.posts[opts.PostID]
	if !ok || post.Approved || !post.Active || post.Paid {
		return false, nil
	}
	post.Active = false
	post.RejectedBy = opts.RejectedBy
	post.RejectionReason = opts.Reason
	post.RejectedAt = &opts.RejectedAt
	return true, nil
}

func (f *fakeRepo) MarkPaid(ctx context.Context, opts repository.MarkPaidOptions) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	post, ok := f.posts[opts.PostID]
	if !ok || !post.Approved || post.Paid || !post.Active {
		return false, nil
	}
	post.Paid = true
	post.PaidBy = opts.PaidBy
	post.PaidAt = &opts.PaidAt
	post.PaymentAmount = opts.Amount
	f.markedPaid = append(f.markedPaid, opts)
	return true, nil
}

func (f *fakeRepo) ListPosts(ctx context.Context, opts repository.ListPostsOptions) ([]model.Post, int64, error) {
	return nil, 0, nil
}

func (f *fakeRepo) ListPendingPayments(ctx context.Context, opts repository.ListPendingPaymentsOptions) ([]model.Post, int64, error) {
	return nil, 0, nil
}

func (f *fakeRepo) ListPaidPosts(ctx context.Context, opts repository.ListPaidPostsOptions) ([]model.Post, int64, error) {
	return nil, 0, nil
}

func (f *fakeRepo) PaymentStats(ctx context.Context, since time.Time) (repository.PaymentStatsRow, error) {
	return repository.PaymentStatsRow{}, nil
}

func (f *fakeRepo) CountLikes(ctx context.Context, postID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.likes[postID], nil
}

type stubRevenue struct {
	breakdown revenue.Breakdown
	err       error
	calls     int
}

func (s *stubRevenue) Recompute(ctx context.Context, postID string) (revenue.Breakdown, error) {
	s.calls++
	return s.breakdown, s.err
}

type stubProducer struct {
	events []notification.Event
}

func (s *stubProducer) PublishEvent(ctx context.Context, event notification.Event) error {
	s.events = append(s.events, event)
	return nil
}

func pendingPost(id string) *model.Post {
	return &model.Post{ID: id, AuthorID: "author-1", Active: true}
}

func newTestUseCase(repo *fakeRepo, rev *stubRevenue, prod *stubProducer) *implUseCase {
	l := log.Init(log.ZapConfig{Level: "error"})
	return New(repo, rev, prod, l).(*implUseCase)
}

func TestApprove(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "admin-1"}

	t.Run("pending post is approved with a fresh snapshot", func(t *testing.T) {
		repo := newFakeRepo(pendingPost("post-1"))
		rev := &stubRevenue{breakdown: revenue.Breakdown{TotalRevenue: 12.5}}
		prod := &stubProducer{}
		uc := newTestUseCase(repo, rev, prod)

		out, err := uc.Approve(ctx, sc, "post-1")
		require.NoError(t, err)
		require.True(t, out.Post.Approved)
		require.Equal(t, "admin-1", out.Post.ApprovedBy)
		require.Equal(t, 12.5, out.TotalRevenue)
		require.Equal(t, 1, rev.calls)
		require.Len(t, prod.events, 1)
		require.Equal(t, notification.EventTypePostApproved, prod.events[0].Type)
	})

	t.Run("approving an approved post conflicts", func(t *testing.T) {
		post := pendingPost("post-1")
		post.Approved = true
		uc := newTestUseCase(newFakeRepo(post), &stubRevenue{}, &stubProducer{})

		_, err := uc.Approve(ctx, sc, "post-1")
		require.ErrorIs(t, err, moderation.ErrAlreadyApproved)
	})

	t.Run("approving a rejected post conflicts", func(t *testing.T) {
		post := pendingPost("post-1")
		post.Active = false
		uc := newTestUseCase(newFakeRepo(post), &stubRevenue{}, &stubProducer{})

		_, err := uc.Approve(ctx, sc, "post-1")
		require.ErrorIs(t, err, moderation.ErrAlreadyRejected)
	})

	t.Run("unknown post", func(t *testing.T) {
		uc := newTestUseCase(newFakeRepo(), &stubRevenue{}, &stubProducer{})

		_, err := uc.Approve(ctx, sc, "missing")
		require.ErrorIs(t, err, moderation.ErrPostNotFound)
	})

	t.Run("recompute failure fails the transition", func(t *testing.T) {
		repo := newFakeRepo(pendingPost("post-1"))
		uc := newTestUseCase(repo, &stubRevenue{err: errors.New("down")}, &stubProducer{})

		_, err := uc.Approve(ctx, sc, "post-1")
		require.ErrorIs(t, err, moderation.ErrTransitionFailed)
	})
}

func TestReject(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "admin-1"}

	t.Run("pending post is rejected with the given reason", func(t *testing.T) {
		repo := newFakeRepo(pendingPost("post-1"))
		prod := &stubProducer{}
		uc := newTestUseCase(repo, &stubRevenue{}, prod)

		out, err := uc.Reject(ctx, sc, moderation.RejectInput{PostID: "post-1", Reason: "spam"})
		require.NoError(t, err)
		require.False(t, out.Post.Active)
		require.Equal(t, "spam", out.Post.RejectionReason)
		require.Len(t, prod.events, 1)
		require.Equal(t, notification.EventTypePostRejected, prod.events[0].Type)
		require.Equal(t, "spam", prod.events[0].Reason)
	})

	t.Run("empty reason falls back to the default", func(t *testing.T) {
		repo := newFakeRepo(pendingPost("post-1"))
		uc := newTestUseCase(repo, &stubRevenue{}, &stubProducer{})

		out, err := uc.Reject(ctx, sc, moderation.RejectInput{PostID: "post-1"})
		require.NoError(t, err)
		require.Equal(t, moderation.DefaultRejectionReason, out.Post.RejectionReason)
	})

	t.Run("rejecting an approved post conflicts", func(t *testing.T) {
		post := pendingPost("post-1")
		post.Approved = true
		uc := newTestUseCase(newFakeRepo(post), &stubRevenue{}, &stubProducer{})

		_, err := uc.Reject(ctx, sc, moderation.RejectInput{PostID: "post-1"})
		require.ErrorIs(t, err, moderation.ErrAlreadyApproved)
	})

	t.Run("rejecting a rejected post conflicts", func(t *testing.T) {
		post := pendingPost("post-1")
		post.Active = false
		uc := newTestUseCase(newFakeRepo(post), &stubRevenue{}, &stubProducer{})

		_, err := uc.Reject(ctx, sc, moderation.RejectInput{PostID: "post-1"})
		require.ErrorIs(t, err, moderation.ErrAlreadyRejected)
	})
}

func TestPay(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "accountant-1"}

	approvedPost := func(id string) *model.Post {
		post := pendingPost(id)
		post.Approved = true
		return post
	}

	t.Run("approved post is settled at the recomputed amount", func(t *testing.T) {
		post := approvedPost("post-1")
		post.PaymentAmount = 3.0 // stale snapshot
		repo := newFakeRepo(post)
		rev := &stubRevenue{breakdown: revenue.Breakdown{TotalRevenue: 21.75}}
		prod := &stubProducer{}
		uc := newTestUseCase(repo, rev, prod)

		out, err := uc.Pay(ctx, sc, "post-1")
		require.NoError(t, err)
		require.Equal(t, 21.75, out.Amount)
		require.True(t, out.Post.Paid)
		require.Equal(t, 21.75, out.Post.PaymentAmount)
		require.Len(t, repo.markedPaid, 1)
		require.Equal(t, 21.75, repo.markedPaid[0].Amount)
		require.Len(t, prod.events, 1)
		require.Equal(t, notification.EventTypePaymentProcessed, prod.events[0].Type)
		require.Equal(t, 21.75, prod.events[0].Amount)
	})

	t.Run("double pay conflicts", func(t *testing.T) {
		post := approvedPost("post-1")
		uc := newTestUseCase(newFakeRepo(post), &stubRevenue{}, &stubProducer{})

		_, err := uc.Pay(ctx, sc, "post-1")
		require.NoError(t, err)
		_, err = uc.Pay(ctx, sc, "post-1")
		require.ErrorIs(t, err, moderation.ErrAlreadyPaid)
	})

	t.Run("paying an unapproved post conflicts", func(t *testing.T) {
		uc := newTestUseCase(newFakeRepo(pendingPost("post-1")), &stubRevenue{}, &stubProducer{})

		_, err := uc.Pay(ctx, sc, "post-1")
		require.ErrorIs(t, err, moderation.ErrNotApproved)
	})

	t.Run("paying a rejected post conflicts", func(t *testing.T) {
		post := approvedPost("post-1")
		post.Active = false
		uc := newTestUseCase(newFakeRepo(post), &stubRevenue{}, &stubProducer{})

		_, err := uc.Pay(ctx, sc, "post-1")
		require.ErrorIs(t, err, moderation.ErrAlreadyRejected)
	})

	t.Run("unknown post", func(t *testing.T) {
		uc := newTestUseCase(newFakeRepo(), &stubRevenue{err: revenue.ErrPostNotFound}, &stubProducer{})

		_, err := uc.Pay(ctx, sc, "missing")
		require.ErrorIs(t, err, moderation.ErrPostNotFound)
	})
}
