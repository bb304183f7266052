package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"engagement-srv/internal/engagement"
	"engagement-srv/internal/engagement/repository"
	"engagement-srv/internal/model"
)

// RecordView classifies one view, appends it to the ledger and bumps the
// post counters. Bot traffic still increments the raw view counter; only the
// payable figures subtract it.
func (uc *implUseCase) RecordView(ctx context.Context, sc model.Scope, input engagement.RecordViewInput) (engagement.RecordViewOutput, error) {
	if input.PostID == "" {
		return engagement.RecordViewOutput{}, engagement.ErrPostIDRequired
	}

	post, err := uc.repo.GetPostByID(ctx, input.PostID)
	if errors.Is(err, repository.ErrPostNotFound) {
		return engagement.RecordViewOutput{}, engagement.ErrPostNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "engagement.usecase.RecordView: Failed to load post: %v", err)
		return engagement.RecordViewOutput{}, engagement.ErrRecordFailed
	}

	// The bump precedes classification so the velocity count includes the
	// event being classified: the first view past the burst limit is already
	// flagged, not the one after it.
	if err := uc.cache.BumpViewVelocity(ctx, sc.UserID, input.IPAddress); err != nil {
		uc.l.Warnf(ctx, "engagement.usecase.RecordView: Velocity bump failed: %v", err)
	}

	verdict := uc.detector.Classify(ctx, engagement.Signal{
		UserID:      sc.UserID,
		IPAddress:   input.IPAddress,
		UserAgent:   input.UserAgent,
		IsAutomated: input.IsAutomated,
	})

	isValidView := !verdict.IsBot &&
		input.ScrollPercentage >= uc.config.MinScrollDepth &&
		time.Duration(input.ViewDurationMs)*time.Millisecond >= uc.config.MinViewDuration

	// Ledger first. When the insert fails the counters are still applied
	// directly so the view is never lost, only its audit row.
	ledgerOK := true
	_, err = uc.repo.InsertViewEvent(ctx, repository.InsertViewEventOptions{
		ID:               uuid.New().String(),
		PostID:           input.PostID,
		UserID:           sc.UserID,
		IPAddress:        input.IPAddress,
		UserAgent:        input.UserAgent,
		SessionID:        input.SessionID,
		Referrer:         input.Referrer,
		Source:           input.Source,
		ScrollPercentage: input.ScrollPercentage,
		ViewDurationMs:   input.ViewDurationMs,
		IsBot:            verdict.IsBot,
		BotScore:         verdict.BotScore,
		IsValidView:      isValidView,
	})
	if err != nil {
		ledgerOK = false
		uc.l.Warnf(ctx, "engagement.usecase.RecordView: Ledger insert failed, applying counters directly: %v", err)
	}

	counters, err := uc.applyViewCounters(ctx, input.PostID, verdict.IsBot, ledgerOK)
	if err != nil {
		if !ledgerOK {
			// No ledger row and no counter: the view is genuinely lost.
			uc.l.Errorf(ctx, "engagement.usecase.RecordView: Failed to record view for post %s: %v", input.PostID, err)
			return engagement.RecordViewOutput{}, engagement.ErrRecordFailed
		}
		// Ledger row exists; reconciliation can recount from it.
		uc.l.Errorf(ctx, "engagement.usecase.RecordView: Counter apply failed after ledger insert for post %s, needs reconciliation: %v", input.PostID, err)
		counters = repository.ViewCounters{
			Views:        post.Views + 1,
			BotViews:     post.BotViews,
			ViewRevenue:  post.ViewRevenue,
			TotalRevenue: post.TotalRevenue,
		}
		if verdict.IsBot {
			counters.BotViews++
		}
	}

	// Best-effort snapshot refresh; the response carries the counters
	// either way.
	if breakdown, err := uc.revenueUC.Recompute(ctx, input.PostID); err != nil {
		uc.l.Warnf(ctx, "engagement.usecase.RecordView: Revenue recompute failed: %v", err)
	} else {
		counters.ViewRevenue = breakdown.ViewRevenue
		counters.TotalRevenue = breakdown.TotalRevenue
	}

	return engagement.RecordViewOutput{
		Views:        counters.Views,
		BotViews:     counters.BotViews,
		ViewRevenue:  counters.ViewRevenue,
		TotalRevenue: counters.TotalRevenue,
		IsBot:        verdict.IsBot,
		IsValidView:  isValidView,
	}, nil
}

// applyViewCounters funnels every increment through the single mutator,
// retrying once when a ledger row is already committed.
func (uc *implUseCase) applyViewCounters(ctx context.Context, postID string, isBot, ledgerOK bool) (repository.ViewCounters, error) {
	opts := repository.ApplyViewOptions{PostID: postID, IsBot: isBot}

	counters, err := uc.repo.ApplyView(ctx, opts)
	if err == nil || !ledgerOK {
		return counters, err
	}

	uc.l.Warnf(ctx, "engagement.usecase.applyViewCounters: Retrying counter apply for post %s: %v", postID, err)
	return uc.repo.ApplyView(ctx, opts)
}
