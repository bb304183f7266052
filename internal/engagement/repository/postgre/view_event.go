package postgre

import (
	"context"
	"time"

	"engagement-srv/internal/engagement/repository"
	"engagement-srv/internal/model"
)

// InsertViewEvent - Append one immutable ledger row.
func (r *implRepository) InsertViewEvent(ctx context.Context, opts repository.InsertViewEventOptions) (*model.ViewEvent, error) {
	now := time.Now()

	query := `
		INSERT INTO engagement.view_events
			(id, post_id, user_id, ip_address, user_agent, session_id, referrer,
			 view_source, scroll_percentage, view_duration_ms, is_bot, bot_score,
			 is_valid_view, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, post_id, user_id, ip_address, user_agent, session_id, referrer,
		          view_source, scroll_percentage, view_duration_ms, is_bot, bot_score,
		          is_valid_view, created_at
	`

	var event model.ViewEvent
	err := r.db.QueryRowContext(ctx, query,
		opts.ID, opts.PostID, opts.UserID, opts.IPAddress, opts.UserAgent,
		opts.SessionID, opts.Referrer, opts.Source,
		opts.ScrollPercentage, opts.ViewDurationMs,
		opts.IsBot, opts.BotScore, opts.IsValidView, now,
	).Scan(
		&event.ID, &event.PostID, &event.UserID, &event.IPAddress, &event.UserAgent,
		&event.SessionID, &event.Referrer, &event.Source,
		&event.ScrollPercentage, &event.ViewDurationMs,
		&event.IsBot, &event.BotScore, &event.IsValidView, &event.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "engagement.repository.postgre.InsertViewEvent: Failed to insert event: %v", err)
		return nil, repository.ErrViewEventInsertFailed
	}

	return &event, nil
}

// PurgeViewEventsBefore - Delete up to limit ledger rows older than cutoff.
// Bounded batches keep the delete from holding long locks on a hot table.
func (r *implRepository) PurgeViewEventsBefore(ctx context.Context, cutoff time.Time, limit int) (int64, error) {
	query := `
		DELETE FROM engagement.view_events
		WHERE id IN (
			SELECT id FROM engagement.view_events
			WHERE created_at < $1
			ORDER BY created_at ASC
			LIMIT $2
		)
	`

	res, err := r.db.ExecContext(ctx, query, cutoff, limit)
	if err != nil {
		r.l.Errorf(ctx, "engagement.repository.postgre.PurgeViewEventsBefore: Failed to purge events: %v", err)
		return 0, err
	}

	return res.RowsAffected()
}
