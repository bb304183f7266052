package postgre

import (
	"context"
	"database/sql"

	"engagement-srv/internal/engagement/repository"
	"engagement-srv/internal/model"
)

// GetPostByID - Load a post with its counters and state flags.
func (r *implRepository) GetPostByID(ctx context.Context, id string) (*model.Post, error) {
	query := `
		SELECT id, author_id, content, city, visibility,
		       views, bot_views, bot_likes,
		       view_revenue, like_revenue, total_revenue,
		       approved, is_active, paid, created_at, updated_at
		FROM engagement.posts
		WHERE id = $1
	`

	var post model.Post
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.AuthorID, &post.Content, &post.City, &post.Visibility,
		&post.Views, &post.BotViews, &post.BotLikes,
		&post.ViewRevenue, &post.LikeRevenue, &post.TotalRevenue,
		&post.Approved, &post.Active, &post.Paid, &post.CreatedAt, &post.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrPostNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "engagement.repository.postgre.GetPostByID: Failed to get post: %v", err)
		return nil, err
	}

	return &post, nil
}

// ApplyView - The single counter mutator. views always +1; bot_views +1 for
// bot traffic. Returns the fresh counters with the cached revenue snapshot.
func (r *implRepository) ApplyView(ctx context.Context, opts repository.ApplyViewOptions) (repository.ViewCounters, error) {
	query := `
		UPDATE engagement.posts
		SET views = views + 1,
		    bot_views = bot_views + CASE WHEN $2 THEN 1 ELSE 0 END,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING views, bot_views, view_revenue, total_revenue
	`

	var counters repository.ViewCounters
	err := r.db.QueryRowContext(ctx, query, opts.PostID, opts.IsBot).Scan(
		&counters.Views, &counters.BotViews,
		&counters.ViewRevenue, &counters.TotalRevenue,
	)
	if err == sql.ErrNoRows {
		return repository.ViewCounters{}, repository.ErrPostNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "engagement.repository.postgre.ApplyView: Failed to apply view: %v", err)
		return repository.ViewCounters{}, repository.ErrCounterUpdateFailed
	}

	return counters, nil
}

// ApplyBotLikeDelta - Adjust bot_likes, floored at zero.
func (r *implRepository) ApplyBotLikeDelta(ctx context.Context, postID string, delta int64) error {
	query := `
		UPDATE engagement.posts
		SET bot_likes = GREATEST(bot_likes + $2, 0), updated_at = NOW()
		WHERE id = $1
	`

	if _, err := r.db.ExecContext(ctx, query, postID, delta); err != nil {
		r.l.Errorf(ctx, "engagement.repository.postgre.ApplyBotLikeDelta: Failed to adjust bot likes: %v", err)
		return repository.ErrCounterUpdateFailed
	}

	return nil
}
