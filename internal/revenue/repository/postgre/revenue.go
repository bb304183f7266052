package postgre

import (
	"context"
	"database/sql"

	"engagement-srv/internal/model"
	"engagement-srv/internal/revenue/repository"
)

// GetPostByID - Load the counters and city needed for a recompute.
func (r *implRepository) GetPostByID(ctx context.Context, id string) (*model.Post, error) {
	query := `
		SELECT id, author_id, city, views, bot_views, bot_likes,
		       view_revenue, like_revenue, total_revenue
		FROM engagement.posts
		WHERE id = $1
	`

	var post model.Post
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.AuthorID, &post.City,
		&post.Views, &post.BotViews, &post.BotLikes,
		&post.ViewRevenue, &post.LikeRevenue, &post.TotalRevenue,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrPostNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "revenue.repository.postgre.GetPostByID: Failed to get post: %v", err)
		return nil, err
	}

	return &post, nil
}

// CountLikes - Like-set size for a post.
func (r *implRepository) CountLikes(ctx context.Context, postID string) (int64, error) {
	query := `SELECT COUNT(*) FROM engagement.post_likes WHERE post_id = $1`

	var count int64
	if err := r.db.QueryRowContext(ctx, query, postID).Scan(&count); err != nil {
		r.l.Errorf(ctx, "revenue.repository.postgre.CountLikes: Failed to count likes: %v", err)
		return 0, err
	}

	return count, nil
}

// SaveSnapshot - Overwrite the cached revenue figures on the post.
func (r *implRepository) SaveSnapshot(ctx context.Context, opts repository.SaveSnapshotOptions) error {
	query := `
		UPDATE engagement.posts
		SET view_revenue = $2, like_revenue = $3, total_revenue = $4, updated_at = NOW()
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query,
		opts.PostID, opts.ViewRevenue, opts.LikeRevenue, opts.TotalRevenue)
	if err != nil {
		r.l.Errorf(ctx, "revenue.repository.postgre.SaveSnapshot: Failed to save snapshot: %v", err)
		return repository.ErrSnapshotUpdateFailed
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return repository.ErrSnapshotUpdateFailed
	}
	if affected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}
