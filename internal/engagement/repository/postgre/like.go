package postgre

import (
	"context"
	"fmt"

	"engagement-srv/internal/engagement/repository"
	"engagement-srv/internal/model"
)

// InsertLike - Set-membership CAS: the conflict target makes a concurrent
// double-like settle as exactly one insert.
func (r *implRepository) InsertLike(ctx context.Context, postID, userID string) (bool, error) {
	query := `
		INSERT INTO engagement.post_likes (post_id, user_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (post_id, user_id) DO NOTHING
	`

	res, err := r.db.ExecContext(ctx, query, postID, userID)
	if err != nil {
		r.l.Errorf(ctx, "engagement.repository.postgre.InsertLike: Failed to insert like: %v", err)
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// DeleteLike - Remove the pair from the like set.
func (r *implRepository) DeleteLike(ctx context.Context, postID, userID string) (bool, error) {
	query := `DELETE FROM engagement.post_likes WHERE post_id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, postID, userID)
	if err != nil {
		r.l.Errorf(ctx, "engagement.repository.postgre.DeleteLike: Failed to delete like: %v", err)
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// CountLikes - Like-set size for a post.
func (r *implRepository) CountLikes(ctx context.Context, postID string) (int64, error) {
	query := `SELECT COUNT(*) FROM engagement.post_likes WHERE post_id = $1`

	var count int64
	if err := r.db.QueryRowContext(ctx, query, postID).Scan(&count); err != nil {
		r.l.Errorf(ctx, "engagement.repository.postgre.CountLikes: Failed to count likes: %v", err)
		return 0, err
	}

	return count, nil
}

// ListLikes - Newest-first page of the like set plus the total.
func (r *implRepository) ListLikes(ctx context.Context, opts repository.ListLikesOptions) ([]model.PostLike, int64, error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM engagement.post_likes WHERE post_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, opts.PostID).Scan(&total); err != nil {
		r.l.Errorf(ctx, "engagement.repository.postgre.ListLikes: Failed to count likes: %v", err)
		return nil, 0, err
	}

	query := `
		SELECT post_id, user_id, created_at
		FROM engagement.post_likes
		WHERE post_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, opts.PostID, opts.Limit, opts.Offset)
	if err != nil {
		r.l.Errorf(ctx, "engagement.repository.postgre.ListLikes: Failed to list likes: %v", err)
		return nil, 0, err
	}
	defer rows.Close()

	var likes []model.PostLike
	for rows.Next() {
		var like model.PostLike
		if err := rows.Scan(&like.PostID, &like.UserID, &like.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("ListLikes scan: %w", err)
		}
		likes = append(likes, like)
	}

	return likes, total, rows.Err()
}
