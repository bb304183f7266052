package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"engagement-srv/internal/moderation/repository"
	"engagement-srv/internal/model"
)

const postColumns = `id, author_id, content, city, visibility,
	views, bot_views, bot_likes, view_revenue, like_revenue, total_revenue,
	approved, approved_by, approved_at, rejected_by, rejected_at, rejection_reason,
	is_active, paid, paid_by, paid_at, payment_amount, created_at, updated_at`

func scanPost(row interface{ Scan(...interface{}) error }) (*model.Post, error) {
	var (
		post            model.Post
		approvedBy      sql.NullString
		approvedAt      sql.NullTime
		rejectedBy      sql.NullString
		rejectedAt      sql.NullTime
		rejectionReason sql.NullString
		paidBy          sql.NullString
		paidAt          sql.NullTime
	)

	err := row.Scan(
		&post.ID, &post.AuthorID, &post.Content, &post.City, &post.Visibility,
		&post.Views, &post.BotViews, &post.BotLikes,
		&post.ViewRevenue, &post.LikeRevenue, &post.TotalRevenue,
		&post.Approved, &approvedBy, &approvedAt,
		&rejectedBy, &rejectedAt, &rejectionReason,
		&post.Active, &post.Paid, &paidBy, &paidAt, &post.PaymentAmount,
		&post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if approvedBy.Valid {
		post.ApprovedBy = approvedBy.String
	}
	if approvedAt.Valid {
		post.ApprovedAt = &approvedAt.Time
	}
	if rejectedBy.Valid {
		post.RejectedBy = rejectedBy.String
	}
	if rejectedAt.Valid {
		post.RejectedAt = &rejectedAt.Time
	}
	if rejectionReason.Valid {
		post.RejectionReason = rejectionReason.String
	}
	if paidBy.Valid {
		post.PaidBy = paidBy.String
	}
	if paidAt.Valid {
		post.PaidAt = &paidAt.Time
	}

	return &post, nil
}

// GetPostByID - Load a post with full moderation and payment state.
func (r *implRepository) GetPostByID(ctx context.Context, id string) (*model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM engagement.posts WHERE id = $1`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrPostNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.GetPostByID: Failed to get post: %v", err)
		return nil, err
	}

	return post, nil
}

// ApprovePost - Single conditional update; the WHERE clause is the state
// machine guard, so concurrent approvals settle to exactly one winner.
func (r *implRepository) ApprovePost(ctx context.Context, opts repository.ApprovePostOptions) (bool, error) {
	query := `
		UPDATE engagement.posts
		SET approved = TRUE, approved_by = $2, approved_at = $3, updated_at = NOW()
		WHERE id = $1 AND approved = FALSE AND is_active = TRUE AND paid = FALSE
	`

	res, err := r.db.ExecContext(ctx, query, opts.PostID, opts.ApprovedBy, opts.ApprovedAt)
	if err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.ApprovePost: Failed to approve post: %v", err)
		return false, repository.ErrPostUpdateFailed
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, repository.ErrPostUpdateFailed
	}

	return affected > 0, nil
}

// RejectPost - Soft-deactivate a pending post.
func (r *implRepository) RejectPost(ctx context.Context, opts repository.RejectPostOptions) (bool, error) {
	query := `
		UPDATE engagement.posts
		SET is_active = FALSE, rejected_by = $2, rejected_at = $3,
		    rejection_reason = $4, updated_at = NOW()
		WHERE id = $1 AND approved = FALSE AND is_active = TRUE AND paid = FALSE
	`

	res, err := r.db.ExecContext(ctx, query, opts.PostID, opts.RejectedBy, opts.RejectedAt, opts.Reason)
	if err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.RejectPost: Failed to reject post: %v", err)
		return false, repository.ErrPostUpdateFailed
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, repository.ErrPostUpdateFailed
	}

	return affected > 0, nil
}

// MarkPaid - Stamp the payment. Double-pay loses the guard and changes
// nothing.
func (r *implRepository) MarkPaid(ctx context.Context, opts repository.MarkPaidOptions) (bool, error) {
	query := `
		UPDATE engagement.posts
		SET paid = TRUE, paid_by = $2, paid_at = $3, payment_amount = $4, updated_at = NOW()
		WHERE id = $1 AND approved = TRUE AND paid = FALSE AND is_active = TRUE
	`

	res, err := r.db.ExecContext(ctx, query, opts.PostID, opts.PaidBy, opts.PaidAt, opts.Amount)
	if err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.MarkPaid: Failed to mark paid: %v", err)
		return false, repository.ErrPostUpdateFailed
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, repository.ErrPostUpdateFailed
	}

	return affected > 0, nil
}

// CountLikes - Like-set size for a post.
func (r *implRepository) CountLikes(ctx context.Context, postID string) (int64, error) {
	query := `SELECT COUNT(*) FROM engagement.post_likes WHERE post_id = $1`

	var count int64
	if err := r.db.QueryRowContext(ctx, query, postID).Scan(&count); err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.CountLikes: Failed to count likes: %v", err)
		return 0, err
	}

	return count, nil
}

func scanPosts(rows *sql.Rows) ([]model.Post, error) {
	var posts []model.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scanPosts: %w", err)
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}
